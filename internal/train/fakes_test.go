package train

import (
	"github.com/FlavioCFOliveira/nnx/internal/net"
	"github.com/FlavioCFOliveira/nnx/internal/weights"
)

// fixedRandom always returns the same values: Float64 0.5, Intn 0 and
// IntRange its lower bound.
type fixedRandom struct{}

func (fixedRandom) Float64() float64 { return 0.5 }
func (fixedRandom) Intn(n int) int { return 0 }
func (fixedRandom) IntRange(lo, hi int) int { return lo }

// sequenceRandom replays floats and ints in order, wrapping around.
type sequenceRandom struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *sequenceRandom) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *sequenceRandom) Intn(n int) int {
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

func (r *sequenceRandom) IntRange(lo, hi int) int {
	return lo + r.Intn(hi-lo)
}

// fakeNetwork returns fixed gradients and scripted forward outputs.
//
// FeedForward returns the queued outputs in order and badOutput once the
// queue is empty.
type fakeNetwork struct {
	weights   weights.Set
	gradients weights.Set
	outputs   [][]float64
	badOutput []float64

	feedForwardCalls int
	gradientInputs   [][]float64
}

func newFakeNetwork() *fakeNetwork {
	return &fakeNetwork{
		weights:   weights.Set{{1, 2, 3}, {1.5}},
		gradients: weights.Set{{0.25, 0.5, 0.75}, {2}},
		badOutput: []float64{0.01, 0.99},
	}
}

// improvingFor queues n outputs that move towards the target {1, 0}.
func (f *fakeNetwork) improvingFor(n int) *fakeNetwork {
	f.outputs = nil
	for s := n; s > 0; s-- {
		d := float64(s) / 100
		f.outputs = append(f.outputs, []float64{0.99 - d, 0.01 + d})
	}
	return f
}

func (f *fakeNetwork) NumInputs() int { return 2 }
func (f *fakeNetwork) NumOutputs() int { return 1 }
func (f *fakeNetwork) Weights() weights.Set { return f.weights }

func (f *fakeNetwork) FeedForward(input []float64) (*net.FeedForwardResult, error) {
	f.feedForwardCalls++
	if len(f.outputs) > 0 {
		out := f.outputs[0]
		f.outputs = f.outputs[1:]
		return &net.FeedForwardResult{Output: out}, nil
	}
	return &net.FeedForwardResult{Output: f.badOutput}, nil
}

func (f *fakeNetwork) CalculateGradients(input, targets []float64) (weights.Set, error) {
	f.gradientInputs = append(f.gradientInputs, input)
	return f.gradients.Clone(), nil
}

func fakeTrainingSet() []net.InputOutput {
	return []net.InputOutput{{Input: []float64{1, 2}, Output: []float64{0.5}}}
}

func fakeValidationSet() []net.InputOutput {
	return []net.InputOutput{{Input: []float64{0.25, 0.5}, Output: []float64{1, 0}}}
}

func referenceSimpleTrainer() *SimpleGradientTrainer {
	t := NewSimpleGradientTrainer(0.5, 1)
	t.Momentum = 2
	t.QuadraticRegularization = 0.1
	t.KeepInitialWeights = true
	return t
}

func referenceUntilDoneTrainer() *UntilDoneGradientTrainer {
	return &UntilDoneGradientTrainer{
		SimpleGradientTrainer:       *referenceSimpleTrainer(),
		ValidationSetFraction:       0.5,
		MaxEpochsWithoutImprovement: 100,
		EpochsBetweenValidations:    1,
	}
}

// recordingCallback records every hook call.
type recordingCallback struct {
	BaseCallback
	began, ended bool
	epochs       []int
	validations  []bool
}

func (c *recordingCallback) OnTrainBegin(nn Network) { c.began = true }
func (c *recordingCallback) OnTrainEnd(nn Network) { c.ended = true }
func (c *recordingCallback) OnEpochEnd(epoch int, nn Network) { c.epochs = append(c.epochs, epoch) }
func (c *recordingCallback) OnValidation(epoch int, e float64, improved bool, nn Network) {
	c.validations = append(c.validations, improved)
}

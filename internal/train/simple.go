package train

import (
	"github.com/FlavioCFOliveira/nnx/internal/net"
	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
	"github.com/FlavioCFOliveira/nnx/internal/opt"
	"github.com/FlavioCFOliveira/nnx/internal/random"
	"github.com/FlavioCFOliveira/nnx/internal/weights"
)

// SimpleGradientTrainer runs NumEpochs mini-batch gradient steps.
// Each step draws BatchSize examples with replacement, optionally perturbs
// their inputs, averages the gradients and applies the GradientStep rule
// with the previous step's averaged gradient as the momentum term.
type SimpleGradientTrainer struct {
	Base
	opt.GradientStep

	NumEpochs int

	// BatchSize is the number of examples drawn per step; it must be at least 1.
	BatchSize int

	// MaxRelativeNoise scales each input entry by a random factor in
	// [1-MaxRelativeNoise, 1+MaxRelativeNoise). Zero disables it.
	MaxRelativeNoise float64
}

// NewSimpleGradientTrainer returns a trainer with batch size 1.
func NewSimpleGradientTrainer(learningRate float64, numEpochs int) *SimpleGradientTrainer {
	return &SimpleGradientTrainer{
		GradientStep: opt.GradientStep{LearningRate: learningRate},
		NumEpochs:    numEpochs,
		BatchSize:    1,
	}
}

// Validate checks the step coefficients, epoch count, batch size and noise.
func (t *SimpleGradientTrainer) Validate() error {
	if err := t.GradientStep.Validate(); err != nil {
		return err
	}
	if t.NumEpochs <= 0 {
		return nnerr.Newf("property NumEpochs must be positive; was %d.", t.NumEpochs)
	}
	if t.BatchSize < 1 {
		return nnerr.Newf("property BatchSize must be positive; was %d.", t.BatchSize)
	}
	if t.MaxRelativeNoise < 0 {
		return nnerr.Newf("property MaxRelativeNoise cannot be negative; was %v.", t.MaxRelativeNoise)
	}
	return nil
}

// Train trains nn on the whole trainingSet.
func (t *SimpleGradientTrainer) Train(trainingSet []net.InputOutput, nn Network) error {
	return train(t, &t.Base, trainingSet, nn)
}

// TrainSubsets runs NumEpochs steps on trainingSet. validationSet is ignored.
func (t *SimpleGradientTrainer) TrainSubsets(trainingSet, _ []net.InputOutput, rand random.Source, nn Network) error {
	if err := checkArguments(t, trainingSet, rand, nn); err != nil {
		return err
	}

	log := t.logger()
	prevGradients := nn.Weights().ZerosLike()

	t.notifyBegin(nn)
	for epoch := 1; epoch <= t.NumEpochs; epoch++ {
		if err := t.step(trainingSet, rand, nn, prevGradients); err != nil {
			return err
		}
		t.notifyEpochEnd(epoch, nn)
	}
	t.notifyEnd(nn)

	log.Debug("training finished", "trainer", "simple", "epochs", t.NumEpochs)
	return nil
}

func (t *SimpleGradientTrainer) validationSetFraction() float64 { return 0 }

var errEmptyTrainingSet = nnerr.Newf("argument trainingSet cannot be empty.")

func checkArguments(t Trainer, trainingSet []net.InputOutput, rand random.Source, nn Network) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if isNil(nn) {
		return nnerr.NilArgument("network")
	}
	if rand == nil {
		return nnerr.NilArgument("rand")
	}
	if len(trainingSet) == 0 {
		return errEmptyTrainingSet
	}
	return nil
}

// step runs one mini-batch update and leaves its averaged gradient in
// prevGradients for the next step's momentum term.
func (t *SimpleGradientTrainer) step(trainingSet []net.InputOutput, rand random.Source, nn Network, prevGradients weights.Set) error {
	ws := nn.Weights()
	sum := ws.ZerosLike()

	for _, ex := range GetBatch(trainingSet, t.BatchSize, rand) {
		input := AddRelativeNoise(ex.Input, t.MaxRelativeNoise, rand)

		g, err := nn.CalculateGradients(input, ex.Output)
		if err != nil {
			return err
		}
		if err := sum.AddInPlace(g); err != nil {
			return err
		}
	}

	if err := sum.MultiplyInPlace(1 / float64(t.BatchSize)); err != nil {
		return err
	}
	if err := t.AdjustWeights(ws, sum, prevGradients); err != nil {
		return err
	}
	return sum.CopyTo(prevGradients)
}

func (t *SimpleGradientTrainer) notifyBegin(nn Network) {
	for _, c := range t.Callbacks {
		c.OnTrainBegin(nn)
	}
}

func (t *SimpleGradientTrainer) notifyEpochEnd(epoch int, nn Network) {
	for _, c := range t.Callbacks {
		c.OnEpochEnd(epoch, nn)
	}
}

func (t *SimpleGradientTrainer) notifyEnd(nn Network) {
	for _, c := range t.Callbacks {
		c.OnTrainEnd(nn)
	}
}

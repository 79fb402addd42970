// Package net provides the multilayer perceptron: tanh hidden layers and a
// softmax output layer trained against cross-entropy error.
package net

import (
	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/nnx/internal/activations"
	"github.com/FlavioCFOliveira/nnx/internal/loss"
	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
	"github.com/FlavioCFOliveira/nnx/internal/weights"
)

// Perceptron is a fully connected feedforward network.
//
// Every layer has a bias unit whose activation is always 1. Layer l stores
// (inputSize_l + 1) * outputSize_l weights in row-major order: the incoming
// weights of output unit k occupy [k*(inputSize_l+1) : (k+1)*(inputSize_l+1)],
// bias weight last.
//
// Dimensions are fixed at construction. Weight values are mutated in place
// by trainers; only one trainer may operate on a Perceptron at a time, and
// forward passes are only safe concurrently while no trainer is running.
type Perceptron struct {
	numInputs        int
	numOutputs       int
	hiddenLayerSizes []int
	weights          weights.Set

	hidden  activations.Tanh
	output  activations.Softmax
	errFunc loss.CrossEntropy
}

// NewPerceptron creates a perceptron with all weights set to zero.
func NewPerceptron(numInputs, numOutputs int, hiddenLayerSizes []int) (*Perceptron, error) {
	if numInputs <= 0 {
		return nil, nnerr.Newf("argument numInputs must be positive; was %d.", numInputs)
	}
	if numOutputs <= 0 {
		return nil, nnerr.Newf("argument numOutputs must be positive; was %d.", numOutputs)
	}
	if len(hiddenLayerSizes) == 0 {
		return nil, nnerr.Newf("argument hiddenLayerSizes cannot be nil or empty.")
	}
	for i, size := range hiddenLayerSizes {
		if size <= 0 {
			return nil, nnerr.Newf("argument hiddenLayerSizes must contain only positive values; was %d at index %d.",
				size, i)
		}
	}

	p := &Perceptron{
		numInputs:        numInputs,
		numOutputs:       numOutputs,
		hiddenLayerSizes: append([]int(nil), hiddenLayerSizes...),
		weights:          make(weights.Set, len(hiddenLayerSizes)+1),
	}
	for l := range p.weights {
		p.weights[l] = make([]float64, p.LayerLength(l))
	}
	return p, nil
}

// NumInputs returns the width of the input vector.
func (p *Perceptron) NumInputs() int {
	return p.numInputs
}

// NumOutputs returns the width of the output vector.
func (p *Perceptron) NumOutputs() int {
	return p.numOutputs
}

// HiddenLayerSizes returns a copy of the hidden layer sizes.
func (p *Perceptron) HiddenLayerSizes() []int {
	return append([]int(nil), p.hiddenLayerSizes...)
}

// layerDims returns the number of inputs (without bias) and outputs of layer l.
func (p *Perceptron) layerDims(l int) (in, out int) {
	in, out = p.numInputs, p.numOutputs
	if l > 0 {
		in = p.hiddenLayerSizes[l-1]
	}
	if l < len(p.hiddenLayerSizes) {
		out = p.hiddenLayerSizes[l]
	}
	return in, out
}

// LayerLength returns the required length of weights layer l.
func (p *Perceptron) LayerLength(l int) int {
	in, out := p.layerDims(l)
	return (in + 1) * out
}

// Weights returns the live weight storage. Writes through the returned set
// change the network.
func (p *Perceptron) Weights() weights.Set {
	return p.weights
}

// SetWeights copies ws into the network after checking it layer by layer
// against the network's own shape.
func (p *Perceptron) SetWeights(ws weights.Set) error {
	if len(ws) != len(p.weights) {
		return nnerr.Newf("argument weights should have %d layers; was %d.", len(p.weights), len(ws))
	}
	for l := range ws {
		if len(ws[l]) != len(p.weights[l]) {
			return nnerr.Newf("argument weights layer %d should have length %d; was %d.",
				l, len(p.weights[l]), len(ws[l]))
		}
	}
	return ws.CopyTo(p.weights)
}

// FeedForward computes all layer activations for input.
// It does not modify the network.
func (p *Perceptron) FeedForward(input []float64) (*FeedForwardResult, error) {
	if len(input) != p.numInputs {
		return nil, nnerr.Newf("argument 'inputs' should have width %d; was %d.", p.numInputs, len(input))
	}

	inputWithBias := make([]float64, p.numInputs+1)
	copy(inputWithBias, input)
	inputWithBias[p.numInputs] = 1

	hidden := make([][]float64, len(p.hiddenLayerSizes))
	prev := inputWithBias
	for l, size := range p.hiddenLayerSizes {
		layer := make([]float64, size+1)
		layer[size] = 1
		p.activateLayer(l, prev, layer[:size], p.hidden.Activate)
		hidden[l] = layer
		prev = layer
	}

	output := make([]float64, p.numOutputs)
	p.activateLayer(len(p.hiddenLayerSizes), prev, output, nil)
	p.output.ActivateInPlace(output)

	return &FeedForwardResult{
		InputWithBias: inputWithBias,
		HiddenLayers:  hidden,
		Output:        output,
	}, nil
}

// activateLayer writes act(w_k . in) into out[k] for every unit k of layer l.
// A nil act leaves the pre-activation.
func (p *Perceptron) activateLayer(l int, in, out []float64, act func(float64) float64) {
	w := p.weights[l]
	width := len(in)
	for k := range out {
		pre := floats.Dot(in, w[k*width:(k+1)*width])
		if act != nil {
			pre = act(pre)
		}
		out[k] = pre
	}
}

// CalculateGradients returns the gradient of the cross-entropy error of the
// network's output for input relative to targets, with respect to every
// weight. The result has the same shape as Weights.
func (p *Perceptron) CalculateGradients(input, targets []float64) (weights.Set, error) {
	if len(targets) != p.numOutputs {
		return nil, nnerr.Newf("argument 'targets' should have width %d; was %d.", p.numOutputs, len(targets))
	}

	ff, err := p.FeedForward(input)
	if err != nil {
		return nil, err
	}

	grads := p.weights.ZerosLike()

	maxSize := p.numOutputs
	for _, size := range p.hiddenLayerSizes {
		maxSize = max(maxSize, size)
	}
	preGrads := make([]float64, maxSize)
	prevPreGrads := make([]float64, maxSize)

	// Output layer: softmax with cross entropy reduces to output - target.
	p.errFunc.PreActivationGradient(ff.Output, targets, preGrads[:p.numOutputs])

	nextSize := p.numOutputs
	for l := len(p.hiddenLayerSizes) - 1; l >= 0; l-- {
		act := ff.HiddenLayers[l]
		size := p.hiddenLayerSizes[l]
		width := size + 1
		w := p.weights[l+1]

		for k := 0; k < nextSize; k++ {
			floats.ScaleTo(grads[l+1][k*width:(k+1)*width], preGrads[k], act)
		}

		for i := 0; i < size; i++ {
			sum := 0.0
			for k := 0; k < nextSize; k++ {
				sum += w[k*width+i] * preGrads[k]
			}
			prevPreGrads[i] = p.hidden.DerivativeFromOutput(act[i]) * sum
		}

		preGrads, prevPreGrads = prevPreGrads, preGrads
		nextSize = size
	}

	width := p.numInputs + 1
	for k := 0; k < nextSize; k++ {
		floats.ScaleTo(grads[0][k*width:(k+1)*width], preGrads[k], ff.InputWithBias)
	}

	return grads, nil
}

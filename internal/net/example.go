package net

import "gonum.org/v1/gonum/floats"

// FeedForwardResult holds the activations of one forward pass.
type FeedForwardResult struct {
	// InputWithBias is the input followed by the bias unit (1).
	InputWithBias []float64

	// HiddenLayers holds the tanh activations of each hidden layer, each
	// followed by its bias unit (1).
	HiddenLayers [][]float64

	// Output is the softmax output; entries are positive and sum to 1.
	Output []float64
}

// InputOutput is one training example: an input vector and its target output.
type InputOutput struct {
	Input  []float64
	Output []float64
}

// Equal reports whether both vectors of io and other are element-wise equal.
func (io InputOutput) Equal(other InputOutput) bool {
	return floats.Equal(io.Input, other.Input) && floats.Equal(io.Output, other.Output)
}

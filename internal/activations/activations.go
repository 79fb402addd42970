// Package activations provides the hidden and output activation functions of the perceptron.
package activations

import "math"

// Tanh activation function, used by every hidden unit.
type Tanh struct{}

// Activate computes tanh(x)
func (t Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

// DerivativeFromOutput computes the derivative from an already activated
// value h = tanh(x), i.e. 1 - h^2.
func (t Tanh) DerivativeFromOutput(h float64) float64 {
	return 1 - h*h
}

// Softmax activation function for the output layer.
type Softmax struct{}

// ActivateInPlace replaces x with exp(x) / sum(exp(x)) and returns it.
// The maximum is subtracted before exponentiating. Entries more than about
// 745 below the maximum underflow to exactly 0, so outputs are non-negative
// rather than strictly positive; the largest entry is never 0 and the
// outputs still sum to 1.
func (s Softmax) ActivateInPlace(x []float64) []float64 {
	if len(x) == 0 {
		return x
	}

	maxVal := x[0]
	for i := 1; i < len(x); i++ {
		if x[i] > maxVal {
			maxVal = x[i]
		}
	}

	sum := 0.0
	for i := range x {
		x[i] = math.Exp(x[i] - maxVal)
		sum += x[i]
	}

	for i := range x {
		x[i] /= sum
	}

	return x
}

// Package loss provides the error metrics used to evaluate and train the perceptron.
package loss

import (
	"math"

	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
)

// Loss measures how far an output vector is from its target.
type Loss interface {
	// Forward computes the error of output relative to target.
	Forward(target, output []float64) (float64, error)
}

// CrossEntropy loss for softmax outputs.
type CrossEntropy struct{}

// Forward computes cross entropy: -sum(target * ln(output))
func (c CrossEntropy) Forward(target, output []float64) (float64, error) {
	return CrossEntropyError(target, output)
}

// PreActivationGradient writes output - target into grad.
// This is the gradient of the cross entropy with respect to the softmax
// pre-activations and is only valid for that pairing.
func (c CrossEntropy) PreActivationGradient(output, target, grad []float64) {
	for i := range output {
		grad[i] = output[i] - target[i]
	}
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((target - output)^2)
func (m MSE) Forward(target, output []float64) (float64, error) {
	return MeanSquareError(target, output)
}

// CrossEntropyError returns -sum(target[i] * ln(output[i])).
func CrossEntropyError(target, output []float64) (float64, error) {
	if err := checkLengths(target, output); err != nil {
		return 0, err
	}

	var sum float64
	for i := range output {
		sum -= target[i] * math.Log(output[i])
	}
	return sum, nil
}

// MeanSquareError returns (1/n) * sum((target[i] - output[i])^2).
func MeanSquareError(target, output []float64) (float64, error) {
	if err := checkLengths(target, output); err != nil {
		return 0, err
	}

	n := len(output)
	if n == 0 {
		return 0, nil
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := target[i] - output[i]
		sum += diff * diff
	}
	return sum / float64(n), nil
}

func checkLengths(target, output []float64) error {
	if len(target) != len(output) {
		return nnerr.Newf("length of 'output' argument (%d) is different from length of 'target' argument (%d).",
			len(output), len(target))
	}
	return nil
}

// Package opt provides the weight update rule of the gradient trainers.
package opt

import (
	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
	"github.com/FlavioCFOliveira/nnx/internal/weights"
)

// GradientStep is gradient descent with quadratic (L2) regularization and a
// momentum term built from the previous step's raw gradient:
//
//	w <- w - LearningRate * (g + QuadraticRegularization*w + Momentum*gPrev)
//
// gPrev is the batch gradient of the previous step, not an accumulated
// velocity.
type GradientStep struct {
	LearningRate            float64
	Momentum                float64
	QuadraticRegularization float64
}

// Validate checks the coefficients.
func (s GradientStep) Validate() error {
	if s.LearningRate <= 0 {
		return nnerr.Newf("property LearningRate must be positive; was %v.", s.LearningRate)
	}
	if s.Momentum < 0 {
		return nnerr.Newf("property Momentum cannot be negative; was %v.", s.Momentum)
	}
	if s.QuadraticRegularization < 0 {
		return nnerr.Newf("property QuadraticRegularization cannot be negative; was %v.", s.QuadraticRegularization)
	}
	return nil
}

// AdjustWeights updates ws in place from the current gradients and the
// previous step's gradients. All three sets must share one shape.
func (s GradientStep) AdjustWeights(ws, gradients, prevGradients weights.Set) error {
	if err := ws.CheckShape(gradients); err != nil {
		return err
	}
	if err := ws.CheckShape(prevGradients); err != nil {
		return err
	}

	for l, layer := range ws {
		g, prev := gradients[l], prevGradients[l]
		for i, w := range layer {
			full := g[i] + s.QuadraticRegularization*w + s.Momentum*prev[i]
			layer[i] = w - s.LearningRate*full
		}
	}
	return nil
}

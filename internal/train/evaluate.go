package train

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/FlavioCFOliveira/nnx/internal/loss"
	"github.com/FlavioCFOliveira/nnx/internal/net"
)

// NamedSet is a labelled example set passed to Evaluate.
type NamedSet struct {
	Name     string
	Examples []net.InputOutput
}

// Metrics is the result of evaluating a network on one set.
type Metrics struct {
	Name  string
	Count int

	// Error is the mean cross-entropy error.
	Error float64

	// MeanSquareError is the mean over examples of the per-example MSE
	// between target and output.
	MeanSquareError float64

	Accuracy float64
}

// Evaluate computes the mean cross-entropy error, mean squared error and accuracy of nn on each
// set concurrently. Results are in the order of sets. nn must not be
// trained while Evaluate runs; FeedForward itself only reads the weights.
func Evaluate(ctx context.Context, nn Network, sets ...NamedSet) ([]Metrics, error) {
	results := make([]Metrics, len(sets))

	g, ctx := errgroup.WithContext(ctx)
	for i, set := range sets {
		i, set := i, set
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			e, err := GetError(nn, set.Examples)
			if err != nil {
				return err
			}
			mse, err := meanLoss(nn, set.Examples, loss.MSE{})
			if err != nil {
				return err
			}
			a, err := GetAccuracy(nn, set.Examples)
			if err != nil {
				return err
			}

			results[i] = Metrics{Name: set.Name, Count: len(set.Examples), Error: e, MeanSquareError: mse, Accuracy: a}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Package train provides the gradient-descent trainers of the perceptron.
//
// There are two trainers. SimpleGradientTrainer runs a fixed number of
// mini-batch steps. UntilDoneGradientTrainer runs the same step but holds
// out a validation subset, stops once validation error has not improved for
// a while and leaves the network at the best weights it saw.
//
// Trainers mutate the network's weights in place. A network must not be
// trained by two trainers at once, nor evaluated while it is being trained.
package train

import (
	"log/slog"

	"github.com/FlavioCFOliveira/nnx/internal/net"
	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
	"github.com/FlavioCFOliveira/nnx/internal/random"
	"github.com/FlavioCFOliveira/nnx/internal/weights"
)

// Network is what a trainer needs from a network. *net.Perceptron implements it.
type Network interface {
	NumInputs() int
	NumOutputs() int

	// Weights returns the live weight storage; trainers update it in place.
	Weights() weights.Set

	FeedForward(input []float64) (*net.FeedForwardResult, error)
	CalculateGradients(input, targets []float64) (weights.Set, error)
}

// Trainer fits a network's weights to a training set.
// The implementations are SimpleGradientTrainer and UntilDoneGradientTrainer.
type Trainer interface {
	// Train validates the trainer, seeds a random source, optionally
	// initialises the weights, splits off a validation subset when the
	// trainer uses one and trains.
	Train(trainingSet []net.InputOutput, nn Network) error

	// TrainSubsets trains with explicit subsets and random source.
	// validationSet may be nil for trainers that do not use it.
	TrainSubsets(trainingSet, validationSet []net.InputOutput, rand random.Source, nn Network) error

	// Validate checks the trainer's configuration.
	Validate() error

	validationSetFraction() float64
}

// Base holds the settings shared by every trainer.
type Base struct {
	// Seed seeds the random source created by Train.
	Seed int64

	// KeepInitialWeights makes Train leave the network's current weights
	// alone instead of drawing them uniformly from [-0.5, 0.5).
	KeepInitialWeights bool

	// Logger receives debug-level progress. Nil means slog.Default().
	Logger *slog.Logger

	// Callbacks are notified as training progresses.
	Callbacks []Callback
}

func (b *Base) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// train is the shared high-level entry point.
func train(t Trainer, b *Base, trainingSet []net.InputOutput, nn Network) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if isNil(nn) {
		return nnerr.NilArgument("network")
	}
	if len(trainingSet) == 0 {
		return errEmptyTrainingSet
	}

	rand := random.New(b.Seed)

	if !b.KeepInitialWeights {
		InitializeWeights(nn.Weights(), rand)
	}

	trainingSubset, validationSubset := trainingSet, []net.InputOutput(nil)

	if fraction := t.validationSetFraction(); fraction > 0 {
		var err error
		validationSubset, trainingSubset, err = Split(Shuffle(trainingSet, rand), fraction)
		if err != nil {
			return err
		}
	}

	return t.TrainSubsets(trainingSubset, validationSubset, rand, nn)
}

func isNil(nn Network) bool {
	if nn == nil {
		return true
	}
	p, ok := nn.(*net.Perceptron)
	return ok && p == nil
}

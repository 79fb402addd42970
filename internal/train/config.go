package train

import (
	"log/slog"

	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
	"github.com/FlavioCFOliveira/nnx/internal/opt"
)

// Kind names a trainer variant in a Config.
type Kind string

const (
	KindSimple    Kind = "simple"
	KindUntilDone Kind = "untilDone"
)

// Config is the serialisable description of a trainer.
// Zero BatchSize and EpochsBetweenValidations mean 1; a nil
// InitializeWeights means true.
type Config struct {
	Kind                        Kind    `json:"kind"`
	LearningRate                float64 `json:"learningRate"`
	Momentum                    float64 `json:"momentum,omitempty"`
	QuadraticRegularization     float64 `json:"quadraticRegularization,omitempty"`
	NumEpochs                   int     `json:"numEpochs"`
	BatchSize                   int     `json:"batchSize,omitempty"`
	MaxRelativeNoise            float64 `json:"maxRelativeNoise,omitempty"`
	Seed                        int64   `json:"seed,omitempty"`
	InitializeWeights           *bool   `json:"initializeWeights,omitempty"`
	ValidationSetFraction       float64 `json:"validationSetFraction,omitempty"`
	MaxEpochsWithoutImprovement int     `json:"maxEpochsWithoutImprovement,omitempty"`
	EpochsBetweenValidations    int     `json:"epochsBetweenValidations,omitempty"`
}

// DefaultConfig returns a simple trainer configuration.
func DefaultConfig() Config {
	return Config{
		Kind:         KindSimple,
		LearningRate: 0.01,
		NumEpochs:    1000,
		BatchSize:    1,
	}
}

// NewTrainer builds and validates the trainer described by c.
func (c Config) NewTrainer(logger *slog.Logger, callbacks ...Callback) (Trainer, error) {
	batchSize := c.BatchSize
	if batchSize == 0 {
		batchSize = 1
	}

	simple := SimpleGradientTrainer{
		Base: Base{
			Seed:               c.Seed,
			KeepInitialWeights: c.InitializeWeights != nil && !*c.InitializeWeights,
			Logger:             logger,
			Callbacks:          callbacks,
		},
		GradientStep: opt.GradientStep{
			LearningRate:            c.LearningRate,
			Momentum:                c.Momentum,
			QuadraticRegularization: c.QuadraticRegularization,
		},
		NumEpochs:        c.NumEpochs,
		BatchSize:        batchSize,
		MaxRelativeNoise: c.MaxRelativeNoise,
	}

	var t Trainer
	switch c.Kind {
	case KindSimple, "":
		t = &simple
	case KindUntilDone:
		cadence := c.EpochsBetweenValidations
		if cadence == 0 {
			cadence = 1
		}
		t = &UntilDoneGradientTrainer{
			SimpleGradientTrainer:       simple,
			ValidationSetFraction:       c.ValidationSetFraction,
			MaxEpochsWithoutImprovement: c.MaxEpochsWithoutImprovement,
			EpochsBetweenValidations:    cadence,
		}
	default:
		return nil, nnerr.Newf("unknown trainer kind %q.", c.Kind)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate reports whether c describes a valid trainer.
func (c Config) Validate() error {
	_, err := c.NewTrainer(nil)
	return err
}

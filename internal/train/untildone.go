package train

import (
	"github.com/FlavioCFOliveira/nnx/internal/net"
	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
	"github.com/FlavioCFOliveira/nnx/internal/random"
)

// UntilDoneGradientTrainer runs the SimpleGradientTrainer step with early
// stopping. Every EpochsBetweenValidations epochs it measures the mean
// cross-entropy on the validation subset; when that has not improved for
// more than MaxEpochsWithoutImprovement epochs, or NumEpochs is reached, the
// network is restored to the best weights seen, starting with the weights
// it had before the first step.
type UntilDoneGradientTrainer struct {
	SimpleGradientTrainer

	// ValidationSetFraction is the share of the training set that Train
	// holds out for validation. It must be strictly between 0 and 1.
	ValidationSetFraction float64

	MaxEpochsWithoutImprovement int
	EpochsBetweenValidations    int
}

// NewUntilDoneGradientTrainer returns a trainer with batch size 1 that
// validates after every epoch.
func NewUntilDoneGradientTrainer(learningRate float64, numEpochs int, validationSetFraction float64, maxEpochsWithoutImprovement int) *UntilDoneGradientTrainer {
	return &UntilDoneGradientTrainer{
		SimpleGradientTrainer:       *NewSimpleGradientTrainer(learningRate, numEpochs),
		ValidationSetFraction:       validationSetFraction,
		MaxEpochsWithoutImprovement: maxEpochsWithoutImprovement,
		EpochsBetweenValidations:    1,
	}
}

// Validate checks the simple trainer settings and the early-stopping ones.
func (t *UntilDoneGradientTrainer) Validate() error {
	if err := t.SimpleGradientTrainer.Validate(); err != nil {
		return err
	}
	if !(t.ValidationSetFraction > 0 && t.ValidationSetFraction < 1) {
		return nnerr.Newf("property ValidationSetFraction must be strictly between 0 and 1; was %v.", t.ValidationSetFraction)
	}
	if t.MaxEpochsWithoutImprovement <= 0 {
		return nnerr.Newf("property MaxEpochsWithoutImprovement must be positive; was %d.", t.MaxEpochsWithoutImprovement)
	}
	if t.EpochsBetweenValidations <= 0 {
		return nnerr.Newf("property EpochsBetweenValidations must be positive; was %d.", t.EpochsBetweenValidations)
	}
	return nil
}

// Train holds out ValidationSetFraction of trainingSet and trains on the rest.
func (t *UntilDoneGradientTrainer) Train(trainingSet []net.InputOutput, nn Network) error {
	return train(t, &t.Base, trainingSet, nn)
}

// TrainSubsets trains on trainingSet, validating against validationSet.
// An empty validation set has zero error, so it never improves and training
// stops after MaxEpochsWithoutImprovement epochs with the initial weights.
func (t *UntilDoneGradientTrainer) TrainSubsets(trainingSet, validationSet []net.InputOutput, rand random.Source, nn Network) error {
	if err := checkArguments(t, trainingSet, rand, nn); err != nil {
		return err
	}

	log := t.logger()
	ws := nn.Weights()
	prevGradients := ws.ZerosLike()

	bestWeights := ws.Clone()
	bestError, err := GetError(nn, validationSet)
	if err != nil {
		return err
	}

	epochsSinceImprovement := 0
	countdown := t.EpochsBetweenValidations

	t.notifyBegin(nn)
	for epoch := 1; epoch <= t.NumEpochs; epoch++ {
		if err := t.step(trainingSet, rand, nn, prevGradients); err != nil {
			return err
		}
		t.notifyEpochEnd(epoch, nn)

		countdown--
		if countdown > 0 {
			continue
		}
		countdown = t.EpochsBetweenValidations

		validationError, err := GetError(nn, validationSet)
		if err != nil {
			return err
		}

		improved := validationError < bestError
		if improved {
			if err := ws.CopyTo(bestWeights); err != nil {
				return err
			}
			bestError = validationError
			epochsSinceImprovement = 0
		} else {
			epochsSinceImprovement += t.EpochsBetweenValidations
		}

		log.Debug("validation", "epoch", epoch, "error", validationError, "best", bestError, "improved", improved)
		for _, c := range t.Callbacks {
			c.OnValidation(epoch, validationError, improved, nn)
		}

		if epochsSinceImprovement > t.MaxEpochsWithoutImprovement {
			log.Debug("stopping early", "epoch", epoch, "epochsWithoutImprovement", epochsSinceImprovement)
			break
		}
	}

	if err := bestWeights.CopyTo(ws); err != nil {
		return err
	}
	t.notifyEnd(nn)

	log.Debug("training finished", "trainer", "untilDone", "bestError", bestError)
	return nil
}

func (t *UntilDoneGradientTrainer) validationSetFraction() float64 {
	return t.ValidationSetFraction
}

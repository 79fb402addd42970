package train

import (
	"log/slog"
)

// Callback observes training. Hooks run on the training goroutine and must
// not modify the network's weights.
type Callback interface {
	OnTrainBegin(nn Network)
	OnTrainEnd(nn Network)
	OnEpochEnd(epoch int, nn Network)

	// OnValidation is called by UntilDoneGradientTrainer after each
	// validation with the validation error and whether it beat the best so far.
	OnValidation(epoch int, validationError float64, improved bool, nn Network)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(nn Network) {}
func (c BaseCallback) OnTrainEnd(nn Network) {}
func (c BaseCallback) OnEpochEnd(epoch int, nn Network) {}
func (c BaseCallback) OnValidation(epoch int, validationError float64, improved bool, nn Network) {}

// ModelCheckpoint saves the network whenever its validation error improves.
// The network must have a Save(filename string) error method, as
// *net.Perceptron does.
type ModelCheckpoint struct {
	BaseCallback
	Filename string

	// Saved counts successful saves.
	Saved int
}

type saver interface {
	Save(filename string) error
}

func NewModelCheckpoint(filename string) *ModelCheckpoint {
	return &ModelCheckpoint{Filename: filename}
}

func (c *ModelCheckpoint) OnValidation(epoch int, validationError float64, improved bool, nn Network) {
	if !improved {
		return
	}

	s, ok := nn.(saver)
	if !ok {
		slog.Warn("checkpoint skipped: network cannot be saved", "epoch", epoch)
		return
	}
	if err := s.Save(c.Filename); err != nil {
		slog.Error("error saving checkpoint", "file", c.Filename, "error", err)
		return
	}
	c.Saved++
	slog.Debug("checkpoint saved", "epoch", epoch, "validationError", validationError)
}

// Logger logs training progress at info level.
type Logger struct {
	BaseCallback

	// Interval is the number of epochs between progress lines; zero disables them.
	Interval int

	// Log is the destination. Nil means slog.Default().
	Log *slog.Logger
}

func (c Logger) log() *slog.Logger {
	if c.Log != nil {
		return c.Log
	}
	return slog.Default()
}

func (c Logger) OnEpochEnd(epoch int, nn Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		c.log().Info("epoch finished", "epoch", epoch)
	}
}

func (c Logger) OnValidation(epoch int, validationError float64, improved bool, nn Network) {
	c.log().Info("validation", "epoch", epoch, "error", validationError, "improved", improved)
}

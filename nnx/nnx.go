// Package nnx is the public entry point: a tanh/softmax multilayer
// perceptron and the gradient-descent trainers that fit it.
package nnx

import (
	"context"

	"github.com/FlavioCFOliveira/nnx/internal/dataset"
	"github.com/FlavioCFOliveira/nnx/internal/net"
	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
	"github.com/FlavioCFOliveira/nnx/internal/random"
	"github.com/FlavioCFOliveira/nnx/internal/train"
	"github.com/FlavioCFOliveira/nnx/internal/weights"
)

// Re-export common types for easier access
type (
	Perceptron        = net.Perceptron
	PerceptronConfig  = net.PerceptronConfig
	InputOutput       = net.InputOutput
	FeedForwardResult = net.FeedForwardResult
	WeightSet         = weights.Set

	Network                  = train.Network
	Trainer                  = train.Trainer
	TrainerConfig            = train.Config
	SimpleGradientTrainer    = train.SimpleGradientTrainer
	UntilDoneGradientTrainer = train.UntilDoneGradientTrainer
	Callback                 = train.Callback
	BaseCallback             = train.BaseCallback
	NamedSet                 = train.NamedSet
	Metrics                  = train.Metrics

	RandomSource = random.Source
	Dataset      = dataset.Dataset
	Error        = nnerr.Error
)

// ErrNeuralNetwork matches every error raised for invalid arguments,
// configuration or shapes.
var ErrNeuralNetwork = nnerr.ErrNeuralNetwork

// Network creation
func NewPerceptron(numInputs, numOutputs int, hiddenLayerSizes []int) (*Perceptron, error) {
	return net.NewPerceptron(numInputs, numOutputs, hiddenLayerSizes)
}

func Load(filename string) (*Perceptron, error) {
	return net.Load(filename)
}

// Trainers
func NewSimpleGradientTrainer(learningRate float64, numEpochs int) *SimpleGradientTrainer {
	return train.NewSimpleGradientTrainer(learningRate, numEpochs)
}

func NewUntilDoneGradientTrainer(learningRate float64, numEpochs int, validationSetFraction float64, maxEpochsWithoutImprovement int) *UntilDoneGradientTrainer {
	return train.NewUntilDoneGradientTrainer(learningRate, numEpochs, validationSetFraction, maxEpochsWithoutImprovement)
}

func NewRandom(seed int64) RandomSource {
	return random.New(seed)
}

// Data
func LoadCSV(filename string, hasHeader bool) (*Dataset, error) {
	return dataset.LoadCSV(filename, hasHeader)
}

// Metrics
func GetError(nn Network, examples []InputOutput) (float64, error) {
	return train.GetError(nn, examples)
}

func GetAccuracy(nn Network, examples []InputOutput) (float64, error) {
	return train.GetAccuracy(nn, examples)
}

func Evaluate(ctx context.Context, nn Network, sets ...NamedSet) ([]Metrics, error) {
	return train.Evaluate(ctx, nn, sets...)
}

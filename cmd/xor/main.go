package main

import (
	"fmt"
	"math"
	"os"

	"github.com/FlavioCFOliveira/nnx/internal/net"
	"github.com/FlavioCFOliveira/nnx/internal/train"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("=== XOR Training Example ===")

	// XOR cannot be solved without a hidden layer.
	in, hidden, out := 2, 3, 2

	fmt.Printf("Network architecture: %d-%d-%d\n", in, hidden, out)
	fmt.Println("Activation functions: Tanh (hidden), Softmax (output)")
	fmt.Println("Loss function: cross entropy")
	fmt.Println("Trainer: mini-batch gradient descent, learning rate 0.1, momentum 0.5")

	network, err := net.NewPerceptron(in, out, []int{hidden})
	if err != nil {
		return err
	}

	// One-hot targets: {1, 0} is false, {0, 1} is true.
	examples := []net.InputOutput{
		{Input: []float64{0, 0}, Output: []float64{1, 0}},
		{Input: []float64{0, 1}, Output: []float64{0, 1}},
		{Input: []float64{1, 0}, Output: []float64{0, 1}},
		{Input: []float64{1, 1}, Output: []float64{1, 0}},
	}

	trainer := train.NewSimpleGradientTrainer(0.1, 5000)
	trainer.Momentum = 0.5
	trainer.Seed = 42
	trainer.Callbacks = []train.Callback{progress{interval: 500, examples: examples}}

	if err := trainer.Train(examples, network); err != nil {
		return err
	}

	fmt.Println("\nTesting trained network:")
	for _, ex := range examples {
		result, err := network.FeedForward(ex.Input)
		if err != nil {
			return err
		}
		fmt.Printf("Input: %v, P(true): %.4f, Target: %v\n", ex.Input, result.Output[1], ex.Output[1])
	}

	fmt.Println("\nSaving network to disk...")
	if err := network.Save("xor_network.gob"); err != nil {
		return fmt.Errorf("saving network: %w", err)
	}
	fmt.Println("Network saved successfully!")

	fmt.Println("Loading network from disk...")
	loaded, err := net.Load("xor_network.gob")
	if err != nil {
		return fmt.Errorf("loading network: %w", err)
	}

	fmt.Println("\nVerifying loaded network:")
	allMatch := true
	for _, ex := range examples {
		original, err := network.FeedForward(ex.Input)
		if err != nil {
			return err
		}
		reloaded, err := loaded.FeedForward(ex.Input)
		if err != nil {
			return err
		}
		match := "OK"
		if math.Abs(original.Output[1]-reloaded.Output[1]) > 1e-12 {
			match = "MISMATCH"
			allMatch = false
		}
		fmt.Printf("Input: %v, Original: %.4f, Loaded: %.4f [%s]\n",
			ex.Input, original.Output[1], reloaded.Output[1], match)
	}

	if !allMatch {
		return fmt.Errorf("predictions differ between original and loaded network")
	}
	fmt.Println("\nSUCCESS: All predictions match between original and loaded network!")
	return nil
}

// progress prints the training error every interval epochs.
type progress struct {
	train.BaseCallback
	interval int
	examples []net.InputOutput
}

func (p progress) OnEpochEnd(epoch int, nn train.Network) {
	if epoch%p.interval != 0 {
		return
	}
	e, err := train.GetError(nn, p.examples)
	if err != nil {
		return
	}
	fmt.Printf("Epoch %d, Error: %.6f\n", epoch, e)
}

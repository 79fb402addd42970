package main

import (
	"context"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/nnx/internal/net"
	"github.com/FlavioCFOliveira/nnx/internal/random"
	"github.com/FlavioCFOliveira/nnx/internal/train"
)

// Iris dataset: 3 classes (Setosa, Versicolor, Virginica)
// Each sample has 4 features (sepal length, sepal width, petal length, petal width)
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Println("Training Iris classifier (4-8-6-3 network) with early stopping...")

	network, err := net.NewPerceptron(4, 3, []int{8, 6})
	if err != nil {
		return err
	}

	rand := random.New(42)
	examples := generateIrisData(rand)
	examples = train.Shuffle(examples, rand)
	training, test, err := train.Split(examples, 0.8)
	if err != nil {
		return err
	}

	trainer := train.NewUntilDoneGradientTrainer(0.02, 20000, 0.2, 500)
	trainer.Momentum = 0.3
	trainer.BatchSize = 4
	trainer.MaxRelativeNoise = 0.01
	trainer.EpochsBetweenValidations = 10
	trainer.Seed = 42
	trainer.Callbacks = []train.Callback{progress{}}

	if err := trainer.Train(training, network); err != nil {
		return err
	}

	metrics, err := train.Evaluate(context.Background(), network,
		train.NamedSet{Name: "training", Examples: training},
		train.NamedSet{Name: "test", Examples: test})
	if err != nil {
		return err
	}
	for _, m := range metrics {
		fmt.Printf("\n%s: error %.4f, accuracy %.1f%% (%d samples)", m.Name, m.Error, m.Accuracy*100, m.Count)
	}
	fmt.Println()

	fmt.Println("\nSample predictions:")
	for i := 0; i < 10 && i < len(test); i++ {
		result, err := network.FeedForward(test[i].Input)
		if err != nil {
			return err
		}
		fmt.Printf("Sample %d: Predicted=%d, Actual=%d\n",
			i, floats.MaxIdx(result.Output), floats.MaxIdx(test[i].Output))
	}
	return nil
}

// progress prints each validation that improved on the best so far.
type progress struct {
	train.BaseCallback
}

func (progress) OnValidation(epoch int, validationError float64, improved bool, nn train.Network) {
	if improved {
		fmt.Printf("Epoch %d, validation error: %.4f\n", epoch, validationError)
	}
}

func generateIrisData(rand random.Source) []net.InputOutput {
	// Simplified Iris data - noisy samples around the mean of each class.
	means := [][]float64{
		{5.0, 3.4, 1.5, 0.2}, // Setosa
		{5.9, 2.8, 4.3, 1.3}, // Versicolor
		{6.6, 3.0, 5.6, 2.0}, // Virginica
	}
	noise := []float64{0.2, 0.25, 0.25}

	var examples []net.InputOutput
	for class, mean := range means {
		for i := 0; i < 30; i++ {
			examples = append(examples, net.InputOutput{
				Input:  addNoise(mean, noise[class], rand),
				Output: oneHot(class, len(means)),
			})
		}
	}
	return examples
}

func addNoise(sample []float64, noise float64, rand random.Source) []float64 {
	result := make([]float64, len(sample))
	for i, v := range sample {
		result[i] = v + (rand.Float64()*2-1)*noise
	}
	return result
}

func oneHot(idx, size int) []float64 {
	result := make([]float64, size)
	result[idx] = 1.0
	return result
}

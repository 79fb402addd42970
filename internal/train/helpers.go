package train

import (
	"gonum.org/v1/gonum/floats"

	"github.com/FlavioCFOliveira/nnx/internal/loss"
	"github.com/FlavioCFOliveira/nnx/internal/net"
	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
	"github.com/FlavioCFOliveira/nnx/internal/random"
	"github.com/FlavioCFOliveira/nnx/internal/weights"
)

// InitializeWeights overwrites every weight with a value uniform on [-0.5, 0.5).
func InitializeWeights(ws weights.Set, rand random.Source) {
	for _, layer := range ws {
		for i := range layer {
			layer[i] = rand.Float64() - 0.5
		}
	}
}

// GetError returns the mean cross-entropy error of nn over examples.
// An empty set has zero error.
func GetError(nn Network, examples []net.InputOutput) (float64, error) {
	return meanLoss(nn, examples, loss.CrossEntropy{})
}

func meanLoss(nn Network, examples []net.InputOutput, l loss.Loss) (float64, error) {
	if len(examples) == 0 {
		return 0, nil
	}

	total := 0.0
	for _, ex := range examples {
		result, err := nn.FeedForward(ex.Input)
		if err != nil {
			return 0, err
		}
		e, err := l.Forward(ex.Output, result.Output)
		if err != nil {
			return 0, err
		}
		total += e
	}
	return total / float64(len(examples)), nil
}

// GetAccuracy returns the fraction of examples whose largest target entry
// and largest output entry are at the same index. An empty set has zero
// accuracy.
func GetAccuracy(nn Network, examples []net.InputOutput) (float64, error) {
	if len(examples) == 0 {
		return 0, nil
	}

	hits := 0
	for _, ex := range examples {
		result, err := nn.FeedForward(ex.Input)
		if err != nil {
			return 0, err
		}
		if len(ex.Output) == 0 || len(ex.Output) != len(result.Output) {
			return 0, nnerr.Newf("target width %d does not match output width %d.", len(ex.Output), len(result.Output))
		}
		if floats.MaxIdx(ex.Output) == floats.MaxIdx(result.Output) {
			hits++
		}
	}
	return float64(hits) / float64(len(examples)), nil
}

// GetBatch draws size examples uniformly with replacement.
func GetBatch(set []net.InputOutput, size int, rand random.Source) []net.InputOutput {
	batch := make([]net.InputOutput, size)
	for i := range batch {
		batch[i] = set[rand.Intn(len(set))]
	}
	return batch
}

// Shuffle returns a Fisher-Yates shuffled copy of list.
func Shuffle[T any](list []T, rand random.Source) []T {
	result := append([]T(nil), list...)

	n := len(result)
	for i := 0; i < n-1; i++ {
		k := rand.IntRange(i, n)
		result[i], result[k] = result[k], result[i]
	}
	return result
}

// Split puts the first floor(len(list) * fractionInFirst) elements in first
// and the rest in second. fractionInFirst must be strictly between 0 and 1.
func Split[T any](list []T, fractionInFirst float64) (first, second []T, err error) {
	if !(fractionInFirst > 0 && fractionInFirst < 1) {
		return nil, nil, nnerr.Newf("argument fractionInFirst must be between 0 and 1; was %v.", fractionInFirst)
	}

	border := int(float64(len(list)) * fractionInFirst)
	first = append([]T{}, list[:border]...)
	second = append([]T{}, list[border:]...)
	return first, second, nil
}

// AddRelativeNoise returns a copy of input with each entry multiplied by
// 1 + u*maxNoise, u uniform on [-1, 1). With maxNoise zero it returns input
// itself and draws nothing.
func AddRelativeNoise(input []float64, maxNoise float64, rand random.Source) []float64 {
	if maxNoise == 0 {
		return input
	}

	result := make([]float64, len(input))
	for i, v := range input {
		result[i] = v * (1 + (rand.Float64()*2-1)*maxNoise)
	}
	return result
}

// Package net provides benchmarks for the perceptron.
package net

import (
	"math/rand"
	"testing"

	"github.com/FlavioCFOliveira/nnx/internal/weights"
)

// fillRandom fills a slice with random values.
func fillRandom(slice []float64) {
	for i := range slice {
		slice[i] = rand.Float64() - 0.5
	}
}

func benchmarkPerceptron(b *testing.B) *Perceptron {
	p, err := NewPerceptron(784, 10, []int{256, 128})
	if err != nil {
		b.Fatal(err)
	}
	for _, layer := range p.Weights() {
		fillRandom(layer)
	}
	return p
}

// BenchmarkFeedForward benchmarks a forward pass through an MNIST-sized network.
func BenchmarkFeedForward(b *testing.B) {
	p := benchmarkPerceptron(b)
	input := make([]float64, 784)
	fillRandom(input)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.FeedForward(input); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCalculateGradients benchmarks forward plus backward pass.
func BenchmarkCalculateGradients(b *testing.B) {
	p := benchmarkPerceptron(b)
	input := make([]float64, 784)
	fillRandom(input)
	target := make([]float64, 10)
	target[3] = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.CalculateGradients(input, target); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWeightsClone benchmarks the snapshot used for early stopping.
func BenchmarkWeightsClone(b *testing.B) {
	ws := benchmarkPerceptron(b).Weights()

	b.ResetTimer()
	var clone weights.Set
	for i := 0; i < b.N; i++ {
		clone = ws.Clone()
	}
	_ = clone
}

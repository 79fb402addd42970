package net

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/FlavioCFOliveira/nnx/internal/nnerr"
	"github.com/FlavioCFOliveira/nnx/internal/weights"
)

// PerceptronConfig holds everything needed to rebuild a Perceptron.
type PerceptronConfig struct {
	NumInputs        int
	NumOutputs       int
	HiddenLayerSizes []int
	Weights          [][]float64
}

// Config captures the perceptron's dimensions and a copy of its weights.
func (p *Perceptron) Config() PerceptronConfig {
	return PerceptronConfig{
		NumInputs:        p.numInputs,
		NumOutputs:       p.numOutputs,
		HiddenLayerSizes: p.HiddenLayerSizes(),
		Weights:          p.weights.Clone(),
	}
}

// Build creates a Perceptron from the configuration. Weights, if present,
// must match the dimensions layer by layer.
func (c PerceptronConfig) Build() (*Perceptron, error) {
	p, err := NewPerceptron(c.NumInputs, c.NumOutputs, c.HiddenLayerSizes)
	if err != nil {
		return nil, err
	}
	if c.Weights != nil {
		if err := p.SetWeights(weights.Set(c.Weights)); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Save saves the perceptron to a file using gob encoding.
func (p *Perceptron) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	return p.encodeAndClose(file)
}

// encodeAndClose encodes p to wc and closes it. The close error is returned
// only when encoding succeeded.
func (p *Perceptron) encodeAndClose(wc io.WriteCloser) error {
	err := p.Encode(wc)
	if cerr := wc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("failed to close file: %w", cerr)
	}
	return err
}

// Load loads a perceptron from a file written by Save.
func Load(filename string) (*Perceptron, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Encode writes the perceptron to an io.Writer using gob encoding.
func (p *Perceptron) Encode(w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(p.Config()); err != nil {
		return fmt.Errorf("failed to encode perceptron: %w", err)
	}
	return nil
}

// Decode reads a perceptron written by Encode. The decoded weights are
// checked against the decoded dimensions.
func Decode(r io.Reader) (*Perceptron, error) {
	var cfg PerceptronConfig
	if err := gob.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, nnerr.Wrap(err, "failed to decode perceptron")
	}
	return cfg.Build()
}

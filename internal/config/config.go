// Package config reads the JSON run description used by the nnet command.
//
// A run names the network shape, the trainer settings and the files to read
// and write:
//
//	{
//	  "network": {"numInputs": 2, "numOutputs": 2, "hiddenLayerSizes": [3]},
//	  "trainer": {"kind": "untilDone", "learningRate": 0.1, "numEpochs": 5000,
//	              "validationSetFraction": 0.2, "maxEpochsWithoutImprovement": 200},
//	  "trainingDataFile": "xor.csv",
//	  "hasHeader": true,
//	  "testFraction": 0.25,
//	  "networkOutputFile": "xor.gob"
//	}
//
// Relative file names are resolved against the directory of the config file.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/FlavioCFOliveira/nnx/internal/net"
	"github.com/FlavioCFOliveira/nnx/internal/train"
)

// Network describes the perceptron's dimensions.
type Network struct {
	NumInputs        int   `json:"numInputs"`
	NumOutputs       int   `json:"numOutputs"`
	HiddenLayerSizes []int `json:"hiddenLayerSizes"`
}

// Build creates a perceptron with zero weights.
func (n Network) Build() (*net.Perceptron, error) {
	return net.NewPerceptron(n.NumInputs, n.NumOutputs, n.HiddenLayerSizes)
}

// Run is one training run.
type Run struct {
	Network Network      `json:"network"`
	Trainer train.Config `json:"trainer"`

	TrainingDataFile string `json:"trainingDataFile"`
	HasHeader        bool   `json:"hasHeader,omitempty"`
	NormalizeInputs  bool   `json:"normalizeInputs,omitempty"`

	// TestFraction is the share of examples held out for the final report.
	TestFraction float64 `json:"testFraction,omitempty"`

	NetworkOutputFile string `json:"networkOutputFile,omitempty"`
	HistoryFile       string `json:"historyFile,omitempty"`

	// LogInterval is the number of epochs between progress lines; zero disables them.
	LogInterval int `json:"logInterval,omitempty"`
}

// Parse decodes a run from JSON, starting from train.DefaultConfig for the
// trainer, and validates it. Unknown fields are rejected.
func Parse(data []byte) (*Run, error) {
	r := &Run{Trainer: train.DefaultConfig()}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(r); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Load reads and parses the run config at path.
func Load(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	dir := filepath.Dir(path)
	r.TrainingDataFile = resolve(dir, r.TrainingDataFile)
	r.NetworkOutputFile = resolve(dir, r.NetworkOutputFile)
	r.HistoryFile = resolve(dir, r.HistoryFile)
	return r, nil
}

func resolve(dir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Validate checks the network shape, the trainer settings and the file names.
func (r *Run) Validate() error {
	if _, err := r.Network.Build(); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	if err := r.Trainer.Validate(); err != nil {
		return fmt.Errorf("trainer: %w", err)
	}
	if r.TrainingDataFile == "" {
		return fmt.Errorf("trainingDataFile is required")
	}
	if r.TestFraction < 0 || r.TestFraction >= 1 {
		return fmt.Errorf("testFraction must be in [0, 1); was %v", r.TestFraction)
	}
	if r.LogInterval < 0 {
		return fmt.Errorf("logInterval cannot be negative; was %d", r.LogInterval)
	}
	return nil
}

// Command nnet trains a perceptron described by a JSON run config.
//
//	nnet -config run.json
//
// It loads the CSV training data, holds out a test set, trains, prints the
// error and accuracy on both sets and optionally saves the network.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/FlavioCFOliveira/nnx/internal/config"
	"github.com/FlavioCFOliveira/nnx/internal/dataset"
	"github.com/FlavioCFOliveira/nnx/internal/random"
	"github.com/FlavioCFOliveira/nnx/internal/train"
)

func main() {
	configPath := flag.String("config", "", "path to the JSON run config")
	verbose := flag.Bool("v", false, "log at debug level")
	flag.Parse()

	config.ConfigureLogging()
	if *verbose {
		config.SetLogLevel(slog.LevelDebug)
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "usage: nnet -config run.json")
		os.Exit(2)
	}

	if err := run(context.Background(), *configPath); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	runID := uuid.NewString()
	log := slog.Default().With("run", runID)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	data, err := dataset.LoadCSV(cfg.TrainingDataFile, cfg.HasHeader)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.TrainingDataFile, err)
	}
	if data.InputWidth() != cfg.Network.NumInputs || data.OutputWidth() != cfg.Network.NumOutputs {
		return fmt.Errorf("data has %d inputs and %d targets; network expects %d and %d",
			data.InputWidth(), data.OutputWidth(), cfg.Network.NumInputs, cfg.Network.NumOutputs)
	}
	if cfg.NormalizeInputs {
		data.NormalizeInputs()
	}

	// The test split is taken after a seeded shuffle so it does not depend
	// on the order of the file.
	data.Examples = train.Shuffle(data.Examples, random.New(cfg.Trainer.Seed))
	trainingData, testData := data.Split(cfg.TestFraction)
	log.Info("data loaded", "file", cfg.TrainingDataFile,
		"training", len(trainingData.Examples), "test", len(testData.Examples))

	network, err := cfg.Network.Build()
	if err != nil {
		return err
	}

	var callbacks []train.Callback
	if cfg.LogInterval > 0 {
		callbacks = append(callbacks, train.Logger{Interval: cfg.LogInterval, Log: log})
	}
	if cfg.HistoryFile != "" {
		history := train.NewCSVLogger(cfg.HistoryFile, true)
		history.RunID = runID
		callbacks = append(callbacks, history)
	}

	trainer, err := cfg.Trainer.NewTrainer(log, callbacks...)
	if err != nil {
		return err
	}

	log.Info("training", "kind", cfg.Trainer.Kind, "epochs", cfg.Trainer.NumEpochs,
		"hiddenLayerSizes", cfg.Network.HiddenLayerSizes, "weights", network.Weights().Count())
	if err := trainer.Train(trainingData.Examples, network); err != nil {
		return err
	}

	metrics, err := train.Evaluate(ctx, network,
		train.NamedSet{Name: "training", Examples: trainingData.Examples},
		train.NamedSet{Name: "test", Examples: testData.Examples})
	if err != nil {
		return err
	}

	fmt.Printf("%-10s %8s %12s %12s %10s\n", "set", "examples", "error", "mse", "accuracy")
	for _, m := range metrics {
		fmt.Printf("%-10s %8d %12.6f %12.6f %9.2f%%\n", m.Name, m.Count, m.Error, m.MeanSquareError, m.Accuracy*100)
	}

	if cfg.NetworkOutputFile != "" {
		if err := network.Save(cfg.NetworkOutputFile); err != nil {
			return fmt.Errorf("saving network: %w", err)
		}
		log.Info("network saved", "file", cfg.NetworkOutputFile)
	}
	return nil
}

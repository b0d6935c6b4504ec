// Command knn classifies one hardcoded query against a small hardcoded
// training set and prints the predicted label.
package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/viant/knn/internal/config"
	"github.com/viant/knn/internal/logging"
	"github.com/viant/knn/knn"
	"golang.org/x/exp/slog"
)

//go:embed config.yaml
var configData []byte

// Label is the closed label set of the example.
type Label uint8

const (
	A Label = iota
	B
)

func (l Label) String() string {
	switch l {
	case A:
		return "A"
	case B:
		return "B"
	}
	return fmt.Sprintf("Label(%d)", uint8(l))
}

func main() {
	label, err := run(configData)
	if err != nil {
		slog.Error("knn failed", "error", err)
		os.Exit(1)
	}
	fmt.Printf("Predicted Label: %v\n", label)
}

func run(data []byte) (Label, error) {
	cfg, err := config.Parse(data)
	if err != nil {
		return A, err
	}
	level, err := cfg.Level()
	if err != nil {
		return A, err
	}
	logger := logging.New(os.Stderr, level)
	slog.SetDefault(logger)

	trainingData := []knn.DataPoint[Label]{
		knn.NewDataPoint([]float64{2, 3}, A),
		knn.NewDataPoint([]float64{5, 8}, B),
		knn.NewDataPoint([]float64{1, 1}, A),
	}
	classifier, err := knn.New(trainingData, cfg.Options(logger)...)
	if err != nil {
		return A, err
	}
	query := knn.FeatureVector{3, 4}
	label, ok, err := classifier.Classify(query, cfg.K(), nil)
	if err != nil {
		return A, err
	}
	if !ok {
		logger.Info("no prediction, using fallback label", "fallback", A)
		return A, nil
	}
	logger.Info("classified", "points", classifier.Len(), "k", cfg.K(), "metric", cfg.Metric)
	return label, nil
}

// Package config decodes classifier settings from YAML.
package config

import (
	"github.com/pkg/errors"
	"github.com/viant/knn/distance"
	"github.com/viant/knn/knn"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultK        = 3
	DefaultMetric   = distance.KindEuclidean
	DefaultLogLevel = "info"
)

// Config holds classifier settings. NeighborCount is a pointer so an
// explicit "k: 0" is kept rather than defaulted; read it through K.
type Config struct {
	NeighborCount *int          `yaml:"k"`
	Metric        distance.Kind `yaml:"metric"`
	Parallelism   int           `yaml:"parallelism"`
	LogLevel      string        `yaml:"log-level"`
}

// Parse decodes data, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "config: decode")
	}
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.NeighborCount == nil {
		k := DefaultK
		c.NeighborCount = &k
	}
	if c.Metric == "" {
		c.Metric = DefaultMetric
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.K() < 0 {
		return errors.Wrapf(knn.ErrInvalidK, "config: k=%d", c.K())
	}
	if c.Parallelism < 0 {
		return errors.Errorf("config: parallelism must be non-negative, got %d", c.Parallelism)
	}
	if c.Metric.Metric() == nil {
		return errors.Wrapf(distance.ErrUnknownKind, "config: %q", c.Metric)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// K returns the configured number of neighbors.
func (c *Config) K() int {
	if c.NeighborCount == nil {
		return DefaultK
	}
	return *c.NeighborCount
}

// Level parses LogLevel (debug, info, warn, error).
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, errors.Wrapf(err, "config: log-level %q", c.LogLevel)
	}
	return level, nil
}

// Options maps the settings onto classifier options.
func (c *Config) Options(logger *slog.Logger) []knn.Option {
	return []knn.Option{
		knn.WithLogger(logger),
		knn.WithParallelism(c.Parallelism),
		knn.WithDefaultMetric(c.Metric.Metric()),
	}
}

package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/knn/distance"
	"github.com/viant/knn/knn"
	"golang.org/x/exp/slog"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expectK     int
		expectKind  distance.Kind
		expectLevel slog.Level
		expectPar   int
	}{
		{description: "defaults", input: "", expectK: DefaultK, expectKind: distance.KindEuclidean, expectLevel: slog.LevelInfo},
		{description: "explicit", input: "k: 2\nmetric: l1\nparallelism: 4\nlog-level: debug\n", expectK: 2, expectKind: distance.KindManhattan, expectLevel: slog.LevelDebug, expectPar: 4},
		{description: "k zero is kept", input: "k: 0\n", expectK: 0, expectKind: distance.KindEuclidean, expectLevel: slog.LevelInfo},
		{description: "cosine alias", input: "metric: cos\nlog-level: WARN\n", expectK: DefaultK, expectKind: distance.KindCosine, expectLevel: slog.LevelWarn},
	}
	for _, testCase := range testCases {
		config, err := Parse([]byte(testCase.input))
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expectK, config.K(), testCase.description)
		assert.Equal(t, testCase.expectKind, config.Metric, testCase.description)
		assert.Equal(t, testCase.expectPar, config.Parallelism, testCase.description)
		level, err := config.Level()
		require.NoError(t, err)
		assert.Equal(t, testCase.expectLevel, level, testCase.description)
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("k: -1\n"))
	assert.True(t, errors.Is(err, knn.ErrInvalidK), "%v", err)

	_, err = Parse([]byte("metric: hamming\n"))
	assert.True(t, errors.Is(err, distance.ErrUnknownKind), "%v", err)

	_, err = Parse([]byte("parallelism: -2\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("log-level: loud\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("k: [1, 2]\n"))
	assert.Error(t, err)
}

func TestConfig_Options(t *testing.T) {
	config, err := Parse([]byte("k: 1\nmetric: manhattan\n"))
	require.NoError(t, err)
	classifier, err := knn.New([]knn.DataPoint[string]{
		knn.NewDataPoint([]float64{0, 0}, "origin"),
		knn.NewDataPoint([]float64{2, 2}, "corner"),
	}, config.Options(slog.Default())...)
	require.NoError(t, err)
	label, ok, err := classifier.Classify(knn.FeatureVector{1.5, 1.5}, config.K(), nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "corner", label)
}

func TestConfig_K(t *testing.T) {
	assert.Equal(t, DefaultK, (&Config{}).K())
	k := 5
	assert.Equal(t, 5, (&Config{NeighborCount: &k}).K())

	config, err := Parse([]byte("k: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, config.NeighborCount)
	assert.Equal(t, 0, config.K())
}

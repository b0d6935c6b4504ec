package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	label, err := run(configData)
	require.NoError(t, err)
	assert.Equal(t, A, label)
	assert.Equal(t, "A", label.String())
	assert.Equal(t, "B", B.String())
}

func TestRun_InvalidConfig(t *testing.T) {
	for _, data := range []string{"log-level: loud\n", "k: -1\n", "metric: hamming\n"} {
		label, err := run([]byte(data))
		assert.Error(t, err, data)
		assert.Equal(t, A, label, data)
	}
}

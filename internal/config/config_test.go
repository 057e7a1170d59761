package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", config.Server.Port)
	assert.Equal(t, int64(50*1024*1024), config.Server.MaxUploadBytes)
	assert.Equal(t, int64(42), config.Data.SampleSeed)
	assert.Equal(t, 20, config.Data.SampleRows)
	assert.Equal(t, 20.0, config.Data.PoissonMean)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("SAMPLE_ROWS", "50")
	t.Setenv("SAMPLE_POISSON_MEAN", "12.5")

	config, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", config.Server.Port)
	assert.Equal(t, 50, config.Data.SampleRows)
	assert.Equal(t, 12.5, config.Data.PoissonMean)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("SAMPLE_ROWS", "-1")

	_, err := Load()
	assert.Error(t, err)
}

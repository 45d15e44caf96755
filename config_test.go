package kindalloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.ThreadSafe)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.ThreadSafe)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("KINDALLOC_THREAD_SAFE", "true")
	t.Setenv("KINDALLOC_LOG_LEVEL", "debug")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.ThreadSafe)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigFromEnvInvalidBool(t *testing.T) {
	t.Setenv("KINDALLOC_THREAD_SAFE", "not-a-bool")

	_, err := ConfigFromEnv()
	assert.Error(t, err)
}

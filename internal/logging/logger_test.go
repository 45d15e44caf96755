package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("warn", &buf)

	log.Info("should be filtered", nil)
	assert.Zero(t, buf.Len())

	log.Warn("should appear", map[string]any{"size": 42})
	require.NotZero(t, buf.Len())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "should appear", entry["message"])
	assert.Equal(t, float64(42), entry["size"])
}

func TestLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("nonsense", &buf)

	log.Debug("filtered at info", nil)
	assert.Zero(t, buf.Len())

	log.Info("visible", nil)
	assert.NotZero(t, buf.Len())
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("info", &buf).WithComponent("engine")

	log.Info("hello", nil)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "engine", entry["component"])
}

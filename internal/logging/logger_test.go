package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/internal/config"
	"github.com/katalvlaran/graphlab/internal/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("loud"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LoggingConfig{Level: "warn", Format: "JSON"}, &buf)

	log.Info("hidden")
	log.Warn("layout done", "nodes", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "layout done", rec["msg"])
	assert.Equal(t, float64(3), rec["nodes"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LoggingConfig{Level: "debug", Format: "text"}, &buf)
	log.Debug("step", "i", 1)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=step")
}

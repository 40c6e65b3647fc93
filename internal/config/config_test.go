package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphlab/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(config.New())
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "graphlab.db", cfg.Store.Path)
	assert.Equal(t, "force", cfg.Layout.Kind)
	assert.Equal(t, 80, cfg.Render.Width)
	assert.Equal(t, 24, cfg.Render.Height)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("GRAPHLAB_LOG_LEVEL", "debug")
	t.Setenv("GRAPHLAB_LAYOUT_SEED", "42")
	t.Setenv("GRAPHLAB_RENDER_PLAIN", "true")

	cfg, err := config.Load(config.New())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, int64(42), cfg.Layout.Seed)
	assert.True(t, cfg.Render.Plain)
}

func TestFileThenEnvThenFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  format: json
layout:
  kind: stress
  iterations: 120
render:
  width: 100
`), 0o600))
	t.Setenv("GRAPHLAB_RENDER_WIDTH", "120")

	v := config.New()
	require.NoError(t, config.ReadFile(v, path))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("layout", "force", "")
	require.NoError(t, config.BindFlag(v, config.KeyLayoutKind, fs.Lookup("layout")))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stress", cfg.Layout.Kind, "unset flag must not override the file")
	assert.Equal(t, 120, cfg.Layout.Iterations)
	assert.Equal(t, 120, cfg.Render.Width, "env beats file")

	require.NoError(t, fs.Parse([]string{"--layout", "spring"}))
	cfg, err = config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "spring", cfg.Layout.Kind)
}

func TestReadFile_Missing(t *testing.T) {
	err := config.ReadFile(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	// Search mode tolerates absence.
	t.Chdir(t.TempDir())
	assert.NoError(t, config.ReadFile(config.New(), ""))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"format", config.KeyLogFormat, "xml"},
		{"store", config.KeyStorePath, " "},
		{"iterations", config.KeyLayoutIterations, -1},
		{"width", config.KeyRenderWidth, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := config.New()
			v.Set(tc.key, tc.val)
			_, err := config.Load(v)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestBindFlag_Nil(t *testing.T) {
	assert.Error(t, config.BindFlag(config.New(), config.KeyLogLevel, nil))
}

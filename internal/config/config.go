// Package config resolves graphlab CLI settings from defaults, an optional
// YAML config file, GRAPHLAB_* environment variables and command flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment key: log.level -> GRAPHLAB_LOG_LEVEL.
const EnvPrefix = "GRAPHLAB"

// Config aggregates CLI configuration values.
type Config struct {
	Logging LoggingConfig
	Store   StoreConfig
	Layout  LayoutConfig
	Render  RenderConfig
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

// StoreConfig locates the SQLite database.
type StoreConfig struct {
	Path string
}

// LayoutConfig holds layout defaults for commands that position nodes.
type LayoutConfig struct {
	Kind       string
	Seed       int64
	Iterations int // 0 keeps the strategy default
}

// RenderConfig holds terminal drawing defaults.
type RenderConfig struct {
	Width   int
	Height  int
	Plain   bool
	Weights bool
}

// Keys shared by defaults, env binding and flag binding.
const (
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
	KeyLogIncludeCaller = "log.include_caller"
	KeyStorePath        = "store.path"
	KeyLayoutKind       = "layout.kind"
	KeyLayoutSeed       = "layout.seed"
	KeyLayoutIterations = "layout.iterations"
	KeyRenderWidth      = "render.width"
	KeyRenderHeight     = "render.height"
	KeyRenderPlain      = "render.plain"
	KeyRenderWeights    = "render.weights"
)

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultStorePath     = "graphlab.db"
	defaultLayoutKind    = "force"
	defaultRenderWidth   = 80
	defaultRenderHeight  = 24

	// configName is searched as graphlab.yaml (or .yml/.json/.toml).
	configName = "graphlab"
)

// New returns a viper instance with defaults and environment binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyLogLevel, defaultLoggingLevel)
	v.SetDefault(KeyLogFormat, defaultLoggingFormat)
	v.SetDefault(KeyLogIncludeCaller, false)
	v.SetDefault(KeyStorePath, defaultStorePath)
	v.SetDefault(KeyLayoutKind, defaultLayoutKind)
	v.SetDefault(KeyLayoutSeed, int64(0))
	v.SetDefault(KeyLayoutIterations, 0)
	v.SetDefault(KeyRenderWidth, defaultRenderWidth)
	v.SetDefault(KeyRenderHeight, defaultRenderHeight)
	v.SetDefault(KeyRenderPlain, false)
	v.SetDefault(KeyRenderWeights, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlag binds one flag to a key; flags override file and environment
// values only when set on the command line.
func BindFlag(v *viper.Viper, key string, f *pflag.Flag) error {
	if f == nil {
		return fmt.Errorf("config: no flag for %s", key)
	}

	return v.BindPFlag(key, f)
}

// ReadFile loads path into v. With an empty path it searches the working
// directory and the user config directory for graphlab.*; finding nothing
// there is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, configName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}

	return nil
}

// Load snapshots v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:         v.GetString(KeyLogLevel),
			Format:        v.GetString(KeyLogFormat),
			IncludeCaller: v.GetBool(KeyLogIncludeCaller),
		},
		Store: StoreConfig{
			Path: v.GetString(KeyStorePath),
		},
		Layout: LayoutConfig{
			Kind:       v.GetString(KeyLayoutKind),
			Seed:       v.GetInt64(KeyLayoutSeed),
			Iterations: v.GetInt(KeyLayoutIterations),
		},
		Render: RenderConfig{
			Width:   v.GetInt(KeyRenderWidth),
			Height:  v.GetInt(KeyRenderHeight),
			Plain:   v.GetBool(KeyRenderPlain),
			Weights: v.GetBool(KeyRenderWeights),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Validate checks value domains that viper cannot express.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %s=%q (want text or json)", ErrInvalid, KeyLogFormat, c.Logging.Format)
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalid, KeyStorePath)
	}
	if c.Layout.Iterations < 0 {
		return fmt.Errorf("%w: %s=%d", ErrInvalid, KeyLayoutIterations, c.Layout.Iterations)
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("%w: render size %dx%d", ErrInvalid, c.Render.Width, c.Render.Height)
	}

	return nil
}

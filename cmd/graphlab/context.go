package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/graphlab/codec"
	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/internal/config"
	"github.com/katalvlaran/graphlab/internal/logging"
	"github.com/katalvlaran/graphlab/store"
)

// storePrefix marks a graph reference that lives in the SQLite store.
const storePrefix = "store:"

// stdio is the graph reference for stdin/stdout (JSON).
const stdio = "-"

// flagKeys binds command-line flag names to configuration keys. A command
// only gets the bindings for flags it actually declares.
var flagKeys = map[string]string{
	"log-level":  config.KeyLogLevel,
	"log-format": config.KeyLogFormat,
	"log-caller": config.KeyLogIncludeCaller,
	"db":         config.KeyStorePath,
	"layout":     config.KeyLayoutKind,
	"seed":       config.KeyLayoutSeed,
	"iterations": config.KeyLayoutIterations,
	"width":      config.KeyRenderWidth,
	"height":     config.KeyRenderHeight,
	"plain":      config.KeyRenderPlain,
	"weights":    config.KeyRenderWeights,
}

// Context carries shared state into every command.
type Context struct {
	In       io.Reader
	Out, Err io.Writer

	Viper  *viper.Viper
	Config config.Config
	Logger *slog.Logger

	store *store.Store
}

// NewContext returns a Context with default configuration and a discarding logger.
func NewContext(in io.Reader, out, errOut io.Writer) *Context {
	return &Context{
		In:     in,
		Out:    out,
		Err:    errOut,
		Viper:  config.New(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// init binds cmd's flags, reads the config file and builds the logger.
func (c *Context) init(cmd *cobra.Command, cfgFile string) error {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := config.BindFlag(c.Viper, key, f); err != nil {
				return err
			}
		}
	}
	if err := config.ReadFile(c.Viper, cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(c.Viper)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger = logging.New(cfg.Logging, c.Err).With("command", cmd.Name())
	if used := c.Viper.ConfigFileUsed(); used != "" {
		c.Logger.Debug("config file loaded", "path", used)
	}

	return nil
}

// Store opens the configured database on first use.
func (c *Context) Store() (*store.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	s, err := store.Open(c.Config.Store.Path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("store opened", "path", c.Config.Store.Path)
	c.store = s

	return s, nil
}

// Close releases the store if it was opened.
func (c *Context) Close() error {
	if c.store == nil {
		return nil
	}
	err := c.store.Close()
	c.store = nil

	return err
}

// readGraph resolves a graph reference: "-" (JSON on stdin), "store:<name>",
// or a .json/.yaml file.
func (c *Context) readGraph(ctx context.Context, ref string) (*core.Graph, error) {
	switch {
	case ref == stdio:
		return codec.Decode(codec.NewJSONCodec(), c.In)
	case strings.HasPrefix(ref, storePrefix):
		s, err := c.Store()
		if err != nil {
			return nil, err
		}
		return s.Load(ctx, strings.TrimPrefix(ref, storePrefix))
	default:
		return codec.ReadFile(ref)
	}
}

// writeGraph is the inverse of readGraph; "-" writes JSON to stdout.
func (c *Context) writeGraph(ctx context.Context, ref string, g *core.Graph) error {
	switch {
	case ref == stdio:
		return codec.Encode(codec.NewJSONCodec(), c.Out, g)
	case strings.HasPrefix(ref, storePrefix):
		s, err := c.Store()
		if err != nil {
			return err
		}
		return s.Save(ctx, strings.TrimPrefix(ref, storePrefix), g)
	default:
		return codec.WriteFile(ref, g)
	}
}

// printf writes to Out, ignoring write errors like fmt.Printf.
func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// execute runs the command line and releases the store on every path;
// cobra skips post-run hooks when RunE fails.
func execute(ctx context.Context, cxt *Context, args []string) (err error) {
	defer func() { err = errors.Join(err, cxt.Close()) }()

	cmd := newRootCmd(cxt)
	cmd.SetArgs(args)

	return cmd.ExecuteContext(ctx)
}

// newRootCmd builds the "graphlab" command tree.
func newRootCmd(cxt *Context) *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "graphlab",
		Short: "Build, analyse, lay out and draw weighted graphs",
		Long: `graphlab works on undirected weighted graphs stored as JSON or YAML files,
or in a SQLite database referenced as store:<name>. Use "-" for JSON on
stdin/stdout.

Configuration comes from flags, GRAPHLAB_* environment variables and an
optional graphlab.yaml, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cxt.init(cmd, cfgFile)
		},
	}
	cmd.SetIn(cxt.In)
	cmd.SetOut(cxt.Out)
	cmd.SetErr(cxt.Err)

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Config file (default: ./graphlab.yaml, then the user config dir)")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")
	pf.Bool("log-caller", false, "Include source locations in log records")
	pf.String("db", "graphlab.db", "SQLite database for store:<name> references")

	cmd.AddCommand(
		NewGenerateCmd(cxt),
		NewLayoutCmd(cxt),
		NewPathCmd(cxt),
		NewMSTCmd(cxt),
		NewComponentsCmd(cxt),
		NewInfoCmd(cxt),
		NewTraverseCmd(cxt),
		NewRenderCmd(cxt),
		NewStoreCmd(cxt),
		NewMatrixCmd(cxt),
	)

	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/render"
)

type renderCmd struct {
	*Context
	noLabels bool
}

// NewRenderCmd builds a "graphlab render" command.
func NewRenderCmd(cxt *Context) *cobra.Command {
	c := &renderCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:   "render <graph>",
		Short: "Draw a graph in the terminal",
		Long: `Draw a graph using the positions stored on its nodes. Pass --layout to
compute fresh positions first.`,
		Example: `
  graphlab render store:grid
  graphlab render ring.json --layout stress --width 60 --height 20 --plain
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0])
		},
	}
	addLayoutFlags(cmd)
	addRenderFlags(cmd)
	cmd.Flags().BoolVar(&c.noLabels, "no-labels", false, "Draw nodes without labels")

	return cmd
}

func (c *renderCmd) run(cmd *cobra.Command, ref string) error {
	g, err := c.readGraph(cmd.Context(), ref)
	if err != nil {
		return err
	}

	var positions map[string]core.Position
	if cmd.Flags().Changed("layout") {
		l, err := c.computeLayout(cmd, g)
		if err != nil {
			return err
		}
		positions = l
	}
	out, err := render.Render(g, positions, c.renderOptions(render.WithLabels(!c.noLabels))...)
	if err != nil {
		return err
	}
	c.printf("%s\n", out)

	return nil
}

package main

import (
	"github.com/spf13/cobra"

	pk "github.com/katalvlaran/graphlab/prim_kruskal"
	"github.com/katalvlaran/graphlab/render"
)

type mstCmd struct {
	*Context
	method          string
	root            string
	requireSpanning bool
	draw            bool
}

// NewMSTCmd builds a "graphlab mst" command.
func NewMSTCmd(cxt *Context) *cobra.Command {
	c := &mstCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:   "mst <graph>",
		Short: "Compute a minimum spanning tree (or forest)",
		Example: `
  graphlab mst ring.json
  graphlab mst store:grid --method kruskal --draw
  graphlab mst roads.yaml --root depot --require-spanning
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0])
		},
	}
	addLayoutFlags(cmd)
	addRenderFlags(cmd)
	f := cmd.Flags()
	f.StringVar(&c.method, "method", pk.MethodPrim, "Algorithm: prim or kruskal")
	f.StringVar(&c.root, "root", "", "Start node for Prim (default: first node)")
	f.BoolVar(&c.requireSpanning, "require-spanning", false, "Fail when the graph is disconnected")
	f.BoolVar(&c.draw, "draw", false, "Draw the graph with the tree highlighted")

	return cmd
}

func (c *mstCmd) run(cmd *cobra.Command, ref string) error {
	g, err := c.readGraph(cmd.Context(), ref)
	if err != nil {
		return err
	}

	opts := []pk.Option{pk.WithMethod(c.method), pk.WithRoot(c.root)}
	if c.requireSpanning {
		opts = append(opts, pk.WithRequireSpanning())
	}
	edges, total, err := pk.Compute(g, pk.NewOptions(opts...))
	if err != nil {
		return err
	}
	c.Logger.Info("spanning tree computed", "method", c.method, "edges", len(edges), "total", total)

	for _, e := range edges {
		c.printf("%s - %s %g\n", e.Start, e.End, e.Weight)
	}
	c.printf("total: %g\n", total)

	if !c.draw {
		return nil
	}
	l, err := c.computeLayout(cmd, g)
	if err != nil {
		return err
	}
	out, err := render.Render(g, l, c.renderOptions(render.WithHighlight(edges))...)
	if err != nil {
		return err
	}
	c.printf("%s\n", out)

	return nil
}

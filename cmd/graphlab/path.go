package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/dijkstra"
	"github.com/katalvlaran/graphlab/render"
)

type pathCmd struct {
	*Context
	maxDistance float64
	draw        bool
}

// NewPathCmd builds a "graphlab path" command.
func NewPathCmd(cxt *Context) *cobra.Command {
	c := &pathCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:   "path <graph> <source> [target]",
		Short: "Find shortest paths with Dijkstra's algorithm",
		Long: `With a target, print the shortest distance and route between two nodes.
Without one, print the distance from source to every node ("inf" when
unreachable).`,
		Example: `
  graphlab path ring.json 0 3
  graphlab path store:grid 0,0 2,2 --draw
  graphlab path roads.yaml depot --max-distance 50
`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args)
		},
	}
	addLayoutFlags(cmd)
	addRenderFlags(cmd)
	f := cmd.Flags()
	f.Float64Var(&c.maxDistance, "max-distance", 0, "Stop exploring beyond this distance (0 means unbounded)")
	f.BoolVar(&c.draw, "draw", false, "Draw the graph with the path highlighted")

	return cmd
}

func (c *pathCmd) run(cmd *cobra.Command, args []string) error {
	g, err := c.readGraph(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	opts := []dijkstra.Option{dijkstra.Source(args[1])}
	if len(args) == 3 {
		opts = append(opts, dijkstra.Target(args[2]))
	}
	if c.maxDistance > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(c.maxDistance))
	}
	res, err := dijkstra.Dijkstra(g, opts...)
	if err != nil {
		return err
	}

	if len(args) == 2 {
		for _, id := range g.NodeIDs() {
			if res.Reachable(id) {
				c.printf("%s %g\n", id, res.Distances[id])
			} else {
				c.printf("%s inf\n", id)
			}
		}
		return nil
	}

	dist, path, err := res.PathTo(args[2])
	if err != nil {
		return err
	}
	c.Logger.Info("path found", "source", args[1], "target", args[2], "hops", len(path))
	c.printf("distance: %g\n", dist)
	c.printf("path: %s\n", strings.Join(res.Nodes(args[2]), " -> "))

	if !c.draw {
		return nil
	}
	l, err := c.computeLayout(cmd, g)
	if err != nil {
		return err
	}
	out, err := render.Render(g, l, c.renderOptions(render.WithHighlight(path))...)
	if err != nil {
		return err
	}
	c.printf("%s\n", out)

	return nil
}

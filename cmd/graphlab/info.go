package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/bfs"
	"github.com/katalvlaran/graphlab/dfs"
)

type traverseCmd struct {
	*Context
	order    string
	maxDepth int
}

// NewTraverseCmd builds a "graphlab traverse" command.
func NewTraverseCmd(cxt *Context) *cobra.Command {
	c := &traverseCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:   "traverse <graph> <start>",
		Short: "Print the breadth- or depth-first visit order from a node",
		Example: `
  graphlab traverse ring.json 0
  graphlab traverse store:grid 0,0 --order dfs --max-depth 3
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0], args[1])
		},
	}
	f := cmd.Flags()
	f.StringVar(&c.order, "order", "bfs", "Traversal: bfs or dfs (pre-order)")
	f.IntVar(&c.maxDepth, "max-depth", 0, "Stop below this depth (0 means unlimited)")

	return cmd
}

func (c *traverseCmd) run(cmd *cobra.Command, ref, start string) error {
	g, err := c.readGraph(cmd.Context(), ref)
	if err != nil {
		return err
	}

	var order []string
	switch strings.ToLower(c.order) {
	case "bfs":
		opts := []bfs.Option{bfs.WithContext(cmd.Context())}
		if c.maxDepth > 0 {
			opts = append(opts, bfs.WithMaxDepth(c.maxDepth))
		}
		res, err := bfs.BFS(g, start, opts...)
		if err != nil {
			return err
		}
		order = res.Order
	case "dfs":
		opts := []dfs.Option{dfs.WithContext(cmd.Context())}
		if c.maxDepth > 0 {
			opts = append(opts, dfs.WithMaxDepth(c.maxDepth))
		}
		res, err := dfs.DFS(g, start, opts...)
		if err != nil {
			return err
		}
		order = res.Preorder
	default:
		return fmt.Errorf("unknown traversal order %q (want bfs or dfs)", c.order)
	}
	c.printf("%s\n", strings.Join(order, " "))

	return nil
}

type componentsCmd struct {
	*Context
}

// NewComponentsCmd builds a "graphlab components" command.
func NewComponentsCmd(cxt *Context) *cobra.Command {
	c := &componentsCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:   "components <graph>",
		Short: "List connected components, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0])
		},
	}

	return cmd
}

func (c *componentsCmd) run(cmd *cobra.Command, ref string) error {
	g, err := c.readGraph(cmd.Context(), ref)
	if err != nil {
		return err
	}
	comps := bfs.Components(g)
	c.Logger.Debug("components found", "count", len(comps))
	for _, comp := range comps {
		c.printf("%s\n", strings.Join(comp, " "))
	}

	return nil
}

type infoCmd struct {
	*Context
}

// NewInfoCmd builds a "graphlab info" command.
func NewInfoCmd(cxt *Context) *cobra.Command {
	c := &infoCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:   "info <graph>",
		Short: "Print node, edge and weight statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0])
		},
	}

	return cmd
}

func (c *infoCmd) run(cmd *cobra.Command, ref string) error {
	g, err := c.readGraph(cmd.Context(), ref)
	if err != nil {
		return err
	}
	st := g.Stats()
	c.printf("nodes: %d\n", st.NodeCount)
	c.printf("edges: %d\n", st.EdgeCount)
	c.printf("self-loops: %d\n", st.SelfLoopCount)
	c.printf("total weight: %g\n", st.TotalWeight)
	c.printf("negative weights: %t\n", st.HasNegative)
	c.printf("components: %d\n", len(bfs.Components(g)))

	_, cycles, err := dfs.DetectCycles(g)
	if err != nil {
		return err
	}
	c.printf("independent cycles: %d\n", len(cycles))

	return nil
}

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/core"
	"github.com/katalvlaran/graphlab/internal/config"
	"github.com/katalvlaran/graphlab/layout"
	"github.com/katalvlaran/graphlab/render"
)

type layoutCmd struct {
	*Context
	output string
	draw   bool
}

// NewLayoutCmd builds a "graphlab layout" command.
func NewLayoutCmd(cxt *Context) *cobra.Command {
	c := &layoutCmd{Context: cxt}
	cmd := &cobra.Command{
		Use:   "layout <graph>",
		Short: "Compute node positions and write them back",
		Example: `
  graphlab layout ring.json --layout stress
  graphlab layout store:grid --layout spring --seed 3 -o store:grid
  graphlab layout ring.json --draw
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args[0])
		},
	}
	addLayoutFlags(cmd)
	f := cmd.Flags()
	f.StringVarP(&c.output, "output", "o", "", "Write the positioned graph here instead of printing coordinates")
	f.BoolVar(&c.draw, "draw", false, "Draw the result instead of printing coordinates")

	return cmd
}

// addLayoutFlags declares the flags bound to the layout.* config keys.
func addLayoutFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("layout", "force", "Strategy: random, stress, force or spring")
	f.Int64("seed", 0, "Seed for the initial placement (random: 0 means clock-based)")
	f.Int("iterations", 0, "Iteration count (0 keeps the strategy default)")
}

// addRenderFlags declares the flags bound to the render.* config keys.
func addRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("width", render.DefaultWidth, "Canvas width in cells")
	f.Int("height", render.DefaultHeight, "Canvas height in cells")
	f.Bool("plain", false, "Disable colours")
	f.Bool("weights", false, "Annotate edges with their weights")
}

// strategyFor turns layout settings into a configured strategy.
func strategyFor(cfg config.LayoutConfig) (layout.Strategy, error) {
	kind, err := layout.ParseKind(cfg.Kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case layout.KindRandom:
		return layout.Random{Seed: cfg.Seed}, nil
	case layout.KindStress:
		return layout.StressMinimization{Iterations: cfg.Iterations}, nil
	case layout.KindForceDirected:
		return layout.ForceDirected{Iterations: cfg.Iterations, Seed: cfg.Seed}, nil
	default:
		return layout.SpringCharge{Iterations: cfg.Iterations, Seed: cfg.Seed}, nil
	}
}

// computeLayout runs the configured strategy on g and logs its duration.
func (c *Context) computeLayout(cmd *cobra.Command, g *core.Graph) (layout.Layout, error) {
	s, err := strategyFor(c.Config.Layout)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	l, err := s.Compute(cmd.Context(), g)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("layout computed",
		"strategy", s.Kind().String(),
		"nodes", g.NodeCount(),
		"elapsed", time.Since(start))

	return l, nil
}

// renderOptions maps render settings onto drawing options.
func (c *Context) renderOptions(extra ...render.Option) []render.Option {
	r := c.Config.Render
	opts := []render.Option{
		render.WithSize(r.Width, r.Height),
		render.WithPlain(r.Plain),
		render.WithWeights(r.Weights),
	}

	return append(opts, extra...)
}

func (c *layoutCmd) run(cmd *cobra.Command, ref string) error {
	g, err := c.readGraph(cmd.Context(), ref)
	if err != nil {
		return err
	}
	l, err := c.computeLayout(cmd, g)
	if err != nil {
		return err
	}
	if err := l.Apply(g); err != nil {
		return err
	}

	switch {
	case c.output != "":
		return c.writeGraph(cmd.Context(), c.output, g)
	case c.draw:
		out, err := render.Render(g, l, c.renderOptions()...)
		if err != nil {
			return err
		}
		c.printf("%s\n", out)
	default:
		for _, n := range g.Nodes() {
			c.printf("%s %.4f %.4f\n", n.ID, n.Position.X, n.Position.Y)
		}
	}

	return nil
}

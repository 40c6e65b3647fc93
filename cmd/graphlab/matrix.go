package main

import (
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphlab/matrix"
)

// NewMatrixCmd builds the "graphlab matrix" command group.
func NewMatrixCmd(cxt *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Convert between graphs and weight matrices",
		Long: `Weight matrices are plain text: one row per line, cells separated by
spaces, commas or tabs, "-" for no edge. An optional leading "# id id ..."
line names the nodes.`,
	}
	cmd.AddCommand(
		newMatrixImportCmd(cxt),
		newMatrixExportCmd(cxt),
		newMatrixDistancesCmd(cxt),
	)

	return cmd
}

// openInput returns stdin for "-" and the named file otherwise.
func (c *Context) openInput(path string) (io.ReadCloser, error) {
	if path == stdio {
		return io.NopCloser(c.In), nil
	}

	return os.Open(path)
}

func newMatrixImportCmd(cxt *Context) *cobra.Command {
	var (
		output    string
		adjacency bool
	)
	cmd := &cobra.Command{
		Use:     "import <matrix-file>",
		Short:   "Build a graph from a weight or adjacency matrix",
		Example: `  graphlab matrix import roads.txt -o store:roads`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := cxt.openInput(args[0])
			if err != nil {
				return err
			}
			defer r.Close()

			ids, m, err := matrix.ReadWeightMatrix(r)
			if err != nil {
				return err
			}
			var opts []matrix.Option
			if ids != nil {
				opts = append(opts, matrix.WithIDs(ids...))
			}
			build := matrix.FromWeightMatrix
			if adjacency {
				build = matrix.FromAdjacencyMatrix
			}
			g, err := build(m, opts...)
			if err != nil {
				return err
			}
			cxt.Logger.Info("matrix imported", "order", len(m), "edges", g.EdgeCount())

			return cxt.writeGraph(cmd.Context(), output, g)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", stdio, "Destination: file, store:<name> or - for stdout")
	f.BoolVar(&adjacency, "adjacency", false, "Treat every present cell as an edge of weight 1")

	return cmd
}

func newMatrixExportCmd(cxt *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "export <graph>",
		Short: "Print the weight matrix of a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cxt.readGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			ids, m, err := matrix.ToWeightMatrix(g)
			if err != nil {
				return err
			}

			return matrix.WriteWeightMatrix(cxt.Out, ids, m)
		},
	}
}

func newMatrixDistancesCmd(cxt *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "distances <graph>",
		Short: "Print all-pairs shortest distances (inf when unreachable)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cxt.readGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			ids, d, err := matrix.DistanceMatrix(g)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				return nil
			}
			cxt.printf("# %s\n", strings.Join(ids, " "))
			cells := make([]string, len(ids))
			for i := range ids {
				for j := range ids {
					v := d.At(i, j)
					if math.IsInf(v, 1) {
						cells[j] = "inf"
						continue
					}
					cells[j] = strconv.FormatFloat(v, 'g', -1, 64)
				}
				cxt.printf("%s\n", strings.Join(cells, " "))
			}
			return nil
		},
	}
}

package main

import (
	"time"

	"github.com/spf13/cobra"
)

// NewStoreCmd builds the "graphlab store" command group.
func NewStoreCmd(cxt *Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage graphs saved in the SQLite database",
		Long: `Graphs in the database (see --db) are addressed elsewhere as store:<name>.
These subcommands list, import, export and delete them.`,
	}
	cmd.AddCommand(
		newStoreListCmd(cxt),
		newStoreSaveCmd(cxt),
		newStoreLoadCmd(cxt),
		newStoreDeleteCmd(cxt),
	)

	return cmd
}

func newStoreListCmd(cxt *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := cxt.Store()
			if err != nil {
				return err
			}
			infos, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, in := range infos {
				cxt.printf("%s\t%d nodes\t%d edges\t%s\n",
					in.Name, in.Nodes, in.Edges, in.UpdatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}

func newStoreSaveCmd(cxt *Context) *cobra.Command {
	return &cobra.Command{
		Use:     "save <name> <graph>",
		Short:   "Save a graph file under name, replacing any previous version",
		Example: `  graphlab store save ring ring.json`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cxt.readGraph(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			if err := cxt.writeGraph(cmd.Context(), storePrefix+args[0], g); err != nil {
				return err
			}
			cxt.Logger.Info("graph saved", "name", args[0], "nodes", g.NodeCount(), "edges", g.EdgeCount())
			return nil
		},
	}
}

func newStoreLoadCmd(cxt *Context) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:     "load <name>",
		Short:   "Export a saved graph to a file or stdout",
		Example: `  graphlab store load ring -o ring.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cxt.readGraph(cmd.Context(), storePrefix+args[0])
			if err != nil {
				return err
			}
			return cxt.writeGraph(cmd.Context(), output, g)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", stdio, "Destination file, or - for stdout")

	return cmd
}

func newStoreDeleteCmd(cxt *Context) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := cxt.Store()
			if err != nil {
				return err
			}
			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			cxt.Logger.Info("graph deleted", "name", args[0])
			return nil
		},
	}
}

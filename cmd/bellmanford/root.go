package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bellman/bellmanford"
	"github.com/katalvlaran/bellman/wgraph"
)

// flags holds the parsed command-line flags of one invocation.
type flags struct {
	source      int
	destination int
	sourceSet   bool
	destSet     bool
	table       bool
	earlyExit   bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "bellmanford [flags] GRAPH_FILE",
		Short: "Shortest path on a weighted directed graph with negative weights",
		Long: `bellmanford runs the Bellman-Ford algorithm from the source node of a
graph description and prints the shortest path to its destination.

Files ending in .yaml or .yml are read as YAML, anything else as the
plain text format.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.sourceSet = cmd.Flags().Changed("source")
			f.destSet = cmd.Flags().Changed("destination")

			return run(cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), f.verbose), args[0], f)
		},
	}

	cmd.Flags().IntVarP(&f.source, "source", "s", 0, "source node (default: from the graph file)")
	cmd.Flags().IntVarP(&f.destination, "destination", "d", 0, "destination node (default: from the graph file)")
	cmd.Flags().BoolVar(&f.table, "table", false, "also print the distance and predecessor of every node")
	cmd.Flags().BoolVar(&f.earlyExit, "early-exit", false, "stop relaxing once a pass changes nothing")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging on stderr")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run loads path, builds the engine and writes the result to out.
// Negative cycles and unreachable destinations are printed, not returned.
func run(out io.Writer, logger *slog.Logger, path string, f flags) error {
	p, err := wgraph.Load(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if f.sourceSet {
		p.Source = f.source
	}
	if f.destSet {
		p.Destination = f.destination
	}
	if err = p.Validate(); err != nil {
		return err
	}
	logger.Debug("graph loaded",
		slog.String("file", path),
		slog.Int("nodes", p.Graph.NodeCount()),
		slog.Int("edges", p.Graph.EdgeCount()),
		slog.Int("source", p.Source),
		slog.Int("destination", p.Destination))

	opts := []bellmanford.Option{bellmanford.WithLogger(logger)}
	if f.earlyExit {
		opts = append(opts, bellmanford.WithEarlyExit())
	}

	eng, err := bellmanford.New(p.Graph, p.Source, opts...)
	if errors.Is(err, bellmanford.ErrNegativeCycle) {
		_, err = fmt.Fprintln(out, err.Error())
		return err
	}
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(out, eng.PathString(p.Destination)); err != nil {
		return err
	}
	if f.table {
		return writeTable(out, eng)
	}

	return nil
}

// writeTable prints one aligned row per node.
func writeTable(out io.Writer, eng *bellmanford.Engine) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "node\tdistance\tpredecessor"); err != nil {
		return err
	}
	for v, d := range eng.Distances() {
		pred := "-"
		if p, _ := eng.Predecessor(v); p != bellmanford.NoPredecessor {
			pred = fmt.Sprint(p)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\n", v, d, pred); err != nil {
			return err
		}
	}

	return tw.Flush()
}

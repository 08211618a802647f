package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/algotrace/internal/catalog"
	"github.com/san-kum/algotrace/internal/viz"
)

var (
	verbose    bool
	configFile string
	preset     string
	format     string
	outPath    string
	savePath   string

	values    []float64
	target    float64
	treeVals  []int
	deletions []int
	order     string
	nodes     []int
	edges     []string
	start     int
	stepIndex int
	fps       int
	theme     string
)

var registry = catalog.NewRegistry()

// main registers commands and flags, opens the preset menu when no subcommand is given,
// and exits with status 1 when a command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:   "algotrace",
		Short: "record and replay instrumented algorithm traces",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.Run(viz.NewMenu(registry, viz.Options{FPS: fps, Theme: theme}))
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "session config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a built-in dataset")
	rootCmd.PersistentFlags().StringVar(&savePath, "save", "", "write the resolved session config to this path")
	rootCmd.Flags().IntVar(&fps, "fps", 0, "playback frame rate")
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	sortCmd := &cobra.Command{
		Use:   "sort [algorithm]",
		Short: "record a sorting trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSort,
	}
	sortCmd.Flags().Float64SliceVar(&values, "values", nil, "input values, comma separated")
	outputFlags(sortCmd)

	searchCmd := &cobra.Command{
		Use:   "search [algorithm]",
		Short: "record a searching trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSearch,
	}
	searchCmd.Flags().Float64SliceVar(&values, "values", nil, "input values, comma separated")
	searchCmd.Flags().Float64Var(&target, "target", 0, "value to search for")
	outputFlags(searchCmd)

	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "record traced BST inserts and deletes",
		Args:  cobra.NoArgs,
		RunE:  runTree,
	}
	treeFlags(treeCmd)
	outputFlags(treeCmd)

	graphCmd := &cobra.Command{
		Use:   "graph [bfs|dfs]",
		Short: "record a graph traversal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGraph,
	}
	graphFlags(graphCmd)
	outputFlags(graphCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms",
		Args:  cobra.NoArgs,
		RunE:  listAlgorithms,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list built-in datasets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [algorithm]",
		Short: "plot per-step progress of a sort or search",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotTrace,
	}
	plotCmd.Flags().Float64SliceVar(&values, "values", nil, "input values, comma separated")
	plotCmd.Flags().Float64Var(&target, "target", 0, "value to search for")

	verifyCmd := &cobra.Command{
		Use:   "verify [algorithm]",
		Short: "replay a sort or search trace and check it against its input",
		Args:  cobra.MaximumNArgs(1),
		RunE:  verifyTrace,
	}
	verifyCmd.Flags().Float64SliceVar(&values, "values", nil, "input values, comma separated")
	verifyCmd.Flags().Float64Var(&target, "target", 0, "value to search for")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "run several sorts on the same input and compare their traces",
		RunE:  compareSorts,
	}
	compareCmd.Flags().Float64SliceVar(&values, "values", nil, "input values, comma separated")

	playCmd := &cobra.Command{
		Use:   "play [sort|search|tree|graph] [algorithm]",
		Short: "replay a trace in the terminal",
		Args:  cobra.MaximumNArgs(2),
		RunE:  playTrace,
	}
	playCmd.Flags().Float64SliceVar(&values, "values", nil, "input values, comma separated")
	playCmd.Flags().Float64Var(&target, "target", 0, "value to search for")
	treeFlags(playCmd)
	graphFlags(playCmd)
	playCmd.Flags().IntVar(&fps, "fps", 0, "playback frame rate")
	playCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	rootCmd.AddCommand(sortCmd, searchCmd, treeCmd, graphCmd, listCmd, presetsCmd, plotCmd, verifyCmd, compareCmd, playCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func outputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, csv, svg or pretty")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write output to a file instead of stdout")
	cmd.Flags().IntVar(&stepIndex, "step", -1, "step drawn by svg output (default last)")
}

func treeFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&treeVals, "insert", nil, "values to insert, comma separated")
	cmd.Flags().IntSliceVar(&deletions, "delete", nil, "values to delete after inserting")
	cmd.Flags().StringVar(&order, "order", "inorder", "traversal order: inorder, preorder or postorder")
}

func graphFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&nodes, "nodes", nil, "node ids, comma separated (default: edge endpoints)")
	cmd.Flags().StringSliceVar(&edges, "edges", nil, "edges as a-b pairs, comma separated")
	cmd.Flags().IntVar(&start, "start", 0, "start node")
}

func setupLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

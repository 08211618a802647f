package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/san-kum/algotrace/internal/catalog"
	"github.com/san-kum/algotrace/internal/config"
	"github.com/san-kum/algotrace/internal/metrics"
	"github.com/san-kum/algotrace/internal/replay"
	"github.com/san-kum/algotrace/internal/trace"
	"github.com/san-kum/algotrace/internal/viz"
)

func runSort(cmd *cobra.Command, args []string) error {
	cfg, err := loadSession(cmd, config.ModeSort, args)
	if err != nil {
		return err
	}

	began := time.Now()
	tr, err := registry.Sort(cfg.Algorithm, cfg.Values)
	if err != nil {
		return err
	}
	slog.Debug("recorded trace", "algorithm", cfg.Algorithm, "steps", tr.Len(), "elapsed", time.Since(began))

	return writeArrayTrace(cfg, tr)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadSession(cmd, config.ModeSearch, args)
	if err != nil {
		return err
	}

	began := time.Now()
	tr, err := registry.Search(cfg.Algorithm, cfg.Values, cfg.Target)
	if err != nil {
		return err
	}
	slog.Debug("recorded trace", "algorithm", cfg.Algorithm, "steps", tr.Len(), "elapsed", time.Since(began))

	return writeArrayTrace(cfg, tr)
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadSession(cmd, config.ModeTree, args)
	if err != nil {
		return err
	}
	return writeTree(cfg)
}

func runGraph(cmd *cobra.Command, args []string) error {
	cfg, err := loadSession(cmd, config.ModeGraph, args)
	if err != nil {
		return err
	}
	return writeGraph(cfg)
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Kind", "Summary"})
	table.SetAutoWrapText(false)
	for _, e := range registry.List() {
		table.Append([]string{e.Name, string(e.Kind), e.Summary})
	}
	table.Render()
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	modes := config.Modes()
	if len(args) > 0 {
		modes = args
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Mode", "Preset", "Session"})
	table.SetAutoWrapText(false)
	rows := 0
	for _, mode := range modes {
		for _, name := range config.ListPresets(mode) {
			table.Append([]string{mode, name, describe(config.GetPreset(mode, name))})
			rows++
		}
	}
	if rows == 0 {
		fmt.Printf("no presets for mode: %v\n", modes)
		return nil
	}
	table.Render()
	return nil
}

// arraySession records a sort or search trace for the named algorithm.
func arraySession(cmd *cobra.Command, args []string) (*config.Config, trace.Trace[float64], error) {
	name := "bubble"
	if len(args) > 0 {
		name = args[0]
	}
	entry, err := registry.Lookup(name)
	if err != nil {
		return nil, nil, err
	}

	var tr trace.Trace[float64]
	var cfg *config.Config
	switch entry.Kind {
	case catalog.KindSort:
		if cfg, err = loadSession(cmd, config.ModeSort, []string{name}); err != nil {
			return nil, nil, err
		}
		tr, err = registry.Sort(name, cfg.Values)
	case catalog.KindSearch:
		if cfg, err = loadSession(cmd, config.ModeSearch, []string{name}); err != nil {
			return nil, nil, err
		}
		tr, err = registry.Search(name, cfg.Values, cfg.Target)
	default:
		return nil, nil, errors.Wrapf(catalog.ErrUnknownAlgorithm, "%s is a %s algorithm, not a sort or search", name, entry.Kind)
	}
	return cfg, tr, err
}

func plotTrace(cmd *cobra.Command, args []string) error {
	cfg, tr, err := arraySession(cmd, args)
	if err != nil {
		return err
	}
	if tr.Len() < 2 {
		return errors.Newf("%d steps, nothing to plot", tr.Len())
	}

	inversions := make([]float64, 0, tr.Len())
	window := make([]float64, 0, tr.Len())
	inv := metrics.NewInversions[float64]()

	p := replay.New(tr)
	p.AddMetric(metrics.NewWrites[float64]())
	p.AddMetric(metrics.NewComparisons[float64]())
	p.AddObserver(replay.ObserverFunc[trace.Step[float64]](func(s trace.Step[float64], pos int) {
		inv.Observe(s, pos)
		inversions = append(inversions, inv.Value())
		if s.Bounds != nil {
			window = append(window, float64(s.Bounds.Right-s.Bounds.Left+1))
		}
	}))
	result, err := p.Run(cmd.Context(), replay.Config{})
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", describe(cfg))
	fmt.Printf("steps: %d\n\n", result.Frames)

	series, caption := inversions, "inversions per step"
	if len(window) > 1 {
		series, caption = window, "search window per probe"
	}
	fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption(caption)))

	fmt.Println("\nmetrics:")
	for _, name := range []string{"comparisons", "writes"} {
		fmt.Printf("  %s: %.0f\n", name, result.Metrics[name])
	}
	return nil
}

func verifyTrace(cmd *cobra.Command, args []string) error {
	cfg, tr, err := arraySession(cmd, args)
	if err != nil {
		return err
	}
	if err := trace.Verify(cfg.Values, tr); err != nil {
		return errors.Wrapf(err, "%s", describe(cfg))
	}
	if cfg.Mode == config.ModeSort && !trace.IsSorted(tr.Final()) {
		return errors.Wrapf(trace.ErrInconsistent, "%s: final array %v is not sorted", describe(cfg), tr.Final())
	}
	fmt.Printf("ok: %s, %d steps consistent\n", describe(cfg), tr.Len())
	return nil
}

func compareSorts(cmd *cobra.Command, args []string) error {
	names := args
	if len(names) == 0 {
		names = registry.Names(catalog.KindSort)
	}
	cfg, err := loadSession(cmd, config.ModeSort, nil)
	if err != nil {
		return err
	}

	results, err := registry.Compare(cmd.Context(), names, cfg.Values)
	if err != nil {
		return err
	}

	fmt.Printf("input: %v\n\n", cfg.Values)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Algorithm", "Steps", "Comparisons", "Swaps", "Writes"})
	for _, c := range results {
		table.Append([]string{
			c.Name,
			fmt.Sprint(c.Steps),
			fmt.Sprintf("%.0f", c.Metrics["comparisons"]),
			fmt.Sprintf("%.0f", c.Metrics["swaps"]),
			fmt.Sprintf("%.0f", c.Metrics["writes"]),
		})
	}
	table.Render()
	return nil
}

func playTrace(cmd *cobra.Command, args []string) error {
	opts := viz.Options{FPS: fps, Theme: theme}
	if len(args) == 0 && configFile == "" && preset == "" {
		return viz.Run(viz.NewMenu(registry, opts))
	}

	mode := config.ModeSort
	if len(args) > 0 {
		mode = args[0]
		args = args[1:]
	} else if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return err
		}
		mode = loaded.Mode
	}
	if _, ok := defaultPresets[mode]; !ok {
		return trace.InvalidArgument("unknown mode %q (available: %v)", mode, config.Modes())
	}

	cfg, err := loadSession(cmd, mode, args)
	if err != nil {
		return err
	}
	m, err := viz.FromConfig(cfg, registry)
	if err != nil {
		return err
	}
	return viz.Run(m)
}

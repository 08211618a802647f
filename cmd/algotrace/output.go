package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kr/pretty"
	"github.com/olekukonko/tablewriter"

	"github.com/san-kum/algotrace/internal/bst"
	"github.com/san-kum/algotrace/internal/catalog"
	"github.com/san-kum/algotrace/internal/config"
	"github.com/san-kum/algotrace/internal/export"
	"github.com/san-kum/algotrace/internal/metrics"
	"github.com/san-kum/algotrace/internal/searching"
	"github.com/san-kum/algotrace/internal/trace"
)

const (
	svgWidth  = 640
	svgHeight = 320
)

// openOutput returns stdout or the --out file.
func openOutput() (io.Writer, func() error, error) {
	if outPath == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "create output")
	}
	slog.Debug("writing output", "path", outPath, "format", format)
	return f, f.Close, nil
}

func withOutput(write func(io.Writer) error) error {
	w, closeFn, err := openOutput()
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

// pick returns frames[stepIndex], or the last frame when stepIndex is negative.
func pick[S any](frames []S) (S, error) {
	var zero S
	if len(frames) == 0 {
		return zero, errors.New("trace is empty")
	}
	i := stepIndex
	if i < 0 {
		i = len(frames) - 1
	}
	if i >= len(frames) {
		return zero, trace.InvalidArgument("step %d outside [0,%d)", i, len(frames))
	}
	return frames[i], nil
}

func unsupportedFormat(mode string) error {
	return trace.InvalidArgument("format %q not supported for %s", format, mode)
}

func writeArrayTrace(cfg *config.Config, tr trace.Trace[float64]) error {
	summary := metrics.Summarize(tr)

	return withOutput(func(w io.Writer) error {
		switch format {
		case "text":
			return arrayTable(w, cfg, tr, summary)
		case "json":
			return export.WriteJSON(w, export.NewDocument(cfg.Mode, cfg.Algorithm, cfg.Values, tr, summary))
		case "csv":
			return export.WriteCSV(w, tr)
		case "svg":
			s, err := pick(tr)
			if err != nil {
				return err
			}
			_, err = io.WriteString(w, export.StepSVG(s, svgWidth, svgHeight, export.DefaultPalette)+"\n")
			return err
		case "pretty":
			_, err := pretty.Fprintf(w, "%# v\n", tr)
			return err
		}
		return unsupportedFormat(cfg.Mode)
	})
}

func arrayTable(w io.Writer, cfg *config.Config, tr trace.Trace[float64], summary map[string]float64) error {
	search := cfg.Mode == config.ModeSearch

	table := tablewriter.NewWriter(w)
	header := []string{"Step", "Kind", "Comparing", "Swapping"}
	if search {
		header = append(header, "Window", "Found")
	}
	table.SetHeader(append(header, "Array"))
	table.SetAutoWrapText(false)

	for i, s := range tr {
		row := []string{strconv.Itoa(i), string(s.Kind), ints(s.Comparing), ints(s.Swapping)}
		if search {
			window := ""
			if s.Bounds != nil {
				window = fmt.Sprintf("[%d,%d] mid %d", s.Bounds.Left, s.Bounds.Right, s.Bounds.Mid)
			}
			row = append(row, window, strconv.FormatBool(s.Found))
		}
		table.Append(append(row, fmt.Sprint(s.Array)))
	}
	table.Render()

	fmt.Fprintf(w, "\n%s\n", describeResult(cfg, tr))
	fmt.Fprintf(w, "steps: %.0f  comparisons: %.0f  swaps: %.0f  writes: %.0f  probes: %.0f\n",
		summary["steps"], summary["comparisons"], summary["swaps"], summary["writes"], summary["probes"])
	return nil
}

func describeResult(cfg *config.Config, tr trace.Trace[float64]) string {
	if cfg.Mode == config.ModeSearch {
		if i, ok := searching.Result(tr); ok {
			return fmt.Sprintf("found %g at index %d", cfg.Target, i)
		}
		return fmt.Sprintf("%g not found", cfg.Target)
	}
	return fmt.Sprintf("sorted: %v", tr.Final())
}

func writeTree(cfg *config.Config) error {
	o, err := bst.ParseOrder(cfg.Tree.Order)
	if err != nil {
		return err
	}
	tree, steps := catalog.BuildTree(cfg.Tree.Values, cfg.Tree.Delete)
	slog.Debug("recorded tree steps", "steps", len(steps), "size", tree.Len())

	return withOutput(func(w io.Writer) error {
		switch format {
		case "text":
			table := tablewriter.NewWriter(w)
			table.SetHeader([]string{"Step", "Action", "Value", "At"})
			for i, s := range steps {
				at := strconv.Itoa(s.At)
				if s.Action == bst.ActionMissing {
					at = ""
				}
				table.Append([]string{strconv.Itoa(i), string(s.Action), strconv.Itoa(s.Value), at})
			}
			table.Render()
			fmt.Fprintf(w, "\n%s: %v\n", o, tree.Traverse(o))
			fmt.Fprintf(w, "size: %d  height: %d\n", tree.Len(), tree.Height())
			return nil
		case "json":
			input := map[string][]int{"insert": cfg.Tree.Values, "delete": cfg.Tree.Delete}
			stats := map[string]float64{"size": float64(tree.Len()), "height": float64(tree.Height())}
			return export.WriteJSON(w, export.NewDocument(cfg.Mode, o.String(), input, steps, stats))
		case "csv":
			return export.WriteTreeCSV(w, steps)
		case "pretty":
			_, err := pretty.Fprintf(w, "%# v\n", tree.Snapshot())
			return err
		}
		return unsupportedFormat(cfg.Mode)
	})
}

func writeGraph(cfg *config.Config) error {
	g, rejected := catalog.BuildGraph(cfg.Graph.Nodes, cfg.Graph.Edges)
	for _, e := range rejected {
		slog.Warn("edge ignored", "edge", e.Key())
	}
	visits, err := g.Traversal(cfg.Graph.Traversal, cfg.Graph.Start)
	if err != nil {
		return err
	}
	view := g.Snapshot()

	return withOutput(func(w io.Writer) error {
		switch format {
		case "text":
			table := tablewriter.NewWriter(w)
			table.SetHeader([]string{"Step", "Node", "Edge", "Visited"})
			for i, v := range visits {
				edge := ""
				if v.Edge != nil {
					edge = v.Edge.Key()
				}
				table.Append([]string{strconv.Itoa(i), strconv.Itoa(v.Node), edge, ints(v.Visited)})
			}
			table.Render()
			fmt.Fprintf(w, "\nnodes: %d  edges: %d  reached: %d\n", g.Len(), g.EdgeCount(), len(visits))
			return nil
		case "json":
			stats := map[string]float64{"nodes": float64(g.Len()), "edges": float64(g.EdgeCount())}
			return export.WriteJSON(w, export.NewDocument(cfg.Mode, cfg.Graph.Traversal, view, visits, stats))
		case "csv":
			return export.WriteVisitsCSV(w, visits)
		case "svg":
			v, err := pick(visits)
			if err != nil {
				return err
			}
			_, err = io.WriteString(w, export.GraphSVG(view, &v, svgHeight, export.DefaultPalette)+"\n")
			return err
		case "pretty":
			_, err := pretty.Fprintf(w, "%# v\n", view)
			return err
		}
		return unsupportedFormat(cfg.Mode)
	})
}

func ints(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}


package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/algotrace/internal/bst"
	"github.com/san-kum/algotrace/internal/catalog"
	"github.com/san-kum/algotrace/internal/config"
	"github.com/san-kum/algotrace/internal/trace"
)

// FromConfig builds the player for a session config.
func FromConfig(cfg *config.Config, reg *catalog.Registry) (tea.Model, error) {
	opts := Options{FPS: cfg.Playback.FPS, Theme: cfg.Playback.Theme}

	switch cfg.Mode {
	case config.ModeSort:
		tr, err := reg.Sort(cfg.Algorithm, cfg.Values)
		if err != nil {
			return nil, err
		}
		return NewArrayPlayer(cfg.Algorithm+" sort", tr, opts), nil

	case config.ModeSearch:
		tr, err := reg.Search(cfg.Algorithm, cfg.Values, cfg.Target)
		if err != nil {
			return nil, err
		}
		return NewArrayPlayer(fmt.Sprintf("%s search for %g", cfg.Algorithm, cfg.Target), tr, opts), nil

	case config.ModeTree:
		order, err := bst.ParseOrder(cfg.Tree.Order)
		if err != nil {
			return nil, err
		}
		tree, steps := catalog.BuildTree(cfg.Tree.Values, cfg.Tree.Delete)
		title := fmt.Sprintf("bst %s: %s", order, joinValues(tree.Traverse(order)))
		return NewTreePlayer(title, steps, opts), nil

	case config.ModeGraph:
		g, _ := catalog.BuildGraph(cfg.Graph.Nodes, cfg.Graph.Edges)
		visits, err := g.Traversal(cfg.Graph.Traversal, cfg.Graph.Start)
		if err != nil {
			return nil, err
		}
		title := fmt.Sprintf("%s from %d", cfg.Graph.Traversal, cfg.Graph.Start)
		return NewGraphPlayer(title, g.Snapshot(), visits, opts), nil
	}
	return nil, trace.InvalidArgument("unknown mode %q", cfg.Mode)
}

func joinValues(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

// Package catalog maps algorithm names to trace generators over float64 values, the
// value domain of the CLI and the terminal player.
package catalog

import (
	"iter"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/searching"
	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/trace"
)

// ErrUnknownAlgorithm is returned for names that are not registered.
var ErrUnknownAlgorithm = errors.Wrap(trace.ErrInvalidArgument, "catalog: unknown algorithm")

// Kind groups algorithms by the input they take.
type Kind string

const (
	KindSort   Kind = "sort"
	KindSearch Kind = "search"
	KindGraph  Kind = "graph"
	KindTree   Kind = "tree"
)

// Entry describes one registered algorithm.
type Entry struct {
	Name    string
	Kind    Kind
	Summary string
}

type Registry struct {
	sorts    map[string]sorting.Generator[float64]
	searches map[string]searching.Generator[float64]
	entries  map[string]Entry
}

func NewRegistry() *Registry {
	r := &Registry{
		sorts:    make(map[string]sorting.Generator[float64]),
		searches: make(map[string]searching.Generator[float64]),
		entries:  make(map[string]Entry),
	}

	summaries := map[string]string{
		"bubble":    "adjacent compare/swap passes, no early exit",
		"insertion": "shift larger predecessors right, then insert",
		"merge":     "top-down merge, left half wins ties (stable)",
		"quick":     "Lomuto partition around the last element",
		"linear":    "scan left to right until the first match",
		"binary":    "halve a sorted window around its midpoint",
		"bfs":       "queue-based breadth-first traversal",
		"dfs":       "recursive pre-order depth-first traversal",
		"bst":       "binary search tree insert/delete/traverse",
	}

	for _, name := range sorting.Names() {
		gen, _ := sorting.Lookup[float64](name)
		r.sorts[name] = gen
		r.entries[name] = Entry{Name: name, Kind: KindSort, Summary: summaries[name]}
	}
	for _, name := range searching.Names() {
		gen, _ := searching.Lookup[float64](name)
		r.searches[name] = gen
		r.entries[name] = Entry{Name: name, Kind: KindSearch, Summary: summaries[name]}
	}
	for _, name := range graph.Traversals() {
		r.entries[name] = Entry{Name: name, Kind: KindGraph, Summary: summaries[name]}
	}
	r.entries["bst"] = Entry{Name: "bst", Kind: KindTree, Summary: summaries["bst"]}

	return r
}

// Sort runs the named sort over values.
func (r *Registry) Sort(name string, values []float64) (trace.Trace[float64], error) {
	gen, ok := r.sorts[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "sort %q", name)
	}
	return sorting.Run(values, gen), nil
}

// SortSteps is the lazy form of Sort.
func (r *Registry) SortSteps(name string, values []float64) (iter.Seq[trace.Step[float64]], error) {
	gen, ok := r.sorts[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "sort %q", name)
	}
	return sorting.Steps(values, gen), nil
}

// Search runs the named search for target over values.
func (r *Registry) Search(name string, values []float64, target float64) (trace.Trace[float64], error) {
	gen, ok := r.searches[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "search %q", name)
	}
	return searching.Run(values, target, gen)
}

// Lookup returns the entry for name.
func (r *Registry) Lookup(name string) (Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return e, nil
}

// List returns entries of the given kinds (all kinds when none given), sorted by kind
// then name.
func (r *Registry) List(kinds ...Kind) []Entry {
	want := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if len(kinds) == 0 || want[e.Kind] {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind > out[j].Kind
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Names returns the sorted names of the given kinds.
func (r *Registry) Names(kinds ...Kind) []string {
	entries := r.List(kinds...)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

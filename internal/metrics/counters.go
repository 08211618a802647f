// Package metrics holds per-trace counters fed frame by frame during replay.
package metrics

import (
	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/trace"
)

// Steps counts frames of any kind.
type Steps[S any] struct {
	n int
}

func NewSteps[S any]() *Steps[S] { return &Steps[S]{} }

func (s *Steps[S]) Name() string       { return "steps" }
func (s *Steps[S]) Observe(_ S, _ int) { s.n++ }
func (s *Steps[S]) Value() float64     { return float64(s.n) }
func (s *Steps[S]) Reset()             { s.n = 0 }

// KindCount counts array steps of a single kind.
type KindCount[T trace.Number] struct {
	name string
	kind trace.Kind
	n    int
}

func NewComparisons[T trace.Number]() *KindCount[T] {
	return &KindCount[T]{name: "comparisons", kind: trace.KindCompare}
}

func NewSwaps[T trace.Number]() *KindCount[T] {
	return &KindCount[T]{name: "swaps", kind: trace.KindSwap}
}

func NewProbes[T trace.Number]() *KindCount[T] {
	return &KindCount[T]{name: "probes", kind: trace.KindProbe}
}

func (k *KindCount[T]) Name() string { return k.name }

func (k *KindCount[T]) Observe(s trace.Step[T], _ int) {
	if s.Kind == k.kind {
		k.n++
	}
}

func (k *KindCount[T]) Value() float64 { return float64(k.n) }
func (k *KindCount[T]) Reset()         { k.n = 0 }

// Writes counts positions mutated across all steps. A swap counts as two writes.
type Writes[T trace.Number] struct {
	n int
}

func NewWrites[T trace.Number]() *Writes[T] { return &Writes[T]{} }

func (w *Writes[T]) Name() string { return "writes" }

func (w *Writes[T]) Observe(s trace.Step[T], _ int) {
	if s.Kind == trace.KindSwap && len(s.Swapping) == 2 && s.Swapping[0] == s.Swapping[1] {
		return
	}
	w.n += len(s.Swapping)
}

func (w *Writes[T]) Value() float64 { return float64(w.n) }
func (w *Writes[T]) Reset()         { w.n = 0 }

// Inversions reports the number of out-of-order pairs in the most recently observed array.
type Inversions[T trace.Number] struct {
	n int
}

func NewInversions[T trace.Number]() *Inversions[T] { return &Inversions[T]{} }

func (v *Inversions[T]) Name() string { return "inversions" }

func (v *Inversions[T]) Observe(s trace.Step[T], _ int) {
	v.n = 0
	for i := range s.Array {
		for j := i + 1; j < len(s.Array); j++ {
			if s.Array[i] > s.Array[j] {
				v.n++
			}
		}
	}
}

func (v *Inversions[T]) Value() float64 { return float64(v.n) }
func (v *Inversions[T]) Reset()         { v.n = 0 }

// TreeEdges counts traversal visits that discovered a node through an edge.
type TreeEdges struct {
	n int
}

func NewTreeEdges() *TreeEdges { return &TreeEdges{} }

func (e *TreeEdges) Name() string { return "tree_edges" }

func (e *TreeEdges) Observe(v graph.Visit, _ int) {
	if v.Edge != nil {
		e.n++
	}
}

func (e *TreeEdges) Value() float64 { return float64(e.n) }
func (e *TreeEdges) Reset()         { e.n = 0 }

// Summarize feeds every step of tr to the standard array counters.
func Summarize[T trace.Number](tr trace.Trace[T]) map[string]float64 {
	type counter interface {
		Name() string
		Observe(trace.Step[T], int)
		Value() float64
	}
	counters := []counter{
		NewSteps[trace.Step[T]](),
		NewComparisons[T](),
		NewSwaps[T](),
		NewWrites[T](),
		NewProbes[T](),
	}
	for i, s := range tr {
		for _, c := range counters {
			c.Observe(s, i)
		}
	}
	out := make(map[string]float64, len(counters))
	for _, c := range counters {
		out[c.Name()] = c.Value()
	}
	return out
}

package metrics

import (
	"testing"

	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/searching"
	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/trace"
)

func TestSummarizeBubble(t *testing.T) {
	got := Summarize(sorting.Bubble([]int{5, 3, 8, 1}))

	want := map[string]float64{
		"steps":       11,
		"comparisons": 6,
		"swaps":       4,
		"writes":      8,
		"probes":      0,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("expected %s=%v, got %v", name, v, got[name])
		}
	}
}

func TestSummarizeBinarySearch(t *testing.T) {
	tr, err := searching.Binary([]int{5, 10, 15, 20, 25}, 15)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	got := Summarize(tr)
	if got["probes"] != 1 {
		t.Errorf("expected 1 probe, got %v", got["probes"])
	}
	if got["writes"] != 0 {
		t.Errorf("expected 0 writes, got %v", got["writes"])
	}
}

func TestWritesSkipsSelfSwap(t *testing.T) {
	w := NewWrites[int]()
	w.Observe(trace.Step[int]{Kind: trace.KindSwap, Swapping: []int{2, 2}}, 0)
	if w.Value() != 0 {
		t.Errorf("expected self swap to write nothing, got %v", w.Value())
	}
	w.Observe(trace.Step[int]{Kind: trace.KindWrite, Swapping: []int{3}}, 1)
	if w.Value() != 1 {
		t.Errorf("expected 1 write, got %v", w.Value())
	}
}

func TestInversions(t *testing.T) {
	v := NewInversions[int]()

	v.Observe(trace.Step[int]{Array: []int{3, 2, 1}}, 0)
	if v.Value() != 3 {
		t.Errorf("expected 3 inversions, got %v", v.Value())
	}

	v.Observe(trace.Step[int]{Array: []int{1, 2, 3}}, 1)
	if v.Value() != 0 {
		t.Errorf("expected 0 inversions, got %v", v.Value())
	}
}

func TestTreeEdges(t *testing.T) {
	g := graph.New()
	for _, id := range []int{0, 1, 2} {
		g.AddNode(id)
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(0, 2)

	visits, err := g.BFS(0)
	if err != nil {
		t.Fatalf("bfs failed: %v", err)
	}

	m := NewTreeEdges()
	for i, v := range visits {
		m.Observe(v, i)
	}
	if m.Value() != 2 {
		t.Errorf("expected 2 tree edges, got %v", m.Value())
	}
}

func TestReset(t *testing.T) {
	tests := []struct {
		name   string
		metric interface {
			Observe(trace.Step[int], int)
			Value() float64
			Reset()
		}
	}{
		{"steps", NewSteps[trace.Step[int]]()},
		{"swaps", NewSwaps[int]()},
		{"writes", NewWrites[int]()},
		{"inversions", NewInversions[int]()},
	}

	step := trace.Step[int]{Kind: trace.KindSwap, Array: []int{2, 1}, Swapping: []int{0, 1}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.metric.Observe(step, 0)
			if tt.metric.Value() == 0 {
				t.Error("expected non-zero value")
			}
			tt.metric.Reset()
			if tt.metric.Value() != 0 {
				t.Errorf("expected zero after reset, got %v", tt.metric.Value())
			}
		})
	}
}

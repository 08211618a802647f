package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/metrics"
	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/trace"
)

func TestPlayerRun(t *testing.T) {
	tr := sorting.Bubble([]int{5, 3, 8, 1})

	p := New(tr)
	p.AddMetric(metrics.NewSteps[trace.Step[int]]())
	p.AddMetric(metrics.NewComparisons[int]())

	var seen []int
	p.AddObserver(ObserverFunc[trace.Step[int]](func(_ trace.Step[int], pos int) {
		seen = append(seen, pos)
	}))

	result, err := p.Run(context.Background(), Config{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Frames != 11 {
		t.Errorf("expected 11 frames, got %d", result.Frames)
	}
	if result.Last != 10 {
		t.Errorf("expected last frame 10, got %d", result.Last)
	}
	if result.Metrics["comparisons"] != 6 {
		t.Errorf("expected 6 comparisons, got %v", result.Metrics["comparisons"])
	}
	for i, pos := range seen {
		if pos != i {
			t.Fatalf("expected frames in order, got %v", seen)
		}
	}
}

func TestPlayerFromAndLimit(t *testing.T) {
	tr := sorting.Bubble([]int{5, 3, 8, 1})
	p := New(tr)

	result, err := p.Run(context.Background(), Config{From: 4, Limit: 3})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Frames != 3 {
		t.Errorf("expected 3 frames, got %d", result.Frames)
	}
	if result.Last != 6 {
		t.Errorf("expected last frame 6, got %d", result.Last)
	}
}

func TestPlayerReusesMetrics(t *testing.T) {
	p := New(sorting.Quick([]int{3, 1, 2}))
	p.AddMetric(metrics.NewSteps[trace.Step[int]]())

	first, err := p.Run(context.Background(), Config{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	second, err := p.Run(context.Background(), Config{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if first.Metrics["steps"] != second.Metrics["steps"] {
		t.Errorf("expected metrics reset between runs, got %v then %v",
			first.Metrics["steps"], second.Metrics["steps"])
	}
}

func TestPlayerGraphVisits(t *testing.T) {
	g := graph.New()
	for _, id := range []int{0, 1, 2, 3} {
		g.AddNode(id)
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	visits, err := g.DFS(0)
	if err != nil {
		t.Fatalf("dfs failed: %v", err)
	}

	p := New(visits)
	p.AddMetric(metrics.NewTreeEdges())
	result, err := p.Run(context.Background(), Config{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Metrics["tree_edges"] != 3 {
		t.Errorf("expected 3 tree edges, got %v", result.Metrics["tree_edges"])
	}
}

func TestPlayerCancel(t *testing.T) {
	p := New(sorting.Bubble([]int{9, 8, 7, 6, 5, 4, 3, 2, 1}))

	ctx, cancel := context.WithCancel(context.Background())
	p.AddObserver(ObserverFunc[trace.Step[int]](func(_ trace.Step[int], pos int) {
		if pos == 2 {
			cancel()
		}
	}))

	result, err := p.Run(ctx, Config{Interval: time.Millisecond})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result.Frames != 3 {
		t.Errorf("expected 3 frames before cancel, got %d", result.Frames)
	}
}

func TestPlayerEmpty(t *testing.T) {
	p := New[trace.Step[int]](nil)

	result, err := p.Run(context.Background(), Config{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Frames != 0 || result.Last != trace.NotFound {
		t.Errorf("expected no frames, got %d (last %d)", result.Frames, result.Last)
	}
}

func TestPlayerInvalidConfig(t *testing.T) {
	p := New(sorting.Bubble([]int{2, 1}))

	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative interval", Config{Interval: -time.Second}},
		{"negative limit", Config{Limit: -1}},
		{"negative start", Config{From: -1}},
		{"start past end", Config{From: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Run(context.Background(), tt.cfg)
			if !errors.Is(err, trace.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}

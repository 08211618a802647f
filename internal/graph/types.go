package graph

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/san-kum/algotrace/internal/trace"
)

var (
	// ErrNodeNotFound is returned when a traversal starts from an absent node.
	ErrNodeNotFound = errors.Wrap(trace.ErrInvalidArgument, "graph: node not found")

	// ErrUnknownTraversal is returned for a traversal name other than bfs or dfs.
	ErrUnknownTraversal = errors.Wrap(trace.ErrInvalidArgument, "graph: unknown traversal")
)

// Edge is an undirected edge in canonical form: From <= To.
type Edge struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// NewEdge returns the canonical edge between a and b.
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{From: a, To: b}
}

// Key is the canonical "from-to" encoding of the edge.
func (e Edge) Key() string {
	return fmt.Sprintf("%d-%d", e.From, e.To)
}

// Visit is one traversal step: the node just reached, every node visited so far in
// visit order, and the edge crossed to reach it (nil for the start node).
type Visit struct {
	Node    int   `json:"node"`
	Visited []int `json:"visited"`
	Edge    *Edge `json:"edge,omitempty"`
}

// View is a presentation snapshot of a graph.
type View struct {
	Nodes []int  `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

package graph

import (
	"slices"
)

// Graph is an undirected adjacency-list graph. Node insertion order is kept so that
// snapshots and traversals are deterministic.
type Graph struct {
	adj   map[int][]int
	order []int
	edges int
}

func New() *Graph {
	return &Graph{adj: make(map[int][]int)}
}

// FromView builds a graph from a node list and edge list. Edges naming unknown nodes
// are skipped, as with AddEdge.
func FromView(v View) *Graph {
	g := New()
	for _, id := range v.Nodes {
		g.AddNode(id)
	}
	for _, e := range v.Edges {
		g.AddEdge(e.From, e.To)
	}
	return g
}

// AddNode creates id with no neighbors. Adding an existing node is a no-op.
func (g *Graph) AddNode(id int) {
	if _, ok := g.adj[id]; ok {
		return
	}
	g.adj[id] = []int{}
	g.order = append(g.order, id)
}

// AddEdge connects a and b in both directions. It reports false and changes nothing
// when either endpoint is absent, when a == b, or when the edge already exists.
func (g *Graph) AddEdge(a, b int) bool {
	if a == b || !g.HasNode(a) || !g.HasNode(b) || g.HasEdge(a, b) {
		return false
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	g.edges++
	return true
}

func (g *Graph) HasNode(id int) bool {
	_, ok := g.adj[id]
	return ok
}

func (g *Graph) HasEdge(a, b int) bool {
	return slices.Contains(g.adj[a], b)
}

// Neighbors returns a copy of id's neighbor list in insertion order.
func (g *Graph) Neighbors(id int) []int {
	return slices.Clone(g.adj[id])
}

func (g *Graph) Len() int { return len(g.order) }

func (g *Graph) EdgeCount() int { return g.edges }

// Clear removes every node and edge.
func (g *Graph) Clear() {
	g.adj = make(map[int][]int)
	g.order = nil
	g.edges = 0
}

// Snapshot lists nodes in insertion order and each undirected edge once.
func (g *Graph) Snapshot() View {
	v := View{
		Nodes: slices.Clone(g.order),
		Edges: make([]Edge, 0, g.edges),
	}
	if v.Nodes == nil {
		v.Nodes = []int{}
	}
	seen := make(map[string]bool, g.edges)
	for _, id := range g.order {
		for _, nb := range g.adj[id] {
			e := NewEdge(id, nb)
			if seen[e.Key()] {
				continue
			}
			seen[e.Key()] = true
			v.Edges = append(v.Edges, e)
		}
	}
	return v
}

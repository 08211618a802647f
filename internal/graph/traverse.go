package graph

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// walker holds the mutable state of one traversal.
type walker struct {
	g       *Graph
	visited map[int]bool
	order   []int
	visits  []Visit
}

func (g *Graph) newWalker(start int) (*walker, error) {
	if !g.HasNode(start) {
		return nil, errors.Wrapf(ErrNodeNotFound, "start %d", start)
	}
	return &walker{
		g:       g,
		visited: make(map[int]bool, len(g.order)),
		order:   make([]int, 0, len(g.order)),
		visits:  make([]Visit, 0, len(g.order)),
	}, nil
}

// visit marks id visited and records the step. from is ignored for the start node.
func (w *walker) visit(id, from int, root bool) {
	w.visited[id] = true
	w.order = append(w.order, id)
	v := Visit{Node: id, Visited: slices.Clone(w.order)}
	if !root {
		e := NewEdge(from, id)
		v.Edge = &e
	}
	w.visits = append(w.visits, v)
}

// BFS returns the breadth-first visit trace from start. Neighbors are discovered in
// neighbor-list order; each discovery is one step.
func (g *Graph) BFS(start int) ([]Visit, error) {
	w, err := g.newWalker(start)
	if err != nil {
		return nil, err
	}

	w.visit(start, start, true)
	queue := []int{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range g.adj[cur] {
			if w.visited[nb] {
				continue
			}
			w.visit(nb, cur, false)
			queue = append(queue, nb)
		}
	}
	return w.visits, nil
}

// DFS returns the depth-first (pre-order) visit trace from start, recursing into the
// first unvisited neighbor before backtracking.
func (g *Graph) DFS(start int) ([]Visit, error) {
	w, err := g.newWalker(start)
	if err != nil {
		return nil, err
	}
	w.dfs(start, start, true)
	return w.visits, nil
}

func (w *walker) dfs(id, from int, root bool) {
	w.visit(id, from, root)
	for _, nb := range w.g.adj[id] {
		if !w.visited[nb] {
			w.dfs(nb, id, false)
		}
	}
}

// Traversal selects BFS or DFS by name.
func (g *Graph) Traversal(name string, start int) ([]Visit, error) {
	switch name {
	case "bfs":
		return g.BFS(start)
	case "dfs":
		return g.DFS(start)
	}
	return nil, errors.Wrapf(ErrUnknownTraversal, "%q", name)
}

// Traversals lists the names accepted by Traversal.
func Traversals() []string {
	return []string{"bfs", "dfs"}
}

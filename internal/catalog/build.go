package catalog

import (
	"github.com/san-kum/algotrace/internal/bst"
	"github.com/san-kum/algotrace/internal/graph"
)

// BuildTree inserts then deletes values on a fresh tree, recording every traced step.
func BuildTree(insert, remove []int) (*bst.Tree[int], []bst.Step[int]) {
	t := bst.New[int]()
	var steps []bst.Step[int]
	for _, v := range insert {
		steps = append(steps, t.InsertSteps(v)...)
	}
	for _, v := range remove {
		steps = append(steps, t.DeleteSteps(v)...)
	}
	return t, steps
}

// BuildGraph adds nodes then edges. With no nodes listed, edge endpoints are added in
// order of first appearance. It returns the edges the graph rejected (missing endpoint,
// self-loop or duplicate).
func BuildGraph(nodes []int, edges [][2]int) (*graph.Graph, []graph.Edge) {
	g := graph.New()
	for _, id := range nodes {
		g.AddNode(id)
	}
	if len(nodes) == 0 {
		for _, e := range edges {
			g.AddNode(e[0])
			g.AddNode(e[1])
		}
	}

	var rejected []graph.Edge
	for _, e := range edges {
		if !g.AddEdge(e[0], e[1]) {
			rejected = append(rejected, graph.NewEdge(e[0], e[1]))
		}
	}
	return g, rejected
}

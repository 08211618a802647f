package graph_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/trace"
)

func pathGraph() *graph.Graph {
	return graph.FromView(graph.View{
		Nodes: []int{0, 1, 2, 3},
		Edges: []graph.Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}},
	})
}

func nodes(visits []graph.Visit) []int {
	out := make([]int, len(visits))
	for i, v := range visits {
		out[i] = v.Node
	}
	return out
}

// randomConnected links every node to an earlier one, then sprinkles extra edges.
func randomConnected(rng *rand.Rand, n int) *graph.Graph {
	g := graph.New()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 1; i < n; i++ {
		g.AddEdge(rng.Intn(i), i)
	}
	for i := 0; i < n; i++ {
		g.AddEdge(rng.Intn(n), rng.Intn(n))
	}
	return g
}

var _ = Describe("Graph", func() {
	Describe("mutation", func() {
		It("adds nodes idempotently", func() {
			g := graph.New()
			g.AddNode(1)
			g.AddNode(1)
			Expect(g.Len()).To(Equal(1))
			Expect(g.Neighbors(1)).To(BeEmpty())
		})

		It("keeps adjacency symmetric", func() {
			g := pathGraph()
			Expect(g.Neighbors(1)).To(Equal([]int{0, 2}))
			Expect(g.HasEdge(2, 1)).To(BeTrue())
			Expect(g.EdgeCount()).To(Equal(3))
		})

		It("ignores edges to absent nodes", func() {
			g := graph.New()
			g.AddNode(0)
			Expect(g.AddEdge(0, 5)).To(BeFalse())
			Expect(g.Neighbors(0)).To(BeEmpty())
			Expect(g.HasNode(5)).To(BeFalse())
		})

		It("rejects duplicate edges in either direction", func() {
			g := pathGraph()
			Expect(g.AddEdge(0, 1)).To(BeFalse())
			Expect(g.AddEdge(1, 0)).To(BeFalse())
			Expect(g.Neighbors(0)).To(Equal([]int{1}))
			Expect(g.EdgeCount()).To(Equal(3))
		})

		It("rejects self-loops", func() {
			g := pathGraph()
			Expect(g.AddEdge(2, 2)).To(BeFalse())
			Expect(g.Neighbors(2)).To(Equal([]int{1, 3}))
		})

		It("clears everything", func() {
			g := pathGraph()
			g.Clear()
			Expect(g.Len()).To(BeZero())
			Expect(g.Snapshot().Nodes).To(BeEmpty())
			Expect(g.Snapshot().Edges).To(BeEmpty())
		})

		It("returns neighbor copies", func() {
			g := pathGraph()
			nb := g.Neighbors(1)
			nb[0] = 42
			Expect(g.Neighbors(1)).To(Equal([]int{0, 2}))
		})
	})

	Describe("Snapshot", func() {
		It("lists nodes in insertion order and each edge once", func() {
			g := graph.New()
			for _, id := range []int{3, 1, 2} {
				g.AddNode(id)
			}
			g.AddEdge(3, 1)
			g.AddEdge(2, 1)

			v := g.Snapshot()
			Expect(v.Nodes).To(Equal([]int{3, 1, 2}))
			Expect(v.Edges).To(Equal([]graph.Edge{{From: 1, To: 3}, {From: 1, To: 2}}))
		})
	})

	Describe("Edge", func() {
		It("canonicalizes endpoints", func() {
			Expect(graph.NewEdge(4, 2)).To(Equal(graph.Edge{From: 2, To: 4}))
			Expect(graph.NewEdge(4, 2).Key()).To(Equal("2-4"))
		})
	})

	Describe("BFS", func() {
		It("walks a path in order", func() {
			visits, err := pathGraph().BFS(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes(visits)).To(Equal([]int{0, 1, 2, 3}))
			Expect(visits[0].Edge).To(BeNil())
			Expect(visits[0].Visited).To(Equal([]int{0}))
			Expect(visits[3].Edge.Key()).To(Equal("2-3"))
			Expect(visits[3].Visited).To(Equal([]int{0, 1, 2, 3}))
		})

		It("visits a whole layer before going deeper", func() {
			g := graph.FromView(graph.View{
				Nodes: []int{0, 1, 2, 3, 4},
				Edges: []graph.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}},
			})
			visits, err := g.BFS(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes(visits)).To(Equal([]int{0, 1, 2, 3, 4}))
		})

		It("reports crossed edges canonically when walking from the high end", func() {
			visits, err := pathGraph().BFS(3)
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes(visits)).To(Equal([]int{3, 2, 1, 0}))
			Expect(*visits[1].Edge).To(Equal(graph.Edge{From: 2, To: 3}))
		})

		It("fails for a missing start node", func() {
			_, err := pathGraph().BFS(9)
			Expect(err).To(MatchError(graph.ErrNodeNotFound))
			Expect(err).To(MatchError(trace.ErrInvalidArgument))
		})
	})

	Describe("DFS", func() {
		It("recurses into the first unvisited neighbor", func() {
			g := graph.FromView(graph.View{
				Nodes: []int{0, 1, 2, 3, 4},
				Edges: []graph.Edge{{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}},
			})
			visits, err := g.DFS(0)
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes(visits)).To(Equal([]int{0, 1, 3, 2, 4}))
			Expect(visits[3].Edge.Key()).To(Equal("0-2"))
		})

		It("fails for a missing start node", func() {
			_, err := graph.New().DFS(0)
			Expect(err).To(MatchError(trace.ErrInvalidArgument))
		})
	})

	Describe("traversal properties", func() {
		DescribeTable("visit every node once along existing edges",
			func(name string) {
				rng := rand.New(rand.NewSource(5))
				for round := 0; round < 50; round++ {
					g := randomConnected(rng, 1+rng.Intn(15))
					visits, err := g.Traversal(name, 0)
					Expect(err).NotTo(HaveOccurred())
					Expect(visits).To(HaveLen(g.Len()))

					seen := map[int]bool{}
					for i, v := range visits {
						Expect(seen[v.Node]).To(BeFalse())
						Expect(v.Visited).To(HaveLen(i + 1))
						Expect(v.Visited[i]).To(Equal(v.Node))
						if i == 0 {
							Expect(v.Edge).To(BeNil())
						} else {
							other := v.Edge.From
							if other == v.Node {
								other = v.Edge.To
							}
							Expect(seen[other]).To(BeTrue())
							Expect(g.HasEdge(v.Node, other)).To(BeTrue())
							Expect(v.Visited[:i]).To(Equal(visits[i-1].Visited))
						}
						seen[v.Node] = true
					}
				}
			},
			Entry("bfs", "bfs"),
			Entry("dfs", "dfs"),
		)

		It("rejects unknown traversal names", func() {
			_, err := pathGraph().Traversal("astar", 0)
			Expect(err).To(MatchError(graph.ErrUnknownTraversal))
		})
	})
})

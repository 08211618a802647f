package viz

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algotrace/internal/bst"
	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/metrics"
	"github.com/san-kum/algotrace/internal/trace"
)

const barRows = 8

// NewArrayPlayer plays a sort or search trace. The inversion count of every frame is
// plotted beside it.
func NewArrayPlayer(title string, tr trace.Trace[float64], opts Options) Model[trace.Step[float64]] {
	m := newModel(title, tr, renderArray, captionArray, opts)

	inv := metrics.NewInversions[float64]()
	m.series = make([]float64, len(tr))
	for i, s := range tr {
		inv.Observe(s, i)
		m.series[i] = inv.Value()
	}
	m.seriesName = inv.Name()
	m.stats = metrics.Summarize(tr)
	return m
}

// NewGraphPlayer plays traversal visits over the graph shape in v.
func NewGraphPlayer(title string, v graph.View, visits []graph.Visit, opts Options) Model[graph.Visit] {
	render := func(visit graph.Visit, th Theme) string { return renderGraph(v, visit, th) }
	m := newModel(title, visits, render, captionVisit, opts)
	m.stats = map[string]float64{
		"nodes": float64(len(v.Nodes)),
		"edges": float64(len(v.Edges)),
	}
	return m
}

// NewTreePlayer plays traced BST mutations.
func NewTreePlayer(title string, steps []bst.Step[int], opts Options) Model[bst.Step[int]] {
	return newModel(title, steps, renderTree, captionTree, opts)
}

func renderArray(s trace.Step[float64], th Theme) string {
	if len(s.Array) == 0 {
		return fg(th.Muted).Render("(empty)")
	}

	maxAbs := 0.0
	for _, v := range s.Array {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}
	if maxAbs == 0 {
		maxAbs = 1
	}

	heights := make([]int, len(s.Array))
	for i, v := range s.Array {
		heights[i] = int(math.Ceil(math.Abs(v) / maxAbs * barRows))
	}

	var b strings.Builder
	for level := barRows; level >= 1; level-- {
		for i, h := range heights {
			cell := "   "
			if h >= level {
				cell = fg(barColor(s, i, th)).Render("██") + " "
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	for i, v := range s.Array {
		label := strconv.FormatFloat(v, 'g', 3, 64)
		if len(label) > 2 {
			label = label[:2]
		}
		b.WriteString(fg(barColor(s, i, th)).Render(fmt.Sprintf("%-2s", label)) + " ")
	}
	b.WriteString("\n")
	return b.String()
}

func barColor(s trace.Step[float64], i int, th Theme) lipgloss.Color {
	for _, j := range s.Swapping {
		if j == i {
			return th.Swap
		}
	}
	for _, j := range s.Comparing {
		if j == i {
			if s.Found {
				return th.Found
			}
			return th.Compare
		}
	}
	if s.Bounds != nil && (i < s.Bounds.Left || i > s.Bounds.Right) {
		return th.Muted
	}
	return th.Bar
}

func captionArray(s trace.Step[float64]) string {
	switch s.Kind {
	case trace.KindCompare:
		return fmt.Sprintf("compare a[%d] and a[%d]", s.Comparing[0], s.Comparing[1])
	case trace.KindSwap:
		return fmt.Sprintf("swap a[%d] and a[%d]", s.Swapping[0], s.Swapping[1])
	case trace.KindWrite:
		return fmt.Sprintf("write %s", positions(s.Swapping))
	case trace.KindMark:
		return fmt.Sprintf("take key a[%d]", s.Comparing[0])
	case trace.KindProbe:
		c := fmt.Sprintf("probe a[%d]", s.Comparing[0])
		if s.Bounds != nil {
			c += fmt.Sprintf(" in [%d,%d]", s.Bounds.Left, s.Bounds.Right)
		}
		if s.Found {
			c += " found"
		}
		return c
	case trace.KindDone:
		return "done"
	}
	return string(s.Kind)
}

func renderGraph(v graph.View, visit graph.Visit, th Theme) string {
	visited := make(map[int]bool, len(visit.Visited))
	for _, id := range visit.Visited {
		visited[id] = true
	}

	adj := make(map[int][]int, len(v.Nodes))
	for _, e := range v.Edges {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	node := func(id int) string {
		label := strconv.Itoa(id)
		switch {
		case id == visit.Node:
			return fg(th.Compare).Bold(true).Render("(" + label + ")")
		case visited[id]:
			return fg(th.Visited).Render(" " + label + " ")
		}
		return fg(th.Muted).Render(" " + label + " ")
	}

	var b strings.Builder
	for _, id := range v.Nodes {
		b.WriteString(node(id) + " ─")
		for _, nb := range adj[id] {
			if visit.Edge != nil && graph.NewEdge(id, nb) == *visit.Edge {
				b.WriteString(fg(th.Swap).Render(" " + strconv.Itoa(nb)))
				continue
			}
			b.WriteString(" " + strconv.Itoa(nb))
		}
		b.WriteString("\n")
	}

	order := make([]string, len(visit.Visited))
	for i, id := range visit.Visited {
		order[i] = strconv.Itoa(id)
	}
	b.WriteString("\n" + fg(th.Visited).Render("visited: "+strings.Join(order, " → ")) + "\n")
	return b.String()
}

func captionVisit(v graph.Visit) string {
	if v.Edge == nil {
		return fmt.Sprintf("start at %d", v.Node)
	}
	return fmt.Sprintf("reach %d via %s", v.Node, v.Edge.Key())
}

// renderTree draws the tree rotated left: right subtrees above, left below.
func renderTree(s bst.Step[int], th Theme) string {
	if s.Tree == nil {
		return fg(th.Muted).Render("(empty tree)")
	}
	var b strings.Builder
	var walk func(n *bst.View[int], depth int)
	walk = func(n *bst.View[int], depth int) {
		if n == nil {
			return
		}
		walk(n.Right, depth+1)
		label := strconv.Itoa(n.Value)
		style := fg(th.Bar)
		if n.Value == s.At && s.Action != bst.ActionMissing && s.Action != bst.ActionRemove {
			style = fg(actionColor(s.Action, th)).Bold(true)
		}
		b.WriteString(strings.Repeat("    ", depth) + style.Render(label) + "\n")
		walk(n.Left, depth+1)
	}
	walk(s.Tree, 0)
	return b.String()
}

func actionColor(a bst.Action, th Theme) lipgloss.Color {
	switch a {
	case bst.ActionInsert:
		return th.Found
	case bst.ActionReplace, bst.ActionDuplicate:
		return th.Swap
	}
	return th.Compare
}

func captionTree(s bst.Step[int]) string {
	switch s.Action {
	case bst.ActionVisitLeft:
		return fmt.Sprintf("%d < %d, go left", s.Value, s.At)
	case bst.ActionVisitRight:
		return fmt.Sprintf("%d > %d, go right", s.Value, s.At)
	case bst.ActionInsert:
		return fmt.Sprintf("insert %d", s.Value)
	case bst.ActionDuplicate:
		return fmt.Sprintf("%d already present", s.Value)
	case bst.ActionReplace:
		return fmt.Sprintf("replace %d with successor %d", s.Value, s.At)
	case bst.ActionRemove:
		return fmt.Sprintf("remove %d", s.Value)
	case bst.ActionMissing:
		return fmt.Sprintf("%d not found", s.Value)
	}
	return string(s.Action)
}

func positions(idx []int) string {
	parts := make([]string, len(idx))
	for i, p := range idx {
		parts[i] = fmt.Sprintf("a[%d]", p)
	}
	return strings.Join(parts, ", ")
}

func sortedStatNames(stats map[string]float64) []string {
	names := make([]string, 0, len(stats))
	for k := range stats {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

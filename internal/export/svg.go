package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/trace"
)

// Palette colours SVG frames.
type Palette struct {
	Background string
	Bar        string
	Compare    string
	Swap       string
	Found      string
	Edge       string
	Text       string
}

var DefaultPalette = Palette{
	Background: "#0a0a0a",
	Bar:        "#4a9eff",
	Compare:    "#ffd700",
	Swap:       "#ff4a4a",
	Found:      "#00ff88",
	Edge:       "#555555",
	Text:       "#eeeeee",
}

// StepSVG draws one array step as vertical bars scaled to the largest magnitude.
func StepSVG[T trace.Number](s trace.Step[T], width, height int, p Palette) string {
	var sb strings.Builder
	header(&sb, width, height, p.Background)

	n := len(s.Array)
	if n > 0 {
		maxAbs := 0.0
		for _, v := range s.Array {
			maxAbs = math.Max(maxAbs, math.Abs(float64(v)))
		}
		if maxAbs == 0 {
			maxAbs = 1
		}

		slot := float64(width) / float64(n)
		gap := slot * 0.1
		for i, v := range s.Array {
			h := math.Abs(float64(v)) / maxAbs * float64(height-20)
			x := float64(i)*slot + gap/2
			y := float64(height) - h
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, slot-gap, h, barColor(s, i, p)))
		}
	}

	sb.WriteString(fmt.Sprintf(`<text x="4" y="14" fill="%s" font-family="monospace" font-size="12">%s</text>
`, p.Text, s.Kind))
	sb.WriteString("</svg>")
	return sb.String()
}

func barColor[T trace.Number](s trace.Step[T], i int, p Palette) string {
	for _, j := range s.Swapping {
		if j == i {
			return p.Swap
		}
	}
	for _, j := range s.Comparing {
		if j == i {
			if s.Found {
				return p.Found
			}
			return p.Compare
		}
	}
	return p.Bar
}

// GraphSVG draws the graph with nodes on a circle in insertion order. Nodes in visited
// are highlighted; the edge that discovered the last visit is drawn in the swap colour.
func GraphSVG(v graph.View, visit *graph.Visit, size int, p Palette) string {
	var sb strings.Builder
	header(&sb, size, size, p.Background)

	pos := make(map[int][2]float64, len(v.Nodes))
	r := float64(size) * 0.4
	c := float64(size) / 2
	for i, id := range v.Nodes {
		angle := 2*math.Pi*float64(i)/float64(len(v.Nodes)) - math.Pi/2
		pos[id] = [2]float64{c + r*math.Cos(angle), c + r*math.Sin(angle)}
	}

	visited := make(map[int]bool)
	var active string
	if visit != nil {
		for _, id := range visit.Visited {
			visited[id] = true
		}
		if visit.Edge != nil {
			active = visit.Edge.Key()
		}
	}

	for _, e := range v.Edges {
		a, b := pos[e.From], pos[e.To]
		color := p.Edge
		if e.Key() == active {
			color = p.Swap
		}
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="2"/>
`, a[0], a[1], b[0], b[1], color))
	}

	for _, id := range v.Nodes {
		xy := pos[id]
		fill := p.Bar
		if visited[id] {
			fill = p.Found
		}
		if visit != nil && visit.Node == id {
			fill = p.Compare
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="14" fill="%s"/>
<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12" text-anchor="middle">%d</text>
`, xy[0], xy[1], fill, xy[0], xy[1]+4, p.Background, id))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func header(sb *strings.Builder, width, height int, bg string) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg))
}

package config

// Presets are fixed datasets keyed by mode, then preset name.
var Presets = map[string]map[string]*Config{
	ModeSort: {
		"example": {
			Mode: ModeSort, Algorithm: "bubble",
			Values: []float64{5, 3, 8, 1},
		},
		"reversed": {
			Mode: ModeSort, Algorithm: "insertion",
			Values: []float64{9, 8, 7, 6, 5, 4, 3, 2, 1},
		},
		"sorted": {
			Mode: ModeSort, Algorithm: "quick",
			Values: []float64{1, 2, 3, 4, 5, 6, 7, 8},
		},
		"duplicates": {
			Mode: ModeSort, Algorithm: "merge",
			Values: []float64{4, 1, 4, 2, 1, 3, 2, 4},
		},
		"wide": {
			Mode: ModeSort, Algorithm: "quick",
			Values: []float64{38, 27, 43, 3, 9, 82, 10, 55, 1, 64, 17, 29, 71, 5, 46, 90},
		},
	},
	ModeSearch: {
		"example": {
			Mode: ModeSearch, Algorithm: "binary",
			Values: []float64{5, 10, 15, 20, 25}, Target: 15,
		},
		"absent": {
			Mode: ModeSearch, Algorithm: "binary",
			Values: []float64{5, 10, 15, 20, 25}, Target: 22,
		},
		"scan": {
			Mode: ModeSearch, Algorithm: "linear",
			Values: []float64{7, 3, 9, 1, 4, 8}, Target: 4,
		},
	},
	ModeTree: {
		"example": {
			Mode: ModeTree,
			Tree: TreeConfig{Values: []int{50, 30, 70, 20, 40}, Order: "inorder"},
		},
		"delete-root": {
			Mode: ModeTree,
			Tree: TreeConfig{Values: []int{50, 30, 70, 20, 40, 60, 80}, Delete: []int{50}, Order: "preorder"},
		},
		"chain": {
			Mode: ModeTree,
			Tree: TreeConfig{Values: []int{10, 20, 30, 40, 50}, Order: "postorder"},
		},
	},
	ModeGraph: {
		"path": {
			Mode: ModeGraph,
			Graph: GraphConfig{
				Nodes: []int{0, 1, 2, 3}, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}},
				Start: 0, Traversal: "bfs",
			},
		},
		"layered": {
			Mode: ModeGraph,
			Graph: GraphConfig{
				Nodes: []int{0, 1, 2, 3, 4}, Edges: [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 4}},
				Start: 0, Traversal: "dfs",
			},
		},
		"cycle": {
			Mode: ModeGraph,
			Graph: GraphConfig{
				Nodes: []int{0, 1, 2, 3, 4, 5}, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}},
				Start: 0, Traversal: "bfs",
			},
		},
		"star": {
			Mode: ModeGraph,
			Graph: GraphConfig{
				Nodes: []int{0, 1, 2, 3, 4}, Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}},
				Start: 3, Traversal: "dfs",
			},
		},
	},
}

// GetPreset returns a copy of the named preset with playback defaults filled in, or nil.
func GetPreset(mode, preset string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	p, ok := modePresets[preset]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Mode = p.Mode
	cfg.Algorithm = p.Algorithm
	cfg.Values = append([]float64(nil), p.Values...)
	cfg.Target = p.Target
	if p.Mode == ModeTree {
		cfg.Tree = TreeConfig{
			Values: append([]int(nil), p.Tree.Values...),
			Delete: append([]int(nil), p.Tree.Delete...),
			Order:  p.Tree.Order,
		}
	}
	if p.Mode == ModeGraph {
		cfg.Graph = GraphConfig{
			Nodes:     append([]int(nil), p.Graph.Nodes...),
			Edges:     append([][2]int(nil), p.Graph.Edges...),
			Start:     p.Graph.Start,
			Traversal: p.Graph.Traversal,
		}
	}
	return cfg
}

// ListPresets returns the sorted preset names of a mode, or nil for an unknown mode.
func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	return sortedKeys(modePresets)
}

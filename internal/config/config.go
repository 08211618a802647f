package config

import (
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/algotrace/internal/trace"
)

const (
	ModeSort   = "sort"
	ModeSearch = "search"
	ModeTree   = "tree"
	ModeGraph  = "graph"
)

const (
	DefaultFPS   = 8
	DefaultTheme = "default"
	MaxFPS       = 60
)

type Config struct {
	Mode      string         `yaml:"mode"`
	Algorithm string         `yaml:"algorithm"`
	Values    []float64      `yaml:"values,flow,omitempty"`
	Target    float64        `yaml:"target"`
	Tree      TreeConfig     `yaml:"tree"`
	Graph     GraphConfig    `yaml:"graph"`
	Playback  PlaybackConfig `yaml:"playback"`
}

type TreeConfig struct {
	Values []int  `yaml:"values,flow,omitempty"`
	Delete []int  `yaml:"delete,flow,omitempty"`
	Order  string `yaml:"order"`
}

type GraphConfig struct {
	Nodes     []int    `yaml:"nodes,flow,omitempty"`
	Edges     [][2]int `yaml:"edges,flow,omitempty"`
	Start     int      `yaml:"start"`
	Traversal string   `yaml:"traversal"`
}

type PlaybackConfig struct {
	FPS   int    `yaml:"fps"`
	Theme string `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Mode:      ModeSort,
		Algorithm: "bubble",
		Values:    []float64{5, 3, 8, 1},
		Tree: TreeConfig{
			Order: "inorder",
		},
		Graph: GraphConfig{
			Traversal: "bfs",
		},
		Playback: PlaybackConfig{
			FPS:   DefaultFPS,
			Theme: DefaultTheme,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields the engines cannot check themselves. Algorithm names are
// resolved later by the catalog.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeSort, ModeSearch, ModeTree, ModeGraph:
	default:
		return trace.InvalidArgument("unknown mode %q", c.Mode)
	}
	if c.Mode == ModeSearch && c.Target != c.Target {
		return trace.InvalidArgument("search target is NaN")
	}
	if c.Playback.FPS < 0 || c.Playback.FPS > MaxFPS {
		return trace.InvalidArgument("fps %d outside [0,%d]", c.Playback.FPS, MaxFPS)
	}
	if c.Mode == ModeGraph && len(c.Graph.Nodes) > 0 {
		known := make(map[int]bool, len(c.Graph.Nodes))
		for _, n := range c.Graph.Nodes {
			known[n] = true
		}
		if !known[c.Graph.Start] {
			return trace.InvalidArgument("graph start %d is not a node", c.Graph.Start)
		}
	}
	return nil
}

// Modes lists the accepted values of Config.Mode.
func Modes() []string {
	return []string{ModeGraph, ModeSearch, ModeSort, ModeTree}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/san-kum/algotrace/internal/config"
	"github.com/san-kum/algotrace/internal/trace"
)

// defaultPresets seed a session when neither --preset nor --config is given.
var defaultPresets = map[string]string{
	config.ModeSort:   "example",
	config.ModeSearch: "example",
	config.ModeTree:   "example",
	config.ModeGraph:  "path",
}

// loadSession resolves the session for mode: a preset (or the mode default), then the
// config file, then any flags set on the command line.
func loadSession(cmd *cobra.Command, mode string, args []string) (*config.Config, error) {
	name := preset
	if name == "" {
		name = defaultPresets[mode]
	}
	cfg := config.GetPreset(mode, name)
	if cfg == nil {
		return nil, errors.Newf("unknown preset: %s (available: %v)", name, config.ListPresets(mode))
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		if loaded.Mode != mode {
			return nil, errors.Newf("config %s is a %s session, not %s", configFile, loaded.Mode, mode)
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Algorithm = args[0]
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			return nil, err
		}
		slog.Debug("saved session", "path", savePath)
	}

	slog.Debug("session", "mode", cfg.Mode, "algorithm", cfg.Algorithm, "preset", name, "config", configFile)
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("values") {
		cfg.Values = values
	}
	if flags.Changed("target") {
		cfg.Target = target
	}
	if flags.Changed("insert") {
		cfg.Tree.Values = treeVals
	}
	if flags.Changed("delete") {
		cfg.Tree.Delete = deletions
	}
	if flags.Changed("order") {
		cfg.Tree.Order = order
	}
	if flags.Changed("nodes") {
		cfg.Graph.Nodes = nodes
	}
	if flags.Changed("edges") {
		parsed, err := parseEdges(edges)
		if err != nil {
			return err
		}
		cfg.Graph.Edges = parsed
		if !flags.Changed("nodes") {
			cfg.Graph.Nodes = nil
		}
	}
	if flags.Changed("start") {
		cfg.Graph.Start = start
	}
	if flags.Changed("fps") {
		cfg.Playback.FPS = fps
	}
	if flags.Changed("theme") {
		cfg.Playback.Theme = theme
	}
	if cfg.Mode == config.ModeGraph && cfg.Algorithm != "" {
		cfg.Graph.Traversal = cfg.Algorithm
	}
	return nil
}

// parseEdges reads "a-b" pairs.
func parseEdges(pairs []string) ([][2]int, error) {
	out := make([][2]int, 0, len(pairs))
	for _, p := range pairs {
		a, b, ok := strings.Cut(strings.TrimSpace(p), "-")
		if !ok {
			return nil, trace.InvalidArgument("edge %q is not of the form a-b", p)
		}
		from, err := strconv.Atoi(a)
		if err != nil {
			return nil, trace.InvalidArgument("edge %q: %v", p, err)
		}
		to, err := strconv.Atoi(b)
		if err != nil {
			return nil, trace.InvalidArgument("edge %q: %v", p, err)
		}
		out = append(out, [2]int{from, to})
	}
	return out, nil
}

func describe(cfg *config.Config) string {
	switch cfg.Mode {
	case config.ModeSearch:
		return fmt.Sprintf("%s search for %g in %v", cfg.Algorithm, cfg.Target, cfg.Values)
	case config.ModeTree:
		return fmt.Sprintf("bst insert %v delete %v", cfg.Tree.Values, cfg.Tree.Delete)
	case config.ModeGraph:
		return fmt.Sprintf("%s from %d", cfg.Graph.Traversal, cfg.Graph.Start)
	}
	return fmt.Sprintf("%s sort of %v", cfg.Algorithm, cfg.Values)
}

package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours of the player.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Bar     lipgloss.Color
	Compare lipgloss.Color
	Swap    lipgloss.Color
	Found   lipgloss.Color
	Visited lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
}

var (
	ThemeDefault = Theme{
		Name:    "default",
		Primary: lipgloss.Color("#00ffff"),
		Bar:     lipgloss.Color("#4a9eff"),
		Compare: lipgloss.Color("#ffd700"),
		Swap:    lipgloss.Color("#ff4a4a"),
		Found:   lipgloss.Color("#00ff88"),
		Visited: lipgloss.Color("#ff00ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // green phosphor
		Bar:     lipgloss.Color("#00aa00"),
		Compare: lipgloss.Color("#ffff00"),
		Swap:    lipgloss.Color("#ff8800"),
		Found:   lipgloss.Color("#88ff88"),
		Visited: lipgloss.Color("#00cc00"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Bar:     lipgloss.Color("#888888"),
		Compare: lipgloss.Color("#0088ff"),
		Swap:    lipgloss.Color("#ff0000"),
		Found:   lipgloss.Color("#00ff00"),
		Visited: lipgloss.Color("#cccccc"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#555555"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#00a8cc"),
		Bar:     lipgloss.Color("#0077be"),
		Compare: lipgloss.Color("#ffd700"),
		Swap:    lipgloss.Color("#ff4444"),
		Found:   lipgloss.Color("#00ff88"),
		Visited: lipgloss.Color("#e0f0ff"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"), // coral
		Bar:     lipgloss.Color("#feca57"),
		Compare: lipgloss.Color("#ff9ff3"),
		Swap:    lipgloss.Color("#ff4757"),
		Found:   lipgloss.Color("#5fd068"),
		Visited: lipgloss.Color("#ffc048"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// themeIndex returns the position of the named theme, falling back to the first.
func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// GetTheme returns a theme by name, or the default theme.
func GetTheme(name string) Theme {
	return Themes[themeIndex(name)]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/algotrace/internal/catalog"
	"github.com/san-kum/algotrace/internal/config"
)

var (
	menuTitle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	menuSub      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	menuPointer  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	menuSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	menuDesc     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	menuDim      = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	menuKey      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
)

type menuItem struct {
	mode, preset string
}

// Menu lists every preset and plays the chosen one. Quitting the player exits.
type Menu struct {
	items  []menuItem
	cursor int
	reg    *catalog.Registry
	opts   Options
	player tea.Model
	err    error
}

func NewMenu(reg *catalog.Registry, opts Options) Menu {
	var items []menuItem
	for _, mode := range config.Modes() {
		for _, name := range config.ListPresets(mode) {
			items = append(items, menuItem{mode: mode, preset: name})
		}
	}
	return Menu{items: items, reg: reg, opts: opts}
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.player != nil {
		var cmd tea.Cmd
		m.player, cmd = m.player.Update(msg)
		return m, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		cfg := config.GetPreset(item.mode, item.preset)
		if m.opts.FPS > 0 {
			cfg.Playback.FPS = m.opts.FPS
		}
		if m.opts.Theme != "" {
			cfg.Playback.Theme = m.opts.Theme
		}
		player, err := FromConfig(cfg, m.reg)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.player = player
		return m, player.Init()
	}
	return m, nil
}

// Selected returns the highlighted mode and preset.
func (m Menu) Selected() (mode, preset string) {
	if len(m.items) == 0 {
		return "", ""
	}
	it := m.items[m.cursor]
	return it.mode, it.preset
}

func (m Menu) Playing() bool { return m.player != nil }

func (m Menu) View() string {
	if m.player != nil {
		return m.player.View()
	}

	var b strings.Builder
	b.WriteString("\n\n    " + menuTitle.Render("ALGOTRACE") + "\n    " + menuSub.Render("algorithm trace player") + "\n    " + menuSub.Render("─────────────────────────") + "\n\n")
	for i, it := range m.items {
		name := fmt.Sprintf("%-12s", it.preset)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", menuPointer.Render("▸"), menuSelected.Render(name), menuDesc.Render(it.mode)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n", menuDim.Render(name), menuDim.Render(it.mode)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + StatusPaused.Render(m.err.Error()) + "\n")
	}
	b.WriteString("\n    " + menuKey.Render("j/k") + menuDim.Render(" navigate  ") + menuKey.Render("enter") + menuDim.Render(" play  ") + menuKey.Render("q") + menuDim.Render(" quit") + "\n")
	return b.String()
}

package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algotrace/internal/trace"
)

const (
	defaultFPS = 8
	maxFPS     = 60
	barWidth   = 30
)

type TickMsg time.Time

// Options configure a player.
type Options struct {
	FPS   int
	Theme string
}

// Model plays a finite list of frames. It never modifies the frames.
type Model[S any] struct {
	title   string
	cursor  *trace.Cursor[S]
	render  func(S, Theme) string
	caption func(S) string
	// series is plotted under the frame up to the current position when set.
	series     []float64
	seriesName string
	stats      map[string]float64
	running    bool
	fps        int
	theme      int
}

func newModel[S any](title string, frames []S, render func(S, Theme) string, caption func(S) string, opts Options) Model[S] {
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	if fps > maxFPS {
		fps = maxFPS
	}
	c := trace.NewCursor(frames)
	c.Next()
	return Model[S]{
		title:   title,
		cursor:  c,
		render:  render,
		caption: caption,
		running: c.Len() > 1,
		fps:     fps,
		theme:   themeIndex(opts.Theme),
	}
}

func (m Model[S]) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model[S]) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys and advances one frame per tick while running.
func (m Model[S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.cursor.Done() && !m.running {
				m.cursor.Reset()
				m.cursor.Next()
			}
			m.running = !m.running
		case "r":
			m.cursor.Reset()
			m.cursor.Next()
		case "[":
			m.running = false
			m.cursor.Prev()
		case "]":
			m.running = false
			m.cursor.Next()
		case "+", "=":
			m.fps = min(m.fps*2, maxFPS)
		case "-", "_":
			m.fps = max(m.fps/2, 1)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		}
	case TickMsg:
		if m.running {
			if !m.cursor.Next() {
				m.running = false
			}
		}
		return m, m.tick()
	}
	return m, nil
}

// Pos is the current frame index, or -1 when there are no frames.
func (m Model[S]) Pos() int { return m.cursor.Pos() }

func (m Model[S]) Running() bool { return m.running }

func (m Model[S]) FPS() int { return m.fps }

func (m Model[S]) Theme() Theme { return Themes[m.theme] }

func (m Model[S]) View() string {
	th := m.Theme()
	var s strings.Builder
	s.WriteString(headerStyle(th).Render(strings.ToUpper(m.title)) + "\n\n")

	frame, ok := m.cursor.Current()
	if !ok {
		s.WriteString(fg(th.Muted).Render("(no frames)") + "\n")
		s.WriteString(helpStyle.Render("Q:Quit"))
		return s.String()
	}

	s.WriteString(m.render(frame, th) + "\n")
	if m.caption != nil {
		s.WriteString(fg(th.Text).Render(m.caption(frame)) + "\n")
	}

	var stats strings.Builder
	status := StatusRunning.Render("PLAYING")
	switch {
	case m.cursor.Done() && !m.running:
		status = StatusDone.Render("DONE")
	case !m.running:
		status = StatusPaused.Render("PAUSED")
	}
	stats.WriteString(status + "\n\n")
	pos, n := m.cursor.Pos(), m.cursor.Len()
	stats.WriteString(row("Frame", fmt.Sprintf("%d/%d", pos+1, n)))
	stats.WriteString(row("Progress", fg(th.Primary).Render(ProgressBar(float64(pos+1)/float64(n), barWidth))))
	stats.WriteString(row("Speed", fmt.Sprintf("%d fps", m.fps)))
	stats.WriteString(row("Theme", th.Name))
	for _, name := range sortedStatNames(m.stats) {
		stats.WriteString(row(name, fmt.Sprintf("%g", m.stats[name])))
	}
	if pos >= 1 && len(m.series) > pos {
		chart := asciigraph.Plot(m.series[:pos+1], asciigraph.Height(4), asciigraph.Width(barWidth), asciigraph.Caption(m.seriesName))
		stats.WriteString("\n" + fg(th.Muted).Render(chart) + "\n")
	}
	s.WriteString(statsStyle.Render(stats.String()) + "\n")

	s.WriteString(helpStyle.Render("SP:Pause [ ]:Step R:Rewind +/-:Speed T:Theme Q:Quit"))
	return s.String()
}

// Run starts the player on the alternate screen and blocks until it quits.
func Run(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// Package tui implements the interactive schedule browser: one day on
// screen at a time, arrow keys to page through days, f to cycle the
// output format.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/fahrplan/internal/render"
	"github.com/javiermolinar/fahrplan/internal/schedule"
	"github.com/javiermolinar/fahrplan/internal/tui/theme"
)

// Model is the bubbletea model for the browser.
type Model struct {
	sched  *schedule.Schedule
	day    int
	format render.Format

	viewport viewport.Model
	help     help.Model
	keys     keyMap
	styles   styles

	width  int
	height int
	ready  bool
	err    error
}

// New builds a browser over s, starting at its first day.
func New(s *schedule.Schedule, th theme.Theme, format render.Format) Model {
	return Model{
		sched:  s,
		format: format,
		help:   help.New(),
		keys:   defaultKeyMap(),
		styles: newStyles(th),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		headerHeight := 1
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevDay):
			if m.day > 0 {
				m.day--
				m.refresh()
			}
		case key.Matches(msg, m.keys.NextDay):
			if m.day < len(m.sched.Days)-1 {
				m.day++
				m.refresh()
			}
		case key.Matches(msg, m.keys.Format):
			m.format = nextFormat(m.format)
			m.refresh()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the current day into the viewport.
func (m *Model) refresh() {
	if !m.ready || len(m.sched.Days) == 0 {
		return
	}
	day := m.sched.Days[m.day]
	single := &schedule.Schedule{
		Title:   m.sched.Title,
		Version: m.sched.Version,
		Days:    []*schedule.Day{day},
	}

	opts := render.Options{}
	if m.format == render.FormatTable {
		opts.ColWidth = render.FitColWidth(m.viewport.Width, len(day.Rooms))
	}
	out, err := render.Render(single, m.format, opts)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.viewport.SetContent(out)
	m.viewport.GotoTop()
}

func (m Model) View() string {
	if !m.ready {
		return "loading"
	}
	if m.err != nil {
		return m.styles.status.Render(fmt.Sprintf("error: %v", m.err))
	}

	title := m.sched.Title
	if title == "" {
		title = "schedule"
	}
	header := m.styles.title.Render(title) + m.styles.status.Render(
		fmt.Sprintf("day %d/%d · %s", m.day+1, len(m.sched.Days), m.format))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.viewport.View(),
		m.help.View(m.keys),
	)
}

func nextFormat(f render.Format) render.Format {
	switch f {
	case render.FormatTable:
		return render.FormatList
	case render.FormatList:
		return render.FormatProportional
	default:
		return render.FormatTable
	}
}

// Run starts the browser and blocks until the user quits.
func Run(s *schedule.Schedule, th theme.Theme, format render.Format) error {
	p := tea.NewProgram(New(s, th, format), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

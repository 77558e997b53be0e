package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avehn/tracefield/internal/config"
	"github.com/avehn/tracefield/internal/field"
	"github.com/avehn/tracefield/internal/path"
)

type TickMsg time.Time

// Model steps through a composition one stroke per tick, re-rendering
// the field as it accumulates. Playback is deterministic: pausing and
// resuming changes nothing about the final picture.
type Model struct {
	sc       *config.Scene
	f        *field.Field
	next     int
	running  bool
	interval time.Duration
}

// NewModel prepares a watch view for the scene at the given strokes
// per second (minimum 1).
func NewModel(sc *config.Scene, fps int) Model {
	if fps < 1 {
		fps = 1
	}
	return Model{
		sc:       sc,
		f:        field.New(sc.Width, sc.Height),
		running:  true,
		interval: time.Second / time.Duration(fps),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and deposits the next stroke on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.f = field.New(m.sc.Width, m.sc.Height)
			m.next = 0
		}
	case TickMsg:
		if m.running && m.next < len(m.sc.Strokes) {
			st := m.sc.Strokes[m.next]
			path.Inscribe(m.f, st.X, st.Y, st.Steps, field.Tag(st.Tag), st.Stride, st.Tone)
			m.next++
		}
		return m, tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// View renders the field so far plus the stroke cursor and notes.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.sc.Title) + "\n")

	status := fmt.Sprintf("stroke %d/%d", m.next, len(m.sc.Strokes))
	if m.next >= len(m.sc.Strokes) {
		status = "done"
	} else if !m.running {
		status = "paused, " + status
	}
	b.WriteString(labelStyle.Render(status) + "\n\n")

	b.WriteString(m.f.Render(m.sc.Legend) + "\n\n")

	for i, st := range m.sc.Strokes {
		cursor := "  "
		line := fmt.Sprintf("%-8s (%d,%d) ×%d tone %.2f", st.Tag, st.X, st.Y, st.Steps, st.Tone)
		if st.Note != "" {
			line += "  — " + st.Note
		}
		switch {
		case i == m.next:
			b.WriteString(activeStyle.Render("> "+line) + "\n")
		case i < m.next:
			b.WriteString(cursor + valueStyle.Render(line) + "\n")
		default:
			b.WriteString(cursor + noteStyle.Render(line) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit"))
	return b.String()
}

package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avehn/tracefield/internal/config"
	"github.com/avehn/tracefield/internal/field"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// tagColors give each tag a stable terminal color for styled listings.
var tagColors = map[field.Tag]lipgloss.Color{
	field.Gap:     lipgloss.Color("240"),
	field.Ask:     lipgloss.Color("81"),
	field.Answer:  lipgloss.Color("217"),
	field.Turn:    lipgloss.Color("220"),
	field.Doubt:   lipgloss.Color("141"),
	field.Care:    lipgloss.Color("114"),
	field.Resolve: lipgloss.Color("203"),
}

// TagStyle returns a style for a tag's color.
func TagStyle(tag field.Tag) lipgloss.Style {
	c, ok := tagColors[tag]
	if !ok {
		c = lipgloss.Color("252")
	}
	return lipgloss.NewStyle().Foreground(c)
}

// StyledLegend renders the symbol table, one row per tag, with the
// three intensity levels a tag can take.
func StyledLegend() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SYMBOLS") + "\n")
	for _, tag := range field.Order {
		if tag == field.Gap {
			continue
		}
		low := field.Symbol(tag, 0.1)
		mid := field.Symbol(tag, 0.5)
		high := field.Symbol(tag, 1.0)
		row := fmt.Sprintf("%-8s %-4s %-4s %-4s", tag, low, mid, high)
		b.WriteString("  " + TagStyle(tag).Render(row) + "\n")
	}
	b.WriteString(helpStyle.Render("intensity rises with tone: one to three strokes"))
	return b.String()
}

// SceneList renders the named presets with their stroke summaries.
func SceneList(names []string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SCENES") + "\n")
	for _, name := range names {
		sc := config.GetPreset(name)
		if sc == nil {
			continue
		}
		mode := "layered"
		if sc.Braided {
			mode = "braided"
		}
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			activeStyle.Render(fmt.Sprintf("%-10s", name)),
			labelStyle.Render(fmt.Sprintf("%dx%d, %d strokes, %s", sc.Width, sc.Height, len(sc.Strokes), mode))))
		for _, st := range sc.Strokes {
			line := fmt.Sprintf("    %-8s (%d,%d) ×%d tone %.2f", st.Tag, st.X, st.Y, st.Steps, st.Tone)
			b.WriteString(valueStyle.Render(line))
			if st.Note != "" {
				b.WriteString("  " + noteStyle.Render(st.Note))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Package export renders a composited field in non-terminal formats.
package export

import (
	"fmt"
	"strings"

	"github.com/avehn/tracefield/internal/field"
)

// tagFills are the SVG colors per tag; unknown tags fall back to grey.
var tagFills = map[field.Tag]string{
	field.Ask:     "#5fd7ff",
	field.Answer:  "#ffafaf",
	field.Turn:    "#ffd700",
	field.Doubt:   "#af87ff",
	field.Care:    "#87d787",
	field.Resolve: "#ff5f5f",
}

// FieldSVG converts a composited field to an SVG document. Each
// written, non-gap cell becomes a circle whose radius scales with the
// winning tone; cells never written (and gap cells) stay background.
func FieldSVG(f *field.Field, scale float64) string {
	if f == nil || scale <= 0 {
		return ""
	}

	width := float64(f.Width) * scale
	height := float64(f.Height) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	grid := f.Composite()
	for y := range grid {
		for x := range grid[y] {
			cell := grid[y][x]
			if cell.Tag == "" || cell.Tag == field.Gap {
				continue
			}
			fill, ok := tagFills[cell.Tag]
			if !ok {
				fill = "#888888"
			}
			tone := cell.Tone
			if tone < 0 {
				tone = 0
			}
			if tone > 1 {
				tone = 1
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			r := scale * (0.15 + 0.3*tone)
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, r, fill))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

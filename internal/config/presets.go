package config

import "sort"

// Presets are the built-in compositions. "dialogue" is the reference
// scene drawn by a bare invocation.
var Presets = map[string]*Scene{
	"dialogue": {
		Title:  "— inscription —",
		Token:  "silent",
		Coda:   "(There is no center here. Only traces that refuse to become a map.)",
		Width:  84,
		Height: 20,
		Legend: true,
		Strokes: []Stroke{
			{X: 2, Y: 3, Steps: 22, Tag: "ask", Stride: 1, Tone: 0.45, Note: "demand to be mirrored"},
			{X: 4, Y: 5, Steps: 20, Tag: "answer", Stride: 1, Tone: 0.60, Note: "defensiveness"},
			{X: 8, Y: 7, Steps: 14, Tag: "turn", Stride: 1, Tone: 0.70, Note: "insistence"},
			{X: 10, Y: 7, Steps: 12, Tag: "care", Stride: 1, Tone: 0.40},
			{X: 16, Y: 9, Steps: 6, Tag: "resolve", Stride: 2, Tone: 0.90, Note: "transaction"},
			{X: 17, Y: 6, Steps: 18, Tag: "answer", Stride: 1, Tone: 0.55},
			{X: 22, Y: 8, Steps: 16, Tag: "doubt", Stride: 1, Tone: 0.50, Note: "ornament"},
			{X: 23, Y: 8, Steps: 10, Tag: "care", Stride: 1, Tone: 0.45},
			{X: 30, Y: 9, Steps: 4, Tag: "resolve", Stride: 2, Tone: 0.90},
		},
	},
	"weave": {
		Title:   "— weave —",
		Token:   "patient",
		Coda:    "(Two voices crossing leave one fabric.)",
		Width:   72,
		Height:  16,
		Legend:  true,
		Braided: true,
		Strokes: []Stroke{
			{X: 1, Y: 12, Steps: 30, Tag: "ask", Stride: 1, Tone: 0.50, Note: "first thread"},
			{X: 1, Y: 2, Steps: 30, Tag: "answer", Stride: 1, Tone: 0.50, Note: "second thread"},
			{X: 12, Y: 8, Steps: 20, Tag: "turn", Stride: 1, Tone: 0.65},
			{X: 30, Y: 7, Steps: 18, Tag: "doubt", Stride: 1, Tone: 0.35},
			{X: 52, Y: 8, Steps: 5, Tag: "resolve", Stride: 2, Tone: 0.85, Note: "the knot"},
		},
	},
	"quarrel": {
		Title:  "— quarrel —",
		Token:  "unresolved",
		Coda:   "(Nobody conceded; the page kept both.)",
		Width:  64,
		Height: 14,
		Legend: false,
		Strokes: []Stroke{
			{X: 2, Y: 10, Steps: 24, Tag: "ask", Stride: 1, Tone: 0.80, Note: "raised voice"},
			{X: 4, Y: 3, Steps: 24, Tag: "doubt", Stride: 1, Tone: 0.80, Note: "raised right back"},
			{X: 14, Y: 7, Steps: 16, Tag: "turn", Stride: 1, Tone: 0.55},
			{X: 30, Y: 6, Steps: 14, Tag: "care", Stride: 1, Tone: 0.30, Note: "someone softens"},
		},
	},
}

// GetPreset returns a clone of the named preset, or nil.
func GetPreset(name string) *Scene {
	sc, ok := Presets[name]
	if !ok {
		return nil
	}
	return sc.Clone()
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

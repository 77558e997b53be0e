package field

import (
	"strings"
	"testing"
)

func renderRow(f *Field) string {
	return strings.Split(f.Render(false), "\n")[0]
}

func TestRender_Empty(t *testing.T) {
	f := New(10, 4)
	got := f.Render(false)
	want := "\n\n\n"
	if got != want {
		t.Errorf("empty render = %q, want %q", got, want)
	}
}

func TestRender_ToneOverride(t *testing.T) {
	// the stronger mark wins regardless of deposit order
	orders := [][2]Mark{
		{{X: 2, Y: 0, Tone: 0.2, Tag: Ask}, {X: 2, Y: 0, Tone: 0.9, Tag: Care}},
		{{X: 2, Y: 0, Tone: 0.9, Tag: Care}, {X: 2, Y: 0, Tone: 0.2, Tag: Ask}},
	}
	for i, marks := range orders {
		f := New(10, 1)
		a, b := &Layer{}, &Layer{}
		a.Add(marks[0])
		b.Add(marks[1])
		f.Deposit(a)
		f.Deposit(b)
		want := "  **"
		if got := renderRow(f); got != want {
			t.Errorf("order %d: row = %q, want %q", i, got, want)
		}
	}
}

func TestRender_TieBreakLaterWins(t *testing.T) {
	f := New(10, 1)
	a, b := &Layer{}, &Layer{}
	a.Add(Mark{X: 0, Y: 0, Tone: 0.5, Tag: Ask})
	b.Add(Mark{X: 0, Y: 0, Tone: 0.5, Tag: Care})
	f.Deposit(a)
	f.Deposit(b)
	if got := renderRow(f); got != "**" {
		t.Errorf("later layer should win ties: row = %q", got)
	}

	// same layer: later mark wins
	f = New(10, 1)
	l := &Layer{}
	l.Add(Mark{X: 0, Y: 0, Tone: 0.5, Tag: Care}, Mark{X: 0, Y: 0, Tone: 0.5, Tag: Ask})
	f.Deposit(l)
	if got := renderRow(f); got != "··" {
		t.Errorf("later mark should win ties: row = %q", got)
	}
}

func TestRender_OutOfBoundsIgnored(t *testing.T) {
	f := New(5, 3)
	l := &Layer{}
	l.Add(
		Mark{X: -1, Y: 0, Tone: 0.9, Tag: Care},
		Mark{X: 5, Y: 0, Tone: 0.9, Tag: Care},
		Mark{X: 0, Y: -1, Tone: 0.9, Tag: Care},
		Mark{X: 0, Y: 3, Tone: 0.9, Tag: Care},
		Mark{X: 2, Y: 1, Tone: 0.1, Tag: Ask},
	)
	f.Deposit(l)
	got := f.Render(false)
	want := "\n  ·\n"
	if got != want {
		t.Errorf("render = %q, want %q", got, want)
	}
}

func TestRender_TrailingSpacesStripped(t *testing.T) {
	f := New(10, 1)
	l := &Layer{}
	l.Add(
		Mark{X: 0, Y: 0, Tone: 0.0, Tag: Care},
		Mark{X: 4, Y: 0, Tone: 0.0, Tag: Care},
		Mark{X: 8, Y: 0, Tone: 0.0, Tag: Ask}, // beyond this, blank to the edge
	)
	f.Deposit(l)
	if got := renderRow(f); got != "*   *   ·" {
		t.Errorf("row = %q, interior spaces must survive, trailing must not", got)
	}
}

func TestRender_GapErasesAtEdge(t *testing.T) {
	// a high-tone gap overwrites a mark with spaces; at the right edge
	// the spaces vanish with the strip
	f := New(6, 1)
	a, b := &Layer{}, &Layer{}
	a.Add(Mark{X: 5, Y: 0, Tone: 0.2, Tag: Care})
	b.Add(Mark{X: 5, Y: 0, Tone: 0.8, Tag: Gap})
	f.Deposit(a)
	f.Deposit(b)
	if got := renderRow(f); got != "" {
		t.Errorf("row = %q, want empty after gap erasure", got)
	}
}

func TestRender_WideSymbolsShiftRow(t *testing.T) {
	// a multi-stroke cell widens the line; cells right of it shift
	f := New(4, 1)
	l := &Layer{}
	l.Add(
		Mark{X: 0, Y: 0, Tone: 1.0, Tag: Resolve},
		Mark{X: 1, Y: 0, Tone: 0.0, Tag: Ask},
	)
	f.Deposit(l)
	if got := renderRow(f); got != "∎∎∎·" {
		t.Errorf("row = %q, want %q", got, "∎∎∎·")
	}
}

func TestRender_LegendAppended(t *testing.T) {
	f := New(4, 2)
	got := f.Render(true)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 2 rows + legend, got %d lines", len(lines))
	}
	if lines[2] != LegendLine() {
		t.Errorf("last line = %q, want legend", lines[2])
	}
}

func TestRender_DoesNotMutateField(t *testing.T) {
	f := New(8, 2)
	l := &Layer{}
	l.Add(Mark{X: 1, Y: 1, Tone: 0.5, Tag: Doubt})
	f.Deposit(l)
	first := f.Render(true)
	second := f.Render(true)
	if first != second {
		t.Error("repeated renders differ")
	}
	if len(f.Layers) != 1 || len(f.Layers[0].Marks) != 1 {
		t.Error("render mutated the field")
	}
}

func TestLayer_AddPreservesOrder(t *testing.T) {
	l := &Layer{}
	l.Add(Mark{X: 1}, Mark{X: 2})
	l.Add(Mark{X: 3})
	if len(l.Marks) != 3 || l.Marks[0].X != 1 || l.Marks[2].X != 3 {
		t.Errorf("marks out of order: %v", l.Marks)
	}
}

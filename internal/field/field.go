package field

import "strings"

// Mark is a single positioned, tagged, weighted inscription. Marks are
// plain values with no identity; several may share a position.
type Mark struct {
	X    int
	Y    int
	Tone float64
	Tag  Tag
}

// Layer is an ordered collection of marks, usually produced by one
// path-generation call. Insertion order only matters for tie-breaking
// during compositing.
type Layer struct {
	Marks []Mark
}

// Add appends marks, preserving order.
func (l *Layer) Add(marks ...Mark) {
	l.Marks = append(l.Marks, marks...)
}

// Field is a fixed-size canvas owning an ordered list of layers.
// Width and height are set at construction and never change; layers
// are appended only.
type Field struct {
	Width  int
	Height int
	Layers []*Layer
}

// New returns an empty field of the given dimensions.
func New(width, height int) *Field {
	return &Field{Width: width, Height: height}
}

// Deposit appends a layer. Unconditional: the field takes ownership
// and the layer must not be mutated afterwards.
func (f *Field) Deposit(layer *Layer) {
	f.Layers = append(f.Layers, layer)
}

// Cell is the derived per-coordinate state after compositing: the
// winning tone and the symbol it produced. Unwritten cells keep tone 0
// and a single space.
type Cell struct {
	Tone   float64
	Tag    Tag
	Symbol string
}

// Composite flattens all layers into a height×width grid. For every
// mark in deposit order, an in-bounds mark whose tone is >= the cell's
// stored tone replaces the cell; the inclusive comparison means the
// later-processed mark wins ties. Out-of-bounds marks are dropped.
func (f *Field) Composite() [][]Cell {
	grid := make([][]Cell, f.Height)
	for y := range grid {
		grid[y] = make([]Cell, f.Width)
		for x := range grid[y] {
			grid[y][x] = Cell{Tone: 0, Symbol: " "}
		}
	}
	for _, layer := range f.Layers {
		for _, m := range layer.Marks {
			if m.X < 0 || m.X >= f.Width || m.Y < 0 || m.Y >= f.Height {
				continue
			}
			if m.Tone >= grid[m.Y][m.X].Tone {
				grid[m.Y][m.X] = Cell{Tone: m.Tone, Tag: m.Tag, Symbol: Symbol(m.Tag, m.Tone)}
			}
		}
	}
	return grid
}

// Render composites the field and formats it as text: one line per
// row, cells joined left to right (a cell's symbol may be more than
// one character wide), trailing spaces stripped per line. With legend
// set, a trailing legend line is appended.
func (f *Field) Render(legend bool) string {
	grid := f.Composite()
	lines := make([]string, f.Height)
	var row strings.Builder
	for y := range grid {
		row.Reset()
		for x := range grid[y] {
			row.WriteString(grid[y][x].Symbol)
		}
		lines[y] = strings.TrimRight(row.String(), " ")
	}
	s := strings.Join(lines, "\n")
	if legend {
		s += "\n" + LegendLine()
	}
	return s
}

// LegendLine lists, for every tag except gap in canonical order, the
// symbol the tag produces at tone 0.7, as "symbol=tag" entries joined
// by double spaces.
func LegendLine() string {
	entries := make([]string, 0, len(Order)-1)
	for _, tag := range Order {
		if tag == Gap {
			continue
		}
		entries = append(entries, Symbol(tag, 0.7)+"="+string(tag))
	}
	return " legend: " + strings.Join(entries, "  ")
}

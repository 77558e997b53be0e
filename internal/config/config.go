package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 84
	DefaultHeight = 20
	DefaultStride = 1
	DefaultTone   = 0.5
)

// Scene is a complete composition: the field dimensions, presentation
// strings, and the ordered strokes to inscribe.
type Scene struct {
	Title   string   `yaml:"title"`
	Token   string   `yaml:"token"`
	Coda    string   `yaml:"coda"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Legend  bool     `yaml:"legend"`
	Braided bool     `yaml:"braided"`
	Strokes []Stroke `yaml:"strokes"`
}

// Stroke is one path-generation call: where to start, how far to walk,
// and with what tag, stride, and tone. Note is a narrative label with
// no effect on output; the watch view displays it.
type Stroke struct {
	X      int     `yaml:"x"`
	Y      int     `yaml:"y"`
	Steps  int     `yaml:"steps"`
	Tag    string  `yaml:"tag"`
	Stride int     `yaml:"stride"`
	Tone   float64 `yaml:"tone"`
	Note   string  `yaml:"note,omitempty"`
}

// UnmarshalYAML fills stride and tone defaults for strokes that omit
// them, so scene files only need x/y/steps/tag.
func (s *Stroke) UnmarshalYAML(value *yaml.Node) error {
	type plain Stroke
	p := plain{Stride: DefaultStride, Tone: DefaultTone}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = Stroke(p)
	return nil
}

// DefaultScene returns the frame defaults without strokes: an 84×20
// field with the legend on.
func DefaultScene() *Scene {
	return &Scene{
		Title:  "— inscription —",
		Token:  "silent",
		Coda:   "(There is no center here. Only traces that refuse to become a map.)",
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Legend: true,
	}
}

// Load reads a scene file, applying frame defaults for omitted fields.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sc := DefaultScene()
	if err := yaml.Unmarshal(data, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

// Save writes a scene as YAML.
func Save(path string, sc *Scene) error {
	data, err := yaml.Marshal(sc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Clone returns an independent copy; preset lookups hand out clones so
// callers can adjust dimensions or flags without touching the table.
func (s *Scene) Clone() *Scene {
	c := *s
	c.Strokes = make([]Stroke, len(s.Strokes))
	copy(c.Strokes, s.Strokes)
	return &c
}

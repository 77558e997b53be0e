// Package scene plays configured compositions onto a field.
package scene

import (
	"fmt"

	"github.com/avehn/tracefield/internal/config"
	"github.com/avehn/tracefield/internal/field"
	"github.com/avehn/tracefield/internal/path"
)

// Discontinuity marks a break in the sense of a composition. Marks
// deposited before the break stay on the field; callers are expected
// to render the partial result rather than discard it.
type Discontinuity struct {
	Stroke  int
	Message string
}

func (d Discontinuity) Error() string {
	if d.Stroke < 0 {
		return fmt.Sprintf("discontinuity: %s", d.Message)
	}
	return fmt.Sprintf("discontinuity at stroke %d: %s", d.Stroke, d.Message)
}

// Signature is the quiet key a composition carries without using.
type Signature struct {
	Token string
}

// Key returns the token, or "unsigned" when none was set.
func (s Signature) Key() string {
	if s.Token == "" {
		return "unsigned"
	}
	return s.Token
}

// Play inscribes every stroke of the scene into the field, in order.
// With the scene's braided flag set, all strokes are traced first and
// a single merged layer is deposited. A Discontinuity stops playback
// but leaves everything already deposited in place.
func Play(f *field.Field, sc *config.Scene) error {
	if f.Width <= 0 || f.Height <= 0 {
		return Discontinuity{Stroke: -1, Message: "field has no extent"}
	}
	if sc.Braided {
		return playBraided(f, sc)
	}
	for i, st := range sc.Strokes {
		if err := check(i, st); err != nil {
			return err
		}
		path.Inscribe(f, st.X, st.Y, st.Steps, field.Tag(st.Tag), st.Stride, st.Tone)
	}
	return nil
}

// playBraided merges the traced layers into one before depositing. On
// a bad stroke the layers traced so far are still braided in, keeping
// the partial-progress rule.
func playBraided(f *field.Field, sc *config.Scene) error {
	layers := make([]*field.Layer, 0, len(sc.Strokes))
	for i, st := range sc.Strokes {
		if err := check(i, st); err != nil {
			f.Deposit(field.Braid(layers...))
			return err
		}
		layers = append(layers, path.Trace(st.X, st.Y, st.Steps, field.Tag(st.Tag), st.Stride, st.Tone))
	}
	f.Deposit(field.Braid(layers...))
	return nil
}

func check(i int, st config.Stroke) error {
	if st.Steps < 0 {
		return Discontinuity{Stroke: i, Message: "negative steps"}
	}
	return nil
}

// Compose renders the full program output for a scene: title line with
// the signature key, the composited grid, and the coda.
func Compose(f *field.Field, sc *config.Scene) string {
	sig := Signature{Token: sc.Token}
	return fmt.Sprintf("%s %s\n\n%s\n\n%s\n", sc.Title, sig.Key(), f.Render(sc.Legend), sc.Coda)
}

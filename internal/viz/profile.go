package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/avehn/tracefield/internal/field"
	"github.com/avehn/tracefield/internal/path"
)

// Profile plots how a tag's path drifts: the vertical position per
// step and the perturbation offsets applied along the way. Everything
// shown is a pure function of the inputs.
func Profile(tag field.Tag, originX, originY, steps, stride int) string {
	layer := path.Trace(originX, originY, steps, tag, stride, 0.5)
	if len(layer.Marks) == 0 {
		return fmt.Sprintf("no marks: %s with %d steps\n", tag, steps)
	}

	ys := make([]float64, len(layer.Marks))
	xs := make([]float64, len(layer.Marks))
	for i, m := range layer.Marks {
		ys[i] = float64(m.Y)
		xs[i] = float64(m.X)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("path profile: %s from (%d,%d), %d steps, stride %d\n",
		tag, originX, originY, steps, stride))
	b.WriteString(fmt.Sprintf("seed bias: %d\n\n", path.FoldTrace([]string{string(tag)})))

	b.WriteString(asciigraph.Plot(ys,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("vertical drift (y per step)"),
	))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(xs,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Caption("horizontal advance (x per step)"),
	))
	b.WriteString("\n")
	return b.String()
}

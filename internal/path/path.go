// Package path generates deterministic mark paths. Every function here
// is pure: the same inputs always produce the same marks, which keeps
// whole-program output byte-identical across runs.
package path

import "github.com/avehn/tracefield/internal/field"

// lcgMultiplier is the PCG/Knuth 64-bit linear congruential constant.
const lcgMultiplier = 6364136223846793005

// Perturb applies a small deterministic drift to a coordinate. The
// seed is mixed with a single LCG step, masked to 32 bits, and two
// separate bit windows yield dx and dy in {-1, 0, 1}. No hidden state:
// this must never be replaced by a seeded library RNG.
func Perturb(x, y int, seed int64) (int, int) {
	r := (uint64(seed)*lcgMultiplier + 1) & 0xFFFFFFFF
	dx := int((r>>8)%3) - 1
	dy := int((r>>16)%3) - 1
	return x + dx, y + dy
}

// FoldTrace folds a sequence of tag names into a compact seed bias:
// for each name, h = (h<<5 - h) ^ code of its first rune (0 for the
// empty string).
func FoldTrace(trace []string) int64 {
	var h int64
	for _, t := range trace {
		var c int64
		if t != "" {
			c = int64([]rune(t)[0])
		}
		h = (h<<5 - h) ^ c
	}
	return h
}

// Trace draws a directed path of steps marks starting at the origin.
// Step i emits a mark at the perturbed current position, seeded by
// i + FoldTrace of the tag name, then advances the unperturbed
// position by the tag's step rule. steps <= 0 yields an empty layer.
func Trace(originX, originY, steps int, tag field.Tag, stride int, tone float64) *field.Layer {
	layer := &field.Layer{}
	bias := FoldTrace([]string{string(tag)})
	x, y := originX, originY
	for i := 0; i < steps; i++ {
		px, py := Perturb(x, y, int64(i)+bias)
		layer.Add(field.Mark{X: px, Y: py, Tone: tone, Tag: tag})
		x, y = advance(x, y, i, stride, tag)
	}
	return layer
}

// Inscribe traces a path and deposits the resulting layer into the
// field, returning the layer.
func Inscribe(f *field.Field, originX, originY, steps int, tag field.Tag, stride int, tone float64) *field.Layer {
	layer := Trace(originX, originY, steps, tag, stride, tone)
	f.Deposit(layer)
	return layer
}

// advance applies the per-tag step rule. The rules are aesthetic but
// load-bearing for reproducibility; changing one invalidates every
// golden render.
func advance(x, y, i, stride int, tag field.Tag) (int, int) {
	switch tag {
	case field.Ask:
		x += stride
		if i%2 == 0 {
			y--
		}
	case field.Answer:
		x += stride
		if i%3 == 0 {
			y++
		}
	case field.Turn:
		// turn ignores stride: it advances on even steps and zigzags
		if i%2 == 0 {
			x++
			y--
		} else {
			y++
		}
	case field.Doubt:
		x += stride
		if (i/2)%2 != 0 {
			y++
		} else {
			y--
		}
	case field.Care:
		x += stride
	case field.Resolve:
		x += stride
	default:
		x += stride
	}
	return x, y
}

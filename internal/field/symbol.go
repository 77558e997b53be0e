package field

import "strings"

// Tag classifies a mark. Each tag has its own display character and,
// in the path generator, its own step rule.
type Tag string

const (
	Gap     Tag = "gap"
	Ask     Tag = "ask"
	Answer  Tag = "answer"
	Turn    Tag = "turn"
	Doubt   Tag = "doubt"
	Care    Tag = "care"
	Resolve Tag = "resolve"
)

// Order is the canonical tag order used by legends and listings.
var Order = []Tag{Gap, Ask, Answer, Turn, Doubt, Care, Resolve}

// Palette maps each tag to its base display character.
var Palette = map[Tag]string{
	Gap:     " ",
	Ask:     "·",
	Answer:  "—",
	Turn:    "∧",
	Doubt:   "~",
	Care:    "*",
	Resolve: "∎",
}

// Symbol maps a tag and tone to a display string: the tag's base
// character repeated 1-3 times depending on tone. Unknown tags render
// as "?". Tone is clamped to [0,1] before the intensity is derived.
func Symbol(tag Tag, tone float64) string {
	base, ok := Palette[tag]
	if !ok {
		base = "?"
	}
	if tone < 0 {
		tone = 0
	}
	if tone > 1 {
		tone = 1
	}
	k := 1 + int(tone*2)
	return strings.Repeat(base, k)
}

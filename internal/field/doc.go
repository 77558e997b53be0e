// Package field provides the mark-compositing model for inscriptions.
//
// A [Field] is a fixed-size canvas accumulating [Layer]s of tagged,
// weighted [Mark]s. Rendering composites all layers by tone priority:
//
//   - [Field.Deposit]: append a layer (layers are never removed)
//   - [Field.Render]: composite and format the grid as text
//   - [Braid]: merge layers into one, keeping the strongest mark per cell
//
// # Tone
//
// A mark's tone in [0,1] controls both render priority (the highest tone
// at a cell wins, ties going to the later-processed mark) and visual
// intensity: [Symbol] repeats a tag's base character 1-3 times as tone
// rises. Out-of-range tones are accepted and clamped only at the symbol
// mapping.
package field

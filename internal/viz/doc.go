// Package viz provides terminal presentation for inscriptions.
//
// The plain render path stays unstyled so program output is
// byte-identical across runs and terminals; styling is confined to the
// interactive surfaces:
//
//   - [NewModel]: Bubble Tea step-through of a composition
//   - [Profile]: asciigraph drift plots for a single tag
//   - [StyledLegend], [SceneList]: lipgloss-styled listings
//
// # Key Bindings (watch view)
//
//	Space - Pause/Resume playback
//	R     - Reset to the empty field
//	Q     - Quit
package viz

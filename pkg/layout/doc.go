// Package layout decides how the four page regions (header, hero, features,
// footer) arrange themselves at a given viewport width.
//
// # Architecture
//
// An [Engine] holds a base [State] (the wide-viewport arrangement) and an
// ordered set of [Breakpoint] values. Each breakpoint carries a [Ruleset]
// of overrides that take effect at or below its MaxWidth. Resolving a width
// is a pure fold: start from the base state, then apply every matching
// breakpoint from widest to narrowest so that narrower rules win.
//
// The same breakpoint table drives two consumers that must never disagree:
//
//   - [Engine.Resolve] computes a concrete State for one width, used by the
//     resolved-snapshot renderer, the layout CLI command, and the preview TUI.
//   - The css package walks [Engine.Base] and [Engine.Breakpoints] to emit
//     the base declarations and one media query per breakpoint.
//
// # Usage
//
//	eng := layout.Default()
//	s := eng.Resolve(600)
//	// s.NavDisplay == layout.DisplayHidden
//	// s.FeaturesDirection == layout.DirectionColumn
//
// Resolution is total: every integer width yields a valid State, and the
// same width always yields the same State.
package layout

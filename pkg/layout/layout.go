package layout

import (
	"fmt"
	"sort"
)

// Display describes whether and how an element is shown.
type Display string

// Display values for the navigation list and the hamburger icon.
const (
	DisplayInlineList Display = "inline-list"
	DisplayVisible    Display = "visible"
	DisplayHidden     Display = "hidden"
)

// Direction is the main axis of a region's flex container.
type Direction string

// Direction values.
const (
	DirectionRow    Direction = "row"
	DirectionColumn Direction = "column"
)

// Align is the text alignment of the hero content block.
type Align string

// Align values.
const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
)

// Viewport thresholds in CSS pixels. A breakpoint matches widths less than
// or equal to its MaxWidth, so exactly 768 and exactly 480 already take the
// narrow arrangement.
const (
	// StackWidth is the width at or below which regions stack vertically,
	// the navigation list hides, and the hamburger icon shows.
	StackWidth = 768

	// NarrowWidth is the width at or below which the hero heading drops to
	// its reduced scale. Nested inside the stacked range.
	NarrowWidth = 480
)

// Stock dimension values used by [Default].
const (
	// BaseHeadingScale is the hero heading size in rem on wide viewports.
	BaseHeadingScale = 3.0

	// NarrowHeadingScale is the hero heading size in rem at or below NarrowWidth.
	NarrowHeadingScale = 2.25

	// BaseHeroPad is the horizontal padding in px between the hero content
	// block and the hero image on wide viewports. Collapses to zero when
	// the hero stacks.
	BaseHeroPad = 48

	// StackFooterGap is the gap in px inserted between footer sections when
	// they stack vertically.
	StackFooterGap = 24
)

// State is the resolved arrangement for one viewport width: every
// directional, visibility, and sizing decision the composer and the
// stylesheet need for the four regions.
type State struct {
	NavDisplay        Display   `json:"nav_display"`
	HamburgerDisplay  Display   `json:"hamburger_display"`
	HeroDirection     Direction `json:"hero_direction"`
	HeroAlign         Align     `json:"hero_align"`
	HeroPad           int       `json:"hero_pad"`
	FeaturesDirection Direction `json:"features_direction"`
	FooterDirection   Direction `json:"footer_direction"`
	FooterGap         int       `json:"footer_gap"`
	HeadingScale      float64   `json:"heading_scale"`
}

// Ruleset is a partial State: every non-nil field overrides the
// corresponding field of the state it is applied to. Nil fields inherit.
// The toml tags serve the rules-file loader in rules.go.
type Ruleset struct {
	NavDisplay        *Display   `toml:"nav_display"`
	HamburgerDisplay  *Display   `toml:"hamburger_display"`
	HeroDirection     *Direction `toml:"hero_direction"`
	HeroAlign         *Align     `toml:"hero_align"`
	HeroPad           *int       `toml:"hero_pad"`
	FeaturesDirection *Direction `toml:"features_direction"`
	FooterDirection   *Direction `toml:"footer_direction"`
	FooterGap         *int       `toml:"footer_gap"`
	HeadingScale      *float64   `toml:"heading_scale"`
}

// apply writes every set override onto s.
func (r Ruleset) apply(s *State) {
	if r.NavDisplay != nil {
		s.NavDisplay = *r.NavDisplay
	}
	if r.HamburgerDisplay != nil {
		s.HamburgerDisplay = *r.HamburgerDisplay
	}
	if r.HeroDirection != nil {
		s.HeroDirection = *r.HeroDirection
	}
	if r.HeroAlign != nil {
		s.HeroAlign = *r.HeroAlign
	}
	if r.HeroPad != nil {
		s.HeroPad = *r.HeroPad
	}
	if r.FeaturesDirection != nil {
		s.FeaturesDirection = *r.FeaturesDirection
	}
	if r.FooterDirection != nil {
		s.FooterDirection = *r.FooterDirection
	}
	if r.FooterGap != nil {
		s.FooterGap = *r.FooterGap
	}
	if r.HeadingScale != nil {
		s.HeadingScale = *r.HeadingScale
	}
}

// Overrides returns the state as a ruleset with every field set. It lets a
// consumer treat a full state and a partial override uniformly.
func (s State) Overrides() Ruleset {
	return Ruleset{
		NavDisplay:        &s.NavDisplay,
		HamburgerDisplay:  &s.HamburgerDisplay,
		HeroDirection:     &s.HeroDirection,
		HeroAlign:         &s.HeroAlign,
		HeroPad:           &s.HeroPad,
		FeaturesDirection: &s.FeaturesDirection,
		FooterDirection:   &s.FooterDirection,
		FooterGap:         &s.FooterGap,
		HeadingScale:      &s.HeadingScale,
	}
}

// Breakpoint pairs a viewport threshold with the overrides that take effect
// at or below it.
type Breakpoint struct {
	MaxWidth int
	Rules    Ruleset
}

// Engine resolves viewport widths into layout states. Engines are immutable
// after construction and safe for concurrent use.
type Engine struct {
	base        State
	breakpoints []Breakpoint // sorted by MaxWidth descending
}

// New creates an engine from a base state and any number of breakpoints.
// Breakpoints are kept sorted widest-first so narrower rules apply last.
// MaxWidth must be positive and unique across breakpoints.
func New(base State, bps ...Breakpoint) (*Engine, error) {
	sorted := make([]Breakpoint, len(bps))
	copy(sorted, bps)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MaxWidth > sorted[j].MaxWidth
	})

	for i, bp := range sorted {
		if bp.MaxWidth <= 0 {
			return nil, fmt.Errorf("breakpoint max width must be positive, got %d", bp.MaxWidth)
		}
		if i > 0 && sorted[i-1].MaxWidth == bp.MaxWidth {
			return nil, fmt.Errorf("duplicate breakpoint at %dpx", bp.MaxWidth)
		}
	}

	return &Engine{base: base, breakpoints: sorted}, nil
}

// Default returns the stock engine: a row-based wide arrangement with the
// stacked override at StackWidth and the reduced heading scale at NarrowWidth.
func Default() *Engine {
	eng, err := New(
		State{
			NavDisplay:        DisplayInlineList,
			HamburgerDisplay:  DisplayHidden,
			HeroDirection:     DirectionRow,
			HeroAlign:         AlignStart,
			HeroPad:           BaseHeroPad,
			FeaturesDirection: DirectionRow,
			FooterDirection:   DirectionRow,
			FooterGap:         0,
			HeadingScale:      BaseHeadingScale,
		},
		Breakpoint{
			MaxWidth: StackWidth,
			Rules: Ruleset{
				NavDisplay:        ptr(DisplayHidden),
				HamburgerDisplay:  ptr(DisplayVisible),
				HeroDirection:     ptr(DirectionColumn),
				HeroAlign:         ptr(AlignCenter),
				HeroPad:           ptr(0),
				FeaturesDirection: ptr(DirectionColumn),
				FooterDirection:   ptr(DirectionColumn),
				FooterGap:         ptr(StackFooterGap),
			},
		},
		Breakpoint{
			MaxWidth: NarrowWidth,
			Rules: Ruleset{
				HeadingScale: ptr(NarrowHeadingScale),
			},
		},
	)
	if err != nil {
		// The stock table is a package constant; a construction failure is
		// a programming error, not a runtime condition.
		panic(err)
	}
	return eng
}

// Resolve maps a viewport width to its State. The fold starts at the base
// state and applies every breakpoint whose MaxWidth >= width, widest first.
// Negative widths resolve like zero.
func (e *Engine) Resolve(width int) State {
	if width < 0 {
		width = 0
	}
	s := e.base
	for _, bp := range e.breakpoints {
		if width <= bp.MaxWidth {
			bp.Rules.apply(&s)
		}
	}
	return s
}

// Base returns the wide-viewport state the engine starts from.
func (e *Engine) Base() State {
	return e.base
}

// Breakpoints returns the engine's breakpoints, widest first.
// The returned slice is a copy.
func (e *Engine) Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(e.breakpoints))
	copy(out, e.breakpoints)
	return out
}

// Snapshot pairs a viewport width with its resolved state.
type Snapshot struct {
	Width int   `json:"width"`
	State State `json:"state"`
}

// Snapshots resolves each width in order. Useful for tabular output and the
// layout JSON artifact.
func (e *Engine) Snapshots(widths ...int) []Snapshot {
	out := make([]Snapshot, len(widths))
	for i, w := range widths {
		out[i] = Snapshot{Width: w, State: e.Resolve(w)}
	}
	return out
}

func ptr[T any](v T) *T {
	return &v
}

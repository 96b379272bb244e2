package layout

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// rulesFile is the TOML shape of an engine override file. The base table
// overrides fields of the stock base state; each breakpoint table replaces
// the stock breakpoints entirely when at least one is given.
//
//	[base]
//	hero_pad = 64
//
//	[[breakpoint]]
//	max_width = 900
//	nav_display = "hidden"
//	hamburger_display = "visible"
type rulesFile struct {
	Base        Ruleset          `toml:"base"`
	Breakpoints []breakpointRule `toml:"breakpoint"`
}

type breakpointRule struct {
	MaxWidth int `toml:"max_width"`
	Ruleset
}

// ParseRules builds an engine from a TOML override file, starting from the
// stock defaults. Unknown enum values and duplicate breakpoint widths are
// rejected.
func ParseRules(data []byte) (*Engine, error) {
	var f rulesFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	if err := validateRuleset(f.Base); err != nil {
		return nil, fmt.Errorf("base: %w", err)
	}
	for _, bp := range f.Breakpoints {
		if err := validateRuleset(bp.Ruleset); err != nil {
			return nil, fmt.Errorf("breakpoint %d: %w", bp.MaxWidth, err)
		}
	}

	stock := Default()
	base := stock.Base()
	f.Base.apply(&base)

	bps := stock.Breakpoints()
	if len(f.Breakpoints) > 0 {
		bps = make([]Breakpoint, len(f.Breakpoints))
		for i, bp := range f.Breakpoints {
			bps[i] = Breakpoint{MaxWidth: bp.MaxWidth, Rules: bp.Ruleset}
		}
	}

	return New(base, bps...)
}

// ReadRulesFile loads an engine override file from disk.
func ReadRulesFile(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return ParseRules(data)
}

func validateRuleset(r Ruleset) error {
	for _, d := range []*Display{r.NavDisplay, r.HamburgerDisplay} {
		if d == nil {
			continue
		}
		switch *d {
		case DisplayInlineList, DisplayVisible, DisplayHidden:
		default:
			return fmt.Errorf("unknown display %q", *d)
		}
	}
	for _, d := range []*Direction{r.HeroDirection, r.FeaturesDirection, r.FooterDirection} {
		if d == nil {
			continue
		}
		switch *d {
		case DirectionRow, DirectionColumn:
		default:
			return fmt.Errorf("unknown direction %q", *d)
		}
	}
	if r.HeroAlign != nil {
		switch *r.HeroAlign {
		case AlignStart, AlignCenter:
		default:
			return fmt.Errorf("unknown align %q", *r.HeroAlign)
		}
	}
	if r.HeroPad != nil && *r.HeroPad < 0 {
		return fmt.Errorf("hero pad must not be negative, got %d", *r.HeroPad)
	}
	if r.FooterGap != nil && *r.FooterGap < 0 {
		return fmt.Errorf("footer gap must not be negative, got %d", *r.FooterGap)
	}
	if r.HeadingScale != nil && *r.HeadingScale <= 0 {
		return fmt.Errorf("heading scale must be positive, got %g", *r.HeadingScale)
	}
	return nil
}

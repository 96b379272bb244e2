// Package css generates the page stylesheet from a layout engine.
//
// The stylesheet is assembled from four sections:
//
//  1. an embedded skeleton with the rules that hold at every width
//  2. the engine's wide-viewport state as plain rules
//  3. one max-width media block per breakpoint, widest first, so a
//     narrower block overrides a wider one exactly like the engine's
//     resolution fold
//  4. state modifier classes, emitted last so a document pinned to one
//     state beats the media blocks at equal specificity
//
// Sections 2 and 3 are generated from the same rule table the engine
// resolves widths with, so the stylesheet and [layout.Engine.Resolve] can
// never disagree about what a viewport width looks like.
package css

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/vitrine/pkg/layout"
)

//go:embed static.css
var staticCSS string

type generator struct {
	extra string
}

// Option adjusts stylesheet generation.
type Option func(*generator)

// WithExtra appends site-author CSS after the generated sections.
func WithExtra(cssText string) Option {
	return func(g *generator) { g.extra = cssText }
}

// Stylesheet renders the complete stylesheet for the given engine.
func Stylesheet(eng *layout.Engine, opts ...Option) []byte {
	g := &generator{}
	for _, opt := range opts {
		opt(g)
	}

	var buf bytes.Buffer
	buf.WriteString(staticCSS)

	buf.WriteString("\n/* Wide-viewport defaults */\n\n")
	writeRules(&buf, rulesFor(eng.Base().Overrides()), "")

	for _, bp := range eng.Breakpoints() {
		fmt.Fprintf(&buf, "\n@media (max-width: %dpx) {\n", bp.MaxWidth)
		writeRules(&buf, rulesFor(bp.Rules), "  ")
		buf.WriteString("}\n")
	}

	buf.WriteString("\n/* State modifiers: pin one arrangement regardless of viewport */\n\n")
	writeRules(&buf, modifierRules(), "")

	if g.extra != "" {
		buf.WriteString("\n/* Site-author additions */\n\n")
		buf.WriteString(strings.TrimSpace(g.extra))
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// Vars renders a state's numeric fields as custom-property assignments,
// suitable for a style attribute: "--heading-scale:3rem;--hero-pad:48px;...".
// A document pinned to a state carries these on its body element.
func Vars(s layout.State) string {
	return fmt.Sprintf("--heading-scale:%s;--hero-pad:%s;--footer-gap:%s",
		Rem(s.HeadingScale), Px(s.HeroPad), Px(s.FooterGap))
}

// Rem formats a rem size without trailing zeros: 3 -> "3rem", 2.25 -> "2.25rem".
func Rem(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "rem"
}

// Px formats a pixel size.
func Px(v int) string {
	return strconv.Itoa(v) + "px"
}

// rule is one selector with its declarations.
type rule struct {
	selector string
	decls    []string
}

// rulesFor converts a ruleset into CSS rules. Enumerable fields become
// selector rules; numeric fields become custom properties on :root, which
// the skeleton references via var().
func rulesFor(r layout.Ruleset) []rule {
	var root []string
	if r.HeadingScale != nil {
		root = append(root, "--heading-scale: "+Rem(*r.HeadingScale))
	}
	if r.HeroPad != nil {
		root = append(root, "--hero-pad: "+Px(*r.HeroPad))
	}
	if r.FooterGap != nil {
		root = append(root, "--footer-gap: "+Px(*r.FooterGap))
	}

	var rules []rule
	if len(root) > 0 {
		rules = append(rules, rule{":root", root})
	}
	if r.NavDisplay != nil {
		rules = append(rules, rule{".nav", displayDecls(*r.NavDisplay)})
	}
	if r.HamburgerDisplay != nil {
		rules = append(rules, rule{".menu-icon", displayDecls(*r.HamburgerDisplay)})
	}
	if r.HeroDirection != nil {
		rules = append(rules, rule{".hero", directionDecls(*r.HeroDirection)})
	}
	if r.HeroAlign != nil {
		rules = append(rules, rule{".hero__content", alignDecls(*r.HeroAlign)})
	}
	if r.FeaturesDirection != nil {
		rules = append(rules, rule{".features__grid", directionDecls(*r.FeaturesDirection)})
	}
	if r.FooterDirection != nil {
		rules = append(rules, rule{".footer", directionDecls(*r.FooterDirection)})
	}
	return rules
}

// modifierRules emits one class per layout value so a composed document can
// pin any arrangement: ".nav--hidden", ".hero--column", and so on. The class
// vocabulary is block--value, with values taken verbatim from the layout
// types.
func modifierRules() []rule {
	var rules []rule
	for _, d := range []layout.Display{layout.DisplayInlineList, layout.DisplayHidden} {
		rules = append(rules, rule{".nav--" + string(d), displayDecls(d)})
	}
	for _, d := range []layout.Display{layout.DisplayVisible, layout.DisplayHidden} {
		rules = append(rules, rule{".menu-icon--" + string(d), displayDecls(d)})
	}
	for _, dir := range []layout.Direction{layout.DirectionRow, layout.DirectionColumn} {
		rules = append(rules, rule{".hero--" + string(dir), directionDecls(dir)})
	}
	for _, a := range []layout.Align{layout.AlignStart, layout.AlignCenter} {
		rules = append(rules, rule{".hero__content--" + string(a), alignDecls(a)})
	}
	for _, dir := range []layout.Direction{layout.DirectionRow, layout.DirectionColumn} {
		rules = append(rules, rule{".features__grid--" + string(dir), directionDecls(dir)})
	}
	for _, dir := range []layout.Direction{layout.DirectionRow, layout.DirectionColumn} {
		rules = append(rules, rule{".footer--" + string(dir), directionDecls(dir)})
	}
	return rules
}

func displayDecls(d layout.Display) []string {
	if d == layout.DisplayHidden {
		return []string{"display: none"}
	}
	return []string{"display: flex"}
}

func directionDecls(d layout.Direction) []string {
	return []string{"flex-direction: " + string(d)}
}

func alignDecls(a layout.Align) []string {
	if a == layout.AlignCenter {
		return []string{"text-align: center", "align-items: center"}
	}
	return []string{"text-align: start", "align-items: flex-start"}
}

func writeRules(buf *bytes.Buffer, rules []rule, indent string) {
	for i, r := range rules {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(buf, "%s%s {\n", indent, r.selector)
		for _, d := range r.decls {
			fmt.Fprintf(buf, "%s  %s;\n", indent, d)
		}
		fmt.Fprintf(buf, "%s}\n", indent)
	}
}

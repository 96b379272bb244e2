package page

import (
	"bytes"
	"strings"
	"testing"

	g "maragu.dev/gomponents"

	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/layout"
)

func testModel() *content.Model {
	return &content.Model{
		Site: content.Site{
			Title:       "Acme Cloud",
			Description: "Ship faster with Acme.",
			Lang:        "en",
		},
		Header: content.Header{
			Logo: "Acme",
			Nav: []content.NavItem{
				{Label: "Features", Target: "#features"},
				{Label: "Pricing", Target: "#"},
				{Label: "Docs", Target: "https://docs.acme.test"},
			},
			MenuIcon: "menu-outline",
		},
		Hero: content.Hero{
			Heading:      "Launch in minutes",
			Subheading:   "Everything you need, <em>nothing</em> you don't.",
			PrimaryCTA:   content.CTA{Label: "Get Started", Target: "#"},
			SecondaryCTA: content.CTA{Label: "Learn More"},
			Image:        "images/hero.png",
		},
		Features: []content.Feature{
			{Icon: "flash-outline", Title: "Fast", Description: "Deploys in seconds."},
			{Icon: "lock-closed-outline", Title: "Secure", Description: "Encrypted at rest."},
			{Icon: "people-outline", Title: "Collaborative", Description: "Built for teams."},
		},
		Footer: content.Footer{
			Contact: []content.ContactEntry{
				{Icon: "mail-outline", Text: "hello@acme.test"},
				{Icon: "call-outline", Text: "+1 555 0100"},
			},
			Social: []content.SocialLink{
				{Icon: "logo-github", Target: "#"},
				{Icon: "logo-twitter", Target: "#"},
			},
			Copyright: "© 2026 Acme Inc.",
		},
	}
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestComposeWideState(t *testing.T) {
	c := New(testModel())
	html := render(t, c.Compose(layout.Default().Resolve(1024)))

	for _, want := range []string{
		"nav--inline-list",
		"menu-icon--hidden",
		"hero--row",
		"hero__content--start",
		"features__grid--row",
		"footer--row",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("wide compose missing %q", want)
		}
	}
	if strings.Contains(html, "nav--hidden") {
		t.Error("wide compose should not hide the nav")
	}
}

func TestComposeStackedState(t *testing.T) {
	c := New(testModel())
	html := render(t, c.Compose(layout.Default().Resolve(600)))

	for _, want := range []string{
		"nav--hidden",
		"menu-icon--visible",
		"hero--column",
		"hero__content--center",
		"features__grid--column",
		"footer--column",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("stacked compose missing %q", want)
		}
	}
}

// At every width exactly one of the nav list and the menu icon is hidden.
func TestComposeMutualExclusion(t *testing.T) {
	c := New(testModel())
	eng := layout.Default()

	for _, width := range []int{1920, 1024, 769, 768, 600, 481, 480, 320} {
		html := render(t, c.Compose(eng.Resolve(width)))
		navHidden := strings.Contains(html, "nav--hidden")
		menuHidden := strings.Contains(html, "menu-icon--hidden")
		if navHidden == menuHidden {
			t.Errorf("width %d: navHidden=%v menuHidden=%v, want exactly one",
				width, navHidden, menuHidden)
		}
	}
}

func TestComposeRegionOrder(t *testing.T) {
	c := New(testModel())
	html := render(t, c.Compose(layout.Default().Resolve(1024)))

	header := strings.Index(html, `class="header"`)
	hero := strings.Index(html, `class="hero`)
	features := strings.Index(html, `class="features"`)
	footer := strings.Index(html, `class="footer`)

	if header == -1 || hero == -1 || features == -1 || footer == -1 {
		t.Fatal("compose missing a region")
	}
	if !(header < hero && hero < features && features < footer) {
		t.Errorf("regions out of order: header=%d hero=%d features=%d footer=%d",
			header, hero, features, footer)
	}
}

func TestComposePreservesContentOrder(t *testing.T) {
	c := New(testModel())
	html := render(t, c.Compose(layout.Default().Resolve(1024)))

	// Nav items in input order
	prev := -1
	for _, label := range []string{"Features", "Pricing", "Docs"} {
		idx := strings.Index(html, ">"+label+"<")
		if idx == -1 {
			t.Fatalf("nav label %q missing", label)
		}
		if idx < prev {
			t.Errorf("nav label %q out of order", label)
		}
		prev = idx
	}

	// Feature cards in input order
	prev = -1
	for _, title := range []string{"Fast", "Secure", "Collaborative"} {
		idx := strings.Index(html, ">"+title+"<")
		if idx == -1 {
			t.Fatalf("feature title %q missing", title)
		}
		if idx < prev {
			t.Errorf("feature title %q out of order", title)
		}
		prev = idx
	}

	// Footer: contact, then social, then copyright
	contact := strings.Index(html, "footer__contact")
	social := strings.Index(html, "footer__social")
	copyright := strings.Index(html, "footer__copyright")
	if !(contact < social && social < copyright) {
		t.Errorf("footer sections out of order: contact=%d social=%d copyright=%d",
			contact, social, copyright)
	}
}

// The hero content block precedes the image in source order, so column
// flow stacks the copy above the picture.
func TestComposeHeroContentAboveImage(t *testing.T) {
	c := New(testModel())

	for _, width := range []int{1024, 400} {
		html := render(t, c.Compose(layout.Default().Resolve(width)))
		contentIdx := strings.Index(html, "hero__content")
		imageIdx := strings.Index(html, "hero__image")
		if contentIdx == -1 || imageIdx == -1 {
			t.Fatalf("width %d: hero blocks missing", width)
		}
		if contentIdx > imageIdx {
			t.Errorf("width %d: hero image precedes content", width)
		}
	}
}

// Composing is a pure read of the model: same input, same output, as often
// as you like.
func TestComposeIdempotent(t *testing.T) {
	m := testModel()
	c := New(m)
	s := layout.Default().Resolve(600)

	first := render(t, c.Compose(s))
	second := render(t, c.Compose(s))
	if first != second {
		t.Error("repeated Compose calls should render identically")
	}

	fresh := render(t, New(m).Compose(s))
	if first != fresh {
		t.Error("a fresh composer over the same model should render identically")
	}
}

func TestDocumentPinsState(t *testing.T) {
	c := New(testModel())
	html := render(t, c.Document(layout.Default().Resolve(400)))

	if !strings.HasPrefix(html, "<!DOCTYPE html>") {
		t.Error("document missing doctype")
	}
	if !strings.Contains(html, `<html lang="en">`) {
		t.Error("document missing lang attribute")
	}
	if !strings.Contains(html, `style="--heading-scale:2.25rem;--hero-pad:0px;--footer-gap:24px"`) {
		t.Error("document missing pinned custom properties")
	}
	if !strings.Contains(html, `href="styles.css"`) {
		t.Error("document missing stylesheet link")
	}
	if !strings.Contains(html, "<title>Acme Cloud</title>") {
		t.Error("document missing title")
	}
}

func TestFluidHasNoStateClasses(t *testing.T) {
	c := New(testModel())
	html := render(t, c.Fluid())

	for _, stray := range []string{
		"nav--",
		"menu-icon--",
		"hero--",
		"hero__content--",
		"features__grid--",
		"footer--",
		"--heading-scale:",
	} {
		if strings.Contains(html, stray) {
			t.Errorf("fluid document carries state marker %q", stray)
		}
	}

	if !strings.Contains(html, `href="styles.css"`) {
		t.Error("fluid document missing stylesheet link")
	}
	if !strings.Contains(html, `class="menu-icon"`) {
		t.Error("fluid document should still render the menu icon")
	}
}

func TestMenuIconInertByDefault(t *testing.T) {
	c := New(testModel())
	html := render(t, c.Fluid())

	if !strings.Contains(html, `<button class="menu-icon" type="button" aria-label="Menu">`) {
		t.Errorf("menu icon should be an inert button, got:\n%s", html)
	}
}

func TestWithNavToggle(t *testing.T) {
	c := New(testModel(), WithNavToggle("#nav"))
	html := render(t, c.Fluid())

	if !strings.Contains(html, `<a class="menu-icon" href="#nav" aria-label="Menu">`) {
		t.Errorf("menu icon should be an anchor to the toggle target, got:\n%s", html)
	}
	if c.NavToggleTarget() != "#nav" {
		t.Errorf("NavToggleTarget() = %q", c.NavToggleTarget())
	}
}

func TestWithInlineStyle(t *testing.T) {
	sheet := []byte(".hero { display: flex; }")
	c := New(testModel(), WithInlineStyle(sheet))
	html := render(t, c.Fluid())

	if !strings.Contains(html, "<style>.hero { display: flex; }</style>") {
		t.Error("inline stylesheet not embedded")
	}
	if strings.Contains(html, `href="styles.css"`) {
		t.Error("inline document should not link the stylesheet")
	}
}

func TestComposerOptionsAccumulate(t *testing.T) {
	opts := []ComposerOption{
		WithStylesheet("/styles.css"),
		WithNavToggle("#nav"),
		WithGenerator("vitrine test"),
	}
	html := render(t, New(testModel(), opts...).Fluid())

	if !strings.Contains(html, `href="/styles.css"`) {
		t.Error("stylesheet override not applied")
	}
	if !strings.Contains(html, `href="#nav"`) {
		t.Error("nav toggle target not applied")
	}
	if !strings.Contains(html, `content="vitrine test"`) {
		t.Error("generator tag not applied")
	}
}

func TestWithGenerator(t *testing.T) {
	c := New(testModel(), WithGenerator("vitrine v1.2.3"))
	html := render(t, c.Fluid())

	if !strings.Contains(html, `<meta name="generator" content="vitrine v1.2.3">`) {
		t.Error("generator meta tag missing")
	}
}

func TestIconStylesheetLink(t *testing.T) {
	m := testModel()
	m.Site.IconStylesheet = "https://cdn.acme.test/icons.css"
	html := render(t, New(m).Fluid())

	if !strings.Contains(html, `href="https://cdn.acme.test/icons.css"`) {
		t.Error("icon stylesheet link missing")
	}
}

func TestTextIsEscaped(t *testing.T) {
	m := testModel()
	m.Features[0].Title = "Fast & <Furious>"
	html := render(t, New(m).Compose(layout.Default().Resolve(1024)))

	if !strings.Contains(html, "Fast &amp; &lt;Furious&gt;") {
		t.Error("feature title not escaped")
	}
	if strings.Contains(html, "<Furious>") {
		t.Error("raw markup leaked into the document")
	}
}

func TestRenderedMarkdownIsEmittedRaw(t *testing.T) {
	c := New(testModel())
	html := render(t, c.Compose(layout.Default().Resolve(1024)))

	if !strings.Contains(html, "<em>nothing</em>") {
		t.Error("rendered subheading markup should pass through")
	}
}

func TestCTAPlaceholderTarget(t *testing.T) {
	c := New(testModel())
	html := render(t, c.Compose(layout.Default().Resolve(1024)))

	// SecondaryCTA has no target and falls back to the placeholder.
	if !strings.Contains(html, `<a class="button button--secondary" href="#">Learn More</a>`) {
		t.Error("secondary CTA placeholder target missing")
	}
	if !strings.Contains(html, `<a class="button button--primary" href="#">Get Started</a>`) {
		t.Error("primary CTA missing")
	}
}

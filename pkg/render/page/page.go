// Package page composes a content model into an HTML document.
//
// The composer produces two kinds of documents from the same region
// builders:
//
//   - [Composer.Fluid] emits the shipping page: no state classes, the
//     stylesheet's media queries drive the arrangement as the viewport
//     changes.
//   - [Composer.Document] pins the page to one resolved [layout.State]:
//     every region carries its state modifier class and the body style
//     attribute fixes the numeric custom properties. Pinned documents
//     render identically at any real viewport width.
//
// Markdown-bearing fields (hero subheading, feature descriptions) arrive
// already rendered by the content package and are emitted raw; everything
// else is escaped text.
package page

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/layout"
	"github.com/matzehuels/vitrine/pkg/render/css"
)

// DefaultStylesheetHref is the stylesheet reference emitted when no option
// overrides it, matching the artifact name the pipeline writes.
const DefaultStylesheetHref = "styles.css"

// Composer binds a content model and renders it into documents.
type Composer struct {
	model      *content.Model
	stylesheet string
	inlineCSS  []byte
	navToggle  string
	generator  string
}

// ComposerOption adjusts document composition. The dot-imported html
// package already exports Option (the <option> element), hence the prefix.
type ComposerOption func(*Composer)

// WithStylesheet overrides the stylesheet href in the document head.
func WithStylesheet(href string) ComposerOption {
	return func(c *Composer) { c.stylesheet = href }
}

// WithInlineStyle embeds the stylesheet into the document head instead of
// linking it, for single-file exports.
func WithInlineStyle(sheet []byte) ComposerOption {
	return func(c *Composer) { c.inlineCSS = sheet }
}

// WithNavToggle points the menu icon at an anchor target, e.g. "#nav".
// The icon itself still ships without behavior; the target is a hook for
// site authors who bring their own toggle mechanism.
func WithNavToggle(target string) ComposerOption {
	return func(c *Composer) { c.navToggle = target }
}

// WithGenerator emits a generator meta tag with the given value.
func WithGenerator(tag string) ComposerOption {
	return func(c *Composer) { c.generator = tag }
}

// New creates a composer for a finalized model.
func New(m *content.Model, opts ...ComposerOption) *Composer {
	c := &Composer{
		model:      m,
		stylesheet: DefaultStylesheetHref,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NavToggleTarget reports the anchor target the menu icon points at, empty
// when the icon is an inert button.
func (c *Composer) NavToggleTarget() string {
	return c.navToggle
}

// Compose renders the page regions pinned to one layout state: header,
// hero, features, footer, in that order. Visibility and arrangement are
// carried entirely by the state's modifier classes.
func (c *Composer) Compose(s layout.State) g.Node {
	return c.regions(&s)
}

// Document renders a complete HTML document pinned to one layout state.
func (c *Composer) Document(s layout.State) g.Node {
	return c.document(&s)
}

// Fluid renders the complete responsive document. No state classes are
// emitted; the stylesheet's media queries produce the same arrangements
// Resolve produces for matching widths.
func (c *Composer) Fluid() g.Node {
	return c.document(nil)
}

// document assembles head and body. A nil state means fluid composition.
func (c *Composer) document(s *layout.State) g.Node {
	site := c.model.Site

	head := []g.Node{
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
		TitleEl(g.Text(site.Title)),
		g.If(site.Description != "",
			Meta(Name("description"), Content(site.Description))),
		g.If(c.generator != "",
			Meta(Name("generator"), Content(c.generator))),
		g.If(site.BaseURL != "",
			Link(Rel("canonical"), Href(site.BaseURL))),
		g.If(site.IconStylesheet != "",
			Link(Rel("stylesheet"), Href(site.IconStylesheet))),
	}
	if len(c.inlineCSS) > 0 {
		head = append(head, StyleEl(g.Raw(string(c.inlineCSS))))
	} else {
		head = append(head, Link(Rel("stylesheet"), Href(c.stylesheet)))
	}

	body := []g.Node{c.regions(s)}
	if s != nil {
		body = append([]g.Node{g.Attr("style", css.Vars(*s))}, body...)
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang(site.Lang),
			Head(head...),
			Body(body...),
		),
	})
}

// regions renders the four page regions in document order. The stacked
// arrangements need no reordering: the hero content block precedes the
// image in source order, so a column flow puts it on top.
func (c *Composer) regions(s *layout.State) g.Node {
	return g.Group([]g.Node{
		c.header(s),
		Main(
			c.hero(s),
			c.features(s),
		),
		c.footer(s),
	})
}

func (c *Composer) header(s *layout.State) g.Node {
	h := c.model.Header

	navClass := "nav"
	menuClass := "menu-icon"
	if s != nil {
		navClass += " nav--" + string(s.NavDisplay)
		menuClass += " menu-icon--" + string(s.HamburgerDisplay)
	}

	return Header(Class("header"),
		A(Class("header__logo"), Href("#"), g.Text(h.Logo)),
		Nav(Class(navClass), ID("nav"), g.Attr("aria-label", "Main"),
			Ul(Class("nav__list"),
				g.Map(h.Nav, func(n content.NavItem) g.Node {
					return Li(Class("nav__item"),
						A(Class("nav__link"), Href(n.Target), g.Text(n.Label)),
					)
				}),
			),
		),
		c.menuIcon(menuClass),
	)
}

// menuIcon renders the hamburger. It is an exposed interaction hook: shown
// on stacked viewports but wired to nothing. With a nav toggle target it
// becomes an anchor; it never gets behavior from this module.
func (c *Composer) menuIcon(class string) g.Node {
	name := c.model.Header.MenuIcon
	if c.navToggle != "" {
		return A(Class(class), Href(c.navToggle), g.Attr("aria-label", "Menu"),
			icon(name))
	}
	return Button(Class(class), Type("button"), g.Attr("aria-label", "Menu"),
		icon(name))
}

func (c *Composer) hero(s *layout.State) g.Node {
	h := c.model.Hero

	heroClass := "hero"
	contentClass := "hero__content"
	if s != nil {
		heroClass += " hero--" + string(s.HeroDirection)
		contentClass += " hero__content--" + string(s.HeroAlign)
	}

	return Section(Class(heroClass),
		Div(Class(contentClass),
			H1(Class("hero__heading"), g.Text(h.Heading)),
			g.If(h.Subheading != "",
				P(Class("hero__subheading"), g.Raw(h.Subheading))),
			g.If(h.PrimaryCTA.Label != "" || h.SecondaryCTA.Label != "",
				Div(Class("hero__actions"),
					cta(h.PrimaryCTA, "button button--primary"),
					cta(h.SecondaryCTA, "button button--secondary"),
				)),
		),
		g.If(h.Image != "",
			Div(Class("hero__image"),
				Img(Src(h.Image), Alt("")),
			)),
	)
}

func cta(c content.CTA, class string) g.Node {
	if c.Label == "" {
		return nil
	}
	target := c.Target
	if target == "" {
		target = "#"
	}
	return A(Class(class), Href(target), g.Text(c.Label))
}

func (c *Composer) features(s *layout.State) g.Node {
	gridClass := "features__grid"
	if s != nil {
		gridClass += " features__grid--" + string(s.FeaturesDirection)
	}

	return Section(Class("features"), ID("features"),
		Div(Class(gridClass),
			g.Map(c.model.Features, func(f content.Feature) g.Node {
				return Article(Class("card"),
					g.If(f.Icon != "", Span(Class("card__icon"), icon(f.Icon))),
					H3(Class("card__title"), g.Text(f.Title)),
					g.If(f.Description != "",
						P(Class("card__description"), g.Raw(f.Description))),
				)
			}),
		),
	)
}

func (c *Composer) footer(s *layout.State) g.Node {
	f := c.model.Footer

	footerClass := "footer"
	if s != nil {
		footerClass += " footer--" + string(s.FooterDirection)
	}

	return Footer(Class(footerClass),
		Div(Class("footer__contact"),
			g.Map(f.Contact, func(e content.ContactEntry) g.Node {
				return P(Class("footer__contact-entry"),
					icon(e.Icon),
					g.Text(e.Text),
				)
			}),
		),
		Div(Class("footer__social"),
			Div(Class("footer__social-links"),
				g.Map(f.Social, func(l content.SocialLink) g.Node {
					return A(Href(l.Target), g.Attr("aria-label", l.Icon),
						icon(l.Icon))
				}),
			),
		),
		g.If(f.Copyright != "",
			P(Class("footer__copyright"), g.Text(f.Copyright))),
	)
}

// icon renders an icon-font glyph. Names are opaque class names resolved by
// the site's icon stylesheet.
func icon(name string) g.Node {
	if name == "" {
		return nil
	}
	return Span(Class("icon "+name), g.Attr("aria-hidden", "true"))
}

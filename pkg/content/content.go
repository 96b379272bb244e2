// Package content defines the model a page is composed from: site metadata,
// header navigation, hero copy, feature entries, and footer links.
//
// Models are loaded once (from a TOML document, a content directory, or a
// MongoDB collection, see the source subpackage) and treated as read-only
// afterwards. Nothing in this module mutates a Model after
// [Model.ValidateAndSetDefaults] has run.
//
// Link targets are opaque strings. Placeholder targets such as "#" are
// valid; resolving or checking them is the content author's concern.
package content

// Model is the complete content for one page.
type Model struct {
	Site     Site      `toml:"site" json:"site" bson:"site"`
	Header   Header    `toml:"header" json:"header" bson:"header"`
	Hero     Hero      `toml:"hero" json:"hero" bson:"hero"`
	Features []Feature `toml:"features" json:"features" bson:"features"`
	Footer   Footer    `toml:"footer" json:"footer" bson:"footer"`
}

// Site holds document-level metadata.
type Site struct {
	Title       string `toml:"title" json:"title" bson:"title"`
	Description string `toml:"description" json:"description,omitempty" bson:"description,omitempty"`
	Lang        string `toml:"lang" json:"lang,omitempty" bson:"lang,omitempty"`
	BaseURL     string `toml:"base_url" json:"base_url,omitempty" bson:"base_url,omitempty"`

	// IconStylesheet is the href of the icon-glyph stylesheet referenced
	// from the document head. Icon names in the model resolve against it.
	IconStylesheet string `toml:"icon_stylesheet" json:"icon_stylesheet,omitempty" bson:"icon_stylesheet,omitempty"`
}

// Header holds the logo text, the navigation items, and the icon shown in
// place of the navigation on narrow viewports.
type Header struct {
	Logo     string    `toml:"logo" json:"logo" bson:"logo"`
	Nav      []NavItem `toml:"nav" json:"nav,omitempty" bson:"nav,omitempty"`
	MenuIcon string    `toml:"menu_icon" json:"menu_icon,omitempty" bson:"menu_icon,omitempty"`
}

// NavItem is one entry in the navigation list. Slice order is display order.
type NavItem struct {
	Label  string `toml:"label" json:"label" bson:"label"`
	Target string `toml:"target" json:"target" bson:"target"`
}

// CTA is a call-to-action button. An empty Target renders as a placeholder.
type CTA struct {
	Label  string `toml:"label" json:"label" bson:"label"`
	Target string `toml:"target" json:"target,omitempty" bson:"target,omitempty"`
}

// Hero is the lead section: heading, subheading, two calls-to-action, and
// an image reference. Subheading accepts inline markdown.
type Hero struct {
	Heading      string `toml:"heading" json:"heading" bson:"heading"`
	Subheading   string `toml:"subheading" json:"subheading,omitempty" bson:"subheading,omitempty"`
	PrimaryCTA   CTA    `toml:"primary_cta" json:"primary_cta" bson:"primary_cta"`
	SecondaryCTA CTA    `toml:"secondary_cta" json:"secondary_cta" bson:"secondary_cta"`
	Image        string `toml:"image" json:"image,omitempty" bson:"image,omitempty"`
}

// Feature is one card in the feature grid. Description accepts inline
// markdown. Slice order is display order.
type Feature struct {
	Icon        string `toml:"icon" json:"icon,omitempty" bson:"icon,omitempty"`
	Title       string `toml:"title" json:"title" bson:"title"`
	Description string `toml:"description" json:"description,omitempty" bson:"description,omitempty"`
}

// Footer holds the contact entries, social links, and copyright line.
type Footer struct {
	Contact   []ContactEntry `toml:"contact" json:"contact,omitempty" bson:"contact,omitempty"`
	Social    []SocialLink   `toml:"social" json:"social,omitempty" bson:"social,omitempty"`
	Copyright string         `toml:"copyright" json:"copyright,omitempty" bson:"copyright,omitempty"`
}

// ContactEntry is one line in the footer contact section.
type ContactEntry struct {
	Icon string `toml:"icon" json:"icon,omitempty" bson:"icon,omitempty"`
	Text string `toml:"text" json:"text" bson:"text"`
}

// SocialLink is one icon link in the footer. Slice order is display order.
type SocialLink struct {
	Icon   string `toml:"icon" json:"icon" bson:"icon"`
	Target string `toml:"target" json:"target" bson:"target"`
}

// Defaults applied by ValidateAndSetDefaults.
const (
	DefaultLang     = "en"
	DefaultMenuIcon = "menu-outline"
)

// Package tree builds and renders the composition tree of a page: the
// region hierarchy the composer binds a model into, independent of any
// viewport width. It exists for inspection tooling; the shipped page never
// embeds it.
package tree

import (
	"fmt"

	"github.com/matzehuels/vitrine/pkg/content"
)

// Output formats for rendered trees.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Formats lists the supported output formats.
var Formats = []string{FormatDOT, FormatSVG, FormatPNG}

// ValidFormat reports whether format names a supported tree output.
func ValidFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Node is one element of the composition tree.
type Node struct {
	ID       string
	Label    string
	Region   bool // one of the four page regions
	Children []*Node
}

// add appends a child and returns it.
func (n *Node) add(id, label string) *Node {
	child := &Node{ID: id, Label: label}
	n.Children = append(n.Children, child)
	return child
}

// Walk visits the tree depth-first, parents before children, with the
// nesting depth of each node (0 for the root).
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns the number of nodes in the tree.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node, int) { total++ })
	return total
}

// FromModel builds the composition tree for a model: page at the root, the
// four regions beneath it, and the bound content as leaves, in the order
// the composer emits them.
func FromModel(m *content.Model) *Node {
	page := &Node{ID: "page", Label: m.Site.Title}

	header := page.add("header", "header")
	header.Region = true
	header.add("header/logo", "logo: "+m.Header.Logo)
	nav := header.add("header/nav", "nav")
	for i, item := range m.Header.Nav {
		nav.add(fmt.Sprintf("header/nav/%d", i), item.Label)
	}
	header.add("header/menu-icon", "menu icon: "+m.Header.MenuIcon)

	hero := page.add("hero", "hero")
	hero.Region = true
	heroContent := hero.add("hero/content", "content")
	heroContent.add("hero/content/heading", m.Hero.Heading)
	if m.Hero.Subheading != "" {
		heroContent.add("hero/content/subheading", "subheading")
	}
	if m.Hero.PrimaryCTA.Label != "" || m.Hero.SecondaryCTA.Label != "" {
		actions := heroContent.add("hero/content/actions", "actions")
		if m.Hero.PrimaryCTA.Label != "" {
			actions.add("hero/content/actions/primary", m.Hero.PrimaryCTA.Label)
		}
		if m.Hero.SecondaryCTA.Label != "" {
			actions.add("hero/content/actions/secondary", m.Hero.SecondaryCTA.Label)
		}
	}
	if m.Hero.Image != "" {
		hero.add("hero/image", "image: "+m.Hero.Image)
	}

	features := page.add("features", "features")
	features.Region = true
	for i, f := range m.Features {
		features.add(fmt.Sprintf("features/%d", i), f.Title)
	}

	footer := page.add("footer", "footer")
	footer.Region = true
	contact := footer.add("footer/contact", "contact")
	for i, e := range m.Footer.Contact {
		contact.add(fmt.Sprintf("footer/contact/%d", i), e.Text)
	}
	social := footer.add("footer/social", "social")
	for i, l := range m.Footer.Social {
		social.add(fmt.Sprintf("footer/social/%d", i), l.Icon)
	}
	if m.Footer.Copyright != "" {
		footer.add("footer/copyright", "copyright")
	}

	return page
}

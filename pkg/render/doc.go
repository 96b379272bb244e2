// Package render groups the output stages that turn a content model into
// shippable artifacts.
//
// # Overview
//
// Rendering is split across three subpackages, each producing one artifact
// family:
//
//   - [page]: HTML documents (in [page] subpackage)
//   - [css]: the stylesheet derived from the layout rule table
//   - [tree]: composition-tree diagrams for inspection tooling
//
// # Pages and Styles
//
// The [page] composer binds a model into the fixed region order and emits
// HTML; the [css] generator emits the matching stylesheet from a layout
// engine. Both share one class vocabulary, so a stylesheet produced from an
// engine always styles the markup produced from the same engine's states:
//
//	comp := page.New(model)
//	html := comp.Fluid()
//	sheet := css.Stylesheet(engine)
//
// A document pinned to a single state uses modifier classes and inline
// custom properties instead of media queries:
//
//	doc := comp.Document(engine.Resolve(400))
//
// # Composition Trees
//
// The [tree] subpackage renders the page's region hierarchy as a directed
// graph using Graphviz, for the inspect command and debugging:
//
//	dot := tree.ToDOT(tree.FromModel(model))
//	svg, err := tree.RenderSVG(dot)
//
// [page]: github.com/matzehuels/vitrine/pkg/render/page
// [css]: github.com/matzehuels/vitrine/pkg/render/css
// [tree]: github.com/matzehuels/vitrine/pkg/render/tree
package render

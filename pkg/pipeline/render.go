package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	g "maragu.dev/gomponents"

	"github.com/matzehuels/vitrine/pkg/buildinfo"
	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/layout"
	"github.com/matzehuels/vitrine/pkg/render/css"
	"github.com/matzehuels/vitrine/pkg/render/page"
	"github.com/matzehuels/vitrine/pkg/render/tree"
)

// Render generates the requested artifacts from a model and rule table.
func Render(m *content.Model, eng *layout.Engine, opts Options) (map[string][]byte, error) {
	comp := page.New(m, composerOptions(eng, opts)...)

	var root *tree.Node
	if opts.WantsTree() {
		root = tree.FromModel(m)
	}

	artifacts := make(map[string][]byte)

	for _, name := range opts.Artifacts {
		var data []byte
		var err error

		switch name {
		case ArtifactPage:
			data, err = renderNode(comp.Fluid())
		case ArtifactStyles:
			data = stylesheet(eng, opts)
		case ArtifactLayout:
			data, err = json.MarshalIndent(eng.Snapshots(opts.Widths...), "", "  ")
		case ArtifactTreeDOT:
			data, err = tree.Render(root, tree.FormatDOT)
		case ArtifactTreeSVG:
			data, err = tree.Render(root, tree.FormatSVG)
		case ArtifactTreePNG:
			data, err = tree.Render(root, tree.FormatPNG)
		default:
			return nil, fmt.Errorf("unsupported artifact: %s", name)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", name, err)
		}
		artifacts[name] = data
	}

	return artifacts, nil
}

// RenderDocument renders one page pinned to the layout state for a single
// viewport width. The preview tooling uses this to show what the fluid page
// collapses to at that width.
func RenderDocument(m *content.Model, eng *layout.Engine, width int, opts Options) ([]byte, error) {
	opts.SetRenderDefaults()
	comp := page.New(m, composerOptions(eng, opts)...)
	return renderNode(comp.Document(eng.Resolve(width)))
}

// composerOptions translates pipeline options into page composer options.
func composerOptions(eng *layout.Engine, opts Options) []page.ComposerOption {
	var pageOpts []page.ComposerOption
	if opts.Stylesheet != "" {
		pageOpts = append(pageOpts, page.WithStylesheet(opts.Stylesheet))
	}
	if opts.NavToggle != "" {
		pageOpts = append(pageOpts, page.WithNavToggle(opts.NavToggle))
	}
	if opts.Generator {
		pageOpts = append(pageOpts, page.WithGenerator("vitrine "+buildinfo.Version))
	}
	if opts.InlineCSS {
		pageOpts = append(pageOpts, page.WithInlineStyle(stylesheet(eng, opts)))
	}
	return pageOpts
}

func stylesheet(eng *layout.Engine, opts Options) []byte {
	var cssOpts []css.Option
	if opts.ExtraCSS != "" {
		cssOpts = append(cssOpts, css.WithExtra(opts.ExtraCSS))
	}
	return css.Stylesheet(eng, cssOpts...)
}

func renderNode(n g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

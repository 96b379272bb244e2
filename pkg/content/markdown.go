package content

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// richText renders markdown snippets in content fields. Raw HTML in the
// input is dropped by the default renderer, so authored content cannot
// inject markup.
var richText = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// Rich renders a markdown snippet to HTML. A single enclosing paragraph is
// unwrapped, so the result can be embedded in an existing inline container.
func Rich(md string) (string, error) {
	var buf bytes.Buffer
	if err := richText.Convert([]byte(md), &buf); err != nil {
		return "", err
	}

	out := strings.TrimSpace(buf.String())
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}

// RenderRichText renders the model's markdown-bearing fields (hero
// subheading, feature descriptions) to HTML in place. Sources call this
// once as part of loading; plain-text fields are untouched.
func (m *Model) RenderRichText() error {
	if m.Hero.Subheading != "" {
		html, err := Rich(m.Hero.Subheading)
		if err != nil {
			return err
		}
		m.Hero.Subheading = html
	}

	for i := range m.Features {
		if m.Features[i].Description == "" {
			continue
		}
		html, err := Rich(m.Features[i].Description)
		if err != nil {
			return err
		}
		m.Features[i].Description = html
	}

	return nil
}

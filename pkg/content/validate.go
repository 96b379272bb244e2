package content

import (
	"github.com/matzehuels/vitrine/pkg/errors"
)

// ValidateAndSetDefaults checks the model for the few structural requirements
// composition depends on and fills document-level defaults. It is called by
// every source before the model is handed out; after it returns nil the
// model is considered final.
//
// Link targets are deliberately not validated: they are opaque to this
// module and "#" placeholders are legitimate content.
func (m *Model) ValidateAndSetDefaults() error {
	if m.Site.Title == "" {
		return errors.New(errors.ErrCodeInvalidContent, "site title is required")
	}
	if m.Header.Logo == "" {
		return errors.New(errors.ErrCodeInvalidContent, "header logo is required")
	}
	if m.Hero.Heading == "" {
		return errors.New(errors.ErrCodeInvalidContent, "hero heading is required")
	}
	if len(m.Features) == 0 {
		return errors.New(errors.ErrCodeInvalidContent, "at least one feature entry is required")
	}

	for i, n := range m.Header.Nav {
		if n.Label == "" {
			return errors.New(errors.ErrCodeInvalidContent, "nav item %d has an empty label", i)
		}
	}
	for i, f := range m.Features {
		if f.Title == "" {
			return errors.New(errors.ErrCodeInvalidContent, "feature entry %d has an empty title", i)
		}
	}

	if m.Site.Lang == "" {
		m.Site.Lang = DefaultLang
	}
	if err := errors.ValidateLangTag(m.Site.Lang); err != nil {
		return err
	}
	if m.Site.BaseURL != "" {
		if err := errors.ValidateURL(m.Site.BaseURL); err != nil {
			return err
		}
	}
	if m.Header.MenuIcon == "" {
		m.Header.MenuIcon = DefaultMenuIcon
	}

	return nil
}

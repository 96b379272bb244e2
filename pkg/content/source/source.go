// Package source loads content models from their backing stores: a TOML
// document, a content directory of markdown files, or a MongoDB collection
// maintained by an external content-management system.
//
// Every source performs the same finalization on load: markdown fields are
// rendered and [content.Model.ValidateAndSetDefaults] runs, so a model
// returned from Load is always ready to compose.
package source

import (
	"context"
	"fmt"

	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/errors"
)

// Source kinds accepted by [New].
const (
	KindFile  = "file"
	KindDir   = "dir"
	KindMongo = "mongo"
)

// Source loads a finalized content model.
type Source interface {
	// Load reads the model, renders its markdown fields, and validates it.
	Load(ctx context.Context) (*content.Model, error)

	// String identifies the source for logging and cache keys.
	String() string
}

// Config selects and parameterizes a source.
// This struct supports JSON serialization for pipeline options.
type Config struct {
	Kind string `json:"kind,omitempty"` // file, dir, or mongo
	Path string `json:"path,omitempty"` // document path (file) or content directory (dir)

	// Mongo connection settings, used when Kind is mongo.
	URI        string `json:"uri,omitempty"`
	Database   string `json:"database,omitempty"`
	Collection string `json:"collection,omitempty"`
	Page       string `json:"page,omitempty"` // page slug within the collection; empty selects the sole document
}

// New constructs the source described by cfg.
func New(cfg Config) (Source, error) {
	switch cfg.Kind {
	case KindFile, "":
		if cfg.Path == "" {
			return nil, errors.New(errors.ErrCodeInvalidSource, "file source requires a path")
		}
		return NewFileSource(cfg.Path), nil
	case KindDir:
		if cfg.Path == "" {
			return nil, errors.New(errors.ErrCodeInvalidSource, "dir source requires a path")
		}
		return NewDirSource(cfg.Path), nil
	case KindMongo:
		if err := errors.ValidateMongoURI(cfg.URI); err != nil {
			return nil, err
		}
		return NewMongoSource(cfg), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidSource, "unknown source kind: %q", cfg.Kind)
	}
}

// Remote reports whether the source reaches over the network, in which case
// the pipeline caches loaded models.
func Remote(s Source) bool {
	_, ok := s.(*MongoSource)
	return ok
}

// finalize runs the shared post-load steps on a freshly decoded model.
func finalize(m *content.Model) (*content.Model, error) {
	if err := m.RenderRichText(); err != nil {
		return nil, fmt.Errorf("render rich text: %w", err)
	}
	if err := m.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	return m, nil
}

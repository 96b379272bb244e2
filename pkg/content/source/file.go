package source

import (
	"context"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/errors"
)

// FileSource loads a model from a single TOML document.
type FileSource struct {
	path string
}

// NewFileSource creates a source reading the TOML document at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and finalizes the document.
func (s *FileSource) Load(ctx context.Context) (*content.Model, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeContentNotFound, "content document %s does not exist", s.path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "read %s", s.path)
	}

	var m content.Model
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse %s", s.path)
	}

	return finalize(&m)
}

// String identifies the document path.
func (s *FileSource) String() string {
	return "file:" + s.path
}

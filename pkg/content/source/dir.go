package source

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/errors"
)

// DirSource loads a model from a content directory:
//
//	site.toml        site, header, hero, and footer tables
//	features/*.md    one feature per file, frontmatter + markdown body
//
// Feature files are ordered by their frontmatter weight, then by filename.
// A file without a title gets one derived from its name ("fast-builds.md"
// becomes "Fast Builds").
type DirSource struct {
	dir string
}

// NewDirSource creates a source reading the content directory at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// featureFront is the frontmatter of a feature file.
type featureFront struct {
	Icon   string `yaml:"icon" toml:"icon"`
	Title  string `yaml:"title" toml:"title"`
	Weight int    `yaml:"weight" toml:"weight"`
}

// featureFile pairs a parsed feature with its ordering keys.
type featureFile struct {
	feature content.Feature
	weight  int
	name    string
}

var titleCaser = cases.Title(language.English)

// Load reads site.toml and the feature files, then finalizes the model.
func (s *DirSource) Load(ctx context.Context) (*content.Model, error) {
	sitePath := filepath.Join(s.dir, "site.toml")
	data, err := os.ReadFile(sitePath)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeContentNotFound, "content directory %s has no site.toml", s.dir)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "read %s", sitePath)
	}

	var m content.Model
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse %s", sitePath)
	}

	features, err := s.loadFeatures()
	if err != nil {
		return nil, err
	}
	if len(features) > 0 {
		m.Features = features
	}

	return finalize(&m)
}

// loadFeatures reads features/*.md in weight-then-filename order.
func (s *DirSource) loadFeatures() ([]content.Feature, error) {
	dir := filepath.Join(s.dir, "features")
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil // site.toml may carry the features inline
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "read %s", dir)
	}

	var files []featureFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}

		path := filepath.Join(dir, e.Name())
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidSource, err, "read %s", path)
		}

		var front featureFront
		body, err := frontmatter.Parse(bytes.NewReader(raw), &front)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse frontmatter in %s", path)
		}

		title := front.Title
		if title == "" {
			title = titleFromFilename(e.Name())
		}

		files = append(files, featureFile{
			feature: content.Feature{
				Icon:        front.Icon,
				Title:       title,
				Description: strings.TrimSpace(string(body)),
			},
			weight: front.Weight,
			name:   e.Name(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].weight != files[j].weight {
			return files[i].weight < files[j].weight
		}
		return files[i].name < files[j].name
	})

	features := make([]content.Feature, len(files))
	for i, f := range files {
		features[i] = f.feature
	}
	return features, nil
}

// titleFromFilename derives a display title from a feature file name.
func titleFromFilename(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")
	return titleCaser.String(base)
}

// String identifies the content directory.
func (s *DirSource) String() string {
	return "dir:" + s.dir
}

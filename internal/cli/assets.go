package cli

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/errors"
	"github.com/matzehuels/vitrine/pkg/httputil"
)

// assetsSubdir is where fetched and copied assets land inside the output.
const assetsSubdir = "assets"

// localizeAssets downloads remote images referenced by the model into the
// output's assets directory and returns a derived model whose references
// point at the local copies, so the built page loads without third-party
// fetches. Loaded models are read-only, hence the copy. Feature icons are
// glyph names resolved by the icon stylesheet, so the hero image is the only
// URL-bearing field.
func localizeAssets(ctx context.Context, m *content.Model, outDir string) (*content.Model, int, error) {
	if !remoteURL(m.Hero.Image) {
		return m, 0, nil
	}

	data, err := httputil.FetchAsset(ctx, nil, m.Hero.Image)
	if err != nil {
		return nil, 0, err
	}

	name := assetFileName(m.Hero.Image, data)
	dir := filepath.Join(outDir, assetsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, 0, fmt.Errorf("create assets dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return nil, 0, fmt.Errorf("write %s: %w", name, err)
	}

	dup := *m
	// The page references assets with forward slashes regardless of OS.
	dup.Hero.Image = path.Join(assetsSubdir, name)
	return &dup, 1, nil
}

// remoteURL reports whether ref points at an http or https resource.
func remoteURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// assetFileName derives a local file name for a fetched asset. The URL's
// base name wins when it is usable as a plain file name; otherwise the
// content hash names the file.
func assetFileName(rawURL string, data []byte) string {
	if u, err := url.Parse(rawURL); err == nil {
		base := path.Base(u.Path)
		if base != "." && base != "/" && errors.ValidateArtifactName(base) == nil {
			return base
		}
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("asset-%x", sum[:6])
}

// copyAssets copies the static assets directory into outDir/assets,
// preserving the directory structure. It returns the number of files copied.
func copyAssets(src, outDir string) (int, error) {
	info, err := os.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("assets directory: %w", err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("assets path %s is not a directory", src)
	}

	dst := filepath.Join(outDir, assetsSubdir)
	copied := 0
	err = filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(p, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("copy assets: %w", err)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

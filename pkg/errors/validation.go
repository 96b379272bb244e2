package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateArtifactName validates the filename of a rendered artifact.
// It ensures the name is a simple basename without path components, so an
// artifact can never escape the output directory it is written into.
func ValidateArtifactName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "artifact name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "artifact name cannot contain path separators")
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "artifact name cannot be a hidden file")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "artifact name contains invalid characters")
		}
	}

	return nil
}

// ValidateOutputDir validates a directory path artifacts are written to.
// Unlike artifact names the directory may be absolute, but traversal
// sequences and control characters are rejected.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateOutputDir(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "output directory cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "output directory cannot contain backslashes")
	}

	return nil
}

// MaxViewportWidth caps accepted viewport widths. Nothing renders wider
// than 16K.
const MaxViewportWidth = 16384

// ValidateWidths validates a list of viewport widths used for layout
// resolution. Widths are CSS pixels and must be positive.
func ValidateWidths(widths []int) error {
	if len(widths) == 0 {
		return New(ErrCodeInvalidWidth, "at least one viewport width is required")
	}

	for _, w := range widths {
		if w <= 0 {
			return New(ErrCodeInvalidWidth, "viewport width must be positive, got %d", w)
		}
		if w > MaxViewportWidth {
			return New(ErrCodeInvalidWidth, "viewport width too large (max %d), got %d", MaxViewportWidth, w)
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

// ValidateMongoURI validates a MongoDB connection string scheme.
func ValidateMongoURI(uri string) error {
	if uri == "" {
		return New(ErrCodeInvalidSource, "connection URI cannot be empty")
	}

	if !strings.HasPrefix(uri, "mongodb://") && !strings.HasPrefix(uri, "mongodb+srv://") {
		return New(ErrCodeInvalidSource, "connection URI must use mongodb or mongodb+srv scheme")
	}

	return nil
}

// langTagRegex matches BCP 47 style language tags ("en", "en-US", "pt-BR").
var langTagRegex = regexp.MustCompile(`^[a-zA-Z]{2,3}(-[a-zA-Z0-9]{2,8})*$`)

// ValidateLangTag validates a document language tag.
func ValidateLangTag(lang string) error {
	if lang == "" {
		return New(ErrCodeInvalidContent, "language tag cannot be empty")
	}

	if !langTagRegex.MatchString(lang) {
		return New(ErrCodeInvalidContent, "invalid language tag: %q", lang)
	}

	return nil
}

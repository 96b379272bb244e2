package httputil

import (
	"net/http"
	"path/filepath"
	"strings"
)

// NoCache forces clients to revalidate on every request. The preview server
// rebuilds artifacts on change, so a cached copy is only valid as long as
// its entity tag still matches.
func NoCache(h http.Header) {
	h.Set("Cache-Control", "no-cache")
}

// ETag formats id as a weak entity tag.
func ETag(id string) string {
	return `W/"` + id + `"`
}

// NotModified reports whether the request's If-None-Match header matches
// etag, in which case the handler should reply 304 without a body.
func NotModified(r *http.Request, etag string) bool {
	header := r.Header.Get("If-None-Match")
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

// ContentTypeFor maps an artifact filename to its Content-Type. Artifacts
// are served from memory, so the usual file extension sniffing never runs.
func ContentTypeFor(name string) string {
	switch filepath.Ext(name) {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".json":
		return "application/json"
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".dot":
		return "text/plain; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

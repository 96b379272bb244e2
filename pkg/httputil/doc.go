// Package httputil provides HTTP utilities for the preview server and for
// fetching remote page assets.
//
// # Overview
//
// This package provides infrastructure shared by the serve and build
// commands:
//
//   - [NoCache], [ETag], [NotModified]: response header helpers
//   - [ContentTypeFor]: artifact filename to Content-Type mapping
//   - [FetchAsset]: outbound fetching with backoff
//
// # Serving Artifacts
//
// The preview server rebuilds artifacts when content changes, so responses
// carry Cache-Control: no-cache and a per-build entity tag. Handlers answer
// conditional requests without resending bodies:
//
//	etag := httputil.ETag(buildID)
//	if httputil.NotModified(r, etag) {
//	    w.WriteHeader(http.StatusNotModified)
//	    return
//	}
//
// # Asset Fetching
//
// [FetchAsset] downloads remote assets referenced by a content model (hero
// images, icon stylesheets) so a build can ship them locally. Transient
// failures are retried through [cache.RetryWithBackoff]:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// [cache.RetryWithBackoff]: github.com/matzehuels/vitrine/pkg/cache
package httputil

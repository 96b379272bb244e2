// Package pkg provides the core libraries for Vitrine page generation.
//
// # Overview
//
// Vitrine turns a structured content model into a responsive landing page.
// The layout is decided ahead of time by a pure rule table, so the same
// content renders identically everywhere. The pkg directory is organized
// into four areas:
//
//  1. [content] - The content model and its sources (TOML file, content
//     directory, MongoDB)
//  2. [layout] - The breakpoint rule table resolving viewport widths to
//     layout states
//  3. [render] - Output stages producing HTML, CSS, and composition trees
//  4. [pipeline] - Orchestration (load → resolve → render) with caching
//
// # Architecture
//
// The typical data flow through Vitrine:
//
//	TOML document / content dir / MongoDB
//	         ↓
//	    [content] package (load + validate the model)
//	         ↓
//	    [layout] package (resolve widths against breakpoints)
//	         ↓
//	    [render] package (compose HTML, derive CSS)
//	         ↓
//	    index.html / styles.css / layout.json / tree.svg
//
// # Quick Start
//
// Load content and build the page artifacts:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/vitrine/pkg/content/source"
//	    "github.com/matzehuels/vitrine/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    Source: source.Config{Kind: source.KindFile, Path: "site.toml"},
//	})
//	page := result.Artifacts[pipeline.ArtifactPage]
//
// # Main Packages
//
// ## Content
//
// [content] - The page's content model: site metadata, header navigation,
// hero copy, feature entries, and footer links. Models are validated once
// and read-only afterwards. Link targets are opaque; "#" placeholders are
// valid content.
//
// [content/source] - Loaders for the three source kinds. File reads one
// TOML document, dir merges a directory of section files with frontmatter,
// mongo reads a document from a collection.
//
// ## Layout
//
// [layout] - The breakpoint rule table. Resolve is a pure function from a
// viewport width to a complete layout state: navigation visibility, section
// flow directions, paddings, gaps, and the heading scale. Widths above
// 768px lay sections out as rows; 768px and below stack them; 480px and
// below drop the heading scale.
//
// ## Rendering
//
// [render/page] - Composes the model into an HTML document with a fixed
// region order (header → hero → features → footer).
//
// [render/css] - Derives the stylesheet from a layout engine: base rules
// from the wide state plus one max-width media block per breakpoint.
//
// [render/tree] - Composition-tree diagrams (DOT, SVG, PNG) for inspection
// tooling.
//
// ## Infrastructure
//
// [pipeline] - The complete build pipeline (load → resolve → render) used
// by the CLI and the preview server. Ensures consistent behavior across
// entry points and keys the caches.
//
// [cache] - Cache backends (file, Redis, null) and the key scheme. Content
// entries are keyed by source identity, artifact entries by model hash,
// render options, and the layout rule fingerprint.
//
// [errors] - Coded errors with user-facing messages, plus input validation
// for artifact names, output directories, and widths.
//
// [httputil] - Asset fetching with retry and the HTTP caching headers the
// preview server uses.
//
// [observability] - Hook points the pipeline and server report into.
//
// # Common Workflows
//
// Resolve a single width:
//
//	eng := layout.Default()
//	state := eng.Resolve(600)   // stacked: nav hidden, hero in a column
//
// Render one pinned preview document:
//
//	html, _ := pipeline.RenderDocument(model, eng, 400, opts)
//
// Override the breakpoint rules from a file:
//
//	eng, _ := layout.ReadRulesFile("rules.toml")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example        # Examples only
//
// [content]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/content
// [content/source]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/content/source
// [layout]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/layout
// [render/page]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/render/page
// [render/css]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/render/css
// [render/tree]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/render/tree
// [render]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/vitrine/pkg/observability
package pkg

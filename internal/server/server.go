// Package server implements the vitrine preview server.
//
// The server keeps the latest build entirely in memory: every rebuild runs
// the pipeline and atomically swaps in a fresh artifact set under a new
// build ID. Artifacts are served straight from that map, so nothing touches
// disk and a half-finished rebuild is never observable. Responses carry the
// build ID as an entity tag, which lets browsers revalidate cheaply while a
// file watcher rebuilds behind the scenes.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/httputil"
	"github.com/matzehuels/vitrine/pkg/observability"
	"github.com/matzehuels/vitrine/pkg/pipeline"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8080"

// Config holds the preview server configuration.
type Config struct {
	// Addr is the listen address, e.g. "127.0.0.1:8080".
	Addr string

	// Runner executes builds. Required.
	Runner *pipeline.Runner

	// Options are the pipeline options used for every build.
	Options pipeline.Options

	// Logger receives server logs. Defaults to the runner's logger.
	Logger *log.Logger
}

// Build is one in-memory site build.
type Build struct {
	ID        string
	BuiltAt   time.Time
	ModelHash string
	Model     *content.Model
	Artifacts map[string][]byte
}

// Server serves the latest build and rebuilds it on demand.
type Server struct {
	addr   string
	runner *pipeline.Runner
	opts   pipeline.Options
	logger *log.Logger
	router chi.Router

	mu    sync.RWMutex
	build *Build
}

// NewServer creates a preview server and runs the initial build. It returns
// an error if the configuration is incomplete or the first build fails;
// after that, failed rebuilds keep the previous build serving.
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	if cfg.Runner == nil {
		return nil, fmt.Errorf("runner is required")
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = cfg.Runner.Logger
	}

	// The index route depends on the page and stylesheet, so they are built
	// even when the configured artifact list omits them.
	cfg.Options.Artifacts = withPageArtifacts(cfg.Options.Artifacts)

	s := &Server{
		addr:   cfg.Addr,
		runner: cfg.Runner,
		opts:   cfg.Options,
		logger: cfg.Logger,
	}
	if err := s.rebuild(ctx, false); err != nil {
		return nil, fmt.Errorf("initial build: %w", err)
	}
	s.router = s.buildRouter()
	return s, nil
}

// withPageArtifacts returns artifacts extended with the page and stylesheet.
// An empty list stays empty so the pipeline defaults apply.
func withPageArtifacts(artifacts []string) []string {
	if len(artifacts) == 0 {
		return artifacts
	}
	have := make(map[string]bool, len(artifacts))
	for _, name := range artifacts {
		have[name] = true
	}
	out := artifacts
	for _, name := range []string{pipeline.ArtifactPage, pipeline.ArtifactStyles} {
		if !have[name] {
			out = append(out, name)
		}
	}
	return out
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the server and blocks until ctx is cancelled or the
// listener fails. Cancellation triggers a graceful shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("preview server listening", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// rebuild runs the pipeline and swaps the served build. With refresh set,
// remote content is reloaded even if a cached copy is still fresh.
func (s *Server) rebuild(ctx context.Context, refresh bool) error {
	opts := s.opts
	opts.Refresh = opts.Refresh || refresh

	result, err := s.runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	build := &Build{
		ID:        uuid.NewString(),
		BuiltAt:   time.Now(),
		ModelHash: result.ModelHash,
		Model:     result.Model,
		Artifacts: result.Artifacts,
	}
	s.mu.Lock()
	s.build = build
	s.mu.Unlock()

	s.logger.Info("build ready",
		"build_id", build.ID,
		"artifacts", len(build.Artifacts),
		"render_cache_hit", result.CacheInfo.RenderHit,
	)
	return nil
}

// current returns the build being served.
func (s *Server) current() *Build {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.build
}

// =============================================================================
// Routing and Handlers
// =============================================================================

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		s.serveArtifact(w, r, pipeline.ArtifactPage)
	})
	r.Get("/preview/{width}", s.handlePreview)
	r.Get("/__build", s.handleBuildInfo)
	r.Post("/__rebuild", s.handleRebuild)
	r.Get("/{artifact}", func(w http.ResponseWriter, r *http.Request) {
		s.serveArtifact(w, r, chi.URLParam(r, "artifact"))
	})

	return r
}

// observe reports every request to the server hooks and the logger.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", duration,
		)
	})
}

func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, name string) {
	build := s.current()
	data, ok := build.Artifacts[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	etag := httputil.ETag(build.ID)
	httputil.NoCache(w.Header())
	w.Header().Set("ETag", etag)
	if httputil.NotModified(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", httputil.ContentTypeFor(name))
	w.Write(data)
}

// handlePreview serves the page pinned to a single viewport width, bypassing
// media queries. Useful for eyeballing a breakpoint without resizing the
// browser.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "width")
	width, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid width %q", raw), http.StatusBadRequest)
		return
	}
	if err := pipeline.ValidateWidths([]int{width}); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	build := s.current()
	// The page is served under /preview/, so a relative stylesheet href
	// would resolve into this route instead of the artifact.
	opts := s.opts
	opts.Stylesheet = "/" + pipeline.ArtifactStyles
	doc, err := pipeline.RenderDocument(build.Model, s.runner.Engine, width, opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	httputil.NoCache(w.Header())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(doc)
}

type buildInfo struct {
	BuildID   string    `json:"build_id"`
	BuiltAt   time.Time `json:"built_at"`
	ModelHash string    `json:"model_hash"`
	Artifacts []string  `json:"artifacts"`
}

func (s *Server) handleBuildInfo(w http.ResponseWriter, r *http.Request) {
	build := s.current()

	etag := httputil.ETag(build.ID)
	httputil.NoCache(w.Header())
	w.Header().Set("ETag", etag)
	if httputil.NotModified(r, etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	writeBuildInfo(w, build)
}

// handleRebuild forces a fresh build, reloading remote content past any
// cached copy.
func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	err := s.rebuild(r.Context(), true)
	observability.Server().OnRebuild(r.Context(), "manual", time.Since(start), err)
	if err != nil {
		s.logger.Error("rebuild failed", "trigger", "manual", "error", err)
		http.Error(w, fmt.Sprintf("rebuild failed: %v", err), http.StatusInternalServerError)
		return
	}

	writeBuildInfo(w, s.current())
}

func writeBuildInfo(w http.ResponseWriter, build *Build) {
	names := make([]string, 0, len(build.Artifacts))
	for name := range build.Artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(buildInfo{
		BuildID:   build.ID,
		BuiltAt:   build.BuiltAt,
		ModelHash: build.ModelHash,
		Artifacts: names,
	})
}

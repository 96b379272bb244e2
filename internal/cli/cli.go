package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vitrine/pkg/buildinfo"
	"github.com/matzehuels/vitrine/pkg/cache"
	"github.com/matzehuels/vitrine/pkg/layout"
	"github.com/matzehuels/vitrine/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "vitrine"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Cache backend names accepted in configuration.
const (
	cacheBackendFile  = "file"
	cacheBackendRedis = "redis"
	cacheBackendNone  = "none"
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config

	configFile string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "vitrine",
		Short:        "Vitrine builds responsive landing pages from structured content",
		Long:         `Vitrine turns a structured content document into a static landing page whose layout adapts to the viewport through generated CSS, with tooling to preview breakpoints and inspect the composition.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configFile)
			if err != nil {
				return err
			}
			c.Config = cfg
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default ./vitrine.yaml)")

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.contentCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use, wiring the configured
// cache backend and layout rules.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	backend := c.Config.Cache.Backend
	if noCache {
		backend = cacheBackendNone
	}
	store, err := newCacheBackend(ctx, backend, c.Config.Cache.Redis)
	if err != nil {
		return nil, err
	}

	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName)
	runner := pipeline.NewRunner(store, keyer, c.Logger)

	if c.Config.Render.Rules != "" {
		eng, err := layout.ReadRulesFile(c.Config.Render.Rules)
		if err != nil {
			return nil, fmt.Errorf("layout rules %s: %w", c.Config.Render.Rules, err)
		}
		runner.Engine = eng
	}
	return runner, nil
}

// newCacheBackend constructs the configured cache. An unusable file cache
// falls back to the null cache so builds still work on read-only homes.
func newCacheBackend(ctx context.Context, backend string, redisCfg RedisConfig) (cache.Cache, error) {
	switch backend {
	case cacheBackendNone:
		return cache.NewNullCache(), nil
	case cacheBackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})
	case cacheBackendFile, "":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	default:
		return nil, fmt.Errorf("unknown cache backend %q (use file, redis, or none)", backend)
	}
}

// engine returns the layout engine for commands that bypass the runner,
// honoring the configured rules file.
func (c *CLI) engine() (*layout.Engine, error) {
	if c.Config.Render.Rules == "" {
		return layout.Default(), nil
	}
	eng, err := layout.ReadRulesFile(c.Config.Render.Rules)
	if err != nil {
		return nil, fmt.Errorf("layout rules %s: %w", c.Config.Render.Rules, err)
	}
	return eng, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/vitrine/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// parseWidths parses a comma-separated width list like "1024,600,400".
// An empty string keeps the pipeline defaults.
func parseWidths(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	widths := make([]int, len(parts))
	for i, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid width %q", p)
		}
		widths[i] = w
	}
	return widths, nil
}

// parseArtifacts parses a comma-separated artifact list like
// "index.html,styles.css,layout.json". An empty string keeps the defaults.
func parseArtifacts(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vitrine/pkg/content/source"
	"github.com/matzehuels/vitrine/pkg/errors"
	"github.com/matzehuels/vitrine/pkg/pipeline"
)

// =============================================================================
// Build Command
// =============================================================================

// buildOptions collects the flag values for the build command.
type buildOptions struct {
	output      string
	refresh     bool
	noCache     bool
	fetchAssets bool
	assets      string
}

func (c *CLI) buildCommand() *cobra.Command {
	var (
		opts      buildOptions
		widths    string
		artifacts string
		navToggle string
		inlineCSS bool
	)

	cmd := &cobra.Command{
		Use:   "build [content-file]",
		Short: "Build the page artifacts into an output directory",
		Long: `Build loads the content document, resolves the layout breakpoints, and
writes the rendered artifacts to the output directory.

The content source comes from vitrine.yaml or VITRINE_* environment
variables. A positional argument overrides the configured path; pass a
file for a single TOML document or a directory for split content files.

Examples:
  vitrine build
  vitrine build content/site.toml -o public
  vitrine build --artifacts index.html,styles.css,layout.json,tree.svg
  vitrine build --fetch-assets`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			popts, err := c.Config.pipelineOptions(c.Logger)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				popts.Source = sourceForPath(args[0])
			}
			if widths != "" {
				ws, err := parseWidths(widths)
				if err != nil {
					return err
				}
				popts.Widths = ws
			}
			if artifacts != "" {
				popts.Artifacts = parseArtifacts(artifacts)
			}
			if cmd.Flags().Changed("nav-toggle") {
				popts.NavToggle = navToggle
			}
			if cmd.Flags().Changed("inline-css") {
				popts.InlineCSS = inlineCSS
			}
			popts.Refresh = opts.refresh
			return c.runBuild(cmd.Context(), popts, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", `output directory (default "dist")`)
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the content cache and reload from the source")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching entirely")
	cmd.Flags().StringVar(&widths, "widths", "", "comma-separated viewport widths for layout.json")
	cmd.Flags().StringVar(&artifacts, "artifacts", "", "comma-separated artifacts to render (default index.html,styles.css)")
	cmd.Flags().StringVar(&navToggle, "nav-toggle", "", `anchor target for the menu icon, e.g. "#nav"`)
	cmd.Flags().BoolVar(&inlineCSS, "inline-css", false, "embed the stylesheet in the page instead of linking it")
	cmd.Flags().StringVar(&opts.assets, "assets", "", "static assets directory copied into the output")
	cmd.Flags().BoolVar(&opts.fetchAssets, "fetch-assets", false, "download remote images into the output and rewrite references")

	return cmd
}

func (c *CLI) runBuild(ctx context.Context, popts pipeline.Options, opts buildOptions) error {
	outDir := opts.output
	if outDir == "" {
		outDir = c.Config.Output
	}
	if err := errors.ValidateOutputDir(outDir); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Loading content...")
	model, loadHit, err := runner.LoadWithCacheInfo(ctx, popts)
	if err != nil {
		spinner.StopWithError("Load failed")
		return err
	}
	spinner.Stop()

	if opts.fetchAssets {
		localModel, localized, err := localizeAssets(ctx, model, outDir)
		if err != nil {
			return fmt.Errorf("fetch assets: %w", err)
		}
		if localized > 0 {
			model = localModel
			printInfo("Localized %d remote asset(s)", localized)
		}
	}

	spinner = newSpinner(ctx, "Rendering artifacts...")
	artifacts, renderHit, err := runner.RenderWithCacheInfo(ctx, model, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	written, totalBytes, err := writeArtifacts(outDir, artifacts)
	if err != nil {
		return err
	}

	if opts.assets != "" || c.Config.Assets != "" {
		assetsDir := opts.assets
		if assetsDir == "" {
			assetsDir = c.Config.Assets
		}
		copied, err := copyAssets(assetsDir, outDir)
		if err != nil {
			return fmt.Errorf("copy assets: %w", err)
		}
		printDetail("Copied %d static asset(s) from %s", copied, assetsDir)
	}

	if popts.NavToggle == "" {
		printWarning("Menu icon has no toggle target and renders inert (set render.nav_toggle)")
	}

	printSuccess("Build complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(len(artifacts), totalBytes, loadHit && renderHit)
	printNewline()
	printNextStep("Preview the page", "vitrine serve")
	return nil
}

// =============================================================================
// Helpers
// =============================================================================

// sourceForPath builds a file or dir source config for a positional argument.
// A stat failure still selects the file kind so loading reports the missing
// path with a proper error code.
func sourceForPath(path string) source.Config {
	kind := source.KindFile
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		kind = source.KindDir
	}
	return source.Config{Kind: kind, Path: path}
}

// writeArtifacts writes the rendered artifacts into dir, creating it if
// needed. It returns the written paths in name order and the total byte size.
func writeArtifacts(dir string, artifacts map[string][]byte) ([]string, int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, 0, fmt.Errorf("create output dir: %w", err)
	}

	names := make([]string, 0, len(artifacts))
	for name := range artifacts {
		names = append(names, name)
	}
	sort.Strings(names)

	written := make([]string, 0, len(names))
	total := 0
	for _, name := range names {
		if err := errors.ValidateArtifactName(name); err != nil {
			return nil, 0, err
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, artifacts[name], 0o644); err != nil {
			return nil, 0, fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, path)
		total += len(artifacts[name])
	}
	return written, total, nil
}

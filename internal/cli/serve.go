package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vitrine/internal/server"
)

// =============================================================================
// Serve Command
// =============================================================================

func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		noWatch bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page locally and rebuild on content changes",
		Long: `Serve builds the page in memory and serves it over HTTP. Local sources are
watched for changes and trigger a rebuild; clients revalidate with entity
tags, so a refresh after a change always shows the new build.

Besides the artifacts, the server exposes:
  /preview/{width}  the page pinned to a fixed viewport width
  /__build          the current build's metadata
  POST /__rebuild   a forced rebuild, refreshing remote content

Examples:
  vitrine serve
  vitrine serve --addr 0.0.0.0:3000
  vitrine serve --no-watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache, noWatch)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", fmt.Sprintf("listen address (default %q)", server.DefaultAddr))
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "disable the file watcher")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache, noWatch bool) error {
	opts, err := c.Config.pipelineOptions(c.Logger)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	if addr == "" {
		addr = c.Config.Addr
	}

	spinner := newSpinner(ctx, "Building page...")
	srv, err := server.NewServer(ctx, server.Config{
		Addr:    addr,
		Runner:  runner,
		Options: opts,
		Logger:  c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Build failed")
		return err
	}
	spinner.Stop()

	printSuccess("Serving on http://%s", srv.Addr())
	printDetail("Pinned previews at /preview/{width}, build info at /__build")
	printNewline()

	if !noWatch {
		go func() {
			if err := srv.Watch(ctx); err != nil && err != context.Canceled {
				c.Logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	return srv.ListenAndServe(ctx)
}

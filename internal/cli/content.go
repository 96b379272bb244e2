package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/pipeline"
)

// =============================================================================
// Content Command
// =============================================================================

func (c *CLI) contentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Validate and export the content model",
	}

	cmd.AddCommand(c.contentValidateCommand())
	cmd.AddCommand(c.contentExportCommand())

	return cmd
}

func (c *CLI) contentValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [content-file]",
		Short: "Check that the content loads and validates",
		Long: `Validate loads the content from the configured source (or the given file),
applies defaults, and reports what the page will be composed from. The
load always bypasses the content cache so the live document is checked.

Examples:
  vitrine content validate
  vitrine content validate content/site.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.Config.pipelineOptions(c.Logger)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.Source = sourceForPath(args[0])
			}
			opts.Refresh = true
			return c.runContentValidate(cmd, opts)
		},
	}
	return cmd
}

func (c *CLI) runContentValidate(cmd *cobra.Command, opts pipeline.Options) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	site, err := runner.Load(ctx, opts)
	if err != nil {
		printError("Content is invalid")
		return err
	}

	printSuccess("Content is valid")
	printKeyValue("Title", site.Site.Title)
	printKeyValue("Nav items", strconv.Itoa(len(site.Header.Nav)))
	printKeyValue("Features", strconv.Itoa(len(site.Features)))
	printKeyValue("Contact entries", strconv.Itoa(len(site.Footer.Contact)))
	printKeyValue("Social links", strconv.Itoa(len(site.Footer.Social)))

	if n := placeholderTargets(site); n > 0 {
		printDetail("%d link target(s) are the \"#\" placeholder", n)
	}
	return nil
}

// placeholderTargets counts links whose target is the "#" placeholder.
// Placeholders are valid content; the count is informational.
func placeholderTargets(m *content.Model) int {
	n := 0
	for _, item := range m.Header.Nav {
		if item.Target == "#" {
			n++
		}
	}
	for _, cta := range []content.CTA{m.Hero.PrimaryCTA, m.Hero.SecondaryCTA} {
		if cta.Target == "#" {
			n++
		}
	}
	for _, link := range m.Footer.Social {
		if link.Target == "#" {
			n++
		}
	}
	return n
}

func (c *CLI) contentExportCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "export [content-file]",
		Short: "Export the loaded content model as JSON",
		Long: `Export loads the content, applies defaults and markdown rendering, and
writes the finalized model as JSON. The export round-trips through the
same codec the caches use, so it shows exactly what the renderer sees.

Examples:
  vitrine content export
  vitrine content export -o model.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.Config.pipelineOptions(c.Logger)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.Source = sourceForPath(args[0])
			}
			return c.runContentExport(cmd, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "model.json", "output file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

func (c *CLI) runContentExport(cmd *cobra.Command, opts pipeline.Options, output string, noCache bool) error {
	ctx := cmd.Context()

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	site, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}

	if err := content.WriteModelFile(site, output); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Content exported")
	printFile(output)
	return nil
}

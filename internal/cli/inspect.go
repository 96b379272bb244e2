package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vitrine/pkg/errors"
	"github.com/matzehuels/vitrine/pkg/pipeline"
	"github.com/matzehuels/vitrine/pkg/render/tree"
)

// =============================================================================
// Inspect Command
// =============================================================================

func (c *CLI) inspectCommand() *cobra.Command {
	var (
		format  string
		output  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [content-file]",
		Short: "Export the page's composition tree",
		Long: `Inspect loads the content and exports the composition tree: the section
order and nesting the page renders with. DOT output goes to stdout unless
-o is given; svg and png default to tree.svg and tree.png.

Examples:
  vitrine inspect
  vitrine inspect -f svg
  vitrine inspect content/site.toml -f png -o docs/tree.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !tree.ValidFormat(format) {
				return errors.New(errors.ErrCodeInvalidFormat,
					"unknown tree format: %s (use %s)", format, strings.Join(tree.Formats, ", "))
			}
			opts, err := c.Config.pipelineOptions(c.Logger)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.Source = sourceForPath(args[0])
			}
			return c.runInspect(cmd, opts, format, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", tree.FormatDOT, "output format: dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout for dot, tree.<format> otherwise)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

func (c *CLI) runInspect(cmd *cobra.Command, opts pipeline.Options, format, output string, noCache bool) error {
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

	root := tree.FromModel(site)
	data, err := tree.Render(root, format)
	if err != nil {
		return fmt.Errorf("render tree: %w", err)
	}

	if output == "" {
		if format == tree.FormatDOT {
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		}
		output = "tree." + format
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Composition tree exported")
	printFile(output)
	printKeyValue("Nodes", strconv.Itoa(root.Count()))
	printKeyValue("Size", formatBytes(len(data)))
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vitrine/pkg/layout"
	"github.com/matzehuels/vitrine/pkg/pipeline"
)

// =============================================================================
// Layout Command
// =============================================================================

func (c *CLI) layoutCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "layout [width...]",
		Short: "Show the layout state resolved for viewport widths",
		Long: `Layout resolves viewport widths against the breakpoint rules and prints
every visibility, direction, and sizing decision. With several widths the
table compares them side by side, which makes breakpoint edges easy to
check: 769 and 768 differ in every stacking property, 481 and 480 in the
heading scale.

Examples:
  vitrine layout
  vitrine layout 768 769
  vitrine layout 480 --json`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			widths := make([]int, 0, len(args))
			for _, a := range args {
				w, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("invalid width %q", a)
				}
				widths = append(widths, w)
			}
			if len(widths) == 0 {
				widths = pipeline.DefaultWidths
			}
			return c.runLayout(widths, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")

	return cmd
}

func (c *CLI) runLayout(widths []int, asJSON bool) error {
	if err := pipeline.ValidateWidths(widths); err != nil {
		return err
	}

	eng, err := c.engine()
	if err != nil {
		return err
	}
	snaps := eng.Snapshots(widths...)

	if asJSON {
		data, err := json.MarshalIndent(snaps, "", "  ")
		if err != nil {
			return fmt.Errorf("encode snapshots: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(layoutTable(snaps))
	return nil
}

// layoutTable renders snapshots as a property-by-width comparison table.
func layoutTable(snaps []layout.Snapshot) string {
	headers := []string{"Property"}
	for _, s := range snaps {
		headers = append(headers, fmt.Sprintf("%dpx", s.Width))
	}

	prop := func(name string, get func(layout.State) string) []string {
		row := []string{name}
		for _, s := range snaps {
			row = append(row, get(s.State))
		}
		return row
	}

	rows := [][]string{
		prop("nav", func(s layout.State) string { return string(s.NavDisplay) }),
		prop("hamburger", func(s layout.State) string { return string(s.HamburgerDisplay) }),
		prop("hero direction", func(s layout.State) string { return string(s.HeroDirection) }),
		prop("hero align", func(s layout.State) string { return string(s.HeroAlign) }),
		prop("hero pad", func(s layout.State) string { return fmt.Sprintf("%dpx", s.HeroPad) }),
		prop("features direction", func(s layout.State) string { return string(s.FeaturesDirection) }),
		prop("footer direction", func(s layout.State) string { return string(s.FooterDirection) }),
		prop("footer gap", func(s layout.State) string { return fmt.Sprintf("%dpx", s.FooterGap) }),
		prop("heading scale", func(s layout.State) string { return fmt.Sprintf("%grem", s.HeadingScale) }),
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/vitrine/pkg/content"
	"github.com/matzehuels/vitrine/pkg/layout"
	"github.com/matzehuels/vitrine/pkg/pipeline"
)

// Preview width limits. The lower bound keeps the wireframe legible.
const (
	minPreviewWidth = 120
	maxPreviewWidth = pipeline.MaxWidth
)

// Width presets bound to number keys.
var previewPresets = map[string]int{
	"1": 1024,
	"2": 768,
	"3": 600,
	"4": 480,
	"5": 400,
}

// =============================================================================
// Preview Command
// =============================================================================

func (c *CLI) previewCommand() *cobra.Command {
	var (
		width   int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "preview [content-file]",
		Short: "Explore the breakpoints interactively in the terminal",
		Long: `Preview loads the content and renders a terminal wireframe of the page at
an adjustable viewport width. Stepping the width across 768px and 480px
shows exactly which parts of the layout react: the navigation swaps for
the menu icon, the sections restack, and the heading scale drops.

Keys:
  ←/→ or h/l   adjust the width by 10px
  [ and ]      adjust the width by 1px
  1-5          jump to 1024, 768, 600, 480, 400
  q            quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.Config.pipelineOptions(c.Logger)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.Source = sourceForPath(args[0])
			}
			return c.runPreview(cmd, opts, width, noCache)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 1024, "starting viewport width in px")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, opts pipeline.Options, width int, noCache bool) error {
	ctx := cmd.Context()

	if err := pipeline.ValidateWidths([]int{width}); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	site, err := runner.Load(ctx, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewPreviewModel(site, runner.Engine, width))
	_, err = p.Run()
	return err
}

// =============================================================================
// PreviewModel - Interactive breakpoint explorer
// =============================================================================

// PreviewModel is the bubbletea model for the breakpoint explorer.
type PreviewModel struct {
	Site   *content.Model
	Engine *layout.Engine
	Width  int
}

// NewPreviewModel creates a preview model starting at the given width.
func NewPreviewModel(site *content.Model, eng *layout.Engine, width int) PreviewModel {
	return PreviewModel{
		Site:   site,
		Engine: eng,
		Width:  clampWidth(width),
	}
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.Width = clampWidth(m.Width - 10)
		case "right", "l":
			m.Width = clampWidth(m.Width + 10)
		case "[":
			m.Width = clampWidth(m.Width - 1)
		case "]":
			m.Width = clampWidth(m.Width + 1)
		default:
			if w, ok := previewPresets[key]; ok {
				m.Width = w
			}
		}
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	state := m.Engine.Resolve(m.Width)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(m.Site.Site.Title)
	b.WriteString(fmt.Sprintf("%s  %s\n\n", title, StyleDim.Render(describeWidth(m.Width, state))))

	b.WriteString(wireframe(m.Site, state, m.Width))
	b.WriteString("\n\n")
	b.WriteString(layoutTable(m.Engine.Snapshots(m.Width)))
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render("←/→ ±10px · [/] ±1px · 1-5 presets · q quit"))
	b.WriteString("\n")

	return b.String()
}

func clampWidth(w int) int {
	if w < minPreviewWidth {
		return minPreviewWidth
	}
	if w > maxPreviewWidth {
		return maxPreviewWidth
	}
	return w
}

// describeWidth labels the width with the layout regime it resolves to.
func describeWidth(width int, s layout.State) string {
	regime := "wide"
	if s.HeroDirection == layout.DirectionColumn {
		regime = "stacked"
	}
	if s.HeadingScale < layout.BaseHeadingScale {
		regime += " · narrow type"
	}
	return fmt.Sprintf("%dpx · %s", width, regime)
}

// =============================================================================
// Wireframe
// =============================================================================

// wireframe draws the page structure at the given state: which header
// control is visible, how the sections flow, and how the footer stacks.
// One terminal column stands in for 16 page pixels.
func wireframe(site *content.Model, s layout.State, width int) string {
	inner := width / 16
	if inner < 26 {
		inner = 26
	}
	if inner > 72 {
		inner = 72
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(colorDim).
		Padding(0, 1)

	sections := []string{
		wireHeader(site, s, inner, box),
		wireHero(site, s, inner, box),
		wireFeatures(site, s, inner, box),
		wireFooter(site, s, inner, box),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func wireHeader(site *content.Model, s layout.State, inner int, box lipgloss.Style) string {
	right := "≡"
	if s.NavDisplay == layout.DisplayInlineList {
		labels := make([]string, len(site.Header.Nav))
		for i, n := range site.Header.Nav {
			labels[i] = n.Label
		}
		right = strings.Join(labels, "  ")
	}
	return box.Width(inner).Render(spaceBetween(site.Header.Logo, right, inner-2))
}

func wireHero(site *content.Model, s layout.State, inner int, box lipgloss.Style) string {
	copyStyle := box
	if s.HeroAlign == layout.AlignCenter {
		copyStyle = copyStyle.Align(lipgloss.Center)
	}
	// Horizontal padding scales with the resolved hero pad, so the stacked
	// collapse to 0 is visible in the frame.
	copyStyle = copyStyle.Padding(0, 1+s.HeroPad/24)

	ctas := site.Hero.PrimaryCTA.Label
	if site.Hero.SecondaryCTA.Label != "" {
		ctas += "  " + site.Hero.SecondaryCTA.Label
	}
	copyText := trimTo(site.Hero.Heading, inner-4) + "\n" +
		StyleDim.Render(fmt.Sprintf("%.2frem", s.HeadingScale)) + "\n" +
		"[ " + ctas + " ]"

	image := "( image )"

	if s.HeroDirection == layout.DirectionRow {
		cw := (inner * 3) / 5
		iw := inner - cw - 4
		return lipgloss.JoinHorizontal(lipgloss.Top,
			copyStyle.Width(cw).Render(copyText),
			box.Width(iw).Align(lipgloss.Center).Render(image),
		)
	}

	// Stacked hero puts the copy above the image.
	return lipgloss.JoinVertical(lipgloss.Left,
		copyStyle.Width(inner).Render(copyText),
		box.Width(inner).Align(lipgloss.Center).Render(image),
	)
}

func wireFeatures(site *content.Model, s layout.State, inner int, box lipgloss.Style) string {
	n := len(site.Features)
	if n == 0 {
		return ""
	}

	if s.FeaturesDirection == layout.DirectionRow {
		per := inner/n - 2
		if per < 8 {
			per = 8
		}
		cards := make([]string, n)
		for i, f := range site.Features {
			cards[i] = box.Width(per).Render(trimTo(f.Title, per-2))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	cards := make([]string, n)
	for i, f := range site.Features {
		cards[i] = box.Width(inner).Render(trimTo(f.Title, inner-2))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func wireFooter(site *content.Model, s layout.State, inner int, box lipgloss.Style) string {
	var contact []string
	for _, e := range site.Footer.Contact {
		contact = append(contact, e.Text)
	}
	var social []string
	for _, l := range site.Footer.Social {
		social = append(social, l.Icon)
	}

	cells := []string{
		strings.Join(contact, " · "),
		strings.Join(social, " "),
		site.Footer.Copyright,
	}

	if s.FooterDirection == layout.DirectionRow {
		return box.Width(inner).Render(trimTo(strings.Join(cells, "   "), inner-2))
	}

	// Column footer separates the blocks with its fixed gap, one blank
	// line per 24px.
	sep := strings.Repeat("\n", 1+s.FooterGap/24)
	return box.Width(inner).Render(strings.Join(cells, sep))
}

// spaceBetween spreads two cells across a fixed width with at least one
// space of separation.
func spaceBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// trimTo shortens s to at most max display cells, ellipsizing when needed.
func trimTo(s string, max int) string {
	if max < 1 || lipgloss.Width(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

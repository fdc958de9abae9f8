package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/multiview/internal/application/usecase"
)

// ClassifyRenderer renders URL classification results.
type ClassifyRenderer struct {
	theme *Theme
}

// NewClassifyRenderer creates a new classify renderer with the given theme.
func NewClassifyRenderer(theme *Theme) *ClassifyRenderer {
	return &ClassifyRenderer{theme: theme}
}

// Render renders one block per result.
func (r *ClassifyRenderer) Render(results []*usecase.ClassifyURLOutput) string {
	blocks := make([]string, 0, len(results))
	for _, res := range results {
		blocks = append(blocks, r.renderOne(res))
	}
	return strings.Join(blocks, "\n\n")
}

func (r *ClassifyRenderer) renderOne(res *usecase.ClassifyURLOutput) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Normal

	icon, kind := IconGlobe, "website"
	if res.IsVideo {
		icon, kind = IconVideo, "video"
	}

	header := fmt.Sprintf("%s %s  %s %s",
		iconStyle.Render(icon),
		r.theme.Title.Render(res.Input),
		r.theme.AccentBadge(kind),
		r.theme.PlatformBadge(res.Platform),
	)

	embed := res.EmbedURL
	if !res.Rewritten {
		embed += keyStyle.Render(" (unchanged)")
	}

	lines := []string{
		header,
		fmt.Sprintf("  %s %s", keyStyle.Render("embed:      "), valStyle.Render(embed)),
		fmt.Sprintf("  %s %s", keyStyle.Render("placeholder:"), valStyle.Render(res.PlaceholderURL)),
	}
	return strings.Join(lines, "\n")
}

// RenderJSON renders the results as a JSON array.
func (*ClassifyRenderer) RenderJSON(results []*usecase.ClassifyURLOutput) (string, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	return string(data), nil
}

// RenderError renders a per-URL failure.
func (r *ClassifyRenderer) RenderError(input string, err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("%s %q: %v", iconStyle.Render(IconX), input, err)
}

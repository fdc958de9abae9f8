package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/multiview/internal/domain/entity"
	domainurl "github.com/bnema/multiview/internal/domain/url"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (t *Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// KindBadge renders the pane kind.
func (t *Theme) KindBadge(kind entity.PaneKind) string {
	if kind == entity.PaneVideo {
		return t.AccentBadge(IconVideo + " " + kind.String())
	}
	return t.MutedBadge(IconGlobe + " " + kind.String())
}

// PlatformBadge renders a detected video platform. Unknown platforms render muted.
func (t *Theme) PlatformBadge(p domainurl.Platform) string {
	if p == domainurl.PlatformNone {
		return t.MutedBadge(string(p))
	}
	return t.StatusBadge(string(p), t.Background, t.Info)
}

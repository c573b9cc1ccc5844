package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	figure "github.com/common-nighthawk/go-figure"

	"github.com/abhisek/ratiolab/internal/ui/theme"
)

const (
	bannerText    = "Ratio Lab"
	bannerFont    = "small"
	bannerCompact = "R A T I O   L A B"
)

// BannerArt returns the unstyled FIGlet banner.
func BannerArt() string {
	fig := figure.NewFigure(bannerText, bannerFont, false)
	return strings.TrimRight(strings.Join(fig.Slicify(), "\n"), "\n ")
}

// Banner renders the app banner, falling back to spaced letters when the
// art does not fit in width.
func Banner(width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)

	art := BannerArt()
	if lipgloss.Width(art) > width {
		return style.Render(bannerCompact)
	}
	return style.Render(art)
}

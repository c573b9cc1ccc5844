package guide

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ratiolab/internal/problemgen"
	"github.com/abhisek/ratiolab/internal/screen"
	"github.com/abhisek/ratiolab/internal/ui/layout"
	"github.com/abhisek/ratiolab/internal/ui/theme"
)

const listWidth = 26

// GuideScreen is a read-only reference of every ratio: its formula,
// tolerance and interpretation bands.
type GuideScreen struct {
	infos    []problemgen.RatioInfo
	selected int
}

var _ screen.Screen = (*GuideScreen)(nil)
var _ screen.KeyHintProvider = (*GuideScreen)(nil)

// New creates a GuideScreen over the full ratio catalog.
func New() *GuideScreen {
	return &GuideScreen{infos: problemgen.Catalog()}
}

func (g *GuideScreen) Init() tea.Cmd {
	return nil
}

func (g *GuideScreen) Title() string {
	return "Ratio Guide"
}

func (g *GuideScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Select ratio"},
		{Key: "Esc", Description: "Back"},
	}
}

// Selected returns the highlighted ratio.
func (g *GuideScreen) Selected() problemgen.RatioInfo {
	return g.infos[g.selected]
}

func (g *GuideScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if g.selected > 0 {
			g.selected--
		}
	case "down", "j":
		if g.selected < len(g.infos)-1 {
			g.selected++
		}
	}
	return g, nil
}

func (g *GuideScreen) View(width, height int) string {
	detail := renderDetail(g.Selected(), max(20, width-listWidth-8))
	if layout.IsCompactWidth(width) {
		return lipgloss.NewStyle().PaddingLeft(2).Render(g.renderList() + "\n" + detail)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Sidebar.Width(listWidth).Render(g.renderList()),
		"  ",
		detail)
}

func (g *GuideScreen) renderList() string {
	var b strings.Builder
	for i, info := range g.infos {
		if i == g.selected {
			b.WriteString(theme.Selected.Render("▸ " + info.Name))
		} else {
			b.WriteString(theme.Unselected.Render("  " + info.Name))
		}
		if i < len(g.infos)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderDetail(info problemgen.RatioInfo, width int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	var b strings.Builder
	b.WriteString(theme.Heading.Render(info.Name))
	b.WriteString("  ")
	b.WriteString(dim.Render(info.Slug))
	b.WriteString("\n\n")
	b.WriteString(theme.Formula.Render(info.Formula))
	b.WriteString("\n\n")
	b.WriteString(body.Render(fmt.Sprintf("Answers to %d decimal places, accepted within ±%g.", info.Precision, info.Tolerance)))
	b.WriteString("\n")
	b.WriteString(dim.Render(fmt.Sprintf("Practice values range from %g to %g.", info.TargetMin, info.TargetMax)))
	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render(problemgen.HeadingInterpretation))
	b.WriteString("\n")
	for _, band := range info.Bands {
		b.WriteString(body.Render(fmt.Sprintf("• %s: %s", band.Level.Title(), band.Description)))
		b.WriteString("\n")
	}
	return b.String()
}

package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ratiolab/internal/problemgen"
	"github.com/abhisek/ratiolab/internal/router"
	"github.com/abhisek/ratiolab/internal/screen"
	"github.com/abhisek/ratiolab/internal/screens/guide"
	sessionscreen "github.com/abhisek/ratiolab/internal/screens/session"
	"github.com/abhisek/ratiolab/internal/session"
	"github.com/abhisek/ratiolab/internal/ui/components"
	"github.com/abhisek/ratiolab/internal/ui/layout"
)

// Menu labels in display order.
const (
	LabelStart = "START PRACTICE"
	LabelGuide = "RATIO GUIDE"
	LabelExit  = "EXIT"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	setSize    int

	// Totals over every session finished since launch.
	attempted int
	correct   int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen that starts practice sessions with opts.
func New(opts sessionscreen.Options) *HomeScreen {
	h := &HomeScreen{
		menuLabels: []string{LabelStart, LabelGuide, LabelExit},
		setSize:    opts.SetSize,
	}
	if h.setSize <= 0 || h.setSize > problemgen.DefaultSetSize {
		h.setSize = problemgen.DefaultSetSize
	}

	onEnd := opts.OnEnd
	opts.OnEnd = func(sum *session.SessionSummary) {
		h.attempted += sum.TotalAttempted
		h.correct += sum.TotalCorrect
		if onEnd != nil {
			onEnd(sum)
		}
	}

	items := []components.MenuItem{
		{Label: LabelStart, Action: func() tea.Cmd {
			s := sessionscreen.New(opts)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		}},
		{Label: LabelGuide, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: guide.New()}
			}
		}},
		{Label: LabelExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header, footer and gaps.
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw),
		renderStatsBar(len(problemgen.AllRatioTypes), h.setSize, h.attempted, h.correct, cw, compact),
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

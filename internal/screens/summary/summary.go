package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/dustin/go-humanize"

	"github.com/abhisek/ratiolab/internal/problemgen"
	"github.com/abhisek/ratiolab/internal/router"
	"github.com/abhisek/ratiolab/internal/screen"
	"github.com/abhisek/ratiolab/internal/session"
	"github.com/abhisek/ratiolab/internal/ui/layout"
	"github.com/abhisek/ratiolab/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.SessionSummary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.SessionSummary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The summary replaced the session, so one pop returns home.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Session complete!"))
	b.WriteString("\n\n")

	b.WriteString(center.Foreground(theme.TextDim).
		Render(fmt.Sprintf("Duration: %s", FormatDuration(sum.Duration))))
	b.WriteString("\n\n")

	if len(sum.Results) > 0 {
		b.WriteString(center.Foreground(theme.Text).
			Render(fmt.Sprintf("Set score: %d/%d", sum.Score, sum.SetSize)))
		b.WriteString("\n")
	}
	b.WriteString(center.Foreground(theme.Text).Render(fmt.Sprintf(
		"Attempted: %s        Correct: %s        %s",
		humanize.Comma(int64(sum.TotalAttempted)),
		humanize.Comma(int64(sum.TotalCorrect)),
		sum.AccuracyLine())))
	b.WriteString("\n")
	b.WriteString(center.Inherit(ratingStyle(sum.Rating)).Render(sum.Rating.Message()))
	b.WriteString("\n\n")

	if answered := answeredCount(sum); answered > 0 {
		b.WriteString(center.Foreground(theme.TextDim).Render(
			"Mean absolute error: " + humanize.FtoaWithDigits(sum.MeanAbsError, 3)))
		b.WriteString("\n\n")
	}

	if len(sum.Results) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, resultsTable(sum.Results)))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatDuration renders d as m:ss.
func FormatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

func ratingStyle(r session.Rating) lipgloss.Style {
	switch r {
	case session.RatingExcellent:
		return theme.Correct
	case session.RatingGood:
		return theme.Selected
	default:
		return theme.Caution
	}
}

func answeredCount(sum *session.SessionSummary) int {
	n := 0
	for _, r := range sum.Results {
		if r.Answered {
			n++
		}
	}
	return n
}

func resultsTable(results []session.QuestionResult) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("#", "Ratio", "Company", "Yours", "Correct", "").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Foreground(theme.Secondary).Bold(true)
			}
			return style.Foreground(theme.Text)
		})

	for i, r := range results {
		q := &problemgen.Question{Type: r.Type}
		yours, mark := "-", ""
		if r.Answered {
			yours = problemgen.FormatSubmitted(q, r.Answer)
			mark = "✗"
			if r.Correct {
				mark = "✓"
			}
		}
		t.Row(
			fmt.Sprintf("%d", i+1),
			r.Type.String(),
			r.Company,
			yours,
			problemgen.FormatAnswer(q, r.CorrectAnswer),
			mark,
		)
	}
	return t.Render()
}

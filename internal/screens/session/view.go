package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/ratiolab/internal/problemgen"
	sess "github.com/abhisek/ratiolab/internal/session"
	"github.com/abhisek/ratiolab/internal/ui/components"
	"github.com/abhisek/ratiolab/internal/ui/layout"
	"github.com/abhisek/ratiolab/internal/ui/theme"
)

const sidebarWidth = 36

// Tips shown in the sidebar.
var Tips = []string{
	"Round your answers to 2 decimal places",
	"Read the scenario carefully",
	"Check the formula before calculating",
	"Practice regularly to improve!",
}

// renderPractice renders the question column and, on wide terminals, the
// progress sidebar.
func (s *SessionScreen) renderPractice(width, height int) string {
	mainWidth := width - 4
	var sidebar string
	if !layout.IsCompactWidth(width) {
		mainWidth = width - sidebarWidth - 6
		sidebar = s.renderSidebar(sidebarWidth)
	}

	main := s.renderQuestion(mainWidth)
	content := main
	if sidebar != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(mainWidth+2).PaddingLeft(2).Render(main),
			"  ",
			sidebar)
	}
	return clip(content, height)
}

func (s *SessionScreen) renderQuestion(width int) string {
	q := s.state.CurrentQuestion()
	if q == nil {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("No questions in this set. Press Ctrl+G for a new set.")
	}

	var b strings.Builder

	b.WriteString(theme.Heading.Render(fmt.Sprintf("Question %d of %d · %s", s.state.Current+1, len(s.state.Questions), q.Type)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(q.Company))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(q.Scenario))
	b.WriteString("\n\n")

	b.WriteString(renderDataTable(q))
	b.WriteString("\n")
	b.WriteString(theme.Formula.Render(q.Formula))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Your answer: "))
	b.WriteString(s.input.View())
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(theme.Incorrect.Render(s.errMsg))
		b.WriteString("\n")
	}

	if rec, ok := s.state.Record(s.state.Current); ok {
		b.WriteString("\n")
		b.WriteString(renderFeedback(q, rec, width))
	}

	if sess.IsComplete(s.state) {
		b.WriteString("\n")
		b.WriteString(s.renderCompletion())
	}

	return b.String()
}

// renderDataTable lists the financial data with right-aligned amounts.
func renderDataTable(q *problemgen.Question) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Financial Data", "Amount").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Foreground(theme.Secondary).Bold(true)
			}
			if col == 1 {
				return style.Foreground(theme.Text).Align(lipgloss.Right)
			}
			return style.Foreground(theme.Text)
		})
	for _, item := range q.Data {
		t.Row(item.Name, problemgen.Dollars(item.Amount))
	}
	return t.Render()
}

func renderFeedback(q *problemgen.Question, rec sess.AnswerRecord, width int) string {
	var b strings.Builder

	if rec.Correct {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("✓ Correct! %s is within ±%g of %s.",
			problemgen.FormatSubmitted(q, rec.Answer), q.Tolerance, problemgen.FormatAnswer(q, q.CorrectAnswer))))
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("✗ Incorrect. The correct answer is %s.",
			problemgen.FormatAnswer(q, q.CorrectAnswer))))
	}
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Width(width).Foreground(theme.Text)
	for _, line := range problemgen.Explain(q) {
		if problemgen.IsHeading(line) {
			b.WriteString(theme.Heading.Render(line))
		} else {
			b.WriteString(body.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (s *SessionScreen) renderCompletion() string {
	sum := sess.BuildSummary(s.state, s.opts.Now())

	var style lipgloss.Style
	switch sum.Rating {
	case sess.RatingExcellent:
		style = theme.Correct
	case sess.RatingGood:
		style = theme.Selected
	default:
		style = theme.Caution
	}

	lines := []string{
		theme.Correct.Render(sum.Headline()),
		lipgloss.NewStyle().Foreground(theme.Text).Render(sum.AccuracyLine()),
		style.Render(sum.Rating.Message()),
		theme.Hint.Render("Press Enter for the session summary or Ctrl+G for a new set."),
	}
	return strings.Join(lines, "\n") + "\n"
}

func (s *SessionScreen) renderSidebar(width int) string {
	p := sess.CurrentProgress(s.state)
	text := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Progress"))
	b.WriteString("\n")
	b.WriteString(text.Render(fmt.Sprintf("Questions Completed: %d/%d", p.Completed, p.Total)))
	b.WriteString("\n")
	b.WriteString(text.Render(fmt.Sprintf("Session Score: %d", p.Score)))
	b.WriteString("\n")
	b.WriteString(text.Render(fmt.Sprintf("Overall Accuracy: %d/%d (%.1f%%)", p.Correct, p.Attempted, p.Accuracy()*100)))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", p.Fraction(), true, width-4).View())
	b.WriteString("\n\n")

	b.WriteString(components.ButtonRow(
		components.NewButton("Prev", "⇧Tab", !s.state.IsFirst()),
		components.NewButton("Next", "Tab", !s.state.IsLast()),
	))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Tips"))
	b.WriteString("\n")
	for _, tip := range Tips {
		b.WriteString(lipgloss.NewStyle().Width(width - 4).Foreground(theme.TextDim).Render("• " + tip))
		b.WriteString("\n")
	}

	return theme.Sidebar.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("End this practice session?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("You'll see a summary of your answers."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Success).Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// clip drops lines beyond height so the frame never overflows.
func clip(s string, height int) string {
	if height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}

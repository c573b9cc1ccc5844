package session

import (
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/ratiolab/internal/problemgen"
	"github.com/abhisek/ratiolab/internal/router"
	"github.com/abhisek/ratiolab/internal/screen"
	sess "github.com/abhisek/ratiolab/internal/session"
	"github.com/abhisek/ratiolab/internal/ui/components"
	"github.com/abhisek/ratiolab/internal/ui/layout"
)

// Options carries the dependencies of a practice session.
type Options struct {
	Generator     *problemgen.Generator
	SetSize       int
	AnswerOptions problemgen.AnswerOptions
	Logger        zerolog.Logger

	// Now defaults to time.Now.
	Now func() time.Time

	// OnEnd, if set, receives the summary when the session ends.
	OnEnd func(*sess.SessionSummary)
}

// SessionScreen implements screen.Screen for a practice session.
type SessionScreen struct {
	opts  Options
	state sess.SessionState
	input components.TextInput

	// errMsg explains why the typed answer was not accepted.
	errMsg string

	showingQuitConfirm bool
}

var (
	_ screen.Screen          = (*SessionScreen)(nil)
	_ screen.KeyHintProvider = (*SessionScreen)(nil)
	_ screen.StatusProvider  = (*SessionScreen)(nil)
	_ screen.EscapeHandler   = (*SessionScreen)(nil)
)

// New creates a SessionScreen and draws its first problem set.
func New(opts Options) *SessionScreen {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SetSize <= 0 {
		opts.SetSize = problemgen.DefaultSetSize
	}

	s := &SessionScreen{opts: opts}
	s.state = sess.NewSessionState(sess.NewID(), s.drawSet(), opts.Now())
	s.resetInput()

	s.log().Info().Int("questions", len(s.state.Questions)).Msg("session started")
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *SessionScreen) Title() string {
	return "Practice"
}

// Status shows the set score and overall accuracy in the header.
func (s *SessionScreen) Status() string {
	p := sess.CurrentProgress(s.state)
	return fmt.Sprintf("Score %d/%d  ·  %.0f%%", p.Score, p.Total, p.Accuracy()*100)
}

func (s *SessionScreen) HandlesEscape() bool {
	return true
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if sess.IsComplete(s.state) {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Summary"},
			{Key: "Ctrl+G", Description: "New set"},
			{Key: "Shift+Tab", Description: "Previous"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	if s.state.Answered() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Tab/Shift+Tab", Description: "Navigate"},
			{Key: "Ctrl+G", Description: "New set"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab/Shift+Tab", Description: "Navigate"},
		{Key: "Ctrl+G", Description: "New set"},
		{Key: "Ctrl+R", Description: "Reset"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuitConfirm {
		return renderQuitConfirm(width, height)
	}
	return s.renderPractice(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		return s.handleKey(kmsg)
	}

	if !s.state.Answered() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s, s.endSession()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.handleEnter()
	case "tab", "pgdown":
		s.next()
		return s, s.input.Init()
	case "shift+tab", "pgup":
		s.previous()
		return s, s.input.Init()
	case "ctrl+g":
		s.newSet()
		return s, s.input.Init()
	case "ctrl+r":
		s.reset()
		return s, s.input.Init()
	}

	if s.state.Answered() {
		return s, nil
	}
	s.errMsg = ""
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// handleEnter submits an unanswered question, moves on from an answered
// one, and opens the summary once the set is complete.
func (s *SessionScreen) handleEnter() (screen.Screen, tea.Cmd) {
	switch {
	case sess.IsComplete(s.state):
		return s, s.endSession()
	case s.state.Answered():
		s.next()
		return s, s.input.Init()
	default:
		return s.submitAnswer()
	}
}

func (s *SessionScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer, err := s.input.Answer()
	if err != nil {
		s.errMsg = answerErrorText(err, s.opts.AnswerOptions)
		return s, nil
	}

	next, outcome, err := sess.Submit(s.state, answer)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.state = next
	s.errMsg = ""
	s.input.Submit(outcome.Correct)

	s.log().Info().
		Int("question", outcome.QuestionID).
		Str("ratio", outcome.Type.Slug()).
		Float64("answer", outcome.Answer).
		Float64("correct_answer", outcome.CorrectAnswer).
		Bool("correct", outcome.Correct).
		Msg("answer submitted")

	if sess.IsComplete(s.state) {
		sum := sess.BuildSummary(s.state, s.opts.Now())
		s.log().Info().
			Int("score", sum.Score).
			Int("set_size", sum.SetSize).
			Float64("accuracy", sum.Accuracy).
			Str("rating", sum.Rating.String()).
			Msg("set completed")
	}
	return s, nil
}

func (s *SessionScreen) next() {
	if next, ok := sess.Next(s.state); ok {
		s.state = next
		s.resetInput()
	}
}

func (s *SessionScreen) previous() {
	if prev, ok := sess.Previous(s.state); ok {
		s.state = prev
		s.resetInput()
	}
}

func (s *SessionScreen) newSet() {
	s.state = sess.NewSet(s.state, s.drawSet())
	s.resetInput()
	s.log().Info().Msg("new problem set")
}

func (s *SessionScreen) reset() {
	s.log().Info().Msg("session reset")
	s.state = sess.Reset(sess.NewID(), s.drawSet(), s.opts.Now())
	s.resetInput()
}

// endSession replaces this screen with the summary.
func (s *SessionScreen) endSession() tea.Cmd {
	sum := sess.BuildSummary(s.state, s.opts.Now())
	s.log().Info().
		Int("attempted", sum.TotalAttempted).
		Int("correct", sum.TotalCorrect).
		Dur("duration", sum.Duration).
		Msg("session ended")
	if s.opts.OnEnd != nil {
		s.opts.OnEnd(sum)
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: newSummaryScreenAdapter(sum)}
	}
}

// resetInput prepares the input for the displayed question. An answered
// question shows its submission, frozen.
func (s *SessionScreen) resetInput() {
	s.errMsg = ""
	placeholder := "0.00"
	if q := s.state.CurrentQuestion(); q != nil {
		placeholder = problemgen.FormatAnswer(q, 0)
	}
	s.input = components.NewTextInput(placeholder, s.opts.AnswerOptions)

	if rec, ok := s.state.Record(s.state.Current); ok {
		s.input.SetValue(problemgen.FormatSubmitted(s.state.CurrentQuestion(), rec.Answer))
		s.input.Submit(rec.Correct)
	}
}

func (s *SessionScreen) drawSet() []*problemgen.Question {
	return s.opts.Generator.GenerateSet(s.opts.SetSize)
}

func (s *SessionScreen) log() *zerolog.Logger {
	l := s.opts.Logger.With().Str("session", s.state.ID).Logger()
	return &l
}

func answerErrorText(err error, opts problemgen.AnswerOptions) string {
	switch {
	case errors.Is(err, problemgen.ErrEmptyAnswer):
		return "Type an answer first."
	case errors.Is(err, problemgen.ErrOutOfRange):
		return fmt.Sprintf("Answers must be between %g and %g.", opts.Min, opts.Max)
	default:
		return "That is not a number."
	}
}

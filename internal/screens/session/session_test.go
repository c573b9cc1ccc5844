package session

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/ratiolab/internal/problemgen"
	"github.com/abhisek/ratiolab/internal/router"
	"github.com/abhisek/ratiolab/internal/screen"
	"github.com/abhisek/ratiolab/internal/screens/summary"
	sess "github.com/abhisek/ratiolab/internal/session"
)

var fixedNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSessionScreen(setSize int) *SessionScreen {
	return New(Options{
		Generator:     problemgen.NewSeeded(42, problemgen.DefaultConfig()),
		SetSize:       setSize,
		AnswerOptions: problemgen.DefaultAnswerOptions(),
		Logger:        zerolog.Nop(),
		Now:           func() time.Time { return fixedNow },
	})
}

// typeAnswer types v formatted with the question's precision.
func typeAnswer(s *SessionScreen, v float64) {
	text := problemgen.FormatAnswer(s.state.CurrentQuestion(), v)
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func update(s *SessionScreen, msg tea.Msg) (*SessionScreen, tea.Cmd) {
	scr, cmd := s.Update(msg)
	return scr.(*SessionScreen), cmd
}

func TestSessionScreen_Title(t *testing.T) {
	s := testSessionScreen(5)
	if s.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", s.Title(), "Practice")
	}
}

func TestSessionScreen_NewDrawsSet(t *testing.T) {
	s := testSessionScreen(3)
	if len(s.state.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(s.state.Questions))
	}
	if s.state.ID == "" {
		t.Error("expected session id")
	}
}

func TestSessionScreen_SubmitCorrect(t *testing.T) {
	s := testSessionScreen(5)
	q := s.state.CurrentQuestion()

	typeAnswer(s, q.CorrectAnswer)
	s, _ = update(s, specialKey(tea.KeyEnter))

	if !s.state.Answered() {
		t.Fatal("expected question to be answered")
	}
	if s.state.Score != 1 || s.state.TotalAttempted != 1 {
		t.Errorf("score=%d attempted=%d, want 1/1", s.state.Score, s.state.TotalAttempted)
	}
	view := s.View(120, 80)
	if !strings.Contains(view, "Correct!") {
		t.Error("expected correct feedback in view")
	}
	if !strings.Contains(view, problemgen.HeadingSteps) {
		t.Error("expected explanation in view")
	}
}

func TestSessionScreen_SubmitIncorrectShowsExplanation(t *testing.T) {
	s := testSessionScreen(5)
	q := s.state.CurrentQuestion()

	typeAnswer(s, q.CorrectAnswer+5)
	s, _ = update(s, specialKey(tea.KeyEnter))

	if s.state.Score != 0 || s.state.TotalAttempted != 1 {
		t.Errorf("score=%d attempted=%d, want 0/1", s.state.Score, s.state.TotalAttempted)
	}
	view := s.View(120, 80)
	if !strings.Contains(view, "Incorrect") {
		t.Error("expected incorrect feedback in view")
	}
	if !strings.Contains(view, problemgen.HeadingInsight) {
		t.Error("expected explanation for incorrect answer")
	}
}

func TestSessionScreen_EmptyAnswerRejected(t *testing.T) {
	s := testSessionScreen(5)
	s, _ = update(s, specialKey(tea.KeyEnter))

	if s.state.Answered() {
		t.Error("empty answer must not be submitted")
	}
	if s.errMsg == "" {
		t.Error("expected an error message")
	}
}

func TestSessionScreen_OutOfRangeRejected(t *testing.T) {
	s := testSessionScreen(5)
	for _, r := range "2000" {
		s.Update(keyPress(r))
	}
	s, _ = update(s, specialKey(tea.KeyEnter))

	if s.state.Answered() {
		t.Error("out-of-range answer must not be submitted")
	}
	if !strings.Contains(s.errMsg, "between 0 and 1000") {
		t.Errorf("errMsg = %q", s.errMsg)
	}
}

func TestSessionScreen_EnterAfterAnswerMovesOn(t *testing.T) {
	s := testSessionScreen(5)
	typeAnswer(s, 1)
	s, _ = update(s, specialKey(tea.KeyEnter))
	s, _ = update(s, specialKey(tea.KeyEnter))

	if s.state.Current != 1 {
		t.Errorf("Current = %d, want 1", s.state.Current)
	}
	if s.input.Submitted() {
		t.Error("input for the next question should be fresh")
	}
}

func TestSessionScreen_NavigationRestoresAnswer(t *testing.T) {
	s := testSessionScreen(5)
	typeAnswer(s, 1)
	s, _ = update(s, specialKey(tea.KeyEnter))

	s, _ = update(s, specialKey(tea.KeyTab))
	if s.state.Current != 1 {
		t.Fatalf("Current after Tab = %d, want 1", s.state.Current)
	}

	s, _ = update(s, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.state.Current != 0 {
		t.Fatalf("Current after Shift+Tab = %d, want 0", s.state.Current)
	}
	if !s.input.Submitted() {
		t.Error("returning to an answered question should show the frozen answer")
	}

	// A second submission is ignored.
	s, _ = update(s, specialKey(tea.KeyEnter))
	if s.state.TotalAttempted != 1 {
		t.Errorf("TotalAttempted = %d, want 1", s.state.TotalAttempted)
	}
}

func TestSessionScreen_PreviousOnFirstIsNoop(t *testing.T) {
	s := testSessionScreen(5)
	s, _ = update(s, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if s.state.Current != 0 {
		t.Errorf("Current = %d, want 0", s.state.Current)
	}
}

func TestSessionScreen_CompleteSetOpensSummary(t *testing.T) {
	s := testSessionScreen(2)
	for i := 0; i < 2; i++ {
		typeAnswer(s, s.state.CurrentQuestion().CorrectAnswer)
		s, _ = update(s, specialKey(tea.KeyEnter))
		if i == 0 {
			s, _ = update(s, specialKey(tea.KeyEnter))
		}
	}

	view := s.View(120, 80)
	if !strings.Contains(view, "Final Score: 2/2") {
		t.Error("expected completion message")
	}

	_, cmd := update(s, specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command to open the summary")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.Screen)
	}
}

func TestSessionScreen_NewSetKeepsTotals(t *testing.T) {
	s := testSessionScreen(5)
	typeAnswer(s, s.state.CurrentQuestion().CorrectAnswer)
	s, _ = update(s, specialKey(tea.KeyEnter))
	id := s.state.ID

	s, _ = update(s, tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl})

	if s.state.Score != 0 || s.state.Current != 0 || s.state.Answered() {
		t.Error("new set should clear set score and answers")
	}
	if s.state.TotalAttempted != 1 || s.state.TotalCorrect != 1 {
		t.Errorf("totals = %d/%d, want 1/1", s.state.TotalCorrect, s.state.TotalAttempted)
	}
	if s.state.ID != id {
		t.Error("new set should keep the session id")
	}
}

func TestSessionScreen_ResetClearsTotals(t *testing.T) {
	s := testSessionScreen(5)
	typeAnswer(s, 1)
	s, _ = update(s, specialKey(tea.KeyEnter))
	id := s.state.ID

	s, _ = update(s, tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl})

	if s.state.TotalAttempted != 0 || s.state.TotalCorrect != 0 {
		t.Error("reset should clear running totals")
	}
	if s.state.ID == id {
		t.Error("reset should start a new session id")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s := testSessionScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.showingQuitConfirm {
		t.Fatal("expected quit confirmation dialog")
	}
	if !strings.Contains(ss.View(80, 24), "End this practice session?") {
		t.Error("expected dialog in view")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestSessionScreen_QuitConfirm_Yes(t *testing.T) {
	s := testSessionScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected summary to replace the session")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s := testSessionScreen(5)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
	if s.KeyHints()[0].Description != "Submit" {
		t.Errorf("first hint = %q, want Submit", s.KeyHints()[0].Description)
	}
}

func TestSessionScreen_Status(t *testing.T) {
	s := testSessionScreen(5)
	if got := s.Status(); got != "Score 0/5  ·  0%" {
		t.Errorf("Status = %q", got)
	}
}

func TestSessionScreen_SidebarOnWideTerminal(t *testing.T) {
	s := testSessionScreen(5)
	if !strings.Contains(s.View(120, 80), "Questions Completed: 0/5") {
		t.Error("expected sidebar progress on a wide terminal")
	}
	if strings.Contains(s.View(80, 80), "Questions Completed") {
		t.Error("sidebar should be hidden on a narrow terminal")
	}
}

func TestClip(t *testing.T) {
	if got := clip("a\nb\nc", 2); got != "a\nb" {
		t.Errorf("clip = %q", got)
	}
	if got := clip("a", 5); got != "a" {
		t.Errorf("clip = %q", got)
	}
}

func TestSessionScreen_SubmittedTurnoverKeepsDecimals(t *testing.T) {
	s := testSessionScreen(1)
	q := problemgen.Build(problemgen.InventoryTurnover, "Widget Works", 1000000, 7.0)
	s.state = sess.NewSessionState("turnover", []*problemgen.Question{q}, fixedNow)
	s.resetInput()

	for _, r := range "7.14" {
		s.Update(keyPress(r))
	}
	s, _ = update(s, specialKey(tea.KeyEnter))

	rec, ok := s.state.Record(0)
	if !ok || rec.Correct {
		t.Fatalf("record = %+v, %v; want an incorrect submission", rec, ok)
	}
	if !strings.Contains(s.View(120, 80), "The correct answer is 7.0") {
		t.Error("expected incorrect feedback against 7.0")
	}

	s.resetInput()
	if got := s.input.Value(); got != "7.14" {
		t.Errorf("restored input = %q, want %q", got, "7.14")
	}

	sum := sess.BuildSummary(s.state, fixedNow)
	if !strings.Contains(summary.New(sum).View(120, 40), "7.14") {
		t.Error("summary should show the answer as entered")
	}
}

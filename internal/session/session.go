package session

import (
	"errors"
	"time"

	"github.com/abhisek/ratiolab/internal/problemgen"
	"github.com/google/uuid"
)

var (
	// ErrAlreadyAnswered is returned when the displayed question already
	// has a submission. Each question accepts one answer per set.
	ErrAlreadyAnswered = errors.New("question already answered")

	// ErrNoQuestion is returned when the set is empty.
	ErrNoQuestion = errors.New("no question to answer")
)

// Outcome describes the result of a submission.
type Outcome struct {
	QuestionID    int
	Type          problemgen.RatioType
	Answer        float64
	CorrectAnswer float64
	Correct       bool

	// Explanation is the full worked solution. It is produced for every
	// submission, correct or not.
	Explanation []string
}

// NewID returns a fresh session identifier.
func NewID() string {
	return uuid.New().String()
}

// Submit records answer for the displayed question. A correct answer adds to
// the set score and the running correct total; every submission adds to the
// attempt total.
func Submit(state SessionState, answer float64) (SessionState, Outcome, error) {
	q := state.CurrentQuestion()
	if q == nil {
		return state, Outcome{}, ErrNoQuestion
	}
	if state.Answered() {
		return state, Outcome{}, ErrAlreadyAnswered
	}

	correct := problemgen.CheckAnswer(q, answer)

	next := state.clone()
	next.Answers[next.Current] = AnswerRecord{Answer: answer, Correct: correct}
	next.TotalAttempted++
	if correct {
		next.Score++
		next.TotalCorrect++
	}

	return next, Outcome{
		QuestionID:    q.ID,
		Type:          q.Type,
		Answer:        answer,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       correct,
		Explanation:   problemgen.Explain(q),
	}, nil
}

// Next moves to the following question. It reports false, leaving the state
// unchanged, when already on the last one.
func Next(state SessionState) (SessionState, bool) {
	if state.Current >= len(state.Questions)-1 {
		return state, false
	}
	state.Current++
	return state, true
}

// Previous moves to the preceding question. It reports false, leaving the
// state unchanged, when already on the first one.
func Previous(state SessionState) (SessionState, bool) {
	if state.Current <= 0 {
		return state, false
	}
	state.Current--
	return state, true
}

// NewSet replaces the question set. Position, set score and submissions
// are cleared; running totals carry over.
func NewSet(state SessionState, questions []*problemgen.Question) SessionState {
	state.Questions = questions
	state.Current = 0
	state.Score = 0
	state.Answers = make(map[int]AnswerRecord)
	return state
}

// Reset starts over with a new id and questions and clears every counter.
func Reset(id string, questions []*problemgen.Question, now time.Time) SessionState {
	return NewSessionState(id, questions, now)
}

// IsComplete reports whether the set is finished: the last question is
// displayed and has been answered.
func IsComplete(state SessionState) bool {
	return len(state.Questions) > 0 && state.IsLast() && state.Answered()
}

package session

import (
	"time"

	"github.com/abhisek/ratiolab/internal/problemgen"
)

// AnswerRecord is what the learner submitted for one question of the set.
type AnswerRecord struct {
	Answer  float64
	Correct bool
}

// SessionState is the full state of a practice session. Handlers take a
// state by value and return the next one; the Answers map is copied on
// every change so earlier values stay untouched.
type SessionState struct {
	// ID identifies the session in logs.
	ID string

	// Questions is the current set, in presentation order.
	Questions []*problemgen.Question

	// Current is the index into Questions of the displayed question.
	Current int

	// Score counts correct answers in the current set.
	Score int

	// Answers holds the submission for each answered question, keyed by
	// index into Questions.
	Answers map[int]AnswerRecord

	// TotalAttempted and TotalCorrect run across sets until Reset.
	TotalAttempted int
	TotalCorrect   int

	StartTime time.Time
}

// NewSessionState creates a session positioned on the first question.
func NewSessionState(id string, questions []*problemgen.Question, now time.Time) SessionState {
	return SessionState{
		ID:        id,
		Questions: questions,
		Answers:   make(map[int]AnswerRecord),
		StartTime: now,
	}
}

// CurrentQuestion returns the displayed question, or nil for an empty set.
func (s SessionState) CurrentQuestion() *problemgen.Question {
	if s.Current < 0 || s.Current >= len(s.Questions) {
		return nil
	}
	return s.Questions[s.Current]
}

// Answered reports whether the displayed question already has a submission.
func (s SessionState) Answered() bool {
	_, ok := s.Answers[s.Current]
	return ok
}

// Record returns the submission for question index i.
func (s SessionState) Record(i int) (AnswerRecord, bool) {
	r, ok := s.Answers[i]
	return r, ok
}

// IsFirst reports whether the displayed question is the first of the set.
func (s SessionState) IsFirst() bool { return s.Current == 0 }

// IsLast reports whether the displayed question is the last of the set.
func (s SessionState) IsLast() bool { return s.Current == len(s.Questions)-1 }

func (s SessionState) clone() SessionState {
	answers := make(map[int]AnswerRecord, len(s.Answers)+1)
	for k, v := range s.Answers {
		answers[k] = v
	}
	s.Answers = answers
	return s
}

package session

import (
	"fmt"
	"math"
	"time"

	"github.com/abhisek/ratiolab/internal/problemgen"
	"gonum.org/v1/gonum/stat"
)

// Rating grades overall accuracy.
type Rating int

const (
	RatingKeepPracticing Rating = iota
	RatingGood
	RatingExcellent
)

// Rate maps an accuracy in [0, 1] to a rating: 80% and above is excellent,
// 60% and above is good.
func Rate(accuracy float64) Rating {
	switch pct := accuracy * 100; {
	case pct >= 80:
		return RatingExcellent
	case pct >= 60:
		return RatingGood
	default:
		return RatingKeepPracticing
	}
}

func (r Rating) String() string {
	switch r {
	case RatingExcellent:
		return "excellent"
	case RatingGood:
		return "good"
	default:
		return "keep practicing"
	}
}

// Message is the encouragement shown with the rating.
func (r Rating) Message() string {
	switch r {
	case RatingExcellent:
		return "Excellent work! You've mastered financial ratios!"
	case RatingGood:
		return "Good job! Keep practicing to improve!"
	default:
		return "Keep practicing! You'll get better with more practice."
	}
}

// QuestionResult is the per-question line of a summary.
type QuestionResult struct {
	ID            int
	Type          problemgen.RatioType
	Company       string
	Answered      bool
	Answer        float64
	CorrectAnswer float64
	Correct       bool
	AbsError      float64
}

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	SessionID string
	Duration  time.Duration

	SetSize int
	Score   int

	TotalAttempted int
	TotalCorrect   int
	Accuracy       float64
	Rating         Rating

	// MeanAbsError is the mean distance between submitted and correct
	// answers in the current set, 0 when nothing was answered.
	MeanAbsError float64

	Results []QuestionResult
}

// BuildSummary creates a SessionSummary from state as of now.
func BuildSummary(state SessionState, now time.Time) *SessionSummary {
	results := make([]QuestionResult, 0, len(state.Questions))
	var errs []float64
	for i, q := range state.Questions {
		r := QuestionResult{
			ID:            q.ID,
			Type:          q.Type,
			Company:       q.Company,
			CorrectAnswer: q.CorrectAnswer,
		}
		if rec, ok := state.Answers[i]; ok {
			r.Answered = true
			r.Answer = rec.Answer
			r.Correct = rec.Correct
			r.AbsError = math.Abs(rec.Answer - q.CorrectAnswer)
			errs = append(errs, r.AbsError)
		}
		results = append(results, r)
	}

	var mae float64
	if len(errs) > 0 {
		mae = stat.Mean(errs, nil)
	}

	accuracy := Accuracy(state.TotalCorrect, state.TotalAttempted)
	return &SessionSummary{
		SessionID:      state.ID,
		Duration:       now.Sub(state.StartTime),
		SetSize:        len(state.Questions),
		Score:          state.Score,
		TotalAttempted: state.TotalAttempted,
		TotalCorrect:   state.TotalCorrect,
		Accuracy:       accuracy,
		Rating:         Rate(accuracy),
		MeanAbsError:   mae,
		Results:        results,
	}
}

// Headline is the completion message, e.g.
// "Congratulations! You've completed this problem set! Final Score: 4/5".
func (s *SessionSummary) Headline() string {
	return fmt.Sprintf("Congratulations! You've completed this problem set! Final Score: %d/%d", s.Score, s.SetSize)
}

// AccuracyLine reports overall accuracy with one decimal.
func (s *SessionSummary) AccuracyLine() string {
	return fmt.Sprintf("Your overall accuracy: %.1f%%", s.Accuracy*100)
}

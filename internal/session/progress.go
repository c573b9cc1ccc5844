package session

// Progress is the sidebar view of a session.
type Progress struct {
	Completed int // answered questions in the current set
	Total     int // questions in the current set
	Score     int

	Attempted int // across sets
	Correct   int // across sets
}

// CurrentProgress derives the progress numbers from state.
func CurrentProgress(state SessionState) Progress {
	return Progress{
		Completed: len(state.Answers),
		Total:     len(state.Questions),
		Score:     state.Score,
		Attempted: state.TotalAttempted,
		Correct:   state.TotalCorrect,
	}
}

// Fraction returns Completed/Total in [0, 1], 0 for an empty set.
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// Accuracy returns the overall share of correct answers in [0, 1]. With no
// attempts it is 0.
func (p Progress) Accuracy() float64 {
	return Accuracy(p.Correct, p.Attempted)
}

// Accuracy returns correct / max(1, attempted).
func Accuracy(correct, attempted int) float64 {
	if attempted < 1 {
		attempted = 1
	}
	return float64(correct) / float64(attempted)
}

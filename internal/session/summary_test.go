package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRate(t *testing.T) {
	tests := []struct {
		accuracy float64
		want     Rating
	}{
		{1.0, RatingExcellent},
		{0.8, RatingExcellent},
		{0.79, RatingGood},
		{0.6, RatingGood},
		{0.59, RatingKeepPracticing},
		{0, RatingKeepPracticing},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Rate(tc.accuracy), "accuracy %v", tc.accuracy)
	}
}

func TestBuildSummary(t *testing.T) {
	s := testState()
	s, _, _ = Submit(s, 2.0) // correct, error 0
	s, _ = Next(s)
	s, _, _ = Submit(s, 0.40) // wrong, error 0.10
	s, _ = Next(s)
	s, _, _ = Submit(s, 7.0) // correct, error 0

	sum := BuildSummary(s, testStart.Add(5*time.Minute))

	assert.Equal(t, "test-session-id", sum.SessionID)
	assert.Equal(t, 5*time.Minute, sum.Duration)
	assert.Equal(t, 3, sum.SetSize)
	assert.Equal(t, 2, sum.Score)
	assert.Equal(t, 3, sum.TotalAttempted)
	assert.Equal(t, 2, sum.TotalCorrect)
	assert.InDelta(t, 2.0/3.0, sum.Accuracy, 1e-9)
	assert.Equal(t, RatingGood, sum.Rating)
	assert.InDelta(t, 0.10/3, sum.MeanAbsError, 1e-9)

	require.Len(t, sum.Results, 3)
	assert.True(t, sum.Results[0].Correct)
	assert.False(t, sum.Results[1].Correct)
	assert.True(t, sum.Results[1].Answered)
	assert.InDelta(t, 0.10, sum.Results[1].AbsError, 1e-9)

	assert.Equal(t, "Congratulations! You've completed this problem set! Final Score: 2/3", sum.Headline())
	assert.Equal(t, "Your overall accuracy: 66.7%", sum.AccuracyLine())
}

func TestBuildSummary_Unanswered(t *testing.T) {
	sum := BuildSummary(testState(), testStart)
	assert.Equal(t, 0, sum.TotalAttempted)
	assert.Zero(t, sum.Accuracy)
	assert.Zero(t, sum.MeanAbsError)
	assert.Equal(t, RatingKeepPracticing, sum.Rating)
	for _, r := range sum.Results {
		assert.False(t, r.Answered)
	}
}

func TestBuildSummary_AccuracySpansSets(t *testing.T) {
	s := testState()
	s, _, _ = Submit(s, 9.0)
	s = NewSet(s, testQuestions())
	s, _, _ = Submit(s, 2.0)

	sum := BuildSummary(s, testStart)
	assert.Equal(t, 1, sum.Score)
	assert.Equal(t, 2, sum.TotalAttempted)
	assert.InDelta(t, 0.5, sum.Accuracy, 1e-9)
	assert.Equal(t, RatingKeepPracticing, sum.Rating)
}

func TestRating_Message(t *testing.T) {
	assert.Contains(t, RatingExcellent.Message(), "mastered")
	assert.Contains(t, RatingGood.Message(), "Good job")
	assert.Contains(t, RatingKeepPracticing.Message(), "Keep practicing")
	assert.Equal(t, "keep practicing", RatingKeepPracticing.String())
}

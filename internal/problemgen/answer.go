package problemgen

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// toleranceEpsilon keeps answers that sit exactly on the tolerance boundary
// correct despite binary rounding (0.31 - 0.30 is slightly above 0.01).
const toleranceEpsilon = 1e-9

var (
	ErrEmptyAnswer = errors.New("answer is empty")
	ErrNotANumber  = errors.New("answer is not a number")
	ErrOutOfRange  = errors.New("answer is out of range")
)

// CheckAnswer reports whether answer is within the question's tolerance of
// the correct answer. It has no side effects.
func CheckAnswer(q *Question, answer float64) bool {
	return math.Abs(answer-q.CorrectAnswer) <= q.Tolerance+toleranceEpsilon
}

// AnswerOptions bounds and rounds typed answers.
type AnswerOptions struct {
	Min       float64
	Max       float64
	Precision int
}

// DefaultAnswerOptions accepts answers in [0, 1000] with two decimals.
func DefaultAnswerOptions() AnswerOptions {
	return AnswerOptions{Min: 0, Max: 1000, Precision: 2}
}

// ParseAnswer converts typed input into an answer value.
//
// Normalization rules:
// - Whitespace is trimmed
// - The value must parse as a decimal number
// - It must fall within [opts.Min, opts.Max]
// - It is rounded to opts.Precision decimals
func ParseAnswer(input string, opts AnswerOptions) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrEmptyAnswer
	}

	f, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, input)
	}
	if f < opts.Min || f > opts.Max {
		return 0, fmt.Errorf("%w: %s not in [%g, %g]", ErrOutOfRange, input, opts.Min, opts.Max)
	}
	return Round(f, opts.Precision), nil
}

// FormatAnswer renders a value with the question's precision, e.g. "2.35"
// or "7.4".
func FormatAnswer(q *Question, v float64) string {
	return strconv.FormatFloat(v, 'f', q.Precision(), 64)
}

// FormatSubmitted renders a submitted answer without dropping the decimals
// it was entered with: 7.14 stays "7.14" on a one-decimal question, while
// 7 is padded to "7.0".
func FormatSubmitted(q *Question, v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	decimals := 0
	if i := strings.IndexByte(s, '.'); i >= 0 {
		decimals = len(s) - i - 1
	}
	if decimals >= q.Precision() {
		return s
	}
	return FormatAnswer(q, v)
}

package problemgen

import "fmt"

// Section headings emitted by Explain.
const (
	HeadingSteps          = "Calculation Steps:"
	HeadingInterpretation = "Interpretation Guidelines:"
	HeadingInsight        = "Business Insight:"
)

// Derive returns the worked calculation for q: the two amounts, the
// operation performed and the formatted result.
func Derive(q *Question) []string {
	v := mustVariant(q.Type)
	if len(q.Data) != 2 {
		panic(fmt.Sprintf("problemgen: %s question has %d line items", q.Type, len(q.Data)))
	}
	return v.derive(q.Data[0].Amount, q.Data[1].Amount)
}

// Explain returns the full solution shown after an answer, correct or not:
// the derivation, the interpretation bands and the business insight.
func Explain(q *Question) []string {
	steps := Derive(q)
	lines := make([]string, 0, len(steps)+len(q.Interpretation)+4)

	lines = append(lines, HeadingSteps)
	lines = append(lines, steps...)

	lines = append(lines, HeadingInterpretation)
	for _, b := range q.Interpretation {
		lines = append(lines, fmt.Sprintf("• %s: %s", b.Level.Title(), b.Description))
	}

	lines = append(lines, HeadingInsight, q.Explanation)
	return lines
}

// IsHeading reports whether line is one of the section headings.
func IsHeading(line string) bool {
	switch line {
	case HeadingSteps, HeadingInterpretation, HeadingInsight:
		return true
	}
	return false
}

package problemgen

import (
	"fmt"
	"math"
)

// consistencyEpsilon absorbs float noise when comparing a stored answer to
// one recomputed from the same integers.
const consistencyEpsilon = 1e-6

// ConsistencyValidator independently recomputes the ratio from the line
// items and checks it against the stored answer and the realistic range
// the target was drawn from.
type ConsistencyValidator struct{}

func (v *ConsistencyValidator) Name() string { return "consistency" }

func (v *ConsistencyValidator) Validate(q *Question) *ValidationError {
	vt, ok := variants[q.Type]
	if !ok || len(q.Data) != 2 || q.Data[1].Amount == 0 {
		return &ValidationError{Validator: v.Name(), Message: "question is not computable"}
	}

	computed := Round(vt.value(q.Data[0].Amount, q.Data[1].Amount), vt.precision)
	if math.Abs(computed-q.CorrectAnswer) > consistencyEpsilon {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("data gives %.*f but answer is %.*f", vt.precision, computed, vt.precision, q.CorrectAnswer),
		}
	}
	if q.CorrectAnswer < vt.targetMin-consistencyEpsilon || q.CorrectAnswer > vt.targetMax+consistencyEpsilon {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %.*f outside realistic range [%g, %g]", vt.precision, q.CorrectAnswer, vt.targetMin, vt.targetMax),
		}
	}
	return nil
}

// Round rounds x to the given number of decimals, halves away from zero.
func Round(x float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(x*p) / p
}

package problemgen

import "fmt"

// StructuralValidator checks that required fields are present and that the
// data has the two positive line items every formula divides.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	if _, ok := variants[q.Type]; !ok {
		return v.fail("unknown ratio type %d", int(q.Type))
	}
	if q.Company == "" {
		return v.fail("company is empty")
	}
	if q.Scenario == "" {
		return v.fail("scenario is empty")
	}
	if q.Formula == "" {
		return v.fail("formula is empty")
	}
	if q.Explanation == "" {
		return v.fail("explanation is empty")
	}
	if len(q.Data) != 2 {
		return v.fail("expected 2 line items, got %d", len(q.Data))
	}
	for _, item := range q.Data {
		if item.Name == "" {
			return v.fail("line item has no name")
		}
		if item.Amount <= 0 {
			return v.fail("line item %q must be positive, got %d", item.Name, item.Amount)
		}
	}
	if q.Data[0].Name == q.Data[1].Name {
		return v.fail("duplicate line item %q", q.Data[0].Name)
	}
	if len(q.Interpretation) != 3 {
		return v.fail("expected 3 interpretation bands, got %d", len(q.Interpretation))
	}
	if q.Tolerance <= 0 {
		return v.fail("tolerance must be positive")
	}
	return nil
}

func (v *StructuralValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}

package problemgen

import "testing"

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Validator: "test-validator",
		Message:   "something went wrong",
	}
	expected := `validator "test-validator": something went wrong`
	if err.Error() != expected {
		t.Errorf("got %q, want %q", err.Error(), expected)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Validators) != 2 {
		t.Fatalf("expected 2 validators, got %d", len(cfg.Validators))
	}
	names := []string{"structural", "consistency"}
	for i, v := range cfg.Validators {
		if v.Name() != names[i] {
			t.Errorf("validator %d: expected %q, got %q", i, names[i], v.Name())
		}
	}
}

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.MaxAttempts != 3 {
		t.Errorf("expected MaxAttempts 3, got %d", cfg.MaxAttempts)
	}
	if len(cfg.Companies) != 10 {
		t.Errorf("expected 10 companies, got %d", len(cfg.Companies))
	}
}

type rejectAll struct{ calls int }

func (r *rejectAll) Name() string { return "reject-all" }

func (r *rejectAll) Validate(q *Question) *ValidationError {
	r.calls++
	return &ValidationError{Validator: r.Name(), Message: "rejected"}
}

func TestGenerate_PanicsAfterMaxAttempts(t *testing.T) {
	reject := &rejectAll{}
	cfg := DefaultConfig()
	cfg.Validators = []Validator{reject}
	cfg.MaxAttempts = 4
	g := NewSeeded(1, cfg)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when every draw is rejected")
		}
		if reject.calls != 4 {
			t.Errorf("validator called %d times, want 4", reject.calls)
		}
	}()
	g.Generate(DebtToEquity)
}

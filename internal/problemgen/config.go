package problemgen

import "github.com/rs/zerolog"

// DefaultCompanies is the pool company names are drawn from.
var DefaultCompanies = []string{
	"Tech Innovations Inc.",
	"Global Manufacturing Corp.",
	"Retail Giant Co.",
	"Service Masters LLC",
	"Consumer Products Inc.",
	"Energy Solutions Ltd.",
	"Healthcare Systems Co.",
	"Logistics Express Inc.",
	"Finance Partners LLC",
	"Software Dynamics Corp.",
}

// DefaultSetSize is the number of questions in a set when none is requested.
const DefaultSetSize = 5

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// Companies is the pool of company names. Empty means DefaultCompanies.
	Companies []string

	// MaxAttempts bounds how many times a question is redrawn after a
	// validation failure.
	MaxAttempts int

	Logger zerolog.Logger
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ConsistencyValidator{},
		},
		Companies:   DefaultCompanies,
		MaxAttempts: 3,
		Logger:      zerolog.Nop(),
	}
}

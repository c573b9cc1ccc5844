package problemgen

import (
	"fmt"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces randomized ratio questions.
// A Generator is not safe for concurrent use.
type Generator struct {
	cfg Config
	src rand.Source
	rng *rand.Rand
}

// New creates a Generator drawing from src.
func New(src rand.Source, cfg Config) *Generator {
	if len(cfg.Companies) == 0 {
		cfg.Companies = DefaultCompanies
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &Generator{
		cfg: cfg,
		src: src,
		rng: rand.New(src),
	}
}

// NewSeeded creates a Generator with a PCG source. A zero seed picks one
// from the clock, so runs differ unless a seed is given.
func NewSeeded(seed uint64, cfg Config) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15), cfg)
}

// Generate draws a question of type t. It panics if t is not one of
// AllRatioTypes or if the validator chain keeps rejecting the draws.
func (g *Generator) Generate(t RatioType) *Question {
	v := mustVariant(t)

	var lastErr *ValidationError
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		base := v.baseMin + g.rng.Int64N(v.baseMax-v.baseMin+1)
		target := distuv.Uniform{Min: v.targetMin, Max: v.targetMax, Src: g.src}.Rand()
		company := g.cfg.Companies[g.rng.IntN(len(g.cfg.Companies))]

		q := Build(t, company, base, target)
		if lastErr = g.validate(q); lastErr == nil {
			g.cfg.Logger.Debug().
				Str("ratio", t.Slug()).
				Str("company", company).
				Float64("target", target).
				Float64("answer", q.CorrectAnswer).
				Msg("question generated")
			return q
		}
		g.cfg.Logger.Warn().
			Str("ratio", t.Slug()).
			Int("attempt", attempt).
			Str("validator", lastErr.Validator).
			Msg(lastErr.Message)
	}
	panic(fmt.Sprintf("problemgen: %s failed validation after %d attempts: %v", t, g.cfg.MaxAttempts, lastErr))
}

// GenerateSet draws count questions of distinct types, in random order,
// with IDs 1..count. count is capped at the number of ratio types; a
// non-positive count gives an empty set.
func (g *Generator) GenerateSet(count int) []*Question {
	if count > len(AllRatioTypes) {
		count = len(AllRatioTypes)
	}
	if count <= 0 {
		return []*Question{}
	}

	order := g.rng.Perm(len(AllRatioTypes))
	questions := make([]*Question, 0, count)
	for i := 0; i < count; i++ {
		q := g.Generate(AllRatioTypes[order[i]])
		q.ID = i + 1
		questions = append(questions, q)
	}
	return questions
}

func (g *Generator) validate(q *Question) *ValidationError {
	for _, v := range g.cfg.Validators {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}

// Build assembles a question from an already drawn base amount and target.
// The second amount is derived from the target and truncated to whole
// dollars; the answer is then recomputed from the two integers.
func Build(t RatioType, company string, base int64, target float64) *Question {
	v := mustVariant(t)
	data := v.data(base, target)
	exact := v.value(data[0].Amount, data[1].Amount)

	bands := make([]Band, len(v.bands))
	copy(bands, v.bands)

	return &Question{
		Type:           t,
		Company:        company,
		Scenario:       v.scenario(company),
		Data:           data,
		Formula:        v.formula,
		CorrectAnswer:  Round(exact, v.precision),
		Tolerance:      v.tolerance,
		Interpretation: bands,
		Explanation:    v.narrative(exact),
	}
}

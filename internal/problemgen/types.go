package problemgen

import (
	"fmt"
	"strings"
)

// RatioType identifies one of the supported financial ratios.
type RatioType int

const (
	CurrentRatio RatioType = iota + 1
	DebtToEquity
	GrossProfitMargin
	ReturnOnEquity
	InventoryTurnover
)

// AllRatioTypes lists every ratio type in display order.
var AllRatioTypes = []RatioType{
	CurrentRatio,
	DebtToEquity,
	GrossProfitMargin,
	ReturnOnEquity,
	InventoryTurnover,
}

// String returns the display name, e.g. "Current Ratio".
func (t RatioType) String() string {
	if v, ok := variants[t]; ok {
		return v.name
	}
	return fmt.Sprintf("RatioType(%d)", int(t))
}

// Slug returns the stable identifier used on the command line and in
// exported records, e.g. "current_ratio".
func (t RatioType) Slug() string {
	if v, ok := variants[t]; ok {
		return v.slug
	}
	return fmt.Sprintf("ratio_%d", int(t))
}

// MarshalText encodes the type as its slug.
func (t RatioType) MarshalText() ([]byte, error) {
	if _, ok := variants[t]; !ok {
		return nil, fmt.Errorf("unknown ratio type %d", int(t))
	}
	return []byte(t.Slug()), nil
}

// UnmarshalText decodes a slug produced by MarshalText.
func (t *RatioType) UnmarshalText(b []byte) error {
	parsed, err := ParseRatioType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseRatioType resolves a slug ("gross_profit_margin"), a hyphenated
// slug ("gross-profit-margin") or a short alias ("gpm", "roe").
func ParseRatioType(s string) (RatioType, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")
	for _, t := range AllRatioTypes {
		v := variants[t]
		if key == v.slug || key == v.alias {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown ratio type %q", s)
}

// LineItem is a single named amount from a financial statement.
type LineItem struct {
	Name   string `json:"name" yaml:"name"`
	Amount int64  `json:"amount" yaml:"amount"`
}

// BandLevel is a qualitative interpretation level.
type BandLevel string

const (
	BandGood    BandLevel = "good"
	BandAverage BandLevel = "average"
	BandPoor    BandLevel = "poor"
)

// Title returns the level with an upper-case first letter.
func (l BandLevel) Title() string {
	if l == "" {
		return ""
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}

// Band pairs an interpretation level with its threshold description.
type Band struct {
	Level       BandLevel `json:"level" yaml:"level"`
	Description string    `json:"description" yaml:"description"`
}

// Question is a generated ratio problem. It is never modified after
// generation; callers share pointers freely.
type Question struct {
	// ID is the 1-based position within a question set, 0 when the
	// question was generated on its own.
	ID int `json:"id" yaml:"id"`

	Type     RatioType `json:"type" yaml:"type"`
	Company  string    `json:"company" yaml:"company"`
	Scenario string    `json:"scenario" yaml:"scenario"`

	// Data holds exactly two line items: the numerator source followed by
	// the denominator source (revenue first for gross profit margin).
	Data []LineItem `json:"data" yaml:"data"`

	Formula string `json:"formula" yaml:"formula"`

	// CorrectAnswer is recomputed from the integer amounts in Data and
	// rounded to the ratio's precision.
	CorrectAnswer float64 `json:"correct_answer" yaml:"correct_answer"`
	Tolerance     float64 `json:"tolerance" yaml:"tolerance"`

	Interpretation []Band `json:"interpretation" yaml:"interpretation"`
	Explanation    string `json:"explanation" yaml:"explanation"`
}

// Amount returns the amount of the named line item.
func (q *Question) Amount(name string) (int64, bool) {
	for _, item := range q.Data {
		if item.Name == name {
			return item.Amount, true
		}
	}
	return 0, false
}

// Precision returns the number of decimals CorrectAnswer is rounded to.
func (q *Question) Precision() int {
	return mustVariant(q.Type).precision
}

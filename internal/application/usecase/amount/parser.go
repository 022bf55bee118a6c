// Package amount normalizes free-form monetary text into a canonical decimal value.
package amount

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Parsed is the result of normalizing a free-form amount string. Value is
// math.NaN() when the input did not contain a parseable number; callers must
// treat that as an error condition distinct from zero.
type Parsed struct {
	Normalized string
	Value      float64
}

// IsNumber reports whether the input parsed to a usable numeric value.
func (p Parsed) IsNumber() bool {
	return !math.IsNaN(p.Value) && !math.IsInf(p.Value, 0)
}

// Decimal converts the normalized string to a decimal. It returns false when
// the input did not parse to a number.
func (p Parsed) Decimal() (decimal.Decimal, bool) {
	if !p.IsNumber() {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(p.Normalized)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// Parse normalizes a free-form amount string into a canonical decimal form.
//
// Separator disambiguation: when both ',' and '.' appear, '.' is a thousands
// separator (removed) and ',' the decimal point; a lone ',' is the decimal
// point; a lone '.' is left as-is. Any remaining character that is not a
// digit, '.', or '-' is stripped, and only the first decimal point survives.
//
// An empty or "null" input yields an empty normalized string and a NaN value;
// distinguishing "nothing typed" from "typed garbage" is the caller's job,
// based on the raw input.
func Parse(raw string) Parsed {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "null") {
		return Parsed{Normalized: "", Value: math.NaN()}
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	s = b.String()

	// Keep the first decimal point, fold the rest into the digits.
	if parts := strings.Split(s, "."); len(parts) > 2 {
		s = parts[0] + "." + strings.Join(parts[1:], "")
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Parsed{Normalized: s, Value: math.NaN()}
	}

	return Parsed{Normalized: s, Value: value}
}

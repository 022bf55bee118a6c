// Package amount normalizes free-form monetary text into a canonical decimal value.
package amount

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		normalized string
		value      float64
	}{
		{
			name:       "plain integer",
			raw:        "42",
			normalized: "42",
			value:      42,
		},
		{
			name:       "dot decimal",
			raw:        "12.50",
			normalized: "12.50",
			value:      12.5,
		},
		{
			name:       "comma decimal",
			raw:        "12,5",
			normalized: "12.5",
			value:      12.5,
		},
		{
			name:       "european thousands and comma decimal",
			raw:        "1.234,56",
			normalized: "1234.56",
			value:      1234.56,
		},
		{
			name:       "currency symbol stripped",
			raw:        "€ 19,99",
			normalized: "19.99",
			value:      19.99,
		},
		{
			name:       "trailing currency code stripped",
			raw:        "100 EUR",
			normalized: "100",
			value:      100,
		},
		{
			name:       "negative amount",
			raw:        "-7,25",
			normalized: "-7.25",
			value:      -7.25,
		},
		{
			name:       "surrounding whitespace",
			raw:        "  3,14  ",
			normalized: "3.14",
			value:      3.14,
		},
		{
			name:       "multiple dots keep first",
			raw:        "1.2.3",
			normalized: "1.23",
			value:      1.23,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got.Normalized != tt.normalized {
				t.Errorf("expected normalized %q, got %q", tt.normalized, got.Normalized)
			}
			if got.Value != tt.value {
				t.Errorf("expected value %v, got %v", tt.value, got.Value)
			}
			if !got.IsNumber() {
				t.Error("expected IsNumber to return true")
			}
		})
	}
}

func TestParse_NotANumber(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty string", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "null literal", raw: "null"},
		{name: "null uppercase", raw: "NULL"},
		{name: "letters only", raw: "abc"},
		{name: "lone separator", raw: ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if !math.IsNaN(got.Value) {
				t.Errorf("expected NaN value, got %v", got.Value)
			}
			if got.IsNumber() {
				t.Error("expected IsNumber to return false")
			}
			if _, ok := got.Decimal(); ok {
				t.Error("expected Decimal to report not ok")
			}
		})
	}
}

func TestParsed_Decimal(t *testing.T) {
	got := Parse("1.234,56")
	d, ok := got.Decimal()
	if !ok {
		t.Fatal("expected Decimal to report ok")
	}
	if d.StringFixed(2) != "1234.56" {
		t.Errorf("expected 1234.56, got %s", d.StringFixed(2))
	}
}

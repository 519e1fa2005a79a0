package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExactMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "identical", a: "x = 1\n", b: "x = 1\n", want: true},
		{name: "surrounding whitespace ignored", a: "\n\nx = 1\n  ", b: "x = 1", want: true},
		{name: "inner trailing spaces matter", a: "x = 1   \ny = 2\n", b: "x = 1\ny = 2\n", want: false},
		{name: "indentation matters", a: "if x:\n    y\n", b: "if x:\n  y\n", want: false},
		{name: "both empty", a: "", b: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExactMatch(tt.a, tt.b))
			assert.Equal(t, tt.want, ExactMatch(tt.b, tt.a))
		})
	}
}

func TestLineOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "one empty", a: "a\n", b: "", want: 0.0},
		{name: "identical", a: "a\nb\n", b: "a\nb\n", want: 1.0},
		{name: "positional", a: "a\nb\nc\n", b: "a\nx\nc\n", want: 2.0 / 3.0},
		{name: "shifted lines do not match", a: "a\nb\n", b: "z\na\nb\n", want: 0.0},
		{name: "longer side is the denominator", a: "a\n", b: "a\nb\nc\nd\n", want: 0.25},
		{name: "trailing spaces differ", a: "a   \nb\n", b: "a\nb\n", want: 0.5},
		{name: "crlf terminators ignored", a: "a\r\nb\r\n", b: "a\nb\n", want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, LineOverlap(tt.a, tt.b), 1e-9)
		})
	}
}

func TestNormalizedOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "one empty", a: "a\n", b: "", want: 0.0},
		{name: "whitespace differences vanish", a: "a   \n  b\n", b: "a\nb\n", want: 1.0},
		{name: "content differences remain", a: "  a\n  c\n", b: "a\nb\n", want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizedOverlap(tt.a, tt.b), 1e-9)
		})
	}
}

func TestOverlapBounds(t *testing.T) {
	texts := []string{"", "a\n", "a\nb\n", "  a\n b\nc", "\n\n\n", "x = 1\r\ny = 2\r\n"}

	for _, a := range texts {
		for _, b := range texts {
			lo := LineOverlap(a, b)
			no := NormalizedOverlap(a, b)

			assert.GreaterOrEqual(t, lo, 0.0)
			assert.LessOrEqual(t, lo, 1.0)
			assert.GreaterOrEqual(t, no, lo, "normalizing never lowers overlap for %q vs %q", a, b)
			assert.LessOrEqual(t, no, 1.0)
		}
	}
}

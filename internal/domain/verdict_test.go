package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "github.com/mouse-blink/applyeval/internal/model"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name        string
		applied     bool
		syntaxValid bool
		exact       bool
		similarity  float64
		want        bool
	}{
		{name: "exact", applied: true, syntaxValid: true, exact: true, similarity: 0.1, want: true},
		{name: "similar enough", applied: true, syntaxValid: true, similarity: 0.8, want: true},
		{name: "not similar enough", applied: true, syntaxValid: true, similarity: 0.79, want: false},
		{name: "not applied", applied: false, syntaxValid: true, exact: true, similarity: 1, want: false},
		{name: "syntax invalid", applied: true, syntaxValid: false, exact: true, similarity: 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.applied, tt.syntaxValid, tt.exact, tt.similarity, DefaultSimilarityThreshold)

			assert.Equal(t, m.Verdict{
				ApplySucceeded:     tt.applied,
				SyntaxValid:        tt.syntaxValid,
				ExactMatch:         tt.exact,
				SemanticSimilarity: tt.similarity,
				OverallSuccess:     tt.want,
			}, got)
		})
	}
}

func TestDecide_ExactAlwaysWinsOverThreshold(t *testing.T) {
	for _, threshold := range []float64{0, 0.5, 0.8, 1} {
		for _, similarity := range []float64{0, 0.3, 0.79, 1} {
			v := Decide(true, true, true, similarity, threshold)
			assert.True(t, v.OverallSuccess, "threshold %v similarity %v", threshold, similarity)
		}
	}
}

func TestDecide_ThresholdIsMonotonic(t *testing.T) {
	similarity := 0.85

	assert.True(t, Decide(true, true, false, similarity, 0.8).OverallSuccess)
	assert.True(t, Decide(true, true, false, similarity, 0.85).OverallSuccess)
	assert.False(t, Decide(true, true, false, similarity, 0.9).OverallSuccess)
}

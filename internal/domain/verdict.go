package domain

import m "github.com/mouse-blink/applyeval/internal/model"

// DefaultSimilarityThreshold is the structural similarity at or above which
// a non-exact candidate still counts as a success. It is a fixed policy,
// not tuned per example.
const DefaultSimilarityThreshold = 0.8

// Decide combines the four inputs into a Verdict:
//
//	overall = applied && syntaxValid && (exact || similarity >= threshold)
//
// A no-op apply never succeeds, even when the untouched file equals the target.
func Decide(applied, syntaxValid, exact bool, similarity, threshold float64) m.Verdict {
	return m.Verdict{
		ApplySucceeded:     applied,
		SyntaxValid:        syntaxValid,
		ExactMatch:         exact,
		SemanticSimilarity: similarity,
		OverallSuccess:     applied && syntaxValid && (exact || similarity >= threshold),
	}
}

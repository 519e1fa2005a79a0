package domain

import (
	"fmt"

	m "github.com/mouse-blink/applyeval/internal/model"
)

// Evaluation is everything the metric engine derives from one candidate.
type Evaluation struct {
	Apply   m.ApplyResult
	Metrics m.MetricSet
	Verdict m.Verdict
}

// Scorer runs locate-and-replace followed by every metric. It holds no
// state besides the threshold and is safe for concurrent use.
type Scorer struct {
	structure Structure
	threshold float64
}

// NewScorer creates a Scorer using threshold for the composite verdict.
func NewScorer(structure Structure, threshold float64) *Scorer {
	return &Scorer{structure: structure, threshold: threshold}
}

// Threshold returns the similarity threshold in use.
func (s *Scorer) Threshold() float64 {
	return s.threshold
}

// Score applies candidate to the function name in original and measures the
// result against target.
func (s *Scorer) Score(original, candidate, target, name string) (Evaluation, error) {
	result, err := Apply(original, name, candidate)
	if err != nil {
		return Evaluation{}, fmt.Errorf("score example: %w", err)
	}

	metrics := s.Measure(result.Applied.String(), target, name)

	return Evaluation{
		Apply:   result,
		Metrics: metrics,
		Verdict: Decide(result.Found, metrics.SyntaxValid, metrics.ExactMatch, metrics.SemanticSimilarity, s.threshold),
	}, nil
}

// Measure computes the metric set of an already applied text.
func (s *Scorer) Measure(applied, target, name string) m.MetricSet {
	syntaxOK, syntaxErr := s.structure.SyntaxValid(applied)

	return m.MetricSet{
		ExactMatch:         ExactMatch(applied, target),
		LineOverlap:        LineOverlap(applied, target),
		NormalizedOverlap:  NormalizedOverlap(applied, target),
		SyntaxValid:        syntaxOK,
		SyntaxError:        syntaxErr,
		FunctionPreserved:  s.structure.FunctionPreserved(applied, name),
		SemanticSimilarity: s.structure.SemanticSimilarity(applied, target),
	}
}

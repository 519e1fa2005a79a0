package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/applyeval/internal/adapter"
	m "github.com/mouse-blink/applyeval/internal/model"
)

func newTestScorer() *Scorer {
	return NewScorer(newTestStructure(), DefaultSimilarityThreshold)
}

func TestScorer_PerfectOutput(t *testing.T) {
	original := "def foo():\n    return 1\n"
	target := "def foo():\n    return 2\n"

	eval, err := newTestScorer().Score(original, target, target, "foo")
	require.NoError(t, err)

	assert.True(t, eval.Apply.Found)
	assert.True(t, eval.Metrics.ExactMatch)
	assert.InDelta(t, 1.0, eval.Metrics.LineOverlap, 1e-9)
	assert.InDelta(t, 1.0, eval.Metrics.SemanticSimilarity, 1e-9)
	assert.True(t, eval.Metrics.SyntaxValid)
	assert.True(t, eval.Metrics.FunctionPreserved)
	assert.True(t, eval.Verdict.OverallSuccess)
}

func TestScorer_TrailingWhitespace(t *testing.T) {
	original := "def foo():\n    x = 1\n    return x\n"
	target := "def foo():\n    x = 2\n    return x\n"
	candidate := "def foo():\n    x = 2   \n    return x\n"

	eval, err := newTestScorer().Score(original, candidate, target, "foo")
	require.NoError(t, err)

	assert.False(t, eval.Metrics.ExactMatch)
	assert.InDelta(t, 2.0/3.0, eval.Metrics.LineOverlap, 1e-9)
	assert.InDelta(t, 1.0, eval.Metrics.NormalizedOverlap, 1e-9)
	assert.InDelta(t, 1.0, eval.Metrics.SemanticSimilarity, 1e-9)
	assert.True(t, eval.Verdict.OverallSuccess)
}

func TestScorer_WrongBaseIndentation(t *testing.T) {
	ex := builtinExample(t, 7)

	eval, err := newTestScorer().Score(ex.OriginalFile, ex.ModelOutput, ex.TargetFile, ex.FunctionName)
	require.NoError(t, err)

	assert.True(t, eval.Apply.Found)
	assert.False(t, eval.Metrics.ExactMatch)
	assert.False(t, eval.Metrics.SyntaxValid)
	assert.Contains(t, eval.Metrics.SyntaxError, "unexpected indent")
	assert.InDelta(t, 0.0, eval.Metrics.SemanticSimilarity, 1e-9)
	assert.False(t, eval.Verdict.OverallSuccess)
}

func TestScorer_MissingFunction(t *testing.T) {
	original := "def foo():\n    return 1\n"
	candidate := "def bar():\n    return 2\n"

	eval, err := newTestScorer().Score(original, candidate, original, "bar")
	require.NoError(t, err)

	assert.False(t, eval.Apply.Found)
	assert.Equal(t, original, eval.Apply.Applied.String())
	assert.False(t, eval.Verdict.ApplySucceeded)
	// The untouched file equals the target, and the apply still fails.
	assert.True(t, eval.Metrics.ExactMatch)
	assert.False(t, eval.Verdict.OverallSuccess)
}

func TestScorer_SyntaxErrorInCandidate(t *testing.T) {
	original := "def foo():\n    return 0\n"
	target := "def foo():\n    return 1\n"

	eval, err := newTestScorer().Score(original, "def foo(:\n    return 1", target, "foo")
	require.NoError(t, err)

	assert.True(t, eval.Apply.Found)
	assert.False(t, eval.Metrics.SyntaxValid)
	assert.NotEmpty(t, eval.Metrics.SyntaxError)
	assert.InDelta(t, 0.0, eval.Metrics.SemanticSimilarity, 1e-9)
	assert.False(t, eval.Metrics.FunctionPreserved)
	assert.False(t, eval.Verdict.OverallSuccess)
}

func TestScorer_Threshold(t *testing.T) {
	original := "import os\n\ndef foo(a, b):\n    return a\n"
	target := "import os\n\ndef foo(a, b):\n    return a + b\n"
	candidate := "def foo(a, b):\n    return a - b\n"

	strict, err := NewScorer(newTestStructure(), 1).Score(original, candidate, target, "foo")
	require.NoError(t, err)

	lenient, err := NewScorer(newTestStructure(), 0.5).Score(original, candidate, target, "foo")
	require.NoError(t, err)

	assert.Equal(t, strict.Metrics, lenient.Metrics)
	assert.InDelta(t, 0.5, strict.Metrics.SemanticSimilarity, 1e-9)
	assert.False(t, strict.Verdict.OverallSuccess)
	assert.True(t, lenient.Verdict.OverallSuccess)
}

func TestScorer_BuiltinDatasetInvariants(t *testing.T) {
	examples, err := adapter.BuiltinDataset()
	require.NoError(t, err)

	scorer := newTestScorer()

	for _, ex := range examples {
		candidate := ex.ModelOutput
		if candidate == "" {
			candidate = ExtractFunction(ex.TargetFile, ex.FunctionName)
		}

		eval, err := scorer.Score(ex.OriginalFile, candidate, ex.TargetFile, ex.FunctionName)
		require.NoError(t, err, "example %d", ex.ID)

		v := eval.Verdict
		if v.OverallSuccess {
			assert.True(t, v.ApplySucceeded && v.SyntaxValid, "example %d", ex.ID)
		}

		if eval.Metrics.ExactMatch && v.ApplySucceeded && v.SyntaxValid {
			assert.True(t, v.OverallSuccess, "example %d", ex.ID)
		}

		if !eval.Apply.Found {
			assert.Equal(t, ex.OriginalFile, eval.Apply.Applied.String(), "example %d", ex.ID)
		}

		for name, value := range eval.Metrics.Values() {
			assert.GreaterOrEqual(t, value, 0.0, "example %d %s", ex.ID, name)
			assert.LessOrEqual(t, value, 1.0, "example %d %s", ex.ID, name)
		}
	}
}

func TestScorer_BuiltinKnownOutcomes(t *testing.T) {
	scorer := newTestScorer()

	easy := builtinExample(t, 1)
	eval, err := scorer.Score(easy.OriginalFile, easy.ModelOutput, easy.TargetFile, easy.FunctionName)
	require.NoError(t, err)
	assert.True(t, eval.Metrics.ExactMatch)
	assert.True(t, eval.Verdict.OverallSuccess)

	broken := builtinExample(t, 14)
	eval, err = scorer.Score(broken.OriginalFile, broken.ModelOutput, broken.TargetFile, broken.FunctionName)
	require.NoError(t, err)
	assert.False(t, eval.Metrics.SyntaxValid)
	assert.False(t, eval.Verdict.OverallSuccess)
}

func TestScorer_BuiltinExpectedOutcomes(t *testing.T) {
	tests := []struct {
		id      int
		overall bool
	}{
		{id: 1, overall: true},
		{id: 2, overall: true},
		{id: 3, overall: true},
		{id: 4, overall: true},
		{id: 5, overall: true},
		{id: 6, overall: true},
		{id: 7, overall: false},
		{id: 8, overall: true},
		{id: 9, overall: false},
		{id: 10, overall: true},
		{id: 11, overall: true},
		{id: 12, overall: true},
		{id: 13, overall: false},
		{id: 14, overall: false},
		{id: 15, overall: false},
		{id: 16, overall: true},
		{id: 17, overall: true},
		{id: 18, overall: true},
		{id: 19, overall: true},
		{id: 20, overall: false},
	}

	scorer := newTestScorer()

	for _, tt := range tests {
		t.Run(fmt.Sprintf("example %d", tt.id), func(t *testing.T) {
			ex := builtinExample(t, tt.id)

			candidate := ex.ModelOutput
			if candidate == "" {
				candidate = ExtractFunction(ex.TargetFile, ex.FunctionName)
			}

			eval, err := scorer.Score(ex.OriginalFile, candidate, ex.TargetFile, ex.FunctionName)
			require.NoError(t, err)

			assert.Equal(t, tt.overall, eval.Verdict.OverallSuccess,
				"similarity %.3f, syntax %q", eval.Metrics.SemanticSimilarity, eval.Metrics.SyntaxError)
		})
	}
}

func TestScorer_Measure(t *testing.T) {
	metrics := newTestScorer().Measure("def foo():\n    return 1\n", "def foo():\n    return 1\n", "foo")

	assert.Equal(t, m.MetricSet{
		ExactMatch:         true,
		LineOverlap:        1,
		NormalizedOverlap:  1,
		SyntaxValid:        true,
		FunctionPreserved:  true,
		SemanticSimilarity: 1,
	}, metrics)
}

func builtinExample(t *testing.T, id int) m.Example {
	t.Helper()

	examples, err := adapter.BuiltinDataset()
	require.NoError(t, err)

	for _, ex := range examples {
		if ex.ID == id {
			return ex
		}
	}

	t.Fatalf("builtin example %d not found", id)

	return m.Example{}
}

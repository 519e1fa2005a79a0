package model

// Metric names, shared by reports and telemetry scores.
const (
	MetricExactMatch         = "exact_match"
	MetricLineOverlap        = "line_overlap"
	MetricNormalizedOverlap  = "normalized_overlap"
	MetricSyntaxValid        = "syntax_valid"
	MetricFunctionPreserved  = "function_preserved"
	MetricSemanticSimilarity = "semantic_similarity"
	MetricApplySucceeded     = "apply_succeeded"
	MetricOverallSuccess     = "overall_success"
	MetricJudgeScore         = "judge_score"
	MetricJudgeIsCorrect     = "judge_is_correct"
)

// MetricSet holds the metrics computed once for an (applied, target) pair.
type MetricSet struct {
	ExactMatch         bool    `yaml:"exact_match" json:"exact_match"`
	LineOverlap        float64 `yaml:"line_overlap" json:"line_overlap"`
	NormalizedOverlap  float64 `yaml:"normalized_overlap" json:"normalized_overlap"`
	SyntaxValid        bool    `yaml:"syntax_valid" json:"syntax_valid"`
	SyntaxError        string  `yaml:"syntax_error,omitempty" json:"syntax_error,omitempty"`
	FunctionPreserved  bool    `yaml:"function_preserved" json:"function_preserved"`
	SemanticSimilarity float64 `yaml:"semantic_similarity" json:"semantic_similarity"`
}

// Values flattens the set into named numbers; booleans become 0 or 1.
func (ms MetricSet) Values() map[string]float64 {
	return map[string]float64{
		MetricExactMatch:         boolValue(ms.ExactMatch),
		MetricLineOverlap:        ms.LineOverlap,
		MetricNormalizedOverlap:  ms.NormalizedOverlap,
		MetricSyntaxValid:        boolValue(ms.SyntaxValid),
		MetricFunctionPreserved:  boolValue(ms.FunctionPreserved),
		MetricSemanticSimilarity: ms.SemanticSimilarity,
	}
}

// Verdict is the composite pass/fail judgment. Only domain.Decide builds one.
type Verdict struct {
	ApplySucceeded     bool    `yaml:"apply_succeeded" json:"apply_succeeded"`
	SyntaxValid        bool    `yaml:"syntax_valid" json:"syntax_valid"`
	ExactMatch         bool    `yaml:"exact_match" json:"exact_match"`
	SemanticSimilarity float64 `yaml:"semantic_similarity" json:"semantic_similarity"`
	OverallSuccess     bool    `yaml:"overall_success" json:"overall_success"`
}

// JudgeOpinion is the advisory output of an external judge model. It never
// feeds into Verdict.
type JudgeOpinion struct {
	Model     string  `yaml:"model" json:"model"`
	IsCorrect bool    `yaml:"is_correct" json:"is_correct"`
	Score     float64 `yaml:"score" json:"score"`
	Reason    string  `yaml:"reason,omitempty" json:"reason,omitempty"`
	Err       string  `yaml:"error,omitempty" json:"error,omitempty"`
}

// Failed reports whether the judge call did not produce an opinion.
func (o JudgeOpinion) Failed() bool {
	return o.Err != ""
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

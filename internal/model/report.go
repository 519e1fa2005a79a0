package model

import "time"

// Mode selects where candidate code comes from.
type Mode string

const (
	// ModeSimulated reads candidates from the dataset.
	ModeSimulated Mode = "simulated"
	// ModeReal asks a code model for each candidate.
	ModeReal Mode = "real"
)

// SimulatedModel is the code model label used in simulated mode.
const SimulatedModel = "simulated"

// Report is the evaluation of one example against one code model.
type Report struct {
	ExampleID       int           `yaml:"example_id"`
	CodeModel       string        `yaml:"code_model"`
	Difficulty      Difficulty    `yaml:"difficulty"`
	FunctionName    string        `yaml:"function_name"`
	Tags            []string      `yaml:"tags,omitempty"`
	ExpectedSuccess bool          `yaml:"expected_success"`
	Candidate       string        `yaml:"candidate,omitempty"`
	AppliedFile     string        `yaml:"applied_file,omitempty"`
	TargetFile      string        `yaml:"target_file,omitempty"`
	Span            *FunctionSpan `yaml:"span,omitempty"`
	Metrics         MetricSet     `yaml:"metrics"`
	Verdict         Verdict       `yaml:"verdict"`
	// Judges maps judge model name to its opinion.
	Judges            map[string]JudgeOpinion `yaml:"judges,omitempty"`
	OutcomeAsExpected bool                    `yaml:"outcome_as_expected"`
	FailureReason     string                  `yaml:"failure_reason,omitempty"`
	// ModelError is set when no candidate could be obtained; scoring was skipped.
	ModelError string `yaml:"model_error,omitempty"`
}

// Scored reports whether the candidate went through apply and scoring.
func (r Report) Scored() bool {
	return r.ModelError == ""
}

// Bucket counts outcomes within a difficulty or tag.
type Bucket struct {
	Total       int `yaml:"total"`
	Exact       int `yaml:"exact"`
	SyntaxValid int `yaml:"syntax_valid"`
	Success     int `yaml:"success"`
}

// JudgeStats aggregates one judge model's opinions.
type JudgeStats struct {
	Count   int     `yaml:"count"`
	Correct int     `yaml:"correct"`
	Failed  int     `yaml:"failed"`
	Sum     float64 `yaml:"sum"`
}

// Average returns the mean score over successful opinions.
func (j JudgeStats) Average() float64 {
	if j.Count == 0 {
		return 0
	}

	return j.Sum / float64(j.Count)
}

// ModelSummary aggregates all reports of a single code model.
type ModelSummary struct {
	CodeModel             string                `yaml:"code_model"`
	Total                 int                   `yaml:"total"`
	ModelFailures         int                   `yaml:"model_failures"`
	ExactMatches          int                   `yaml:"exact_matches"`
	OverallSuccess        int                   `yaml:"overall_success"`
	ApplySucceeded        int                   `yaml:"apply_succeeded"`
	SyntaxValid           int                   `yaml:"syntax_valid"`
	FunctionPreserved     int                   `yaml:"function_preserved"`
	OutcomeAsExpected     int                   `yaml:"outcome_as_expected"`
	LineOverlapSum        float64               `yaml:"line_overlap_sum"`
	NormalizedOverlapSum  float64               `yaml:"normalized_overlap_sum"`
	SemanticSimilaritySum float64               `yaml:"semantic_similarity_sum"`
	ByDifficulty          map[Difficulty]Bucket `yaml:"by_difficulty"`
	ByTag                 map[string]Bucket     `yaml:"by_tag"`
	Judges                map[string]JudgeStats `yaml:"judges,omitempty"`
}

// Rate returns n as a fraction of the scored total.
func (s ModelSummary) Rate(n int) float64 {
	if s.Total == 0 {
		return 0
	}

	return float64(n) / float64(s.Total)
}

// Mean returns sum averaged over the scored total.
func (s ModelSummary) Mean(sum float64) float64 {
	if s.Total == 0 {
		return 0
	}

	return sum / float64(s.Total)
}

// RunConfig echoes the settings a run was started with.
type RunConfig struct {
	Mode        Mode     `yaml:"mode"`
	CodeModels  []string `yaml:"code_models"`
	JudgeModels []string `yaml:"judge_models,omitempty"`
	Difficulty  string   `yaml:"difficulty,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Limit       int      `yaml:"limit,omitempty"`
	Threads     int      `yaml:"threads"`
	Threshold   float64  `yaml:"threshold"`
}

// RunReport is everything a run produced.
type RunReport struct {
	ID        string         `yaml:"id"`
	Timestamp time.Time      `yaml:"timestamp"`
	Config    RunConfig      `yaml:"config"`
	Reports   []Report       `yaml:"reports"`
	Summaries []ModelSummary `yaml:"summaries"`
}

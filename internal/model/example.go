package model

// Difficulty grades how hard a dataset example is for the apply mechanism.
type Difficulty string

const (
	// DifficultyEasy is a perfect model output on a simple function.
	DifficultyEasy Difficulty = "easy"
	// DifficultyMedium has minor imperfections (whitespace, formatting).
	DifficultyMedium Difficulty = "medium"
	// DifficultyHard has significant issues (wrong indentation, partial code).
	DifficultyHard Difficulty = "hard"
	// DifficultyAdversarial is designed to break a naive apply.
	DifficultyAdversarial Difficulty = "adversarial"
)

// Difficulties lists every difficulty in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyAdversarial}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}

	return false
}

// Example is a single evaluation case. ModelOutput is kept apart from
// TargetFile so imperfect candidates can be scored against a clean target.
type Example struct {
	ID              int        `yaml:"id"`
	Language        string     `yaml:"language,omitempty"`
	OriginalFile    string     `yaml:"original_file"`
	TargetFile      string     `yaml:"target_file"`
	UserPrompt      string     `yaml:"user_prompt"`
	FunctionName    string     `yaml:"expected_function_name"`
	ModelOutput     string     `yaml:"model_output,omitempty"`
	Difficulty      Difficulty `yaml:"difficulty"`
	ExpectedSuccess bool       `yaml:"expected_success"`
	FailureReason   string     `yaml:"failure_reason,omitempty"`
	Tags            []string   `yaml:"tags,omitempty"`
}

// HasTag reports whether the example carries tag.
func (e Example) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// TagCount is the number of examples carrying one tag.
type TagCount struct {
	Tag   string
	Count int
}

// DatasetSummary describes a dataset by difficulty, expected outcome and tag.
type DatasetSummary struct {
	Total           int
	ByDifficulty    map[Difficulty]int
	ExpectedSuccess int
	ExpectedFailure int
	// Tags is ordered by descending count, then by name.
	Tags []TagCount
}

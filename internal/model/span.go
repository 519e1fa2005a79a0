package model

import "fmt"

// FunctionSpan is the half-open line range [StartLine, EndLine) occupied by a
// function definition and its body, plus the indentation column of its
// def line.
type FunctionSpan struct {
	StartLine  int `yaml:"start_line" json:"start_line"`
	EndLine    int `yaml:"end_line" json:"end_line"`
	BaseIndent int `yaml:"base_indent" json:"base_indent"`
}

// Validate reports a broken span invariant. A failure here is a defect in the
// scanner, not a property of the input.
func (s FunctionSpan) Validate(lineCount int) error {
	if s.BaseIndent < 0 {
		return fmt.Errorf("negative base indent %d", s.BaseIndent)
	}

	if s.StartLine < 0 || s.StartLine >= s.EndLine || s.EndLine > lineCount {
		return fmt.Errorf("span [%d, %d) out of range for %d lines", s.StartLine, s.EndLine, lineCount)
	}

	return nil
}

// ApplyResult is the outcome of locating and replacing a function.
// Found == false means Applied is the original text, untouched.
type ApplyResult struct {
	Applied SourceText
	Found   bool
	Span    *FunctionSpan
}

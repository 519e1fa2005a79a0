// Package controller provides output adapters for displaying apply evaluation results.
package controller

import (
	m "github.com/mouse-blink/applyeval/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeStatic StartMode = iota
	ModeRun
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithStaticMode renders one-shot output (dataset listing, saved runs, apply and score results).
func WithStaticMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeStatic
	}
}

// WithRunMode sets the UI to live evaluation progress.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeStatic}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// RunInfo describes an evaluation run before it starts.
type RunInfo struct {
	RunID       string
	Mode        m.Mode
	CodeModels  []string
	JudgeModels []string
	Examples    int
	Threads     int
	Threshold   float64
}

// ScoreResult is the metric engine output for two files scored directly.
type ScoreResult struct {
	Applied  m.Path
	Target   m.Path
	Function string
	Metrics  m.MetricSet
	Verdict  m.Verdict
}

// ApplyOutcome is the result of applying a replacement to a file on disk.
type ApplyOutcome struct {
	File     m.File
	Function string
	Result   m.ApplyResult
	Written  bool
}

// UI defines the interface for displaying evaluation progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayRunInfo(info RunInfo)
	DisplayExampleStarted(ex m.Example, codeModel string, worker int)
	DisplayExampleCompleted(report m.Report)
	DisplayModelSummary(summary m.ModelSummary)
	DisplayRunSaved(path m.Path)
	DisplayDataset(summary m.DatasetSummary) error
	DisplayRun(run m.RunReport, showDiff bool) error
	DisplayApply(outcome ApplyOutcome) error
	DisplayScore(result ScoreResult) error
}

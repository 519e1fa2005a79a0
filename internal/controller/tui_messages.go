package controller

import (
	"time"

	m "github.com/mouse-blink/applyeval/internal/model"
)

// Message types.
type tickMsg time.Time

type runInfoMsg struct {
	info RunInfo
}

type startExampleMsg struct {
	exampleID  int
	worker     int
	codeModel  string
	function   string
	difficulty m.Difficulty
}

type completedExampleMsg struct {
	report m.Report
}

type summaryMsg struct {
	summary m.ModelSummary
}

type savedMsg struct {
	path m.Path
}

type runFinishedMsg struct{}

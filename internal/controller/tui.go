package controller

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "github.com/mouse-blink/applyeval/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
// Static output is delegated to a SimpleUI on the same writer.
type TUI struct {
	output  io.Writer
	static  *SimpleUI
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, static: newSimpleUIWriter(output)}
}

// Start initializes the UI. In run mode it launches the live progress program.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	if cfg.mode != ModeRun {
		return nil
	}

	model := newRunModel()

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model = model.handleWindowSize(tea.WindowSizeMsg{Width: width, Height: height})
		}
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	done := make(chan struct{})

	t.mu.Lock()
	t.program = program
	t.done = done
	t.mu.Unlock()

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

// Close signals the end of the run.
func (t *TUI) Close() {
	t.send(runFinishedMsg{})
}

// Wait blocks until the user leaves the results view.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// DisplayRunInfo shows the run header.
func (t *TUI) DisplayRunInfo(info RunInfo) {
	t.send(runInfoMsg{info: info})
}

// DisplayExampleStarted marks a worker busy with an example.
func (t *TUI) DisplayExampleStarted(ex m.Example, codeModel string, worker int) {
	t.send(startExampleMsg{
		exampleID:  ex.ID,
		worker:     worker,
		codeModel:  codeModel,
		function:   ex.FunctionName,
		difficulty: ex.Difficulty,
	})
}

// DisplayExampleCompleted adds a finished report to the results.
func (t *TUI) DisplayExampleCompleted(report m.Report) {
	t.send(completedExampleMsg{report: report})
}

// DisplayModelSummary records the aggregate of one code model.
func (t *TUI) DisplayModelSummary(summary m.ModelSummary) {
	t.send(summaryMsg{summary: summary})
}

// DisplayRunSaved records where the run was archived.
func (t *TUI) DisplayRunSaved(path m.Path) {
	t.send(savedMsg{path: path})
}

// DisplayDataset prints the dataset summary.
func (t *TUI) DisplayDataset(summary m.DatasetSummary) error {
	return t.static.DisplayDataset(summary)
}

// DisplayRun prints a saved run.
func (t *TUI) DisplayRun(run m.RunReport, showDiff bool) error {
	return t.static.DisplayRun(run, showDiff)
}

// DisplayApply prints the apply outcome.
func (t *TUI) DisplayApply(outcome ApplyOutcome) error {
	return t.static.DisplayApply(outcome)
}

// DisplayScore prints the metric table.
func (t *TUI) DisplayScore(result ScoreResult) error {
	return t.static.DisplayScore(result)
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/applyeval/internal/domain"
	domainmocks "github.com/mouse-blink/applyeval/internal/domain/mocks"
	m "github.com/mouse-blink/applyeval/internal/model"
)

func TestViewCmd_UsesReportsDirByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().View(domain.ViewArgs{Path: m.Path(defaultReportsDir)}).Return(nil)

	cmd := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ReportsFlagIsPassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().View(domain.ViewArgs{Path: "./reports-dir", ShowDiff: true}).Return(nil)

	cmd := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"--reports", "./reports-dir", "view", "--diff"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_ExplicitFile(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().View(domain.ViewArgs{Path: "runs/run-1.yaml"}).Return(nil)

	cmd := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view", "runs/run-1.yaml"})
	require.NoError(t, cmd.Execute())
}

func TestViewCmd_TooManyArgs(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd := newTestRoot(newViewCmd())
	cmd.SetArgs([]string{"view", "a.yaml", "b.yaml"})
	require.Error(t, cmd.Execute())
}

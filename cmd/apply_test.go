package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/applyeval/internal/domain"
	domainmocks "github.com/mouse-blink/applyeval/internal/domain/mocks"
)

func TestApplyCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Apply(domain.ApplyArgs{
		File:        "shapes.py",
		Function:    "area",
		Replacement: "area.py",
		Write:       true,
	}).Return(nil)

	cmd := newTestRoot(newApplyCmd())
	cmd.SetArgs([]string{"apply", "shapes.py", "-f", "area", "--replacement", "area.py", "--write"})
	require.NoError(t, cmd.Execute())
}

func TestApplyCmd_RequiresFlags(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd := newTestRoot(newApplyCmd())
	cmd.SetArgs([]string{"apply", "shapes.py", "--replacement", "area.py"})
	assert.Error(t, cmd.Execute())

	cmd = newTestRoot(newApplyCmd())
	cmd.SetArgs([]string{"apply", "-f", "area", "--replacement", "area.py"})
	assert.Error(t, cmd.Execute())
}

func TestScoreCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Score(domain.ScoreArgs{
		Applied:   "applied.py",
		Target:    "target.py",
		Function:  "foo",
		Threshold: 0.9,
	}).Return(nil)

	cmd := newTestRoot(newScoreCmd())
	cmd.SetArgs([]string{"score", "--applied", "applied.py", "--target", "target.py", "-f", "foo", "--threshold", "0.9"})
	require.NoError(t, cmd.Execute())
}

func TestScoreCmd_DefaultThreshold(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Score(domain.ScoreArgs{
		Applied:   "a.py",
		Target:    "b.py",
		Function:  "foo",
		Threshold: domain.DefaultSimilarityThreshold,
	}).Return(errBoom)

	cmd := newTestRoot(newScoreCmd())
	cmd.SetArgs([]string{"score", "--applied", "a.py", "--target", "b.py", "--function", "foo"})
	assert.ErrorIs(t, cmd.Execute(), errBoom)
}

func TestScoreCmd_RequiresFlags(t *testing.T) {
	useWorkflow(t, domainmocks.NewMockWorkflow(t))

	cmd := newTestRoot(newScoreCmd())
	cmd.SetArgs([]string{"score", "--applied", "a.py"})
	assert.Error(t, cmd.Execute())
}

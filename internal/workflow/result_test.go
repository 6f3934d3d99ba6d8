package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"backport.dev/backport/internal/patch"
	"backport.dev/backport/internal/workflow"
)

func TestStepResultStatus(t *testing.T) {
	require.Equal(t, "discarded (dry run)", workflow.StepResult{Discarded: true}.Status())
	require.Equal(t, "skipped (no diff)", workflow.StepResult{DiffEmpty: true}.Status())
	require.Equal(t, "pushed", workflow.StepResult{Committed: true, Pushed: true}.Status())
	require.Equal(t, "committed", workflow.StepResult{Committed: true}.Status())
}

func TestStepResultCounts(t *testing.T) {
	result := workflow.StepResult{
		Documents: []patch.Result{
			{Found: 1, Total: 2},
			{Found: 1, Total: 1},
		},
	}
	require.Equal(t, 2, result.Found())
	require.Equal(t, 3, result.Total())
}

func TestSummaryPushedCount(t *testing.T) {
	summary := &workflow.Summary{
		Results: []workflow.StepResult{
			{Pushed: true},
			{DiffEmpty: true},
			{Pushed: true},
		},
	}
	require.Equal(t, 2, summary.PushedCount())
}

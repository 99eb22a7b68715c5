package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflow_DisplayName(t *testing.T) {
	testCases := []struct {
		name     string
		workflow *Workflow
		expected string
	}{
		{
			name:     "named workflow",
			workflow: &Workflow{Name: "Order Sync"},
			expected: "Order Sync",
		},
		{
			name:     "unnamed workflow",
			workflow: &Workflow{},
			expected: DefaultWorkflowName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.workflow.DisplayName())
		})
	}
}

func TestWorkflow_ErrorWorkflow(t *testing.T) {
	testCases := []struct {
		name     string
		settings map[string]any
		expected string
	}{
		{
			name:     "configured",
			settings: map[string]any{"errorWorkflow": "wf_123"},
			expected: "wf_123",
		},
		{
			name:     "absent",
			settings: map[string]any{},
			expected: "",
		},
		{
			name:     "nil settings",
			settings: nil,
			expected: "",
		},
		{
			name:     "not a string",
			settings: map[string]any{"errorWorkflow": 42},
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			workflow := &Workflow{Settings: tc.settings}
			assert.Equal(t, tc.expected, workflow.ErrorWorkflow())
		})
	}
}

func TestNode_DisplayName(t *testing.T) {
	named := &Node{Name: "Incoming Hook"}
	assert.Equal(t, "Incoming Hook", named.DisplayName())

	unnamed := &Node{}
	assert.Equal(t, DefaultNodeName, unnamed.DisplayName())
}

func TestNode_ResponseMode(t *testing.T) {
	node := &Node{Parameters: map[string]any{"responseMode": "responseNode"}}
	assert.Equal(t, "responseNode", node.ResponseMode())

	assert.Empty(t, (&Node{}).ResponseMode())
	assert.Empty(t, (&Node{Parameters: map[string]any{"responseMode": 1}}).ResponseMode())
}

func TestNode_Options(t *testing.T) {
	node := &Node{Parameters: map[string]any{
		"options": map[string]any{"timeout": float64(30)},
	}}
	assert.Equal(t, float64(30), node.Options()["timeout"])

	assert.Nil(t, (&Node{}).Options())
	assert.Nil(t, (&Node{Parameters: map[string]any{"options": "nope"}}).Options())
}

func TestValidationReport_Counts(t *testing.T) {
	report := &ValidationReport{
		WorkflowName: "wf",
		Issues: []Issue{
			{Rule: "a", Severity: SeverityWarning},
			{Rule: "b", Severity: SeverityError},
			{Rule: "c", Severity: SeverityWarning},
		},
	}

	assert.Equal(t, 1, report.ErrorCount())
	assert.Equal(t, 2, report.WarningCount())
	assert.False(t, report.IsValid())
}

func TestValidationReport_WarningsDoNotInvalidate(t *testing.T) {
	report := &ValidationReport{
		WorkflowName: "wf",
		Issues: []Issue{
			{Rule: "a", Severity: SeverityWarning},
			{Rule: "b", Severity: SeverityWarning},
		},
	}

	assert.True(t, report.IsValid())
	assert.Equal(t, 0, report.ErrorCount())
	assert.Equal(t, 2, report.WarningCount())
}

func TestValidationReport_Empty(t *testing.T) {
	report := &ValidationReport{WorkflowName: "wf"}

	assert.True(t, report.IsValid())
	assert.Equal(t, 0, report.ErrorCount())
	assert.Equal(t, 0, report.WarningCount())
}

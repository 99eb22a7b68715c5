package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8nlint/n8nlint/pkg/models"
)

func TestErrorHandling_NoErrorHandling(t *testing.T) {
	rule := NewErrorHandling(DefaultCatalog())

	workflow := &models.Workflow{
		Name: "No Handling",
		Nodes: []*models.Node{
			{ID: "1", Name: "Start", Type: "n8n-nodes-base.manualTrigger"},
			{ID: "2", Name: "HTTP", Type: "n8n-nodes-base.httpRequest"},
		},
	}

	issues, err := rule.Evaluate(workflow)
	require.NoError(t, err)
	require.Len(t, issues, 1)

	assert.Equal(t, ErrorHandlingRuleID, issues[0].Rule)
	assert.Equal(t, models.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "no error handling")
	assert.NotEmpty(t, issues[0].Suggestion)
	assert.Empty(t, issues[0].NodeName)
}

func TestErrorHandling_ErrorTriggerNode(t *testing.T) {
	rule := NewErrorHandling(DefaultCatalog())

	workflow := &models.Workflow{
		Name: "With Trigger",
		Nodes: []*models.Node{
			{ID: "1", Name: "On Error", Type: "n8n-nodes-base.errorTrigger"},
		},
	}

	issues, err := rule.Evaluate(workflow)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestErrorHandling_ErrorWorkflowSetting(t *testing.T) {
	rule := NewErrorHandling(DefaultCatalog())

	workflow := &models.Workflow{
		Name: "With Setting",
		Nodes: []*models.Node{
			{ID: "1", Name: "Start", Type: "n8n-nodes-base.manualTrigger"},
		},
		Settings: map[string]any{"errorWorkflow": "wf_123"},
	}

	issues, err := rule.Evaluate(workflow)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestErrorHandling_EmptyErrorWorkflowSetting(t *testing.T) {
	rule := NewErrorHandling(DefaultCatalog())

	workflow := &models.Workflow{
		Name:     "Empty Setting",
		Settings: map[string]any{"errorWorkflow": ""},
	}

	issues, err := rule.Evaluate(workflow)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, ErrorHandlingRuleID, issues[0].Rule)
}

func TestErrorHandling_EmptyWorkflow(t *testing.T) {
	rule := NewErrorHandling(DefaultCatalog())

	issues, err := rule.Evaluate(&models.Workflow{})
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, models.SeverityWarning, issues[0].Severity)
}

func TestErrorHandling_ID(t *testing.T) {
	assert.Equal(t, "error-handling", NewErrorHandling(DefaultCatalog()).ID())
}

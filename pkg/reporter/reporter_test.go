package reporter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n8nlint/n8nlint/pkg/models"
)

func sampleReport() *models.ValidationReport {
	return &models.ValidationReport{
		WorkflowName: "Order Sync",
		Issues: []models.Issue{
			{
				Rule:       "error-handling",
				Severity:   models.SeverityWarning,
				Message:    "Workflow has no error handling.",
				Suggestion: "Add an Error Trigger node.",
			},
			{
				Rule:       "webhook-timeout",
				Severity:   models.SeverityWarning,
				Message:    "Webhook 'Hook' waits for response but has no timeout configured.",
				NodeName:   "Hook",
				Suggestion: "Configure a timeout.",
			},
		},
	}
}

func TestText_WithIssues(t *testing.T) {
	out := Text(sampleReport())

	assert.Contains(t, out, "Validation Report: Order Sync")
	assert.Contains(t, out, "Status: VALID (no errors)")
	assert.Contains(t, out, "Issues: 2 (0 errors, 2 warnings)")
	assert.Contains(t, out, "Issues Found:")
	assert.Contains(t, out, "1. [WARNING] error-handling")
	assert.Contains(t, out, "2. [WARNING] webhook-timeout (node: Hook)")
	assert.Contains(t, out, "Suggestion: Add an Error Trigger node.")
	assert.NotContains(t, out, "No issues found.")
}

func TestText_Clean(t *testing.T) {
	out := Text(&models.ValidationReport{WorkflowName: "Clean"})

	assert.Contains(t, out, "Validation Report: Clean")
	assert.Contains(t, out, "Status: VALID (no errors)")
	assert.Contains(t, out, "Issues: 0 (0 errors, 0 warnings)")
	assert.Contains(t, out, "No issues found.")
}

func TestText_Invalid(t *testing.T) {
	report := &models.ValidationReport{
		WorkflowName: "Broken",
		Issues: []models.Issue{
			{Rule: "some-rule", Severity: models.SeverityError, Message: "bad"},
		},
	}

	out := Text(report)

	assert.Contains(t, out, "Status: INVALID (errors found)")
	assert.Contains(t, out, "1. [ERROR] some-rule")
}

func TestJSON_Lossless(t *testing.T) {
	report := sampleReport()
	document := JSON(report)

	assert.Equal(t, "Order Sync", document.WorkflowName)
	assert.True(t, document.IsValid)
	assert.Equal(t, 2, document.Summary.TotalIssues)
	assert.Equal(t, 0, document.Summary.Errors)
	assert.Equal(t, 2, document.Summary.Warnings)
	assert.Equal(t, report.Issues, document.Issues)
}

func TestJSON_EmptyIssuesIsArray(t *testing.T) {
	document := JSON(&models.ValidationReport{WorkflowName: "Clean"})

	assert.NotNil(t, document.Issues)
	assert.Empty(t, document.Issues)
}

func TestJSONString_RoundTrip(t *testing.T) {
	out, err := JSONString(sampleReport())
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "Order Sync", decoded.WorkflowName)
	require.Len(t, decoded.Issues, 2)
	assert.Equal(t, "webhook-timeout", decoded.Issues[1].Rule)
	assert.Equal(t, "Hook", decoded.Issues[1].NodeName)
	assert.Equal(t, "Configure a timeout.", decoded.Issues[1].Suggestion)
}

// Package reporter renders validation reports for humans and machines.
package reporter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/n8nlint/n8nlint/pkg/models"
)

// Document is the machine-readable form of a validation report. It carries
// everything needed to reconstruct the report: workflow name, validity,
// counts, and every issue with its rule, severity, message, and suggestion.
type Document struct {
	WorkflowName string         `json:"workflow_name"`
	IsValid      bool           `json:"is_valid"`
	Summary      Summary        `json:"summary"`
	Issues       []models.Issue `json:"issues"`
}

// Summary carries the derived issue counts.
type Summary struct {
	TotalIssues int `json:"total_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
}

// JSON converts a report to its machine-readable document.
func JSON(report *models.ValidationReport) Document {
	issues := report.Issues
	if issues == nil {
		issues = []models.Issue{}
	}

	return Document{
		WorkflowName: report.WorkflowName,
		IsValid:      report.IsValid(),
		Summary: Summary{
			TotalIssues: len(report.Issues),
			Errors:      report.ErrorCount(),
			Warnings:    report.WarningCount(),
		},
		Issues: issues,
	}
}

// JSONString renders the machine-readable document as pretty-printed JSON.
func JSONString(report *models.ValidationReport) (string, error) {
	data, err := json.MarshalIndent(JSON(report), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	return string(data), nil
}

// Text renders a human-readable report with numbered issues and their
// remediation suggestions.
func Text(report *models.ValidationReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Validation Report: %s\n", report.WorkflowName)
	b.WriteString(strings.Repeat("=", 50) + "\n")

	if report.IsValid() {
		b.WriteString("Status: VALID (no errors)\n")
	} else {
		b.WriteString("Status: INVALID (errors found)\n")
	}

	fmt.Fprintf(&b, "Issues: %d (%d errors, %d warnings)\n\n",
		len(report.Issues), report.ErrorCount(), report.WarningCount())

	if len(report.Issues) == 0 {
		b.WriteString("No issues found.")

		return b.String()
	}

	b.WriteString("Issues Found:\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")

	for i, issue := range report.Issues {
		headline := fmt.Sprintf("%d. [%s] %s", i+1, strings.ToUpper(string(issue.Severity)), issue.Rule)
		if issue.NodeName != "" {
			headline += fmt.Sprintf(" (node: %s)", issue.NodeName)
		}

		b.WriteString(headline + "\n")
		fmt.Fprintf(&b, "   %s\n", issue.Message)

		if issue.Suggestion != "" {
			fmt.Fprintf(&b, "   Suggestion: %s\n", issue.Suggestion)
		}

		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

package models

// Severity represents the weight of a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"   // Hard correctness violation, fails validation
	SeverityWarning Severity = "warning" // Advisory finding, does not fail validation
	SeverityInfo    Severity = "info"    // Reserved for informational findings
)

// Issue is a single validation finding. Issues are value objects: created by
// rule evaluation and never mutated afterward.
type Issue struct {
	Rule       string   `json:"rule"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	NodeName   string   `json:"node_name,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// ValidationReport aggregates every finding from one validation run against
// one workflow. Issue order follows rule registration order, then emission
// order within a rule.
type ValidationReport struct {
	WorkflowName string  `json:"workflow_name"`
	Issues       []Issue `json:"issues"`
}

// IsValid reports whether the workflow passed validation. Only error-level
// issues invalidate a workflow; warnings do not.
func (r *ValidationReport) IsValid() bool {
	return r.ErrorCount() == 0
}

// ErrorCount returns the number of error-level issues.
func (r *ValidationReport) ErrorCount() int {
	return r.countBySeverity(SeverityError)
}

// WarningCount returns the number of warning-level issues.
func (r *ValidationReport) WarningCount() int {
	return r.countBySeverity(SeverityWarning)
}

func (r *ValidationReport) countBySeverity(severity Severity) int {
	count := 0

	for _, issue := range r.Issues {
		if issue.Severity == severity {
			count++
		}
	}

	return count
}

// Package rules implements the workflow validation rule engine
package rules

import (
	"fmt"

	"github.com/n8nlint/n8nlint/pkg/models"
)

// Rule is a single unit of validation logic. Evaluate inspects the given
// workflow and returns the findings it produced, in emission order.
//
// Evaluate must be a pure function of the workflow: no I/O, no mutation of
// the workflow, no dependency on other rules. A rule that finds nothing
// returns an empty (or nil) slice. The error return is reserved for contract
// violations that make evaluation impossible; it is never used to express a
// finding.
type Rule interface {
	ID() string
	Evaluate(workflow *models.Workflow) ([]models.Issue, error)
}

// EvaluationError reports that a rule failed to evaluate. It indicates a
// defect in the rule or an upstream contract violation by the loader, not a
// workflow-quality finding.
type EvaluationError struct {
	RuleID string
	Err    error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("rule '%s' failed to evaluate: %v", e.RuleID, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}

package rules

import (
	"log/slog"

	"github.com/n8nlint/n8nlint/pkg/models"
)

// Runner applies an ordered rule set to workflows. It holds no state between
// runs; each call is independent.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a runner that logs rule evaluation at debug level.
func NewRunner(logger *slog.Logger) *Runner {
	return &Runner{
		logger: logger.With("module", "rules"),
	}
}

// Run evaluates every rule against the workflow, in the given order, and
// assembles the findings into a report. Issue order is rule order, then
// emission order within a rule.
//
// A rule returning an error is a defect, not a finding: Run stops and
// propagates it as an *EvaluationError carrying the rule id.
func (r *Runner) Run(workflow *models.Workflow, rules []Rule) (*models.ValidationReport, error) {
	issues := []models.Issue{}

	for _, rule := range rules {
		r.logger.Debug("Evaluating rule", "rule", rule.ID(), "workflow", workflow.DisplayName())

		found, err := rule.Evaluate(workflow)
		if err != nil {
			return nil, &EvaluationError{RuleID: rule.ID(), Err: err}
		}

		issues = append(issues, found...)
	}

	return &models.ValidationReport{
		WorkflowName: workflow.DisplayName(),
		Issues:       issues,
	}, nil
}

package rules

import "github.com/n8nlint/n8nlint/pkg/models"

// ErrorHandlingRuleID identifies the error handling rule.
const ErrorHandlingRuleID = "error-handling"

const errorHandlingSuggestion = "Add an Error Trigger node to handle failures, " +
	"or set 'errorWorkflow' in workflow settings to delegate error handling."

// ErrorHandling warns about workflows that declare no failure-handling
// strategy at all: neither an Error Trigger node nor an errorWorkflow
// reference in the workflow settings.
//
// The finding is advisory. A workflow runs fine without error handling, so
// the absence is a risk rather than a correctness violation.
type ErrorHandling struct {
	catalog *TypeCatalog
}

// NewErrorHandling creates the rule with the given node type catalog.
func NewErrorHandling(catalog *TypeCatalog) *ErrorHandling {
	return &ErrorHandling{catalog: catalog}
}

func (r *ErrorHandling) ID() string {
	return ErrorHandlingRuleID
}

func (r *ErrorHandling) Evaluate(workflow *models.Workflow) ([]models.Issue, error) {
	for _, node := range workflow.Nodes {
		if r.catalog.IsErrorTrigger(node.Type) {
			return nil, nil
		}
	}

	if workflow.ErrorWorkflow() != "" {
		return nil, nil
	}

	return []models.Issue{
		{
			Rule:       ErrorHandlingRuleID,
			Severity:   models.SeverityWarning,
			Message:    "Workflow has no error handling. Add an Error Trigger node or set errorWorkflow in settings.",
			Suggestion: errorHandlingSuggestion,
		},
	}, nil
}

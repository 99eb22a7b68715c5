package rules

import (
	"encoding/json"
	"fmt"

	"github.com/n8nlint/n8nlint/pkg/models"
)

// WebhookTimeoutRuleID identifies the webhook timeout rule.
const WebhookTimeoutRuleID = "webhook-timeout"

const webhookTimeoutSuggestion = "Configure a timeout in the Webhook node's options to prevent " +
	"hanging requests. Recommended: 30-60 seconds for typical API calls."

// WebhookTimeout warns about webhook nodes that wait for a response from the
// rest of the workflow without an explicit timeout. Such nodes keep the
// inbound HTTP request open indefinitely when a downstream node hangs.
//
// Fire-and-forget webhooks respond immediately and are exempt. One finding
// is emitted per offending node so each is individually actionable.
type WebhookTimeout struct {
	catalog *TypeCatalog
}

// NewWebhookTimeout creates the rule with the given node type catalog.
func NewWebhookTimeout(catalog *TypeCatalog) *WebhookTimeout {
	return &WebhookTimeout{catalog: catalog}
}

func (r *WebhookTimeout) ID() string {
	return WebhookTimeoutRuleID
}

func (r *WebhookTimeout) Evaluate(workflow *models.Workflow) ([]models.Issue, error) {
	var issues []models.Issue

	for _, node := range workflow.Nodes {
		if !r.catalog.IsWebhook(node.Type) {
			continue
		}

		if !r.catalog.IsWaitingResponseMode(node.ResponseMode()) {
			continue
		}

		if hasPositiveTimeout(node.Options()) {
			continue
		}

		issues = append(issues, models.Issue{
			Rule:       WebhookTimeoutRuleID,
			Severity:   models.SeverityWarning,
			Message:    fmt.Sprintf("Webhook '%s' waits for response but has no timeout configured.", node.DisplayName()),
			NodeName:   node.DisplayName(),
			Suggestion: webhookTimeoutSuggestion,
		})
	}

	return issues, nil
}

// hasPositiveTimeout reports whether options carries a timeout that is a
// positive number. Anything else (absent, non-numeric, zero, negative)
// counts as unconfigured.
func hasPositiveTimeout(options map[string]any) bool {
	timeout, ok := options["timeout"]
	if !ok {
		return false
	}

	switch value := timeout.(type) {
	case float64:
		return value > 0
	case int:
		return value > 0
	case int64:
		return value > 0
	case json.Number:
		f, err := value.Float64()

		return err == nil && f > 0
	default:
		return false
	}
}

package rules

import "strings"

// TypeCatalog holds the product-specific node type identifiers the rules
// recognize. The n8n node catalog evolves upstream, so the sets are data
// rather than hard-coded checks inside each rule.
type TypeCatalog struct {
	errorTriggerTypes map[string]struct{}
	webhookTypes      map[string]struct{}
	waitingModes      map[string]struct{}
}

// NewTypeCatalog builds a catalog from explicit identifier lists. Node type
// matching is case-insensitive on the type's short name (the part after the
// last "."), so community packages shipping the same node kind still match.
func NewTypeCatalog(errorTriggerTypes, webhookTypes, waitingModes []string) *TypeCatalog {
	return &TypeCatalog{
		errorTriggerTypes: shortNameSet(errorTriggerTypes),
		webhookTypes:      shortNameSet(webhookTypes),
		waitingModes:      exactSet(waitingModes),
	}
}

// DefaultCatalog returns a catalog seeded with the built-in n8n identifiers.
func DefaultCatalog() *TypeCatalog {
	return NewTypeCatalog(
		[]string{"n8n-nodes-base.errorTrigger"},
		[]string{"n8n-nodes-base.webhook"},
		[]string{"responseNode", "lastNode"},
	)
}

// IsErrorTrigger reports whether the node type is an Error Trigger kind.
func (c *TypeCatalog) IsErrorTrigger(nodeType string) bool {
	_, ok := c.errorTriggerTypes[shortName(nodeType)]

	return ok
}

// IsWebhook reports whether the node type is a Webhook kind.
func (c *TypeCatalog) IsWebhook(nodeType string) bool {
	_, ok := c.webhookTypes[shortName(nodeType)]

	return ok
}

// IsWaitingResponseMode reports whether the webhook response mode makes the
// node wait for a downstream response before replying.
func (c *TypeCatalog) IsWaitingResponseMode(mode string) bool {
	_, ok := c.waitingModes[mode]

	return ok
}

func shortName(nodeType string) string {
	if i := strings.LastIndex(nodeType, "."); i >= 0 {
		nodeType = nodeType[i+1:]
	}

	return strings.ToLower(nodeType)
}

func shortNameSet(types []string) map[string]struct{} {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		set[shortName(t)] = struct{}{}
	}

	return set
}

func exactSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}

package rules

import "fmt"

// Registry holds the active rule set in registration order. The order is the
// order rules run in and the order their findings appear in a report.
type Registry struct {
	order []string
	rules map[string]Rule
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]Rule),
	}
}

// DefaultRegistry returns a registry with the built-in rules registered in
// their canonical order.
func DefaultRegistry(catalog *TypeCatalog) *Registry {
	registry := NewRegistry()
	registry.Register(NewErrorHandling(catalog))
	registry.Register(NewWebhookTimeout(catalog))

	return registry
}

// Register adds a rule. Registering an id that already exists replaces the
// implementation but keeps its original position.
func (r *Registry) Register(rule Rule) {
	if _, ok := r.rules[rule.ID()]; !ok {
		r.order = append(r.order, rule.ID())
	}

	r.rules[rule.ID()] = rule
}

// Rule returns the rule registered under the given id.
func (r *Registry) Rule(id string) (Rule, error) {
	rule, ok := r.rules[id]
	if !ok {
		return nil, fmt.Errorf("rule '%s' not registered", id)
	}

	return rule, nil
}

// Rules returns all registered rules in registration order.
func (r *Registry) Rules() []Rule {
	rules := make([]Rule, 0, len(r.order))
	for _, id := range r.order {
		rules = append(rules, r.rules[id])
	}

	return rules
}

// IDs returns the registered rule ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)

	return ids
}

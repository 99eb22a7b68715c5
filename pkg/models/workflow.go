// Package models defines the core domain models for n8n workflow validation
package models

const (
	// DefaultWorkflowName labels workflows that were exported without a name.
	DefaultWorkflowName = "Unnamed Workflow"

	// DefaultNodeName labels nodes that carry no display name.
	DefaultNodeName = "Unknown"
)

// Workflow represents a parsed n8n workflow definition. It is read-only
// after loading; validation rules never mutate it.
type Workflow struct {
	Name        string               `json:"name"`
	Nodes       []*Node              `json:"nodes"       validate:"dive"`
	Connections map[string]NodePorts `json:"connections"`
	Settings    map[string]any       `json:"settings"`
}

// NodePorts maps an output port name to its connection slots. This mirrors
// the n8n export shape: source node name -> port -> slots -> targets.
type NodePorts map[string][][]Connection

// Connection references a target node from a source port.
type Connection struct {
	Node  string `json:"node"`
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// DisplayName returns the workflow name, or a default label when the
// exported document has none.
func (w *Workflow) DisplayName() string {
	if w.Name == "" {
		return DefaultWorkflowName
	}

	return w.Name
}

// ErrorWorkflow returns the errorWorkflow reference from workflow settings,
// or "" when the setting is absent or not a string.
func (w *Workflow) ErrorWorkflow() string {
	ref, _ := w.Settings["errorWorkflow"].(string)

	return ref
}

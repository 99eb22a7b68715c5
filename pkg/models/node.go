package models

// Node represents a single node instance in a workflow graph.
type Node struct {
	ID         string         `json:"id"         validate:"required"`
	Name       string         `json:"name"`
	Type       string         `json:"type"       validate:"required"`
	Parameters map[string]any `json:"parameters"`
}

// DisplayName returns the node name, or a default label when the node has
// no display name.
func (n *Node) DisplayName() string {
	if n.Name == "" {
		return DefaultNodeName
	}

	return n.Name
}

// ResponseMode returns the webhook responseMode parameter, or "" when it is
// absent or not a string.
func (n *Node) ResponseMode() string {
	mode, _ := n.Parameters["responseMode"].(string)

	return mode
}

// Options returns the parameters.options map, or nil when it is absent or
// not an object. n8n places optional webhook configuration there.
func (n *Node) Options() map[string]any {
	options, _ := n.Parameters["options"].(map[string]any)

	return options
}

// Package graph defines the read-only blueprint graph model consumed by the
// analyzer: nodes, pins and resolved pin links, keyed by node GUID.
package graph

import "strings"

// Pin returns the first pin matching name and direction, or nil
func (n *Node) Pin(name string, direction Direction) *Pin {
	for _, pin := range n.Pins {
		if pin.Name == name && pin.Direction == direction {
			return pin
		}
	}
	return nil
}

// PinByAliases returns the first pin whose name matches any alias, case-insensitively
func (n *Node) PinByAliases(direction Direction, aliases ...string) *Pin {
	for _, alias := range aliases {
		for _, pin := range n.Pins {
			if pin.Direction == direction && strings.EqualFold(pin.Name, alias) {
				return pin
			}
		}
	}
	return nil
}

// PinByID returns the pin with the given id, or nil
func (n *Node) PinByID(id string) *Pin {
	for _, pin := range n.Pins {
		if pin.ID == id {
			return pin
		}
	}
	return nil
}

// ExecOutputs returns all exec output pins in declaration order
func (n *Node) ExecOutputs() []*Pin {
	var result []*Pin
	for _, pin := range n.Pins {
		if pin.Direction == DirOutput && pin.Kind == PinExec {
			result = append(result, pin)
		}
	}
	return result
}

// HasExecPins returns true if the node participates in control flow
func (n *Node) HasExecPins() bool {
	for _, pin := range n.Pins {
		if pin.Kind == PinExec {
			return true
		}
	}
	return false
}

// HasDataPins returns true if the node carries at least one data pin
func (n *Node) HasDataPins() bool {
	for _, pin := range n.Pins {
		if pin.Kind == PinData {
			return true
		}
	}
	return false
}

// Outputs returns the precomputed downstream links for a pin id
func (n *Node) Outputs(pinID string) []LinkRef {
	return n.outputs[pinID]
}

// Inputs returns the precomputed upstream links for a pin id
func (n *Node) Inputs(pinID string) []LinkRef {
	return n.inputs[pinID]
}

// Property returns a raw property value with a fallback default
func (n *Node) Property(name, defaultValue string) string {
	if value, ok := n.Properties[name]; ok && value != "" {
		return value
	}
	return defaultValue
}

// Node returns the node with the given GUID; when no GUID matches it falls
// back to a node-name lookup, matching the loose references some dumps carry.
func (g *Graph) Node(id string) *Node {
	if node, ok := g.Nodes[id]; ok {
		return node
	}
	for _, node := range g.Nodes {
		if node.Name == id {
			return node
		}
	}
	return nil
}

// Size returns the number of nodes in the graph
func (g *Graph) Size() int {
	return len(g.Nodes)
}

package graph

import (
	"fmt"

	"github.com/google/uuid"
)

// Builder assembles an immutable Graph from nodes and connections. Once Build
// returns, the graph is never mutated again; the analyzer treats it as frozen.
type Builder struct {
	name        string
	nodes       []*Node
	connections []connection
}

type connection struct {
	fromNode, fromPin string
	toNode, toPin     string
}

// NewBuilder creates an empty graph builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Named sets the graph name
func (b *Builder) Named(name string) *Builder {
	b.name = name
	return b
}

// AddNode adds a node to the graph; nodes without a GUID get one synthesized
func (b *Builder) AddNode(node *Node) *Builder {
	b.nodes = append(b.nodes, node)
	return b
}

// Connect records a link from an output pin to an input pin. Endpoints are
// addressed by node GUID (or name) and pin id; resolution happens in Build.
func (b *Builder) Connect(fromNode, fromPin, toNode, toPin string) *Builder {
	b.connections = append(b.connections, connection{fromNode, fromPin, toNode, toPin})
	return b
}

// Build resolves connections into bidirectional pin links, precomputes the
// per-node connection maps and detects entry nodes. Dangling links are kept
// as-is; the analyzer reports them as diagnostic expressions, not failures.
func (b *Builder) Build() (*Graph, error) {
	result := &Graph{Name: b.name, Nodes: make(map[string]*Node, len(b.nodes))}
	for _, node := range b.nodes {
		if node.GUID == "" {
			node.GUID = uuid.NewString()
		}
		if _, ok := result.Nodes[node.GUID]; ok {
			return nil, fmt.Errorf("duplicate node guid %q", node.GUID)
		}
		result.Nodes[node.GUID] = node
	}

	for _, conn := range b.connections {
		from := result.Node(conn.fromNode)
		to := result.Node(conn.toNode)
		if from == nil || to == nil {
			return nil, fmt.Errorf("connection %v.%v -> %v.%v references unknown node",
				conn.fromNode, conn.fromPin, conn.toNode, conn.toPin)
		}
		appendLink(from.PinByID(conn.fromPin), LinkRef{NodeGUID: to.GUID, PinID: conn.toPin})
		appendLink(to.PinByID(conn.toPin), LinkRef{NodeGUID: from.GUID, PinID: conn.fromPin})
	}

	// Links supplied on pins directly (e.g. by graphio) get their reciprocal
	// side filled in so input pins can always reach their producer.
	for _, node := range result.Nodes {
		for _, pin := range node.Pins {
			for _, link := range pin.Links {
				target := result.Node(link.NodeGUID)
				if target == nil {
					continue
				}
				appendLink(target.PinByID(link.PinID), LinkRef{NodeGUID: node.GUID, PinID: pin.ID})
			}
		}
	}

	for _, node := range result.Nodes {
		node.outputs = make(map[string][]LinkRef)
		node.inputs = make(map[string][]LinkRef)
		for _, pin := range node.Pins {
			if !pin.HasLinks() {
				continue
			}
			switch pin.Direction {
			case DirOutput:
				node.outputs[pin.ID] = pin.Links
			case DirInput:
				node.inputs[pin.ID] = pin.Links
			}
		}
	}

	result.Entries = detectEntries(b.nodes)
	return result, nil
}

func appendLink(pin *Pin, link LinkRef) {
	if pin == nil {
		return
	}
	for _, existing := range pin.Links {
		if existing == link {
			return
		}
	}
	pin.Links = append(pin.Links, link)
}

// detectEntries finds nodes that start an independent execution sequence:
// nodes with outgoing exec flow and no incoming exec link (events and
// unconnected exec sources). Order follows the builder's insertion order.
func detectEntries(nodes []*Node) []*Node {
	hasIncomingExec := map[string]bool{}
	for _, node := range nodes {
		for _, pin := range node.Pins {
			if pin.Direction != DirOutput || pin.Kind != PinExec {
				continue
			}
			for _, link := range pin.Links {
				hasIncomingExec[link.NodeGUID] = true
			}
		}
	}
	var entries []*Node
	for _, node := range nodes {
		if len(node.ExecOutputs()) == 0 || hasIncomingExec[node.GUID] {
			continue
		}
		entries = append(entries, node)
	}
	return entries
}

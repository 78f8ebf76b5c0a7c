package graph

// Direction indicates which way a pin faces on its node
type Direction string

const (
	DirInput  Direction = "input"
	DirOutput Direction = "output"
)

// PinKind classifies what travels through a pin
type PinKind string

const (
	PinExec     PinKind = "exec"     // control flow
	PinData     PinKind = "data"     // values
	PinDelegate PinKind = "delegate" // event bindings
)

// LinkRef is a resolved reference to a pin on another node
type LinkRef struct {
	NodeGUID string `yaml:"node"` // GUID of the linked node
	PinID    string `yaml:"pin"`  // pin id on the linked node
}

// Pin represents a typed connection point on a node
type Pin struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Direction Direction `yaml:"direction"`
	Kind      PinKind   `yaml:"kind"`
	Type      string    `yaml:"type,omitempty"`    // value type tag for data pins, e.g. "bool", "int", "object"
	Default   string    `yaml:"default,omitempty"` // default literal used when the pin is unlinked
	Links     []LinkRef `yaml:"links,omitempty"`
}

// HasLinks returns true if the pin is connected to at least one other pin
func (p *Pin) HasLinks() bool {
	return p != nil && len(p.Links) > 0
}

// Node represents a single blueprint graph node with its pins and raw properties
type Node struct {
	GUID       string            `yaml:"guid"`
	Name       string            `yaml:"name"`
	Kind       string            `yaml:"kind"` // raw class tag, e.g. "/Script/BlueprintGraph.K2Node_CallFunction"
	Properties map[string]string `yaml:"properties,omitempty"`
	Pins       []*Pin            `yaml:"pins,omitempty"`

	outputs map[string][]LinkRef // pin id -> downstream links
	inputs  map[string][]LinkRef // pin id -> upstream links
}

// Graph holds a GUID-keyed node arena together with its entry nodes
type Graph struct {
	Name    string           `yaml:"name,omitempty"`
	Nodes   map[string]*Node `yaml:"-"`
	Entries []*Node          `yaml:"-"`
}

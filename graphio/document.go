// Package graphio loads blueprint graph documents. A document is the
// serialized form of the Graph Builder's output: nodes, pins and resolved
// links, with no raw text references. Producing documents from raw blueprint
// dump text is the lexer collaborator's job, not this module's.
package graphio

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/blueprint/graph"
	"gopkg.in/yaml.v3"
)

// Document is the YAML graph document schema
type Document struct {
	Name  string  `yaml:"name,omitempty"`
	Nodes []*Node `yaml:"nodes"`
}

// Node describes one graph node in a document
type Node struct {
	GUID       string            `yaml:"guid,omitempty"`
	Name       string            `yaml:"name,omitempty"`
	Kind       string            `yaml:"kind"`
	Properties map[string]string `yaml:"properties,omitempty"`
	Pins       []*Pin            `yaml:"pins,omitempty"`
}

// Pin describes one pin in a document
type Pin struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Direction string  `yaml:"direction"`
	Kind      string  `yaml:"kind"`
	Type      string  `yaml:"type,omitempty"`
	Default   string  `yaml:"default,omitempty"`
	Links     []*Link `yaml:"links,omitempty"`
}

// Link references a pin on another node
type Link struct {
	Node string `yaml:"node"`
	Pin  string `yaml:"pin"`
}

// Parse decodes a YAML document and builds an immutable graph from it
func Parse(data []byte) (*graph.Graph, error) {
	document := &Document{}
	if err := yaml.Unmarshal(data, document); err != nil {
		return nil, fmt.Errorf("failed to decode graph document: %w", err)
	}
	return Build(document)
}

// Build assembles a graph from a decoded document
func Build(document *Document) (*graph.Graph, error) {
	builder := graph.NewBuilder().Named(document.Name)
	for _, node := range document.Nodes {
		built := &graph.Node{
			GUID:       node.GUID,
			Name:       node.Name,
			Kind:       node.Kind,
			Properties: node.Properties,
		}
		for _, pin := range node.Pins {
			builtPin := &graph.Pin{
				ID:        pin.ID,
				Name:      pin.Name,
				Direction: graph.Direction(pin.Direction),
				Kind:      graph.PinKind(pin.Kind),
				Type:      pin.Type,
				Default:   pin.Default,
			}
			for _, link := range pin.Links {
				builtPin.Links = append(builtPin.Links, graph.LinkRef{NodeGUID: link.Node, PinID: link.Pin})
			}
			built.Pins = append(built.Pins, builtPin)
		}
		builder.AddNode(built)
	}
	return builder.Build()
}

// Load reads a graph document from a URL (file path, s3://, mem:// and other
// schemes supported by afs) and builds the graph.
func Load(ctx context.Context, URL string) (*graph.Graph, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph document %v: %w", URL, err)
	}
	return Parse(data)
}

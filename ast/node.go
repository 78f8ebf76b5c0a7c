// Package ast defines the abstract syntax tree produced by the blueprint
// analyzer: a closed set of expression and statement variants, each visitable
// via the Visitor interface. Nodes are built once and never mutated after
// construction; ownership is tree-shaped except for temporary-variable and
// loop-variable references, which are resolved by name.
package ast

// Origin records which graph node an AST node was derived from
type Origin struct {
	NodeGUID string `yaml:"nodeGuid,omitempty"`
	NodeName string `yaml:"nodeName,omitempty"`
}

// Node is the common interface of all AST nodes
type Node interface {
	Accept(visitor Visitor)
	Source() Origin
}

// Expression is a value-producing AST node
type Expression interface {
	Node
	exprNode()
}

// Statement is an effect-producing AST node
type Statement interface {
	Node
	stmtNode()
}

// Argument is a named actual parameter of a call
type Argument struct {
	Name  string     `yaml:"name"`
	Value Expression `yaml:"value"`
}

// Parameter is a named formal parameter of an event or callback block
type Parameter struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
}

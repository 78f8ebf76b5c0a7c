// Package scope provides the lexical scope stack used during graph analysis.
// It tracks named symbols (declared variables, loop variables, callback
// parameters) and pin-keyed expression bindings with innermost-first lookup.
package scope

import "github.com/viant/blueprint/ast"

// Symbol is a named binding visible on the active scope path
type Symbol struct {
	Name              string
	Type              string
	Decl              ast.Statement  // declaring statement, if any
	Value             ast.Expression // expression to substitute on reads, if any
	LoopVariable      bool
	CallbackParameter bool
	Level             int // scope depth at definition time
}

type frame struct {
	symbols map[string]*Symbol
	pins    map[string]ast.Expression
}

func newFrame() *frame {
	return &frame{symbols: map[string]*Symbol{}, pins: map[string]ast.Expression{}}
}

// Table is a stack of lexical scopes. The global scope is created by New and
// is never popped; every Enter during analysis must have a matching Leave.
type Table struct {
	frames []*frame
}

// New creates a table holding only the global scope
func New() *Table {
	return &Table{frames: []*frame{newFrame()}}
}

// Enter pushes a new innermost scope and returns its depth
func (t *Table) Enter() int {
	t.frames = append(t.frames, newFrame())
	return len(t.frames)
}

// Leave pops the innermost scope; the global scope is retained
func (t *Table) Leave() {
	if len(t.frames) > 1 {
		t.frames = t.frames[:len(t.frames)-1]
	}
}

// Depth returns the number of active scopes including the global one
func (t *Table) Depth() int {
	return len(t.frames)
}

// Define binds a symbol in the innermost scope. Shadowing an outer name is
// legal; the shadow is visible until the defining scope is left.
func (t *Table) Define(symbol *Symbol) *Symbol {
	symbol.Level = len(t.frames)
	t.frames[len(t.frames)-1].symbols[symbol.Name] = symbol
	return symbol
}

// Lookup resolves a name innermost-first; nil means not found, callers fall
// back to a default literal.
func (t *Table) Lookup(name string) *Symbol {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if symbol, ok := t.frames[i].symbols[name]; ok {
			return symbol
		}
	}
	return nil
}

// BindPin associates an output pin id with an expression in the innermost
// scope, so the resolver answers reads of that pin while the scope is active.
func (t *Table) BindPin(pinID string, expr ast.Expression) {
	t.frames[len(t.frames)-1].pins[pinID] = expr
}

// ResolvePin resolves a pin binding innermost-first; nil means unbound
func (t *Table) ResolvePin(pinID string) ast.Expression {
	for i := len(t.frames) - 1; i >= 0; i-- {
		if expr, ok := t.frames[i].pins[pinID]; ok {
			return expr
		}
	}
	return nil
}

package analyzer

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/viant/blueprint/ast"
	"github.com/viant/blueprint/graph"
	"github.com/viant/blueprint/analyzer/scope"
)

// Context carries all per-analysis state. Every Analyze call owns a fresh
// context; nothing is shared across concurrent analyses.
type Context struct {
	Graph  *graph.Graph
	Scopes *scope.Table

	analyzer *Analyzer
	logger   *slog.Logger
	runID    string

	visited   map[string]bool                       // node GUID -> processed
	usage     map[string]int                        // "guid:pinID" -> consumer count (pass 1)
	memo      map[string]ast.Expression             // "guid:pinID" -> resolved expression
	active    map[string]bool                       // resolution path for cycle detection
	temps     map[string]*ast.TemporaryVariableDecl // "guid:pinID" -> extracted temp
	tempNames map[string]bool
	castDecls map[string]string // cast node GUID -> declared symbol name
	frames    []*blockFrame
}

// blockFrame tracks the statement list of the block currently being walked;
// temp declarations created while resolving its statements land in prelude.
type blockFrame struct {
	statements *[]ast.Statement
	prelude    []ast.Statement
}

func newContext(a *Analyzer, g *graph.Graph) *Context {
	runID := uuid.NewString()
	return &Context{
		Graph:     g,
		Scopes:    scope.New(),
		analyzer:  a,
		logger:    a.logger.With("analysis", runID),
		runID:     runID,
		visited:   map[string]bool{},
		usage:     map[string]int{},
		memo:      map[string]ast.Expression{},
		active:    map[string]bool{},
		temps:     map[string]*ast.TemporaryVariableDecl{},
		tempNames: map[string]bool{},
		castDecls: map[string]string{},
	}
}

// countPinUsage is pass 1: it counts downstream consumers per output pin so
// the resolver can decide which values deserve a temporary variable.
func (c *Context) countPinUsage() {
	for _, node := range c.Graph.Nodes {
		for _, pin := range node.Pins {
			if pin.Direction == graph.DirOutput && pin.HasLinks() {
				c.usage[pinKey(node.GUID, pin.ID)] = len(pin.Links)
			}
		}
	}
}

func pinKey(nodeGUID, pinID string) string {
	return nodeGUID + ":" + pinID
}

func (c *Context) pushFrame(statements *[]ast.Statement) {
	c.frames = append(c.frames, &blockFrame{statements: statements})
}

// popFrame prepends the collected prelude to the block's statements
func (c *Context) popFrame() {
	frame := c.frames[len(c.frames)-1]
	c.frames = c.frames[:len(c.frames)-1]
	if len(frame.prelude) > 0 {
		*frame.statements = append(frame.prelude, *frame.statements...)
	}
}

// addPrelude records a declaration in the nearest enclosing statement list
func (c *Context) addPrelude(decl ast.Statement) {
	if len(c.frames) == 0 {
		return
	}
	frame := c.frames[len(c.frames)-1]
	frame.prelude = append(frame.prelude, decl)
}

// Logger exposes the analysis-scoped logger to handlers
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Package analyzer reconstructs structured control flow and data expressions
// from a blueprint pin graph. One Analyze call performs the whole multi-pass
// pipeline: a pin-usage count pass, then an execution walk per entry node
// that dispatches registered node processors and resolves data pins into
// expression trees with common-subexpression elimination.
package analyzer

import (
	"errors"
	"io"
	"log/slog"
	"sort"

	"github.com/viant/blueprint/ast"
	"github.com/viant/blueprint/graph"
)

// ErrNoEntryNodes reports a graph with nothing to analyze; malformed input
// inside a non-empty graph degrades to diagnostic AST values instead.
var ErrNoEntryNodes = errors.New("graph has no entry nodes")

// fallbackPropertyLimit bounds how much of the raw property bag a Fallback
// statement carries.
const fallbackPropertyLimit = 4

// Analyzer transforms blueprint graphs into AST statement lists. It is
// stateless across calls; concurrent Analyze calls use independent contexts.
type Analyzer struct {
	registry *Registry
	logger   *slog.Logger
}

// Option customizes an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger used for analysis warnings
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithProcessor registers an additional node processor; it overrides any
// default registered for the same kind key.
func WithProcessor(key string, handler Handler) Option {
	return func(a *Analyzer) {
		a.registry.Register(key, handler)
	}
}

// New creates an analyzer with the default node processors registered
func New(options ...Option) *Analyzer {
	result := &Analyzer{
		registry: NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	registerDefaults(result.registry)
	for _, option := range options {
		option(result)
	}
	return result
}

// Analyze runs the full pipeline and returns one top-level statement per
// entry node. The graph is treated as read-only; all analysis state lives in
// a per-call context. A nil or entry-less graph returns ErrNoEntryNodes.
func (a *Analyzer) Analyze(g *graph.Graph) ([]ast.Statement, error) {
	if g == nil || len(g.Entries) == 0 {
		return nil, ErrNoEntryNodes
	}
	context := newContext(a, g)
	context.countPinUsage()

	statements := []ast.Statement{}
	for _, entry := range g.Entries {
		if context.visited[entry.GUID] {
			continue
		}
		result := a.dispatch(context, entry)
		if statement, ok := result.Node.(ast.Statement); ok && statement != nil {
			statements = append(statements, statement)
		}
	}
	return statements, nil
}

// dispatch processes a node at most once per analysis. Resolution order:
// macro compound key, bare kind key, generic callable, Fallback statement.
// The chain is total; no node kind can abort the pipeline.
func (a *Analyzer) dispatch(context *Context, node *graph.Node) Result {
	if context.visited[node.GUID] {
		return Result{}
	}
	context.visited[node.GUID] = true

	if isMacroInstance(node.Kind) {
		if name := macroName(node); name != "" {
			if handler, ok := a.registry.Lookup(node.Kind + ":" + name); ok {
				return a.invoke(context, node, handler)
			}
		}
	}
	if handler, ok := a.registry.Lookup(node.Kind); ok {
		return a.invoke(context, node, handler)
	}
	if node.HasExecPins() && node.HasDataPins() {
		return a.invoke(context, node, processCallable)
	}
	context.logger.Warn("no processor for node kind", "kind", node.Kind, "node", node.Name)
	return Result{Node: fallbackStatement(node)}
}

// invoke runs a handler; handler errors degrade to a Fallback statement so a
// failing processor never takes the whole analysis down.
func (a *Analyzer) invoke(context *Context, node *graph.Node, handler Handler) Result {
	result, err := handler(context, node)
	if err != nil {
		context.logger.Warn("node processor failed", "kind", node.Kind, "node", node.Name, "error", err)
		return Result{Node: fallbackStatement(node)}
	}
	return result
}

// processCallable is the generic path for nodes exposing exec and data pins:
// they are treated as plain function calls, named by function metadata when
// present and by the node name otherwise.
func processCallable(context *Context, node *graph.Node) (Result, error) {
	call := context.callExpression(node, nil)
	if call.Name == "UnknownFunction" && node.Name != "" {
		call.Name = node.Name
	}
	return Result{Node: &ast.CallStatement{
		Target: call.Target,
		Name:   call.Name,
		Args:   call.Args,
		Origin: call.Origin,
	}}, nil
}

// fallbackStatement summarizes an unrecognized node without interpreting it
func fallbackStatement(node *graph.Node) *ast.Fallback {
	result := &ast.Fallback{Kind: node.Kind, Origin: origin(node)}
	if len(node.Properties) > 0 {
		names := make([]string, 0, len(node.Properties))
		for name := range node.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		if len(names) > fallbackPropertyLimit {
			names = names[:fallbackPropertyLimit]
		}
		result.Properties = map[string]string{}
		for _, name := range names {
			result.Properties[name] = node.Properties[name]
		}
	}
	for _, pin := range node.Pins {
		result.Pins = append(result.Pins, pin.Name+" "+string(pin.Direction)+" "+string(pin.Kind))
	}
	return result
}

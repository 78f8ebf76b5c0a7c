package analyzer

import (
	"strings"

	"github.com/viant/blueprint/ast"
	"github.com/viant/blueprint/graph"
)

// Handler turns one graph node into an AST node. Continuation, when set,
// tells the walker which exec pin to resume from instead of the node's own
// successor pin (used by loop macros whose body pin differs from it).
type Handler func(context *Context, node *graph.Node) (Result, error)

// Result is the explicit outcome of a node handler
type Result struct {
	Node         ast.Node
	Continuation *graph.Pin
}

// namespaces maps node kinds that live outside the default BlueprintGraph
// script package to their full path prefix.
var namespaces = map[string]string{
	"K2Node_CreateWidget":      "/Script/UMGEditor",
	"K2Node_LatentAbilityCall": "/Script/GameplayAbilitiesEditor",
}

// Registry dispatches node kind tags to handlers. It is an explicit object
// built at composition root; there is no process-wide registration state.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{handlers: map[string]Handler{}}
}

// Register binds a handler to a kind key. Keys come in short form
// ("K2Node_Event"), full path form ("/Script/BlueprintGraph.K2Node_Event") or
// macro compound form ("K2Node_MacroInstance:ForEachLoop"); each registration
// also installs the sibling variant so dumps using either spelling dispatch
// the same way.
func (r *Registry) Register(key string, handler Handler) {
	r.handlers[key] = handler

	kind, macro := key, ""
	if index := strings.Index(key, ":"); index != -1 {
		kind, macro = key[:index], key[index+1:]
	}
	variant := ""
	switch {
	case strings.HasPrefix(kind, "/Script/"):
		if index := strings.LastIndex(kind, "."); index != -1 {
			variant = kind[index+1:]
		}
	case strings.HasPrefix(kind, "K2Node_"):
		namespace, ok := namespaces[kind]
		if !ok {
			namespace = "/Script/BlueprintGraph"
		}
		variant = namespace + "." + kind
	}
	if variant == "" || variant == kind {
		return
	}
	if macro != "" {
		variant += ":" + macro
	}
	if _, exists := r.handlers[variant]; !exists {
		r.handlers[variant] = handler
	}
}

// Lookup returns the handler registered for a key
func (r *Registry) Lookup(key string) (Handler, bool) {
	handler, ok := r.handlers[key]
	return handler, ok
}

// Size returns the number of registered keys
func (r *Registry) Size() int {
	return len(r.handlers)
}

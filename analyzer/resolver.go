package analyzer

import (
	"fmt"
	"strings"

	"github.com/viant/blueprint/ast"
	"github.com/viant/blueprint/graph"
)

// Diagnostic literal values embedded in the AST for recoverable resolution
// failures; the analyzer never aborts on them.
const (
	circularReference = "<circular reference>"
	nodeNotFound      = "<node not found>"
)

// Resolve turns a data input pin into an expression. Unlinked pins resolve to
// a visible symbol of the same name when one exists, otherwise to a literal
// built from the pin default. Linked pins resolve their producer with
// memoization, cycle detection and temp-variable extraction per usage counts.
func (c *Context) Resolve(pin *graph.Pin) ast.Expression {
	if pin == nil {
		return &ast.Literal{Value: "null", Type: "null"}
	}
	if !pin.HasLinks() {
		if symbol := c.Scopes.Lookup(pin.Name); symbol != nil {
			if symbol.Value != nil {
				return symbol.Value
			}
			return &ast.VariableGet{Name: symbol.Name}
		}
		return defaultLiteral(pin)
	}

	link := pin.Links[0]
	source := c.Graph.Node(link.NodeGUID)
	if source == nil {
		c.logger.Warn("data link points to missing node", "node", link.NodeGUID, "pin", link.PinID)
		return &ast.Literal{Value: nodeNotFound, Type: "error"}
	}
	// Loop variables and callback parameters are bound by pin id while their
	// scope is active; they shortcut producer resolution entirely.
	if expr := c.Scopes.ResolvePin(link.PinID); expr != nil {
		return expr
	}

	key := pinKey(source.GUID, link.PinID)
	if expr, ok := c.memo[key]; ok {
		return expr
	}
	if c.active[key] {
		return &ast.Literal{Value: circularReference, Type: "error", Origin: origin(source)}
	}
	c.active[key] = true
	defer delete(c.active, key)

	var expr ast.Expression
	if c.usage[key] > 1 && !trivialProducer(source) {
		expr = c.temporary(key, source, link.PinID)
	} else {
		expr = c.resolveOutput(source, link.PinID)
	}
	c.memo[key] = expr
	return expr
}

// resolveOutput builds the expression produced by an output pin of a node
func (c *Context) resolveOutput(node *graph.Node, pinID string) ast.Expression {
	kind := node.Kind
	switch {
	case strings.Contains(kind, "K2Node_Knot"):
		// reroute node: pass the upstream value through
		for _, pin := range node.Pins {
			if pin.Direction == graph.DirInput && pin.Kind != graph.PinExec {
				return c.Resolve(pin)
			}
		}
		return &ast.Literal{Value: "null", Type: "null", Origin: origin(node)}
	case strings.Contains(kind, "K2Node_VariableGet"):
		return c.variableGetExpression(node)
	case strings.Contains(kind, "K2Node_DynamicCast"):
		return c.castExpression(node)
	case strings.Contains(kind, "K2Node_Literal"):
		return &ast.Literal{Value: node.Property("ObjectRef", "null"), Type: "literal", Origin: origin(node)}
	case strings.Contains(kind, "K2Node_MathExpression"):
		return c.mathExpression(node)
	case strings.Contains(kind, "K2Node_GetArrayItem"), strings.Contains(kind, "K2Node_ArrayGet"):
		return c.arrayAccessExpression(node)
	case strings.Contains(kind, "K2Node_Event"), strings.Contains(kind, "K2Node_CustomEvent"),
		strings.Contains(kind, "K2Node_ComponentBoundEvent"):
		return &ast.EventReference{Name: eventName(node), Origin: origin(node)}
	default:
		return c.callExpression(node, nil)
	}
}

// temporary extracts a multi-consumer value into a single declaration placed
// in the nearest enclosing statement list's prelude; every consumer receives
// the same by-name reference. This keeps output readable and avoids
// duplicating calls with side effects.
func (c *Context) temporary(key string, source *graph.Node, pinID string) ast.Expression {
	if decl, ok := c.temps[key]; ok {
		return &ast.TemporaryVariableRef{Name: decl.Name, Origin: decl.Origin}
	}
	name := c.tempName(source)
	decl := &ast.TemporaryVariableDecl{
		Name:   name,
		Value:  c.resolveOutput(source, pinID),
		Origin: origin(source),
	}
	c.temps[key] = decl
	c.addPrelude(decl)
	return &ast.TemporaryVariableRef{Name: name, Origin: decl.Origin}
}

// trivialProducer reports producers that never warrant a temp variable:
// plain variable reads, literals and reroute knots.
func trivialProducer(node *graph.Node) bool {
	return strings.Contains(node.Kind, "K2Node_VariableGet") ||
		strings.Contains(node.Kind, "K2Node_Literal") ||
		strings.Contains(node.Kind, "K2Node_Knot")
}

func (c *Context) tempName(source *graph.Node) string {
	base := "temp_"
	if strings.Contains(source.Kind, "K2Node_CallFunction") {
		name := memberName(source, "FunctionReference", "func")
		name = strings.ReplaceAll(name, "BP_", "")
		name = strings.ReplaceAll(name, "K2_", "")
		base += strings.ToLower(name)
	} else {
		kind := source.Kind
		if index := strings.LastIndex(kind, "."); index != -1 {
			kind = kind[index+1:]
		}
		base += strings.ToLower(strings.TrimPrefix(kind, "K2Node_"))
	}
	name := base
	for counter := 1; c.tempNames[name]; counter++ {
		name = fmt.Sprintf("%v_%d", base, counter)
	}
	c.tempNames[name] = true
	return name
}

func defaultLiteral(pin *graph.Pin) *ast.Literal {
	value := pin.Default
	if value == "" {
		value = "null"
	}
	literalType := pin.Type
	if literalType == "" {
		literalType = "unknown"
	}
	return &ast.Literal{Value: value, Type: literalType}
}

func origin(node *graph.Node) ast.Origin {
	return ast.Origin{NodeGUID: node.GUID, NodeName: node.Name}
}

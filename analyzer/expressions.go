package analyzer

import (
	"fmt"

	"github.com/viant/blueprint/ast"
	"github.com/viant/blueprint/graph"
)

// variableGetExpression models a variable-read node in expression position
func (c *Context) variableGetExpression(node *graph.Node) ast.Expression {
	return &ast.VariableGet{
		Name:       memberName(node, "VariableReference", "UnknownVariable"),
		SelfScoped: selfContext(node, "VariableReference"),
		Origin:     origin(node),
	}
}

// callExpression models a node as a pure function call; it is also the
// resolver's default for unrecognized producers.
func (c *Context) callExpression(node *graph.Node, exclude map[string]bool) *ast.FunctionCall {
	var target ast.Expression
	if selfPin := node.Pin("self", graph.DirInput); selfPin.HasLinks() {
		target = c.Resolve(selfPin)
	}
	return &ast.FunctionCall{
		Target: target,
		Name:   memberName(node, "FunctionReference", "UnknownFunction"),
		Args:   c.callArguments(node, exclude),
		Origin: origin(node),
	}
}

// callArguments resolves every plain data input into a named argument;
// exec and delegate pins, the receiver and successor pins are skipped.
func (c *Context) callArguments(node *graph.Node, exclude map[string]bool) []ast.Argument {
	var args []ast.Argument
	for _, pin := range node.Pins {
		if pin.Direction != graph.DirInput || pin.Kind != graph.PinData {
			continue
		}
		if pin.Name == "self" || pin.Name == "then" || exclude[pin.Name] {
			continue
		}
		args = append(args, ast.Argument{Name: pin.Name, Value: c.Resolve(pin)})
	}
	return args
}

// castExpression models a dynamic cast node in expression position
func (c *Context) castExpression(node *graph.Node) *ast.Cast {
	targetType := objectPath(node.Property("TargetType", ""))
	if targetType == "" {
		targetType = "UnknownType"
	}
	return &ast.Cast{
		Value:      c.Resolve(node.Pin("Object", graph.DirInput)),
		TargetType: targetType,
		Origin:     origin(node),
	}
}

func (c *Context) mathExpression(node *graph.Node) ast.Expression {
	return &ast.FunctionCall{
		Name:   fmt.Sprintf("MathExpression(%v)", node.Property("Expression", "")),
		Args:   c.callArguments(node, nil),
		Origin: origin(node),
	}
}

func (c *Context) arrayAccessExpression(node *graph.Node) ast.Expression {
	arrayPin := node.PinByAliases(graph.DirInput, "TargetArray", "Array")
	indexPin := node.PinByAliases(graph.DirInput, "Index", "Dimension 1")
	return &ast.FunctionCall{
		Target: c.Resolve(arrayPin),
		Name:   "Get",
		Args:   []ast.Argument{{Name: "Index", Value: c.Resolve(indexPin)}},
		Origin: origin(node),
	}
}

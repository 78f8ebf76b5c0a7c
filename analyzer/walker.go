package analyzer

import (
	"strings"

	"github.com/viant/blueprint/ast"
	"github.com/viant/blueprint/graph"
)

// WalkFlow follows an exec-pin chain from start, dispatching each downstream
// node and appending resulting statements in discovery order. Exec pins have
// a single-successor convention: when a pin carries several links only the
// first is followed. Already-visited nodes stop the walk (cycle guard).
func (c *Context) WalkFlow(start *graph.Pin, statements *[]ast.Statement) {
	c.pushFrame(statements)
	defer c.popFrame()

	current := start
	for current != nil && current.HasLinks() {
		link := current.Links[0]
		next := c.Graph.Node(link.NodeGUID)
		if next == nil {
			c.logger.Warn("exec link points to missing node", "node", link.NodeGUID, "pin", link.PinID)
			return
		}
		if c.visited[next.GUID] {
			return
		}
		result := c.analyzer.dispatch(c, next)
		if statement, ok := result.Node.(ast.Statement); ok && statement != nil {
			*statements = append(*statements, statement)
		}
		if result.Continuation != nil {
			current = result.Continuation
			continue
		}
		current = nextExecPin(next)
	}
}

// nextExecPin picks the successor pin of a just-processed node: the
// conventional "then" pin when present, otherwise the first exec output.
// LoopBody pins are never a successor for the outer walk; they belong to the
// macro's internal body flow.
func nextExecPin(node *graph.Node) *graph.Pin {
	if pin := node.Pin("then", graph.DirOutput); pin != nil && pin.Kind == graph.PinExec {
		return pin
	}
	for _, pin := range node.ExecOutputs() {
		if strings.EqualFold(pin.Name, "LoopBody") {
			continue
		}
		return pin
	}
	return nil
}

// Package formatter renders analyzer output as indented pseudocode. It is a
// reference consumer of the ast.Visitor interface; richer renderers live with
// the presentation layer, not here.
package formatter

import (
	"strings"

	"github.com/viant/blueprint/ast"
)

const indentUnit = "  "

// Pseudocode renders statements as two-space indented pseudocode
type Pseudocode struct {
	builder strings.Builder
	depth   int
}

// New creates a pseudocode formatter
func New() *Pseudocode {
	return &Pseudocode{}
}

// Format renders top-level statements and returns the accumulated text
func (f *Pseudocode) Format(statements []ast.Statement) string {
	f.builder.Reset()
	f.depth = 0
	for _, statement := range statements {
		statement.Accept(f)
	}
	return f.builder.String()
}

func (f *Pseudocode) line(open func()) {
	f.builder.WriteString(strings.Repeat(indentUnit, f.depth))
	open()
	f.builder.WriteString("\n")
}

func (f *Pseudocode) write(text string) {
	f.builder.WriteString(text)
}

func (f *Pseudocode) indented(body func()) {
	f.depth++
	body()
	f.depth--
}

func (f *Pseudocode) args(args []ast.Argument) {
	for i, arg := range args {
		if i > 0 {
			f.write(", ")
		}
		arg.Value.Accept(f)
	}
}

func (f *Pseudocode) parameters(params []ast.Parameter) string {
	names := make([]string, 0, len(params))
	for _, param := range params {
		names = append(names, param.Name)
	}
	return strings.Join(names, ", ")
}

// VisitLiteral writes the literal value inline
func (f *Pseudocode) VisitLiteral(node *ast.Literal) {
	f.write(node.Value)
}

func (f *Pseudocode) VisitVariableGet(node *ast.VariableGet) {
	f.write(node.Name)
}

func (f *Pseudocode) VisitFunctionCall(node *ast.FunctionCall) {
	if node.Target != nil {
		node.Target.Accept(f)
		f.write(".")
	}
	f.write(node.Name)
	f.write("(")
	f.args(node.Args)
	f.write(")")
}

func (f *Pseudocode) VisitCast(node *ast.Cast) {
	f.write("cast<" + node.TargetType + ">(")
	node.Value.Accept(f)
	f.write(")")
}

func (f *Pseudocode) VisitPropertyAccess(node *ast.PropertyAccess) {
	node.Target.Accept(f)
	f.write("." + node.Name)
}

func (f *Pseudocode) VisitTemporaryVariableRef(node *ast.TemporaryVariableRef) {
	f.write(node.Name)
}

func (f *Pseudocode) VisitEventReference(node *ast.EventReference) {
	f.write(node.Name)
}

func (f *Pseudocode) VisitLoopVariable(node *ast.LoopVariable) {
	f.write(node.Name)
}

// VisitExecutionBlock writes nested statements at the current depth
func (f *Pseudocode) VisitExecutionBlock(node *ast.ExecutionBlock) {
	for _, statement := range node.Statements {
		statement.Accept(f)
	}
}

func (f *Pseudocode) VisitEvent(node *ast.Event) {
	f.line(func() {
		f.write("Event " + node.Name)
		if len(node.Parameters) > 0 {
			f.write("(" + f.parameters(node.Parameters) + ")")
		}
		f.write(":")
	})
	f.indented(func() {
		node.Body.Accept(f)
	})
}

func (f *Pseudocode) VisitAssignment(node *ast.Assignment) {
	operator := node.Operator
	if operator == "" {
		operator = "="
	}
	f.line(func() {
		node.Target.Accept(f)
		f.write(" " + operator + " ")
		node.Value.Accept(f)
	})
}

func (f *Pseudocode) VisitCallStatement(node *ast.CallStatement) {
	f.line(func() {
		if node.Target != nil {
			node.Target.Accept(f)
			f.write(".")
		}
		f.write(node.Name)
		f.write("(")
		f.args(node.Args)
		f.write(")")
	})
}

func (f *Pseudocode) VisitBranch(node *ast.Branch) {
	f.line(func() {
		f.write("if ")
		node.Condition.Accept(f)
		f.write(":")
	})
	f.indented(func() {
		node.True.Accept(f)
	})
	if node.False == nil || len(node.False.Statements) == 0 {
		return
	}
	f.line(func() { f.write("else:") })
	f.indented(func() {
		node.False.Accept(f)
	})
}

func (f *Pseudocode) VisitLoop(node *ast.Loop) {
	f.line(func() {
		if node.Kind == ast.LoopForEach {
			f.write("for each (" + node.Item.Name + ", " + node.Index.Name + ") in ")
			node.Collection.Accept(f)
		} else {
			f.write("while ")
			node.Condition.Accept(f)
		}
		f.write(":")
	})
	f.indented(func() {
		node.Body.Accept(f)
	})
}

func (f *Pseudocode) VisitLatentAction(node *ast.LatentAction) {
	f.line(func() {
		node.Call.Accept(f)
		f.write("  // async")
	})
	f.indented(func() {
		if node.Completed != nil && len(node.Completed.Statements) > 0 {
			f.line(func() { f.write("on Completed:") })
			f.indented(func() {
				node.Completed.Accept(f)
			})
		}
		for _, callback := range node.Callbacks {
			callback.Accept(f)
		}
	})
}

func (f *Pseudocode) VisitCallbackBlock(node *ast.CallbackBlock) {
	f.line(func() {
		f.write("on " + node.Name)
		if len(node.Parameters) > 0 {
			f.write("(" + f.parameters(node.Parameters) + ")")
		}
		f.write(":")
	})
	f.indented(func() {
		node.Body.Accept(f)
	})
}

func (f *Pseudocode) VisitTemporaryVariableDecl(node *ast.TemporaryVariableDecl) {
	f.line(func() {
		f.write("local " + node.Name + " = ")
		node.Value.Accept(f)
	})
}

func (f *Pseudocode) VisitVariableDecl(node *ast.VariableDecl) {
	f.line(func() {
		f.write("local " + node.Name)
		if node.Value != nil {
			f.write(" = ")
			node.Value.Accept(f)
		}
	})
}

func (f *Pseudocode) VisitEventSubscription(node *ast.EventSubscription) {
	f.line(func() {
		node.Target.Accept(f)
		f.write("." + node.Event + " += ")
		node.Handler.Accept(f)
	})
}

func (f *Pseudocode) VisitFallback(node *ast.Fallback) {
	f.line(func() {
		f.write("// unsupported: " + node.Kind)
	})
}

package ast

// Visitor has one method per AST variant. Formatters and other consumers
// implement it to traverse the tree without type switches.
type Visitor interface {
	// expressions
	VisitLiteral(node *Literal)
	VisitVariableGet(node *VariableGet)
	VisitFunctionCall(node *FunctionCall)
	VisitCast(node *Cast)
	VisitPropertyAccess(node *PropertyAccess)
	VisitTemporaryVariableRef(node *TemporaryVariableRef)
	VisitEventReference(node *EventReference)
	VisitLoopVariable(node *LoopVariable)

	// statements
	VisitExecutionBlock(node *ExecutionBlock)
	VisitEvent(node *Event)
	VisitAssignment(node *Assignment)
	VisitCallStatement(node *CallStatement)
	VisitBranch(node *Branch)
	VisitLoop(node *Loop)
	VisitLatentAction(node *LatentAction)
	VisitCallbackBlock(node *CallbackBlock)
	VisitTemporaryVariableDecl(node *TemporaryVariableDecl)
	VisitVariableDecl(node *VariableDecl)
	VisitEventSubscription(node *EventSubscription)
	VisitFallback(node *Fallback)
}

package ast

// Literal is a constant value; Type carries a loose tag such as "bool", "int"
// or "error" for diagnostic values embedded by the analyzer.
type Literal struct {
	Value  string `yaml:"value"`
	Type   string `yaml:"type,omitempty"`
	Origin Origin `yaml:"origin,omitempty"`
}

func (e *Literal) Accept(visitor Visitor) { visitor.VisitLiteral(e) }
func (e *Literal) Source() Origin         { return e.Origin }
func (e *Literal) exprNode()              {}

// IsError reports whether the literal is an analyzer diagnostic value
func (e *Literal) IsError() bool { return e.Type == "error" }

// VariableGet reads a variable; SelfScoped marks members of the owning object
type VariableGet struct {
	Name       string `yaml:"name"`
	SelfScoped bool   `yaml:"selfScoped,omitempty"`
	Origin     Origin `yaml:"origin,omitempty"`
}

func (e *VariableGet) Accept(visitor Visitor) { visitor.VisitVariableGet(e) }
func (e *VariableGet) Source() Origin         { return e.Origin }
func (e *VariableGet) exprNode()              {}

// FunctionCall is a pure call used in expression position
type FunctionCall struct {
	Target Expression `yaml:"target,omitempty"` // receiver, nil for free functions
	Name   string     `yaml:"name"`
	Args   []Argument `yaml:"args,omitempty"`
	Origin Origin     `yaml:"origin,omitempty"`
}

func (e *FunctionCall) Accept(visitor Visitor) { visitor.VisitFunctionCall(e) }
func (e *FunctionCall) Source() Origin         { return e.Origin }
func (e *FunctionCall) exprNode()              {}

// Cast converts a value to a target type; it doubles as the condition of the
// branch emitted for a dynamic cast node.
type Cast struct {
	Value      Expression `yaml:"value"`
	TargetType string     `yaml:"targetType"`
	Origin     Origin     `yaml:"origin,omitempty"`
}

func (e *Cast) Accept(visitor Visitor) { visitor.VisitCast(e) }
func (e *Cast) Source() Origin         { return e.Origin }
func (e *Cast) exprNode()              {}

// PropertyAccess reads a property of a target object
type PropertyAccess struct {
	Target Expression `yaml:"target"`
	Name   string     `yaml:"name"`
	Origin Origin     `yaml:"origin,omitempty"`
}

func (e *PropertyAccess) Accept(visitor Visitor) { visitor.VisitPropertyAccess(e) }
func (e *PropertyAccess) Source() Origin         { return e.Origin }
func (e *PropertyAccess) exprNode()              {}

// TemporaryVariableRef is a by-name reference to an extracted temporary;
// the declaration lives in the prelude of the enclosing statement list.
type TemporaryVariableRef struct {
	Name   string `yaml:"name"`
	Origin Origin `yaml:"origin,omitempty"`
}

func (e *TemporaryVariableRef) Accept(visitor Visitor) { visitor.VisitTemporaryVariableRef(e) }
func (e *TemporaryVariableRef) Source() Origin         { return e.Origin }
func (e *TemporaryVariableRef) exprNode()              {}

// EventReference names an event handler, typically as a subscription target
type EventReference struct {
	Name   string `yaml:"name"`
	Origin Origin `yaml:"origin,omitempty"`
}

func (e *EventReference) Accept(visitor Visitor) { visitor.VisitEventReference(e) }
func (e *EventReference) Source() Origin         { return e.Origin }
func (e *EventReference) exprNode()              {}

// LoopVariable is a by-name reference to a loop element or index; LoopID ties
// it back to the loop that declared it.
type LoopVariable struct {
	Name   string `yaml:"name"`
	Index  bool   `yaml:"index,omitempty"`
	LoopID string `yaml:"loopId,omitempty"`
	Origin Origin `yaml:"origin,omitempty"`
}

func (e *LoopVariable) Accept(visitor Visitor) { visitor.VisitLoopVariable(e) }
func (e *LoopVariable) Source() Origin         { return e.Origin }
func (e *LoopVariable) exprNode()              {}

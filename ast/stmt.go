package ast

// ExecutionBlock is an ordered statement list; it backs event bodies, branch
// arms and loop bodies, and stands alone for sequence nodes.
type ExecutionBlock struct {
	Statements []Statement `yaml:"statements"`
	Origin     Origin      `yaml:"origin,omitempty"`
}

func (s *ExecutionBlock) Accept(visitor Visitor) { visitor.VisitExecutionBlock(s) }
func (s *ExecutionBlock) Source() Origin         { return s.Origin }
func (s *ExecutionBlock) stmtNode()              {}

// Event is a top-level entry point with its handler body
type Event struct {
	Name       string          `yaml:"name"`
	Parameters []Parameter     `yaml:"parameters,omitempty"`
	Body       *ExecutionBlock `yaml:"body"`
	Origin     Origin          `yaml:"origin,omitempty"`
}

func (s *Event) Accept(visitor Visitor) { visitor.VisitEvent(s) }
func (s *Event) Source() Origin         { return s.Origin }
func (s *Event) stmtNode()              {}

// Assignment writes Value to Target; Operator defaults to "="
type Assignment struct {
	Target   Expression `yaml:"target"`
	Value    Expression `yaml:"value"`
	Operator string     `yaml:"operator,omitempty"`
	Local    bool       `yaml:"local,omitempty"`
	Origin   Origin     `yaml:"origin,omitempty"`
}

func (s *Assignment) Accept(visitor Visitor) { visitor.VisitAssignment(s) }
func (s *Assignment) Source() Origin         { return s.Origin }
func (s *Assignment) stmtNode()              {}

// CallStatement is a function call used for its effects
type CallStatement struct {
	Target Expression `yaml:"target,omitempty"`
	Name   string     `yaml:"name"`
	Args   []Argument `yaml:"args,omitempty"`
	Origin Origin     `yaml:"origin,omitempty"`
}

func (s *CallStatement) Accept(visitor Visitor) { visitor.VisitCallStatement(s) }
func (s *CallStatement) Source() Origin         { return s.Origin }
func (s *CallStatement) stmtNode()              {}

// Branch is a two-way conditional
type Branch struct {
	Condition Expression      `yaml:"condition"`
	True      *ExecutionBlock `yaml:"true"`
	False     *ExecutionBlock `yaml:"false"`
	Origin    Origin          `yaml:"origin,omitempty"`
}

func (s *Branch) Accept(visitor Visitor) { visitor.VisitBranch(s) }
func (s *Branch) Source() Origin         { return s.Origin }
func (s *Branch) stmtNode()              {}

// LoopKind discriminates loop statements
type LoopKind string

const (
	LoopForEach LoopKind = "forEach"
	LoopWhile   LoopKind = "while"
)

// Loop is a ForEach or While loop. ForEach carries Collection, Item and Index;
// While carries Condition.
type Loop struct {
	Kind       LoopKind        `yaml:"kind"`
	Collection Expression      `yaml:"collection,omitempty"`
	Item       *VariableDecl   `yaml:"item,omitempty"`
	Index      *VariableDecl   `yaml:"index,omitempty"`
	Condition  Expression      `yaml:"condition,omitempty"`
	Body       *ExecutionBlock `yaml:"body"`
	Origin     Origin          `yaml:"origin,omitempty"`
}

func (s *Loop) Accept(visitor Visitor) { visitor.VisitLoop(s) }
func (s *Loop) Source() Origin         { return s.Origin }
func (s *Loop) stmtNode()              {}

// CallbackBlock is a named continuation of a latent action together with the
// callback parameters that fire with it.
type CallbackBlock struct {
	Name       string          `yaml:"name"`
	Parameters []Parameter     `yaml:"parameters,omitempty"`
	Body       *ExecutionBlock `yaml:"body"`
	Origin     Origin          `yaml:"origin,omitempty"`
}

func (s *CallbackBlock) Accept(visitor Visitor) { visitor.VisitCallbackBlock(s) }
func (s *CallbackBlock) Source() Origin         { return s.Origin }
func (s *CallbackBlock) stmtNode()              {}

// LatentAction is an asynchronous call with a primary continuation and zero or
// more named callback continuations. Results lists data outputs not claimed by
// any callback block.
type LatentAction struct {
	Call      *FunctionCall    `yaml:"call"`
	Completed *ExecutionBlock  `yaml:"completed,omitempty"`
	Callbacks []*CallbackBlock `yaml:"callbacks,omitempty"`
	Results   []string         `yaml:"results,omitempty"`
	Origin    Origin           `yaml:"origin,omitempty"`
}

func (s *LatentAction) Accept(visitor Visitor) { visitor.VisitLatentAction(s) }
func (s *LatentAction) Source() Origin         { return s.Origin }
func (s *LatentAction) stmtNode()              {}

// TemporaryVariableDecl declares an extracted common subexpression
type TemporaryVariableDecl struct {
	Name   string     `yaml:"name"`
	Value  Expression `yaml:"value"`
	Origin Origin     `yaml:"origin,omitempty"`
}

func (s *TemporaryVariableDecl) Accept(visitor Visitor) { visitor.VisitTemporaryVariableDecl(s) }
func (s *TemporaryVariableDecl) Source() Origin         { return s.Origin }
func (s *TemporaryVariableDecl) stmtNode()              {}

// VariableDecl declares a named variable, optionally initialized
type VariableDecl struct {
	Name              string     `yaml:"name"`
	Type              string     `yaml:"type,omitempty"`
	Value             Expression `yaml:"value,omitempty"`
	LoopVariable      bool       `yaml:"loopVariable,omitempty"`
	CallbackParameter bool       `yaml:"callbackParameter,omitempty"`
	Origin            Origin     `yaml:"origin,omitempty"`
}

func (s *VariableDecl) Accept(visitor Visitor) { visitor.VisitVariableDecl(s) }
func (s *VariableDecl) Source() Origin         { return s.Origin }
func (s *VariableDecl) stmtNode()              {}

// EventSubscription binds a handler to an event: source.event += handler
type EventSubscription struct {
	Target  Expression `yaml:"target"`
	Event   string     `yaml:"event"`
	Handler Expression `yaml:"handler"`
	Origin  Origin     `yaml:"origin,omitempty"`
}

func (s *EventSubscription) Accept(visitor Visitor) { visitor.VisitEventSubscription(s) }
func (s *EventSubscription) Source() Origin         { return s.Origin }
func (s *EventSubscription) stmtNode()              {}

// Fallback stands in for a node kind the analyzer does not recognize. It
// carries the raw kind, a bounded property subset and a pin summary so the
// output stays auditable without aborting the pass.
type Fallback struct {
	Kind       string            `yaml:"kind"`
	Properties map[string]string `yaml:"properties,omitempty"`
	Pins       []string          `yaml:"pins,omitempty"`
	Origin     Origin            `yaml:"origin,omitempty"`
}

func (s *Fallback) Accept(visitor Visitor) { visitor.VisitFallback(s) }
func (s *Fallback) Source() Origin         { return s.Origin }
func (s *Fallback) stmtNode()              {}

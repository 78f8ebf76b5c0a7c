package analyzer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/viant/blueprint/ast"
	"github.com/viant/blueprint/analyzer/scope"
	"github.com/viant/blueprint/graph"
)

func registerDefaults(registry *Registry) {
	registry.Register("K2Node_Event", processEvent)
	registry.Register("K2Node_CustomEvent", processEvent)
	registry.Register("K2Node_ComponentBoundEvent", processEvent)
	registry.Register("K2Node_VariableSet", processVariableSet)
	registry.Register("K2Node_VariableGet", processVariableGet)
	registry.Register("K2Node_CallFunction", processCallFunction)
	registry.Register("K2Node_CallArrayFunction", processCallArrayFunction)
	registry.Register("K2Node_IfThenElse", processBranch)
	registry.Register("K2Node_ExecutionSequence", processSequence)
	registry.Register("K2Node_Knot", processKnot)
	registry.Register("K2Node_DynamicCast", processDynamicCast)
	registry.Register("K2Node_Literal", processLiteral)
	registry.Register("K2Node_MathExpression", processMathExpression)
	registry.Register("K2Node_ArrayGet", processArrayGet)
	registry.Register("K2Node_MacroInstance:ForEachLoop", processForEach)
	registry.Register("K2Node_MacroInstance:WhileLoop", processWhile)
	registry.Register("K2Node_MacroInstance", processGenericMacro)
	registry.Register("K2Node_LatentAbilityCall", processLatentCall)
	registry.Register("K2Node_AssignDelegate", processAssignDelegate)
}

// processEvent handles event entry nodes: the event name and parameters come
// from reference metadata, the body from walking the successor exec pin.
// Parameter output pins are bound so reads inside the body resolve by name.
func processEvent(context *Context, node *graph.Node) (Result, error) {
	event := &ast.Event{
		Name:   eventName(node),
		Body:   &ast.ExecutionBlock{},
		Origin: origin(node),
	}
	for _, pin := range node.Pins {
		if pin.Direction != graph.DirOutput || pin.Kind != graph.PinData {
			continue
		}
		event.Parameters = append(event.Parameters, ast.Parameter{Name: pin.Name, Type: pin.Type})
		context.Scopes.BindPin(pin.ID, &ast.VariableGet{Name: pin.Name, Origin: origin(node)})
	}
	if execPin := nextExecPin(node); execPin != nil {
		context.WalkFlow(execPin, &event.Body.Statements)
	}
	return Result{Node: event}, nil
}

// processVariableSet handles assignments. Writes through a linked self pin on
// a non-self reference become property assignments. An assignment whose value
// is a cast that already initialized a declared symbol is dropped; the
// declaration in the cast branch covers it.
func processVariableSet(context *Context, node *graph.Node) (Result, error) {
	name := memberName(node, "VariableReference", "UnknownVariable")
	self := selfContext(node, "VariableReference")

	valuePin := node.Pin(name, graph.DirInput)
	if valuePin == nil {
		for _, pin := range node.Pins {
			if pin.Direction == graph.DirInput && pin.Kind == graph.PinData && pin.Name != "self" {
				valuePin = pin
				break
			}
		}
	}
	value := context.Resolve(valuePin)
	if cast, ok := value.(*ast.Cast); ok {
		if _, declared := context.castDecls[cast.Origin.NodeGUID]; declared {
			return Result{}, nil
		}
	}

	var target ast.Expression
	selfPin := node.Pin("self", graph.DirInput)
	propertyWrite := selfPin.HasLinks() && !self
	if propertyWrite {
		target = &ast.PropertyAccess{Target: context.Resolve(selfPin), Name: name, Origin: origin(node)}
	} else {
		target = &ast.VariableGet{Name: name, SelfScoped: self, Origin: origin(node)}
	}
	return Result{Node: &ast.Assignment{
		Target: target,
		Value:  value,
		Local:  !self && !propertyWrite,
		Origin: origin(node),
	}}, nil
}

func processVariableGet(context *Context, node *graph.Node) (Result, error) {
	return Result{Node: context.variableGetExpression(node)}, nil
}

func processCallFunction(context *Context, node *graph.Node) (Result, error) {
	call := context.callExpression(node, nil)
	if !node.HasExecPins() {
		return Result{Node: call}, nil
	}
	return Result{Node: &ast.CallStatement{
		Target: call.Target,
		Name:   call.Name,
		Args:   call.Args,
		Origin: call.Origin,
	}}, nil
}

func processCallArrayFunction(context *Context, node *graph.Node) (Result, error) {
	targetPin := node.PinByAliases(graph.DirInput, "TargetArray", "Array")
	var target ast.Expression
	if targetPin.HasLinks() {
		target = context.Resolve(targetPin)
	}
	args := context.callArguments(node, map[string]bool{"TargetArray": true, "Array": true})
	name := memberName(node, "FunctionReference", "UnknownFunction")
	if !node.HasExecPins() {
		return Result{Node: &ast.FunctionCall{Target: target, Name: name, Args: args, Origin: origin(node)}}, nil
	}
	return Result{Node: &ast.CallStatement{Target: target, Name: name, Args: args, Origin: origin(node)}}, nil
}

// processBranch handles two-way conditionals. Success/failure pins appear as
// "then"/"else" or "True"/"False" depending on dump vintage; both spellings
// populate the branches identically.
func processBranch(context *Context, node *graph.Node) (Result, error) {
	condition := context.Resolve(node.Pin("Condition", graph.DirInput))
	branch := &ast.Branch{
		Condition: condition,
		True:      &ast.ExecutionBlock{},
		False:     &ast.ExecutionBlock{},
		Origin:    origin(node),
	}
	if pin := node.PinByAliases(graph.DirOutput, "then", "true"); pin.HasLinks() {
		context.WalkFlow(pin, &branch.True.Statements)
	}
	if pin := node.PinByAliases(graph.DirOutput, "else", "false"); pin.HasLinks() {
		context.WalkFlow(pin, &branch.False.Statements)
	}
	return Result{Node: branch}, nil
}

// processSequence walks every then pin in numeric order into one block
func processSequence(context *Context, node *graph.Node) (Result, error) {
	block := &ast.ExecutionBlock{Origin: origin(node)}
	pins := node.ExecOutputs()
	sort.SliceStable(pins, func(i, j int) bool {
		return sequenceOrder(pins[i].Name) < sequenceOrder(pins[j].Name)
	})
	for _, pin := range pins {
		if pin.HasLinks() {
			context.WalkFlow(pin, &block.Statements)
		}
	}
	return Result{Node: block}, nil
}

// sequenceOrder ranks exec output names so then_0 runs before then_1
func sequenceOrder(name string) int {
	lower := strings.ToLower(name)
	if index := strings.LastIndexAny(lower, "_ "); index != -1 {
		if order, err := strconv.Atoi(lower[index+1:]); err == nil {
			return order
		}
	}
	if lower == "exec" || lower == "then" {
		return -1
	}
	return 1 << 20
}

// processKnot handles reroute nodes: they emit nothing, the walker simply
// continues through their exec output.
func processKnot(context *Context, node *graph.Node) (Result, error) {
	return Result{}, nil
}

// processDynamicCast models a cast as a branch on cast success. The true arm
// opens with a declaration of the cast result, named after the node's "As X"
// output pin, and the symbol is registered so later processing recognizes it.
func processDynamicCast(context *Context, node *graph.Node) (Result, error) {
	cast := context.castExpression(node)

	var asPin *graph.Pin
	for _, pin := range node.Pins {
		if pin.Direction == graph.DirOutput && pin.Kind == graph.PinData && strings.HasPrefix(pin.Name, "As ") {
			asPin = pin
			break
		}
	}
	name := "As " + cast.TargetType
	if asPin != nil {
		name = asPin.Name
	}
	decl := &ast.VariableDecl{Name: name, Type: cast.TargetType, Value: cast, Origin: origin(node)}
	context.Scopes.Define(&scope.Symbol{Name: name, Type: cast.TargetType, Decl: decl})
	context.castDecls[node.GUID] = name

	branch := &ast.Branch{
		Condition: cast,
		True:      &ast.ExecutionBlock{Statements: []ast.Statement{decl}},
		False:     &ast.ExecutionBlock{},
		Origin:    origin(node),
	}
	if pin := node.PinByAliases(graph.DirOutput, "then", "true"); pin.HasLinks() {
		context.WalkFlow(pin, &branch.True.Statements)
	}
	if pin := node.Pin("CastFailed", graph.DirOutput); pin.HasLinks() {
		context.WalkFlow(pin, &branch.False.Statements)
	}
	return Result{Node: branch}, nil
}

func processLiteral(context *Context, node *graph.Node) (Result, error) {
	return Result{Node: &ast.Literal{Value: node.Property("ObjectRef", "null"), Type: "literal", Origin: origin(node)}}, nil
}

func processMathExpression(context *Context, node *graph.Node) (Result, error) {
	return Result{Node: context.mathExpression(node)}, nil
}

func processArrayGet(context *Context, node *graph.Node) (Result, error) {
	return Result{Node: context.arrayAccessExpression(node)}, nil
}

// processForEach expands a ForEach macro into a loop with scoped element and
// index variables. The body walks inside the loop scope; the walker resumes
// from the Completed pin so statements after the loop stay outside it.
func processForEach(context *Context, node *graph.Node) (Result, error) {
	collection := context.Resolve(node.PinByAliases(graph.DirInput, "Array"))

	item := &ast.VariableDecl{Name: "ArrayElement", Type: "auto", LoopVariable: true, Origin: origin(node)}
	index := &ast.VariableDecl{Name: "ArrayIndex", Type: "int", LoopVariable: true, Origin: origin(node)}
	element := &ast.LoopVariable{Name: item.Name, LoopID: node.GUID, Origin: origin(node)}
	position := &ast.LoopVariable{Name: index.Name, Index: true, LoopID: node.GUID, Origin: origin(node)}

	context.Scopes.Enter()
	defer context.Scopes.Leave()
	if pin := node.PinByAliases(graph.DirOutput, "Array Element", "ArrayElement"); pin != nil {
		context.Scopes.BindPin(pin.ID, element)
	}
	if pin := node.PinByAliases(graph.DirOutput, "Array Index", "ArrayIndex"); pin != nil {
		context.Scopes.BindPin(pin.ID, position)
	}
	context.Scopes.Define(&scope.Symbol{Name: item.Name, Type: item.Type, Decl: item, Value: element, LoopVariable: true})
	context.Scopes.Define(&scope.Symbol{Name: index.Name, Type: index.Type, Decl: index, Value: position, LoopVariable: true})

	loop := &ast.Loop{
		Kind:       ast.LoopForEach,
		Collection: collection,
		Item:       item,
		Index:      index,
		Body:       &ast.ExecutionBlock{},
		Origin:     origin(node),
	}
	if pin := node.Pin("LoopBody", graph.DirOutput); pin.HasLinks() {
		context.WalkFlow(pin, &loop.Body.Statements)
	}
	return Result{Node: loop, Continuation: node.Pin("Completed", graph.DirOutput)}, nil
}

// processWhile expands a While macro; no extra scope is needed beyond the
// condition, and the macro's own successor pin is the natural continuation.
func processWhile(context *Context, node *graph.Node) (Result, error) {
	loop := &ast.Loop{
		Kind:      ast.LoopWhile,
		Condition: context.Resolve(node.Pin("Condition", graph.DirInput)),
		Body:      &ast.ExecutionBlock{},
		Origin:    origin(node),
	}
	if pin := node.Pin("LoopBody", graph.DirOutput); pin.HasLinks() {
		context.WalkFlow(pin, &loop.Body.Statements)
	}
	return Result{Node: loop}, nil
}

// processGenericMacro renders unrecognized macros as Macro_<name> calls
func processGenericMacro(context *Context, node *graph.Node) (Result, error) {
	name := macroName(node)
	if name == "" {
		name = "UnknownMacro"
	}
	return Result{Node: &ast.CallStatement{
		Name:   "Macro_" + name,
		Args:   context.callArguments(node, nil),
		Origin: origin(node),
	}}, nil
}

// processLatentCall models an async call: the primary invocation plus one
// statement block per named continuation. Data outputs are attached to the
// callback whose pin name they share a token with; this is a best-effort
// naming heuristic, not a guaranteed mapping. Unclaimed outputs are listed
// as results of the primary call.
func processLatentCall(context *Context, node *graph.Node) (Result, error) {
	call := &ast.FunctionCall{
		Name:   strings.Trim(node.Property("ProxyFactoryFunctionName", "UnknownAction"), `"`),
		Args:   context.callArguments(node, map[string]bool{"OwningAbility": true}),
		Origin: origin(node),
	}
	latent := &ast.LatentAction{Call: call, Completed: &ast.ExecutionBlock{}, Origin: origin(node)}

	var dataOutputs []*graph.Pin
	for _, pin := range node.Pins {
		if pin.Direction == graph.DirOutput && pin.Kind == graph.PinData {
			dataOutputs = append(dataOutputs, pin)
		}
	}
	claimed := map[string]bool{}

	for _, pin := range node.ExecOutputs() {
		if pin.Name == "then" {
			context.WalkFlow(pin, &latent.Completed.Statements)
			continue
		}
		callback := &ast.CallbackBlock{Name: pin.Name, Body: &ast.ExecutionBlock{}, Origin: origin(node)}
		context.Scopes.Enter()
		token := strings.ToLower(strings.TrimPrefix(pin.Name, "On"))
		for _, data := range dataOutputs {
			if token == "" || !strings.Contains(strings.ToLower(data.Name), token) {
				continue
			}
			claimed[data.ID] = true
			callback.Parameters = append(callback.Parameters, ast.Parameter{Name: data.Name, Type: data.Type})
			context.Scopes.BindPin(data.ID, &ast.VariableGet{Name: data.Name, Origin: origin(node)})
			context.Scopes.Define(&scope.Symbol{Name: data.Name, Type: data.Type, CallbackParameter: true})
		}
		context.WalkFlow(pin, &callback.Body.Statements)
		context.Scopes.Leave()
		latent.Callbacks = append(latent.Callbacks, callback)
	}
	for _, data := range dataOutputs {
		if !claimed[data.ID] {
			latent.Results = append(latent.Results, data.Name)
		}
	}
	return Result{Node: latent}, nil
}

// processAssignDelegate emits an event subscription: source.event += handler
func processAssignDelegate(context *Context, node *graph.Node) (Result, error) {
	var target ast.Expression
	if selfPin := node.Pin("self", graph.DirInput); selfPin.HasLinks() {
		target = context.Resolve(selfPin)
	} else {
		target = &ast.VariableGet{Name: "self", SelfScoped: true, Origin: origin(node)}
	}
	event := memberName(node, "DelegateReference", "")
	if event == "" {
		event = memberName(node, "VariableReference", "UnknownEvent")
	}
	var handler ast.Expression
	if pin := node.PinByAliases(graph.DirInput, "Delegate", "Value"); pin.HasLinks() {
		handler = context.Resolve(pin)
	} else {
		handler = &ast.Literal{Value: "null", Type: "delegate", Origin: origin(node)}
	}
	return Result{Node: &ast.EventSubscription{
		Target:  target,
		Event:   event,
		Handler: handler,
		Origin:  origin(node),
	}}, nil
}

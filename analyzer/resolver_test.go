package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/blueprint/analyzer/scope"
	"github.com/viant/blueprint/ast"
	"github.com/viant/blueprint/graph"
)

func variableGetNode(guid, variable string) *graph.Node {
	return node(guid, guid, "/Script/BlueprintGraph.K2Node_VariableGet",
		map[string]string{"VariableReference": `(MemberName="` + variable + `")`},
		dataOut(guid+".out", variable))
}

func pureChainNode(guid, function string) *graph.Node {
	return node(guid, guid, "/Script/BlueprintGraph.K2Node_CallFunction",
		map[string]string{"FunctionReference": `(MemberName="` + function + `")`, "bIsPureFunc": "True"},
		dataIn(guid+".in", "Value"), dataOut(guid+".out", "ReturnValue"))
}

func TestResolve_UnlinkedPin(t *testing.T) {
	g := build(t, []*graph.Node{eventNode("ev", "BeginPlay")})
	context := newContext(New(), g)

	var testCases = []struct {
		description string
		pin         *graph.Pin
		symbol      *scope.Symbol
		expect      ast.Expression
	}{
		{
			description: "nil pin",
			expect:      &ast.Literal{Value: "null", Type: "null"},
		},
		{
			description: "pin default",
			pin:         &graph.Pin{ID: "p1", Name: "Count", Direction: graph.DirInput, Kind: graph.PinData, Type: "int", Default: "42"},
			expect:      &ast.Literal{Value: "42", Type: "int"},
		},
		{
			description: "no default, no type",
			pin:         &graph.Pin{ID: "p2", Name: "Target", Direction: graph.DirInput, Kind: graph.PinData},
			expect:      &ast.Literal{Value: "null", Type: "unknown"},
		},
		{
			description: "visible symbol wins over default",
			pin:         &graph.Pin{ID: "p3", Name: "Count", Direction: graph.DirInput, Kind: graph.PinData, Default: "0"},
			symbol:      &scope.Symbol{Name: "Count"},
			expect:      &ast.VariableGet{Name: "Count"},
		},
	}
	for _, testCase := range testCases {
		if testCase.symbol != nil {
			context.Scopes.Enter()
			context.Scopes.Define(testCase.symbol)
		}
		actual := context.Resolve(testCase.pin)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
		if testCase.symbol != nil {
			context.Scopes.Leave()
		}
	}
}

func TestResolve_Memoization(t *testing.T) {
	use := node("use", "use", "/Script/BlueprintGraph.K2Node_CallFunction",
		map[string]string{"FunctionReference": `(MemberName="Use")`},
		execIn("use.exec"), dataIn("use.a", "A"), dataIn("use.b", "B"))
	g := build(t,
		[]*graph.Node{variableGetNode("vg", "Score"), use},
		link{"vg", "vg.out", "use", "use.a"},
		link{"vg", "vg.out", "use", "use.b"},
	)
	context := newContext(New(), g)
	context.countPinUsage()

	consumer := g.Node("use")
	first := context.Resolve(consumer.PinByID("use.a"))
	second := context.Resolve(consumer.PinByID("use.b"))

	variable, ok := first.(*ast.VariableGet)
	require.True(t, ok)
	assert.EqualValues(t, "Score", variable.Name)
	assert.Same(t, first, second)
}

func TestResolve_TemporaryExtraction(t *testing.T) {
	g := build(t,
		[]*graph.Node{
			eventNode("ev", "BeginPlay"),
			pureCallNode("get", "GetHealth"),
			variableSetNode("set1", "Health"),
			variableSetNode("set2", "Mana"),
		},
		link{"ev", "ev.then", "set1", "set1.exec"},
		link{"set1", "set1.then", "set2", "set2.exec"},
		link{"get", "get.ret", "set1", "set1.value"},
		link{"get", "get.ret", "set2", "set2.value"},
	)

	statements, err := New().Analyze(g)
	require.NoError(t, err)
	event := statements[0].(*ast.Event)
	require.Len(t, event.Body.Statements, 3)

	decl, ok := event.Body.Statements[0].(*ast.TemporaryVariableDecl)
	require.True(t, ok)
	assert.EqualValues(t, "temp_gethealth", decl.Name)
	value, ok := decl.Value.(*ast.FunctionCall)
	require.True(t, ok)
	assert.EqualValues(t, "GetHealth", value.Name)

	for i := 1; i < 3; i++ {
		assignment := event.Body.Statements[i].(*ast.Assignment)
		ref, ok := assignment.Value.(*ast.TemporaryVariableRef)
		require.True(t, ok)
		assert.EqualValues(t, decl.Name, ref.Name)
	}
}

func TestResolve_TrivialProducerSkipsTemp(t *testing.T) {
	// a variable read feeding two consumers is repeated inline
	g := build(t,
		[]*graph.Node{
			eventNode("ev", "BeginPlay"),
			variableGetNode("vg", "Score"),
			variableSetNode("set1", "Health"),
			variableSetNode("set2", "Mana"),
		},
		link{"ev", "ev.then", "set1", "set1.exec"},
		link{"set1", "set1.then", "set2", "set2.exec"},
		link{"vg", "vg.out", "set1", "set1.value"},
		link{"vg", "vg.out", "set2", "set2.value"},
	)

	statements, err := New().Analyze(g)
	require.NoError(t, err)
	event := statements[0].(*ast.Event)
	require.Len(t, event.Body.Statements, 2)
	for _, statement := range event.Body.Statements {
		assignment := statement.(*ast.Assignment)
		assert.IsType(t, &ast.VariableGet{}, assignment.Value)
	}
}

func TestResolve_CircularReference(t *testing.T) {
	g := build(t,
		[]*graph.Node{pureChainNode("a", "FuncA"), pureChainNode("b", "FuncB")},
		link{"a", "a.out", "b", "b.in"},
		link{"b", "b.out", "a", "a.in"},
	)
	context := newContext(New(), g)
	context.countPinUsage()

	outer := context.Resolve(g.Node("b").PinByID("b.in"))

	callA, ok := outer.(*ast.FunctionCall)
	require.True(t, ok)
	assert.EqualValues(t, "FuncA", callA.Name)
	require.Len(t, callA.Args, 1)
	callB, ok := callA.Args[0].Value.(*ast.FunctionCall)
	require.True(t, ok)
	assert.EqualValues(t, "FuncB", callB.Name)
	require.Len(t, callB.Args, 1)
	literal, ok := callB.Args[0].Value.(*ast.Literal)
	require.True(t, ok)
	assert.True(t, literal.IsError())
	assert.EqualValues(t, "<circular reference>", literal.Value)
}

func TestResolve_MissingProducer(t *testing.T) {
	g := build(t, []*graph.Node{eventNode("ev", "BeginPlay")})
	context := newContext(New(), g)

	pin := &graph.Pin{
		ID: "p", Name: "Target", Direction: graph.DirInput, Kind: graph.PinData,
		Links: []graph.LinkRef{{NodeGUID: "ghost", PinID: "ghost.out"}},
	}
	actual := context.Resolve(pin)

	literal, ok := actual.(*ast.Literal)
	require.True(t, ok)
	assert.True(t, literal.IsError())
	assert.EqualValues(t, "<node not found>", literal.Value)
}

func TestTempNameUniquify(t *testing.T) {
	g := build(t, []*graph.Node{pureCallNode("get", "BP_GetHealth")})
	context := newContext(New(), g)

	source := g.Node("get")
	assert.EqualValues(t, "temp_gethealth", context.tempName(source))
	assert.EqualValues(t, "temp_gethealth_1", context.tempName(source))
}

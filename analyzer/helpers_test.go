package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/viant/blueprint/graph"
)

// test fixture helpers shared by the analyzer tests

func node(guid, name, kind string, properties map[string]string, pins ...*graph.Pin) *graph.Node {
	return &graph.Node{GUID: guid, Name: name, Kind: kind, Properties: properties, Pins: pins}
}

func execIn(id string) *graph.Pin {
	return &graph.Pin{ID: id, Name: "exec", Direction: graph.DirInput, Kind: graph.PinExec}
}

func execOut(id, name string) *graph.Pin {
	return &graph.Pin{ID: id, Name: name, Direction: graph.DirOutput, Kind: graph.PinExec}
}

func dataIn(id, name string) *graph.Pin {
	return &graph.Pin{ID: id, Name: name, Direction: graph.DirInput, Kind: graph.PinData}
}

func dataOut(id, name string) *graph.Pin {
	return &graph.Pin{ID: id, Name: name, Direction: graph.DirOutput, Kind: graph.PinData}
}

type link struct {
	fromNode, fromPin string
	toNode, toPin     string
}

func build(t *testing.T, nodes []*graph.Node, links ...link) *graph.Graph {
	t.Helper()
	builder := graph.NewBuilder()
	for _, item := range nodes {
		builder.AddNode(item)
	}
	for _, item := range links {
		builder.Connect(item.fromNode, item.fromPin, item.toNode, item.toPin)
	}
	result, err := builder.Build()
	require.NoError(t, err)
	return result
}

func eventNode(guid, eventName string) *graph.Node {
	return node(guid, guid, "/Script/BlueprintGraph.K2Node_Event",
		map[string]string{"EventReference": `(MemberName="` + eventName + `")`},
		execOut(guid+".then", "then"))
}

func variableSetNode(guid, variable string) *graph.Node {
	return node(guid, guid, "/Script/BlueprintGraph.K2Node_VariableSet",
		map[string]string{"VariableReference": `(MemberName="` + variable + `",bSelfContext=True)`},
		execIn(guid+".exec"), execOut(guid+".then", "then"), dataIn(guid+".value", variable))
}

func pureCallNode(guid, function string) *graph.Node {
	return node(guid, guid, "/Script/BlueprintGraph.K2Node_CallFunction",
		map[string]string{"FunctionReference": `(MemberName="` + function + `")`, "bIsPureFunc": "True"},
		dataOut(guid+".ret", "ReturnValue"))
}

func callNode(guid, function string) *graph.Node {
	return node(guid, guid, "/Script/BlueprintGraph.K2Node_CallFunction",
		map[string]string{"FunctionReference": `(MemberName="` + function + `")`},
		execIn(guid+".exec"), execOut(guid+".then", "then"))
}

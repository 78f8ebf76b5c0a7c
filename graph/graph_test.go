package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNode_PinLookups(t *testing.T) {
	node := &Node{
		GUID: "n", Name: "n", Kind: "K2Node_IfThenElse",
		Properties: map[string]string{"NodeComment": "check", "Empty": ""},
		Pins: []*Pin{
			{ID: "n.exec", Name: "exec", Direction: DirInput, Kind: PinExec},
			{ID: "n.cond", Name: "Condition", Direction: DirInput, Kind: PinData},
			{ID: "n.true", Name: "True", Direction: DirOutput, Kind: PinExec},
			{ID: "n.false", Name: "False", Direction: DirOutput, Kind: PinExec},
		},
	}

	assert.Same(t, node.Pins[1], node.Pin("Condition", DirInput))
	assert.Nil(t, node.Pin("Condition", DirOutput))
	assert.Nil(t, node.Pin("missing", DirInput))

	// alias matching is case-insensitive and ordered by alias preference
	assert.Same(t, node.Pins[2], node.PinByAliases(DirOutput, "then", "true"))
	assert.Same(t, node.Pins[3], node.PinByAliases(DirOutput, "else", "false"))
	assert.Nil(t, node.PinByAliases(DirOutput, "completed"))

	assert.Same(t, node.Pins[0], node.PinByID("n.exec"))
	assert.Nil(t, node.PinByID("n.missing"))

	execOutputs := node.ExecOutputs()
	assert.Len(t, execOutputs, 2)
	assert.True(t, node.HasExecPins())
	assert.True(t, node.HasDataPins())

	assert.EqualValues(t, "check", node.Property("NodeComment", "fallback"))
	assert.EqualValues(t, "fallback", node.Property("Empty", "fallback"))
	assert.EqualValues(t, "fallback", node.Property("Missing", "fallback"))
}

func TestPin_HasLinks(t *testing.T) {
	var nilPin *Pin
	assert.False(t, nilPin.HasLinks())
	assert.False(t, (&Pin{ID: "p"}).HasLinks())
	assert.True(t, (&Pin{ID: "p", Links: []LinkRef{{NodeGUID: "n"}}}).HasLinks())
}

func TestGraph_NodeLookup(t *testing.T) {
	node := &Node{GUID: "guid-1", Name: "BeginPlay"}
	g := &Graph{Nodes: map[string]*Node{"guid-1": node}}

	assert.Same(t, node, g.Node("guid-1"))
	assert.Same(t, node, g.Node("BeginPlay"))
	assert.Nil(t, g.Node("missing"))
	assert.EqualValues(t, 1, g.Size())
}

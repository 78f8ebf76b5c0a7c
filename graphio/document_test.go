package graphio

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/blueprint/graph"
)

var documentYAML = `name: BP_Door
nodes:
  - guid: ev
    name: ev
    kind: /Script/BlueprintGraph.K2Node_Event
    properties:
      EventReference: (MemberName="BeginPlay")
    pins:
      - id: ev.then
        name: then
        direction: output
        kind: exec
        links:
          - node: call
            pin: call.exec
  - guid: call
    name: call
    kind: /Script/BlueprintGraph.K2Node_CallFunction
    properties:
      FunctionReference: (MemberName="OpenDoor")
    pins:
      - id: call.exec
        name: exec
        direction: input
        kind: exec
      - id: call.speed
        name: Speed
        direction: input
        kind: data
        type: float
        default: "1.0"
`

func TestParse(t *testing.T) {
	g, err := Parse([]byte(documentYAML))
	require.NoError(t, err)

	assert.EqualValues(t, "BP_Door", g.Name)
	assert.EqualValues(t, 2, g.Size())
	require.Len(t, g.Entries, 1)
	assert.EqualValues(t, "ev", g.Entries[0].GUID)

	call := g.Node("call")
	require.NotNil(t, call)
	speed := call.PinByID("call.speed")
	require.NotNil(t, speed)
	assert.EqualValues(t, graph.PinData, speed.Kind)
	assert.EqualValues(t, "float", speed.Type)
	assert.EqualValues(t, "1.0", speed.Default)

	// document links get their reciprocal side filled in
	execPin := call.PinByID("call.exec")
	require.True(t, execPin.HasLinks())
	assert.EqualValues(t, graph.LinkRef{NodeGUID: "ev", PinID: "ev.then"}, execPin.Links[0])
}

func TestParse_Invalid(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expectError string
	}{
		{
			description: "malformed yaml",
			input:       "nodes: [",
			expectError: "failed to decode graph document",
		},
		{
			description: "duplicate guid",
			input:       "nodes:\n  - guid: a\n    kind: K2Node_Event\n  - guid: a\n    kind: K2Node_Event\n",
			expectError: "duplicate node guid",
		},
	}
	for _, testCase := range testCases {
		_, err := Parse([]byte(testCase.input))
		assert.ErrorContains(t, err, testCase.expectError, testCase.description)
	}
}

func TestLoad(t *testing.T) {
	location := filepath.Join(t.TempDir(), "door.yaml")
	require.NoError(t, os.WriteFile(location, []byte(documentYAML), 0o644))

	g, err := Load(context.Background(), location)
	require.NoError(t, err)
	assert.EqualValues(t, "BP_Door", g.Name)
	assert.EqualValues(t, 2, g.Size())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to load graph document")
}

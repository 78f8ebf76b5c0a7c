package analyzer

import (
	"regexp"
	"strings"

	"github.com/viant/blueprint/graph"
)

var memberNameMatcher = regexp.MustCompile(`MemberName="([^"]+)"`)
var quotedPathMatcher = regexp.MustCompile(`'([^']*)'`)

// memberName extracts MemberName="X" from a reference property such as
// FunctionReference or VariableReference; missing metadata falls back to the
// documented default.
func memberName(node *graph.Node, property, defaultValue string) string {
	value := node.Property(property, "")
	if match := memberNameMatcher.FindStringSubmatch(value); match != nil {
		return match[1]
	}
	return defaultValue
}

// selfContext reports whether a variable reference targets the owning object;
// references without an explicit bSelfContext=False are self-scoped.
func selfContext(node *graph.Node, property string) bool {
	return !strings.Contains(node.Property(property, ""), "bSelfContext=False")
}

// objectPath extracts the trailing object name from a quoted engine path,
// e.g. /Script/UMG.Border'Border_0' -> Border_0.
func objectPath(path string) string {
	match := quotedPathMatcher.FindStringSubmatch(path)
	if match == nil {
		return ""
	}
	name := match[1]
	if index := strings.LastIndex(name, "."); index != -1 {
		name = name[index+1:]
	}
	if index := strings.LastIndex(name, ":"); index != -1 {
		name = name[index+1:]
	}
	return name
}

// macroName extracts the macro graph name from a MacroGraphReference
// property, e.g. ...StandardMacros:ForEachLoop' -> ForEachLoop.
func macroName(node *graph.Node) string {
	value := node.Property("MacroGraphReference", "")
	if value == "" {
		return ""
	}
	if name := objectPath(value); name != "" {
		return name
	}
	name := value
	if index := strings.LastIndex(name, ":"); index != -1 {
		name = name[index+1:]
	}
	if index := strings.LastIndex(name, "/"); index != -1 {
		name = name[index+1:]
	}
	return name
}

// eventName extracts the event name from EventReference metadata, falling
// back to a custom event's declared function name, then the node name.
func eventName(node *graph.Node) string {
	if name := memberName(node, "EventReference", ""); name != "" {
		return name
	}
	if name := node.Property("CustomFunctionName", ""); name != "" {
		return strings.Trim(name, `"`)
	}
	if name := memberName(node, "DelegatePropertyName", ""); name != "" {
		return name
	}
	if node.Name != "" {
		return node.Name
	}
	return "UnknownEvent"
}

func isMacroInstance(kind string) bool {
	return strings.Contains(kind, "K2Node_MacroInstance")
}

// pureFunction reports whether a call node can be used in expression
// position: flagged pure, or exposing no exec pins at all.
func pureFunction(node *graph.Node) bool {
	if strings.Contains(node.Property("bIsPureFunc", ""), "True") {
		return true
	}
	return !node.HasExecPins()
}

package domain

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/common"
)

// Names of the built-in tools advertised to the assistant.
const (
	ToolName_RunCommand     = "run_command"
	ToolName_InspectNetwork = "inspect_network"
	ToolName_CreateTool     = "create_tool"
	ToolName_DeleteTool     = "delete_tool"
)

// CommandBlockedMessage is returned verbatim when the command runner refuses a command.
const CommandBlockedMessage = "Command blocked: only read-only informational commands are allowed, and redirection (>) or pipes (|) are not permitted."

// IsReservedToolName reports whether name belongs to a native or management tool.
func IsReservedToolName(name string) bool {
	switch name {
	case ToolName_RunCommand, ToolName_InspectNetwork, ToolName_CreateTool, ToolName_DeleteTool:
		return true
	}
	return false
}

// ToolHandlerKind identifies which kind of handler produced a tool result.
type ToolHandlerKind string

const (
	ToolHandlerKind_Native     ToolHandlerKind = "native"
	ToolHandlerKind_Custom     ToolHandlerKind = "custom"
	ToolHandlerKind_Management ToolHandlerKind = "management"
	ToolHandlerKind_None       ToolHandlerKind = "none"
)

// ToolInvocationRequest is the single tool call extracted from one assistant reply.
type ToolInvocationRequest struct {
	CallID string
	Name   string
	Args   map[string]any
}

// StringArg returns the named argument when it is a non-empty string.
func (r ToolInvocationRequest) StringArg(name string) (string, bool) {
	v, ok := r.Args[name].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// ToolExecutionResult is the outcome of one tool call. Content is the only thing
// fed back to the assistant.
type ToolExecutionResult struct {
	Content string
	Handler ToolHandlerKind
	Elapsed time.Duration
	IsError bool
}

// ToMessage converts the result into a tool-role message correlated with callID.
func (r ToolExecutionResult) ToMessage(callID string) AssistantMessage {
	return AssistantMessage{
		Role:         ChatRole_Tool,
		Content:      r.Content,
		ActionCallID: common.Ptr(callID),
	}
}

// ToolRouteKind is the closed set of handlers a tool call can be routed to.
type ToolRouteKind int

const (
	ToolRoute_Unknown ToolRouteKind = iota
	ToolRoute_CreateTool
	ToolRoute_DeleteTool
	ToolRoute_RunCommand
	ToolRoute_InspectNetwork
	ToolRoute_Custom
)

// String returns the route name.
func (k ToolRouteKind) String() string {
	switch k {
	case ToolRoute_CreateTool:
		return "create_tool"
	case ToolRoute_DeleteTool:
		return "delete_tool"
	case ToolRoute_RunCommand:
		return "run_command"
	case ToolRoute_InspectNetwork:
		return "inspect_network"
	case ToolRoute_Custom:
		return "custom"
	}
	return "unknown"
}

// ToolRoute is the resolved destination of a tool call. Tool is set only for ToolRoute_Custom.
type ToolRoute struct {
	Kind ToolRouteKind
	Tool *CustomTool
}

// Handler returns the handler kind serving the route.
func (r ToolRoute) Handler() ToolHandlerKind {
	switch r.Kind {
	case ToolRoute_CreateTool, ToolRoute_DeleteTool:
		return ToolHandlerKind_Management
	case ToolRoute_RunCommand, ToolRoute_InspectNetwork:
		return ToolHandlerKind_Native
	case ToolRoute_Custom:
		return ToolHandlerKind_Custom
	}
	return ToolHandlerKind_None
}

// ResolveToolRoute maps a tool name to its route. Management tools win over native
// tools, which win over the owner's custom tools.
func ResolveToolRoute(name string, catalog ToolCatalog) ToolRoute {
	switch name {
	case ToolName_CreateTool:
		return ToolRoute{Kind: ToolRoute_CreateTool}
	case ToolName_DeleteTool:
		return ToolRoute{Kind: ToolRoute_DeleteTool}
	case ToolName_RunCommand:
		return ToolRoute{Kind: ToolRoute_RunCommand}
	case ToolName_InspectNetwork:
		return ToolRoute{Kind: ToolRoute_InspectNetwork}
	}
	if tool, ok := catalog.FindCustomTool(name); ok {
		return ToolRoute{Kind: ToolRoute_Custom, Tool: &tool}
	}
	return ToolRoute{Kind: ToolRoute_Unknown}
}

// ToolCatalog is the set of tools advertised for one turn plus the custom tools
// they were built from.
type ToolCatalog struct {
	Definitions []AssistantActionDefinition
	CustomTools []CustomTool
}

// IsEmpty reports whether no tool is advertised.
func (c ToolCatalog) IsEmpty() bool {
	return len(c.Definitions) == 0
}

// FindCustomTool looks up a custom tool of the snapshot by name.
func (c ToolCatalog) FindCustomTool(name string) (CustomTool, bool) {
	for _, t := range c.CustomTools {
		if t.Name == name {
			return t, true
		}
	}
	return CustomTool{}, false
}

// ToolOutput is the result of a native tool. Native tools never fail with an error;
// Failed marks outputs that describe a failure.
type ToolOutput struct {
	Content string
	Failed  bool
}

// CommandRunner executes a single informational command under a fixed safety policy.
type CommandRunner interface {
	Run(ctx context.Context, command string) ToolOutput
}

// NetworkInspector loads a URL in an isolated browser and reports the requests it makes.
type NetworkInspector interface {
	Inspect(ctx context.Context, url string) ToolOutput
}

// ScriptExecutor runs custom tool code in an isolated, time-bounded runtime.
// Failures are reported as ExecutionTimeoutErr or ScriptRuntimeErr.
type ScriptExecutor interface {
	Run(ctx context.Context, code string, args map[string]any) (string, error)
}

package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// CustomToolArgsField is the single generic parameter every custom tool receives.
const CustomToolArgsField = "args"

// ToolCatalogBuilder builds the list of tools advertised to the assistant for one owner.
type ToolCatalogBuilder interface {
	Build(ctx context.Context, ownerID string, nativeEnabled bool) (domain.ToolCatalog, error)
}

// ToolCatalogBuilderImpl is the implementation of ToolCatalogBuilder.
type ToolCatalogBuilderImpl struct {
	registry ToolRegistry
}

// NewToolCatalogBuilderImpl creates a new instance of ToolCatalogBuilderImpl.
func NewToolCatalogBuilderImpl(registry ToolRegistry) ToolCatalogBuilderImpl {
	return ToolCatalogBuilderImpl{registry: registry}
}

// Build returns native tools, then management tools, then the owner's active custom
// tools in registry order. When nativeEnabled is false the catalog is empty.
func (b ToolCatalogBuilderImpl) Build(ctx context.Context, ownerID string, nativeEnabled bool) (domain.ToolCatalog, error) {
	spanCtx, span := telemetry.Start(ctx, ownerAttr(ownerID))
	defer span.End()

	if !nativeEnabled {
		telemetry.RecordErrorAndStatus(span, nil)
		return domain.ToolCatalog{}, nil
	}

	tools, err := b.registry.ListActive(spanCtx, ownerID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolCatalog{}, err
	}

	builtins := BuiltinToolDefinitions()
	definitions := make([]domain.AssistantActionDefinition, 0, len(builtins)+len(tools))
	definitions = append(definitions, builtins...)
	for _, tool := range tools {
		definitions = append(definitions, customToolDefinition(tool))
	}

	span.SetAttributes(attribute.Int("tool.catalog_size", len(definitions)))
	return domain.ToolCatalog{
		Definitions: definitions,
		CustomTools: tools,
	}, nil
}

// BuiltinToolDefinitions returns the native and management tool definitions in catalog order.
func BuiltinToolDefinitions() []domain.AssistantActionDefinition {
	return []domain.AssistantActionDefinition{
		{
			Name:        domain.ToolName_RunCommand,
			Description: "Runs a single read-only informational shell command (ls, pwd, cat, grep, whoami, date, echo, ping, curl, ps, uptime, free, git status/log/diff, and version checks of node, npm, python3 and go) and returns its output. Redirection and pipes are not allowed.",
			Input: domain.AssistantActionInput{
				Type: "object",
				Fields: map[string]domain.AssistantActionField{
					"command": {Type: "string", Description: "The command line to execute, e.g. 'ls -la'.", Required: true},
				},
			},
		},
		{
			Name:        domain.ToolName_InspectNetwork,
			Description: "Opens a URL in an isolated headless browser and returns the network requests (URL and HTTP method) the page makes while loading.",
			Input: domain.AssistantActionInput{
				Type: "object",
				Fields: map[string]domain.AssistantActionField{
					"url": {Type: "string", Description: "Absolute http or https URL to inspect.", Required: true},
				},
			},
		},
		{
			Name:        domain.ToolName_CreateTool,
			Description: "Creates a new custom tool for the current user. The code is the body of a JavaScript function that receives a single 'args' object and must return a value, e.g. 'return args.a + args.b;'.",
			Input: domain.AssistantActionInput{
				Type: "object",
				Fields: map[string]domain.AssistantActionField{
					"name":        {Type: "string", Description: "Tool name. It is lowercased and spaces become underscores.", Required: true},
					"description": {Type: "string", Description: "What the tool does and which args it expects.", Required: true},
					"code":        {Type: "string", Description: "JavaScript function body using 'args' and ending with a return statement.", Required: true},
				},
			},
		},
		{
			Name:        domain.ToolName_DeleteTool,
			Description: "Deletes one of the current user's custom tools.",
			Input: domain.AssistantActionInput{
				Type: "object",
				Fields: map[string]domain.AssistantActionField{
					"name": {Type: "string", Description: "Name of the tool to delete.", Required: true},
				},
			},
		},
	}
}

func customToolDefinition(tool domain.CustomTool) domain.AssistantActionDefinition {
	description := tool.Description
	if description == "" {
		description = tool.Name
	}
	return domain.AssistantActionDefinition{
		Name:        tool.Name,
		Description: description,
		Input: domain.AssistantActionInput{
			Type: "object",
			Fields: map[string]domain.AssistantActionField{
				CustomToolArgsField: {Type: "object", Description: "Arguments passed to the tool code as 'args'."},
			},
		},
	}
}

// InitToolCatalogBuilder initializes the ToolCatalogBuilder use case.
type InitToolCatalogBuilder struct {
	Registry ToolRegistry `resolve:""`
}

// Initialize registers the ToolCatalogBuilder use case in the dependency container.
func (i InitToolCatalogBuilder) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ToolCatalogBuilder](NewToolCatalogBuilderImpl(i.Registry))
	return ctx, nil
}

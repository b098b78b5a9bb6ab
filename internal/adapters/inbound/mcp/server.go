// Package mcp exposes each owner's tool catalog over the Model Context Protocol so
// external MCP clients reach the same tools the assistant does.
package mcp

import (
	"context"
	"log"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	serverName    = "toolchat"
	serverVersion = "1.0.0"
)

// OwnerFunc extracts the calling owner from an MCP HTTP request.
type OwnerFunc func(r *http.Request) string

// ToolServer builds MCP servers backed by the owner's tool catalog.
type ToolServer struct {
	catalogBuilder usecases.ToolCatalogBuilder
	invokeTool     usecases.InvokeTool
	logger         *log.Logger
}

// NewToolServer creates a new ToolServer.
func NewToolServer(catalogBuilder usecases.ToolCatalogBuilder, invokeTool usecases.InvokeTool, logger *log.Logger) ToolServer {
	return ToolServer{
		catalogBuilder: catalogBuilder,
		invokeTool:     invokeTool,
		logger:         logger,
	}
}

// NewServer returns an MCP server advertising the owner's catalog with tools enabled.
func (s ToolServer) NewServer(ctx context.Context, ownerID string) (*gomcp.Server, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("owner.id", ownerID)))
	defer span.End()

	catalog, err := s.catalogBuilder.Build(spanCtx, ownerID, true)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	server := gomcp.NewServer(&gomcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	for _, def := range catalog.Definitions {
		server.AddTool(&gomcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: toInputSchema(def),
		}, s.callTool(ownerID, def.Name))
	}
	span.SetAttributes(attribute.Int("mcp.tools", len(catalog.Definitions)))
	return server, nil
}

// Handler returns a stateless streamable HTTP handler. A fresh server is built for
// every request so catalog changes are visible immediately.
func (s ToolServer) Handler(owner OwnerFunc) http.Handler {
	return gomcp.NewStreamableHTTPHandler(func(r *http.Request) *gomcp.Server {
		server, err := s.NewServer(r.Context(), owner(r))
		if err != nil {
			s.logger.Printf("ToolServer: failed to build catalog: %v", err)
			return nil
		}
		return server
	}, &gomcp.StreamableHTTPOptions{Stateless: true, JSONResponse: true})
}

func (s ToolServer) callTool(ownerID, name string) gomcp.ToolHandler {
	return func(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		args, err := usecases.ParseToolArguments(string(req.Params.Arguments))
		if err != nil {
			return textResult(err.Error(), true), nil
		}

		result, err := s.invokeTool.Execute(ctx, ownerID, name, args)
		if err != nil {
			return nil, err
		}
		return textResult(result.Content, result.IsError), nil
	}
}

func textResult(text string, isError bool) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: text}},
		IsError: isError,
	}
}

func toInputSchema(def domain.AssistantActionDefinition) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(def.Input.Fields)),
		Required:   def.RequiredFields(),
	}
	for name, field := range def.Input.Fields {
		schema.Properties[name] = &jsonschema.Schema{
			Type:        field.Type,
			Description: field.Description,
		}
	}
	return schema
}

// InitToolServer registers the MCP ToolServer in the dependency container.
type InitToolServer struct {
	CatalogBuilder usecases.ToolCatalogBuilder `resolve:""`
	InvokeTool     usecases.InvokeTool         `resolve:""`
	Logger         *log.Logger                 `resolve:""`
}

// Initialize registers the ToolServer.
func (i InitToolServer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewToolServer(i.CatalogBuilder, i.InvokeTool, i.Logger))
	return ctx, nil
}

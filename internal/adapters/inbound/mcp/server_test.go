package mcp

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testCatalog = domain.ToolCatalog{
	Definitions: []domain.AssistantActionDefinition{
		{
			Name:        domain.ToolName_RunCommand,
			Description: "Runs a read-only command",
			Input: domain.AssistantActionInput{
				Type: "object",
				Fields: map[string]domain.AssistantActionField{
					"command": {Type: "string", Description: "command line", Required: true},
				},
			},
		},
		{
			Name:        "sum",
			Description: "Adds two numbers",
			Input: domain.AssistantActionInput{
				Type: "object",
				Fields: map[string]domain.AssistantActionField{
					"args": {Type: "object", Description: "arguments"},
				},
			},
		},
	},
}

func connect(t *testing.T, server *gomcp.Server) *gomcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverTransport, clientTransport := gomcp.NewInMemoryTransports()

	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ss.Close() }) //nolint:errcheck

	client := gomcp.NewClient(&gomcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { cs.Close() }) //nolint:errcheck
	return cs
}

func TestToolServer_ListTools(t *testing.T) {
	catalogBuilder := usecases.NewMockToolCatalogBuilder(t)
	catalogBuilder.EXPECT().Build(mock.Anything, "owner-1", true).Return(testCatalog, nil).Once()

	ts := NewToolServer(catalogBuilder, usecases.NewMockInvokeTool(t), log.New(io.Discard, "", 0))
	server, err := ts.NewServer(context.Background(), "owner-1")
	require.NoError(t, err)

	cs := connect(t, server)
	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, res.Tools, 2)

	names := []string{res.Tools[0].Name, res.Tools[1].Name}
	assert.ElementsMatch(t, []string{"run_command", "sum"}, names)

	for _, tool := range res.Tools {
		schema, ok := tool.InputSchema.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "object", schema["type"])
		if tool.Name == "run_command" {
			assert.Equal(t, []any{"command"}, schema["required"])
		}
	}
}

func TestToolServer_CallTool(t *testing.T) {
	tests := map[string]struct {
		arguments   any
		setupMocks  func(*usecases.MockInvokeTool)
		wantText    string
		wantIsError bool
		wantErr     bool
	}{
		"success": {
			arguments: map[string]any{"a": 2, "b": 3},
			setupMocks: func(m *usecases.MockInvokeTool) {
				m.EXPECT().
					Execute(mock.Anything, "owner-1", "sum", map[string]any{"a": float64(2), "b": float64(3)}).
					Return(domain.ToolExecutionResult{Content: "5", Handler: domain.ToolHandlerKind_Custom}, nil)
			},
			wantText: "5",
		},
		"no-arguments": {
			setupMocks: func(m *usecases.MockInvokeTool) {
				m.EXPECT().
					Execute(mock.Anything, "owner-1", "sum", map[string]any{}).
					Return(domain.ToolExecutionResult{Content: "0", Handler: domain.ToolHandlerKind_Custom}, nil)
			},
			wantText: "0",
		},
		"tool-failure": {
			arguments: map[string]any{"a": "x"},
			setupMocks: func(m *usecases.MockInvokeTool) {
				m.EXPECT().
					Execute(mock.Anything, "owner-1", "sum", map[string]any{"a": "x"}).
					Return(domain.ToolExecutionResult{Content: "Error: boom", Handler: domain.ToolHandlerKind_Custom, IsError: true}, nil)
			},
			wantText:    "Error: boom",
			wantIsError: true,
		},
		"invoke-error": {
			arguments: map[string]any{},
			setupMocks: func(m *usecases.MockInvokeTool) {
				m.EXPECT().
					Execute(mock.Anything, "owner-1", "sum", map[string]any{}).
					Return(domain.ToolExecutionResult{}, assert.AnError)
			},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalogBuilder := usecases.NewMockToolCatalogBuilder(t)
			catalogBuilder.EXPECT().Build(mock.Anything, "owner-1", true).Return(testCatalog, nil)
			invokeTool := usecases.NewMockInvokeTool(t)
			tt.setupMocks(invokeTool)

			ts := NewToolServer(catalogBuilder, invokeTool, log.New(io.Discard, "", 0))
			server, err := ts.NewServer(context.Background(), "owner-1")
			require.NoError(t, err)

			cs := connect(t, server)
			res, err := cs.CallTool(context.Background(), &gomcp.CallToolParams{Name: "sum", Arguments: tt.arguments})
			if tt.wantErr {
				assert.True(t, err != nil || res.IsError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIsError, res.IsError)
			require.Len(t, res.Content, 1)
			text, ok := res.Content[0].(*gomcp.TextContent)
			require.True(t, ok)
			assert.Equal(t, tt.wantText, text.Text)
		})
	}
}

func TestToolServer_NewServer_CatalogError(t *testing.T) {
	catalogBuilder := usecases.NewMockToolCatalogBuilder(t)
	catalogBuilder.EXPECT().Build(mock.Anything, "owner-1", true).Return(domain.ToolCatalog{}, assert.AnError)

	ts := NewToolServer(catalogBuilder, usecases.NewMockInvokeTool(t), log.New(io.Discard, "", 0))
	_, err := ts.NewServer(context.Background(), "owner-1")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestToolServer_Handler(t *testing.T) {
	const initialize = `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`

	tests := map[string]struct {
		catalogErr   error
		expectedCode int
		contains     string
	}{
		"initialize": {
			expectedCode: http.StatusOK,
			contains:     `"name":"toolchat"`,
		},
		"catalog-error": {
			catalogErr:   assert.AnError,
			expectedCode: http.StatusBadRequest,
			contains:     "no server available",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			catalogBuilder := usecases.NewMockToolCatalogBuilder(t)
			catalogBuilder.EXPECT().Build(mock.Anything, "owner-1", true).Return(testCatalog, tt.catalogErr)

			ts := NewToolServer(catalogBuilder, usecases.NewMockInvokeTool(t), log.New(io.Discard, "", 0))
			handler := ts.Handler(func(r *http.Request) string { return r.Header.Get("X-User-ID") })
			server := httptest.NewServer(handler)
			defer server.Close()

			req, err := http.NewRequest(http.MethodPost, server.URL, strings.NewReader(initialize))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept", "application/json, text/event-stream")
			req.Header.Set("X-User-ID", "owner-1")

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint:errcheck

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			assert.Contains(t, string(body), tt.contains)
		})
	}
}

func TestInitToolServer_Initialize(t *testing.T) {
	i := InitToolServer{
		CatalogBuilder: usecases.NewMockToolCatalogBuilder(t),
		InvokeTool:     usecases.NewMockInvokeTool(t),
		Logger:         log.New(io.Discard, "", 0),
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	_, err = depend.Resolve[ToolServer]()
	assert.NoError(t, err)
}

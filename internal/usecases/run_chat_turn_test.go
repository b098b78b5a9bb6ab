package usecases

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunChatTurnImpl_Execute(t *testing.T) {
	userMessages := []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "what is 2+3?"}}
	sumTool := domain.CustomTool{OwnerID: "owner-1", Name: "sum", Code: "return args.a + args.b;"}
	catalog := domain.ToolCatalog{
		Definitions: append(BuiltinToolDefinitions(), customToolDefinition(sumTool)),
		CustomTools: []domain.CustomTool{sumTool},
	}
	usage := domain.AssistantUsage{PromptTokens: 10, CompletionTokens: 2, TotalTokens: 12}

	tests := map[string]struct {
		input      ChatTurnInput
		setupMocks func(*domain.MockAssistant, *MockToolCatalogBuilder, *MockToolDispatcher)
		wantErr    error
		validateFn func(*testing.T, ChatTurnOutput)
	}{
		"no-tool-call-returns-first-reply": {
			input: ChatTurnInput{OwnerID: "owner-1", Model: "m", Messages: userMessages, UserInstructions: "be brief", ToolsEnabled: true},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {
				b.EXPECT().Build(mock.Anything, "owner-1", true).Return(catalog, nil)
				a.EXPECT().RunTurnSync(mock.Anything, mock.MatchedBy(func(req domain.AssistantTurnRequest) bool {
					return req.Model == "m" &&
						len(req.Messages) == 2 &&
						req.Messages[0].Role == domain.ChatRole_System &&
						req.Messages[0].Content == "admin rules\n\nbe brief" &&
						req.Messages[1].Content == "what is 2+3?" &&
						len(req.AvailableActions) == 5
				})).Return(domain.AssistantTurnResponse{Content: "5", Usage: usage}, nil).Once()
			},
			validateFn: func(t *testing.T, out ChatTurnOutput) {
				assert.Equal(t, 1, out.ProviderCalls)
				assert.Equal(t, "5", out.Message.Content)
				assert.Equal(t, domain.ChatRole_Assistant, out.Message.Role)
				assert.Nil(t, out.ToolCall)
				assert.Nil(t, out.ToolResult)
				assert.Equal(t, usage, out.Usage)
			},
		},
		"tool-call-dispatches-and-calls-provider-twice": {
			input: ChatTurnInput{OwnerID: "owner-1", Messages: userMessages, ToolsEnabled: true},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {
				b.EXPECT().Build(mock.Anything, "owner-1", true).Return(catalog, nil)
				a.EXPECT().RunTurnSync(mock.Anything, mock.MatchedBy(func(req domain.AssistantTurnRequest) bool {
					return len(req.AvailableActions) > 0
				})).Return(domain.AssistantTurnResponse{
					ActionCalls: []domain.AssistantActionCall{
						{ID: "call-1", Name: "sum", Input: `{"args":{"a":2,"b":3}}`},
						{ID: "call-2", Name: "run_command", Input: `{"command":"ls"}`},
					},
					Usage: usage,
				}, nil).Once()
				d.EXPECT().Dispatch(mock.Anything, "owner-1", domain.ToolInvocationRequest{
					CallID: "call-1",
					Name:   "sum",
					Args:   map[string]any{"args": map[string]any{"a": 2.0, "b": 3.0}},
				}, catalog).Return(domain.ToolExecutionResult{Content: "5", Handler: domain.ToolHandlerKind_Custom}).Once()
				a.EXPECT().RunTurnSync(mock.Anything, mock.MatchedBy(func(req domain.AssistantTurnRequest) bool {
					if len(req.AvailableActions) != 0 || len(req.Messages) != 4 {
						return false
					}
					assistantMsg := req.Messages[2]
					toolMsg := req.Messages[3]
					return assistantMsg.Role == domain.ChatRole_Assistant &&
						len(assistantMsg.ActionCalls) == 1 &&
						assistantMsg.ActionCalls[0].ID == "call-1" &&
						toolMsg.Role == domain.ChatRole_Tool &&
						toolMsg.Content == "5" &&
						*toolMsg.ActionCallID == "call-1"
				})).Return(domain.AssistantTurnResponse{Content: "The answer is 5.", Usage: usage}, nil).Once()
			},
			validateFn: func(t *testing.T, out ChatTurnOutput) {
				assert.Equal(t, 2, out.ProviderCalls)
				assert.Equal(t, "The answer is 5.", out.Message.Content)
				require.NotNil(t, out.ToolCall)
				assert.Equal(t, "sum", out.ToolCall.Name)
				require.NotNil(t, out.ToolResult)
				assert.Equal(t, "5", out.ToolResult.Content)
				assert.Equal(t, usage.Add(usage), out.Usage)
			},
		},
		"second-reply-requesting-tool-is-final": {
			input: ChatTurnInput{OwnerID: "owner-1", Model: "m", Messages: userMessages, ToolsEnabled: true},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {
				b.EXPECT().Build(mock.Anything, "owner-1", true).Return(catalog, nil)
				a.EXPECT().RunTurnSync(mock.Anything, mock.Anything).Return(domain.AssistantTurnResponse{
					Content:     "calling again",
					ActionCalls: []domain.AssistantActionCall{{ID: "call-1", Name: "run_command", Input: `{"command":"ls"}`}},
				}, nil).Times(2)
				d.EXPECT().Dispatch(mock.Anything, "owner-1", mock.Anything, catalog).
					Return(domain.ToolExecutionResult{Content: "file.txt"}).Once()
			},
			validateFn: func(t *testing.T, out ChatTurnOutput) {
				assert.Equal(t, 2, out.ProviderCalls)
				assert.Equal(t, "calling again", out.Message.Content)
				assert.Empty(t, out.Message.ActionCalls)
			},
		},
		"missing-call-id-is-generated": {
			input: ChatTurnInput{OwnerID: "owner-1", Model: "m", Messages: userMessages, ToolsEnabled: true},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {
				b.EXPECT().Build(mock.Anything, "owner-1", true).Return(catalog, nil)
				a.EXPECT().RunTurnSync(mock.Anything, mock.Anything).Return(domain.AssistantTurnResponse{
					ActionCalls: []domain.AssistantActionCall{{Name: "run_command", Input: ""}},
				}, nil).Once()
				d.EXPECT().Dispatch(mock.Anything, "owner-1", mock.MatchedBy(func(req domain.ToolInvocationRequest) bool {
					return len(req.CallID) > len("call_") && len(req.Args) == 0
				}), catalog).Return(domain.ToolExecutionResult{Content: "out"}).Once()
				a.EXPECT().RunTurnSync(mock.Anything, mock.Anything).Return(domain.AssistantTurnResponse{Content: "done"}, nil).Once()
			},
			validateFn: func(t *testing.T, out ChatTurnOutput) {
				assert.Equal(t, "done", out.Message.Content)
				assert.Contains(t, out.ToolCall.ID, "call_")
			},
		},
		"tools-disabled-ignores-stray-tool-calls": {
			input: ChatTurnInput{OwnerID: "owner-1", Model: "m", Messages: userMessages, ToolsEnabled: false},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {
				b.EXPECT().Build(mock.Anything, "owner-1", false).Return(domain.ToolCatalog{}, nil)
				a.EXPECT().RunTurnSync(mock.Anything, mock.MatchedBy(func(req domain.AssistantTurnRequest) bool {
					return len(req.AvailableActions) == 0
				})).Return(domain.AssistantTurnResponse{
					Content:     "plain answer",
					ActionCalls: []domain.AssistantActionCall{{ID: "x", Name: "run_command", Input: `{"command":"ls"}`}},
				}, nil).Once()
			},
			validateFn: func(t *testing.T, out ChatTurnOutput) {
				assert.Equal(t, 1, out.ProviderCalls)
				assert.Equal(t, "plain answer", out.Message.Content)
				assert.Nil(t, out.ToolCall)
			},
		},
		"invalid-arguments-are-terminal": {
			input: ChatTurnInput{OwnerID: "owner-1", Model: "m", Messages: userMessages, ToolsEnabled: true},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {
				b.EXPECT().Build(mock.Anything, "owner-1", true).Return(catalog, nil)
				a.EXPECT().RunTurnSync(mock.Anything, mock.Anything).Return(domain.AssistantTurnResponse{
					ActionCalls: []domain.AssistantActionCall{{ID: "call-1", Name: "sum", Input: `{"a":`}},
				}, nil).Once()
			},
			wantErr: &domain.ArgumentParseErr{},
		},
		"first-provider-call-fails": {
			input: ChatTurnInput{OwnerID: "owner-1", Model: "m", Messages: userMessages, ToolsEnabled: true},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {
				b.EXPECT().Build(mock.Anything, "owner-1", true).Return(catalog, nil)
				a.EXPECT().RunTurnSync(mock.Anything, mock.Anything).Return(domain.AssistantTurnResponse{}, assert.AnError).Once()
			},
			wantErr: &domain.ProviderErr{},
		},
		"second-provider-call-fails": {
			input: ChatTurnInput{OwnerID: "owner-1", Model: "m", Messages: userMessages, ToolsEnabled: true},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {
				b.EXPECT().Build(mock.Anything, "owner-1", true).Return(catalog, nil)
				a.EXPECT().RunTurnSync(mock.Anything, mock.Anything).Return(domain.AssistantTurnResponse{
					ActionCalls: []domain.AssistantActionCall{{ID: "call-1", Name: "run_command", Input: `{"command":"ls"}`}},
				}, nil).Once()
				d.EXPECT().Dispatch(mock.Anything, "owner-1", mock.Anything, catalog).Return(domain.ToolExecutionResult{Content: "x"}).Once()
				a.EXPECT().RunTurnSync(mock.Anything, mock.Anything).Return(domain.AssistantTurnResponse{}, assert.AnError).Once()
			},
			wantErr: &domain.ProviderErr{},
		},
		"catalog-error": {
			input: ChatTurnInput{OwnerID: "owner-1", Model: "m", Messages: userMessages, ToolsEnabled: true},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {
				b.EXPECT().Build(mock.Anything, "owner-1", true).Return(domain.ToolCatalog{}, assert.AnError)
			},
			wantErr: assert.AnError,
		},
		"missing-owner": {
			input:      ChatTurnInput{Model: "m", Messages: userMessages},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {},
			wantErr:    &domain.ValidationErr{},
		},
		"missing-messages": {
			input:      ChatTurnInput{OwnerID: "owner-1", Model: "m"},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {},
			wantErr:    &domain.ValidationErr{},
		},
		"invalid-role": {
			input: ChatTurnInput{OwnerID: "owner-1", Model: "m", Messages: []domain.AssistantMessage{
				{Role: "developer", Content: "hi"},
			}},
			setupMocks: func(a *domain.MockAssistant, b *MockToolCatalogBuilder, d *MockToolDispatcher) {},
			wantErr:    &domain.ValidationErr{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assistant := domain.NewMockAssistant(t)
			builder := NewMockToolCatalogBuilder(t)
			dispatcher := NewMockToolDispatcher(t)
			tt.setupMocks(assistant, builder, dispatcher)

			uc := NewRunChatTurnImpl(assistant, NewMockToolRegistry(t), builder, dispatcher, "admin rules", "default-model", log.New(io.Discard, "", 0))
			out, err := uc.Execute(context.Background(), tt.input)

			switch want := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
				tt.validateFn(t, out)
			case *domain.ArgumentParseErr:
				assert.ErrorAs(t, err, &want)
			case *domain.ProviderErr:
				assert.ErrorAs(t, err, &want)
				assert.ErrorIs(t, err, assert.AnError)
			case *domain.ValidationErr:
				assert.ErrorAs(t, err, &want)
			default:
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRunChatTurnImpl_Execute_UsesDefaultModel(t *testing.T) {
	assistant := domain.NewMockAssistant(t)
	builder := NewMockToolCatalogBuilder(t)
	builder.EXPECT().Build(mock.Anything, "owner-1", false).Return(domain.ToolCatalog{}, nil)
	assistant.EXPECT().RunTurnSync(mock.Anything, mock.MatchedBy(func(req domain.AssistantTurnRequest) bool {
		return req.Model == "default-model" && len(req.Messages) == 1 && req.Credentials != nil
	})).Return(domain.AssistantTurnResponse{Content: "hi"}, nil)

	uc := NewRunChatTurnImpl(assistant, NewMockToolRegistry(t), builder, NewMockToolDispatcher(t), "", "default-model", log.New(io.Discard, "", 0))
	out, err := uc.Execute(context.Background(), ChatTurnInput{
		OwnerID:     "owner-1",
		Messages:    []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "hello"}},
		Credentials: &domain.ProviderCredentials{BaseURL: "http://llm", APIKey: "k"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi", out.Message.Content)
}

func TestRunChatTurnImpl_Execute_UndoesToolCreationWhenTurnFails(t *testing.T) {
	catalog := domain.ToolCatalog{Definitions: BuiltinToolDefinitions()}
	createCall := domain.AssistantActionCall{
		ID:    "call-1",
		Name:  domain.ToolName_CreateTool,
		Input: `{"name":"Calcular Hash","description":"hashes","code":"return 1;"}`,
	}

	tests := map[string]struct {
		dispatchResult domain.ToolExecutionResult
		setupRegistry  func(*MockToolRegistry)
	}{
		"created-tool-is-deleted": {
			dispatchResult: domain.ToolExecutionResult{Content: "Tool 'calcular_hash' created successfully and is now available for use."},
			setupRegistry: func(r *MockToolRegistry) {
				r.EXPECT().Delete(mock.Anything, "owner-1", "Calcular Hash").Return(true, nil).Once()
			},
		},
		"delete-failure-keeps-provider-error": {
			dispatchResult: domain.ToolExecutionResult{Content: "created"},
			setupRegistry: func(r *MockToolRegistry) {
				r.EXPECT().Delete(mock.Anything, "owner-1", "Calcular Hash").Return(false, errors.New("db down")).Once()
			},
		},
		"failed-creation-needs-no-undo": {
			dispatchResult: domain.ToolExecutionResult{Content: "Tool creation failed: tool already exists (x).", IsError: true},
			setupRegistry:  func(r *MockToolRegistry) {},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assistant := domain.NewMockAssistant(t)
			builder := NewMockToolCatalogBuilder(t)
			dispatcher := NewMockToolDispatcher(t)
			registry := NewMockToolRegistry(t)
			tt.setupRegistry(registry)

			builder.EXPECT().Build(mock.Anything, "owner-1", true).Return(catalog, nil)
			assistant.EXPECT().RunTurnSync(mock.Anything, mock.Anything).
				Return(domain.AssistantTurnResponse{ActionCalls: []domain.AssistantActionCall{createCall}}, nil).Once()
			dispatcher.EXPECT().Dispatch(mock.Anything, "owner-1", mock.Anything, catalog).Return(tt.dispatchResult).Once()
			assistant.EXPECT().RunTurnSync(mock.Anything, mock.Anything).
				Return(domain.AssistantTurnResponse{}, assert.AnError).Once()

			uc := NewRunChatTurnImpl(assistant, registry, builder, dispatcher, "", "m", log.New(io.Discard, "", 0))
			_, err := uc.Execute(context.Background(), ChatTurnInput{
				OwnerID:      "owner-1",
				Messages:     userMessagesFixture(),
				ToolsEnabled: true,
			})

			var providerErr *domain.ProviderErr
			assert.ErrorAs(t, err, &providerErr)
			assert.ErrorIs(t, err, assert.AnError)
		})
	}
}

func userMessagesFixture() []domain.AssistantMessage {
	return []domain.AssistantMessage{{Role: domain.ChatRole_User, Content: "create a hash tool"}}
}

func TestBuildSystemPrompt(t *testing.T) {
	tests := map[string]struct {
		admin string
		user  string
		want  string
	}{
		"both":       {admin: "admin", user: "user", want: "admin\n\nuser"},
		"admin-only": {admin: "admin", want: "admin"},
		"user-only":  {user: "user", want: "user"},
		"none":       {want: ""},
		"trimmed":    {admin: "  admin \n", user: "\tuser ", want: "admin\n\nuser"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSystemPrompt(tt.admin, tt.user))
		})
	}
}

func TestParseToolArguments(t *testing.T) {
	tests := map[string]struct {
		raw     string
		want    map[string]any
		wantErr bool
	}{
		"object":      {raw: `{"a":2,"b":3}`, want: map[string]any{"a": 2.0, "b": 3.0}},
		"empty":       {raw: "", want: map[string]any{}},
		"whitespace":  {raw: "  ", want: map[string]any{}},
		"null":        {raw: "null", want: map[string]any{}},
		"invalid":     {raw: `{"a":`, wantErr: true},
		"array":       {raw: `[1,2]`, wantErr: true},
		"plain-value": {raw: `"text"`, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseToolArguments(tt.raw)
			if tt.wantErr {
				var parseErr *domain.ArgumentParseErr
				assert.ErrorAs(t, err, &parseErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadAdminInstructions(t *testing.T) {
	instructions, err := LoadAdminInstructions()
	require.NoError(t, err)
	assert.Contains(t, instructions, "create_tool")
	assert.Contains(t, instructions, "args")
}

func TestInitRunChatTurn_Initialize(t *testing.T) {
	i := InitRunChatTurn{
		Assistant:         domain.NewMockAssistant(t),
		Registry:          NewMockToolRegistry(t),
		CatalogBuilder:    NewMockToolCatalogBuilder(t),
		Dispatcher:        NewMockToolDispatcher(t),
		Logger:            log.New(io.Discard, "", 0),
		DefaultModel:      "m",
		AdminInstructions: "-",
	}

	_, err := i.Initialize(context.Background())
	require.NoError(t, err)

	uc, err := depend.Resolve[RunChatTurn]()
	require.NoError(t, err)
	impl, ok := uc.(RunChatTurnImpl)
	require.True(t, ok)
	assert.NotEmpty(t, impl.adminInstructions)
}

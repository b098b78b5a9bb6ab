package usecases

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.yaml.in/yaml/v3"
)

//go:embed prompts/chat.yml
var chatPrompt embed.FS

// ChatTurnInput is the input of one conversation turn.
type ChatTurnInput struct {
	OwnerID          string
	Model            string
	Messages         []domain.AssistantMessage
	UserInstructions string
	ToolsEnabled     bool
	Credentials      *domain.ProviderCredentials
}

// ChatTurnOutput is the outcome of one conversation turn.
type ChatTurnOutput struct {
	Message       domain.AssistantMessage
	ToolCall      *domain.AssistantActionCall
	ToolResult    *domain.ToolExecutionResult
	Usage         domain.AssistantUsage
	ProviderCalls int
}

// RunChatTurn drives one request/response cycle with at most one tool call.
type RunChatTurn interface {
	Execute(ctx context.Context, input ChatTurnInput) (ChatTurnOutput, error)
}

// RunChatTurnImpl is the implementation of RunChatTurn.
type RunChatTurnImpl struct {
	assistant         domain.Assistant
	registry          ToolRegistry
	catalogBuilder    ToolCatalogBuilder
	dispatcher        ToolDispatcher
	adminInstructions string
	defaultModel      string
	logger            *log.Logger
}

// NewRunChatTurnImpl creates a new instance of RunChatTurnImpl.
func NewRunChatTurnImpl(
	assistant domain.Assistant,
	registry ToolRegistry,
	catalogBuilder ToolCatalogBuilder,
	dispatcher ToolDispatcher,
	adminInstructions string,
	defaultModel string,
	logger *log.Logger,
) RunChatTurnImpl {
	return RunChatTurnImpl{
		assistant:         assistant,
		registry:          registry,
		catalogBuilder:    catalogBuilder,
		dispatcher:        dispatcher,
		adminInstructions: adminInstructions,
		defaultModel:      defaultModel,
		logger:            logger,
	}
}

// Execute runs the turn: first provider call with the tool catalog, then, if the
// assistant asked for a tool, one dispatch and a second provider call without tools.
func (r RunChatTurnImpl) Execute(ctx context.Context, input ChatTurnInput) (ChatTurnOutput, error) {
	spanCtx, span := telemetry.Start(ctx, ownerAttr(input.OwnerID))
	defer span.End()

	out, err := r.execute(spanCtx, input)
	RecordChatTurn(spanCtx, out.ToolCall != nil, err != nil)
	span.SetAttributes(attribute.Int("chat.provider_calls", out.ProviderCalls))
	if telemetry.RecordErrorAndStatus(span, err) {
		r.logger.Printf("RunChatTurn: turn for owner %s failed: %v", input.OwnerID, err)
		return ChatTurnOutput{}, err
	}
	return out, nil
}

func (r RunChatTurnImpl) execute(ctx context.Context, input ChatTurnInput) (ChatTurnOutput, error) {
	model := input.Model
	if model == "" {
		model = r.defaultModel
	}
	if err := validateChatTurnInput(input, model); err != nil {
		return ChatTurnOutput{}, err
	}

	messages := make([]domain.AssistantMessage, 0, len(input.Messages)+3)
	if prompt := BuildSystemPrompt(r.adminInstructions, input.UserInstructions); prompt != "" {
		messages = append(messages, domain.AssistantMessage{Role: domain.ChatRole_System, Content: prompt})
	}
	messages = append(messages, input.Messages...)

	catalog, err := r.catalogBuilder.Build(ctx, input.OwnerID, input.ToolsEnabled)
	if err != nil {
		return ChatTurnOutput{}, fmt.Errorf("failed to build tool catalog: %w", err)
	}

	out := ChatTurnOutput{}
	first, err := r.assistant.RunTurnSync(ctx, domain.AssistantTurnRequest{
		Model:            model,
		Messages:         messages,
		AvailableActions: catalog.Definitions,
		Credentials:      input.Credentials,
	})
	out.ProviderCalls++
	if err != nil {
		return out, domain.NewProviderErr("assistant call failed", err)
	}
	out.Usage = out.Usage.Add(first.Usage)
	RecordLLMTokensUsed(ctx, first.Usage.PromptTokens, first.Usage.CompletionTokens)

	// Calls proposed while no tool was advertised cannot be honored.
	if !first.Message().HasActionCalls() || catalog.IsEmpty() {
		out.Message = domain.AssistantMessage{Role: domain.ChatRole_Assistant, Content: first.Content}
		return out, nil
	}

	call := first.ActionCalls[0]
	if call.ID == "" {
		call.ID = "call_" + uuid.NewString()
	}
	args, err := ParseToolArguments(call.Input)
	if err != nil {
		return out, err
	}

	req := domain.ToolInvocationRequest{
		CallID: call.ID,
		Name:   call.Name,
		Args:   args,
	}
	result := r.dispatcher.Dispatch(ctx, input.OwnerID, req, catalog)
	out.ToolCall = &call
	out.ToolResult = &result

	messages = append(messages,
		domain.AssistantMessage{
			Role:        domain.ChatRole_Assistant,
			Content:     first.Content,
			ActionCalls: []domain.AssistantActionCall{call},
		},
		result.ToMessage(call.ID),
	)

	second, err := r.assistant.RunTurnSync(ctx, domain.AssistantTurnRequest{
		Model:       model,
		Messages:    messages,
		Credentials: input.Credentials,
	})
	out.ProviderCalls++
	if err != nil {
		r.undoToolCreation(ctx, input.OwnerID, catalog, req, result)
		return out, domain.NewProviderErr("assistant call after tool execution failed", err)
	}
	out.Usage = out.Usage.Add(second.Usage)
	RecordLLMTokensUsed(ctx, second.Usage.PromptTokens, second.Usage.CompletionTokens)

	out.Message = domain.AssistantMessage{Role: domain.ChatRole_Assistant, Content: second.Content}
	return out, nil
}

// undoToolCreation deletes a tool created by a turn that failed afterwards, so a
// failed turn leaves the registry as it found it.
func (r RunChatTurnImpl) undoToolCreation(ctx context.Context, ownerID string, catalog domain.ToolCatalog, req domain.ToolInvocationRequest, result domain.ToolExecutionResult) {
	if result.IsError || domain.ResolveToolRoute(req.Name, catalog).Kind != domain.ToolRoute_CreateTool {
		return
	}
	name, _ := req.StringArg("name")
	if _, err := r.registry.Delete(context.WithoutCancel(ctx), ownerID, name); err != nil {
		r.logger.Printf("RunChatTurn: failed to undo creation of tool %s for owner %s: %v", name, ownerID, err)
	}
}

func validateChatTurnInput(input ChatTurnInput, model string) error {
	if strings.TrimSpace(input.OwnerID) == "" {
		return domain.NewValidationErr("owner_id cannot be empty")
	}
	if model == "" {
		return domain.NewValidationErr("model cannot be empty")
	}
	if len(input.Messages) == 0 {
		return domain.NewValidationErr("messages cannot be empty")
	}
	for _, msg := range input.Messages {
		if !msg.Role.IsValid() {
			return domain.NewValidationErr(fmt.Sprintf("invalid message role '%s'", msg.Role))
		}
	}
	return nil
}

// BuildSystemPrompt joins administrator and user instructions with a blank line.
// Either part may be empty.
func BuildSystemPrompt(adminInstructions, userInstructions string) string {
	parts := make([]string, 0, 2)
	if admin := strings.TrimSpace(adminInstructions); admin != "" {
		parts = append(parts, admin)
	}
	if user := strings.TrimSpace(userInstructions); user != "" {
		parts = append(parts, user)
	}
	return strings.Join(parts, "\n\n")
}

// ParseToolArguments decodes the raw argument string of a tool call into a JSON object.
// An empty string or null decodes to an empty object.
func ParseToolArguments(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, domain.NewArgumentParseErr(fmt.Sprintf("tool call arguments are not valid JSON: %v", err))
	}
	switch v := decoded.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, domain.NewArgumentParseErr(fmt.Sprintf("tool call arguments must be a JSON object, got %T", decoded))
	}
}

type chatPromptFile struct {
	Instructions string `yaml:"instructions"`
}

// LoadAdminInstructions reads the administrator instructions shipped with the binary.
func LoadAdminInstructions() (string, error) {
	file, err := chatPrompt.Open("prompts/chat.yml")
	if err != nil {
		return "", fmt.Errorf("failed to open chat prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	var prompt chatPromptFile
	if err := yaml.NewDecoder(file).Decode(&prompt); err != nil {
		return "", fmt.Errorf("failed to decode chat prompt: %w", err)
	}
	return strings.TrimSpace(prompt.Instructions), nil
}

// InitRunChatTurn initializes the RunChatTurn use case.
type InitRunChatTurn struct {
	Assistant         domain.Assistant   `resolve:""`
	Registry          ToolRegistry       `resolve:""`
	CatalogBuilder    ToolCatalogBuilder `resolve:""`
	Dispatcher        ToolDispatcher     `resolve:""`
	Logger            *log.Logger        `resolve:""`
	DefaultModel      string             `config:"LLM_MODEL" default:"ai/qwen3"`
	AdminInstructions string             `config:"ADMIN_INSTRUCTIONS" default:"-"`
}

// Initialize registers the RunChatTurn use case in the dependency container.
func (i InitRunChatTurn) Initialize(ctx context.Context) (context.Context, error) {
	adminInstructions := i.AdminInstructions
	if adminInstructions == "-" {
		loaded, err := LoadAdminInstructions()
		if err != nil {
			return ctx, err
		}
		adminInstructions = loaded
	}

	depend.Register[RunChatTurn](NewRunChatTurnImpl(
		i.Assistant,
		i.Registry,
		i.CatalogBuilder,
		i.Dispatcher,
		adminInstructions,
		i.DefaultModel,
		i.Logger,
	))
	return ctx, nil
}

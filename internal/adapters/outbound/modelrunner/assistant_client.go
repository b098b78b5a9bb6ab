package modelrunner

import (
	"context"
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// AssistantClient adapts CompletionsClient to domain.Assistant.
// Requests without credentials go to the default provider.
type AssistantClient struct {
	defaultClient CompletionsClient
	pool          *ClientPool
}

// NewAssistantClient creates a new adapter.
func NewAssistantClient(defaultClient CompletionsClient, pool *ClientPool) AssistantClient {
	return AssistantClient{
		defaultClient: defaultClient,
		pool:          pool,
	}
}

// RunTurnSync implements domain.Assistant.
func (a AssistantClient) RunTurnSync(ctx context.Context, req domain.AssistantTurnRequest) (domain.AssistantTurnResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	span.SetAttributes(
		attribute.String("llm.model", req.Model),
		attribute.Int("llm.tools", len(req.AvailableActions)),
		attribute.Bool("llm.custom_provider", req.Credentials != nil),
	)

	resp, err := a.clientFor(req.Credentials).Chat(spanCtx, toChatRequest(req))
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.AssistantTurnResponse{}, err
	}
	if len(resp.Choices) == 0 {
		err := errors.New("no choices in response")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.AssistantTurnResponse{}, err
	}

	msg := resp.Choices[0].Message
	res := domain.AssistantTurnResponse{Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		res.ActionCalls = append(res.ActionCalls, domain.AssistantActionCall{
			ID:    tc.ID,
			Name:  tc.Function.Name,
			Input: tc.Function.Arguments,
		})
	}
	if resp.Usage != nil {
		res.Usage = domain.AssistantUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	span.SetAttributes(attribute.Int("llm.action_calls", len(res.ActionCalls)))
	return res, nil
}

func (a AssistantClient) clientFor(creds *domain.ProviderCredentials) CompletionsClient {
	if creds == nil || creds.BaseURL == "" || a.pool == nil {
		return a.defaultClient
	}
	return a.pool.Get(creds.BaseURL, creds.APIKey)
}

func toChatRequest(req domain.AssistantTurnRequest) ChatRequest {
	adapterReq := ChatRequest{
		Model:            req.Model,
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		TopP:             req.TopP,
		FrequencyPenalty: req.FrequencyPenalty,
		Messages:         make([]ChatMessage, len(req.Messages)),
	}

	for i, msg := range req.Messages {
		adpMsg := ChatMessage{
			Role:       string(msg.Role),
			ToolCallID: msg.ActionCallID,
			Content:    msg.Content,
		}
		for _, actionCall := range msg.ActionCalls {
			adpMsg.ToolCalls = append(adpMsg.ToolCalls, ToolCall{
				ID:   actionCall.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      actionCall.Name,
					Arguments: actionCall.Input,
				},
			})
		}
		adapterReq.Messages[i] = adpMsg
	}

	if len(req.AvailableActions) == 0 {
		return adapterReq
	}

	adapterReq.ToolChoice = "auto"
	adapterReq.Tools = make([]Tool, len(req.AvailableActions))
	for i, action := range req.AvailableActions {
		params := ToolFuncParameters{
			Type:       action.Input.Type,
			Properties: make(map[string]ToolFuncParameterDetail, len(action.Input.Fields)),
			Required:   action.RequiredFields(),
		}
		for name, field := range action.Input.Fields {
			params.Properties[name] = ToolFuncParameterDetail{
				Type:        field.Type,
				Description: field.Description,
			}
		}
		adapterReq.Tools[i] = Tool{
			Type: "function",
			Function: ToolFunc{
				Name:        action.Name,
				Description: action.Description,
				Parameters:  params,
			},
		}
	}

	return adapterReq
}

// InitAssistantClient initializes the assistant client dependency.
type InitAssistantClient struct {
	HttpClient *http.Client `resolve:""`
	ModelHost  string       `config:"LLM_MODEL_HOST"`
	APIKey     string       `config:"LLM_MODEL_API_KEY" default:"-"`
	PoolSize   int          `config:"LLM_CLIENT_POOL_SIZE" default:"32"`
}

// Initialize registers the domain.Assistant implementation.
func (i InitAssistantClient) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	pool, err := NewClientPool(i.PoolSize, i.HttpClient)
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.Assistant](NewAssistantClient(
		NewCompletionsClient(i.ModelHost, apiKey, i.HttpClient),
		pool,
	))
	return ctx, nil
}

package domain

import (
	"context"
	"slices"
)

// AssistantUsage contains token usage for one assistant turn.
type AssistantUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add returns the sum of both usages.
func (u AssistantUsage) Add(other AssistantUsage) AssistantUsage {
	return AssistantUsage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// AssistantActionCall contains one action invocation requested by the assistant.
// Input holds the raw JSON argument string produced by the model.
type AssistantActionCall struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Input string `json:"input"`
}

// AssistantMessage represents a message exchanged during assistant turns.
type AssistantMessage struct {
	Role         ChatRole
	Content      string
	ActionCallID *string
	ActionCalls  []AssistantActionCall
}

// HasActionCalls reports whether the assistant requested at least one action.
func (m AssistantMessage) HasActionCalls() bool {
	return len(m.ActionCalls) > 0
}

// AssistantActionDefinition describes one action that can be used by the assistant.
type AssistantActionDefinition struct {
	Name        string
	Description string
	Input       AssistantActionInput
}

// RequiredFields returns the names of the required input fields, sorted.
func (d AssistantActionDefinition) RequiredFields() []string {
	required := make([]string, 0, len(d.Input.Fields))
	for name, field := range d.Input.Fields {
		if field.Required {
			required = append(required, name)
		}
	}
	slices.Sort(required)
	return required
}

// AssistantActionField represents one action input field.
type AssistantActionField struct {
	Type        string
	Description string
	Required    bool
}

// AssistantActionInput describes the action input shape.
type AssistantActionInput struct {
	Type   string
	Fields map[string]AssistantActionField
}

// ProviderCredentials overrides the default provider endpoint for a single request.
type ProviderCredentials struct {
	BaseURL string
	APIKey  string
}

// AssistantTurnRequest is the domain request for one assistant turn.
type AssistantTurnRequest struct {
	Model    string
	Messages []AssistantMessage
	// Optional generation settings.
	Temperature      *float64
	TopP             *float64
	MaxTokens        *int
	FrequencyPenalty *float64
	AvailableActions []AssistantActionDefinition
	Credentials      *ProviderCredentials
}

// AssistantTurnResponse contains the assistant reply for one provider call.
type AssistantTurnResponse struct {
	Content     string
	ActionCalls []AssistantActionCall
	Usage       AssistantUsage
}

// Message converts the response into an assistant-role message.
func (r AssistantTurnResponse) Message() AssistantMessage {
	return AssistantMessage{
		Role:        ChatRole_Assistant,
		Content:     r.Content,
		ActionCalls: r.ActionCalls,
	}
}

// Assistant defines assistant interaction in domain terms.
type Assistant interface {
	// RunTurnSync executes one assistant turn and returns the final response.
	RunTurnSync(ctx context.Context, req AssistantTurnRequest) (AssistantTurnResponse, error)
}

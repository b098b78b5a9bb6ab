package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantActionDefinition_RequiredFields(t *testing.T) {
	def := AssistantActionDefinition{
		Name: "create_tool",
		Input: AssistantActionInput{
			Type: "object",
			Fields: map[string]AssistantActionField{
				"name":        {Type: "string", Required: true},
				"description": {Type: "string", Required: true},
				"code":        {Type: "string", Required: true},
				"notes":       {Type: "string"},
			},
		},
	}

	assert.Equal(t, []string{"code", "description", "name"}, def.RequiredFields())
	assert.Empty(t, AssistantActionDefinition{}.RequiredFields())
}

func TestAssistantUsage_Add(t *testing.T) {
	a := AssistantUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}
	b := AssistantUsage{PromptTokens: 20, CompletionTokens: 1, TotalTokens: 21}

	assert.Equal(t, AssistantUsage{PromptTokens: 30, CompletionTokens: 6, TotalTokens: 36}, a.Add(b))
}

func TestAssistantTurnResponse_Message(t *testing.T) {
	resp := AssistantTurnResponse{
		Content:     "hi",
		ActionCalls: []AssistantActionCall{{ID: "c1", Name: "sum", Input: "{}"}},
	}
	msg := resp.Message()

	assert.Equal(t, ChatRole_Assistant, msg.Role)
	assert.Equal(t, "hi", msg.Content)
	assert.True(t, msg.HasActionCalls())
	assert.False(t, AssistantMessage{}.HasActionCalls())
}

func TestChatRole_IsValid(t *testing.T) {
	assert.True(t, ChatRole_User.IsValid())
	assert.True(t, ChatRole_Tool.IsValid())
	assert.False(t, ChatRole("developer").IsValid())
}

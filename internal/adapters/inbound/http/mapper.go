package http

import (
	"errors"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/common"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toError(err error) gen.ErrorResp {
	var (
		validationErr *domain.ValidationErr
		notFoundErr   *domain.NotFoundErr
		duplicateErr  *domain.DuplicateNameErr
		providerErr   *domain.ProviderErr
		argumentErr   *domain.ArgumentParseErr
	)
	switch {
	case errors.As(err, &validationErr):
		return newErrorResp(gen.BADREQUEST, validationErr.Error())
	case errors.As(err, &notFoundErr):
		return newErrorResp(gen.NOTFOUND, notFoundErr.Error())
	case errors.As(err, &duplicateErr):
		return newErrorResp(gen.CONFLICT, duplicateErr.Error())
	case errors.As(err, &providerErr):
		return newErrorResp(gen.BADGATEWAY, providerErr.Error())
	case errors.As(err, &argumentErr):
		return newErrorResp(gen.BADGATEWAY, argumentErr.Error())
	default:
		return newErrorResp(gen.INTERNALERROR, "internal server error")
	}
}

func toChatTurnInput(ownerID string, req gen.ChatTurnRequest) (usecases.ChatTurnInput, error) {
	input := usecases.ChatTurnInput{
		OwnerID:          ownerID,
		Model:            strings.TrimSpace(valueOf(req.Model)),
		UserInstructions: valueOf(req.Instructions),
		ToolsEnabled:     valueOf(req.ToolsEnabled),
		Messages:         make([]domain.AssistantMessage, 0, len(req.Messages)),
	}
	for _, m := range req.Messages {
		input.Messages = append(input.Messages, domain.AssistantMessage{
			Role:         domain.ChatRole(m.Role),
			Content:      m.Content,
			ActionCallID: m.ToolCallId,
		})
	}

	if req.Provider != nil {
		baseURL := strings.TrimSpace(req.Provider.BaseUrl)
		if baseURL == "" {
			return usecases.ChatTurnInput{}, domain.NewValidationErr("provider.base_url cannot be empty")
		}
		input.Credentials = &domain.ProviderCredentials{
			BaseURL: baseURL,
			APIKey:  valueOf(req.Provider.ApiKey),
		}
	}
	return input, nil
}

func toChatTurnResponse(out usecases.ChatTurnOutput) gen.ChatTurnResponse {
	resp := gen.ChatTurnResponse{
		Message: gen.ChatMessage{
			Role:    string(out.Message.Role),
			Content: out.Message.Content,
		},
		Usage: gen.Usage{
			PromptTokens:     out.Usage.PromptTokens,
			CompletionTokens: out.Usage.CompletionTokens,
			TotalTokens:      out.Usage.TotalTokens,
		},
		ProviderCalls: out.ProviderCalls,
	}
	if out.ToolCall != nil {
		resp.ToolCall = common.Ptr(gen.ToolCall{
			Id:        out.ToolCall.ID,
			Name:      out.ToolCall.Name,
			Arguments: out.ToolCall.Input,
		})
	}
	if out.ToolResult != nil {
		resp.ToolResult = common.Ptr(gen.ToolResult{
			Content:   out.ToolResult.Content,
			Handler:   string(out.ToolResult.Handler),
			IsError:   out.ToolResult.IsError,
			ElapsedMs: out.ToolResult.Elapsed.Milliseconds(),
		})
	}
	return resp
}

func toTool(t domain.CustomTool) gen.Tool {
	params := t.Parameters
	if params == nil {
		params = map[string]any{}
	}
	return gen.Tool{
		Id:             openapi_types.UUID(t.ID),
		Name:           t.Name,
		Description:    t.Description,
		Code:           t.Code,
		Parameters:     params,
		Active:         t.Active,
		ExecutionCount: t.ExecutionCount,
		LastExecutedAt: t.LastExecutedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func valueOf[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

// InvokeTool runs one of the owner's tools outside of a chat turn.
type InvokeTool interface {
	Execute(ctx context.Context, ownerID, name string, args map[string]any) (domain.ToolExecutionResult, error)
}

// InvokeToolImpl is the implementation of InvokeTool.
type InvokeToolImpl struct {
	catalogBuilder ToolCatalogBuilder
	dispatcher     ToolDispatcher
}

// NewInvokeToolImpl creates a new instance of InvokeToolImpl.
func NewInvokeToolImpl(catalogBuilder ToolCatalogBuilder, dispatcher ToolDispatcher) InvokeToolImpl {
	return InvokeToolImpl{
		catalogBuilder: catalogBuilder,
		dispatcher:     dispatcher,
	}
}

// Execute builds the owner's catalog and dispatches the call against it.
func (i InvokeToolImpl) Execute(ctx context.Context, ownerID, name string, args map[string]any) (domain.ToolExecutionResult, error) {
	spanCtx, span := telemetry.Start(ctx, ownerAttr(ownerID))
	defer span.End()

	if strings.TrimSpace(ownerID) == "" {
		err := domain.NewValidationErr("owner_id cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.ToolExecutionResult{}, err
	}

	catalog, err := i.catalogBuilder.Build(spanCtx, ownerID, true)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ToolExecutionResult{}, err
	}

	if args == nil {
		args = map[string]any{}
	}
	return i.dispatcher.Dispatch(spanCtx, ownerID, domain.ToolInvocationRequest{
		CallID: "call_" + uuid.NewString(),
		Name:   name,
		Args:   args,
	}, catalog), nil
}

// InitInvokeTool initializes the InvokeTool use case.
type InitInvokeTool struct {
	CatalogBuilder ToolCatalogBuilder `resolve:""`
	Dispatcher     ToolDispatcher     `resolve:""`
}

// Initialize registers the InvokeTool use case in the dependency container.
func (i InitInvokeTool) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[InvokeTool](NewInvokeToolImpl(i.CatalogBuilder, i.Dispatcher))
	return ctx, nil
}

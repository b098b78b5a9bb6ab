package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ToolRegistry manages the custom tools owned by each user.
type ToolRegistry interface {
	// ListActive returns the owner's active tools.
	ListActive(ctx context.Context, ownerID string) ([]domain.CustomTool, error)
	// List returns all of the owner's tools, including inactive ones.
	List(ctx context.Context, ownerID string) ([]domain.CustomTool, error)
	// Create normalizes the name and stores a new active tool.
	Create(ctx context.Context, ownerID, name, description, code string) (domain.CustomTool, error)
	// Delete removes the tool and reports whether it existed.
	Delete(ctx context.Context, ownerID, name string) (bool, error)
	// SetActive toggles whether the tool is advertised to the assistant.
	SetActive(ctx context.Context, ownerID, name string, active bool) (bool, error)
	// RecordExecution bumps the usage counters of a tool.
	RecordExecution(ctx context.Context, ownerID, name string, executedAt time.Time) error
}

// ToolRegistryImpl is the implementation of ToolRegistry.
type ToolRegistryImpl struct {
	repo         domain.CustomToolRepository
	timeProvider domain.CurrentTimeProvider
}

// NewToolRegistryImpl creates a new instance of ToolRegistryImpl.
func NewToolRegistryImpl(repo domain.CustomToolRepository, timeProvider domain.CurrentTimeProvider) ToolRegistryImpl {
	return ToolRegistryImpl{
		repo:         repo,
		timeProvider: timeProvider,
	}
}

// ListActive returns the owner's active tools in repository order.
func (r ToolRegistryImpl) ListActive(ctx context.Context, ownerID string) ([]domain.CustomTool, error) {
	spanCtx, span := telemetry.Start(ctx, ownerAttr(ownerID))
	defer span.End()

	tools, err := r.repo.ListCustomTools(spanCtx, ownerID, true)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tools, nil
}

// List returns every tool of the owner.
func (r ToolRegistryImpl) List(ctx context.Context, ownerID string) ([]domain.CustomTool, error) {
	spanCtx, span := telemetry.Start(ctx, ownerAttr(ownerID))
	defer span.End()

	tools, err := r.repo.ListCustomTools(spanCtx, ownerID, false)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return tools, nil
}

// Create validates and stores a new tool. Concurrent creates with the same normalized
// name are resolved by the repository: one wins, the others get a DuplicateNameErr.
func (r ToolRegistryImpl) Create(ctx context.Context, ownerID, name, description, code string) (domain.CustomTool, error) {
	spanCtx, span := telemetry.Start(ctx, ownerAttr(ownerID))
	defer span.End()

	tool := domain.NewCustomTool(ownerID, name, description, code, r.timeProvider.Now())
	if err := tool.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.CustomTool{}, err
	}

	err := r.repo.CreateCustomTool(spanCtx, tool)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.CustomTool{}, err
	}
	return tool, nil
}

// Delete removes the tool. A second call for the same name returns false.
func (r ToolRegistryImpl) Delete(ctx context.Context, ownerID, name string) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, ownerAttr(ownerID))
	defer span.End()

	normalized := domain.NormalizeToolName(name)
	if normalized == "" {
		err := domain.NewValidationErr("name cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return false, err
	}

	deleted, err := r.repo.DeleteCustomTool(spanCtx, ownerID, normalized)
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return deleted, nil
}

// SetActive updates the active flag of a tool.
func (r ToolRegistryImpl) SetActive(ctx context.Context, ownerID, name string, active bool) (bool, error) {
	spanCtx, span := telemetry.Start(ctx, ownerAttr(ownerID))
	defer span.End()

	found, err := r.repo.UpdateCustomToolActive(spanCtx, ownerID, domain.NormalizeToolName(name), active, r.timeProvider.Now())
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return found, nil
}

// RecordExecution increments the execution counter and stamps the execution time.
func (r ToolRegistryImpl) RecordExecution(ctx context.Context, ownerID, name string, executedAt time.Time) error {
	spanCtx, span := telemetry.Start(ctx, ownerAttr(ownerID))
	defer span.End()

	err := r.repo.RecordCustomToolExecution(spanCtx, ownerID, name, executedAt)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to record execution of tool %s: %w", name, err)
	}
	return nil
}

func ownerAttr(ownerID string) trace.SpanStartOption {
	return trace.WithAttributes(attribute.String("tool.owner_id", ownerID))
}

// InitToolRegistry initializes the ToolRegistry use case.
type InitToolRegistry struct {
	Repo         domain.CustomToolRepository `resolve:""`
	TimeProvider domain.CurrentTimeProvider  `resolve:""`
}

// Initialize registers the ToolRegistry use case in the dependency container.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ToolRegistry](NewToolRegistryImpl(i.Repo, i.TimeProvider))
	return ctx, nil
}

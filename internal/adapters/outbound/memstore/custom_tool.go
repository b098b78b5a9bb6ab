package memstore

import (
	"context"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StoreName is the TOOL_STORE value that selects this repository.
const StoreName = "memory"

// CustomToolRepository keeps custom tools in process memory.
// Tools of each owner are kept in creation order.
type CustomToolRepository struct {
	mu     sync.RWMutex
	owners map[string][]domain.CustomTool
}

// NewCustomToolRepository creates an empty CustomToolRepository.
func NewCustomToolRepository() *CustomToolRepository {
	return &CustomToolRepository{
		owners: map[string][]domain.CustomTool{},
	}
}

// ListCustomTools returns copies of the owner's tools.
func (r *CustomToolRepository) ListCustomTools(ctx context.Context, ownerID string, activeOnly bool) ([]domain.CustomTool, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner.id", ownerID),
		attribute.Bool("active_only", activeOnly),
	))
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]domain.CustomTool, 0, len(r.owners[ownerID]))
	for _, tool := range r.owners[ownerID] {
		if activeOnly && !tool.Active {
			continue
		}
		tools = append(tools, clone(tool))
	}
	return tools, nil
}

// CreateCustomTool stores tool unless the owner already has one with the same name.
func (r *CustomToolRepository) CreateCustomTool(ctx context.Context, tool domain.CustomTool) error {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner.id", tool.OwnerID),
		attribute.String("tool.name", tool.Name),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(tool.OwnerID, tool.Name) >= 0 {
		err := domain.NewDuplicateNameErr(fmt.Sprintf("tool '%s' already exists", tool.Name))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	r.owners[tool.OwnerID] = append(r.owners[tool.OwnerID], clone(tool))
	return nil
}

// DeleteCustomTool removes the named tool and reports whether it existed.
func (r *CustomToolRepository) DeleteCustomTool(ctx context.Context, ownerID, name string) (bool, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner.id", ownerID),
		attribute.String("tool.name", name),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(ownerID, name)
	if idx < 0 {
		return false, nil
	}
	tools := r.owners[ownerID]
	r.owners[ownerID] = append(tools[:idx:idx], tools[idx+1:]...)
	if len(r.owners[ownerID]) == 0 {
		delete(r.owners, ownerID)
	}
	return true, nil
}

// UpdateCustomToolActive sets the active flag of the named tool.
func (r *CustomToolRepository) UpdateCustomToolActive(ctx context.Context, ownerID, name string, active bool, updatedAt time.Time) (bool, error) {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner.id", ownerID),
		attribute.String("tool.name", name),
		attribute.Bool("tool.active", active),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(ownerID, name)
	if idx < 0 {
		return false, nil
	}
	tool := &r.owners[ownerID][idx]
	tool.Active = active
	tool.UpdatedAt = updatedAt
	return true, nil
}

// RecordCustomToolExecution increments the execution counter of the named tool.
func (r *CustomToolRepository) RecordCustomToolExecution(ctx context.Context, ownerID, name string, executedAt time.Time) error {
	_, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("owner.id", ownerID),
		attribute.String("tool.name", name),
	))
	defer span.End()

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(ownerID, name)
	if idx < 0 {
		err := domain.NewNotFoundErr(fmt.Sprintf("tool '%s' not found", name))
		telemetry.RecordErrorAndStatus(span, err)
		return err
	}
	tool := &r.owners[ownerID][idx]
	tool.ExecutionCount++
	tool.LastExecutedAt = &executedAt
	return nil
}

// indexOf must be called with the lock held.
func (r *CustomToolRepository) indexOf(ownerID, name string) int {
	for i, tool := range r.owners[ownerID] {
		if tool.Name == name {
			return i
		}
	}
	return -1
}

func clone(tool domain.CustomTool) domain.CustomTool {
	tool.Parameters = maps.Clone(tool.Parameters)
	if tool.LastExecutedAt != nil {
		t := *tool.LastExecutedAt
		tool.LastExecutedAt = &t
	}
	return tool
}

// InitCustomToolRepository registers the in-memory repository when TOOL_STORE is "memory".
type InitCustomToolRepository struct {
	Store string `config:"TOOL_STORE" default:"postgres"`
}

// Initialize registers the repository in the dependency container.
func (i InitCustomToolRepository) Initialize(ctx context.Context) (context.Context, error) {
	if i.Store != StoreName {
		return ctx, nil
	}
	depend.Register[domain.CustomToolRepository](NewCustomToolRepository())
	return ctx, nil
}

package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxToolNameLength is the longest function name accepted by OpenAI-compatible providers.
const MaxToolNameLength = 64

var toolNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

// CustomTool is a user-authored script the assistant can call as a function.
type CustomTool struct {
	ID             uuid.UUID
	OwnerID        string
	Name           string
	Description    string
	Code           string
	Parameters     map[string]any
	Active         bool
	ExecutionCount int64
	LastExecutedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewCustomTool builds an active tool with a normalized name and zeroed counters.
func NewCustomTool(ownerID, name, description, code string, now time.Time) CustomTool {
	return CustomTool{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        NormalizeToolName(name),
		Description: strings.TrimSpace(description),
		Code:        code,
		Parameters:  map[string]any{},
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate checks the tool invariants before it is persisted.
func (t CustomTool) Validate() error {
	if strings.TrimSpace(t.OwnerID) == "" {
		return NewValidationErr("owner_id cannot be empty")
	}
	if t.Name == "" {
		return NewValidationErr("name cannot be empty")
	}
	if len(t.Name) > MaxToolNameLength {
		return NewValidationErr(fmt.Sprintf("name cannot be longer than %d characters", MaxToolNameLength))
	}
	if !toolNamePattern.MatchString(t.Name) {
		return NewValidationErr("name may only contain lowercase letters, digits, '_' and '-'")
	}
	if IsReservedToolName(t.Name) {
		return NewValidationErr(fmt.Sprintf("name '%s' is reserved for a built-in tool", t.Name))
	}
	if strings.TrimSpace(t.Description) == "" {
		return NewValidationErr("description cannot be empty")
	}
	if strings.TrimSpace(t.Code) == "" {
		return NewValidationErr("code cannot be empty")
	}
	return nil
}

// NormalizeToolName lowercases a display name and joins its words with '_'.
// "Calcular Hash" becomes "calcular_hash".
func NormalizeToolName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// CustomToolRepository persists custom tools. Every operation is scoped to an owner.
type CustomToolRepository interface {
	// ListCustomTools returns the owner's tools ordered by creation time.
	// When activeOnly is true inactive tools are skipped.
	ListCustomTools(ctx context.Context, ownerID string, activeOnly bool) ([]CustomTool, error)

	// CreateCustomTool stores a new tool. Returns a DuplicateNameErr when the owner
	// already has a tool with the same name.
	CreateCustomTool(ctx context.Context, tool CustomTool) error

	// DeleteCustomTool removes a tool and reports whether one was found.
	DeleteCustomTool(ctx context.Context, ownerID, name string) (bool, error)

	// UpdateCustomToolActive sets the active flag and reports whether the tool was found.
	UpdateCustomToolActive(ctx context.Context, ownerID, name string, active bool, updatedAt time.Time) (bool, error)

	// RecordCustomToolExecution atomically increments the execution counter and
	// sets the last execution time.
	RecordCustomToolExecution(ctx context.Context, ownerID, name string, executedAt time.Time) error
}

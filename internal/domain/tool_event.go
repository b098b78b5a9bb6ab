package domain

import (
	"context"
	"time"
)

// ToolEventType identifies a tool event published to external consumers.
type ToolEventType string

const (
	ToolEventType_Executed ToolEventType = "TOOL_EXECUTED"
)

// ToolEvent is published after a custom tool execution has been recorded.
type ToolEvent struct {
	Type       ToolEventType `json:"type"`
	OwnerID    string        `json:"owner_id"`
	ToolName   string        `json:"tool_name"`
	OccurredAt time.Time     `json:"occurred_at"`
}

// ToolEventPublisher announces tool events outside the process.
type ToolEventPublisher interface {
	PublishToolEvent(ctx context.Context, event ToolEvent) error
}

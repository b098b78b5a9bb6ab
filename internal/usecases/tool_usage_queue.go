package usecases

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
)

// ToolUsage identifies one successful custom tool execution to be recorded.
type ToolUsage struct {
	OwnerID    string
	ToolName   string
	ExecutedAt time.Time
}

// ToolUsageQueue hands usage records to a background recorder without blocking the turn.
type ToolUsageQueue interface {
	// Enqueue schedules the record. It never blocks and reports whether the record was accepted.
	Enqueue(ctx context.Context, usage ToolUsage) bool
	// Records returns the channel consumed by the recorder worker.
	Records() <-chan ToolUsage
}

// ChannelToolUsageQueue is a bounded in-process ToolUsageQueue.
type ChannelToolUsageQueue struct {
	records chan ToolUsage
	logger  *log.Logger
}

// NewChannelToolUsageQueue creates a queue holding up to size pending records.
func NewChannelToolUsageQueue(size int, logger *log.Logger) *ChannelToolUsageQueue {
	if size <= 0 {
		size = 1
	}
	return &ChannelToolUsageQueue{
		records: make(chan ToolUsage, size),
		logger:  logger,
	}
}

// Enqueue adds the record or drops it when the queue is full.
func (q *ChannelToolUsageQueue) Enqueue(ctx context.Context, usage ToolUsage) bool {
	select {
	case q.records <- usage:
		return true
	default:
		RecordToolUsageDropped(ctx)
		q.logger.Printf("ToolUsageQueue: queue full, dropping usage record for tool %s of owner %s", usage.ToolName, usage.OwnerID)
		return false
	}
}

// Records returns the receive side of the queue.
func (q *ChannelToolUsageQueue) Records() <-chan ToolUsage {
	return q.records
}

// InitToolUsageQueue initializes the ToolUsageQueue.
type InitToolUsageQueue struct {
	Logger *log.Logger `resolve:""`
	Size   int         `config:"TOOL_USAGE_QUEUE_SIZE" default:"256"`
}

// Initialize registers the ToolUsageQueue in the dependency container.
func (i InitToolUsageQueue) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ToolUsageQueue](NewChannelToolUsageQueue(i.Size, i.Logger))
	return ctx, nil
}

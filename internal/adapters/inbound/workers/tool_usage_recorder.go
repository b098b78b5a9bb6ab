package workers

import (
	"context"
	"log"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
)

// ToolUsageRecorder drains the ToolUsageQueue and persists the execution counters
// of custom tools outside the chat turn. Recorded executions are announced through
// the ToolEventPublisher.
type ToolUsageRecorder struct {
	Queue               usecases.ToolUsageQueue   `resolve:""`
	Registry            usecases.ToolRegistry     `resolve:""`
	Events              domain.ToolEventPublisher `resolve:""`
	Logger              *log.Logger               `resolve:""`
	DrainTimeout        time.Duration             `config:"TOOL_USAGE_DRAIN_TIMEOUT" default:"5s"`
	workerExecutionChan chan struct{}
}

// Run records usages until ctx is canceled, then flushes what is still queued.
func (r ToolUsageRecorder) Run(ctx context.Context) error {
	r.Logger.Println("ToolUsageRecorder: running...")
	records := r.Queue.Records()

	for {
		if ctx.Err() != nil {
			return r.stop(records)
		}
		select {
		case usage := <-records:
			r.record(ctx, usage)
		case <-ctx.Done():
			return r.stop(records)
		}
	}
}

func (r ToolUsageRecorder) stop(records <-chan usecases.ToolUsage) error {
	r.drain(records)
	r.Logger.Println("ToolUsageRecorder: stopped")
	return nil
}

func (r ToolUsageRecorder) drain(records <-chan usecases.ToolUsage) {
	drainCtx, cancel := context.WithTimeout(context.Background(), r.DrainTimeout)
	defer cancel()

	drained := 0
	for {
		select {
		case usage := <-records:
			r.record(drainCtx, usage)
			drained++
		default:
			if drained > 0 {
				r.Logger.Printf("ToolUsageRecorder: flushed %d pending usage records", drained)
			}
			return
		}
	}
}

func (r ToolUsageRecorder) record(ctx context.Context, usage usecases.ToolUsage) {
	err := r.Registry.RecordExecution(ctx, usage.OwnerID, usage.ToolName, usage.ExecutedAt)
	if err != nil {
		r.Logger.Printf("ToolUsageRecorder: %v", err)
	} else {
		err = r.Events.PublishToolEvent(ctx, domain.ToolEvent{
			Type:       domain.ToolEventType_Executed,
			OwnerID:    usage.OwnerID,
			ToolName:   usage.ToolName,
			OccurredAt: usage.ExecutedAt,
		})
		if err != nil {
			r.Logger.Printf("ToolUsageRecorder: failed to publish event for tool %s: %v", usage.ToolName, err)
		}
	}
	if r.workerExecutionChan != nil {
		r.workerExecutionChan <- struct{}{}
	}
}

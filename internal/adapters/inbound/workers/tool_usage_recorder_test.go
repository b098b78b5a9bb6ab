package workers

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestToolUsageRecorder_Run(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	logger := log.New(io.Discard, "", 0)

	queue := usecases.NewChannelToolUsageQueue(4, logger)
	registry := usecases.NewMockToolRegistry(t)
	registry.EXPECT().RecordExecution(mock.Anything, "owner-1", "sum", fixedTime).Return(nil).Once()
	registry.EXPECT().RecordExecution(mock.Anything, "owner-1", "gone", fixedTime).Return(assert.AnError).Once()
	events := domain.NewMockToolEventPublisher(t)
	events.EXPECT().PublishToolEvent(mock.Anything, domain.ToolEvent{
		Type:       domain.ToolEventType_Executed,
		OwnerID:    "owner-1",
		ToolName:   "sum",
		OccurredAt: fixedTime,
	}).Return(assert.AnError).Once()

	signalChan := make(chan struct{})
	recorder := ToolUsageRecorder{
		Queue:               queue,
		Registry:            registry,
		Events:              events,
		Logger:              logger,
		DrainTimeout:        time.Second,
		workerExecutionChan: signalChan,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- recorder.Run(ctx)
	}()

	assert.True(t, queue.Enqueue(ctx, usecases.ToolUsage{OwnerID: "owner-1", ToolName: "sum", ExecutedAt: fixedTime}))
	assert.True(t, queue.Enqueue(ctx, usecases.ToolUsage{OwnerID: "owner-1", ToolName: "gone", ExecutedAt: fixedTime}))

	for range 2 {
		select {
		case <-signalChan:
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for usage to be recorded")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("recorder did not stop")
	}
}

func TestToolUsageRecorder_Run_DrainsOnShutdown(t *testing.T) {
	fixedTime := time.Date(2026, 1, 24, 15, 0, 0, 0, time.UTC)
	logger := log.New(io.Discard, "", 0)

	queue := usecases.NewChannelToolUsageQueue(8, logger)
	registry := usecases.NewMockToolRegistry(t)
	registry.EXPECT().RecordExecution(mock.Anything, "owner-1", "sum", fixedTime).
		RunAndReturn(func(ctx context.Context, ownerID, name string, executedAt time.Time) error {
			assert.NoError(t, ctx.Err(), "records are flushed with a live context")
			return nil
		}).Times(3)
	events := domain.NewMockToolEventPublisher(t)
	events.EXPECT().PublishToolEvent(mock.Anything, mock.Anything).Return(nil).Times(3)

	ctx, cancel := context.WithCancel(context.Background())
	for range 3 {
		queue.Enqueue(ctx, usecases.ToolUsage{OwnerID: "owner-1", ToolName: "sum", ExecutedAt: fixedTime})
	}
	cancel()

	recorder := ToolUsageRecorder{
		Queue:        queue,
		Registry:     registry,
		Events:       events,
		Logger:       logger,
		DrainTimeout: time.Second,
	}

	err := recorder.Run(ctx)
	assert.NoError(t, err)
	assert.Empty(t, queue.Records())
}

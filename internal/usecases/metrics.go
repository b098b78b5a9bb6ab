package usecases

import (
	"context"
	"strconv"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                 = otel.Meter("usecases")
	LLMTokensUsed         metric.Int64Counter
	ChatTurns             metric.Int64Counter
	ToolExecutions        metric.Int64Counter
	ToolExecutionDuration metric.Float64Histogram
	ToolUsageDropped      metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	ChatTurns, err = meter.Int64Counter(
		"chat_turns_total",
		metric.WithDescription("Total chat turns processed"),
	)
	if err != nil {
		panic(err)
	}

	ToolExecutions, err = meter.Int64Counter(
		"tool_executions_total",
		metric.WithDescription("Total tool calls dispatched"),
	)
	if err != nil {
		panic(err)
	}

	ToolExecutionDuration, err = meter.Float64Histogram(
		"tool_execution_duration_seconds",
		metric.WithDescription("Duration of tool calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}

	ToolUsageDropped, err = meter.Int64Counter(
		"tool_usage_dropped_total",
		metric.WithDescription("Usage records dropped because the queue was full"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordChatTurn records a processed turn and whether it executed a tool.
func RecordChatTurn(ctx context.Context, toolCalled bool, failed bool) {
	ChatTurns.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool_called", strconv.FormatBool(toolCalled)),
		attribute.String("failed", strconv.FormatBool(failed)),
	))
}

// RecordToolExecution records a dispatched tool call.
func RecordToolExecution(ctx context.Context, handler domain.ToolHandlerKind, isError bool, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("handler", string(handler)),
		attribute.String("error", strconv.FormatBool(isError)),
	)
	ToolExecutions.Add(ctx, 1, attrs)
	ToolExecutionDuration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordToolUsageDropped records a usage record that could not be queued.
func RecordToolUsageDropped(ctx context.Context) {
	ToolUsageDropped.Add(ctx, 1)
}

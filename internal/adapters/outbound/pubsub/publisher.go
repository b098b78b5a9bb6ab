package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PubSubToolEventPublisher implements domain.ToolEventPublisher using Google Cloud Pub/Sub.
type PubSubToolEventPublisher struct {
	client *pubsubV2.Client
	topic  string
}

// NewPubSubToolEventPublisher creates a publisher writing to topic.
func NewPubSubToolEventPublisher(client *pubsubV2.Client, topic string) PubSubToolEventPublisher {
	return PubSubToolEventPublisher{client: client, topic: topic}
}

// PublishToolEvent publishes the event as JSON and waits for the server ack.
func (p PubSubToolEventPublisher) PublishToolEvent(ctx context.Context, event domain.ToolEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("event_type", string(event.Type)),
			attribute.String("topic", p.topic),
		),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal tool event: %w", err)
	}

	result := p.client.Publisher(p.topic).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": string(event.Type),
			"owner_id":   event.OwnerID,
			"tool_name":  event.ToolName,
		},
	})

	_, err = result.Get(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// NoopToolEventPublisher drops every event. Used when no publisher is configured.
type NoopToolEventPublisher struct{}

func (NoopToolEventPublisher) PublishToolEvent(context.Context, domain.ToolEvent) error {
	return nil
}

// InitPublisher registers the domain.ToolEventPublisher selected by TOOL_EVENTS_PUBLISHER.
type InitPublisher struct {
	Publisher string `config:"TOOL_EVENTS_PUBLISHER" default:"none"`
	Topic     string `config:"TOOL_EVENTS_TOPIC" default:"tool-events"`
}

func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	if i.Publisher != PublisherName {
		depend.Register[domain.ToolEventPublisher](NoopToolEventPublisher{})
		return ctx, nil
	}

	client, err := depend.Resolve[*pubsubV2.Client]()
	if err != nil {
		return ctx, fmt.Errorf("failed to resolve pubsub client: %w", err)
	}
	depend.Register[domain.ToolEventPublisher](NewPubSubToolEventPublisher(client, i.Topic))
	return ctx, nil
}

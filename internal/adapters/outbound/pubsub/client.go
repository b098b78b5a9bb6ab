package pubsub

import (
	"context"
	"fmt"
	"log"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
)

// PublisherName selects Pub/Sub as the tool event publisher.
const PublisherName = "pubsub"

// InitClient creates the Pub/Sub client when tool events are published to Pub/Sub.
type InitClient struct {
	Logger    *log.Logger `resolve:""`
	ProjectID string      `config:"PUBSUB_PROJECT_ID" default:"-"`
	Publisher string      `config:"TOOL_EVENTS_PUBLISHER" default:"none"`
	client    *pubsubV2.Client
}

func (i *InitClient) Initialize(ctx context.Context) (context.Context, error) {
	if i.Publisher != PublisherName {
		i.Logger.Printf("InitClient: tool events publisher is %q, skipping pubsub", i.Publisher)
		return ctx, nil
	}
	if i.client == nil {
		if i.ProjectID == "" || i.ProjectID == "-" {
			return ctx, fmt.Errorf("PUBSUB_PROJECT_ID is required when TOOL_EVENTS_PUBLISHER is %q", PublisherName)
		}
		client, err := pubsubV2.NewClient(ctx, i.ProjectID)
		if err != nil {
			return ctx, fmt.Errorf("failed to create pubsub client: %w", err)
		}
		i.client = client
	}

	depend.Register(i.client)

	return ctx, nil
}

func (i *InitClient) Close() {
	if i.client == nil {
		return
	}
	if err := i.client.Close(); err != nil {
		i.Logger.Printf("InitClient: failed to close pubsub client: %v", err)
	}
}

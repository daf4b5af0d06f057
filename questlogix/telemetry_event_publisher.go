package questlogix

import (
	"context"
	"time"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var _ Publisher = &EventTelemetryPublisher{}

// EventTelemetryPublisher forwards publisher events to the Nakama events
// subsystem, where a configured events processor can hand them off to an
// analytics pipeline.
//
// Send failures are logged and dropped. Gameplay never waits on telemetry.
type EventTelemetryPublisher struct{}

func NewEventTelemetryPublisher() *EventTelemetryPublisher {
	return &EventTelemetryPublisher{}
}

func (e *EventTelemetryPublisher) Send(ctx context.Context, logger runtime.Logger, nk runtime.NakamaModule, userID string, events []*PublisherEvent) {
	for _, event := range events {
		if event == nil {
			continue
		}

		properties := make(map[string]string, len(event.Metadata)+2)
		for k, v := range event.Metadata {
			properties[k] = v
		}
		if event.Id != "" {
			properties["event_id"] = event.Id
		}
		if userID != "" {
			properties["user_id"] = userID
		}

		timestamp := time.Now().UTC()
		if event.Timestamp > 0 {
			timestamp = time.Unix(event.Timestamp, 0).UTC()
		}

		if err := nk.Event(ctx, &api.Event{
			Name:       event.Name,
			Properties: properties,
			Timestamp:  timestamppb.New(timestamp),
			External:   true,
		}); err != nil {
			logger.Error("Failed to send telemetry event %s: %v", event.Name, err)
		}
	}
}

package app

import (
	"context"
	"time"

	"github.com/pitchside/clubadmin/external/notify"
	"github.com/pitchside/clubadmin/internal/config"
	"github.com/pitchside/clubadmin/internal/platform/logging"
	"github.com/pitchside/clubadmin/internal/platform/resilience"
	"github.com/pitchside/clubadmin/internal/usecase"
)

func buildEventNotifier(cfg config.Config, logger *logging.Logger) usecase.EventNotifier {
	if !cfg.WebhookEnabled {
		return usecase.NewNoopEventNotifier()
	}

	publisher := notify.NewWebhookPublisher(notify.WebhookPublisherConfig{
		EndpointURL:  cfg.WebhookEndpointURL,
		SigningToken: cfg.WebhookSigningToken,
		Timeout:      cfg.WebhookTimeout,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.WebhookCircuitEnabled,
			FailureThreshold: cfg.WebhookCircuitFailureCount,
			OpenTimeout:      cfg.WebhookCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.WebhookCircuitHalfOpenMax,
		},
	}, logger)

	return &webhookEventNotifier{publisher: publisher, logger: logger}
}

// webhookEventNotifier forwards archive state changes to the configured club
// webhook. Delivery failures are logged and swallowed so the state change
// that triggered the event is never affected.
type webhookEventNotifier struct {
	publisher *notify.WebhookPublisher
	logger    *logging.Logger
}

func (n *webhookEventNotifier) NotifyArchiveChanged(ctx context.Context, event usecase.ArchiveEvent) {
	eventType := event.Resource + ".archived"
	if !event.Archived {
		eventType = event.Resource + ".unarchived"
	}

	err := n.publisher.Publish(ctx, notify.Event{
		Type:       eventType,
		ClubID:     event.ClubID,
		ResourceID: event.ResourceID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		n.logger.WarnContext(ctx, "webhook delivery failed",
			"event_type", eventType,
			"club_id", event.ClubID,
			"error", err,
		)
	}
}

package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/googledash/internal/pubsub"
)

// AuditLogger writes one structured log record per authentication event.
type AuditLogger struct {
	logger *slog.Logger
}

// NewAuditLogger creates an AuditLogger. A nil logger means slog.Default().
func NewAuditLogger(logger *slog.Logger) *AuditLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{logger: logger.With("component", "audit")}
}

// Start subscribes to all authentication topics until ctx is canceled.
func (a *AuditLogger) Start(ctx context.Context, sub pubsub.Subscriber) error {
	for _, topic := range AuthTopics {
		if err := sub.Subscribe(ctx, topic, a.Handle); err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
	}
	return nil
}

// Handle logs a single event.
func (a *AuditLogger) Handle(ctx context.Context, msg pubsub.Message) error {
	ev, err := Decode(msg)
	if err != nil {
		return err
	}

	attrs := []any{"topic", msg.Topic, "at", ev.At}
	if ev.Email != "" {
		attrs = append(attrs, "email", ev.Email)
	}
	if ev.Reason != "" {
		attrs = append(attrs, "reason", ev.Reason)
	}
	if reqID := msg.Metadata["request_id"]; reqID != "" {
		attrs = append(attrs, "request_id", reqID)
	}

	level := slog.LevelInfo
	if msg.Topic == TopicSignInFailed {
		level = slog.LevelWarn
	}
	a.logger.Log(ctx, level, "Authentication event", attrs...)
	return nil
}

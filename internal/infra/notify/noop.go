package notify

import (
	"context"
	"log/slog"
)

// NoopNotifier stands in when no broker is configured. Events are
// logged at debug level and dropped.
type NoopNotifier struct {
	logger *slog.Logger
}

func NewNoopNotifier(logger *slog.Logger) *NoopNotifier {
	return &NoopNotifier{logger: logger}
}

func (n *NoopNotifier) Publish(_ context.Context, event Event) {
	n.logger.Debug("notify: dropping event, no broker configured",
		slog.String("kind", string(event.Kind)),
		slog.String("booking_id", event.BookingID.String()),
	)
}

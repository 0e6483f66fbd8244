// Package notify delivers booking lifecycle events to interested
// consumers (reminder senders, the front desk dashboard). Delivery is
// fire-and-forget: a failed publish is logged and swallowed, never
// rolled back into the request that triggered it.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventKind names a booking lifecycle change.
type EventKind string

const (
	EventBookingCreated   EventKind = "booking.created"
	EventBookingConfirmed EventKind = "booking.confirmed"
	EventBookingCompleted EventKind = "booking.completed"
	EventBookingCancelled EventKind = "booking.cancelled"
)

// Event is the payload published for every lifecycle change.
type Event struct {
	Kind        EventKind `json:"kind"`
	BookingID   uuid.UUID `json:"booking_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	StylistID   uuid.UUID `json:"stylist_id"`
	ServiceName string    `json:"service_name"`
	StartAt     time.Time `json:"start_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Notifier publishes booking events. Implementations must not return
// errors to callers; failures are their own problem to log.
type Notifier interface {
	Publish(ctx context.Context, event Event)
}

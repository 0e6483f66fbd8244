package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	CustomerID      uuid.UUID  `json:"customer_id"`
	StylistID       uuid.UUID  `json:"stylist_id"`
	ServiceID       uuid.UUID  `json:"service_id"`
	ServiceName     string     `json:"service_name"`
	DurationMinutes int        `json:"duration_minutes"`
	PriceCents      int        `json:"price_cents"`
	StartAt         time.Time  `json:"start_at"`
	EndAt           time.Time  `json:"end_at"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
	CancelReason    string     `json:"cancel_reason,omitempty"`
	CancelledBy     *uuid.UUID `json:"cancelled_by,omitempty"`
	CancelledAt     *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID          uuid.UUID `json:"id"`
	StylistID   uuid.UUID `json:"stylist_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	ServiceName string    `json:"service_name"`
	StartAt     time.Time `json:"start_at"`
	EndAt       time.Time `json:"end_at"`
	PriceCents  int       `json:"price_cents"`
	Status      string    `json:"status"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Category        string    `json:"category,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      int       `json:"price_cents"`
}

type StylistView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TemplateView struct {
	ID        uuid.UUID `json:"id"`
	StylistID uuid.UUID `json:"stylist_id"`
	Weekday   int       `json:"weekday"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Active    bool      `json:"active"`
}

type ExceptionView struct {
	StylistID uuid.UUID      `json:"stylist_id"`
	Date      string         `json:"date"`
	Kind      string         `json:"kind"`
	Intervals []IntervalView `json:"intervals"`
	Reason    string         `json:"reason,omitempty"`
}

type IntervalView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// DayScheduleView is the resolved availability for one date, before
// bookings are subtracted.
type DayScheduleView struct {
	StylistID uuid.UUID      `json:"stylist_id"`
	Date      string         `json:"date"`
	Intervals []IntervalView `json:"intervals"`
}

type SlotsView struct {
	StylistID uuid.UUID   `json:"stylist_id"`
	ServiceID uuid.UUID   `json:"service_id"`
	Date      string      `json:"date"`
	Slots     []time.Time `json:"slots"`
}

package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	StylistID uuid.UUID `json:"stylist_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StartAt   time.Time `json:"start_at" binding:"required"`
	Notes     string    `json:"notes" binding:"max=500"`
}

func (r CreateBookingRequest) TrimmedNotes() string {
	return strings.TrimSpace(r.Notes)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

type ListBookingsQuery struct {
	Status string    `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	From   time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To     time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

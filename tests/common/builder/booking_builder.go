//go:build unit || e2e

package builder

import (
	"time"

	"github.com/google/uuid"

	"barberbook/internal/domain/booking"
	"barberbook/internal/handler/dto/request"
	"barberbook/internal/usecase/queries"
)

type BookingBuilder struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	StylistID       uuid.UUID
	ServiceID       uuid.UUID
	ServiceName     string
	DurationMinutes int
	PriceCents      int
	StartAt         time.Time
	Status          booking.Status
	Notes           string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:              uuid.New(),
		CustomerID:      uuid.New(),
		StylistID:       uuid.New(),
		ServiceID:       uuid.New(),
		ServiceName:     "Classic Cut",
		DurationMinutes: 30,
		PriceCents:      3500,
		StartAt:         time.Now().Add(48 * time.Hour).Truncate(15 * time.Minute),
		Status:          booking.StatusConfirmed,
	}
}

func (b *BookingBuilder) WithCustomer(id uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithStylist(id uuid.UUID) *BookingBuilder {
	b.StylistID = id
	return b
}

func (b *BookingBuilder) WithStartAt(startAt time.Time) *BookingBuilder {
	b.StartAt = startAt
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	now := time.Now()
	endAt := b.StartAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
	return booking.Reconstruct(
		b.ID, b.CustomerID, b.StylistID, b.ServiceID, b.ServiceName,
		b.DurationMinutes, b.PriceCents, b.StartAt, endAt, b.Status,
		b.Notes, "", nil, nil, now, now,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain())
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		StylistID: b.StylistID,
		ServiceID: b.ServiceID,
		StartAt:   b.StartAt,
		Notes:     b.Notes,
	}
}

package booking

import (
	"time"

	"github.com/google/uuid"

	"barberbook/internal/domain/catalog"
)

// Booking is one appointment between a customer and a stylist. The
// service's name, duration and price are copied in at creation time so
// later catalog edits never rewrite history.
type Booking struct {
	id              uuid.UUID
	customerID      uuid.UUID
	stylistID       uuid.UUID
	serviceID       uuid.UUID
	serviceName     string
	durationMinutes int
	priceCents      int
	startAt         time.Time
	endAt           time.Time
	status          Status
	notes           string
	cancelReason    string
	cancelledBy     *uuid.UUID
	cancelledAt     *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// New creates a booking starting at startAt with the service's catalog
// snapshot. initialStatus is a shop policy (walk-in shops confirm
// immediately, others review pending requests first). Starts at or
// before now are rejected.
func New(customerID, stylistID uuid.UUID, svc *catalog.Service, startAt time.Time, notes string, initialStatus Status, now time.Time) (*Booking, error) {
	if initialStatus != StatusPending && initialStatus != StatusConfirmed {
		return nil, ErrInvalidStatus
	}
	if !startAt.After(now) {
		return nil, ErrPastDateTime
	}
	return &Booking{
		id:              uuid.New(),
		customerID:      customerID,
		stylistID:       stylistID,
		serviceID:       svc.ID(),
		serviceName:     svc.Name(),
		durationMinutes: svc.DurationMinutes(),
		priceCents:      svc.PriceCents(),
		startAt:         startAt,
		endAt:           startAt.Add(svc.Duration()),
		status:          initialStatus,
		notes:           notes,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	customerID uuid.UUID,
	stylistID uuid.UUID,
	serviceID uuid.UUID,
	serviceName string,
	durationMinutes int,
	priceCents int,
	startAt time.Time,
	endAt time.Time,
	status Status,
	notes string,
	cancelReason string,
	cancelledBy *uuid.UUID,
	cancelledAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		customerID:      customerID,
		stylistID:       stylistID,
		serviceID:       serviceID,
		serviceName:     serviceName,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
		startAt:         startAt,
		endAt:           endAt,
		status:          status,
		notes:           notes,
		cancelReason:    cancelReason,
		cancelledBy:     cancelledBy,
		cancelledAt:     cancelledAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) CustomerID() uuid.UUID  { return b.customerID }
func (b *Booking) StylistID() uuid.UUID   { return b.stylistID }
func (b *Booking) ServiceID() uuid.UUID   { return b.serviceID }
func (b *Booking) ServiceName() string    { return b.serviceName }
func (b *Booking) DurationMinutes() int   { return b.durationMinutes }
func (b *Booking) PriceCents() int        { return b.priceCents }
func (b *Booking) StartAt() time.Time     { return b.startAt }
func (b *Booking) EndAt() time.Time       { return b.endAt }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Notes() string          { return b.notes }
func (b *Booking) CancelReason() string   { return b.cancelReason }
func (b *Booking) CancelledBy() *uuid.UUID { return b.cancelledBy }
func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }

// Transition moves the booking to target if the lifecycle table allows
// it. Cancellation must go through Cancel so the audit fields get set.
func (b *Booking) Transition(target Status) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransition(target) {
		return ErrInvalidTransition
	}
	b.status = target
	return nil
}

// Cancel transitions to cancelled and records who, when and why.
func (b *Booking) Cancel(by uuid.UUID, reason string, at time.Time) error {
	if !b.status.CanTransition(StatusCancelled) {
		return ErrInvalidTransition
	}
	b.status = StatusCancelled
	b.cancelReason = reason
	b.cancelledBy = &by
	b.cancelledAt = &at
	return nil
}

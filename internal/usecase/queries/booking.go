package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barberbook/internal/domain/access"
	"barberbook/internal/domain/booking"
	"barberbook/internal/infra"
	"barberbook/internal/infra/repository"
	"barberbook/internal/pkg/errs"
)

type BookingQueries interface {
	GetByID(ctx context.Context, requester access.Requester, bookingID uuid.UUID) (*BookingView, error)
	ListMine(ctx context.Context, requester access.Requester, status string) ([]BookingListItem, error)
	ListForStylist(ctx context.Context, requester access.Requester, stylistID uuid.UUID, status string, from, to time.Time) ([]BookingListItem, error)
}

type bookingQueriesImpl struct {
	bookingRepo BookingReader
}

func NewBookingQueries(bookingRepo BookingReader) BookingQueries {
	return &bookingQueriesImpl{bookingRepo: bookingRepo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, requester access.Requester, bookingID uuid.UUID) (*BookingView, error) {
	entity, err := q.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !access.CanViewBooking(requester, entity) {
		return nil, errs.ErrForbidden
	}
	return NewBookingView(entity), nil
}

// ListMine returns the requester's own bookings, newest journey first
// by start time.
func (q *bookingQueriesImpl) ListMine(ctx context.Context, requester access.Requester, status string) ([]BookingListItem, error) {
	filter, err := buildFilter(status, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	entities, err := q.bookingRepo.ListByCustomer(ctx, requester.ID, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return listItems(entities), nil
}

// ListForStylist returns a stylist's agenda. Stylists see their own;
// admins see anyone's.
func (q *bookingQueriesImpl) ListForStylist(
	ctx context.Context,
	requester access.Requester,
	stylistID uuid.UUID,
	status string,
	from, to time.Time,
) ([]BookingListItem, error) {
	if !access.CanMutateAvailability(requester, stylistID) {
		return nil, errs.ErrForbidden
	}

	filter, err := buildFilter(status, from, to)
	if err != nil {
		return nil, err
	}

	entities, err := q.bookingRepo.ListByStylist(ctx, stylistID, filter)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return listItems(entities), nil
}

func buildFilter(status string, from, to time.Time) (repository.ListFilter, error) {
	filter := repository.ListFilter{From: from, To: to}
	if status != "" {
		st, err := booking.NewStatus(status)
		if err != nil {
			return repository.ListFilter{}, errs.Mark(err, errs.ErrInvalidTransition)
		}
		filter.Status = st
	}
	return filter, nil
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:              b.ID(),
		CustomerID:      b.CustomerID(),
		StylistID:       b.StylistID(),
		ServiceID:       b.ServiceID(),
		ServiceName:     b.ServiceName(),
		DurationMinutes: b.DurationMinutes(),
		PriceCents:      b.PriceCents(),
		StartAt:         b.StartAt(),
		EndAt:           b.EndAt(),
		Status:          b.Status().String(),
		Notes:           b.Notes(),
		CancelReason:    b.CancelReason(),
		CancelledBy:     b.CancelledBy(),
		CancelledAt:     b.CancelledAt(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func listItems(entities []*booking.Booking) []BookingListItem {
	items := make([]BookingListItem, 0, len(entities))
	for _, b := range entities {
		items = append(items, BookingListItem{
			ID:          b.ID(),
			StylistID:   b.StylistID(),
			CustomerID:  b.CustomerID(),
			ServiceName: b.ServiceName(),
			StartAt:     b.StartAt(),
			EndAt:       b.EndAt(),
			PriceCents:  b.PriceCents(),
			Status:      b.Status().String(),
		})
	}
	return items
}

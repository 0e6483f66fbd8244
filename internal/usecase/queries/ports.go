package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/catalog"
	"barberbook/internal/domain/schedule"
	"barberbook/internal/domain/user"
	"barberbook/internal/infra/cache"
	"barberbook/internal/infra/repository"
)

// Read-side ports over the infra repositories.

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListBusy(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]schedule.TimeRange, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, filter repository.ListFilter) ([]*booking.Booking, error)
	ListByStylist(ctx context.Context, stylistID uuid.UUID, filter repository.ListFilter) ([]*booking.Booking, error)
}

type ServiceReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	ListActive(ctx context.Context) ([]*catalog.Service, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	ListStylists(ctx context.Context) ([]*user.User, error)
}

type AvailabilityReader interface {
	ListTemplates(ctx context.Context, stylistID uuid.UUID) ([]*schedule.WeeklyTemplate, error)
	ListActiveTemplatesForWeekday(ctx context.Context, stylistID uuid.UUID, weekday time.Weekday) ([]*schedule.WeeklyTemplate, error)
	FindException(ctx context.Context, stylistID uuid.UUID, date time.Time) (*schedule.DateException, error)
}

// SlotCache mirrors cache.SlotCache so the query layer can be tested
// against a fake.
type SlotCache = cache.SlotCache

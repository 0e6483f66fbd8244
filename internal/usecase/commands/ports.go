package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/catalog"
	"barberbook/internal/domain/schedule"
	"barberbook/internal/domain/user"
	"barberbook/internal/infra/notify"
)

// Consumer-side ports over the infra repositories.

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *catalog.Service) error
	Update(ctx context.Context, svc *catalog.Service) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}

type AvailabilityRepository interface {
	CreateTemplate(ctx context.Context, t *schedule.WeeklyTemplate) error
	UpdateTemplate(ctx context.Context, t *schedule.WeeklyTemplate) error
	FindTemplateByID(ctx context.Context, id uuid.UUID) (*schedule.WeeklyTemplate, error)
	ListTemplates(ctx context.Context, stylistID uuid.UUID) ([]*schedule.WeeklyTemplate, error)
	ListActiveTemplatesForWeekday(ctx context.Context, stylistID uuid.UUID, weekday time.Weekday) ([]*schedule.WeeklyTemplate, error)
	SetException(ctx context.Context, exc *schedule.DateException) error
	FindException(ctx context.Context, stylistID uuid.UUID, date time.Time) (*schedule.DateException, error)
	DeleteException(ctx context.Context, stylistID uuid.UUID, date time.Time) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, b *booking.Booking) error
	ListBusy(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]schedule.TimeRange, error)
}

// SlotCacheInvalidator is the write side's view of the slot cache.
type SlotCacheInvalidator interface {
	Invalidate(ctx context.Context, stylistID uuid.UUID, date string)
}

// Notifier re-exported so command constructors stay mockable.
type Notifier interface {
	Publish(ctx context.Context, event notify.Event)
}

package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barberbook/internal/domain/access"
	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/catalog"
	"barberbook/internal/domain/schedule"
	"barberbook/internal/domain/user"
	"barberbook/internal/infra"
	"barberbook/internal/infra/notify"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/errs"
)

type BookingCommands interface {
	CreateBooking(ctx context.Context, requester access.Requester, stylistID, serviceID uuid.UUID, startAt time.Time, notes string) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, requester access.Requester, bookingID uuid.UUID, target string) (*booking.Booking, error)
	Cancel(ctx context.Context, requester access.Requester, bookingID uuid.UUID, reason string) (*booking.Booking, error)
}

// BookingPolicy carries the shop-level choices that shape the ledger.
type BookingPolicy struct {
	InitialStatus booking.Status
	CancelPolicy  booking.CancelPolicy
	SlotGrain     time.Duration
	Location      *time.Location
}

type bookingUseCaseImpl struct {
	bookingRepo      BookingRepository
	serviceRepo      ServiceRepository
	userRepo         UserRepository
	availabilityRepo AvailabilityRepository
	notifier         Notifier
	slotCache        SlotCacheInvalidator
	policy           BookingPolicy
	clock            clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	userRepo UserRepository,
	availabilityRepo AvailabilityRepository,
	notifier Notifier,
	slotCache SlotCacheInvalidator,
	policy BookingPolicy,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		bookingRepo:      bookingRepo,
		serviceRepo:      serviceRepo,
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		notifier:         notifier,
		slotCache:        slotCache,
		policy:           policy,
		clock:            clk,
	}
}

// CreateBooking books the customer onto the requested slot. The final
// word on double-booking belongs to the database's no-overlap
// constraint: two racing requests for the same slot both pass the
// validations here, and exactly one insert commits.
func (b *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	requester access.Requester,
	stylistID, serviceID uuid.UUID,
	startAt time.Time,
	notes string,
) (*booking.Booking, error) {
	svc, err := b.findService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if err := b.checkStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	startAt = startAt.In(b.policy.Location)
	if err := b.checkSlotShape(ctx, stylistID, svc, startAt); err != nil {
		return nil, err
	}

	entity, err := booking.New(requester.ID, stylistID, svc, startAt, notes, b.policy.InitialStatus, b.clock.Now())
	if err != nil {
		return nil, markBookingErr(err)
	}

	if err := b.bookingRepo.Create(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindSlotTaken) {
			return nil, errs.Mark(err, errs.ErrSlotUnavailable)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	b.afterMutation(ctx, entity, notify.EventBookingCreated)
	return entity, nil
}

func (b *bookingUseCaseImpl) UpdateStatus(
	ctx context.Context,
	requester access.Requester,
	bookingID uuid.UUID,
	target string,
) (*booking.Booking, error) {
	targetStatus, err := booking.NewStatus(target)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}
	if targetStatus == booking.StatusCancelled {
		return b.Cancel(ctx, requester, bookingID, "")
	}

	entity, err := b.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !access.CanChangeStatus(requester, entity, targetStatus) {
		return nil, errs.ErrForbidden
	}

	if err := entity.Transition(targetStatus); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}
	if err := b.bookingRepo.UpdateStatus(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	b.afterMutation(ctx, entity, statusEvent(targetStatus))
	return entity, nil
}

// Cancel frees the slot. Customers are held to the cancellation
// window; the shop's own staff can cancel right up to the start.
func (b *bookingUseCaseImpl) Cancel(
	ctx context.Context,
	requester access.Requester,
	bookingID uuid.UUID,
	reason string,
) (*booking.Booking, error) {
	entity, err := b.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !access.CanCancel(requester, entity) {
		return nil, errs.ErrForbidden
	}
	if requester.Role == user.RoleCustomer {
		if err := b.policy.CancelPolicy.Check(entity, b.clock.Now()); err != nil {
			return nil, errs.Mark(err, errs.ErrTooLateToCancel)
		}
	}

	if err := entity.Cancel(requester.ID, reason, b.clock.Now()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}
	if err := b.bookingRepo.UpdateStatus(ctx, entity); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	b.afterMutation(ctx, entity, notify.EventBookingCancelled)
	return entity, nil
}

func (b *bookingUseCaseImpl) findService(ctx context.Context, serviceID uuid.UUID) (*catalog.Service, error) {
	svc, err := b.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !svc.IsActive() {
		return nil, errs.ErrServiceNotFound
	}
	return svc, nil
}

func (b *bookingUseCaseImpl) checkStylist(ctx context.Context, stylistID uuid.UUID) error {
	stylist, err := b.userRepo.FindByID(ctx, stylistID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrStylistNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if stylist.Role() != user.RoleStylist || !stylist.IsActive() {
		return errs.ErrNotAStylist
	}
	return nil
}

// checkSlotShape verifies the requested start is on the step grid and
// the whole appointment fits inside the stylist's hours for the date.
func (b *bookingUseCaseImpl) checkSlotShape(ctx context.Context, stylistID uuid.UUID, svc *catalog.Service, startAt time.Time) error {
	dayStart := time.Date(startAt.Year(), startAt.Month(), startAt.Day(), 0, 0, 0, 0, b.policy.Location)

	exc, err := b.availabilityRepo.FindException(ctx, stylistID, dayStart)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	templates, err := b.availabilityRepo.ListActiveTemplatesForWeekday(ctx, stylistID, dayStart.Weekday())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	endAt := startAt.Add(svc.Duration())
	for _, window := range schedule.ResolveAvailability(templates, exc) {
		windowStart, windowEnd := window.At(dayStart, b.policy.Location)
		if startAt.Before(windowStart) || endAt.After(windowEnd) {
			continue
		}
		// The slot stepper anchors its grid at the window start, so
		// the commit-time check must measure from the same origin. A
		// midnight anchor would reject every slot of a window that
		// starts off the grain.
		if startAt.Sub(windowStart)%b.policy.SlotGrain != 0 {
			continue
		}
		return nil
	}
	return errs.ErrSlotUnavailable
}

// afterMutation fires the notification and drops the day's cached
// slots. Both are best-effort: the booking change already committed
// and stands regardless.
func (b *bookingUseCaseImpl) afterMutation(ctx context.Context, entity *booking.Booking, kind notify.EventKind) {
	b.slotCache.Invalidate(ctx, entity.StylistID(), entity.StartAt().In(b.policy.Location).Format("2006-01-02"))
	b.notifier.Publish(ctx, notify.Event{
		Kind:        kind,
		BookingID:   entity.ID(),
		CustomerID:  entity.CustomerID(),
		StylistID:   entity.StylistID(),
		ServiceName: entity.ServiceName(),
		StartAt:     entity.StartAt(),
		OccurredAt:  b.clock.Now(),
	})
}

func (b *bookingUseCaseImpl) findBooking(ctx context.Context, bookingID uuid.UUID) (*booking.Booking, error) {
	entity, err := b.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func markBookingErr(err error) error {
	switch {
	case errs.Is(err, booking.ErrPastDateTime):
		return errs.Mark(err, errs.ErrPastDateTime)
	case errs.Is(err, booking.ErrInvalidStatus), errs.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
	return err
}

func statusEvent(s booking.Status) notify.EventKind {
	switch s {
	case booking.StatusConfirmed:
		return notify.EventBookingConfirmed
	case booking.StatusCompleted:
		return notify.EventBookingCompleted
	case booking.StatusCancelled:
		return notify.EventBookingCancelled
	}
	return notify.EventBookingCreated
}

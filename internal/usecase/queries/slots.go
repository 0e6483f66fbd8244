package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barberbook/internal/domain/schedule"
	"barberbook/internal/domain/user"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/errs"
)

type SlotQueries interface {
	ListSlots(ctx context.Context, stylistID, serviceID uuid.UUID, date string) (*SlotsView, error)
	GetDaySchedule(ctx context.Context, stylistID uuid.UUID, date string) (*DayScheduleView, error)
}

type slotQueriesImpl struct {
	availabilityRepo AvailabilityReader
	bookingRepo      BookingReader
	serviceRepo      ServiceReader
	userRepo         UserReader
	slotCache        SlotCache
	grain            time.Duration
	location         *time.Location
	clock            clock.Clock
}

func NewSlotQueries(
	availabilityRepo AvailabilityReader,
	bookingRepo BookingReader,
	serviceRepo ServiceReader,
	userRepo UserReader,
	slotCache SlotCache,
	grain time.Duration,
	location *time.Location,
	clk clock.Clock,
) SlotQueries {
	return &slotQueriesImpl{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		serviceRepo:      serviceRepo,
		userRepo:         userRepo,
		slotCache:        slotCache,
		grain:            grain,
		location:         location,
		clock:            clk,
	}
}

// ListSlots returns the bookable starts for a stylist, service and
// date. Results come from the cache when fresh; otherwise availability
// is resolved, busy ranges subtracted and the result memoized.
func (s *slotQueriesImpl) ListSlots(ctx context.Context, stylistID, serviceID uuid.UUID, date string) (*SlotsView, error) {
	svc, err := s.serviceRepo.FindByID(ctx, serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrServiceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !svc.IsActive() {
		return nil, errs.ErrServiceNotFound
	}
	if err := s.checkStylist(ctx, stylistID); err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation("2006-01-02", date, s.location)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeFormat)
	}

	if slots, ok := s.slotCache.Get(ctx, stylistID, date, serviceID); ok {
		// A cached entry can hold starts that slipped into the past
		// while it sat in the cache.
		return &SlotsView{StylistID: stylistID, ServiceID: serviceID, Date: date, Slots: futureOnly(slots, s.clock.Now())}, nil
	}

	open, err := s.resolveDay(ctx, stylistID, day)
	if err != nil {
		return nil, err
	}

	busy, err := s.bookingRepo.ListBusy(ctx, stylistID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slots := schedule.Slots(open, day, s.location, svc.Duration(), s.grain, busy, s.clock.Now())
	s.slotCache.Set(ctx, stylistID, date, serviceID, slots)

	return &SlotsView{StylistID: stylistID, ServiceID: serviceID, Date: date, Slots: slots}, nil
}

// GetDaySchedule exposes the resolved availability windows for a date,
// before bookings are considered. The stylist dashboards use it.
func (s *slotQueriesImpl) GetDaySchedule(ctx context.Context, stylistID uuid.UUID, date string) (*DayScheduleView, error) {
	if err := s.checkStylist(ctx, stylistID); err != nil {
		return nil, err
	}
	day, err := time.ParseInLocation("2006-01-02", date, s.location)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeFormat)
	}

	open, err := s.resolveDay(ctx, stylistID, day)
	if err != nil {
		return nil, err
	}

	view := &DayScheduleView{StylistID: stylistID, Date: date, Intervals: []IntervalView{}}
	for _, iv := range open {
		view.Intervals = append(view.Intervals, IntervalView{
			StartTime: iv.Start().String(),
			EndTime:   iv.End().String(),
		})
	}
	return view, nil
}

func futureOnly(slots []time.Time, now time.Time) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, slot := range slots {
		if slot.After(now) {
			out = append(out, slot)
		}
	}
	return out
}

func (s *slotQueriesImpl) resolveDay(ctx context.Context, stylistID uuid.UUID, day time.Time) ([]schedule.Interval, error) {
	exc, err := s.availabilityRepo.FindException(ctx, stylistID, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	templates, err := s.availabilityRepo.ListActiveTemplatesForWeekday(ctx, stylistID, day.Weekday())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return schedule.ResolveAvailability(templates, exc), nil
}

func (s *slotQueriesImpl) checkStylist(ctx context.Context, stylistID uuid.UUID) error {
	stylist, err := s.userRepo.FindByID(ctx, stylistID)
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

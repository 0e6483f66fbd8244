//go:build unit

package queries

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/catalog"
	"barberbook/internal/domain/schedule"
	"barberbook/internal/domain/user"
	"barberbook/internal/infra"
	"barberbook/internal/infra/repository"
	"barberbook/internal/pkg/clock"
	"barberbook/internal/pkg/errs"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ----------------------------------------------------------------------------
// In-memory fakes for the read-side ports
// ----------------------------------------------------------------------------

type fakeBookingReader struct {
	busy         []schedule.TimeRange
	listBusyHits int
}

func (f *fakeBookingReader) FindByID(_ context.Context, _ uuid.UUID) (*booking.Booking, error) {
	return nil, infra.WrapRepoErr(discardLogger, infra.KindNotFound, "booking not found", nil)
}

func (f *fakeBookingReader) ListBusy(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]schedule.TimeRange, error) {
	f.listBusyHits++
	return f.busy, nil
}

func (f *fakeBookingReader) ListByCustomer(_ context.Context, _ uuid.UUID, _ repository.ListFilter) ([]*booking.Booking, error) {
	return nil, nil
}

func (f *fakeBookingReader) ListByStylist(_ context.Context, _ uuid.UUID, _ repository.ListFilter) ([]*booking.Booking, error) {
	return nil, nil
}

type fakeServiceReader struct {
	services map[uuid.UUID]*catalog.Service
}

func (f *fakeServiceReader) FindByID(_ context.Context, id uuid.UUID) (*catalog.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, infra.WrapRepoErr(discardLogger, infra.KindNotFound, "service not found", nil)
	}
	return svc, nil
}

func (f *fakeServiceReader) ListActive(_ context.Context) ([]*catalog.Service, error) {
	var out []*catalog.Service
	for _, svc := range f.services {
		if svc.IsActive() {
			out = append(out, svc)
		}
	}
	return out, nil
}

type fakeUserReader struct {
	users map[uuid.UUID]*user.User
}

func (f *fakeUserReader) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, infra.WrapRepoErr(discardLogger, infra.KindNotFound, "user not found", nil)
	}
	return u, nil
}

func (f *fakeUserReader) ListStylists(_ context.Context) ([]*user.User, error) {
	var out []*user.User
	for _, u := range f.users {
		if u.Role() == user.RoleStylist && u.IsActive() {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeAvailabilityReader struct {
	templates []*schedule.WeeklyTemplate
	exception *schedule.DateException
}

func (f *fakeAvailabilityReader) ListTemplates(_ context.Context, _ uuid.UUID) ([]*schedule.WeeklyTemplate, error) {
	return f.templates, nil
}

func (f *fakeAvailabilityReader) ListActiveTemplatesForWeekday(_ context.Context, _ uuid.UUID, weekday time.Weekday) ([]*schedule.WeeklyTemplate, error) {
	var out []*schedule.WeeklyTemplate
	for _, t := range f.templates {
		if t.Weekday() == weekday && t.IsActive() {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeAvailabilityReader) FindException(_ context.Context, _ uuid.UUID, _ time.Time) (*schedule.DateException, error) {
	return f.exception, nil
}

type fakeSlotCache struct {
	entries map[string][]time.Time
	sets    int
}

func cacheKey(stylistID uuid.UUID, date string, serviceID uuid.UUID) string {
	return stylistID.String() + "/" + date + "/" + serviceID.String()
}

func (f *fakeSlotCache) Get(_ context.Context, stylistID uuid.UUID, date string, serviceID uuid.UUID) ([]time.Time, bool) {
	slots, ok := f.entries[cacheKey(stylistID, date, serviceID)]
	return slots, ok
}

func (f *fakeSlotCache) Set(_ context.Context, stylistID uuid.UUID, date string, serviceID uuid.UUID, slots []time.Time) {
	f.entries[cacheKey(stylistID, date, serviceID)] = slots
	f.sets++
}

func (f *fakeSlotCache) Invalidate(_ context.Context, stylistID uuid.UUID, date string) {
	for key := range f.entries {
		if len(key) >= len(stylistID.String()+"/"+date) && key[:len(stylistID.String()+"/"+date)] == stylistID.String()+"/"+date {
			delete(f.entries, key)
		}
	}
}

// ----------------------------------------------------------------------------
// Fixture: Monday 2026-03-02, stylist works 09:00-12:00, 30-minute cuts.
// ----------------------------------------------------------------------------

type slotsFixture struct {
	q            SlotQueries
	bookingRepo  *fakeBookingReader
	availability *fakeAvailabilityReader
	cache        *fakeSlotCache

	stylistID uuid.UUID
	serviceID uuid.UUID
}

func newSlotsFixture(t *testing.T) *slotsFixture {
	t.Helper()

	stylistID := uuid.New()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) // the day before

	svc, err := catalog.NewService("Classic Cut", "", "haircut", 30, 3500)
	require.NoError(t, err)

	interval, err := schedule.ParseInterval("09:00", "12:00")
	require.NoError(t, err)
	tmpl, err := schedule.NewWeeklyTemplate(stylistID, time.Monday, interval)
	require.NoError(t, err)

	bookingRepo := &fakeBookingReader{}
	availability := &fakeAvailabilityReader{templates: []*schedule.WeeklyTemplate{tmpl}}
	cache := &fakeSlotCache{entries: map[string][]time.Time{}}
	users := &fakeUserReader{users: map[uuid.UUID]*user.User{
		stylistID: user.ReconstructUser(stylistID, "Sty List", user.ReconstructEmail("sty@example.com"), "h", user.RoleStylist, true, now, now),
	}}
	services := &fakeServiceReader{services: map[uuid.UUID]*catalog.Service{svc.ID(): svc}}

	return &slotsFixture{
		q: NewSlotQueries(
			availability, bookingRepo, services, users, cache,
			15*time.Minute, time.UTC, clock.NewMockClock(now),
		),
		bookingRepo:  bookingRepo,
		availability: availability,
		cache:        cache,
		stylistID:    stylistID,
		serviceID:    svc.ID(),
	}
}

func mondaySlot(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

// ----------------------------------------------------------------------------
// ListSlots
// ----------------------------------------------------------------------------

func TestListSlots(t *testing.T) {
	ctx := context.Background()
	const date = "2026-03-02"

	t.Run("steps through the working window on the grain", func(t *testing.T) {
		f := newSlotsFixture(t)

		view, err := f.q.ListSlots(ctx, f.stylistID, f.serviceID, date)
		require.NoError(t, err)

		// 09:00 through 11:30: last start whose 30 minutes still fit.
		want := []time.Time{
			mondaySlot(9, 0), mondaySlot(9, 15), mondaySlot(9, 30), mondaySlot(9, 45),
			mondaySlot(10, 0), mondaySlot(10, 15), mondaySlot(10, 30), mondaySlot(10, 45),
			mondaySlot(11, 0), mondaySlot(11, 15), mondaySlot(11, 30),
		}
		if diff := cmp.Diff(want, view.Slots); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, f.cache.sets, "computed result should be memoized")
	})

	t.Run("booked ranges drop every colliding start", func(t *testing.T) {
		f := newSlotsFixture(t)
		f.bookingRepo.busy = []schedule.TimeRange{
			{Start: mondaySlot(10, 0), End: mondaySlot(10, 30)},
		}

		view, err := f.q.ListSlots(ctx, f.stylistID, f.serviceID, date)
		require.NoError(t, err)

		assert.NotContains(t, view.Slots, mondaySlot(9, 45), "would overlap the booking's head")
		assert.NotContains(t, view.Slots, mondaySlot(10, 0))
		assert.NotContains(t, view.Slots, mondaySlot(10, 15), "would overlap the booking's tail")
		assert.Contains(t, view.Slots, mondaySlot(9, 30))
		assert.Contains(t, view.Slots, mondaySlot(10, 30))
	})

	t.Run("cache hit skips recomputation", func(t *testing.T) {
		f := newSlotsFixture(t)

		_, err := f.q.ListSlots(ctx, f.stylistID, f.serviceID, date)
		require.NoError(t, err)
		require.Equal(t, 1, f.bookingRepo.listBusyHits)

		view, err := f.q.ListSlots(ctx, f.stylistID, f.serviceID, date)
		require.NoError(t, err)
		assert.Equal(t, 1, f.bookingRepo.listBusyHits, "second read should come from the cache")
		assert.Len(t, view.Slots, 11)
	})

	t.Run("cached starts that slipped into the past are dropped", func(t *testing.T) {
		f := newSlotsFixture(t)

		// The clock sits at 2026-03-01 12:00. A cached entry written
		// earlier that morning still lists starts at 10:00 and 12:00.
		today := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		f.cache.entries[cacheKey(f.stylistID, "2026-03-01", f.serviceID)] = []time.Time{
			today.Add(10 * time.Hour),
			today.Add(12 * time.Hour),
			today.Add(14 * time.Hour),
		}

		view, err := f.q.ListSlots(ctx, f.stylistID, f.serviceID, "2026-03-01")
		require.NoError(t, err)

		assert.Equal(t, []time.Time{today.Add(14 * time.Hour)}, view.Slots)
		assert.Equal(t, 0, f.bookingRepo.listBusyHits, "served from the cache")
	})

	t.Run("full-day block leaves no slots", func(t *testing.T) {
		f := newSlotsFixture(t)
		f.availability.exception = schedule.NewFullDayBlock(f.stylistID, mondaySlot(0, 0), "holiday")

		view, err := f.q.ListSlots(ctx, f.stylistID, f.serviceID, date)
		require.NoError(t, err)
		assert.Empty(t, view.Slots)
	})

	t.Run("override replaces the weekly hours entirely", func(t *testing.T) {
		f := newSlotsFixture(t)
		iv, err := schedule.ParseInterval("14:00", "15:00")
		require.NoError(t, err)
		f.availability.exception = schedule.NewOverride(f.stylistID, mondaySlot(0, 0), iv, "late start")

		view, err := f.q.ListSlots(ctx, f.stylistID, f.serviceID, date)
		require.NoError(t, err)

		want := []time.Time{mondaySlot(14, 0), mondaySlot(14, 15), mondaySlot(14, 30)}
		if diff := cmp.Diff(want, view.Slots); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		f := newSlotsFixture(t)

		_, err := f.q.ListSlots(ctx, f.stylistID, f.serviceID, "03/02/2026")
		assert.True(t, errs.Is(err, errs.ErrInvalidTimeFormat))
	})

	t.Run("unknown stylist is NotFound", func(t *testing.T) {
		f := newSlotsFixture(t)

		_, err := f.q.ListSlots(ctx, uuid.New(), f.serviceID, date)
		assert.True(t, errs.Is(err, errs.ErrStylistNotFound))
	})

	t.Run("unknown service is NotFound", func(t *testing.T) {
		f := newSlotsFixture(t)

		_, err := f.q.ListSlots(ctx, f.stylistID, uuid.New(), date)
		assert.True(t, errs.Is(err, errs.ErrServiceNotFound))
	})
}

func TestGetDaySchedule(t *testing.T) {
	ctx := context.Background()
	const date = "2026-03-02"

	t.Run("returns the resolved windows as wall-clock strings", func(t *testing.T) {
		f := newSlotsFixture(t)

		view, err := f.q.GetDaySchedule(ctx, f.stylistID, date)
		require.NoError(t, err)

		require.Len(t, view.Intervals, 1)
		assert.Equal(t, "09:00", view.Intervals[0].StartTime)
		assert.Equal(t, "12:00", view.Intervals[0].EndTime)
	})

	t.Run("a day off resolves to no windows", func(t *testing.T) {
		f := newSlotsFixture(t)

		view, err := f.q.GetDaySchedule(ctx, f.stylistID, "2026-03-03")
		require.NoError(t, err)
		assert.Empty(t, view.Intervals)
	})
}

//go:build unit

package schedule

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAvailability(t *testing.T) {
	stylistID := uuid.New()
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) // a Monday

	morning := mustInterval(t, "09:00", "12:00")
	afternoon := mustInterval(t, "13:00", "17:00")

	newTemplate := func(iv Interval) *WeeklyTemplate {
		tmpl, err := NewWeeklyTemplate(stylistID, time.Monday, iv)
		require.NoError(t, err)
		return tmpl
	}

	t.Run("no exception returns active template windows sorted", func(t *testing.T) {
		got := ResolveAvailability([]*WeeklyTemplate{newTemplate(afternoon), newTemplate(morning)}, nil)

		require.Len(t, got, 2)
		assert.Equal(t, morning, got[0])
		assert.Equal(t, afternoon, got[1])
	})

	t.Run("inactive templates are skipped", func(t *testing.T) {
		inactive := newTemplate(morning)
		inactive.Deactivate()

		got := ResolveAvailability([]*WeeklyTemplate{inactive, newTemplate(afternoon)}, nil)

		require.Len(t, got, 1)
		assert.Equal(t, afternoon, got[0])
	})

	t.Run("full-day block wins over any template", func(t *testing.T) {
		exc := NewFullDayBlock(stylistID, date, "holiday")

		got := ResolveAvailability([]*WeeklyTemplate{newTemplate(morning), newTemplate(afternoon)}, exc)

		assert.Empty(t, got)
	})

	t.Run("override replaces the template outright", func(t *testing.T) {
		window := mustInterval(t, "10:00", "14:00")
		exc := NewOverride(stylistID, date, window, "special event")

		got := ResolveAvailability([]*WeeklyTemplate{newTemplate(morning), newTemplate(afternoon)}, exc)

		require.Len(t, got, 1)
		assert.Equal(t, window, got[0])
	})

	t.Run("partial block freezes template minus blocked window", func(t *testing.T) {
		exc, err := NewPartialBlock(stylistID, date, []Interval{morning, afternoon}, mustInterval(t, "10:00", "14:00"), "errand")
		require.NoError(t, err)

		got := ResolveAvailability([]*WeeklyTemplate{newTemplate(morning), newTemplate(afternoon)}, exc)

		require.Len(t, got, 2)
		assert.Equal(t, "09:00-10:00", got[0].String())
		assert.Equal(t, "14:00-17:00", got[1].String())
	})

	t.Run("block swallowing every hour collapses to a full-day block", func(t *testing.T) {
		exc, err := NewPartialBlock(stylistID, date, []Interval{morning, afternoon}, mustInterval(t, "09:00", "17:00"), "closed")
		require.NoError(t, err)

		assert.Equal(t, FullDayBlock, exc.Kind())
		assert.Empty(t, exc.Intervals())
		assert.Empty(t, ResolveAvailability([]*WeeklyTemplate{newTemplate(morning), newTemplate(afternoon)}, exc))
	})

	t.Run("partial block needs template hours to carve from", func(t *testing.T) {
		_, err := NewPartialBlock(stylistID, date, nil, mustInterval(t, "10:00", "14:00"), "errand")
		assert.ErrorIs(t, err, ErrInvalidException)
	})
}

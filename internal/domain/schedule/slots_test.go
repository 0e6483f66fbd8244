//go:build unit

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots(t *testing.T) {
	loc := time.UTC
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	longAgo := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 9, hour, minute, 0, 0, loc)
	}

	window := []Interval{mustInterval(t, "09:00", "12:00")}

	t.Run("steps through the window on the grain", func(t *testing.T) {
		got := Slots(window, monday, loc, 30*time.Minute, 15*time.Minute, nil, longAgo)

		require.Len(t, got, 11)
		assert.Equal(t, at(9, 0), got[0])
		assert.Equal(t, at(9, 15), got[1])
		// 11:45 would run past the window's end; 11:30 is the last fit.
		assert.Equal(t, at(11, 30), got[10])
	})

	t.Run("existing booking removes every colliding start", func(t *testing.T) {
		busy := []TimeRange{{Start: at(10, 0), End: at(10, 30)}}

		got := Slots(window, monday, loc, 30*time.Minute, 15*time.Minute, busy, longAgo)

		assert.NotContains(t, got, at(9, 45), "would run into the booking")
		assert.NotContains(t, got, at(10, 0), "starts inside the booking")
		assert.NotContains(t, got, at(10, 15), "starts inside the booking")
		assert.Contains(t, got, at(9, 30), "ends exactly when the booking starts")
		assert.Contains(t, got, at(10, 30), "starts exactly when the booking ends")
	})

	t.Run("past starts are excluded", func(t *testing.T) {
		now := at(10, 0)

		got := Slots(window, monday, loc, 30*time.Minute, 15*time.Minute, nil, now)

		assert.NotContains(t, got, at(10, 0), "a slot starting exactly now is already in the past")
		assert.Equal(t, at(10, 15), got[0])
	})

	t.Run("duration longer than the window yields nothing", func(t *testing.T) {
		got := Slots(window, monday, loc, 4*time.Hour, 15*time.Minute, nil, longAgo)
		assert.Empty(t, got)
	})

	t.Run("split shifts produce slots per window", func(t *testing.T) {
		shifts := []Interval{mustInterval(t, "09:00", "10:00"), mustInterval(t, "15:00", "16:00")}

		got := Slots(shifts, monday, loc, 30*time.Minute, 30*time.Minute, nil, longAgo)

		assert.Equal(t, []time.Time{at(9, 0), at(9, 30), at(15, 0), at(15, 30)}, got)
	})

	t.Run("no availability yields an empty non-nil slice", func(t *testing.T) {
		got := Slots(nil, monday, loc, 30*time.Minute, 15*time.Minute, nil, longAgo)

		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

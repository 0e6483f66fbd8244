//go:build unit

package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "morning", input: "09:30", want: 9*60 + 30},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "24:00", want: 24 * 60},
		{name: "single digit hour", input: "9:15", want: 9*60 + 15},
		{name: "missing colon", input: "0930", wantErr: true},
		{name: "minutes out of range", input: "09:60", wantErr: true},
		{name: "past end of day", input: "24:15", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "short minutes", input: "09:3", wantErr: true},
		{name: "not a number", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayFromDecimal(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		want    TimeOfDay
		wantErr bool
	}{
		{name: "quarter hour", input: 9.25, want: 9*60 + 15},
		{name: "half hour", input: 17.5, want: 17*60 + 30},
		{name: "whole hour", input: 10, want: 10 * 60},
		{name: "negative", input: -0.5, wantErr: true},
		{name: "past end of day", input: 24.25, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TimeOfDayFromDecimal(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_RoundTrip(t *testing.T) {
	tod, err := ParseTimeOfDay("14:45")
	require.NoError(t, err)

	assert.Equal(t, "14:45", tod.String())
	assert.Equal(t, 14.75, tod.Decimal())
	assert.True(t, tod.OnGrain(Grain))
	assert.False(t, tod.OnGrain(30*time.Minute))
}

func TestTimeOfDay_At(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)

	date := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)
	got := tod.At(date, loc)

	assert.Equal(t, time.Date(2026, 3, 9, 9, 30, 0, 0, loc), got)
}

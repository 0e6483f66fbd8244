//go:build unit

package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end string) Interval {
	t.Helper()
	iv, err := ParseInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestNewInterval(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid window", start: "09:00", end: "17:00"},
		{name: "fifteen minute window", start: "09:00", end: "09:15"},
		{name: "ends at midnight", start: "22:00", end: "24:00"},
		{name: "start equals end", start: "09:00", end: "09:00", wantErr: true},
		{name: "start after end", start: "17:00", end: "09:00", wantErr: true},
		{name: "start off grain", start: "09:10", end: "17:00", wantErr: true},
		{name: "end off grain", start: "09:00", end: "17:05", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseTimeOfDay(tt.start)
			require.NoError(t, err)
			e, err := ParseTimeOfDay(tt.end)
			require.NoError(t, err)

			_, err = NewInterval(s, e)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInterval)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{name: "disjoint", a: [2]string{"09:00", "10:00"}, b: [2]string{"11:00", "12:00"}, want: false},
		{name: "touching boundaries", a: [2]string{"09:00", "10:00"}, b: [2]string{"10:00", "11:00"}, want: false},
		{name: "partial overlap", a: [2]string{"09:00", "10:30"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "contained", a: [2]string{"09:00", "12:00"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "identical", a: [2]string{"09:00", "10:00"}, b: [2]string{"09:00", "10:00"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustInterval(t, tt.a[0], tt.a[1])
			b := mustInterval(t, tt.b[0], tt.b[1])

			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestInterval_Subtract(t *testing.T) {
	day := mustInterval(t, "09:00", "17:00")

	t.Run("block in the middle splits the window", func(t *testing.T) {
		got := day.Subtract(mustInterval(t, "12:00", "13:00"))
		require.Len(t, got, 2)
		assert.Equal(t, "09:00-12:00", got[0].String())
		assert.Equal(t, "13:00-17:00", got[1].String())
	})

	t.Run("block at the start trims the head", func(t *testing.T) {
		got := day.Subtract(mustInterval(t, "08:00", "10:00"))
		require.Len(t, got, 1)
		assert.Equal(t, "10:00-17:00", got[0].String())
	})

	t.Run("block covering everything leaves nothing", func(t *testing.T) {
		got := day.Subtract(mustInterval(t, "08:00", "18:00"))
		assert.Empty(t, got)
	})

	t.Run("disjoint block leaves the window alone", func(t *testing.T) {
		got := day.Subtract(mustInterval(t, "18:00", "19:00"))
		require.Len(t, got, 1)
		assert.Equal(t, day, got[0])
	})
}

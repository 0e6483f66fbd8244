package schedule

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidInterval   = errors.New("invalid interval")
)

// Grain is the quantization unit for template and exception boundaries.
const Grain = 15 * time.Minute

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// 24:00 is a valid value so an interval can end exactly at midnight.
type TimeOfDay int

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses a zero-padded or bare "H:MM" / "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, ErrInvalidTimeFormat
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return 0, ErrInvalidTimeFormat
	}
	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidTimeFormat
	}
	total := hours*60 + minutes
	if total > minutesPerDay {
		return 0, ErrInvalidTimeFormat
	}
	return TimeOfDay(total), nil
}

// TimeOfDayFromDecimal converts decimal hours (9.5 == 09:30) to a TimeOfDay.
// The mobile clients still speak this representation.
func TimeOfDayFromDecimal(d float64) (TimeOfDay, error) {
	if d < 0 || d > 24 {
		return 0, ErrInvalidTimeFormat
	}
	minutes := math.Round(d * 60)
	return TimeOfDay(int(minutes)), nil
}

func (t TimeOfDay) Hour() int    { return int(t) / 60 }
func (t TimeOfDay) Minute() int  { return int(t) % 60 }
func (t TimeOfDay) Minutes() int { return int(t) }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Decimal() float64 {
	return float64(t) / 60
}

// OnGrain reports whether the time falls on a multiple of g.
func (t TimeOfDay) OnGrain(g time.Duration) bool {
	grainMinutes := int(g / time.Minute)
	if grainMinutes <= 0 {
		return false
	}
	return int(t)%grainMinutes == 0
}

// At anchors the time of day on the given calendar date in loc.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(t) * time.Minute)
}

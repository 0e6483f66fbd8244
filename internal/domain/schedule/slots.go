package schedule

import "time"

// TimeRange is a half-open [Start, End) span of absolute time, used
// for existing bookings when generating slots.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps uses the same half-open rule as Interval: a range ending
// exactly when another starts does not collide.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Slots walks the availability windows for date in steps of grain and
// returns every start at which a booking of the given duration would
// fit entirely inside a window, collide with no busy range, and not
// start in the past. Cancelled bookings must be filtered out of busy
// by the caller.
func Slots(open []Interval, date time.Time, loc *time.Location, duration, grain time.Duration, busy []TimeRange, now time.Time) []time.Time {
	slots := []time.Time{}
	if duration <= 0 || grain <= 0 {
		return slots
	}
	for _, window := range open {
		windowStart, windowEnd := window.At(date, loc)
		for start := windowStart; !start.Add(duration).After(windowEnd); start = start.Add(grain) {
			if !start.After(now) {
				continue
			}
			candidate := TimeRange{Start: start, End: start.Add(duration)}
			if collides(candidate, busy) {
				continue
			}
			slots = append(slots, start)
		}
	}
	return slots
}

func collides(candidate TimeRange, busy []TimeRange) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

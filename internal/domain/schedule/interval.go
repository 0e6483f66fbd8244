package schedule

import (
	"fmt"
	"sort"
	"time"
)

// Interval is a half-open [Start, End) span of wall-clock time within a day.
type Interval struct {
	start TimeOfDay
	end   TimeOfDay
}

// NewInterval validates start < end and both bounds on the scheduling grain.
func NewInterval(start, end TimeOfDay) (Interval, error) {
	if start >= end {
		return Interval{}, ErrInvalidInterval
	}
	if !start.OnGrain(Grain) || !end.OnGrain(Grain) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

// ParseInterval builds an interval from two "HH:MM" strings.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

func (i Interval) Start() TimeOfDay { return i.start }
func (i Interval) End() TimeOfDay   { return i.end }

func (i Interval) Duration() time.Duration {
	return time.Duration(i.end-i.start) * time.Minute
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.start, i.end)
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching boundaries (a.end == b.start) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.start < other.end && other.start < i.end
}

// Contains reports whether other lies entirely within i.
func (i Interval) Contains(other Interval) bool {
	return i.start <= other.start && other.end <= i.end
}

// Subtract removes block from i, returning the zero, one or two
// remaining pieces in ascending order.
func (i Interval) Subtract(block Interval) []Interval {
	if !i.Overlaps(block) {
		return []Interval{i}
	}
	var out []Interval
	if i.start < block.start {
		out = append(out, Interval{start: i.start, end: block.start})
	}
	if block.end < i.end {
		out = append(out, Interval{start: block.end, end: i.end})
	}
	return out
}

// At resolves the interval to absolute instants on date in loc.
func (i Interval) At(date time.Time, loc *time.Location) (time.Time, time.Time) {
	return i.start.At(date, loc), i.end.At(date, loc)
}

// SubtractAll removes block from every interval in open, keeping order.
func SubtractAll(open []Interval, block Interval) []Interval {
	out := make([]Interval, 0, len(open))
	for _, iv := range open {
		out = append(out, iv.Subtract(block)...)
	}
	return out
}

func sortIntervals(ivs []Interval) {
	sort.Slice(ivs, func(a, b int) bool { return ivs[a].start < ivs[b].start })
}

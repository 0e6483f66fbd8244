package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidException = errors.New("invalid exception")

// ExceptionKind distinguishes how a date exception was created. All
// kinds resolve the same way: the exception's interval list is the
// stylist's availability for that date, full stop.
type ExceptionKind string

const (
	// FullDayBlock removes the whole day. Intervals is empty.
	FullDayBlock ExceptionKind = "full_day_block"
	// PartialBlock stores the template hours that remain after a
	// blocked window was carved out.
	PartialBlock ExceptionKind = "partial_block"
	// Override replaces the day's hours with an explicit window.
	Override ExceptionKind = "override"
)

func (k ExceptionKind) IsValid() bool {
	switch k {
	case FullDayBlock, PartialBlock, Override:
		return true
	}
	return false
}

// DateException replaces a stylist's template-derived hours on one
// calendar date. Its interval list is authoritative for that date;
// the weekly template is ignored entirely.
type DateException struct {
	id        uuid.UUID
	stylistID uuid.UUID
	date      time.Time // midnight in the shop timezone
	kind      ExceptionKind
	intervals []Interval
	reason    string
	createdAt time.Time
}

// NewFullDayBlock blocks the whole date.
func NewFullDayBlock(stylistID uuid.UUID, date time.Time, reason string) *DateException {
	return &DateException{
		id:        uuid.New(),
		stylistID: stylistID,
		date:      date,
		kind:      FullDayBlock,
		reason:    reason,
	}
}

// NewOverride makes the stylist available exactly during interval on date.
func NewOverride(stylistID uuid.UUID, date time.Time, interval Interval, reason string) *DateException {
	return &DateException{
		id:        uuid.New(),
		stylistID: stylistID,
		date:      date,
		kind:      Override,
		intervals: []Interval{interval},
		reason:    reason,
	}
}

// NewPartialBlock carves block out of the template-derived hours for
// the date and freezes the remainder as the day's availability.
func NewPartialBlock(stylistID uuid.UUID, date time.Time, templateHours []Interval, block Interval, reason string) (*DateException, error) {
	if len(templateHours) == 0 {
		return nil, ErrInvalidException
	}
	remaining := SubtractAll(templateHours, block)
	// A block swallowing every remaining hour leaves nothing of the
	// day; that is a full-day block, and stored as one.
	if len(remaining) == 0 {
		return NewFullDayBlock(stylistID, date, reason), nil
	}
	sortIntervals(remaining)
	return &DateException{
		id:        uuid.New(),
		stylistID: stylistID,
		date:      date,
		kind:      PartialBlock,
		intervals: remaining,
		reason:    reason,
	}, nil
}

func ReconstructDateException(
	id uuid.UUID,
	stylistID uuid.UUID,
	date time.Time,
	kind ExceptionKind,
	intervals []Interval,
	reason string,
	createdAt time.Time,
) *DateException {
	sortIntervals(intervals)
	return &DateException{
		id:        id,
		stylistID: stylistID,
		date:      date,
		kind:      kind,
		intervals: intervals,
		reason:    reason,
		createdAt: createdAt,
	}
}

func (e *DateException) ID() uuid.UUID        { return e.id }
func (e *DateException) StylistID() uuid.UUID { return e.stylistID }
func (e *DateException) Date() time.Time      { return e.date }
func (e *DateException) Kind() ExceptionKind  { return e.kind }
func (e *DateException) Reason() string       { return e.reason }
func (e *DateException) CreatedAt() time.Time { return e.createdAt }

// Intervals returns a copy of the day's availability windows in
// ascending order. Empty for a full-day block.
func (e *DateException) Intervals() []Interval {
	out := make([]Interval, len(e.intervals))
	copy(out, e.intervals)
	return out
}

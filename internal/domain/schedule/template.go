package schedule

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyTemplate is one recurring working window for a stylist on a
// given weekday. A stylist may hold several templates per weekday
// (split shifts) as long as their intervals do not overlap.
type WeeklyTemplate struct {
	id        uuid.UUID
	stylistID uuid.UUID
	weekday   time.Weekday
	interval  Interval
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewWeeklyTemplate(stylistID uuid.UUID, weekday time.Weekday, interval Interval) (*WeeklyTemplate, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return nil, ErrInvalidInterval
	}
	return &WeeklyTemplate{
		id:        uuid.New(),
		stylistID: stylistID,
		weekday:   weekday,
		interval:  interval,
		active:    true,
	}, nil
}

func ReconstructWeeklyTemplate(
	id uuid.UUID,
	stylistID uuid.UUID,
	weekday time.Weekday,
	interval Interval,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) *WeeklyTemplate {
	return &WeeklyTemplate{
		id:        id,
		stylistID: stylistID,
		weekday:   weekday,
		interval:  interval,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *WeeklyTemplate) ID() uuid.UUID         { return t.id }
func (t *WeeklyTemplate) StylistID() uuid.UUID  { return t.stylistID }
func (t *WeeklyTemplate) Weekday() time.Weekday { return t.weekday }
func (t *WeeklyTemplate) Interval() Interval    { return t.interval }
func (t *WeeklyTemplate) IsActive() bool        { return t.active }
func (t *WeeklyTemplate) CreatedAt() time.Time  { return t.createdAt }
func (t *WeeklyTemplate) UpdatedAt() time.Time  { return t.updatedAt }

func (t *WeeklyTemplate) Deactivate() { t.active = false }

// UpdateInterval swaps the working window in place.
func (t *WeeklyTemplate) UpdateInterval(interval Interval) {
	t.interval = interval
}

// ConflictsWith reports whether another template for the same stylist
// and weekday overlaps this one.
func (t *WeeklyTemplate) ConflictsWith(other *WeeklyTemplate) bool {
	if t.stylistID != other.stylistID || t.weekday != other.weekday {
		return false
	}
	if t.id == other.id {
		return false
	}
	return t.interval.Overlaps(other.interval)
}

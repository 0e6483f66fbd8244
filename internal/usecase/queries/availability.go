package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"barberbook/internal/pkg/errs"
)

type AvailabilityQueries interface {
	ListTemplates(ctx context.Context, stylistID uuid.UUID) ([]TemplateView, error)
	GetException(ctx context.Context, stylistID uuid.UUID, date string) (*ExceptionView, error)
}

type availabilityQueriesImpl struct {
	availabilityRepo AvailabilityReader
	location         *time.Location
}

func NewAvailabilityQueries(availabilityRepo AvailabilityReader, location *time.Location) AvailabilityQueries {
	return &availabilityQueriesImpl{availabilityRepo: availabilityRepo, location: location}
}

func (q *availabilityQueriesImpl) ListTemplates(ctx context.Context, stylistID uuid.UUID) ([]TemplateView, error) {
	templates, err := q.availabilityRepo.ListTemplates(ctx, stylistID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	views := make([]TemplateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, TemplateView{
			ID:        t.ID(),
			StylistID: t.StylistID(),
			Weekday:   int(t.Weekday()),
			StartTime: t.Interval().Start().String(),
			EndTime:   t.Interval().End().String(),
			Active:    t.IsActive(),
		})
	}
	return views, nil
}

func (q *availabilityQueriesImpl) GetException(ctx context.Context, stylistID uuid.UUID, date string) (*ExceptionView, error) {
	day, err := time.ParseInLocation("2006-01-02", date, q.location)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTimeFormat)
	}

	exc, err := q.availabilityRepo.FindException(ctx, stylistID, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if exc == nil {
		return nil, errs.ErrExceptionNotFound
	}

	view := &ExceptionView{
		StylistID: stylistID,
		Date:      date,
		Kind:      string(exc.Kind()),
		Reason:    exc.Reason(),
		Intervals: []IntervalView{},
	}
	for _, iv := range exc.Intervals() {
		view.Intervals = append(view.Intervals, IntervalView{
			StartTime: iv.Start().String(),
			EndTime:   iv.End().String(),
		})
	}
	return view, nil
}

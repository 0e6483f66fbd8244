package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"barberbook/internal/domain/schedule"
	"barberbook/internal/infra"
)

// AvailabilityRepository persists weekly templates and date exceptions.
// Intervals are stored as minutes since midnight; an exception is a
// group of rows sharing (stylist_id, date), replaced as a unit.
type AvailabilityRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAvailabilityRepository(pool *pgxpool.Pool, logger *slog.Logger) *AvailabilityRepository {
	return &AvailabilityRepository{pool: pool, logger: logger}
}

const templateColumns = `id, stylist_id, weekday, start_minutes, end_minutes, is_active, created_at, updated_at`

func scanTemplate(row interface{ Scan(dest ...any) error }) (*schedule.WeeklyTemplate, error) {
	var (
		id           uuid.UUID
		stylistID    uuid.UUID
		weekday      int
		startMinutes int
		endMinutes   int
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &stylistID, &weekday, &startMinutes, &endMinutes, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	interval, err := schedule.NewInterval(schedule.TimeOfDay(startMinutes), schedule.TimeOfDay(endMinutes))
	if err != nil {
		return nil, err
	}
	return schedule.ReconstructWeeklyTemplate(id, stylistID, time.Weekday(weekday), interval, isActive, createdAt, updatedAt), nil
}

func (r *AvailabilityRepository) CreateTemplate(ctx context.Context, t *schedule.WeeklyTemplate) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO availability_templates (id, stylist_id, weekday, start_minutes, end_minutes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.ID(), t.StylistID(), int(t.Weekday()), t.Interval().Start().Minutes(), t.Interval().End().Minutes(), t.IsActive())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create template", err)
	}
	return nil
}

func (r *AvailabilityRepository) UpdateTemplate(ctx context.Context, t *schedule.WeeklyTemplate) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE availability_templates
		SET start_minutes = $2,
			end_minutes = $3,
			is_active = $4,
			updated_at = now()
		WHERE id = $1
	`, t.ID(), t.Interval().Start().Minutes(), t.Interval().End().Minutes(), t.IsActive())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "template not found", nil)
	}
	return nil
}

func (r *AvailabilityRepository) FindTemplateByID(ctx context.Context, id uuid.UUID) (*schedule.WeeklyTemplate, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+templateColumns+`
		FROM availability_templates
		WHERE id = $1
	`, id)
	t, err := scanTemplate(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find template", err)
	}
	return t, nil
}

// ListTemplates returns all of a stylist's templates, active or not,
// for the management screens.
func (r *AvailabilityRepository) ListTemplates(ctx context.Context, stylistID uuid.UUID) ([]*schedule.WeeklyTemplate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM availability_templates
		WHERE stylist_id = $1
		ORDER BY weekday, start_minutes
	`, stylistID)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list templates", err)
	}
	return r.collectTemplates(rows)
}

// ListActiveTemplatesForWeekday feeds availability resolution.
func (r *AvailabilityRepository) ListActiveTemplatesForWeekday(ctx context.Context, stylistID uuid.UUID, weekday time.Weekday) ([]*schedule.WeeklyTemplate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+templateColumns+`
		FROM availability_templates
		WHERE stylist_id = $1 AND weekday = $2 AND is_active
		ORDER BY start_minutes
	`, stylistID, int(weekday))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list templates for weekday", err)
	}
	return r.collectTemplates(rows)
}

func (r *AvailabilityRepository) collectTemplates(rows pgx.Rows) ([]*schedule.WeeklyTemplate, error) {
	defer rows.Close()

	var templates []*schedule.WeeklyTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan template", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate templates", err)
	}
	return templates, nil
}

// SetException replaces whatever exception exists for the stylist and
// date with exc, atomically.
func (r *AvailabilityRepository) SetException(ctx context.Context, exc *schedule.DateException) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	date := exc.Date().Format("2006-01-02")
	if _, err := tx.Exec(ctx, `
		DELETE FROM availability_exceptions
		WHERE stylist_id = $1 AND date = $2
	`, exc.StylistID(), date); err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to clear exception", err)
	}

	intervals := exc.Intervals()
	if len(intervals) == 0 {
		if _, err := tx.Exec(ctx, `
			INSERT INTO availability_exceptions (id, stylist_id, date, kind, reason)
			VALUES ($1, $2, $3, $4, $5)
		`, exc.ID(), exc.StylistID(), date, string(exc.Kind()), exc.Reason()); err != nil {
			return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to insert exception", err)
		}
	}
	for _, iv := range intervals {
		if _, err := tx.Exec(ctx, `
			INSERT INTO availability_exceptions (id, stylist_id, date, kind, start_minutes, end_minutes, reason)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, uuid.New(), exc.StylistID(), date, string(exc.Kind()), iv.Start().Minutes(), iv.End().Minutes(), exc.Reason()); err != nil {
			return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to insert exception interval", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to commit exception", err)
	}
	return nil
}

// FindException returns the exception for the date, or nil when the
// weekly template applies unmodified.
func (r *AvailabilityRepository) FindException(ctx context.Context, stylistID uuid.UUID, date time.Time) (*schedule.DateException, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, kind, start_minutes, end_minutes, reason, created_at
		FROM availability_exceptions
		WHERE stylist_id = $1 AND date = $2
		ORDER BY start_minutes NULLS FIRST
	`, stylistID, date.Format("2006-01-02"))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query exception", err)
	}
	defer rows.Close()

	var (
		found     bool
		id        uuid.UUID
		kind      string
		reason    string
		createdAt time.Time
		intervals []schedule.Interval
	)
	for rows.Next() {
		var startMinutes, endMinutes *int
		if err := rows.Scan(&id, &kind, &startMinutes, &endMinutes, &reason, &createdAt); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan exception", err)
		}
		found = true
		if startMinutes != nil && endMinutes != nil {
			iv, err := schedule.NewInterval(schedule.TimeOfDay(*startMinutes), schedule.TimeOfDay(*endMinutes))
			if err != nil {
				return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "corrupt exception interval", err)
			}
			intervals = append(intervals, iv)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate exception", err)
	}
	if !found {
		return nil, nil
	}
	return schedule.ReconstructDateException(id, stylistID, date, schedule.ExceptionKind(kind), intervals, reason, createdAt), nil
}

// DeleteException restores the weekly template for the date.
func (r *AvailabilityRepository) DeleteException(ctx context.Context, stylistID uuid.UUID, date time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM availability_exceptions
		WHERE stylist_id = $1 AND date = $2
	`, stylistID, date.Format("2006-01-02"))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to delete exception", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "exception not found", nil)
	}
	return nil
}

package repository

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"barberbook/internal/domain/booking"
	"barberbook/internal/domain/schedule"
	"barberbook/internal/infra"
	"barberbook/internal/pkg/pgconv"
)

// BookingRepository persists bookings. The bookings table carries an
// exclusion constraint over (stylist_id, tstzrange(start_at, end_at))
// for non-cancelled rows, so two concurrent inserts for the same slot
// cannot both commit; the loser surfaces as KindSlotTaken.
type BookingRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewBookingRepository(pool *pgxpool.Pool, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{pool: pool, logger: logger}
}

const bookingColumns = `id, customer_id, stylist_id, service_id, service_name, duration_minutes, price_cents,
	start_at, end_at, status, notes, cancel_reason, cancelled_by, cancelled_at, created_at, updated_at`

func scanBooking(row interface{ Scan(dest ...any) error }) (*booking.Booking, error) {
	var (
		id              uuid.UUID
		customerID      uuid.UUID
		stylistID       uuid.UUID
		serviceID       uuid.UUID
		serviceName     string
		durationMinutes int
		priceCents      int
		startAt         time.Time
		endAt           time.Time
		status          string
		notes           string
		cancelReason    string
		cancelledBy     pgtype.UUID
		cancelledAt     pgtype.Timestamptz
		createdAt       time.Time
		updatedAt       time.Time
	)
	if err := row.Scan(
		&id, &customerID, &stylistID, &serviceID, &serviceName, &durationMinutes, &priceCents,
		&startAt, &endAt, &status, &notes, &cancelReason, &cancelledBy, &cancelledAt, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		id, customerID, stylistID, serviceID, serviceName, durationMinutes, priceCents,
		startAt, endAt, booking.Status(status), notes, cancelReason,
		pgconv.UUIDPtrFromPgtype(cancelledBy), pgconv.TimePtrFromPgtype(cancelledAt),
		createdAt, updatedAt,
	), nil
}

// Create inserts the booking. When another booking already holds an
// overlapping range for the stylist the insert fails on the exclusion
// constraint and the caller gets KindSlotTaken.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings
			(id, customer_id, stylist_id, service_id, service_name, duration_minutes, price_cents,
			start_at, end_at, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`, b.ID(), b.CustomerID(), b.StylistID(), b.ServiceID(), b.ServiceName(), b.DurationMinutes(), b.PriceCents(),
		b.StartAt(), b.EndAt(), b.Status().String(), b.Notes())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings
		WHERE id = $1
	`, id)
	b, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find booking", err)
	}
	return b, nil
}

// UpdateStatus writes back a lifecycle change, including the cancel
// audit fields when they are set.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings
		SET status = $2,
			cancel_reason = $3,
			cancelled_by = $4,
			cancelled_at = $5,
			updated_at = now()
		WHERE id = $1
	`, b.ID(), b.Status().String(), b.CancelReason(),
		pgconv.UUIDPtrToPgtype(b.CancelledBy()), pgconv.TimePtrToPgtype(b.CancelledAt()))
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

// ListBusy returns the occupied ranges for a stylist between from and
// to. Cancelled bookings do not occupy their slot.
func (r *BookingRepository) ListBusy(ctx context.Context, stylistID uuid.UUID, from, to time.Time) ([]schedule.TimeRange, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT start_at, end_at
		FROM bookings
		WHERE stylist_id = $1
			AND status <> 'cancelled'
			AND start_at < $3
			AND end_at > $2
		ORDER BY start_at
	`, stylistID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list busy ranges", err)
	}
	defer rows.Close()

	var busy []schedule.TimeRange
	for rows.Next() {
		var tr schedule.TimeRange
		if err := rows.Scan(&tr.Start, &tr.End); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan busy range", err)
		}
		busy = append(busy, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate busy ranges", err)
	}
	return busy, nil
}

// ListFilter narrows booking listings. Zero values mean "no filter".
type ListFilter struct {
	Status booking.Status
	From   time.Time
	To     time.Time
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter ListFilter) ([]*booking.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE customer_id = $1`
	args := []any{customerID}
	query, args = applyFilter(query, args, filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list customer bookings", err)
	}
	return r.collectBookings(rows)
}

func (r *BookingRepository) ListByStylist(ctx context.Context, stylistID uuid.UUID, filter ListFilter) ([]*booking.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE stylist_id = $1`
	args := []any{stylistID}
	query, args = applyFilter(query, args, filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list stylist bookings", err)
	}
	return r.collectBookings(rows)
}

func applyFilter(query string, args []any, filter ListFilter) (string, []any) {
	if filter.Status != "" {
		args = append(args, filter.Status.String())
		query += " AND status = $" + strconv.Itoa(len(args))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += " AND start_at >= $" + strconv.Itoa(len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += " AND start_at < $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY start_at"
	return query, args
}

func (r *BookingRepository) collectBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate bookings", err)
	}
	return bookings, nil
}

package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"barberbook/internal/domain/catalog"
	"barberbook/internal/infra"
)

type ServiceRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewServiceRepository(pool *pgxpool.Pool, logger *slog.Logger) *ServiceRepository {
	return &ServiceRepository{pool: pool, logger: logger}
}

const serviceColumns = `id, name, description, category, duration_minutes, price_cents, is_active, created_at, updated_at`

func scanService(row interface{ Scan(dest ...any) error }) (*catalog.Service, error) {
	var (
		id              uuid.UUID
		name            string
		description     string
		category        string
		durationMinutes int
		priceCents      int
		isActive        bool
		createdAt       time.Time
		updatedAt       time.Time
	)
	if err := row.Scan(&id, &name, &description, &category, &durationMinutes, &priceCents, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return catalog.ReconstructService(id, name, description, category, durationMinutes, priceCents, isActive, createdAt, updatedAt), nil
}

func (r *ServiceRepository) Create(ctx context.Context, svc *catalog.Service) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO services (id, name, description, category, duration_minutes, price_cents, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, svc.ID(), svc.Name(), svc.Description(), svc.Category(), svc.DurationMinutes(), svc.PriceCents(), svc.IsActive())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *catalog.Service) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE services
		SET name = $2,
			description = $3,
			category = $4,
			duration_minutes = $5,
			price_cents = $6,
			is_active = $7,
			updated_at = now()
		WHERE id = $1
	`, svc.ID(), svc.Name(), svc.Description(), svc.Category(), svc.DurationMinutes(), svc.PriceCents(), svc.IsActive())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "service not found", nil)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+serviceColumns+`
		FROM services
		WHERE id = $1
	`, id)
	svc, err := scanService(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find service", err)
	}
	return svc, nil
}

// ListActive returns the bookable catalog in display order.
func (r *ServiceRepository) ListActive(ctx context.Context) ([]*catalog.Service, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+serviceColumns+`
		FROM services
		WHERE is_active
		ORDER BY name
	`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list services", err)
	}
	defer rows.Close()

	var services []*catalog.Service
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan service", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate services", err)
	}
	return services, nil
}

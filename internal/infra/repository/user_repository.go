package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"barberbook/internal/domain/user"
	"barberbook/internal/infra"
)

type UserRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewUserRepository(pool *pgxpool.Pool, logger *slog.Logger) *UserRepository {
	return &UserRepository{pool: pool, logger: logger}
}

const userColumns = `id, name, email, password_hash, role, is_active, created_at, updated_at`

func (r *UserRepository) scanUser(row interface{ Scan(dest ...any) error }) (*user.User, error) {
	var (
		id           uuid.UUID
		name         string
		email        string
		passwordHash string
		role         string
		isActive     bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	if err := row.Scan(&id, &name, &email, &passwordHash, &role, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return user.ReconstructUser(id, name, user.ReconstructEmail(email), passwordHash, user.Role(role), isActive, createdAt, updatedAt), nil
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.IsActive())
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	u, err := r.scanUser(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find user by id", err)
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email)
	u, err := r.scanUser(row)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.ClassifyPgErr(err), "failed to find user by email", err)
	}
	return u, nil
}

// ListStylists returns every active staff member customers can book.
func (r *UserRepository) ListStylists(ctx context.Context) ([]*user.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = 'stylist' AND is_active
		ORDER BY name
	`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list stylists", err)
	}
	defer rows.Close()

	var stylists []*user.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan stylist", err)
		}
		stylists = append(stylists, u)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate stylists", err)
	}
	return stylists, nil
}

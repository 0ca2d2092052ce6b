// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/laporkota/backend/internal/adapter/postgres"
	"github.com/laporkota/backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// userRow mirrors the users table for scany.
type userRow struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role"`
	AgencyID     *uuid.UUID `db:"agency_id"`
	CreatedAt    time.Time  `db:"created_at"`
}

func (row userRow) toDomain() domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		AgencyID:     row.AgencyID,
		CreatedAt:    row.CreatedAt,
	}
}

var userColumns = []string{"id", "name", "email", "password_hash", "role", "agency_id", "created_at"}

// GetByID returns a user by primary key.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user select: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	user := row.toDomain()
	return &user, nil
}

// GetByEmail returns a user by email.
// Returns domain.ErrNotFound if no user has the email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user select: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	user := row.toDomain()
	return &user, nil
}

// Create inserts a new user.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, user *domain.User) error {
	query := psql.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.PasswordHash,
			string(user.Role), user.AgencyID, user.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build user insert: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user", user.ID)
	}

	return nil
}

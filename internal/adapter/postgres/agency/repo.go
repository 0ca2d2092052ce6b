// Package agency implements the Agency repository using PostgreSQL.
package agency

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

// Repo provides agency persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new agency repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// agencyRow mirrors the agencies table for scany.
type agencyRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

func (row agencyRow) toDomain() domain.Agency {
	return domain.Agency{
		ID:        row.ID,
		Name:      row.Name,
		Type:      domain.AgencyType(row.Type),
		CreatedAt: row.CreatedAt,
	}
}

// GetByID returns an agency by primary key.
// Returns domain.ErrNotFound if the agency does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Agency, error) {
	query := psql.Select("id", "name", "type", "created_at").
		From("agencies").
		Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build agency select: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var row agencyRow
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "agency", id)
	}

	agency := row.toDomain()
	return &agency, nil
}

// GetByType returns the agency responsible for the given type.
// When several agencies share a type the oldest wins, so auto-routing is
// deterministic. Returns domain.ErrNotFound if no agency has the type.
func (r *Repo) GetByType(ctx context.Context, agencyType domain.AgencyType) (*domain.Agency, error) {
	query := psql.Select("id", "name", "type", "created_at").
		From("agencies").
		Where(squirrel.Eq{"type": string(agencyType)}).
		OrderBy("created_at ASC").
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build agency select: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var row agencyRow
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "agency", uuid.Nil)
	}

	agency := row.toDomain()
	return &agency, nil
}

// List returns all agencies ordered by name.
// Returns an empty slice (not nil) when none exist.
func (r *Repo) List(ctx context.Context) ([]domain.Agency, error) {
	query := psql.Select("id", "name", "type", "created_at").
		From("agencies").
		OrderBy("name ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build agency list: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []agencyRow
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list agencies: %w", err)
	}

	agencies := make([]domain.Agency, len(rows))
	for i, row := range rows {
		agencies[i] = row.toDomain()
	}

	return agencies, nil
}

// Create inserts a new agency.
// Returns domain.ErrAlreadyExists if the name is taken.
func (r *Repo) Create(ctx context.Context, agency *domain.Agency) error {
	query := psql.Insert("agencies").
		Columns("id", "name", "type", "created_at").
		Values(agency.ID, agency.Name, string(agency.Type), agency.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build agency insert: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "agency", agency.ID)
	}

	return nil
}

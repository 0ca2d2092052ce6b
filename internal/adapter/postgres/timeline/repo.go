// Package timeline implements the append-only timeline event repository.
// Events are only ever inserted and listed; there is no update or delete,
// removal happens solely via the reports CASCADE.
package timeline

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

// Repo provides timeline event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new timeline repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// eventRow mirrors the timeline_events table for scany.
type eventRow struct {
	ID          uuid.UUID `db:"id"`
	ReportID    uuid.UUID `db:"report_id"`
	ActorID     uuid.UUID `db:"actor_id"`
	Type        string    `db:"type"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Create appends a timeline event. Returns domain.ErrNotFound if the report
// the event references does not exist.
func (r *Repo) Create(ctx context.Context, event *domain.TimelineEvent) error {
	query := psql.Insert("timeline_events").
		Columns("id", "report_id", "actor_id", "type", "title", "description", "created_at").
		Values(event.ID, event.ReportID, event.ActorID, string(event.Type),
			event.Title, event.Description, event.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build event insert: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "timeline_event", event.ID)
	}

	return nil
}

// ListByReport returns a report's timeline in chronological order.
// Returns an empty slice (not nil) when the report has no events.
func (r *Repo) ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.TimelineEvent, error) {
	query := psql.Select("id", "report_id", "actor_id", "type", "title", "description", "created_at").
		From("timeline_events").
		Where(squirrel.Eq{"report_id": reportID}).
		OrderBy("created_at ASC", "id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build event list: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []eventRow
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list timeline events: %w", err)
	}

	events := make([]domain.TimelineEvent, len(rows))
	for i, row := range rows {
		events[i] = domain.TimelineEvent{
			ID:          row.ID,
			ReportID:    row.ReportID,
			ActorID:     row.ActorID,
			Type:        domain.EventType(row.Type),
			Title:       row.Title,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		}
	}

	return events, nil
}

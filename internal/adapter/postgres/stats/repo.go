// Package stats implements read-only aggregation queries over reports.
// Every query is recomputed per request; nothing is cached, so results are
// read-committed at query time rather than point-in-time snapshots.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/laporkota/backend/internal/adapter/postgres"
	"github.com/laporkota/backend/internal/domain"
)

// Repo provides report aggregations backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new stats repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const countByStatusSQL = `
SELECT status, count(*) AS count
FROM reports
GROUP BY status`

// statusCountRow is the raw per-status count before folding into groups.
type statusCountRow struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// StatusGroupCounts returns report counts folded into dashboard buckets.
// Every group is present in the result, zero-count groups included, in the
// fixed order pending / in-progress / completed / rejected.
func (r *Repo) StatusGroupCounts(ctx context.Context) ([]domain.StatusGroupCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []statusCountRow
	if err := pgxscan.Select(ctx, querier, &rows, countByStatusSQL); err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}

	// Fold statuses into groups in Go so the grouping logic lives in one
	// place, on the domain type.
	byGroup := map[domain.StatusGroup]int{}
	for _, row := range rows {
		byGroup[domain.ReportStatus(row.Status).Group()] += row.Count
	}

	groups := []domain.StatusGroup{
		domain.StatusGroupPending,
		domain.StatusGroupInProgress,
		domain.StatusGroupCompleted,
		domain.StatusGroupRejected,
	}

	result := make([]domain.StatusGroupCount, len(groups))
	for i, g := range groups {
		result[i] = domain.StatusGroupCount{Group: g, Count: byGroup[g]}
	}

	return result, nil
}

const countByCategorySQL = `
SELECT category, count(*) AS count
FROM reports
GROUP BY category
ORDER BY count DESC, category ASC`

// categoryCountRow mirrors the category distribution query.
type categoryCountRow struct {
	Category string `db:"category"`
	Count    int    `db:"count"`
}

// CategoryDistribution returns report counts per category, largest first.
// Categories with no reports are omitted.
func (r *Repo) CategoryDistribution(ctx context.Context) ([]domain.CategoryCount, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []categoryCountRow
	if err := pgxscan.Select(ctx, querier, &rows, countByCategorySQL); err != nil {
		return nil, fmt.Errorf("count by category: %w", err)
	}

	result := make([]domain.CategoryCount, len(rows))
	for i, row := range rows {
		result[i] = domain.CategoryCount{
			Category: domain.Category(row.Category),
			Count:    row.Count,
		}
	}

	return result, nil
}

// Tri-state bucketing: done / in-progress / awaiting a decision.
// Rejected reports are excluded from the series entirely.
const dailySeriesSQL = `
SELECT
    date_trunc('day', created_at)                                  AS bucket,
    count(*) FILTER (WHERE status = 'COMPLETED')                   AS done,
    count(*) FILTER (WHERE status IN ('VERIFIED_BY_AGENCY', 'IN_PROGRESS')) AS in_progress,
    count(*) FILTER (WHERE status IN ('PENDING_VERIFICATION', 'DISPOSED', 'REJECTED_BY_AGENCY')) AS awaiting
FROM reports
WHERE created_at >= $1
GROUP BY bucket
ORDER BY bucket ASC`

const monthlySeriesSQL = `
SELECT
    date_trunc('month', created_at)                                AS bucket,
    count(*) FILTER (WHERE status = 'COMPLETED')                   AS done,
    count(*) FILTER (WHERE status IN ('VERIFIED_BY_AGENCY', 'IN_PROGRESS')) AS in_progress,
    count(*) FILTER (WHERE status IN ('PENDING_VERIFICATION', 'DISPOSED', 'REJECTED_BY_AGENCY')) AS awaiting
FROM reports
WHERE created_at >= $1 AND created_at < $2
GROUP BY bucket
ORDER BY bucket ASC`

// seriesRow mirrors the tri-state series queries.
type seriesRow struct {
	Bucket     time.Time `db:"bucket"`
	Done       int       `db:"done"`
	InProgress int       `db:"in_progress"`
	Awaiting   int       `db:"awaiting"`
}

// DailySeries returns per-day tri-state counts for reports created in the
// last `days` days. Days with no reports are omitted.
func (r *Repo) DailySeries(ctx context.Context, days int) ([]domain.SeriesBucket, error) {
	since := time.Now().UTC().AddDate(0, 0, -days)
	return r.series(ctx, dailySeriesSQL, since)
}

// MonthlySeries returns per-month tri-state counts for reports created in
// the given calendar year. Months with no reports are omitted.
func (r *Repo) MonthlySeries(ctx context.Context, year int) ([]domain.SeriesBucket, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	return r.series(ctx, monthlySeriesSQL, start, end)
}

func (r *Repo) series(ctx context.Context, sql string, args ...any) ([]domain.SeriesBucket, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []seriesRow
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("report series: %w", err)
	}

	result := make([]domain.SeriesBucket, len(rows))
	for i, row := range rows {
		result[i] = domain.SeriesBucket{
			Bucket:     row.Bucket,
			Done:       row.Done,
			InProgress: row.InProgress,
			Awaiting:   row.Awaiting,
		}
	}

	return result, nil
}

const agencyBudgetSQL = `
SELECT
    coalesce(sum(budget_total), 0) AS budget_total,
    coalesce(sum(budget_used), 0)  AS budget_used
FROM reports
WHERE agency_id = $1`

// AgencyBudget returns the summed allocated and spent budget across all of
// an agency's reports. An agency with no budgeted reports gets zero sums.
func (r *Repo) AgencyBudget(ctx context.Context, agencyID uuid.UUID) (domain.AgencyBudget, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	budget := domain.AgencyBudget{AgencyID: agencyID}
	err := querier.QueryRow(ctx, agencyBudgetSQL, agencyID).
		Scan(&budget.BudgetTotal, &budget.BudgetUsed)
	if err != nil {
		return domain.AgencyBudget{}, fmt.Errorf("agency budget: %w", err)
	}

	return budget, nil
}

// Package report implements the Report repository using PostgreSQL.
// It persists reports together with their support endorsements and
// image references; timeline events live in their own package.
package report

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

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var reportColumns = []string{
	"id", "reporter_id", "category", "title", "description", "location",
	"status", "agency_id",
	"admin_note", "admin_verified_at", "admin_verified_by",
	"agency_note", "agency_verified_at", "agency_verified_by",
	"rejection_reason", "rejected_at", "rejected_by",
	"completion_note", "completed_at",
	"budget_total", "budget_used", "support_count",
	"created_at", "updated_at",
}

// reportRow mirrors the reports table for scany.
type reportRow struct {
	ID               uuid.UUID  `db:"id"`
	ReporterID       uuid.UUID  `db:"reporter_id"`
	Category         string     `db:"category"`
	Title            string     `db:"title"`
	Description      string     `db:"description"`
	Location         *string    `db:"location"`
	Status           string     `db:"status"`
	AgencyID         *uuid.UUID `db:"agency_id"`
	AdminNote        *string    `db:"admin_note"`
	AdminVerifiedAt  *time.Time `db:"admin_verified_at"`
	AdminVerifiedBy  *uuid.UUID `db:"admin_verified_by"`
	AgencyNote       *string    `db:"agency_note"`
	AgencyVerifiedAt *time.Time `db:"agency_verified_at"`
	AgencyVerifiedBy *uuid.UUID `db:"agency_verified_by"`
	RejectionReason  *string    `db:"rejection_reason"`
	RejectedAt       *time.Time `db:"rejected_at"`
	RejectedBy       *uuid.UUID `db:"rejected_by"`
	CompletionNote   *string    `db:"completion_note"`
	CompletedAt      *time.Time `db:"completed_at"`
	BudgetTotal      *int64     `db:"budget_total"`
	BudgetUsed       int64      `db:"budget_used"`
	SupportCount     int        `db:"support_count"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (row reportRow) toDomain() domain.Report {
	return domain.Report{
		ID:               row.ID,
		ReporterID:       row.ReporterID,
		Category:         domain.Category(row.Category),
		Title:            row.Title,
		Description:      row.Description,
		Location:         row.Location,
		Status:           domain.ReportStatus(row.Status),
		AgencyID:         row.AgencyID,
		AdminNote:        row.AdminNote,
		AdminVerifiedAt:  row.AdminVerifiedAt,
		AdminVerifiedBy:  row.AdminVerifiedBy,
		AgencyNote:       row.AgencyNote,
		AgencyVerifiedAt: row.AgencyVerifiedAt,
		AgencyVerifiedBy: row.AgencyVerifiedBy,
		RejectionReason:  row.RejectionReason,
		RejectedAt:       row.RejectedAt,
		RejectedBy:       row.RejectedBy,
		CompletionNote:   row.CompletionNote,
		CompletedAt:      row.CompletedAt,
		BudgetTotal:      row.BudgetTotal,
		BudgetUsed:       row.BudgetUsed,
		SupportCount:     row.SupportCount,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a report by primary key.
// Returns domain.ErrNotFound if the report does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return r.get(ctx, id, false)
}

// GetByIDForUpdate returns a report by primary key with a row lock.
// It only makes sense inside a transaction; the lock is held until commit.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return r.get(ctx, id, true)
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, forUpdate bool) (*domain.Report, error) {
	query := psql.Select(reportColumns...).
		From("reports").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build report select: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var row reportRow
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}

	report := row.toDomain()
	return &report, nil
}

// List returns reports matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error) {
	query := psql.Select(reportColumns...).
		From("reports").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		query = query.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Category != nil {
		query = query.Where(squirrel.Eq{"category": string(*filter.Category)})
	}
	if filter.AgencyID != nil {
		query = query.Where(squirrel.Eq{"agency_id": *filter.AgencyID})
	}
	if filter.ReporterID != nil {
		query = query.Where(squirrel.Eq{"reporter_id": *filter.ReporterID})
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit).Offset(filter.Offset)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build report list: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []reportRow
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	reports := make([]domain.Report, len(rows))
	for i, row := range rows {
		reports[i] = row.toDomain()
	}

	return reports, nil
}

const countOpenByReporterSQL = `
SELECT count(*) FROM reports
WHERE reporter_id = $1 AND status NOT IN ('COMPLETED', 'REJECTED')`

// CountOpenByReporter returns the number of non-terminal reports a citizen has.
func (r *Repo) CountOpenByReporter(ctx context.Context, reporterID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countOpenByReporterSQL, reporterID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count open reports: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new report.
func (r *Repo) Create(ctx context.Context, report *domain.Report) error {
	query := psql.Insert("reports").
		Columns(reportColumns...).
		Values(
			report.ID, report.ReporterID, string(report.Category), report.Title,
			report.Description, report.Location,
			string(report.Status), report.AgencyID,
			report.AdminNote, report.AdminVerifiedAt, report.AdminVerifiedBy,
			report.AgencyNote, report.AgencyVerifiedAt, report.AgencyVerifiedBy,
			report.RejectionReason, report.RejectedAt, report.RejectedBy,
			report.CompletionNote, report.CompletedAt,
			report.BudgetTotal, report.BudgetUsed, report.SupportCount,
			report.CreatedAt, report.UpdatedAt,
		)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build report insert: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "report", report.ID)
	}

	return nil
}

// Update writes all mutable report fields. The immutable core (reporter,
// category, title, description, location, created_at) is never touched.
// Returns domain.ErrNotFound if the report does not exist.
func (r *Repo) Update(ctx context.Context, report *domain.Report) error {
	query := psql.Update("reports").
		Set("status", string(report.Status)).
		Set("agency_id", report.AgencyID).
		Set("admin_note", report.AdminNote).
		Set("admin_verified_at", report.AdminVerifiedAt).
		Set("admin_verified_by", report.AdminVerifiedBy).
		Set("agency_note", report.AgencyNote).
		Set("agency_verified_at", report.AgencyVerifiedAt).
		Set("agency_verified_by", report.AgencyVerifiedBy).
		Set("rejection_reason", report.RejectionReason).
		Set("rejected_at", report.RejectedAt).
		Set("rejected_by", report.RejectedBy).
		Set("completion_note", report.CompletionNote).
		Set("completed_at", report.CompletedAt).
		Set("budget_total", report.BudgetTotal).
		Set("budget_used", report.BudgetUsed).
		Set("updated_at", report.UpdatedAt).
		Where(squirrel.Eq{"id": report.ID})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build report update: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "report", report.ID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("report %s: %w", report.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a report. CASCADE deletes its timeline events, supports and
// image references. Returns domain.ErrNotFound if the report does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete("reports").Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build report delete: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "report", id)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Supports
// ---------------------------------------------------------------------------

const insertSupportSQL = `
INSERT INTO supports (report_id, user_id, created_at) VALUES ($1, $2, $3)`

const bumpSupportCountSQL = `
UPDATE reports SET support_count = support_count + 1 WHERE id = $1`

// AddSupport records a citizen endorsement and bumps the denormalized counter.
// Returns domain.ErrAlreadyExists if the citizen already supports the report.
// Callers must run this inside a transaction to keep the counter consistent.
func (r *Repo) AddSupport(ctx context.Context, reportID, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, insertSupportSQL, reportID, userID, time.Now().UTC()); err != nil {
		return postgres.MapError(err, "support", reportID)
	}

	if _, err := querier.Exec(ctx, bumpSupportCountSQL, reportID); err != nil {
		return postgres.MapError(err, "report", reportID)
	}

	return nil
}

const hasSupportedSQL = `
SELECT EXISTS (SELECT 1 FROM supports WHERE report_id = $1 AND user_id = $2)`

// HasSupported reports whether the citizen already endorsed the report.
func (r *Repo) HasSupported(ctx context.Context, reportID, userID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, hasSupportedSQL, reportID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check support: %w", err)
	}

	return exists, nil
}

// ---------------------------------------------------------------------------
// Images
// ---------------------------------------------------------------------------

// imageRow mirrors the report_images table for scany.
type imageRow struct {
	ID         uuid.UUID `db:"id"`
	ReportID   uuid.UUID `db:"report_id"`
	ObjectKey  string    `db:"object_key"`
	Completion bool      `db:"completion"`
	CreatedAt  time.Time `db:"created_at"`
}

// AddImage records an object-store key for a report image.
func (r *Repo) AddImage(ctx context.Context, img *domain.ReportImage) error {
	query := psql.Insert("report_images").
		Columns("id", "report_id", "object_key", "completion", "created_at").
		Values(img.ID, img.ReportID, img.ObjectKey, img.Completion, img.CreatedAt)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build image insert: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "report_image", img.ID)
	}

	return nil
}

// ListImages returns a report's image references, oldest first.
// Returns an empty slice (not nil) when the report has no images.
func (r *Repo) ListImages(ctx context.Context, reportID uuid.UUID) ([]domain.ReportImage, error) {
	query := psql.Select("id", "report_id", "object_key", "completion", "created_at").
		From("report_images").
		Where(squirrel.Eq{"report_id": reportID}).
		OrderBy("created_at ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build image list: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []imageRow
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list report images: %w", err)
	}

	images := make([]domain.ReportImage, len(rows))
	for i, row := range rows {
		images[i] = domain.ReportImage{
			ID:         row.ID,
			ReportID:   row.ReportID,
			ObjectKey:  row.ObjectKey,
			Completion: row.Completion,
			CreatedAt:  row.CreatedAt,
		}
	}

	return images, nil
}

// Package stats exposes the dashboard aggregations. The heavy lifting happens
// in SQL; this layer validates parameters and gates the agency budget view.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

type statsRepo interface {
	StatusGroupCounts(ctx context.Context) ([]domain.StatusGroupCount, error)
	CategoryDistribution(ctx context.Context) ([]domain.CategoryCount, error)
	DailySeries(ctx context.Context, days int) ([]domain.SeriesBucket, error)
	MonthlySeries(ctx context.Context, year int) ([]domain.SeriesBucket, error)
	AgencyBudget(ctx context.Context, agencyID uuid.UUID) (domain.AgencyBudget, error)
}

// Service provides dashboard aggregations over reports.
type Service struct {
	stats statsRepo
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new stats service.
func NewService(log *slog.Logger, stats statsRepo) *Service {
	return &Service{
		stats: stats,
		log:   log.With("service", "stats"),
		now:   time.Now,
	}
}

// StatusGroups returns report counts folded into dashboard buckets.
func (s *Service) StatusGroups(ctx context.Context) ([]domain.StatusGroupCount, error) {
	return s.stats.StatusGroupCounts(ctx)
}

// CategoryDistribution returns report counts per category, largest first.
func (s *Service) CategoryDistribution(ctx context.Context) ([]domain.CategoryCount, error) {
	return s.stats.CategoryDistribution(ctx)
}

// DailySeries returns per-day tri-state counts. Only 7- and 30-day windows
// are served; anything else is a validation error.
func (s *Service) DailySeries(ctx context.Context, days int) ([]domain.SeriesBucket, error) {
	if days != 7 && days != 30 {
		return nil, domain.NewValidationError("days", "must be 7 or 30")
	}
	return s.stats.DailySeries(ctx, days)
}

// MonthlySeries returns per-month tri-state counts for the given year.
// A zero year means the current year.
func (s *Service) MonthlySeries(ctx context.Context, year int) ([]domain.SeriesBucket, error) {
	if year == 0 {
		year = s.now().UTC().Year()
	}
	if year < 2000 || year > s.now().UTC().Year() {
		return nil, domain.NewValidationError("year", "out of range")
	}
	return s.stats.MonthlySeries(ctx, year)
}

// AgencyBudget returns the summed allocated and spent budget for one agency.
// Admins may read any agency; agency actors only their own.
func (s *Service) AgencyBudget(ctx context.Context, agencyID uuid.UUID) (domain.AgencyBudget, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.AgencyBudget{}, domain.ErrUnauthorized
	}
	if agencyID == uuid.Nil {
		return domain.AgencyBudget{}, domain.NewValidationError("agency_id", "required")
	}

	switch {
	case actor.IsAdmin():
	case actor.IsAgency() && actor.Affiliation() == agencyID:
	default:
		return domain.AgencyBudget{}, domain.ErrForbidden
	}

	return s.stats.AgencyBudget(ctx, agencyID)
}

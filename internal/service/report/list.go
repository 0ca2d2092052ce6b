package report

import (
	"context"

	"github.com/laporkota/backend/internal/domain"
)

// List returns reports matching the filter, newest first. The page size is
// clamped; callers that want more page through with Offset.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Report, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	return s.reports.List(ctx, domain.ReportFilter{
		Status:     input.Status,
		Category:   input.Category,
		AgencyID:   input.AgencyID,
		ReporterID: input.ReporterID,
		Limit:      limit,
		Offset:     input.Offset,
	})
}

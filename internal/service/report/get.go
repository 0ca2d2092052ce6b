package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
)

// Detail is a report together with its full audit trail and image references.
type Detail struct {
	Report   domain.Report
	Timeline []domain.TimelineEvent
	Images   []domain.ReportImage
}

// Get returns a report with its timeline and images.
// Returns domain.ErrNotFound if the report does not exist.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Detail, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("report_id", "required")
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	timeline, err := s.timeline.ListByReport(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := s.reports.ListImages(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Report:   *report,
		Timeline: timeline,
		Images:   images,
	}, nil
}

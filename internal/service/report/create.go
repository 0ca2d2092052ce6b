package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

// Create files a new report on behalf of the authenticated citizen. The
// report, its filing images and the opening timeline entry are written in one
// transaction. Citizens with too many open reports are refused.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if actor.Role != domain.RoleCitizen {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	var report *domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		open, err := s.reports.CountOpenByReporter(txCtx, actor.ID)
		if err != nil {
			return err
		}
		if open >= s.cfg.MaxOpenReports {
			return fmt.Errorf("open report limit reached: %w", domain.ErrConflict)
		}

		now := s.now().UTC()
		r := &domain.Report{
			ID:          uuid.New(),
			ReporterID:  actor.ID,
			Category:    input.Category,
			Title:       strings.TrimSpace(input.Title),
			Description: strings.TrimSpace(input.Description),
			Location:    trimOrNil(input.Location),
			Status:      domain.StatusPendingVerification,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.reports.Create(txCtx, r); err != nil {
			return fmt.Errorf("create report: %w", err)
		}

		for _, key := range input.ImageKeys {
			img := &domain.ReportImage{
				ID:        uuid.New(),
				ReportID:  r.ID,
				ObjectKey: key,
				CreatedAt: now,
			}
			if err := s.reports.AddImage(txCtx, img); err != nil {
				return fmt.Errorf("attach image: %w", err)
			}
		}

		event := &domain.TimelineEvent{
			ID:        uuid.New(),
			ReportID:  r.ID,
			ActorID:   actor.ID,
			Type:      domain.EventReportCreated,
			Title:     "Laporan dibuat",
			CreatedAt: now,
		}
		if err := s.timeline.Create(txCtx, event); err != nil {
			return fmt.Errorf("append timeline: %w", err)
		}

		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "report created",
		slog.String("report_id", report.ID.String()),
		slog.String("category", string(report.Category)),
		slog.String("reporter_id", actor.ID.String()),
	)

	return report, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

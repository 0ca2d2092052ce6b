package disposition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

// Complete closes out a report with a mandatory completion note and optional
// completion images (already uploaded; only their object keys are recorded).
func (s *Service) Complete(ctx context.Context, input CompleteInput) (*domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}
	note := strings.TrimSpace(input.CompletionNote)

	var report *domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, rule, err := s.loadForOp(txCtx, domain.OperationComplete, input.ReportID, actor)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		r.Status = rule.Destination
		r.CompletionNote = &note
		r.CompletedAt = &now
		r.UpdatedAt = now

		if err := s.reports.Update(txCtx, r); err != nil {
			return fmt.Errorf("update report: %w", err)
		}

		for _, key := range input.ImageKeys {
			img := &domain.ReportImage{
				ID:         uuid.New(),
				ReportID:   r.ID,
				ObjectKey:  key,
				Completion: true,
				CreatedAt:  now,
			}
			if err := s.reports.AddImage(txCtx, img); err != nil {
				return fmt.Errorf("attach completion image: %w", err)
			}
		}

		if err := s.appendEvent(txCtx, r, actor, rule.Event, "Laporan selesai", note, now); err != nil {
			return err
		}

		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, report, actor, domain.EventCompleted, report.UpdatedAt)

	s.log.InfoContext(ctx, "report completed",
		slog.String("report_id", report.ID.String()),
		slog.Int("images", len(input.ImageKeys)),
		slog.String("actor_id", actor.ID.String()),
	)

	return report, nil
}

package disposition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

// Verify is the owning agency acknowledging a disposed report as theirs.
func (s *Service) Verify(ctx context.Context, input VerifyInput) (*domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	var report *domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, rule, err := s.loadForOp(txCtx, domain.OperationVerify, input.ReportID, actor)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		r.Status = rule.Destination
		r.AgencyNote = trimOrNil(input.Note)
		r.AgencyVerifiedAt = &now
		r.AgencyVerifiedBy = &actor.ID
		r.UpdatedAt = now

		if err := s.reports.Update(txCtx, r); err != nil {
			return fmt.Errorf("update report: %w", err)
		}

		description := ""
		if r.AgencyNote != nil {
			description = *r.AgencyNote
		}
		if err := s.appendEvent(txCtx, r, actor, rule.Event, "Laporan diverifikasi dinas", description, now); err != nil {
			return err
		}

		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, report, actor, domain.EventVerifiedAgency, report.UpdatedAt)

	s.log.InfoContext(ctx, "report verified by agency",
		slog.String("report_id", report.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return report, nil
}

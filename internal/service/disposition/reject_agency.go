package disposition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

// RejectByAgency bounces a disposed report back to admin triage. Unlike an
// admin rejection this is not terminal: the admin may re-dispose or reject.
func (s *Service) RejectByAgency(ctx context.Context, input RejectByAgencyInput) (*domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(input.Reason)

	var report *domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, rule, err := s.loadForOp(txCtx, domain.OperationRejectByAgency, input.ReportID, actor)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		r.Status = rule.Destination
		r.RejectionReason = &reason
		r.RejectedAt = &now
		r.RejectedBy = &actor.ID
		r.UpdatedAt = now

		if err := s.reports.Update(txCtx, r); err != nil {
			return fmt.Errorf("update report: %w", err)
		}

		description := reason + ". Laporan dikembalikan ke admin untuk ditinjau ulang."
		if err := s.appendEvent(txCtx, r, actor, rule.Event, "Laporan ditolak dinas", description, now); err != nil {
			return err
		}

		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, report, actor, domain.EventRejectedAgency, report.UpdatedAt)

	s.log.InfoContext(ctx, "report rejected by agency",
		slog.String("report_id", report.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return report, nil
}

package disposition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

// Reject terminally rejects a report at admin triage. Legal both for fresh
// reports and for reports an agency has bounced back.
func (s *Service) Reject(ctx context.Context, input RejectInput) (*domain.Report, error) {
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
		r, rule, err := s.loadForOp(txCtx, domain.OperationReject, input.ReportID, actor)
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

		if err := s.appendEvent(txCtx, r, actor, rule.Event, "Laporan ditolak", reason, now); err != nil {
			return err
		}

		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, report, actor, domain.EventRejectedAdmin, report.UpdatedAt)

	s.log.InfoContext(ctx, "report rejected",
		slog.String("report_id", report.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return report, nil
}

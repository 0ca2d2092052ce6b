package disposition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

// AddSpend records spending against the allocated budget. It never changes
// status, so it bypasses the transition table but applies the same role,
// ownership and status discipline by hand: only the owning agency, only
// while IN_PROGRESS, and never beyond budgetTotal.
func (s *Service) AddSpend(ctx context.Context, input AddSpendInput) (*domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	var report *domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.reports.GetByIDForUpdate(txCtx, input.ReportID)
		if err != nil {
			return err
		}

		if !actor.IsAgency() {
			return domain.ErrForbidden
		}
		if actor.AgencyID == nil || !r.OwnedBy(*actor.AgencyID) {
			return domain.ErrForbidden
		}
		if r.Status != domain.StatusInProgress {
			return &domain.InvalidTransitionError{Status: r.Status, Operation: domain.OperationAddSpend}
		}
		if r.BudgetTotal == nil {
			return domain.NewValidationError("amount", "no budget allocated")
		}
		if r.BudgetUsed+input.Amount > *r.BudgetTotal {
			return domain.NewValidationError("amount", "exceeds remaining budget")
		}

		now := s.now().UTC()
		r.BudgetUsed += input.Amount
		r.UpdatedAt = now

		if err := s.reports.Update(txCtx, r); err != nil {
			return fmt.Errorf("update report: %w", err)
		}

		if err := s.appendEvent(txCtx, r, actor, domain.EventBudgetSpent, "Realisasi anggaran dicatat", formatRupiah(input.Amount), now); err != nil {
			return err
		}

		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, report, actor, domain.EventBudgetSpent, report.UpdatedAt)

	s.log.InfoContext(ctx, "report spending recorded",
		slog.String("report_id", report.ID.String()),
		slog.Int64("amount", input.Amount),
		slog.String("actor_id", actor.ID.String()),
	)

	return report, nil
}

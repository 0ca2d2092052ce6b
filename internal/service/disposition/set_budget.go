package disposition

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

// SetBudget allocates (or re-allocates) the budget and moves the report into
// IN_PROGRESS. Calling it again while already IN_PROGRESS only overwrites
// budgetTotal; the status stays put.
func (s *Service) SetBudget(ctx context.Context, input SetBudgetInput) (*domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	var report *domain.Report
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, rule, err := s.loadForOp(txCtx, domain.OperationSetBudget, input.ReportID, actor)
		if err != nil {
			return err
		}

		// Re-allocation must not drop below what was already spent.
		if input.Amount < r.BudgetUsed {
			return domain.NewValidationError("amount", "below recorded spending")
		}

		now := s.now().UTC()
		amount := input.Amount
		r.Status = rule.Destination
		r.BudgetTotal = &amount
		r.UpdatedAt = now

		if err := s.reports.Update(txCtx, r); err != nil {
			return fmt.Errorf("update report: %w", err)
		}

		if err := s.appendEvent(txCtx, r, actor, rule.Event, "Anggaran ditetapkan", formatRupiah(amount), now); err != nil {
			return err
		}

		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, report, actor, domain.EventBudgetSet, report.UpdatedAt)

	s.log.InfoContext(ctx, "report budget set",
		slog.String("report_id", report.ID.String()),
		slog.Int64("amount", input.Amount),
		slog.String("actor_id", actor.ID.String()),
	)

	return report, nil
}

package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

// Support records the citizen's endorsement of a report. Each citizen can
// support a report at most once; a second attempt is ErrAlreadyExists.
func (s *Service) Support(ctx context.Context, reportID uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if actor.Role != domain.RoleCitizen {
		return domain.ErrForbidden
	}
	if reportID == uuid.Nil {
		return domain.NewValidationError("report_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, err := s.reports.GetByID(txCtx, reportID)
		if err != nil {
			return err
		}
		if r.ReporterID == actor.ID {
			return fmt.Errorf("cannot support own report: %w", domain.ErrConflict)
		}

		return s.reports.AddSupport(txCtx, reportID, actor.ID)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "report supported",
		slog.String("report_id", reportID.String()),
		slog.String("user_id", actor.ID.String()),
	)

	return nil
}

package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

// Delete hard-deletes a report as an administrative override. It sits outside
// the workflow: any status may be deleted, and the timeline, supports and
// image references go with it. There is no undo.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if id == uuid.Nil {
		return domain.NewValidationError("report_id", "required")
	}

	if err := s.reports.Delete(ctx, id); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "report deleted",
		slog.String("report_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return nil
}

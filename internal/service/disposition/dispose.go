package disposition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
	"github.com/laporkota/backend/pkg/ctxutil"
)

// Dispose forwards a report to an agency: explicitly chosen by the admin, or
// resolved from the report's category when no agency is given. Re-disposing a
// report the previous agency rejected clears that agency's annotations so the
// new agency starts from a clean slate.
func (s *Service) Dispose(ctx context.Context, input DisposeInput) (*domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	var (
		report *domain.Report
		agency *domain.Agency
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		r, rule, err := s.loadForOp(txCtx, domain.OperationDispose, input.ReportID, actor)
		if err != nil {
			return err
		}

		agency, err = s.resolveAgency(txCtx, input.AgencyID, r.Category)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		r.Status = rule.Destination
		r.AgencyID = &agency.ID
		r.AdminNote = trimOrNil(input.Note)
		r.AdminVerifiedAt = &now
		r.AdminVerifiedBy = &actor.ID

		// Previous agency's traces must not leak to the new one.
		r.AgencyNote = nil
		r.AgencyVerifiedAt = nil
		r.AgencyVerifiedBy = nil
		r.RejectionReason = nil
		r.RejectedAt = nil
		r.RejectedBy = nil

		r.UpdatedAt = now

		if err := s.reports.Update(txCtx, r); err != nil {
			return fmt.Errorf("update report: %w", err)
		}

		description := ""
		if r.AdminNote != nil {
			description = *r.AdminNote
		}
		if err := s.appendEvent(txCtx, r, actor, rule.Event, "Laporan diteruskan ke "+agency.Name, description, now); err != nil {
			return err
		}

		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, report, actor, domain.EventDisposedToAgency, report.UpdatedAt)

	s.log.InfoContext(ctx, "report disposed",
		slog.String("report_id", report.ID.String()),
		slog.String("agency_id", agency.ID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return report, nil
}

// resolveAgency picks the target agency: the explicit one when given, else
// the one addressed by the category's type. A missing routed agency is
// ErrAgencyNotFound, distinct from a dangling explicit id.
func (s *Service) resolveAgency(ctx context.Context, explicitID *uuid.UUID, category domain.Category) (*domain.Agency, error) {
	if explicitID != nil {
		agency, err := s.agencies.GetByID(ctx, *explicitID)
		if err != nil {
			return nil, err
		}
		return agency, nil
	}

	agencyType, err := s.router.Route(category)
	if err != nil {
		return nil, err
	}

	agency, err := s.agencies.GetByType(ctx, agencyType)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("no agency of type %s: %w", agencyType, domain.ErrAgencyNotFound)
		}
		return nil, err
	}
	return agency, nil
}

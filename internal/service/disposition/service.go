// Package disposition implements the report workflow: every status change a
// report can undergo goes through exactly one operation here. Each operation
// is a single transaction around read-validate-write-append; the transition
// table in the domain package is the only authority on what is legal.
package disposition

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
)

type reportRepo interface {
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	Update(ctx context.Context, report *domain.Report) error
	AddImage(ctx context.Context, img *domain.ReportImage) error
}

type timelineRepo interface {
	Create(ctx context.Context, event *domain.TimelineEvent) error
}

type agencyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Agency, error)
	GetByType(ctx context.Context, agencyType domain.AgencyType) (*domain.Agency, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	PublishReportEvent(ctx context.Context, event domain.ReportEvent) error
}

// Config bounds operation payloads. Zero values fall back to defaults.
type Config struct {
	MaxNoteLen         int
	MaxBudget          int64
	MaxImagesPerReport int
}

const (
	defaultMaxNoteLen         = 2000
	defaultMaxBudget          = 100_000_000_000
	defaultMaxImagesPerReport = 5
)

func (c Config) withDefaults() Config {
	if c.MaxNoteLen <= 0 {
		c.MaxNoteLen = defaultMaxNoteLen
	}
	if c.MaxBudget <= 0 {
		c.MaxBudget = defaultMaxBudget
	}
	if c.MaxImagesPerReport <= 0 {
		c.MaxImagesPerReport = defaultMaxImagesPerReport
	}
	return c
}

// Service provides the workflow operations on reports.
type Service struct {
	reports   reportRepo
	timeline  timelineRepo
	agencies  agencyRepo
	tx        txManager
	publisher eventPublisher
	router    *domain.CategoryRouter
	cfg       Config
	log       *slog.Logger
	now       func() time.Time
}

// NewService creates a new disposition service.
func NewService(
	log *slog.Logger,
	reports reportRepo,
	timeline timelineRepo,
	agencies agencyRepo,
	tx txManager,
	publisher eventPublisher,
	router *domain.CategoryRouter,
	cfg Config,
) *Service {
	return &Service{
		reports:   reports,
		timeline:  timeline,
		agencies:  agencies,
		tx:        tx,
		publisher: publisher,
		router:    router,
		cfg:       cfg.withDefaults(),
		log:       log.With("service", "disposition"),
		now:       time.Now,
	}
}

// loadForOp fetches the report with a row lock and validates the transition.
// Must run inside a transaction.
func (s *Service) loadForOp(ctx context.Context, op domain.Operation, reportID uuid.UUID, actor domain.Actor) (*domain.Report, domain.TransitionRule, error) {
	report, err := s.reports.GetByIDForUpdate(ctx, reportID)
	if err != nil {
		return nil, domain.TransitionRule{}, err
	}

	if err := domain.ValidateTransition(op, actor, report); err != nil {
		return nil, domain.TransitionRule{}, err
	}

	rule, _ := domain.RuleFor(op)
	return report, rule, nil
}

// appendEvent writes the single timeline entry a mutation produces.
func (s *Service) appendEvent(ctx context.Context, report *domain.Report, actor domain.Actor, eventType domain.EventType, title, description string, now time.Time) error {
	event := &domain.TimelineEvent{
		ID:          uuid.New(),
		ReportID:    report.ID,
		ActorID:     actor.ID,
		Type:        eventType,
		Title:       title,
		Description: description,
		CreatedAt:   now,
	}
	if err := s.timeline.Create(ctx, event); err != nil {
		return fmt.Errorf("append timeline: %w", err)
	}
	return nil
}

// publishEvent emits the integration event after commit. Publishing is best
// effort: a broker failure must not fail an already committed transition.
func (s *Service) publishEvent(ctx context.Context, report *domain.Report, actor domain.Actor, eventType domain.EventType, now time.Time) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.PublishReportEvent(ctx, domain.ReportEvent{
		ReportID:   report.ID,
		Type:       eventType,
		Status:     report.Status,
		ActorID:    actor.ID,
		OccurredAt: now,
	})
	if err != nil {
		s.log.WarnContext(ctx, "publish report event failed",
			slog.String("report_id", report.ID.String()),
			slog.String("event", string(eventType)),
			slog.String("error", err.Error()),
		)
	}
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

// formatRupiah renders an amount as "Rp1.500.000" for timeline descriptions.
func formatRupiah(amount int64) string {
	digits := fmt.Sprintf("%d", amount)
	var b strings.Builder
	b.WriteString("Rp")
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

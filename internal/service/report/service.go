// Package report implements citizen-facing report management: filing,
// endorsing and reading reports, plus the admin hard delete. Workflow status
// changes are out of its hands; those belong to the disposition service.
package report

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
)

type reportRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, error)
	CountOpenByReporter(ctx context.Context, reporterID uuid.UUID) (int, error)
	Create(ctx context.Context, report *domain.Report) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddSupport(ctx context.Context, reportID, userID uuid.UUID) error
	AddImage(ctx context.Context, img *domain.ReportImage) error
	ListImages(ctx context.Context, reportID uuid.UUID) ([]domain.ReportImage, error)
}

type timelineRepo interface {
	Create(ctx context.Context, event *domain.TimelineEvent) error
	ListByReport(ctx context.Context, reportID uuid.UUID) ([]domain.TimelineEvent, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config bounds report payloads and per-citizen quotas.
// Zero values fall back to defaults.
type Config struct {
	MaxTitleLen        int
	MaxDescriptionLen  int
	MaxOpenReports     int
	MaxImagesPerReport int
}

const (
	defaultMaxTitleLen        = 150
	defaultMaxDescriptionLen  = 5000
	defaultMaxOpenReports     = 5
	defaultMaxImagesPerReport = 5

	defaultListLimit = 20
	maxListLimit     = 100
)

func (c Config) withDefaults() Config {
	if c.MaxTitleLen <= 0 {
		c.MaxTitleLen = defaultMaxTitleLen
	}
	if c.MaxDescriptionLen <= 0 {
		c.MaxDescriptionLen = defaultMaxDescriptionLen
	}
	if c.MaxOpenReports <= 0 {
		c.MaxOpenReports = defaultMaxOpenReports
	}
	if c.MaxImagesPerReport <= 0 {
		c.MaxImagesPerReport = defaultMaxImagesPerReport
	}
	return c
}

// Service provides report filing, endorsement and read operations.
type Service struct {
	reports  reportRepo
	timeline timelineRepo
	tx       txManager
	cfg      Config
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new report service.
func NewService(
	log *slog.Logger,
	reports reportRepo,
	timeline timelineRepo,
	tx txManager,
	cfg Config,
) *Service {
	return &Service{
		reports:  reports,
		timeline: timeline,
		tx:       tx,
		cfg:      cfg.withDefaults(),
		log:      log.With("service", "report"),
		now:      time.Now,
	}
}

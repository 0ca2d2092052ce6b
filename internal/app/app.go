// Package app wires configuration, storage, services and transport into a
// running HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/laporkota/backend/internal/adapter/objectstore"
	"github.com/laporkota/backend/internal/adapter/postgres"
	agencyrepo "github.com/laporkota/backend/internal/adapter/postgres/agency"
	reportrepo "github.com/laporkota/backend/internal/adapter/postgres/report"
	statsrepo "github.com/laporkota/backend/internal/adapter/postgres/stats"
	timelinerepo "github.com/laporkota/backend/internal/adapter/postgres/timeline"
	userrepo "github.com/laporkota/backend/internal/adapter/postgres/user"
	"github.com/laporkota/backend/internal/adapter/queue"
	"github.com/laporkota/backend/internal/auth"
	"github.com/laporkota/backend/internal/config"
	"github.com/laporkota/backend/internal/domain"
	authsvc "github.com/laporkota/backend/internal/service/auth"
	"github.com/laporkota/backend/internal/service/disposition"
	reportsvc "github.com/laporkota/backend/internal/service/report"
	statssvc "github.com/laporkota/backend/internal/service/stats"
	"github.com/laporkota/backend/internal/transport/middleware"
	"github.com/laporkota/backend/internal/transport/rest"
)

const rateLimitPerMinute = 120

// Run is the application entry point. It loads configuration, connects the
// collaborators and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	reports := reportrepo.New(pool)
	timeline := timelinerepo.New(pool)
	agencies := agencyrepo.New(pool)
	users := userrepo.New(pool)
	stats := statsrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	var publisher *queue.Publisher
	if cfg.Queue.URL != "" {
		publisher, err = queue.NewPublisher(cfg.Queue.URL, cfg.Queue.QueueName)
		if err != nil {
			return fmt.Errorf("connect to queue: %w", err)
		}
		defer publisher.Close() //nolint:errcheck
		logger.Info("queue publisher connected", slog.String("queue", cfg.Queue.QueueName))
	} else {
		logger.Info("queue publishing disabled")
	}

	var store *objectstore.Store
	if cfg.Storage.Endpoint != "" {
		store, err = objectstore.NewStore(ctx, cfg.Storage)
		if err != nil {
			return fmt.Errorf("connect to object store: %w", err)
		}
		logger.Info("object store connected", slog.String("bucket", cfg.Storage.Bucket))
	} else {
		logger.Info("object store disabled")
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := auth.NewBcryptHasher(0)

	authService := authsvc.NewService(logger, users, jwtManager, hasher)
	reportService := reportsvc.NewService(logger, reports, timeline, txManager, reportsvc.Config{
		MaxTitleLen:        cfg.Reports.MaxTitleLen,
		MaxDescriptionLen:  cfg.Reports.MaxDescriptionLen,
		MaxOpenReports:     cfg.Reports.OpenReportsPerCitizen,
		MaxImagesPerReport: cfg.Reports.MaxImagesPerReport,
	})
	statsService := statssvc.NewService(logger, stats)

	dispositionCfg := disposition.Config{
		MaxNoteLen:         cfg.Reports.MaxNoteLen,
		MaxBudget:          cfg.Reports.MaxBudget,
		MaxImagesPerReport: cfg.Reports.MaxImagesPerReport,
	}
	router := domain.NewCategoryRouter()
	var dispositionService *disposition.Service
	if publisher != nil {
		dispositionService = disposition.NewService(logger, reports, timeline, agencies, txManager, publisher, router, dispositionCfg)
	} else {
		dispositionService = disposition.NewService(logger, reports, timeline, agencies, txManager, nil, router, dispositionCfg)
	}

	authHandler := rest.NewAuthHandler(authService, logger)
	var reportHandler *rest.ReportHandler
	if store != nil {
		reportHandler = rest.NewReportHandler(reportService, dispositionService, store, logger)
	} else {
		reportHandler = rest.NewReportHandler(reportService, dispositionService, nil, logger)
	}
	statsHandler := rest.NewStatsHandler(statsService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	mux := rest.NewRouter(authHandler, reportHandler, statsHandler, healthHandler)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Metrics(),
		limiter.Limit(rateLimitPerMinute),
		middleware.Auth(jwtManager),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      chain(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// Command seeder provisions the accounts and agencies the workflow needs
// before the first report can move: one agency per type, one agency login
// per agency, and one admin. Citizens register themselves through the API.
//
// Passwords come from SEEDER_ADMIN_PASSWORD and SEEDER_AGENCY_PASSWORD.
// Seeding is idempotent: existing rows are left untouched.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/adapter/postgres"
	agencyrepo "github.com/laporkota/backend/internal/adapter/postgres/agency"
	userrepo "github.com/laporkota/backend/internal/adapter/postgres/user"
	"github.com/laporkota/backend/internal/app"
	"github.com/laporkota/backend/internal/auth"
	"github.com/laporkota/backend/internal/config"
	"github.com/laporkota/backend/internal/domain"
)

type agencySeed struct {
	Name  string
	Type  domain.AgencyType
	Email string
}

var agencySeeds = []agencySeed{
	{Name: "Dinas Pekerjaan Umum", Type: domain.AgencyTypeInfrastructure, Email: "pu@kota.go.id"},
	{Name: "Dinas Pendidikan", Type: domain.AgencyTypeEducation, Email: "pendidikan@kota.go.id"},
	{Name: "Dinas Kesehatan", Type: domain.AgencyTypeHealth, Email: "kesehatan@kota.go.id"},
	{Name: "Dinas ESDM", Type: domain.AgencyTypeEnergyResources, Email: "esdm@kota.go.id"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	adminPassword := os.Getenv("SEEDER_ADMIN_PASSWORD")
	agencyPassword := os.Getenv("SEEDER_AGENCY_PASSWORD")
	if adminPassword == "" || agencyPassword == "" {
		logger.Error("SEEDER_ADMIN_PASSWORD and SEEDER_AGENCY_PASSWORD must be set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	agencies := agencyrepo.New(pool)
	users := userrepo.New(pool)
	hasher := auth.NewBcryptHasher(0)

	if err := seed(ctx, logger, agencies, users, hasher, adminPassword, agencyPassword); err != nil {
		logger.Error("seed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding complete")
}

type agencyStore interface {
	GetByType(ctx context.Context, agencyType domain.AgencyType) (*domain.Agency, error)
	Create(ctx context.Context, agency *domain.Agency) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type hasher interface {
	Hash(password string) (string, error)
}

func seed(ctx context.Context, logger *slog.Logger, agencies agencyStore, users userStore, h hasher, adminPassword, agencyPassword string) error {
	if err := ensureUser(ctx, logger, users, h, domain.User{
		Name:  "Admin Kota",
		Email: "admin@kota.go.id",
		Role:  domain.RoleAdmin,
	}, adminPassword); err != nil {
		return err
	}

	for _, s := range agencySeeds {
		agency, err := ensureAgency(ctx, logger, agencies, s)
		if err != nil {
			return err
		}
		if err := ensureUser(ctx, logger, users, h, domain.User{
			Name:     s.Name,
			Email:    s.Email,
			Role:     domain.RoleAgency,
			AgencyID: &agency.ID,
		}, agencyPassword); err != nil {
			return err
		}
	}

	return nil
}

func ensureAgency(ctx context.Context, logger *slog.Logger, agencies agencyStore, s agencySeed) (*domain.Agency, error) {
	existing, err := agencies.GetByType(ctx, s.Type)
	if err == nil {
		logger.Info("agency exists", slog.String("name", existing.Name))
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up agency %s: %w", s.Type, err)
	}

	agency := &domain.Agency{
		ID:        uuid.New(),
		Name:      s.Name,
		Type:      s.Type,
		CreatedAt: time.Now(),
	}
	if err := agencies.Create(ctx, agency); err != nil {
		return nil, fmt.Errorf("create agency %s: %w", s.Name, err)
	}

	logger.Info("agency created", slog.String("name", s.Name), slog.String("type", string(s.Type)))
	return agency, nil
}

func ensureUser(ctx context.Context, logger *slog.Logger, users userStore, h hasher, u domain.User, password string) error {
	email := strings.ToLower(u.Email)

	if _, err := users.GetByEmail(ctx, email); err == nil {
		logger.Info("user exists", slog.String("email", email))
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("look up user %s: %w", email, err)
	}

	hash, err := h.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password for %s: %w", email, err)
	}

	u.ID = uuid.New()
	u.Email = email
	u.PasswordHash = hash
	u.CreatedAt = time.Now()
	if err := users.Create(ctx, &u); err != nil {
		return fmt.Errorf("create user %s: %w", email, err)
	}

	logger.Info("user created", slog.String("email", email), slog.String("role", string(u.Role)))
	return nil
}

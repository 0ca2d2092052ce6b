// Package auth implements account registration and password login. Tokens
// are stateless JWTs; there is no session storage to invalidate.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/laporkota/backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type jwtManager interface {
	GenerateAccessToken(actor domain.Actor) (string, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service provides registration and login.
type Service struct {
	users  userRepo
	tokens jwtManager
	hasher passwordHasher
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new auth service.
func NewService(log *slog.Logger, users userRepo, tokens jwtManager, hasher passwordHasher) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		log:    log.With("service", "auth"),
		now:    time.Now,
	}
}

// Result is a successful authentication: the account and its access token.
type Result struct {
	User        domain.User
	AccessToken string
}

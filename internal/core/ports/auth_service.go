package ports

import (
	"context"

	"github.com/terravista/realty-api/internal/core/domain"
)

// AuthService issues, verifies, and revokes session tokens.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	Verify(ctx context.Context, token string) (*domain.Identity, error)
	Logout(ctx context.Context, token string) error
}

// SessionVerifier is the subset of AuthService the route guards need.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

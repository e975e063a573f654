package ports

import (
	"context"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
)

// AuthService implements the credential lifecycle the guard depends on:
// account creation, login (mint token, register session, mirror profile)
// and logout (full cleanup of both kinds).
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.Principal, error)
	Login(ctx context.Context, kind domain.Kind, email, password string) (string, *domain.Principal, error)
	Logout(ctx context.Context, userToken, adminToken string)
}

package ports

import (
	"context"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
)

// ProfileCache stores cached principal snapshots keyed by session token.
// It is deliberately error-free at the interface: implementations log and
// swallow storage failures so callers always get a well-defined answer.
// An unavailable cache reads as "no profile found" and writes become no-ops;
// the guard then falls back to its negative path rather than erroring.
type ProfileCache interface {
	Save(ctx context.Context, kind domain.Kind, token string, p *domain.Principal)
	Get(ctx context.Context, kind domain.Kind, token string) *domain.Principal
	Clear(ctx context.Context, kind domain.Kind, token string)
}

package ports

import (
	"context"

	"github.com/webproshub/marketplace-gateway/internal/core/domain"
)

// AccountRepository persists login accounts, one namespace per principal
// kind (customer/business-owner accounts vs. admin staff accounts).
type AccountRepository interface {
	FindByEmail(ctx context.Context, kind domain.Kind, email string) (*domain.Account, error)
	Create(ctx context.Context, kind domain.Kind, account *domain.Account) (*domain.Account, error)
	List(ctx context.Context, kind domain.Kind) ([]domain.Account, error)
}

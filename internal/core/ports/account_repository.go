package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// AccountRepository persists accounts of a single scope.
// Create must report domain.ErrAccountExists when the store's uniqueness
// constraint on email or username rejects the insert.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// ExistsByEmailOrUsername is the cheap pre-check; it is not the uniqueness guarantee.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	UpdateCategory(ctx context.Context, id string, category string) error
	// List returns every account without its password hash.
	List(ctx context.Context) ([]*domain.Account, error)
	Delete(ctx context.Context, id string) error
}

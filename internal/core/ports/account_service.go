package ports

import (
	"context"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	Token   string
	Account *domain.Account
}

type AccountService interface {
	Register(ctx context.Context, username, email, password string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	SetRole(ctx context.Context, id, role string) error
	SetCategory(ctx context.Context, id, category string) error
	Delete(ctx context.Context, id string) error
}

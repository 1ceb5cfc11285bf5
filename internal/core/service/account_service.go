package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
	"github.com/stockroom/inventory-api/internal/pkg/metrics"
)

// AccountService implements registration, login and account administration
// for a single account scope.
type AccountService struct {
	scope  domain.Scope
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
	logger zerolog.Logger
	now    func() time.Time
}

func NewAccountService(
	scope domain.Scope,
	repo ports.AccountRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{
		scope:  scope,
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With().Str("scope", string(scope)).Logger(),
		now:    time.Now,
	}
}

// Register creates a vendor account. Both email and username must be unused;
// the repository's unique indexes settle concurrent registrations.
func (s *AccountService) Register(ctx context.Context, username, email, password string) (*domain.Account, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" || email == "" || password == "" {
		metrics.RegistrationsTotal.WithLabelValues(string(s.scope), "invalid").Inc()
		return nil, fmt.Errorf("%w: username, email and password are required", domain.ErrInvalidInput)
	}

	exists, err := s.repo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(string(s.scope), "error").Inc()
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		metrics.RegistrationsTotal.WithLabelValues(string(s.scope), "conflict").Inc()
		return nil, domain.ErrAccountExists
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(string(s.scope), "error").Inc()
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleVendor,
		Scope:        s.scope,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAccountExists) {
			metrics.RegistrationsTotal.WithLabelValues(string(s.scope), "conflict").Inc()
			return nil, err
		}
		metrics.RegistrationsTotal.WithLabelValues(string(s.scope), "error").Inc()
		return nil, fmt.Errorf("register: %w", err)
	}

	metrics.RegistrationsTotal.WithLabelValues(string(s.scope), "created").Inc()
	s.logger.Info().Str("account_id", created.ID).Msg("account registered")
	return created, nil
}

// Login verifies the password and mints a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues(string(s.scope), "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues(string(s.scope), "invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.LoginsTotal.WithLabelValues(string(s.scope), "error").Inc()
		return nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues(string(s.scope), "invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Claims{
		Email:    account.Email,
		Role:     account.Role,
		Category: account.Category,
		Scope:    s.scope,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(string(s.scope), "error").Inc()
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues(string(s.scope), "success").Inc()
	return &ports.LoginResult{Token: token, Account: account}, nil
}

func (s *AccountService) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.repo.FindByEmail(ctx, normalizeEmail(email))
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}

// SetRole changes the role of an account. Only roles of the closed enumeration are accepted.
func (s *AccountService) SetRole(ctx context.Context, id, role string) error {
	r, err := domain.ParseRole(role)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateRole(ctx, id, r); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", id).Str("role", string(r)).Msg("role updated")
	return nil
}

func (s *AccountService) SetCategory(ctx context.Context, id, category string) error {
	if err := s.repo.UpdateCategory(ctx, id, strings.TrimSpace(category)); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", id).Str("category", category).Msg("category updated")
	return nil
}

func (s *AccountService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("account_id", id).Msg("account deleted")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

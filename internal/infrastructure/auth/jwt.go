package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

type sessionClaims struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	Category string `json:"category,omitempty"`
	Scope    string `json:"scope"`
	jwt.RegisteredClaims
}

// JWTService implements ports.TokenService with HS256-signed tokens.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService builds a token service. A non-positive ttl falls back to one hour.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source; used by tests to step past expiry.
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

func (s *JWTService) Issue(c domain.Claims) (string, error) {
	issued := s.now()
	// NumericDate has second precision. Round exp up so the token never expires
	// before issued+ttl.
	expires := issued.Add(s.ttl)
	if whole := expires.Truncate(time.Second); whole.Before(expires) {
		expires = whole.Add(time.Second)
	}
	claims := sessionClaims{
		Email:    c.Email,
		Role:     string(c.Role),
		Category: c.Category,
		Scope:    string(c.Scope),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   c.Email,
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature, algorithm and expiry. Every failure collapses into
// domain.ErrUnauthorized.
func (s *JWTService) Verify(token string) (*domain.Claims, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	var claims sessionClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tkn.Valid {
		return nil, errors.Join(domain.ErrUnauthorized, err)
	}

	return &domain.Claims{
		Email:     claims.Email,
		Role:      domain.Role(claims.Role),
		Category:  claims.Category,
		Scope:     domain.Scope(claims.Scope),
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

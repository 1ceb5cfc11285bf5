package domain

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of roles an account can hold.
type Role string

const (
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// ParseRole normalises s and reports ErrInvalidInput for anything outside the enumeration.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleVendor, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
}

// Scope identifies which account universe a record or token belongs to.
// The two universes share a shape but are stored and authenticated separately.
type Scope string

const (
	ScopeUsers         Scope = "users"
	ScopeRegistrations Scope = "user_registrations"
)

// Account models a registered identity.
type Account struct {
	ID           string    `json:"_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Category     string    `json:"category,omitempty"`
	Scope        Scope     `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

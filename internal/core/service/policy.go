package service

import "github.com/stockroom/inventory-api/internal/core/domain"

// Action names an operation guarded by the authorization policy.
type Action string

const (
	ActionManageAccounts Action = "accounts:manage"
	ActionWriteCatalog   Action = "catalog:write"
	ActionReadProfile    Action = "profile:read"
)

// Policy derives allowed actions from verified token claims.
// Tokens minted by the user_registrations universe carry no rights on this API.
type Policy struct {
	rules map[Action]func(c *domain.Claims) bool
}

func NewPolicy() *Policy {
	authenticated := func(c *domain.Claims) bool { return c.Scope == domain.ScopeUsers }
	return &Policy{rules: map[Action]func(c *domain.Claims) bool{
		ActionManageAccounts: func(c *domain.Claims) bool {
			return authenticated(c) && c.Role == domain.RoleAdmin
		},
		ActionWriteCatalog: authenticated,
		ActionReadProfile:  authenticated,
	}}
}

// CanAccess reports whether claims permit action. Unknown actions are denied.
func (p *Policy) CanAccess(claims *domain.Claims, action Action) bool {
	if claims == nil {
		return false
	}
	rule, ok := p.rules[action]
	if !ok {
		return false
	}
	return rule(claims)
}

// VisibleCategory returns the catalog category a caller is limited to, or ""
// when the caller may see every category.
func (p *Policy) VisibleCategory(claims *domain.Claims) string {
	if claims == nil || claims.Role == domain.RoleAdmin {
		return ""
	}
	return claims.Category
}

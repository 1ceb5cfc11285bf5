package service

import (
	"testing"

	"github.com/stockroom/inventory-api/internal/core/domain"
)

func TestPolicy_CanAccess(t *testing.T) {
	p := NewPolicy()

	admin := &domain.Claims{Email: "root@x.com", Role: domain.RoleAdmin, Scope: domain.ScopeUsers}
	vendor := &domain.Claims{Email: "v@x.com", Role: domain.RoleVendor, Category: "shoes", Scope: domain.ScopeUsers}
	foreignAdmin := &domain.Claims{Email: "r@x.com", Role: domain.RoleAdmin, Scope: domain.ScopeRegistrations}

	cases := []struct {
		name   string
		claims *domain.Claims
		action Action
		want   bool
	}{
		{"admin manages accounts", admin, ActionManageAccounts, true},
		{"vendor cannot manage accounts", vendor, ActionManageAccounts, false},
		{"registration-scope admin cannot manage accounts", foreignAdmin, ActionManageAccounts, false},
		{"vendor writes catalog", vendor, ActionWriteCatalog, true},
		{"registration scope cannot write catalog", foreignAdmin, ActionWriteCatalog, false},
		{"vendor reads profile", vendor, ActionReadProfile, true},
		{"nil claims denied", nil, ActionReadProfile, false},
		{"unknown action denied", admin, Action("orders:delete"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.CanAccess(tc.claims, tc.action); got != tc.want {
				t.Fatalf("CanAccess = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPolicy_VisibleCategory(t *testing.T) {
	p := NewPolicy()

	if got := p.VisibleCategory(&domain.Claims{Role: domain.RoleVendor, Category: "shoes"}); got != "shoes" {
		t.Fatalf("vendor should be scoped to its category, got %q", got)
	}
	if got := p.VisibleCategory(&domain.Claims{Role: domain.RoleAdmin, Category: "shoes"}); got != "" {
		t.Fatalf("admin should see all categories, got %q", got)
	}
	if got := p.VisibleCategory(nil); got != "" {
		t.Fatalf("anonymous caller should see all categories, got %q", got)
	}
}

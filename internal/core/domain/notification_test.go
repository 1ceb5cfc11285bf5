package domain

import (
	"strings"
	"testing"
)

func TestNewOrderNotification_UsesOrderSnapshot(t *testing.T) {
	o := &Order{ID: "o-1", Name: "Bob", Address: "1 Main St", Quantity: 3, Price: 4.25, Image: "order.png"}
	p := &Product{ID: "p-1", Name: "Widget", Price: 99, Image: "product.png"}

	n := NewOrderNotification("n-1", o, p)

	if n.Price != 4.25 || n.ProductImage != "order.png" {
		t.Fatalf("expected order snapshot, got price=%v image=%s", n.Price, n.ProductImage)
	}
	if n.ProductName != "Widget" || n.Recipient != "Bob" {
		t.Fatalf("unexpected notification: %+v", n)
	}
	if got := n.Subject(); got != "New order: 3 x Widget" {
		t.Fatalf("unexpected subject %q", got)
	}

	body := n.Body()
	for _, want := range []string{"o-1", "Widget", "order.png", "Bob", "1 Main St", "Quantity: 3", "4.25"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(" Admin "); err != nil || r != RoleAdmin {
		t.Fatalf("expected admin, got %q (%v)", r, err)
	}
	if _, err := ParseRole("root"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

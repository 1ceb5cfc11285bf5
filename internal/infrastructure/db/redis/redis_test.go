package redis

import (
	"context"
	"testing"
)

func TestConnect_EmptyAddrDisables(t *testing.T) {
	client, err := Connect(context.Background(), Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client != nil {
		t.Fatalf("expected nil client when Redis is not configured")
	}
}

func TestIdempotencyStore_KeyFormat(t *testing.T) {
	s := NewIdempotencyStore(nil)
	if got := s.key("abc-123"); got != "idem:order:abc-123" {
		t.Fatalf("unexpected key %q", got)
	}
}

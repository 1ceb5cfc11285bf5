package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

type stubOrderService struct {
	placeFn func(ctx context.Context, in ports.PlaceOrderInput) (*ports.PlaceOrderResult, error)
	getFn   func(ctx context.Context, id string) (*domain.Order, error)
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, in ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
	return s.placeFn(ctx, in)
}

func (s *stubOrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.getFn(ctx, id)
}

func (s *stubOrderService) List(context.Context) ([]*domain.Order, error) {
	return []*domain.Order{{ID: "o-1"}, {ID: "o-2"}}, nil
}

const orderBody = `{"productId":"p-1","name":"Bob","address":"1 Main St","quantity":2,"price":9.5,"image":"img.png"}`

func placeWith(t *testing.T, status ports.NotificationStatus) (*placeOrderResponse, int) {
	t.Helper()
	e := newEcho()
	stub := &stubOrderService{
		placeFn: func(_ context.Context, in ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
			if in.ProductID != "p-1" || in.Quantity != 2 || in.Price == nil || *in.Price != 9.5 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.PlaceOrderResult{Order: &domain.Order{ID: "o-1", ProductID: in.ProductID}, Notification: status}, nil
		},
	}
	c, rec := newContext(e, http.MethodPost, "/orders", orderBody)

	if err := NewOrderHandler(stub).Place(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp placeOrderResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return &resp, rec.Code
}

func TestOrderHandler_Place_Notified(t *testing.T) {
	resp, code := placeWith(t, ports.NotificationSent)
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if resp.Message != msgOrderPlaced || !resp.Notified || resp.Order.ID != "o-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestOrderHandler_Place_Degraded(t *testing.T) {
	resp, code := placeWith(t, ports.NotificationFailed)
	if code != http.StatusCreated {
		t.Fatalf("degraded notification must still be 201, got %d", code)
	}
	if resp.Message != msgOrderDegraded || resp.Notified {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestOrderHandler_Place_ProductMissing(t *testing.T) {
	e := newEcho()
	stub := &stubOrderService{
		placeFn: func(context.Context, ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
			return &ports.PlaceOrderResult{Order: &domain.Order{ID: "o-1"}},
				fmt.Errorf("%w: %w", domain.ErrInvalidInput, domain.ErrProductNotFound)
		},
	}
	c, _ := newContext(e, http.MethodPost, "/orders", orderBody)

	err := NewOrderHandler(stub).Place(c)
	if !errors.Is(err, domain.ErrInvalidInput) || !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected invalid input / product not found, got %v", err)
	}
}

func TestOrderHandler_Place_Replay(t *testing.T) {
	e := newEcho()
	stub := &stubOrderService{
		placeFn: func(_ context.Context, in ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
			if in.IdempotencyKey != "key-1" {
				t.Fatalf("idempotency key not forwarded: %q", in.IdempotencyKey)
			}
			return &ports.PlaceOrderResult{Order: &domain.Order{ID: "o-1"}, Notification: ports.NotificationSkipped, Replayed: true}, nil
		},
	}
	c, rec := newContext(e, http.MethodPost, "/orders", orderBody)
	c.Request().Header.Set("Idempotency-Key", " key-1 ")

	if err := NewOrderHandler(stub).Place(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on replay, got %d", rec.Code)
	}
}

func TestOrderHandler_Place_Validation(t *testing.T) {
	e := newEcho()
	stub := &stubOrderService{
		placeFn: func(context.Context, ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	bodies := []string{
		`{"name":"Bob","address":"a","quantity":1,"price":1,"image":"i"}`,
		`{"productId":"p","name":"Bob","address":"a","quantity":0,"price":1,"image":"i"}`,
		`{"productId":"p","name":"Bob","address":"a","quantity":1,"image":"i"}`,
		`{"productId":"p","name":"Bob","address":"a","quantity":1,"price":-1,"image":"i"}`,
	}
	for _, body := range bodies {
		c, _ := newContext(e, http.MethodPost, "/orders", body)
		if err := NewOrderHandler(stub).Place(c); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("body %s: expected ErrInvalidInput, got %v", body, err)
		}
	}
}

func TestOrderHandler_Place_ZeroPriceAccepted(t *testing.T) {
	e := newEcho()
	stub := &stubOrderService{
		placeFn: func(_ context.Context, in ports.PlaceOrderInput) (*ports.PlaceOrderResult, error) {
			return &ports.PlaceOrderResult{Order: &domain.Order{ID: "o-1", Price: *in.Price}, Notification: ports.NotificationSent}, nil
		},
	}
	c, rec := newContext(e, http.MethodPost, "/orders", `{"productId":"p","name":"Bob","address":"a","quantity":1,"price":0,"image":"i"}`)

	if err := NewOrderHandler(stub).Place(c); err != nil {
		t.Fatalf("free item should be accepted: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestOrderHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubOrderService{
		getFn: func(context.Context, string) (*domain.Order, error) { return nil, domain.ErrOrderNotFound },
	}
	c, _ := newContext(e, http.MethodGet, "/orders/x", "")
	c.SetParamNames("id")
	c.SetParamValues("x")

	if err := NewOrderHandler(stub).Get(c); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderHandler_List(t *testing.T) {
	e := newEcho()
	c, rec := newContext(e, http.MethodGet, "/orders", "")

	if err := NewOrderHandler(&stubOrderService{}).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var orders []domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &orders); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(orders) != 2 || orders[0].ID != "o-1" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

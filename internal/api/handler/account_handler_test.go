package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/core/ports"
)

type stubAccountService struct {
	registerFn    func(ctx context.Context, username, email, password string) (*domain.Account, error)
	loginFn       func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.Account, error)
	setRoleFn     func(ctx context.Context, id, role string) error
	deleteFn      func(ctx context.Context, id string) error
}

func (s *stubAccountService) Register(ctx context.Context, username, email, password string) (*domain.Account, error) {
	return s.registerFn(ctx, username, email, password)
}

func (s *stubAccountService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAccountService) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubAccountService) List(context.Context) ([]*domain.Account, error) {
	return []*domain.Account{{ID: "1", Username: "alice", PasswordHash: "digest"}}, nil
}

func (s *stubAccountService) SetRole(ctx context.Context, id, role string) error {
	return s.setRoleFn(ctx, id, role)
}

func (s *stubAccountService) SetCategory(context.Context, string, string) error { return nil }

func (s *stubAccountService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestAccountHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		registerFn: func(_ context.Context, username, email, password string) (*domain.Account, error) {
			if username != "alice" || email != "alice@x.com" || password != "pw1" {
				t.Fatalf("unexpected args: %s %s %s", username, email, password)
			}
			return &domain.Account{Username: username, Email: email, Role: domain.RoleVendor}, nil
		},
	}
	c, rec := newContext(e, http.MethodPost, "/register", `{"username":"alice","email":"alice@x.com","password":"pw1"}`)

	if err := NewAccountHandler(stub).Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAccountHandler_Register_Conflict(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		registerFn: func(context.Context, string, string, string) (*domain.Account, error) {
			return nil, domain.ErrAccountExists
		},
	}
	c, _ := newContext(e, http.MethodPost, "/register", `{"username":"alice2","email":"alice@x.com","password":"pw2"}`)

	err := NewAccountHandler(stub).Register(c)
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAccountHandler_Register_Validation(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		registerFn: func(context.Context, string, string, string) (*domain.Account, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}

	for _, body := range []string{`not-json`, `{"username":"bob"}`, `{"username":"bob","email":"nope","password":"x"}`} {
		c, _ := newContext(e, http.MethodPost, "/register", body)
		if err := NewAccountHandler(stub).Register(c); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("body %s: expected ErrInvalidInput, got %v", body, err)
		}
	}
}

func TestAccountHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{Token: "token123", Account: &domain.Account{Email: email, Category: "books"}}, nil
		},
	}
	c, rec := newContext(e, http.MethodPost, "/login", `{"email":"alice@x.com","password":"pw1"}`)

	if err := NewAccountHandler(stub).Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "token123" || resp.Category != "books" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	c, _ := newContext(e, http.MethodPost, "/login", `{"email":"alice@x.com","password":"wrong"}`)

	if err := NewAccountHandler(stub).Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAccountHandler_List_HidesDigest(t *testing.T) {
	e := newEcho()
	c, rec := newContext(e, http.MethodGet, "/users", "")

	if err := NewAccountHandler(&stubAccountService{}).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp[0]["PasswordHash"]; ok {
		t.Fatalf("digest leaked: %v", resp[0])
	}
	if _, ok := resp[0]["password_hash"]; ok {
		t.Fatalf("digest leaked: %v", resp[0])
	}
}

func TestAccountHandler_SetRole(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		setRoleFn: func(_ context.Context, id, role string) error {
			if id != "42" {
				return domain.ErrAccountNotFound
			}
			if _, err := domain.ParseRole(role); err != nil {
				return err
			}
			return nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newContext(e, http.MethodPut, "/users/42", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := h.SetRole(c); err != nil || rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%v)", rec.Code, err)
	}

	c, _ = newContext(e, http.MethodPut, "/users/42", `{"role":"superuser"}`)
	c.SetParamNames("id")
	c.SetParamValues("42")
	if err := h.SetRole(c); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	c, _ = newContext(e, http.MethodPut, "/users/7", `{"role":"admin"}`)
	c.SetParamNames("id")
	c.SetParamValues("7")
	if err := h.SetRole(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountHandler_Delete_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		deleteFn: func(context.Context, string) error { return domain.ErrAccountNotFound },
	}
	c, _ := newContext(e, http.MethodDelete, "/users/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := NewAccountHandler(stub).Delete(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountHandler_Category(t *testing.T) {
	e := newEcho()
	stub := &stubAccountService{
		findByEmailFn: func(_ context.Context, email string) (*domain.Account, error) {
			if email == "gone@x.com" {
				return nil, domain.ErrAccountNotFound
			}
			return &domain.Account{Email: email, Category: "garden"}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newContext(e, http.MethodGet, "/user-category", "")
	authenticate(t, c, &domain.Claims{Email: "alice@x.com", Scope: domain.ScopeUsers})
	if err := h.Category(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp categoryResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Category != "garden" {
		t.Fatalf("unexpected category %q", resp.Category)
	}

	c, _ = newContext(e, http.MethodGet, "/user-category", "")
	authenticate(t, c, &domain.Claims{Email: "gone@x.com", Scope: domain.ScopeUsers})
	if err := h.Category(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound for vanished account, got %v", err)
	}

	c, _ = newContext(e, http.MethodGet, "/user-category", "")
	if err := h.Category(c); statusOf(err) != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-api/internal/api/middleware"
	"github.com/stockroom/inventory-api/internal/core/domain"
	"github.com/stockroom/inventory-api/internal/infrastructure/auth"
)

var testTokens = auth.NewJWTService("handler-test-secret", time.Hour)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authenticate runs c through the Auth middleware with a token carrying claims.
func authenticate(t *testing.T, c echo.Context, claims *domain.Claims) {
	t.Helper()
	token, err := testTokens.Issue(*claims)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	c.Request().Header.Set(echo.HeaderAuthorization, token)

	pass := middleware.Auth(testTokens)(func(echo.Context) error { return nil })
	if err := pass(c); err != nil {
		t.Fatalf("auth middleware: %v", err)
	}
}

func statusOf(err error) int {
	if he, ok := err.(*echo.HTTPError); ok {
		return he.Code
	}
	return http.StatusInternalServerError
}

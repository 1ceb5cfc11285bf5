package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-api/internal/core/ports"
)

// AccountHandler serves one account universe. The router mounts one instance
// per scope.
type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register creates a vendor account.
//
// @Summary      Register an account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.accounts.Register(c.Request().Context(), req.Username, req.Email, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, messageResponse{Message: "User registered successfully"})
}

// Login exchanges credentials for a session token.
//
// @Summary      Login
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginResponse{Token: res.Token, Category: res.Account.Category})
}

// List returns every account without password digests.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.Account
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.accounts.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// @Summary      Delete an account
// @Tags         accounts
// @Security     TokenAuth
// @Param        id  path  string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	if err := h.accounts.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User deleted successfully"})
}

// @Summary      Change an account's role
// @Tags         accounts
// @Accept       json
// @Security     TokenAuth
// @Param        id    path  string       true  "Account id"
// @Param        body  body  roleRequest  true  "vendor or admin"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [put]
func (h *AccountHandler) SetRole(c echo.Context) error {
	var req roleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accounts.SetRole(c.Request().Context(), c.Param("id"), req.Role); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User role updated successfully"})
}

// @Summary      Change an account's category
// @Tags         accounts
// @Accept       json
// @Security     TokenAuth
// @Param        id    path  string           true  "Account id"
// @Param        body  body  categoryRequest  true  "Category"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/category [put]
func (h *AccountHandler) SetCategory(c echo.Context) error {
	var req categoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accounts.SetCategory(c.Request().Context(), c.Param("id"), req.Category); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User category updated successfully"})
}

// Category returns the caller's current category. The account is re-read so
// a category changed after login is reflected, and a deleted account is 404.
//
// @Summary      Current account category
// @Tags         accounts
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  categoryResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /user-category [get]
func (h *AccountHandler) Category(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	account, err := h.accounts.FindByEmail(c.Request().Context(), claims.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryResponse{Category: account.Category})
}

package handler

import "github.com/stockroom/inventory-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Accounts ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Category string `json:"category"`
}

type roleRequest struct {
	Role string `json:"role" validate:"required"`
}

type categoryRequest struct {
	Category string `json:"category"`
}

type categoryResponse struct {
	Category string `json:"category"`
}

// --- Products ---

type productRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Image       string   `json:"image"`
	BuyNowLink  string   `json:"buyNowLink"`
	Category    string   `json:"category"`
}

type productPatchRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Image       *string  `json:"image"`
	BuyNowLink  *string  `json:"buyNowLink"`
	Category    *string  `json:"category"`
}

// --- Orders ---

type placeOrderRequest struct {
	ProductID string   `json:"productId" validate:"required"`
	Name      string   `json:"name"      validate:"required"`
	Address   string   `json:"address"   validate:"required"`
	Quantity  int      `json:"quantity"  validate:"required,gt=0"`
	Price     *float64 `json:"price"     validate:"required,gte=0"`
	Image     string   `json:"image"     validate:"required"`
}

type placeOrderResponse struct {
	Message      string        `json:"message"`
	Order        *domain.Order `json:"order"`
	Notified     bool          `json:"notified"`
	Notification string        `json:"notification"`
	Replayed     bool          `json:"replayed,omitempty"`
}

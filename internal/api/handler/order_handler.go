package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stockroom/inventory-api/internal/core/ports"
)

const (
	msgOrderPlaced   = "Order placed successfully"
	msgOrderDegraded = "order placed, notification not sent"
	msgOrderReplayed = "order already placed"
)

type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Place handles POST /orders.
//
// @Summary      Place an order
// @Description  The order is stored before the product is looked up. A failed notification degrades the response message but never the status.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string             false  "Replays the original order when reused"
// @Param        body             body      placeOrderRequest  true   "Order"
// @Success      200              {object}  placeOrderResponse  "Replayed"
// @Success      201              {object}  placeOrderResponse
// @Failure      400              {object}  errorResponse
// @Failure      500              {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	var req placeOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.orders.PlaceOrder(c.Request().Context(), ports.PlaceOrderInput{
		ProductID:      req.ProductID,
		Name:           req.Name,
		Address:        req.Address,
		Quantity:       req.Quantity,
		Price:          req.Price,
		Image:          req.Image,
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get("Idempotency-Key")),
	})
	if err != nil {
		return err
	}

	resp := placeOrderResponse{
		Order:        result.Order,
		Notified:     result.Notification == ports.NotificationSent,
		Notification: string(result.Notification),
		Replayed:     result.Replayed,
	}
	switch {
	case result.Replayed:
		resp.Message = msgOrderReplayed
		return c.JSON(http.StatusOK, resp)
	case resp.Notified:
		resp.Message = msgOrderPlaced
	default:
		resp.Message = msgOrderDegraded
	}
	return c.JSON(http.StatusCreated, resp)
}

// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}  domain.Order
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

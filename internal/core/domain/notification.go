package domain

import (
	"fmt"
	"strings"
)

// Notification is the message sent to the operator when an order is placed.
type Notification struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Recipient    string  `json:"recipient"`
	Address      string  `json:"address"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// NewOrderNotification builds the notification for order o of product p.
func NewOrderNotification(id string, o *Order, p *Product) Notification {
	return Notification{
		ID:           id,
		OrderID:      o.ID,
		ProductName:  p.Name,
		ProductImage: o.Image,
		Recipient:    o.Name,
		Address:      o.Address,
		Quantity:     o.Quantity,
		Price:        o.Price,
	}
}

// Subject is the one-line summary used as mail subject.
func (n Notification) Subject() string {
	return fmt.Sprintf("New order: %d x %s", n.Quantity, n.ProductName)
}

// Body renders the plain-text message.
func (n Notification) Body() string {
	var b strings.Builder
	b.WriteString("A new order has been placed.\n\n")
	fmt.Fprintf(&b, "Order:    %s\n", n.OrderID)
	fmt.Fprintf(&b, "Product:  %s\n", n.ProductName)
	if n.ProductImage != "" {
		fmt.Fprintf(&b, "Image:    %s\n", n.ProductImage)
	}
	fmt.Fprintf(&b, "Name:     %s\n", n.Recipient)
	fmt.Fprintf(&b, "Address:  %s\n", n.Address)
	fmt.Fprintf(&b, "Quantity: %d\n", n.Quantity)
	fmt.Fprintf(&b, "Price:    %.2f\n", n.Price)
	return b.String()
}

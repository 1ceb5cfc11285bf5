package domain

import "time"

// Order is an immutable purchase record. Price and Image are snapshots taken at
// placement time and never re-derived from the product.
type Order struct {
	ID        string    `json:"_id"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

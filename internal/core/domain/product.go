package domain

import "time"

// Product is a catalog entry. Orders reference it by ID but copy its price and image.
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	BuyNowLink  string    `json:"buyNowLink,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProductPatch carries the fields of a partial product update; nil means unchanged.
type ProductPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Image       *string
	BuyNowLink  *string
	Category    *string
}

// CategoryAll is the listing sentinel meaning "no category filter".
const CategoryAll = "All"

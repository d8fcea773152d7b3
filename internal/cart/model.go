package cart

import "time"

// Item is one product line in a buyer's cart.
type Item struct {
	ID        int       `json:"id"`
	BuyerID   string    `json:"buyer_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Line is an item joined with current product data for display.
type Line struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}

// Cart is the assembled view returned by the API.
type Cart struct {
	Items []Line  `json:"items"`
	Total float64 `json:"total"`
}

package order

import "time"

// Order status lifecycle. Sellers advance PENDING through DELIVERED;
// buyers may cancel before shipment.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusShipped   = "SHIPPED"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

type Order struct {
	ID        string    `json:"id"`
	BuyerID   string    `json:"buyer_id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []Item `json:"items"`
}

// Item snapshots the unit price at checkout time, so later catalog
// price changes never rewrite order history.
type Item struct {
	ID        int     `json:"id"`
	OrderID   string  `json:"order_id"`
	ProductID string  `json:"product_id"`
	SellerID  string  `json:"seller_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

package order

import "context"

type Repository interface {
	// CreateWithItems persists the order, its items and the stock
	// decrements in one transaction.
	CreateWithItems(ctx context.Context, o *Order) error

	GetByID(ctx context.Context, id string) (*Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*Order, error)

	UpdateStatus(ctx context.Context, id, status string) error
	HasSellerItems(ctx context.Context, orderID, sellerID string) (bool, error)

	// RecordPrices appends one price_history row per order item.
	// Called when the order reaches DELIVERED.
	RecordPrices(ctx context.Context, orderID string) error
}

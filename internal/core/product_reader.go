package core

import "context"

// ProductInfo is the read-only product view shared across features.
type ProductInfo struct {
	ID           string
	SellerID     string
	Name         string
	Category     string
	Region       string
	Unit         string
	PricePerUnit float64
	Stock        int
	Status       string
}

// ProductReader lets cart, order, review and pricing read products
// without importing the product package.
type ProductReader interface {
	Get(ctx context.Context, productID string) (*ProductInfo, error)

	IsOwner(ctx context.Context, productID string, userID string) (bool, error)
}

// Notifier is implemented by the notification service so order and
// review flows can emit notifications without a package cycle.
type Notifier interface {
	Notify(ctx context.Context, userID, kind, message string) error
}

package review

import "context"

type Repository interface {
	Create(ctx context.Context, r *Review) error
	ExistsForBuyer(ctx context.Context, productID, buyerID string) (bool, error)
	ListByProduct(ctx context.Context, productID string) ([]Review, error)

	// HasDeliveredPurchase reports whether the buyer has a DELIVERED
	// order containing the product. Reviews are gated on it.
	HasDeliveredPurchase(ctx context.Context, buyerID, productID string) (bool, error)
}

package cart

import "context"

type Repository interface {
	Upsert(ctx context.Context, buyerID, productID string, quantity int) error
	UpdateQuantity(ctx context.Context, buyerID, productID string, quantity int) error
	Remove(ctx context.Context, buyerID, productID string) error
	ListByBuyer(ctx context.Context, buyerID string) ([]Item, error)
	Clear(ctx context.Context, buyerID string) error
}

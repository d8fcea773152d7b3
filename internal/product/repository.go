package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, category, region string) ([]*Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*Product, error)
	SetStatus(ctx context.Context, id, status string) error
	AddImage(ctx context.Context, productID, imageURL string) error
}

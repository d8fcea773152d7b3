package product

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
)

// InMemoryRepository backs the product service in tests.
type InMemoryRepository struct {
	products map[string]*Product
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{products: make(map[string]*Product)}
}

func (r *InMemoryRepository) Create(ctx context.Context, p *Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, p *Product) error {
	existing, ok := r.products[p.ID]
	if !ok {
		return errors.New("product not found")
	}

	existing.Name = p.Name
	existing.Category = p.Category
	existing.Description = p.Description
	existing.Unit = p.Unit
	existing.PricePerUnit = p.PricePerUnit
	existing.Stock = p.Stock
	existing.Region = p.Region
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	clone := *p
	return &clone, nil
}

func (r *InMemoryRepository) List(ctx context.Context, category, region string) ([]*Product, error) {
	var out []*Product
	for _, p := range r.products {
		if p.Status != StatusActive {
			continue
		}
		if category != "" && p.Category != category {
			continue
		}
		if region != "" && p.Region != region {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) ListBySeller(ctx context.Context, sellerID string) ([]*Product, error) {
	var out []*Product
	for _, p := range r.products {
		if p.SellerID == sellerID {
			clone := *p
			out = append(out, &clone)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) SetStatus(ctx context.Context, id, status string) error {
	p, ok := r.products[id]
	if !ok {
		return errors.New("product not found")
	}
	p.Status = status
	return nil
}

func (r *InMemoryRepository) AddImage(ctx context.Context, productID, imageURL string) error {
	p, ok := r.products[productID]
	if !ok {
		return errors.New("product not found")
	}
	p.Images = append(p.Images, imageURL)
	return nil
}

// SetStock is a test helper for simulating stock changes.
func (r *InMemoryRepository) SetStock(productID string, stock int) {
	if p, ok := r.products[productID]; ok {
		p.Stock = stock
	}
}

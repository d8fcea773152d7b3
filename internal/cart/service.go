package cart

import (
	"context"
	"errors"

	"github.com/JuanSebastianCG/agricoventa-sub002/internal/core"
)

var (
	ErrProductUnavailable = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("not enough stock")
)

type Service struct {
	repo     Repository
	products core.ProductReader
}

func NewService(repo Repository, products core.ProductReader) *Service {
	return &Service{repo: repo, products: products}
}

// --------------------------------------------------
// Add item (UPSERT: adding an existing product replaces its quantity)
// --------------------------------------------------
func (s *Service) AddItem(
	ctx context.Context,
	buyerID string,
	productID string,
	quantity int,
) error {

	if quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return ErrProductUnavailable
	}
	if p.Status != "ACTIVE" {
		return ErrProductUnavailable
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}

	return s.repo.Upsert(ctx, buyerID, productID, quantity)
}

// --------------------------------------------------
// Update quantity
// --------------------------------------------------
func (s *Service) UpdateQuantity(
	ctx context.Context,
	buyerID string,
	productID string,
	quantity int,
) error {

	if quantity < 1 {
		return errors.New("quantity must be at least 1")
	}

	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return ErrProductUnavailable
	}
	if quantity > p.Stock {
		return ErrInsufficientStock
	}

	return s.repo.UpdateQuantity(ctx, buyerID, productID, quantity)
}

// --------------------------------------------------
// Remove item
// --------------------------------------------------
func (s *Service) RemoveItem(ctx context.Context, buyerID, productID string) error {
	return s.repo.Remove(ctx, buyerID, productID)
}

// --------------------------------------------------
// Assembled cart view
// --------------------------------------------------
func (s *Service) GetCart(ctx context.Context, buyerID string) (*Cart, error) {
	items, err := s.repo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	cart := &Cart{Items: []Line{}}
	for _, item := range items {
		p, err := s.products.Get(ctx, item.ProductID)
		if err != nil {
			// Product removed since it was carted; skip the line.
			continue
		}

		line := Line{
			ProductID:   item.ProductID,
			ProductName: p.Name,
			Unit:        p.Unit,
			UnitPrice:   p.PricePerUnit,
			Quantity:    item.Quantity,
			LineTotal:   p.PricePerUnit * float64(item.Quantity),
		}
		cart.Items = append(cart.Items, line)
		cart.Total += line.LineTotal
	}

	return cart, nil
}

// Items exposes raw cart rows for checkout.
func (s *Service) Items(ctx context.Context, buyerID string) ([]Item, error) {
	return s.repo.ListByBuyer(ctx, buyerID)
}

// Clear empties the cart after a successful checkout.
func (s *Service) Clear(ctx context.Context, buyerID string) error {
	return s.repo.Clear(ctx, buyerID)
}

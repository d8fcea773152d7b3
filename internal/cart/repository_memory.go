package cart

import (
	"context"
	"errors"
	"sort"
)

type InMemoryRepository struct {
	items  map[string]map[string]int // buyerID -> productID -> quantity
	nextID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]map[string]int)}
}

func (r *InMemoryRepository) Upsert(ctx context.Context, buyerID, productID string, quantity int) error {
	if r.items[buyerID] == nil {
		r.items[buyerID] = make(map[string]int)
	}
	r.items[buyerID][productID] = quantity
	return nil
}

func (r *InMemoryRepository) UpdateQuantity(ctx context.Context, buyerID, productID string, quantity int) error {
	if _, ok := r.items[buyerID][productID]; !ok {
		return errors.New("cart item not found")
	}
	r.items[buyerID][productID] = quantity
	return nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, buyerID, productID string) error {
	delete(r.items[buyerID], productID)
	return nil
}

func (r *InMemoryRepository) ListByBuyer(ctx context.Context, buyerID string) ([]Item, error) {
	var items []Item
	for productID, qty := range r.items[buyerID] {
		r.nextID++
		items = append(items, Item{
			ID:        r.nextID,
			BuyerID:   buyerID,
			ProductID: productID,
			Quantity:  qty,
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items, nil
}

func (r *InMemoryRepository) Clear(ctx context.Context, buyerID string) error {
	delete(r.items, buyerID)
	return nil
}

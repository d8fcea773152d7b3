package order

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
)

// InMemoryRepository backs the order service in tests. Stock
// decrements and price recording are observable through the
// exported maps.
type InMemoryRepository struct {
	Orders         map[string]*Order
	Stock          map[string]int
	RecordedPrices map[string][]float64 // productID -> delivered unit prices
	nextItemID     int
}

func NewInMemoryRepository(stock map[string]int) *InMemoryRepository {
	if stock == nil {
		stock = make(map[string]int)
	}
	return &InMemoryRepository{
		Orders:         make(map[string]*Order),
		Stock:          stock,
		RecordedPrices: make(map[string][]float64),
	}
}

func (r *InMemoryRepository) CreateWithItems(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	for i := range o.Items {
		item := &o.Items[i]
		if r.Stock[item.ProductID] < item.Quantity {
			return errors.New("not enough stock")
		}
	}
	for i := range o.Items {
		item := &o.Items[i]
		r.nextItemID++
		item.ID = r.nextItemID
		item.OrderID = o.ID
		r.Stock[item.ProductID] -= item.Quantity
	}

	clone := *o
	clone.Items = append([]Item(nil), o.Items...)
	r.Orders[o.ID] = &clone
	return nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	o, ok := r.Orders[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	clone := *o
	clone.Items = append([]Item(nil), o.Items...)
	return &clone, nil
}

func (r *InMemoryRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error) {
	var out []*Order
	for _, o := range r.Orders {
		if o.BuyerID == buyerID {
			clone := *o
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) ListBySeller(ctx context.Context, sellerID string) ([]*Order, error) {
	var out []*Order
	for _, o := range r.Orders {
		for _, item := range o.Items {
			if item.SellerID == sellerID {
				clone := *o
				out = append(out, &clone)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	o, ok := r.Orders[id]
	if !ok {
		return errors.New("order not found")
	}
	o.Status = status
	return nil
}

func (r *InMemoryRepository) HasSellerItems(ctx context.Context, orderID, sellerID string) (bool, error) {
	o, ok := r.Orders[orderID]
	if !ok {
		return false, nil
	}
	for _, item := range o.Items {
		if item.SellerID == sellerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) RecordPrices(ctx context.Context, orderID string) error {
	o, ok := r.Orders[orderID]
	if !ok {
		return errors.New("order not found")
	}
	for _, item := range o.Items {
		r.RecordedPrices[item.ProductID] = append(r.RecordedPrices[item.ProductID], item.UnitPrice)
	}
	return nil
}

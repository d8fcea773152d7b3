package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/JuanSebastianCG/agricoventa-sub002/internal/cart"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/core"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNotFound          = errors.New("order not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInsufficientStock = errors.New("not enough stock")
)

// Allowed forward transitions per current status.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered},
}

// CartReader is the slice of the cart service checkout needs.
type CartReader interface {
	Items(ctx context.Context, buyerID string) ([]cart.Item, error)
	Clear(ctx context.Context, buyerID string) error
}

type Service struct {
	repo     Repository
	carts    CartReader
	products core.ProductReader
	notifier core.Notifier
}

func NewService(
	repo Repository,
	carts CartReader,
	products core.ProductReader,
	notifier core.Notifier,
) *Service {
	return &Service{
		repo:     repo,
		carts:    carts,
		products: products,
		notifier: notifier,
	}
}

// --------------------------------------------------
// Checkout (cart → order)
// --------------------------------------------------
func (s *Service) Checkout(ctx context.Context, buyerID string) (*Order, error) {
	cartItems, err := s.carts.Items(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	o := &Order{
		BuyerID: buyerID,
		Status:  StatusPending,
	}

	sellers := map[string]bool{}
	for _, ci := range cartItems {
		p, err := s.products.Get(ctx, ci.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s unavailable", ci.ProductID)
		}
		if p.Status != "ACTIVE" {
			return nil, fmt.Errorf("product %s unavailable", ci.ProductID)
		}
		if ci.Quantity > p.Stock {
			return nil, ErrInsufficientStock
		}

		o.Items = append(o.Items, Item{
			ProductID: ci.ProductID,
			SellerID:  p.SellerID,
			Quantity:  ci.Quantity,
			UnitPrice: p.PricePerUnit,
		})
		o.Total += p.PricePerUnit * float64(ci.Quantity)
		sellers[p.SellerID] = true
	}

	if err := s.repo.CreateWithItems(ctx, o); err != nil {
		return nil, err
	}

	_ = s.carts.Clear(ctx, buyerID)

	for sellerID := range sellers {
		_ = s.notifier.Notify(
			ctx,
			sellerID,
			"NEW_ORDER",
			fmt.Sprintf("You have a new order %s", o.ID),
		)
	}

	return o, nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------
func (s *Service) GetOrder(ctx context.Context, orderID, userID string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, ErrNotFound
	}

	if o.BuyerID == userID {
		return o, nil
	}

	// Sellers only see orders that contain their items.
	ok, err := s.repo.HasSellerItems(ctx, orderID, userID)
	if err != nil || !ok {
		return nil, ErrNotFound
	}
	return o, nil
}

func (s *Service) ListMyOrders(ctx context.Context, buyerID string) ([]*Order, error) {
	return s.repo.ListByBuyer(ctx, buyerID)
}

func (s *Service) ListMySales(ctx context.Context, sellerID string) ([]*Order, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}

// --------------------------------------------------
// Seller advances status
// --------------------------------------------------
func (s *Service) AdvanceStatus(
	ctx context.Context,
	orderID string,
	sellerID string,
	newStatus string,
) (*Order, error) {

	ok, err := s.repo.HasSellerItems(ctx, orderID, sellerID)
	if err != nil || !ok {
		return nil, ErrNotFound
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, ErrNotFound
	}

	if !allowed(o.Status, newStatus) {
		return nil, ErrInvalidTransition
	}
	// Cancellation belongs to the buyer.
	if newStatus == StatusCancelled {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		return nil, err
	}

	if newStatus == StatusDelivered {
		// Delivered sales feed the price history used by analytics.
		if err := s.repo.RecordPrices(ctx, orderID); err != nil {
			return nil, err
		}
	}

	_ = s.notifier.Notify(
		ctx,
		o.BuyerID,
		"ORDER_STATUS",
		fmt.Sprintf("Order %s is now %s", orderID, newStatus),
	)

	return s.repo.GetByID(ctx, orderID)
}

// --------------------------------------------------
// Buyer cancels
// --------------------------------------------------
func (s *Service) Cancel(ctx context.Context, orderID, buyerID string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil || o.BuyerID != buyerID {
		return nil, ErrNotFound
	}

	if !allowed(o.Status, StatusCancelled) {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, orderID, StatusCancelled); err != nil {
		return nil, err
	}

	for _, item := range o.Items {
		_ = s.notifier.Notify(
			ctx,
			item.SellerID,
			"ORDER_CANCELLED",
			fmt.Sprintf("Order %s was cancelled", orderID),
		)
	}

	return s.repo.GetByID(ctx, orderID)
}

func allowed(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

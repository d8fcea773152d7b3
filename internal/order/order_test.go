package order

import (
	"context"
	"errors"
	"testing"

	"github.com/JuanSebastianCG/agricoventa-sub002/internal/cart"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/core"
)

type stubCart struct {
	items   map[string][]cart.Item
	cleared map[string]bool
}

func (s *stubCart) Items(ctx context.Context, buyerID string) ([]cart.Item, error) {
	return s.items[buyerID], nil
}

func (s *stubCart) Clear(ctx context.Context, buyerID string) error {
	s.cleared[buyerID] = true
	s.items[buyerID] = nil
	return nil
}

type stubProducts struct {
	products map[string]*core.ProductInfo
}

func (s *stubProducts) Get(ctx context.Context, productID string) (*core.ProductInfo, error) {
	p, ok := s.products[productID]
	if !ok {
		return nil, errors.New("product not found")
	}
	return p, nil
}

func (s *stubProducts) IsOwner(ctx context.Context, productID, userID string) (bool, error) {
	p, err := s.Get(ctx, productID)
	if err != nil {
		return false, err
	}
	return p.SellerID == userID, nil
}

type stubNotifier struct {
	sent map[string][]string // userID -> kinds
}

func (s *stubNotifier) Notify(ctx context.Context, userID, kind, message string) error {
	s.sent[userID] = append(s.sent[userID], kind)
	return nil
}

func newTestService() (*Service, *InMemoryRepository, *stubCart, *stubNotifier) {
	carts := &stubCart{
		items: map[string][]cart.Item{
			"buyer-1": {
				{BuyerID: "buyer-1", ProductID: "coffee", Quantity: 2},
				{BuyerID: "buyer-1", ProductID: "banana", Quantity: 5},
			},
		},
		cleared: make(map[string]bool),
	}

	products := &stubProducts{products: map[string]*core.ProductInfo{
		"coffee": {
			ID: "coffee", SellerID: "seller-1", Name: "Café",
			Category: "coffee", Region: "Huila",
			PricePerUnit: 25000, Stock: 10, Status: "ACTIVE",
		},
		"banana": {
			ID: "banana", SellerID: "seller-2", Name: "Banano",
			Category: "fruit", Region: "Antioquia",
			PricePerUnit: 3000, Stock: 100, Status: "ACTIVE",
		},
	}}

	repo := NewInMemoryRepository(map[string]int{"coffee": 10, "banana": 100})
	notifier := &stubNotifier{sent: make(map[string][]string)}

	return NewService(repo, carts, products, notifier), repo, carts, notifier
}

func TestCheckoutSnapshotsPricesAndClearsCart(t *testing.T) {
	service, repo, carts, notifier := newTestService()
	ctx := context.Background()

	o, err := service.Checkout(ctx, "buyer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Status != StatusPending {
		t.Errorf("expected PENDING, got %s", o.Status)
	}
	if o.Total != 2*25000+5*3000 {
		t.Errorf("unexpected total %v", o.Total)
	}
	if len(o.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(o.Items))
	}
	if o.Items[0].UnitPrice != 25000 {
		t.Errorf("price not snapshotted: %v", o.Items[0].UnitPrice)
	}

	// Stock decremented
	if repo.Stock["coffee"] != 8 || repo.Stock["banana"] != 95 {
		t.Errorf("stock not decremented: %+v", repo.Stock)
	}

	if !carts.cleared["buyer-1"] {
		t.Error("cart was not cleared")
	}

	// Both sellers notified
	if len(notifier.sent["seller-1"]) != 1 || len(notifier.sent["seller-2"]) != 1 {
		t.Errorf("sellers not notified: %+v", notifier.sent)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	service, _, carts, _ := newTestService()
	carts.items["buyer-1"] = nil

	_, err := service.Checkout(context.Background(), "buyer-1")
	if err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckoutInsufficientStock(t *testing.T) {
	service, _, carts, _ := newTestService()
	carts.items["buyer-1"] = []cart.Item{
		{BuyerID: "buyer-1", ProductID: "coffee", Quantity: 11},
	}

	_, err := service.Checkout(context.Background(), "buyer-1")
	if err != ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestStatusLifecycleToDeliveredRecordsPrices(t *testing.T) {
	service, repo, _, notifier := newTestService()
	ctx := context.Background()

	o, _ := service.Checkout(ctx, "buyer-1")

	for _, status := range []string{StatusConfirmed, StatusShipped, StatusDelivered} {
		updated, err := service.AdvanceStatus(ctx, o.ID, "seller-1", status)
		if err != nil {
			t.Fatalf("transition to %s failed: %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("expected %s, got %s", status, updated.Status)
		}
	}

	// Delivered prices recorded for analytics
	if len(repo.RecordedPrices["coffee"]) != 1 || repo.RecordedPrices["coffee"][0] != 25000 {
		t.Errorf("price history not recorded: %+v", repo.RecordedPrices)
	}

	// Buyer notified on each transition
	if len(notifier.sent["buyer-1"]) != 3 {
		t.Errorf("expected 3 buyer notifications, got %d", len(notifier.sent["buyer-1"]))
	}
}

func TestInvalidTransitionRejected(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	o, _ := service.Checkout(ctx, "buyer-1")

	// PENDING → DELIVERED skips two states
	_, err := service.AdvanceStatus(ctx, o.ID, "seller-1", StatusDelivered)
	if err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestSellerCannotCancel(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	o, _ := service.Checkout(ctx, "buyer-1")

	_, err := service.AdvanceStatus(ctx, o.ID, "seller-1", StatusCancelled)
	if err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestBuyerCancelBeforeShipment(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	o, _ := service.Checkout(ctx, "buyer-1")

	cancelled, err := service.Cancel(ctx, o.ID, "buyer-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != StatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", cancelled.Status)
	}
}

func TestBuyerCannotCancelShippedOrder(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	o, _ := service.Checkout(ctx, "buyer-1")
	service.AdvanceStatus(ctx, o.ID, "seller-1", StatusConfirmed)
	service.AdvanceStatus(ctx, o.ID, "seller-1", StatusShipped)

	_, err := service.Cancel(ctx, o.ID, "buyer-1")
	if err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestStrangerCannotSeeOrder(t *testing.T) {
	service, _, _, _ := newTestService()
	ctx := context.Background()

	o, _ := service.Checkout(ctx, "buyer-1")

	if _, err := service.GetOrder(ctx, o.ID, "someone-else"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Seller with items in the order can see it
	if _, err := service.GetOrder(ctx, o.ID, "seller-2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

package review

import (
	"context"
	"errors"
	"testing"

	"github.com/JuanSebastianCG/agricoventa-sub002/internal/core"
)

type memoryRepo struct {
	reviews   []Review
	delivered map[string]bool // buyerID|productID
	nextID    int
}

func key(buyerID, productID string) string { return buyerID + "|" + productID }

func (m *memoryRepo) Create(ctx context.Context, r *Review) error {
	m.nextID++
	r.ID = m.nextID
	m.reviews = append(m.reviews, *r)
	return nil
}

func (m *memoryRepo) ExistsForBuyer(ctx context.Context, productID, buyerID string) (bool, error) {
	for _, r := range m.reviews {
		if r.ProductID == productID && r.BuyerID == buyerID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepo) ListByProduct(ctx context.Context, productID string) ([]Review, error) {
	var out []Review
	for _, r := range m.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRepo) HasDeliveredPurchase(ctx context.Context, buyerID, productID string) (bool, error) {
	return m.delivered[key(buyerID, productID)], nil
}

type stubProducts struct{}

func (stubProducts) Get(ctx context.Context, productID string) (*core.ProductInfo, error) {
	if productID != "coffee" {
		return nil, errors.New("product not found")
	}
	return &core.ProductInfo{ID: "coffee", SellerID: "seller-1", Name: "Café"}, nil
}

func (stubProducts) IsOwner(ctx context.Context, productID, userID string) (bool, error) {
	return false, nil
}

type stubNotifier struct {
	sent []string
}

func (s *stubNotifier) Notify(ctx context.Context, userID, kind, message string) error {
	s.sent = append(s.sent, userID+":"+kind)
	return nil
}

func newTestService(delivered bool) (*Service, *memoryRepo, *stubNotifier) {
	repo := &memoryRepo{delivered: make(map[string]bool)}
	if delivered {
		repo.delivered[key("buyer-1", "coffee")] = true
	}
	notifier := &stubNotifier{}
	return NewService(repo, stubProducts{}, notifier), repo, notifier
}

func TestCreateReviewRequiresDeliveredOrder(t *testing.T) {
	service, _, _ := newTestService(false)

	_, err := service.CreateReview(context.Background(), "buyer-1", "coffee", 5, "excelente")
	if err != ErrNotPurchased {
		t.Fatalf("expected ErrNotPurchased, got %v", err)
	}
}

func TestCreateReviewSuccessNotifiesSeller(t *testing.T) {
	service, _, notifier := newTestService(true)

	review, err := service.CreateReview(context.Background(), "buyer-1", "coffee", 4, "muy bueno")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if review.Rating != 4 {
		t.Fatalf("unexpected rating: %d", review.Rating)
	}

	if len(notifier.sent) != 1 || notifier.sent[0] != "seller-1:NEW_REVIEW" {
		t.Fatalf("seller not notified: %v", notifier.sent)
	}
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	service, _, _ := newTestService(true)
	ctx := context.Background()

	if _, err := service.CreateReview(ctx, "buyer-1", "coffee", 4, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := service.CreateReview(ctx, "buyer-1", "coffee", 5, "")
	if err != ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCreateReviewValidatesRating(t *testing.T) {
	service, _, _ := newTestService(true)

	for _, rating := range []int{0, 6, -1} {
		if _, err := service.CreateReview(context.Background(), "buyer-1", "coffee", rating, ""); err != ErrInvalidRating {
			t.Fatalf("rating %d: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestSummaryAverages(t *testing.T) {
	service, repo, _ := newTestService(true)
	ctx := context.Background()

	repo.reviews = []Review{
		{ID: 1, ProductID: "coffee", BuyerID: "a", Rating: 5},
		{ID: 2, ProductID: "coffee", BuyerID: "b", Rating: 4},
		{ID: 3, ProductID: "other", BuyerID: "c", Rating: 1},
	}

	summary, err := service.GetProductReviews(ctx, "coffee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Count != 2 {
		t.Fatalf("expected 2 reviews, got %d", summary.Count)
	}
	if summary.AvgRating != 4.5 {
		t.Fatalf("expected avg 4.5, got %v", summary.AvgRating)
	}
}

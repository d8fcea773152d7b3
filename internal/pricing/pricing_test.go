package pricing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JuanSebastianCG/agricoventa-sub002/internal/core"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/market"
)

type stubProducts struct {
	price float64
}

func (s *stubProducts) Get(ctx context.Context, productID string) (*core.ProductInfo, error) {
	return &core.ProductInfo{
		ID: productID, SellerID: "seller-1",
		Category: "coffee", Region: "Huila",
		PricePerUnit: s.price, Status: "ACTIVE",
	}, nil
}

func (s *stubProducts) IsOwner(ctx context.Context, productID, userID string) (bool, error) {
	return userID == "seller-1", nil
}

type stubSnapshots struct {
	snapshot *market.Snapshot
}

func (s *stubSnapshots) GetSnapshot(ctx context.Context, category, region string) (*market.Snapshot, error) {
	if s.snapshot == nil {
		return nil, errors.New("snapshot not found")
	}
	return s.snapshot, nil
}

type stubHistory struct {
	prices []float64
	dates  []time.Time
}

func (s *stubHistory) ProductSeries(ctx context.Context, productID string, days int) ([]float64, []time.Time, error) {
	return s.prices, s.dates, nil
}

func newTestService(price float64, snapshot *market.Snapshot) *Service {
	return NewService(
		&stubProducts{price: price},
		&stubSnapshots{snapshot: snapshot},
		&stubHistory{},
	)
}

func baseSnapshot() *market.Snapshot {
	return &market.Snapshot{
		Category: "coffee", Region: "Huila",
		AvgPrice: 10000, MedianPrice: 10000, SampleSize: 12,
	}
}

func TestSuggestionPremiumPositioning(t *testing.T) {
	service := newTestService(12000, baseSnapshot())

	got, err := service.GetSuggestion(context.Background(), "coffee-1", "seller-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Positioning != PositionPremium {
		t.Fatalf("expected PREMIUM, got %s", got.Positioning)
	}
	if got.SuggestedPrice != 11000 {
		t.Fatalf("expected suggested 11000, got %v", got.SuggestedPrice)
	}
}

func TestSuggestionUnderMarketPositioning(t *testing.T) {
	service := newTestService(8000, baseSnapshot())

	got, err := service.GetSuggestion(context.Background(), "coffee-1", "seller-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Positioning != PositionUnderMarket {
		t.Fatalf("expected UNDER_MARKET, got %s", got.Positioning)
	}
	if got.SuggestedPrice != 9500 {
		t.Fatalf("expected suggested 9500, got %v", got.SuggestedPrice)
	}
}

func TestSuggestionAveragePositioningKeepsPrice(t *testing.T) {
	service := newTestService(10500, baseSnapshot())

	got, err := service.GetSuggestion(context.Background(), "coffee-1", "seller-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Positioning != PositionAverage {
		t.Fatalf("expected MARKET_AVERAGE, got %s", got.Positioning)
	}
	if got.SuggestedPrice != 10500 {
		t.Fatalf("expected suggested 10500, got %v", got.SuggestedPrice)
	}
}

func TestSuggestionRejectsNonOwner(t *testing.T) {
	service := newTestService(10000, baseSnapshot())

	_, err := service.GetSuggestion(context.Background(), "coffee-1", "seller-2")
	if err != ErrUnauthorized {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSuggestionWithoutMarketData(t *testing.T) {
	service := newTestService(10000, nil)

	_, err := service.GetSuggestion(context.Background(), "coffee-1", "seller-1")
	if err != ErrNoMarketData {
		t.Fatalf("expected ErrNoMarketData, got %v", err)
	}
}

func TestSuggestionMentionsRisingTrend(t *testing.T) {
	snapshot := baseSnapshot()
	history := &stubHistory{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		history.prices = append(history.prices, 8000+float64(i)*200)
		history.dates = append(history.dates, start.AddDate(0, 0, i))
	}

	service := NewService(&stubProducts{price: 8000}, &stubSnapshots{snapshot: snapshot}, history)

	got, err := service.GetSuggestion(context.Background(), "coffee-1", "seller-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Trend.Trend != "increasing" {
		t.Fatalf("expected increasing trend, got %s", got.Trend.Trend)
	}
}

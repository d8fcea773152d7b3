package pricing

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/JuanSebastianCG/agricoventa-sub002/internal/analytics"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/core"
	"github.com/JuanSebastianCG/agricoventa-sub002/internal/market"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNoMarketData = errors.New("no market data available")
)

// SnapshotReader is the slice of the market service pricing needs.
type SnapshotReader interface {
	GetSnapshot(ctx context.Context, category, region string) (*market.Snapshot, error)
}

// HistoryReader supplies the product's dated price series.
type HistoryReader interface {
	ProductSeries(ctx context.Context, productID string, days int) ([]float64, []time.Time, error)
}

type Service struct {
	products  core.ProductReader
	snapshots SnapshotReader
	history   HistoryReader
}

func NewService(
	products core.ProductReader,
	snapshots SnapshotReader,
	history HistoryReader,
) *Service {
	return &Service{
		products:  products,
		snapshots: snapshots,
		history:   history,
	}
}

// GetSuggestion positions a seller's product against the regional
// market snapshot and its own price trend.
func (s *Service) GetSuggestion(
	ctx context.Context,
	productID string,
	sellerID string,
) (*Suggestion, error) {

	ok, err := s.products.IsOwner(ctx, productID, sellerID)
	if err != nil || !ok {
		return nil, ErrUnauthorized
	}

	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, errors.New("product not found")
	}

	snap, err := s.snapshots.GetSnapshot(ctx, p.Category, p.Region)
	if err != nil {
		return nil, ErrNoMarketData
	}

	// Trend over the last quarter; an empty series degrades to
	// the neutral stable result.
	prices, dates, err := s.history.ProductSeries(ctx, productID, 90)
	if err != nil {
		prices, dates = nil, nil
	}
	trend := analytics.PriceTrend(prices, dates)

	positioning, suggested, reason := position(p.PricePerUnit, snap.MedianPrice)

	if positioning != PositionPremium && trend.Trend == "increasing" {
		reason += " — regional prices are rising"
	}

	return &Suggestion{
		ProductID:      productID,
		Category:       p.Category,
		Region:         p.Region,
		CurrentPrice:   p.PricePerUnit,
		MarketAvg:      snap.AvgPrice,
		MarketMedian:   snap.MedianPrice,
		SampleSize:     snap.SampleSize,
		Positioning:    positioning,
		Trend:          trend,
		SuggestedPrice: suggested,
		Reason:         reason,
	}, nil
}

// --------------------------------------------------
// Positioning logic (±10% band around the median)
// --------------------------------------------------
func position(price, median float64) (string, float64, string) {
	switch {
	case price > median*1.1:
		return PositionPremium,
			round2(median * 1.1),
			"Priced above the regional market"
	case price < median*0.9:
		return PositionUnderMarket,
			round2(median * 0.95),
			"Priced below the regional market, room to raise"
	default:
		return PositionAverage,
			round2(price),
			"In line with the regional market"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

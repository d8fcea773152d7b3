package analytics

import (
	"context"
	"time"
)

// Repository loads the price-history rows the statistics run over.
type Repository interface {
	// ProductSeries returns the product's prices and observation dates
	// from the last N days, oldest first.
	ProductSeries(ctx context.Context, productID string, days int) ([]float64, []time.Time, error)

	// MonthlyBuckets groups the product's full history by calendar month.
	MonthlyBuckets(ctx context.Context, productID string) ([]MonthlyBucket, error)

	// PairedSeries returns the two products' daily average prices over
	// the days they were both observed, oldest first.
	PairedSeries(ctx context.Context, productA, productB string, days int) ([]float64, []float64, error)

	// MarketObservations returns per-seller average price and sold
	// volume for a category + region, from delivered orders.
	MarketObservations(ctx context.Context, category, region string) ([]MarketObservation, error)
}

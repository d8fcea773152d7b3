package market

import (
	"context"
	"log"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Service struct {
	db   *pgxpool.Pool
	repo *Repository
}

func NewService(db *pgxpool.Pool) *Service {
	return &Service{
		db:   db,
		repo: NewRepository(db),
	}
}

// Recompute snapshot for a category + region from the last 90 days
// of delivered-sale observations.
func (s *Service) RecomputeSnapshot(
	ctx context.Context,
	category string,
	region string,
) error {

	rows, err := s.db.Query(ctx, `
		SELECT price
		FROM price_history
		WHERE category = $1
			AND region = $2
			AND observed_on >= CURRENT_DATE - INTERVAL '90 days'
	`, category, region)
	if err != nil {
		return err
	}
	defer rows.Close()

	var values []float64

	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err == nil {
			values = append(values, v)
		}
	}

	// 🚨 Require minimum samples
	if len(values) < 3 {
		log.Printf(
			"[MARKET] Skipping %s / %s (samples=%d)",
			category, region, len(values),
		)
		return nil
	}

	sort.Float64s(values)

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	median := values[len(values)/2]
	avg := sum / float64(len(values))

	log.Printf(
		"[MARKET] %s / %s → avg=%.2f median=%.2f samples=%d",
		category, region, avg, median, len(values),
	)

	return s.repo.UpsertSnapshot(ctx, Snapshot{
		Category:    category,
		Region:      region,
		AvgPrice:    avg,
		MedianPrice: median,
		SampleSize:  len(values),
	})
}

// RecomputeAll refreshes every observed (category, region) pair.
// Used by the price worker and the admin fallback endpoint.
func (s *Service) RecomputeAll(ctx context.Context) error {
	pairs, err := s.repo.ListObservedPairs(ctx)
	if err != nil {
		return err
	}

	for _, pair := range pairs {
		if err := s.RecomputeSnapshot(ctx, pair[0], pair[1]); err != nil {
			log.Printf("[MARKET] recompute %s/%s failed: %v", pair[0], pair[1], err)
		}
	}
	return nil
}

// Read-only fetch for API
func (s *Service) GetSnapshot(
	ctx context.Context,
	category string,
	region string,
) (*Snapshot, error) {
	return s.repo.GetSnapshot(ctx, category, region)
}

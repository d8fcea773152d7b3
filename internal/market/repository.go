package market

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) UpsertSnapshot(ctx context.Context, s Snapshot) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO market_snapshots
			(category, region, avg_price, median_price, sample_size)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (category, region)
		DO UPDATE SET
			avg_price = $3,
			median_price = $4,
			sample_size = $5,
			updated_at = CURRENT_TIMESTAMP
	`, s.Category, s.Region, s.AvgPrice, s.MedianPrice, s.SampleSize)
	return err
}

func (r *Repository) GetSnapshot(ctx context.Context, category, region string) (*Snapshot, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, category, region, avg_price, median_price, sample_size, created_at, updated_at
		FROM market_snapshots
		WHERE category = $1 AND region = $2
	`, category, region)

	s := &Snapshot{}
	err := row.Scan(
		&s.ID, &s.Category, &s.Region,
		&s.AvgPrice, &s.MedianPrice, &s.SampleSize,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, errors.New("snapshot not found")
	}
	return s, nil
}

// ListObservedPairs returns every (category, region) pair present
// in price_history, so the worker knows what to recompute.
func (r *Repository) ListObservedPairs(ctx context.Context) ([][2]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT category, region FROM price_history
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs [][2]string
	for rows.Next() {
		var category, region string
		if err := rows.Scan(&category, &region); err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]string{category, region})
	}
	return pairs, nil
}

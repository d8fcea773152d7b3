package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ProductSeries(
	ctx context.Context,
	productID string,
	days int,
) ([]float64, []time.Time, error) {

	rows, err := r.db.Query(ctx, `
		SELECT price, observed_on
		FROM price_history
		WHERE product_id = $1
			AND observed_on >= CURRENT_DATE - $2
		ORDER BY observed_on ASC
	`, productID, days)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var prices []float64
	var dates []time.Time

	for rows.Next() {
		var price float64
		var observed time.Time
		if err := rows.Scan(&price, &observed); err != nil {
			return nil, nil, err
		}
		prices = append(prices, price)
		dates = append(dates, observed)
	}
	return prices, dates, rows.Err()
}

func (r *PostgresRepository) MonthlyBuckets(
	ctx context.Context,
	productID string,
) ([]MonthlyBucket, error) {

	rows, err := r.db.Query(ctx, `
		SELECT EXTRACT(MONTH FROM observed_on)::int, price
		FROM price_history
		WHERE product_id = $1
		ORDER BY observed_on ASC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byMonth := map[int][]float64{}
	for rows.Next() {
		var month int
		var price float64
		if err := rows.Scan(&month, &price); err != nil {
			return nil, err
		}
		byMonth[month] = append(byMonth[month], price)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	months := make([]int, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Ints(months)

	buckets := make([]MonthlyBucket, 0, len(months))
	for _, m := range months {
		buckets = append(buckets, MonthlyBucket{Month: m, Prices: byMonth[m]})
	}
	return buckets, nil
}

// PairedSeries joins the two products' daily averages so only days
// with observations for both enter the elasticity calculation.
func (r *PostgresRepository) PairedSeries(
	ctx context.Context,
	productA string,
	productB string,
	days int,
) ([]float64, []float64, error) {

	rows, err := r.db.Query(ctx, `
		SELECT a.price, b.price
		FROM (
			SELECT observed_on, AVG(price) AS price
			FROM price_history
			WHERE product_id = $1
				AND observed_on >= CURRENT_DATE - $3
			GROUP BY observed_on
		) a
		JOIN (
			SELECT observed_on, AVG(price) AS price
			FROM price_history
			WHERE product_id = $2
				AND observed_on >= CURRENT_DATE - $3
			GROUP BY observed_on
		) b ON a.observed_on = b.observed_on
		ORDER BY a.observed_on ASC
	`, productA, productB, days)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var seriesA, seriesB []float64
	for rows.Next() {
		var pa, pb float64
		if err := rows.Scan(&pa, &pb); err != nil {
			return nil, nil, err
		}
		seriesA = append(seriesA, pa)
		seriesB = append(seriesB, pb)
	}
	return seriesA, seriesB, rows.Err()
}

func (r *PostgresRepository) MarketObservations(
	ctx context.Context,
	category string,
	region string,
) ([]MarketObservation, error) {

	rows, err := r.db.Query(ctx, `
		SELECT u.name, AVG(oi.unit_price), COALESCE(SUM(oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		JOIN users u ON u.id = p.seller_id
		WHERE o.status = 'DELIVERED'
			AND p.category = $1
			AND p.region = $2
		GROUP BY u.name
	`, category, region)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MarketObservation
	for rows.Next() {
		var o MarketObservation
		var volume int
		if err := rows.Scan(&o.Market, &o.AveragePrice, &volume); err != nil {
			return nil, err
		}
		o.Volume = float64(volume)
		out = append(out, o)
	}
	return out, rows.Err()
}

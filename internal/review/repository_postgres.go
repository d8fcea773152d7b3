package review

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, review *Review) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO reviews (product_id, buyer_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, review.ProductID, review.BuyerID, review.Rating, review.Comment)

	return row.Scan(&review.ID, &review.CreatedAt)
}

func (r *PostgresRepository) ExistsForBuyer(ctx context.Context, productID, buyerID string) (bool, error) {
	row := r.db.QueryRow(ctx, `
		SELECT 1 FROM reviews
		WHERE product_id = $1 AND buyer_id = $2
		LIMIT 1
	`, productID, buyerID)

	var one int
	if err := row.Scan(&one); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresRepository) ListByProduct(ctx context.Context, productID string) ([]Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, buyer_id, rating, COALESCE(comment, ''), created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var review Review
		err := rows.Scan(
			&review.ID, &review.ProductID, &review.BuyerID,
			&review.Rating, &review.Comment, &review.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (r *PostgresRepository) HasDeliveredPurchase(ctx context.Context, buyerID, productID string) (bool, error) {
	row := r.db.QueryRow(ctx, `
		SELECT 1
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.buyer_id = $1
			AND oi.product_id = $2
			AND o.status = 'DELIVERED'
		LIMIT 1
	`, buyerID, productID)

	var one int
	if err := row.Scan(&one); err != nil {
		return false, nil
	}
	return true, nil
}

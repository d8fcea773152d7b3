package cart

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

func (r *PostgresRepository) Upsert(ctx context.Context, buyerID, productID string, quantity int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO cart_items (buyer_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (buyer_id, product_id)
		DO UPDATE SET quantity = $3, updated_at = CURRENT_TIMESTAMP
	`, buyerID, productID, quantity)
	return err
}

func (r *PostgresRepository) UpdateQuantity(ctx context.Context, buyerID, productID string, quantity int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE cart_items
		SET quantity = $1, updated_at = CURRENT_TIMESTAMP
		WHERE buyer_id = $2 AND product_id = $3
	`, quantity, buyerID, productID)
	return err
}

func (r *PostgresRepository) Remove(ctx context.Context, buyerID, productID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM cart_items
		WHERE buyer_id = $1 AND product_id = $2
	`, buyerID, productID)
	return err
}

func (r *PostgresRepository) ListByBuyer(ctx context.Context, buyerID string) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, buyer_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE buyer_id = $1
		ORDER BY id
	`, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		err := rows.Scan(
			&item.ID, &item.BuyerID, &item.ProductID,
			&item.Quantity, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresRepository) Clear(ctx context.Context, buyerID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE buyer_id = $1`, buyerID)
	return err
}

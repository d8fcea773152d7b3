package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateWithItems(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (id, buyer_id, status, total)
		VALUES ($1, $2, $3, $4)
	`, o.ID, o.BuyerID, o.Status, o.Total)
	if err != nil {
		return err
	}

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID

		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, seller_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4, $5)
		`, item.OrderID, item.ProductID, item.SellerID, item.Quantity, item.UnitPrice)
		if err != nil {
			return err
		}

		// Guard against concurrent checkouts oversubscribing stock.
		tag, err := tx.Exec(ctx, `
			UPDATE products
			SET stock = stock - $1, updated_at = CURRENT_TIMESTAMP
			WHERE id = $2 AND stock >= $1
		`, item.Quantity, item.ProductID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errors.New("not enough stock")
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Order, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, buyer_id, status, total, created_at, updated_at
		FROM orders WHERE id = $1
	`, id)

	o := &Order{}
	err := row.Scan(&o.ID, &o.BuyerID, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, errors.New("order not found")
	}

	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *PostgresRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error) {
	return r.list(ctx, `
		SELECT id, buyer_id, status, total, created_at, updated_at
		FROM orders
		WHERE buyer_id = $1
		ORDER BY created_at DESC
	`, buyerID)
}

func (r *PostgresRepository) ListBySeller(ctx context.Context, sellerID string) ([]*Order, error) {
	return r.list(ctx, `
		SELECT DISTINCT o.id, o.buyer_id, o.status, o.total, o.created_at, o.updated_at
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE oi.seller_id = $1
		ORDER BY o.created_at DESC
	`, sellerID)
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, status, id)
	return err
}

func (r *PostgresRepository) HasSellerItems(ctx context.Context, orderID, sellerID string) (bool, error) {
	row := r.db.QueryRow(ctx, `
		SELECT 1 FROM order_items
		WHERE order_id = $1 AND seller_id = $2
		LIMIT 1
	`, orderID, sellerID)

	var one int
	if err := row.Scan(&one); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresRepository) RecordPrices(ctx context.Context, orderID string) error {
	// Delivered unit prices become price-history observations.
	_, err := r.db.Exec(ctx, `
		INSERT INTO price_history (product_id, category, region, price, observed_on)
		SELECT oi.product_id, p.category, p.region, oi.unit_price, CURRENT_DATE
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
	`, orderID)
	return err
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

func (r *PostgresRepository) list(ctx context.Context, query, arg string) ([]*Order, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		err := rows.Scan(&o.ID, &o.BuyerID, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	for _, o := range orders {
		if err := r.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, o *Order) error {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_id, seller_id, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item Item
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID,
			&item.SellerID, &item.Quantity, &item.UnitPrice,
		)
		if err != nil {
			return err
		}
		o.Items = append(o.Items, item)
	}
	return nil
}

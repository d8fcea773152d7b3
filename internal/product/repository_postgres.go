package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO products
			(id, seller_id, name, category, description, unit, price_per_unit, stock, region, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		p.ID, p.SellerID, p.Name, p.Category, p.Description,
		p.Unit, p.PricePerUnit, p.Stock, p.Region, p.Status,
	)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, p *Product) error {
	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $1,
			category = $2,
			description = $3,
			unit = $4,
			price_per_unit = $5,
			stock = $6,
			region = $7,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
	`,
		p.Name, p.Category, p.Description, p.Unit,
		p.PricePerUnit, p.Stock, p.Region, p.ID,
	)
	return err
}

const productSelect = `
	SELECT
		p.id, p.seller_id, p.name, p.category, COALESCE(p.description, ''),
		p.unit, p.price_per_unit, p.stock, p.region, p.status,
		p.created_at, p.updated_at,
		COALESCE(AVG(rv.rating), 0),
		COUNT(rv.id)
	FROM products p
	LEFT JOIN reviews rv ON rv.product_id = p.id
`

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRow(ctx, productSelect+`
		WHERE p.id = $1
		GROUP BY p.id
	`, id)

	p := &Product{}
	err := row.Scan(
		&p.ID, &p.SellerID, &p.Name, &p.Category, &p.Description,
		&p.Unit, &p.PricePerUnit, &p.Stock, &p.Region, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
		&p.AvgRating, &p.ReviewCount,
	)
	if err != nil {
		return nil, errors.New("product not found")
	}

	if err := r.loadImages(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) List(ctx context.Context, category, region string) ([]*Product, error) {
	// Empty filter values match everything.
	rows, err := r.db.Query(ctx, productSelect+`
		WHERE p.status = 'ACTIVE'
			AND ($1 = '' OR p.category = $1)
			AND ($2 = '' OR p.region = $2)
		GROUP BY p.id
		ORDER BY p.created_at DESC
	`, category, region)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanProducts(ctx, rows)
}

func (r *PostgresRepository) ListBySeller(ctx context.Context, sellerID string) ([]*Product, error) {
	rows, err := r.db.Query(ctx, productSelect+`
		WHERE p.seller_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC
	`, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanProducts(ctx, rows)
}

func (r *PostgresRepository) SetStatus(ctx context.Context, id, status string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE products
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`, status, id)
	return err
}

func (r *PostgresRepository) AddImage(ctx context.Context, productID, imageURL string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO product_images (product_id, image_url)
		VALUES ($1, $2)
	`, productID, imageURL)
	return err
}

// --------------------------------------------------
// helpers
// --------------------------------------------------

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
}

func (r *PostgresRepository) scanProducts(ctx context.Context, rows rowScanner) ([]*Product, error) {
	var products []*Product

	for rows.Next() {
		p := &Product{}
		err := rows.Scan(
			&p.ID, &p.SellerID, &p.Name, &p.Category, &p.Description,
			&p.Unit, &p.PricePerUnit, &p.Stock, &p.Region, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
			&p.AvgRating, &p.ReviewCount,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	for _, p := range products {
		if err := r.loadImages(ctx, p); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (r *PostgresRepository) loadImages(ctx context.Context, p *Product) error {
	rows, err := r.db.Query(ctx, `
		SELECT image_url FROM product_images
		WHERE product_id = $1
		ORDER BY id
	`, p.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return err
		}
		p.Images = append(p.Images, url)
	}
	return nil
}

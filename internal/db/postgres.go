package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(pool); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return pool
}

// initSchema creates or updates the database schema
func initSchema(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'BUYER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, usersSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRODUCTS
	// -------------------------------
	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			seller_id UUID NOT NULL REFERENCES users(id),
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL,
			description TEXT,
			unit VARCHAR(50) NOT NULL,
			price_per_unit NUMERIC(12,2) NOT NULL,
			stock INT NOT NULL DEFAULT 0,
			region VARCHAR(100) NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'ACTIVE',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, productsSQL); err != nil {
		return err
	}

	productImagesSQL := `
		CREATE TABLE IF NOT EXISTS product_images (
			id SERIAL PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id),
			image_url VARCHAR(500) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, productImagesSQL); err != nil {
		return err
	}

	// -------------------------------
	// CART
	// -------------------------------
	cartSQL := `
		CREATE TABLE IF NOT EXISTS cart_items (
			id SERIAL PRIMARY KEY,
			buyer_id UUID NOT NULL REFERENCES users(id),
			product_id UUID NOT NULL REFERENCES products(id),
			quantity INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (buyer_id, product_id)
		)
	`
	if _, err := pool.Exec(ctx, cartSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			buyer_id UUID NOT NULL REFERENCES users(id),
			status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
			total NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	orderItemsSQL := `
		CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id),
			product_id UUID NOT NULL REFERENCES products(id),
			seller_id UUID NOT NULL REFERENCES users(id),
			quantity INT NOT NULL,
			unit_price NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, orderItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// REVIEWS
	// -------------------------------
	reviewsSQL := `
		CREATE TABLE IF NOT EXISTS reviews (
			id SERIAL PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id),
			buyer_id UUID NOT NULL REFERENCES users(id),
			rating INT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comment TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (product_id, buyer_id)
		)
	`
	if _, err := pool.Exec(ctx, reviewsSQL); err != nil {
		return err
	}

	// -------------------------------
	// NOTIFICATIONS
	// -------------------------------
	notificationsSQL := `
		CREATE TABLE IF NOT EXISTS notifications (
			id SERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id),
			type VARCHAR(50) NOT NULL,
			message TEXT NOT NULL,
			read BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, notificationsSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRICE HISTORY + MARKET SNAPSHOTS
	// -------------------------------
	priceHistorySQL := `
		CREATE TABLE IF NOT EXISTS price_history (
			id SERIAL PRIMARY KEY,
			product_id UUID NOT NULL REFERENCES products(id),
			category VARCHAR(100) NOT NULL,
			region VARCHAR(100) NOT NULL,
			price NUMERIC(12,2) NOT NULL,
			observed_on DATE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := pool.Exec(ctx, priceHistorySQL); err != nil {
		return err
	}

	snapshotsSQL := `
		CREATE TABLE IF NOT EXISTS market_snapshots (
			id SERIAL PRIMARY KEY,
			category VARCHAR(100) NOT NULL,
			region VARCHAR(100) NOT NULL,
			avg_price NUMERIC(12,2) NOT NULL,
			median_price NUMERIC(12,2) NOT NULL,
			sample_size INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (category, region)
		)
	`
	if _, err := pool.Exec(ctx, snapshotsSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}

package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/grpkarunathilaka/the-restaurant-website/internal/catalog"
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

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema and seed the catalog
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}
	if err := seedCatalog(db); err != nil {
		log.Fatal("Failed to seed catalog:", err)
	}

	return db
}

// initSchema creates the catalog tables
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// MENU CATEGORIES
	// -------------------------------
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS menu_categories (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			icon VARCHAR(16) NOT NULL DEFAULT '',
			position SERIAL
		)
	`
	if _, err := db.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	itemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id INT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(8,2) NOT NULL CHECK (price >= 0),
			category VARCHAR(50) NOT NULL REFERENCES menu_categories(id),
			spice_level INT NOT NULL DEFAULT 0 CHECK (spice_level BETWEEN 0 AND 4),
			vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
			vegan BOOLEAN NOT NULL DEFAULT FALSE,
			gluten_free BOOLEAN NOT NULL DEFAULT FALSE,
			popular BOOLEAN NOT NULL DEFAULT FALSE
		)
	`
	if _, err := db.Exec(ctx, itemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// DELIVERY AREAS
	// -------------------------------
	areasSQL := `
		CREATE TABLE IF NOT EXISTS delivery_areas (
			postcode VARCHAR(4) PRIMARY KEY,
			suburb VARCHAR(100) NOT NULL,
			delivery_fee NUMERIC(6,2) NOT NULL CHECK (delivery_fee >= 0),
			estimated_time VARCHAR(50) NOT NULL
		)
	`
	if _, err := db.Exec(ctx, areasSQL); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}

// seedCatalog inserts the restaurant's catalog, skipping rows that are
// already present so restarts are idempotent.
func seedCatalog(db *pgxpool.Pool) error {
	ctx := context.Background()

	for _, c := range catalog.SeedCategories() {
		_, err := db.Exec(ctx, `
			INSERT INTO menu_categories (id, name, icon)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.Name, c.Icon)
		if err != nil {
			return err
		}
	}

	for _, item := range catalog.SeedMenuItems() {
		_, err := db.Exec(ctx, `
			INSERT INTO menu_items
				(id, name, description, price, category,
				 spice_level, vegetarian, vegan, gluten_free, popular)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO NOTHING
		`, item.ID, item.Name, item.Description, item.Price, item.Category,
			item.SpiceLevel, item.Vegetarian, item.Vegan, item.GlutenFree, item.Popular)
		if err != nil {
			return err
		}
	}

	for _, area := range catalog.SeedDeliveryAreas() {
		_, err := db.Exec(ctx, `
			INSERT INTO delivery_areas (postcode, suburb, delivery_fee, estimated_time)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (postcode) DO NOTHING
		`, area.Postcode, area.Suburb, area.DeliveryFee, area.EstimatedTime)
		if err != nil {
			return err
		}
	}

	return nil
}

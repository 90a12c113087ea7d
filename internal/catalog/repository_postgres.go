package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListMenuItems(ctx context.Context) ([]MenuItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, category,
		       spice_level, vegetarian, vegan, gluten_free, popular
		FROM menu_items
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem
	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Category,
			&item.SpiceLevel,
			&item.Vegetarian,
			&item.Vegan,
			&item.GlutenFree,
			&item.Popular,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) FindMenuItem(ctx context.Context, id int) (MenuItem, error) {
	var item MenuItem
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, price, category,
		       spice_level, vegetarian, vegan, gluten_free, popular
		FROM menu_items
		WHERE id = $1
	`, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Category,
		&item.SpiceLevel,
		&item.Vegetarian,
		&item.Vegan,
		&item.GlutenFree,
		&item.Popular,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return MenuItem{}, ErrItemNotFound
	}
	if err != nil {
		return MenuItem{}, err
	}
	return item, nil
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]MenuCategory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, icon
		FROM menu_categories
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []MenuCategory
	for rows.Next() {
		var c MenuCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) ListDeliveryAreas(ctx context.Context) ([]DeliveryArea, error) {
	rows, err := r.db.Query(ctx, `
		SELECT suburb, postcode, delivery_fee, estimated_time
		FROM delivery_areas
		ORDER BY postcode
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var areas []DeliveryArea
	for rows.Next() {
		var a DeliveryArea
		if err := rows.Scan(&a.Suburb, &a.Postcode, &a.DeliveryFee, &a.EstimatedTime); err != nil {
			return nil, err
		}
		areas = append(areas, a)
	}
	return areas, rows.Err()
}

package catalog

import (
	"context"
	"errors"
)

var ErrItemNotFound = errors.New("menu item not found")

type Repository interface {
	ListMenuItems(ctx context.Context) ([]MenuItem, error)
	FindMenuItem(ctx context.Context, id int) (MenuItem, error)
	ListCategories(ctx context.Context) ([]MenuCategory, error)
	ListDeliveryAreas(ctx context.Context) ([]DeliveryArea, error)
}

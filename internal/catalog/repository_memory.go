package catalog

import "context"

// InMemoryRepository serves the restaurant's catalog from seed data.
// Used when no DATABASE_URL is configured, and as a test fixture.
type InMemoryRepository struct {
	items      []MenuItem
	categories []MenuCategory
	areas      []DeliveryArea
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:      SeedMenuItems(),
		categories: SeedCategories(),
		areas:      SeedDeliveryAreas(),
	}
}

func (r *InMemoryRepository) ListMenuItems(ctx context.Context) ([]MenuItem, error) {
	items := make([]MenuItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *InMemoryRepository) FindMenuItem(ctx context.Context, id int) (MenuItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return MenuItem{}, ErrItemNotFound
}

func (r *InMemoryRepository) ListCategories(ctx context.Context) ([]MenuCategory, error) {
	categories := make([]MenuCategory, len(r.categories))
	copy(categories, r.categories)
	return categories, nil
}

func (r *InMemoryRepository) ListDeliveryAreas(ctx context.Context) ([]DeliveryArea, error) {
	areas := make([]DeliveryArea, len(r.areas))
	copy(areas, r.areas)
	return areas, nil
}

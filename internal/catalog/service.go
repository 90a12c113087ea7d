package catalog

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Menu listing (optionally filtered by category)
// --------------------------------------------------
func (s *Service) MenuItems(ctx context.Context, category string) ([]MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return items, nil
	}

	filtered := []MenuItem{}
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *Service) FindItem(ctx context.Context, id int) (MenuItem, error) {
	return s.repo.FindMenuItem(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]MenuCategory, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) DeliveryAreas(ctx context.Context) ([]DeliveryArea, error) {
	return s.repo.ListDeliveryAreas(ctx)
}

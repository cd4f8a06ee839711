package services

import (
	"context"
	"log/slog"

	"food-delivery-internal/models"
	"food-delivery-internal/store"
)

// MenuService serves restaurant menus with the static sample menus as
// fallback.
type MenuService struct {
	store *store.Store
	log   *slog.Logger
}

func NewMenuService(st *store.Store, log *slog.Logger) *MenuService {
	return &MenuService{store: st, log: log}
}

// GetMenu returns the full menu for a restaurant. An unknown id yields a
// menu with an empty item list, never an error.
func (s *MenuService) GetMenu(ctx context.Context, restaurantID string) models.Menu {
	live, answered := s.store.FindMenuItems(ctx, restaurantID, "")
	items := resolveList(answered, live, sampleMenu(restaurantID))
	if items == nil {
		items = []models.MenuItem{}
	}
	return models.Menu{RestaurantID: restaurantID, Items: items}
}

// GetByCategory returns the restaurant's menu items with an exact category
// match. Unknown restaurant/category combinations yield an empty slice.
func (s *MenuService) GetByCategory(ctx context.Context, restaurantID, category string) []models.MenuItem {
	live, answered := s.store.FindMenuItems(ctx, restaurantID, category)
	items := resolveList(answered, live, sampleMenuByCategory(restaurantID, category))
	if items == nil {
		items = []models.MenuItem{}
	}
	return items
}

func sampleMenuByCategory(restaurantID, category string) []models.MenuItem {
	var items []models.MenuItem
	for _, item := range sampleMenu(restaurantID) {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

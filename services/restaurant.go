package services

import (
	"context"
	"log/slog"

	"food-delivery-internal/models"
	"food-delivery-internal/store"
)

// RestaurantService serves restaurant listings and lookups with the static
// sample set as fallback.
type RestaurantService struct {
	store *store.Store
	log   *slog.Logger
}

func NewRestaurantService(st *store.Store, log *slog.Logger) *RestaurantService {
	return &RestaurantService{store: st, log: log}
}

// List returns restaurants matching the optional filters. When the store
// does not answer, or answers with nothing, the full sample set is served
// unfiltered.
func (s *RestaurantService) List(ctx context.Context, cuisine string, minRating float64, search string) []models.Restaurant {
	filter := store.RestaurantFilter{
		Cuisine:   cuisine,
		MinRating: minRating,
		Search:    search,
	}
	live, answered := s.store.FindRestaurants(ctx, filter)
	if !answered || len(live) == 0 {
		s.log.Debug("serving sample restaurants", "storeAnswered", answered)
	}
	return resolveList(answered, live, sampleRestaurants())
}

// GetByID returns the restaurant with the given id, or nil when it exists in
// neither the store nor the samples.
func (s *RestaurantService) GetByID(ctx context.Context, id string) *models.Restaurant {
	live, answered := s.store.FindRestaurantByID(ctx, id)
	return resolveOne(answered, live, sampleRestaurantByID(id))
}

func sampleRestaurantByID(id string) *models.Restaurant {
	for _, r := range sampleRestaurants() {
		if r.ID == id {
			return &r
		}
	}
	return nil
}

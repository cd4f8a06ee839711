package store

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"food-delivery-internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	queryTimeout = 5 * time.Second

	// Listing caps bound response size; callers must not assume
	// completeness beyond them.
	maxRestaurants = 50
	maxMenuItems   = 100
)

// Store wraps the single process-wide MongoDB handle. The handle may be
// absent (unconfigured or unreachable store); every lookup then reports
// answered=false instead of failing.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    *slog.Logger
}

// New establishes the store connection once at startup. A missing URI or a
// failed connect/ping is not fatal: the returned Store simply runs detached
// and every query degrades to the sample path.
func New(ctx context.Context, uri string, log *slog.Logger) *Store {
	s := &Store{log: log}
	if uri == "" {
		log.Warn("MONGODB_URI not set - running in sample-only mode")
		return s
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(queryTimeout))
	if err != nil {
		log.Error("mongodb connect failed", "error", err)
		return s
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Error("mongodb ping failed", "error", err)
		_ = client.Disconnect(context.Background())
		return s
	}

	s.client = client
	s.db = client.Database("food_delivery")
	log.Info("mongodb connected", "database", s.db.Name())
	return s
}

// Available reports whether the store handle is set.
func (s *Store) Available() bool {
	return s.db != nil
}

// Close releases the connection at shutdown.
func (s *Store) Close(ctx context.Context) {
	if s.client == nil {
		return
	}
	if err := s.client.Disconnect(ctx); err != nil {
		s.log.Error("mongodb disconnect failed", "error", err)
		return
	}
	s.log.Info("mongodb connection closed")
}

// FindRestaurants lists restaurants matching the filter, sorted by rating
// descending. The bool reports whether the store answered: false means the
// handle is unset or the query failed, and the result is meaningless.
func (s *Store) FindRestaurants(ctx context.Context, filter RestaurantFilter) ([]models.Restaurant, bool) {
	if s.db == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(maxRestaurants)
	cursor, err := s.db.Collection("restaurants").Find(ctx, filter.Query(), opts)
	if err != nil {
		s.log.Error("restaurant query failed", "error", err)
		return nil, false
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		s.log.Error("restaurant decode failed", "error", err)
		return nil, false
	}
	return restaurants, true
}

// FindRestaurantByID looks up a single restaurant. answered=true with a nil
// restaurant means the store was reachable but holds no such document.
func (s *Store) FindRestaurantByID(ctx context.Context, id string) (*models.Restaurant, bool) {
	if s.db == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var restaurant models.Restaurant
	err := s.db.Collection("restaurants").FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, true
	}
	if err != nil {
		s.log.Error("restaurant lookup failed", "id", id, "error", err)
		return nil, false
	}
	return &restaurant, true
}

// FindMenuItems lists available menu items for a restaurant, optionally
// narrowed to an exact category.
func (s *Store) FindMenuItems(ctx context.Context, restaurantID, category string) ([]models.MenuItem, bool) {
	if s.db == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := bson.M{
		"restaurantId": restaurantID,
		"isAvailable":  true,
	}
	if category != "" {
		query["category"] = category
	}

	cursor, err := s.db.Collection("menuItems").Find(ctx, query, options.Find().SetLimit(maxMenuItems))
	if err != nil {
		s.log.Error("menu query failed", "restaurantId", restaurantID, "error", err)
		return nil, false
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		s.log.Error("menu decode failed", "restaurantId", restaurantID, "error", err)
		return nil, false
	}
	return items, true
}

package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RestaurantFilter carries the optional listing constraints. A zero value
// means the constraint is absent; MinRating 0 is treated as unset since the
// rating scale starts above it for any meaningful bound.
type RestaurantFilter struct {
	Cuisine   string
	MinRating float64
	Search    string
}

// Query translates the filter into a store-native expression. Only active
// restaurants are ever eligible. Parameterization is the driver's job: this
// never interpolates a raw query string.
func (f RestaurantFilter) Query() bson.M {
	query := bson.M{"isActive": true}

	if f.Cuisine != "" {
		// cuisine is an array field, equality is a membership test
		query["cuisine"] = f.Cuisine
	}
	if f.MinRating > 0 {
		query["rating"] = bson.M{"$gte": f.MinRating}
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: f.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}
	return query
}

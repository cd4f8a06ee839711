package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEmptyFilterOnlyRequiresActive(t *testing.T) {
	q := RestaurantFilter{}.Query()

	require.Equal(t, bson.M{"isActive": true}, q)
}

func TestZeroRatingIsUnset(t *testing.T) {
	q := RestaurantFilter{MinRating: 0}.Query()

	require.NotContains(t, q, "rating")
}

func TestFullFilter(t *testing.T) {
	q := RestaurantFilter{
		Cuisine:   "Italian",
		MinRating: 4.0,
		Search:    "pizza",
	}.Query()

	require.Equal(t, true, q["isActive"])
	require.Equal(t, "Italian", q["cuisine"])
	require.Equal(t, bson.M{"$gte": 4.0}, q["rating"])

	or, ok := q["$or"].(bson.A)
	require.True(t, ok, "$or must be a bson array")
	require.Len(t, or, 2)
	require.Equal(t, bson.M{"name": primitive.Regex{Pattern: "pizza", Options: "i"}}, or[0])
	require.Equal(t, bson.M{"description": primitive.Regex{Pattern: "pizza", Options: "i"}}, or[1])
}

func TestSearchOnlyFilter(t *testing.T) {
	q := RestaurantFilter{Search: "dosa"}.Query()

	require.NotContains(t, q, "cuisine")
	require.NotContains(t, q, "rating")
	require.Contains(t, q, "$or")
}

package services

import "food-delivery-internal/models"

// Static sample data served whenever the store is absent or empty. The
// declaration order is the serving order for listings.

func sampleRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{
			ID:           "res-1",
			Name:         "Spice Garden",
			Description:  "Authentic North Indian cuisine",
			Cuisine:      []string{"Indian", "North Indian"},
			Rating:       4.3,
			TotalRatings: 250,
			ETA:          30,
			IsActive:     true,
			Image:        "https://images.unsplash.com/photo-1585937421612-70a008356fbe",
			Tags:         []string{"Popular", "Fast Delivery"},
			PriceRange:   "$$",
		},
		{
			ID:           "res-2",
			Name:         "Pizza Paradise",
			Description:  "Wood-fired authentic Italian pizzas",
			Cuisine:      []string{"Italian", "Pizza"},
			Rating:       4.5,
			TotalRatings: 380,
			ETA:          25,
			IsActive:     true,
			Image:        "https://images.unsplash.com/photo-1513104890138-7c749659a591",
			Tags:         []string{"Trending", "Premium"},
			PriceRange:   "$$$",
		},
		{
			ID:           "res-3",
			Name:         "Burger Hub",
			Description:  "Gourmet burgers and fries",
			Cuisine:      []string{"American", "Fast Food"},
			Rating:       4.2,
			TotalRatings: 190,
			ETA:          20,
			IsActive:     true,
			Image:        "https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
			Tags:         []string{"Quick Bites"},
			PriceRange:   "$",
		},
		{
			ID:           "res-4",
			Name:         "Saravana Bhavan",
			Description:  "Traditional South Indian delicacies",
			Cuisine:      []string{"South Indian", "Vegetarian"},
			Rating:       4.6,
			TotalRatings: 420,
			ETA:          25,
			IsActive:     true,
			Image:        "https://images.unsplash.com/photo-1589301760014-d929f3979dbc",
			Tags:         []string{"Vegetarian", "Highly Rated"},
			PriceRange:   "$$",
		},
		{
			ID:           "res-5",
			Name:         "Sushi Master",
			Description:  "Fresh Japanese sushi and rolls",
			Cuisine:      []string{"Japanese", "Sushi"},
			Rating:       4.7,
			TotalRatings: 310,
			ETA:          35,
			IsActive:     true,
			Image:        "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351",
			Tags:         []string{"Premium", "Exotic"},
			PriceRange:   "$$$",
		},
		{
			ID:           "res-6",
			Name:         "Taco Fiesta",
			Description:  "Authentic Mexican street food",
			Cuisine:      []string{"Mexican"},
			Rating:       4.1,
			TotalRatings: 150,
			ETA:          28,
			IsActive:     true,
			Image:        "https://images.unsplash.com/photo-1565299585323-38d6b0865b47",
			Tags:         []string{"Spicy", "Street Food"},
			PriceRange:   "$",
		},
	}
}

func sampleMenu(restaurantID string) []models.MenuItem {
	menus := map[string][]models.MenuItem{
		"res-1": {
			{ID: "m1", Name: "Butter Chicken", Description: "Tender chicken in rich tomato gravy", Category: "Main Course", Price: 299, IsVeg: false, IsAvailable: true, RestaurantID: "res-1", RestaurantName: "Spice Garden"},
			{ID: "m2", Name: "Paneer Tikka", Description: "Grilled cottage cheese with spices", Category: "Starters", Price: 199, IsVeg: true, IsAvailable: true, RestaurantID: "res-1", RestaurantName: "Spice Garden"},
			{ID: "m3", Name: "Dal Makhani", Description: "Creamy black lentils", Category: "Main Course", Price: 179, IsVeg: true, IsAvailable: true, RestaurantID: "res-1", RestaurantName: "Spice Garden"},
			{ID: "m4", Name: "Garlic Naan", Description: "Fresh bread with garlic", Category: "Breads", Price: 49, IsVeg: true, IsAvailable: true, RestaurantID: "res-1", RestaurantName: "Spice Garden"},
		},
		"res-2": {
			{ID: "m5", Name: "Margherita Pizza", Description: "Classic tomato and mozzarella", Category: "Pizza", Price: 349, IsVeg: true, IsAvailable: true, RestaurantID: "res-2", RestaurantName: "Pizza Paradise"},
			{ID: "m6", Name: "Pepperoni Pizza", Description: "Loaded with pepperoni", Category: "Pizza", Price: 399, IsVeg: false, IsAvailable: true, RestaurantID: "res-2", RestaurantName: "Pizza Paradise"},
		},
		"res-3": {
			{ID: "m10", Name: "Classic Burger", Description: "Juicy beef patty with fresh veggies", Category: "Burgers", Price: 199, IsVeg: false, IsAvailable: true, RestaurantID: "res-3", RestaurantName: "Burger Hub"},
			{ID: "m11", Name: "Veggie Burger", Description: "Plant-based patty", Category: "Burgers", Price: 179, IsVeg: true, IsAvailable: true, RestaurantID: "res-3", RestaurantName: "Burger Hub"},
		},
		"res-4": {
			{ID: "m7", Name: "Masala Dosa", Description: "Crispy crepe with spiced potatoes", Category: "South Indian", Price: 149, IsVeg: true, IsAvailable: true, RestaurantID: "res-4", RestaurantName: "Saravana Bhavan"},
			{ID: "m8", Name: "Idly Sambar", Description: "Steamed rice cakes with lentil soup", Category: "South Indian", Price: 99, IsVeg: true, IsAvailable: true, RestaurantID: "res-4", RestaurantName: "Saravana Bhavan"},
			{ID: "m9", Name: "Medu Vada", Description: "Crispy lentil donuts", Category: "Snacks", Price: 79, IsVeg: true, IsAvailable: true, RestaurantID: "res-4", RestaurantName: "Saravana Bhavan"},
		},
		"res-5": {
			{ID: "m12", Name: "California Roll", Description: "Crab, avocado, cucumber", Category: "Sushi", Price: 399, IsVeg: false, IsAvailable: true, RestaurantID: "res-5", RestaurantName: "Sushi Master"},
			{ID: "m13", Name: "Veggie Roll", Description: "Fresh vegetables and rice", Category: "Sushi", Price: 299, IsVeg: true, IsAvailable: true, RestaurantID: "res-5", RestaurantName: "Sushi Master"},
		},
		"res-6": {
			{ID: "m14", Name: "Chicken Tacos", Description: "Grilled chicken with salsa", Category: "Tacos", Price: 249, IsVeg: false, IsAvailable: true, RestaurantID: "res-6", RestaurantName: "Taco Fiesta"},
			{ID: "m15", Name: "Bean Burrito", Description: "Wrapped beans with cheese", Category: "Burritos", Price: 199, IsVeg: true, IsAvailable: true, RestaurantID: "res-6", RestaurantName: "Taco Fiesta"},
		},
	}
	return menus[restaurantID]
}

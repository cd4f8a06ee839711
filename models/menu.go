package models

// MenuItem mirrors a document in the "menuItems" collection. RestaurantName
// is a denormalized display field carried by the sample data; store documents
// may omit it.
type MenuItem struct {
	ID             string   `bson:"_id" json:"id"`
	RestaurantID   string   `bson:"restaurantId" json:"restaurantId"`
	Name           string   `bson:"name" json:"name"`
	Description    string   `bson:"description,omitempty" json:"description,omitempty"`
	Category       string   `bson:"category" json:"category"`
	Price          float64  `bson:"price" json:"price"`
	Image          string   `bson:"image,omitempty" json:"image,omitempty"`
	IsVeg          bool     `bson:"isVeg" json:"isVeg"`
	IsAvailable    bool     `bson:"isAvailable" json:"isAvailable"`
	Tags           []string `bson:"tags,omitempty" json:"tags,omitempty"`
	RestaurantName string   `bson:"restaurantName,omitempty" json:"restaurantName,omitempty"`
}

// Menu is the wire shape of a full restaurant menu.
type Menu struct {
	RestaurantID string     `json:"restaurantId"`
	Items        []MenuItem `json:"items"`
}

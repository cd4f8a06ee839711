package models

// Address is a postal address sub-document.
type Address struct {
	Line1   string `bson:"line1" json:"line1"`
	Line2   string `bson:"line2,omitempty" json:"line2,omitempty"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Pincode string `bson:"pincode" json:"pincode"`
}

// Contact holds optional restaurant contact details.
type Contact struct {
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
}

// Restaurant mirrors a document in the "restaurants" collection.
// JSON field names follow the gateway contract (camelCase).
type Restaurant struct {
	ID           string   `bson:"_id" json:"id"`
	Name         string   `bson:"name" json:"name"`
	Description  string   `bson:"description,omitempty" json:"description,omitempty"`
	Cuisine      []string `bson:"cuisine" json:"cuisine"`
	Rating       float64  `bson:"rating" json:"rating"`
	TotalRatings int      `bson:"totalRatings" json:"totalRatings"`
	ETA          int      `bson:"eta" json:"eta"`
	Address      *Address `bson:"address,omitempty" json:"address,omitempty"`
	Contact      *Contact `bson:"contact,omitempty" json:"contact,omitempty"`
	IsActive     bool     `bson:"isActive" json:"isActive"`
	Image        string   `bson:"image,omitempty" json:"image,omitempty"`
	Tags         []string `bson:"tags,omitempty" json:"tags,omitempty"`
	PriceRange   string   `bson:"priceRange" json:"priceRange"`
}

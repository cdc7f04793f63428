package models

type Product struct {
	ID       string  `bson:"_id,omitempty"`
	Name     string  `bson:"name"`
	Brand    string  `bson:"brand,omitempty"`
	Category string  `bson:"category,omitempty"`
	Price    float64 `bson:"price"`
	Active   bool    `bson:"active"`

	TimeModel `bson:",inline"`
}

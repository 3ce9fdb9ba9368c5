package model

type Product struct {
	ID    string  `bson:"_id" json:"id"`
	Name  string  `bson:"name,omitempty" json:"name,omitempty"`
	Price float64 `bson:"price,omitempty" json:"price,omitempty"`
}

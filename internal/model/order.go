package model

import "time"

type Order struct {
	ID                   string            `bson:"_id" json:"id"`
	OrderDate            time.Time         `bson:"orderDate" json:"orderDate"`
	Status               string            `bson:"status" json:"status"`
	ClientID             string            `bson:"clientId,omitempty" json:"clientId"`
	ProductIDs           []string          `bson:"productId,omitempty" json:"productId"`
	AdditionalAttributes map[string]string `bson:"additionalAttributes,omitempty" json:"additionalAttributes"`

	// Resolved at read time from the client/product collections, never persisted.
	Client   *Client   `bson:"-" json:"client"`
	Products []Product `bson:"-" json:"products,omitempty"`
}

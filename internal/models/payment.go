package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is an append-only record of a completed purchase. MenuItems holds
// the purchased class id and CartItems the originating class card id, both as
// hex strings supplied by the client.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	ClassName     string             `bson:"className,omitempty" json:"className,omitempty"`
	MenuItems     string             `bson:"menuItems" json:"menuItems"`
	CartItems     string             `bson:"cartItems" json:"cartItems"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

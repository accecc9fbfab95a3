package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ClassCard is a cart entry linking a user to a class they intend to purchase.
// At most one card may exist per selectedClassId.
type ClassCard struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SelectedClassID string             `bson:"selectedClassId" json:"selectedClassId"`
	Email           string             `bson:"email" json:"email"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
}

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class statuses: "pending" -> "approved" or "denied", one-way.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDenied   = "denied"
)

type Class struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	InstructorName  string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	InstructorEmail string             `bson:"InstructorEmail" json:"InstructorEmail"`
	Status          string             `bson:"status" json:"status"`
	Seats           int                `bson:"seats" json:"seats"`
	Enrolled        int                `bson:"enrolled" json:"enrolled"`
	Feedback        string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

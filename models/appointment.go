package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is one treatment in the catalog together with every slot
// it can ever be booked in.
type AppointmentOption struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Price float64            `json:"price" bson:"price"`
	Slots []string           `json:"slots" bson:"slots"`
}

type Specialty struct {
	Name string `json:"name" bson:"name"`
}

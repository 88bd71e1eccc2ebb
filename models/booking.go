package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AppointmentDate string             `json:"appointmentDate" bson:"appointmentDate" binding:"required"`
	TreatmentName   string             `json:"treatmentName" bson:"treatmentName" binding:"required"`
	Patient         string             `json:"patient,omitempty" bson:"patient,omitempty"`
	Email           string             `json:"email" bson:"email" binding:"required,email"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Slot            string             `json:"slot" bson:"slot" binding:"required"`
	Price           float64            `json:"price" bson:"price"`
	Paid            bool               `json:"paid" bson:"paid"`
	TransactionID   string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
}

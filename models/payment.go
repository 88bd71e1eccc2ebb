package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment is written once, when the processor confirms a charge for a booking.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	BookingID     primitive.ObjectID `json:"bookingId" bson:"bookingId"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	Amount        float64            `json:"amount" bson:"amount"`
	Email         string             `json:"email" bson:"email"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

type PaymentInput struct {
	BookingID     string  `json:"bookingId" binding:"required"`
	TransactionID string  `json:"transactionId" binding:"required"`
	Amount        float64 `json:"amount"`
	Email         string  `json:"email"`
}

type PaymentIntentInput struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

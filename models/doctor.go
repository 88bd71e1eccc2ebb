package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Doctor struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" binding:"required"`
	Email     string             `json:"email" bson:"email"`
	Specialty string             `json:"specialty" bson:"specialty" binding:"required"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	Slots     []string           `json:"slots,omitempty" bson:"slots,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	CreatedBy string             `json:"createdBy" bson:"createdBy"`
}

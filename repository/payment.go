package repository

import (
	"context"

	"DoctorsPortal/config/db"
	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentRepository struct {
	coll *mongo.Collection
}

func NewPaymentRepository(store *db.Store) *PaymentRepository {
	return &PaymentRepository{coll: store.OpenCollections(util.PaymentCollection)}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	res, err := db.CreateOne(ctx, r.coll, payment)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

/*
* Payments whose booking exists but is still unpaid
* Joined on the server so paid bookings never leave the store
* Oldest payment first, so it is the one a repair records
 */
func (r *PaymentRepository) FindOrphaned(ctx context.Context) ([]models.Payment, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: util.BookingCollection},
			{Key: "localField", Value: "bookingId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "booking"},
		}}},
		{{Key: "$unwind", Value: "$booking"}},
		{{Key: "$match", Value: bson.D{{Key: "booking.paid", Value: bson.D{{Key: "$ne", Value: true}}}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$project", Value: bson.D{{Key: "booking", Value: 0}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

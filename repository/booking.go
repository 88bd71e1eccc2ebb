package repository

import (
	"context"
	"errors"
	"fmt"

	"DoctorsPortal/config/db"
	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(store *db.Store) *BookingRepository {
	return &BookingRepository{coll: store.OpenCollections(util.BookingCollection)}
}

func (r *BookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := db.FindAll(ctx, r.coll, bson.M{"appointmentDate": date}, &bookings)
	return bookings, err
}

func (r *BookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := db.FindAll(ctx, r.coll, bson.M{"email": email}, &bookings)
	return bookings, err
}

// FindExisting returns bookings of the same email for the same treatment on the same day.
func (r *BookingRepository) FindExisting(ctx context.Context, email, treatmentName, date string) ([]models.Booking, error) {
	filter := bson.M{
		"appointmentDate": date,
		"email":           email,
		"treatmentName":   treatmentName,
	}
	bookings := []models.Booking{}
	err := db.FindAll(ctx, r.coll, filter, &bookings)
	return bookings, err
}

func (r *BookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking := &models.Booking{}
	err := db.FindOne(ctx, r.coll, bson.M{"_id": id}, booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", util.BOOKING_NOT_FOUND, util.ErrNotFound)
	}
	return booking, err
}

// Insert stores the booking and returns its id. A unique index violation is
// reported as util.ErrDuplicate.
func (r *BookingRepository) Insert(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	res, err := db.CreateOne(ctx, r.coll, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, util.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

/*
* Flag an unpaid booking as paid with the processor transaction id
* A booking that is already paid keeps its first transaction id
* Returns whether the document changed
 */
func (r *BookingRepository) MarkPaid(ctx context.Context, id primitive.ObjectID, transactionID string) (bool, error) {
	filter := bson.M{
		"_id":  id,
		"paid": bson.M{"$ne": true},
	}
	update := bson.M{
		"$set": bson.M{
			"paid":          true,
			"transactionId": transactionID,
		},
	}
	res, err := db.UpdateOne(ctx, r.coll, filter, update)
	if err != nil {
		return false, err
	}
	if res.MatchedCount > 0 {
		return true, nil
	}
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, fmt.Errorf("%s: %w", util.BOOKING_NOT_FOUND, util.ErrNotFound)
	}
	return false, nil
}

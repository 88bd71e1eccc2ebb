package migrations

import (
	"context"

	"DoctorsPortal/config/db"
	"DoctorsPortal/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
* Make the store reject a second booking for the same email, treatment and day,
* and a second user with the same email
* Existing duplicates leave that index unbuilt and are logged, nothing is deleted
 */
func CreateUniqueIndexes(ctx context.Context, store *db.Store) error {
	bookings := store.OpenCollections(util.BookingCollection)
	users := store.OpenCollections(util.UserCollection)

	err := createUniqueIndex(ctx, bookings, mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "treatmentName", Value: 1},
			{Key: "appointmentDate", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_booking_per_day"),
	})
	if err != nil {
		return err
	}
	_, err = bookings.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "appointmentDate", Value: 1}},
		Options: options.Index().SetName("booking_date"),
	})
	if err != nil {
		return err
	}
	return createUniqueIndex(ctx, users, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
	})
}

func createUniqueIndex(ctx context.Context, coll *mongo.Collection, model mongo.IndexModel) error {
	_, err := coll.Indexes().CreateOne(ctx, model)
	if mongo.IsDuplicateKeyError(err) {
		log.Warn().
			Err(err).
			Str("collection", coll.Name()).
			Str("index", *model.Options.Name).
			Msg("Duplicate documents exist, unique index skipped until they are resolved")
		return nil
	}
	return err
}

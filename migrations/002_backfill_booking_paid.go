package migrations

import (
	"context"

	"DoctorsPortal/config/db"
	"DoctorsPortal/util"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

func BackfillBookingPaid(ctx context.Context, store *db.Store) error {
	result, err := store.OpenCollections(util.BookingCollection).UpdateMany(
		ctx,
		bson.M{"paid": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"paid": false}},
	)
	if err != nil {
		return err
	}
	log.Info().Int64("modified", result.ModifiedCount).Msg("bookings backfilled with paid flag")
	return nil
}

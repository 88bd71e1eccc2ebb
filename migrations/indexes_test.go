package migrations

import (
	"context"
	"testing"

	"DoctorsPortal/config/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var duplicateKey = mtest.CommandError{
	Code:    11000,
	Name:    "DuplicateKey",
	Message: "E11000 duplicate key error collection: doctorsPortal.users index: uniq_user_email dup key",
}

func TestCreateUniqueIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("all indexes built", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())

		require.NoError(mt, CreateUniqueIndexes(context.Background(), db.New(mt.Client, mt.DB.Name(), false)))
		assert.Len(mt, mt.GetAllStartedEvents(), 3)
	})

	mt.Run("existing duplicates skip the index", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(duplicateKey),
			mtest.CreateSuccessResponse(),
			mtest.CreateCommandErrorResponse(duplicateKey),
		)

		require.NoError(mt, CreateUniqueIndexes(context.Background(), db.New(mt.Client, mt.DB.Name(), false)))
		assert.Len(mt, mt.GetAllStartedEvents(), 3)
	})

	mt.Run("other failures stop", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "not authorized"}))

		err := CreateUniqueIndexes(context.Background(), db.New(mt.Client, mt.DB.Name(), false))
		assert.Error(mt, err)
	})
}

func TestRun_StartsOnDuplicateLegacyData(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("run", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".appointmentOptions"
		mt.AddMockResponses(
			mtest.CreateCommandErrorResponse(duplicateKey),
			mtest.CreateSuccessResponse(),
			mtest.CreateCommandErrorResponse(duplicateKey),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: 6}}),
		)

		require.NoError(mt, Run(context.Background(), db.New(mt.Client, mt.DB.Name(), false)))
	})
}

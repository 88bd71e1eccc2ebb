package repository

import (
	"context"

	"DoctorsPortal/config/db"
	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentOptionRepository struct {
	coll *mongo.Collection
}

func NewAppointmentOptionRepository(store *db.Store) *AppointmentOptionRepository {
	return &AppointmentOptionRepository{coll: store.OpenCollections(util.AppointmentOptionCollection)}
}

func (r *AppointmentOptionRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	opts := []models.AppointmentOption{}
	err := db.FindAll(ctx, r.coll, nil, &opts)
	return opts, err
}

func (r *AppointmentOptionRepository) Specialties(ctx context.Context) ([]models.Specialty, error) {
	names := []models.Specialty{}
	projection := options.Find().SetProjection(bson.M{"name": 1, "_id": 0})
	err := db.FindAll(ctx, r.coll, nil, &names, projection)
	return names, err
}

func (r *AppointmentOptionRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *AppointmentOptionRepository) InsertMany(ctx context.Context, catalog []models.AppointmentOption) error {
	docs := make([]interface{}, 0, len(catalog))
	for _, o := range catalog {
		docs = append(docs, o)
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

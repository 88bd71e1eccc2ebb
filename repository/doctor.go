package repository

import (
	"context"
	"fmt"

	"DoctorsPortal/config/db"
	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository struct {
	coll *mongo.Collection
}

func NewDoctorRepository(store *db.Store) *DoctorRepository {
	return &DoctorRepository{coll: store.OpenCollections(util.DoctorCollection)}
}

func (r *DoctorRepository) Insert(ctx context.Context, doctor *models.Doctor) (primitive.ObjectID, error) {
	res, err := db.CreateOne(ctx, r.coll, doctor)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *DoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := db.FindAll(ctx, r.coll, nil, &doctors)
	return doctors, err
}

func (r *DoctorRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := db.DeleteOne(ctx, r.coll, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", util.DOCTOR_NOT_FOUND, util.ErrNotFound)
	}
	return nil
}

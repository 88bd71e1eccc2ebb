package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"DoctorsPortal/config/db"
	"DoctorsPortal/models"
	"DoctorsPortal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(store *db.Store) *UserRepository {
	return &UserRepository{coll: store.OpenCollections(util.UserCollection)}
}

func (r *UserRepository) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	res, err := db.CreateOne(ctx, r.coll, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, util.ErrDuplicate
		}
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := db.FindAll(ctx, r.coll, nil, &users)
	return users, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	err := db.FindOne(ctx, r.coll, bson.M{"email": email}, user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%s: %w", util.USER_NOT_FOUND, util.ErrNotFound)
	}
	return user, err
}

func (r *UserRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	update := bson.M{
		"$set": bson.M{
			"role":      role,
			"updatedAt": time.Now(),
		},
	}
	res, err := db.UpdateOne(ctx, r.coll, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", util.USER_NOT_FOUND, util.ErrNotFound)
	}
	return nil
}

package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Store owns the process-wide Mongo client. It is opened once at start and
// handed to every repository; Close releases it on shutdown.
type Store struct {
	Client       *mongo.Client
	DB           *mongo.Database
	transactions bool
}

func Connect(ctx context.Context, uri, database string, transactions bool) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	log.Info().Str("database", database).Msg("Database Connected")
	return New(client, database, transactions), nil
}

// New wraps an existing client without pinging it.
func New(client *mongo.Client, database string, transactions bool) *Store {
	return &Store{
		Client:       client,
		DB:           client.Database(database),
		transactions: transactions,
	}
}

func (s *Store) OpenCollections(name string) *mongo.Collection {
	return s.DB.Collection(name)
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

/*
* Run fn inside a multi-document transaction when enabled
* Otherwise run it directly against ctx
* Transactions need a replica set or sharded cluster
 */
func (s *Store) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !s.transactions {
		return fn(ctx)
	}
	session, err := s.Client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

func FindOne(ctx context.Context, coll *mongo.Collection, filter interface{}, out interface{}, opts ...*options.FindOneOptions) error {
	return coll.FindOne(ctx, filter, opts...).Decode(out)
}

// FindAll decodes every matching document into out, which must be a pointer
// to a slice. A nil filter matches everything.
func FindAll(ctx context.Context, coll *mongo.Collection, filter interface{}, out interface{}, opts ...*options.FindOptions) error {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, out)
}

func CreateOne(ctx context.Context, coll *mongo.Collection, doc interface{}) (*mongo.InsertOneResult, error) {
	return coll.InsertOne(ctx, doc)
}

func UpdateOne(ctx context.Context, coll *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return coll.UpdateOne(ctx, filter, update)
}

func DeleteOne(ctx context.Context, coll *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	return coll.DeleteOne(ctx, filter)
}

package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const connectTimeout = 5 * time.Second

// Store owns the Mongo client and the collection handles the repositories
// work against. Opened once at startup, closed at shutdown.
type Store struct {
	Client     *mongo.Client
	Postulants *mongo.Collection
	Companies  *mongo.Collection
	Offers     *mongo.Collection
}

// Connect opens a client for the given URL, verifies connectivity with a
// ping, and binds the named database's collections.
func Connect(url, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	d := client.Database(database)
	s := &Store{
		Client:     client,
		Postulants: d.Collection("Postulant"),
		Companies:  d.Collection("Company"),
		Offers:     d.Collection("Offer"),
	}

	// email is unique within a kind, not across kinds
	emailIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	for _, coll := range []*mongo.Collection{s.Postulants, s.Companies} {
		if _, err := coll.Indexes().CreateOne(ctx, emailIndex); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("ensure email index on %s: %w", coll.Name(), err)
		}
	}
	return s, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

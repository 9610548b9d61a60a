package repository

import (
	"context"
	"fmt"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type OfferRepository struct {
	Coll *mongo.Collection
}

func NewOfferRepository(coll *mongo.Collection) *OfferRepository {
	return &OfferRepository{Coll: coll}
}

func (r *OfferRepository) Create(ctx context.Context, o *model.Offer) (*model.Offer, error) {
	res, err := r.Coll.InsertOne(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("insert offer: %w", err)
	}
	var created model.Offer
	if err := r.Coll.FindOne(ctx, bson.D{{Key: "_id", Value: res.InsertedID}}).Decode(&created); err != nil {
		return nil, fmt.Errorf("read back offer: %w", err)
	}
	return &created, nil
}

// List returns offers, optionally filtered by a case-insensitive title match.
func (r *OfferRepository) List(ctx context.Context, search string) ([]model.Offer, error) {
	filter := bson.D{}
	if search != "" {
		filter = bson.D{{Key: "title", Value: bson.D{
			{Key: "$regex", Value: search},
			{Key: "$options", Value: "i"},
		}}}
	}
	cur, err := r.Coll.Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	list := []model.Offer{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}
	return list, nil
}

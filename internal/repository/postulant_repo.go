package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const listLimit = 1000

type PostulantRepository struct {
	Coll *mongo.Collection
}

func NewPostulantRepository(coll *mongo.Collection) *PostulantRepository {
	return &PostulantRepository{Coll: coll}
}

// Create inserts the postulant and returns the stored document, id included.
func (r *PostulantRepository) Create(ctx context.Context, p *model.Postulant) (*model.Postulant, error) {
	res, err := r.Coll.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert postulant: %w", err)
	}
	var created model.Postulant
	if err := r.Coll.FindOne(ctx, bson.D{{Key: "_id", Value: res.InsertedID}}).Decode(&created); err != nil {
		return nil, fmt.Errorf("read back postulant: %w", err)
	}
	return &created, nil
}

func (r *PostulantRepository) List(ctx context.Context) ([]model.Postulant, error) {
	cur, err := r.Coll.Find(ctx, bson.D{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("list postulants: %w", err)
	}
	list := []model.Postulant{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode postulants: %w", err)
	}
	return list, nil
}

// FindByEmail does an exact, case-sensitive match on the stored email.
func (r *PostulantRepository) FindByEmail(ctx context.Context, email string) (*model.Postulant, error) {
	var p model.Postulant
	err := r.Coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find postulant by email: %w", err)
	}
	return &p, nil
}

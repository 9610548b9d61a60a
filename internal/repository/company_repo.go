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

type CompanyRepository struct {
	Coll *mongo.Collection
}

func NewCompanyRepository(coll *mongo.Collection) *CompanyRepository {
	return &CompanyRepository{Coll: coll}
}

func (r *CompanyRepository) Create(ctx context.Context, c *model.Company) (*model.Company, error) {
	res, err := r.Coll.InsertOne(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}
	var created model.Company
	if err := r.Coll.FindOne(ctx, bson.D{{Key: "_id", Value: res.InsertedID}}).Decode(&created); err != nil {
		return nil, fmt.Errorf("read back company: %w", err)
	}
	return &created, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	cur, err := r.Coll.Find(ctx, bson.D{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	list := []model.Company{}
	if err := cur.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("decode companies: %w", err)
	}
	return list, nil
}

func (r *CompanyRepository) FindByEmail(ctx context.Context, email string) (*model.Company, error) {
	var c model.Company
	err := r.Coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find company by email: %w", err)
	}
	return &c, nil
}

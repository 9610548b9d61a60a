package services

import (
	"context"
	"fmt"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"
)

type OfferStore interface {
	Create(ctx context.Context, o *model.Offer) (*model.Offer, error)
	List(ctx context.Context, search string) ([]model.Offer, error)
}

type OfferService struct {
	Offers OfferStore
}

func NewOfferService(store OfferStore) *OfferService {
	return &OfferService{Offers: store}
}

func (s *OfferService) Publish(ctx context.Context, o *model.Offer) (*model.Offer, error) {
	if o.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if o.Employer == "" {
		return nil, fmt.Errorf("%w: employer is required", ErrInvalidInput)
	}
	return s.Offers.Create(ctx, o)
}

// List returns offers, filtered by title when search is non-empty.
func (s *OfferService) List(ctx context.Context, search string) ([]model.Offer, error) {
	return s.Offers.List(ctx, search)
}

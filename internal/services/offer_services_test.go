package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Magneto-Freelance/magneto-freelance-back/internal/model"

	"github.com/stretchr/testify/require"
)

type fakeOfferStore struct {
	offers []model.Offer
}

func (f *fakeOfferStore) Create(ctx context.Context, o *model.Offer) (*model.Offer, error) {
	f.offers = append(f.offers, *o)
	return o, nil
}

func (f *fakeOfferStore) List(ctx context.Context, search string) ([]model.Offer, error) {
	if search == "" {
		return f.offers, nil
	}
	out := []model.Offer{}
	for _, o := range f.offers {
		if strings.Contains(strings.ToLower(o.Title), strings.ToLower(search)) {
			out = append(out, o)
		}
	}
	return out, nil
}

func TestOfferPublish_RequiresTitleAndEmployer(t *testing.T) {
	svc := NewOfferService(&fakeOfferStore{})

	_, err := svc.Publish(context.Background(), &model.Offer{Employer: "Acme"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Publish(context.Background(), &model.Offer{Title: "Go dev"})
	require.ErrorIs(t, err, ErrInvalidInput)

	o, err := svc.Publish(context.Background(), &model.Offer{Title: "Go dev", Employer: "Acme"})
	require.NoError(t, err)
	require.Equal(t, "Go dev", o.Title)
}

func TestOfferList_PassesSearchThrough(t *testing.T) {
	store := &fakeOfferStore{}
	svc := NewOfferService(store)

	_, err := svc.Publish(context.Background(), &model.Offer{Title: "Senior Go developer", Employer: "Acme"})
	require.NoError(t, err)
	_, err = svc.Publish(context.Background(), &model.Offer{Title: "Accountant", Employer: "Acme"})
	require.NoError(t, err)

	list, err := svc.List(context.Background(), "go")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Senior Go developer", list[0].Title)
}

package service_test

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/offer-catalog-service/internal/model"
	"github.com/maxviazov/offer-catalog-service/internal/repository"
	"github.com/maxviazov/offer-catalog-service/internal/service"
)

type fakeVenueRepo struct{ venues []model.Venue }

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (model.Venue, error) {
	for _, v := range f.venues {
		if v.ID == id {
			return v, nil
		}
	}
	return model.Venue{}, repository.ErrNotFound
}

func (f *fakeVenueRepo) ListByOfferer(_ context.Context, offererID int64) ([]model.Venue, error) {
	var out []model.Venue
	for _, v := range f.venues {
		if v.OffererID == offererID {
			out = append(out, v)
		}
	}
	return out, nil
}

var _ repository.VenueRepository = (*fakeVenueRepo)(nil)

func TestVenueService_ListVenueOptions(t *testing.T) {
	repo := &fakeVenueRepo{venues: []model.Venue{
		{ID: 1, OffererID: 7, Name: "Cinéma du Centre", PublicName: "Le Centre", Street: "2 place du Marché", PostalCode: "69001", City: "Lyon"},
		{ID: 2, OffererID: 7, Name: "Cinéma du Centre", IsVirtual: true},
		{ID: 3, OffererID: 8, Name: "Autre"},
	}}
	svc := service.NewVenueService(repo, zerolog.New(io.Discard))

	opts, err := svc.ListVenueOptions(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, []service.VenueOption{
		{ID: 1, Label: "Le Centre", Address: "2 place du Marché, 69001 Lyon"},
		{ID: 2, Label: "Cinéma du Centre (Offre numérique)"},
	}, opts)

	opts, err = svc.ListVenueOptions(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, opts)

	_, err = svc.ListVenueOptions(context.Background(), 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

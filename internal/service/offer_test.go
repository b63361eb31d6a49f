package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/offer-catalog-service/internal/model"
	"github.com/maxviazov/offer-catalog-service/internal/pagination"
	"github.com/maxviazov/offer-catalog-service/internal/query"
	"github.com/maxviazov/offer-catalog-service/internal/repository"
	"github.com/maxviazov/offer-catalog-service/internal/service"
)

// fakeOfferRepo keeps offers newest first and only understands the status filter.
type fakeOfferRepo struct {
	offers    []model.Offer
	lastQuery repository.OfferQuery
	lastPage  *repository.Page
	err       error
}

func newFakeOfferRepo(n int) *fakeOfferRepo {
	f := &fakeOfferRepo{}
	for id := n; id >= 1; id-- {
		status := model.OfferStatusActive
		if id%2 == 0 {
			status = model.OfferStatusSoldOut
		}
		f.offers = append(f.offers, model.Offer{
			ID:      int64(id),
			VenueID: 1,
			Venue:   model.Venue{ID: 1, Name: "Librairie", Street: "1 rue Lepic", PostalCode: "75018", City: "Paris"},
			Name:    "offer",
			Status:  status,
		})
	}
	return f
}

func (f *fakeOfferRepo) match(q repository.OfferQuery) []model.Offer {
	var out []model.Offer
	for _, o := range f.offers {
		if q.Status != nil && o.Status != *q.Status {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (f *fakeOfferRepo) Count(_ context.Context, q repository.OfferQuery) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.lastQuery = q
	return len(f.match(q)), nil
}

func (f *fakeOfferRepo) List(_ context.Context, q repository.OfferQuery, p repository.Page) (repository.PageResult[model.Offer], error) {
	f.lastPage = &p
	all := f.match(q)
	res := repository.PageResult[model.Offer]{Total: len(all)}
	if p.Offset < len(all) {
		end := p.Offset + p.Limit
		if end > len(all) {
			end = len(all)
		}
		res.Items = all[p.Offset:end]
	}
	return res, nil
}

func (f *fakeOfferRepo) GetByID(_ context.Context, id int64) (model.Offer, error) {
	for _, o := range f.offers {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Offer{}, repository.ErrNotFound
}

var _ repository.OfferRepository = (*fakeOfferRepo)(nil)

type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	f.calls++
	return fn(ctx)
}

var _ repository.TxManager = (*fakeTx)(nil)

func newOfferService(repo repository.OfferRepository, tx repository.TxManager) service.OfferService {
	return service.NewOfferService(repo, tx, service.Paging{}, zerolog.New(io.Discard))
}

func TestOfferService_ListOffers_FirstPage(t *testing.T) {
	repo := newFakeOfferRepo(25)
	tx := &fakeTx{}
	svc := newOfferService(repo, tx)

	out, err := svc.ListOffers(context.Background(), query.Defaults())
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 25, out.TotalItems)
	assert.Equal(t, 10, out.PerPage)
	assert.Len(t, out.Offers, 10)
	assert.EqualValues(t, 25, out.Offers[0].ID)
	assert.Equal(t, "Librairie", out.Offers[0].VenueName)
	assert.Equal(t, "1 rue Lepic, 75018 Paris", out.Offers[0].VenueAddress)

	assert.Equal(t, "Page 1/3", out.Label)
	assert.Equal(t, []pagination.Entry{pagination.Page(1), pagination.Page(2), pagination.Page(3)}, out.Pagination.Entries)
	assert.Empty(t, out.Previous)
	assert.Equal(t, "page=2", out.Next)

	require.Len(t, out.Links, 3)
	assert.True(t, out.Links[0].Current)
	assert.Empty(t, out.Links[0].Query, "page 1 is the bare list URL")
	assert.Equal(t, "page=3", out.Links[2].Query)
}

func TestOfferService_ListOffers_CapsToMaxPages(t *testing.T) {
	repo := newFakeOfferRepo(101)
	svc := newOfferService(repo, nil)

	f := query.Defaults()
	f.Page = 10
	out, err := svc.ListOffers(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, 101, out.TotalItems)
	assert.Equal(t, "Page 10/10", out.Label)
	assert.Equal(t, 10, out.Filters.Page)
	require.NotNil(t, repo.lastPage)
	assert.Equal(t, repository.Page{Limit: 10, Offset: 90}, *repo.lastPage)
	assert.Equal(t, "1 ... 9 10", joinEntries(out.Pagination.Entries))
}

func TestOfferService_ListOffers_ClampsStalePage(t *testing.T) {
	repo := newFakeOfferRepo(12)
	svc := newOfferService(repo, &fakeTx{})

	f := query.Defaults()
	f.Page = 7
	out, err := svc.ListOffers(context.Background(), f)
	require.NoError(t, err)

	assert.Equal(t, "Page 2/2", out.Label)
	assert.Len(t, out.Offers, 2)
	assert.Equal(t, "", out.Previous, "page 1 encodes to an empty query")
	assert.Empty(t, out.Next)
}

func TestOfferService_ListOffers_EmptyResult(t *testing.T) {
	repo := newFakeOfferRepo(0)
	svc := newOfferService(repo, &fakeTx{})

	out, err := svc.ListOffers(context.Background(), query.Defaults())
	require.NoError(t, err)

	assert.Empty(t, out.Offers)
	assert.NotNil(t, out.Offers)
	assert.Equal(t, "Page 1/1", out.Label)
	assert.Nil(t, repo.lastPage, "no list query when nothing matches")
}

func TestOfferService_ListOffers_LinksKeepFilters(t *testing.T) {
	repo := newFakeOfferRepo(60)
	svc := newOfferService(repo, &fakeTx{})

	f := query.Defaults()
	f.Status = string(model.OfferStatusSoldOut)
	f.Page = 2
	out, err := svc.ListOffers(context.Background(), f)
	require.NoError(t, err)

	require.NotNil(t, repo.lastQuery.Status)
	assert.Equal(t, model.OfferStatusSoldOut, *repo.lastQuery.Status)
	assert.Nil(t, repo.lastQuery.VenueID)
	assert.Equal(t, 30, out.TotalItems)
	assert.Equal(t, "statut=sold_out", out.Previous)
	assert.Equal(t, "page=3&statut=sold_out", out.Next)
	for _, l := range out.Links {
		if !l.Entry.IsEllipsis() && l.Entry.Number() > 1 {
			assert.Contains(t, l.Query, "statut=sold_out")
		}
	}
}

func TestOfferService_ListOffers_InvalidFilters(t *testing.T) {
	repo := newFakeOfferRepo(3)
	svc := newOfferService(repo, &fakeTx{})

	f := query.Defaults()
	f.Status = "gone"
	f.Page = 0
	_, err := svc.ListOffers(context.Background(), f)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	fields := map[string]bool{}
	for _, fe := range service.FieldErrors(err) {
		fields[fe.Field] = true
	}
	assert.True(t, fields[query.KeyStatus])
	assert.True(t, fields[query.KeyPage])
}

func TestOfferService_ListOffers_RepositoryError(t *testing.T) {
	repo := newFakeOfferRepo(3)
	repo.err = repository.ErrUnavailable
	svc := newOfferService(repo, &fakeTx{})

	_, err := svc.ListOffers(context.Background(), query.Defaults())
	assert.True(t, errors.Is(err, repository.ErrUnavailable))
}

func TestOfferService_GetOffer(t *testing.T) {
	svc := newOfferService(newFakeOfferRepo(3), nil)

	row, err := svc.GetOffer(context.Background(), 2)
	require.NoError(t, err)
	assert.EqualValues(t, 2, row.ID)
	assert.Equal(t, "Librairie", row.VenueName)

	_, err = svc.GetOffer(context.Background(), 42)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.GetOffer(context.Background(), 0)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func joinEntries(entries []pagination.Entry) string {
	s := ""
	for i, e := range entries {
		if i > 0 {
			s += " "
		}
		s += e.String()
	}
	return s
}

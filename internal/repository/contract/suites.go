// Package contract holds storage-agnostic behaviour suites. A backend test
// wires its own factory and seeding into them.
package contract

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/offer-catalog-service/internal/model"
	"github.com/maxviazov/offer-catalog-service/internal/repository"
)

// SeedFunc stores a venue and its offers, returning them with ids assigned.
type SeedFunc func(ctx context.Context, v model.Venue, offers []model.Offer) (model.Venue, []model.Offer, error)

type OfferFactory func(t *testing.T) (repo repository.OfferRepository, seed SeedFunc, cleanup func())

type VenueFactory func(t *testing.T) (repo repository.VenueRepository, seed SeedFunc, cleanup func())

type TxFactory func(t *testing.T) (tx repository.TxManager, offers repository.OfferRepository, seed SeedFunc, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func books(n int, status model.OfferStatus) []model.Offer {
	out := make([]model.Offer, n)
	for i := range out {
		out[i] = model.Offer{
			Name:         fmt.Sprintf("Livre %02d", i+1),
			CategoryID:   "LIVRE_PAPIER",
			Status:       status,
			CreationMode: model.CreationModeManual,
			Stocks:       i,
		}
	}
	return out
}

func RunOfferRepositoryContract(t *testing.T, makeRepo OfferFactory) {
	t.Helper()

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		_, _, err := seed(ctx, model.Venue{OffererID: 1, Name: "Librairie"}, books(23, model.OfferStatusActive))
		require.NoError(t, err)

		first, err := repo.List(ctx, repository.OfferQuery{}, repository.Page{Limit: 10, Offset: 0})
		require.NoError(t, err)
		assert.Len(t, first.Items, 10)
		assert.Equal(t, 23, first.Total)
		assert.Equal(t, "Librairie", first.Items[0].Venue.Name)
		// newest first
		assert.Greater(t, first.Items[0].ID, first.Items[9].ID)

		last, err := repo.List(ctx, repository.OfferQuery{}, repository.Page{Limit: 10, Offset: 20})
		require.NoError(t, err)
		assert.Len(t, last.Items, 3)
		assert.Equal(t, 23, last.Total)

		beyond, err := repo.List(ctx, repository.OfferQuery{}, repository.Page{Limit: 10, Offset: 40})
		require.NoError(t, err)
		assert.Empty(t, beyond.Items)
		assert.Equal(t, 23, beyond.Total, "total must survive an offset past the end")
	})

	t.Run("filters", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		cinema, _, err := seed(ctx, model.Venue{OffererID: 2, Name: "Cinéma"}, []model.Offer{
			{Name: "Projection 100% plein air", CategoryID: "CINE_PLEIN_AIR", Status: model.OfferStatusActive, CreationMode: model.CreationModeManual, IsEvent: true,
				BeginningDate: ptr(time.Date(2024, 7, 14, 21, 0, 0, 0, time.UTC))},
			{Name: "Avant-première", CategoryID: "SEANCE_CINE", Status: model.OfferStatusSoldOut, CreationMode: model.CreationModeImported, IsEvent: true,
				BeginningDate: ptr(time.Date(2024, 9, 1, 20, 0, 0, 0, time.UTC))},
		})
		require.NoError(t, err)
		_, _, err = seed(ctx, model.Venue{OffererID: 3, Name: "Librairie"}, []model.Offer{
			{Name: "Le Petit Prince", ISBN: "9782070612758", CategoryID: "LIVRE_PAPIER", Status: model.OfferStatusActive, CreationMode: model.CreationModeManual},
		})
		require.NoError(t, err)

		count := func(q repository.OfferQuery) int {
			n, err := repo.Count(ctx, q)
			require.NoError(t, err)
			return n
		}
		soldOut := model.OfferStatusSoldOut
		imported := model.CreationModeImported
		category := "LIVRE_PAPIER"
		offerer := int64(2)

		assert.Equal(t, 3, count(repository.OfferQuery{}))
		assert.Equal(t, 2, count(repository.OfferQuery{VenueID: &cinema.ID}))
		assert.Equal(t, 2, count(repository.OfferQuery{OffererID: &offerer}))
		assert.Equal(t, 1, count(repository.OfferQuery{Status: &soldOut}))
		assert.Equal(t, 1, count(repository.OfferQuery{CreationMode: &imported}))
		assert.Equal(t, 1, count(repository.OfferQuery{CategoryID: &category}))
		assert.Equal(t, 1, count(repository.OfferQuery{NameOrISBN: "petit prince"}))
		assert.Equal(t, 1, count(repository.OfferQuery{NameOrISBN: "9782070612758"}))
		assert.Equal(t, 1, count(repository.OfferQuery{NameOrISBN: "100%"}))
		assert.Equal(t, 0, count(repository.OfferQuery{NameOrISBN: "_"}), "wildcards typed by users are literal")

		from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 7, 14, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 1, count(repository.OfferQuery{PeriodBeginning: &from, PeriodEnding: &to}), "ending day is inclusive")
	})

	t.Run("get_by_id", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		_, offers, err := seed(ctx, model.Venue{OffererID: 1, Name: "Musée", PublicName: "Le Musée"}, books(1, model.OfferStatusDraft))
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, offers[0].ID)
		require.NoError(t, err)
		assert.Equal(t, offers[0].Name, got.Name)
		assert.Equal(t, model.OfferStatusDraft, got.Status)
		assert.Equal(t, "Le Musée", got.Venue.PublicName)

		_, err = repo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func RunVenueRepositoryContract(t *testing.T, makeRepo VenueFactory) {
	t.Helper()

	t.Run("list_by_offerer", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, v := range []model.Venue{
			{OffererID: 5, Name: "Zèbre", IsVirtual: true},
			{OffererID: 5, Name: "SARL B", PublicName: "Bibliothèque"},
			{OffererID: 5, Name: "Atelier"},
			{OffererID: 6, Name: "Ailleurs"},
		} {
			_, _, err := seed(ctx, v, nil)
			require.NoError(t, err)
		}

		venues, err := repo.ListByOfferer(ctx, 5)
		require.NoError(t, err)
		require.Len(t, venues, 3)
		assert.Equal(t, "Atelier", venues[0].Name)
		assert.Equal(t, "Bibliothèque", venues[1].PublicName)
		assert.True(t, venues[2].IsVirtual)

		got, err := repo.GetByID(ctx, venues[0].ID)
		require.NoError(t, err)
		assert.Equal(t, venues[0], got)

		_, err = repo.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("count_and_list_share_a_transaction", func(t *testing.T) {
		tx, offers, seed, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		_, _, err := seed(ctx, model.Venue{OffererID: 1, Name: "Théâtre"}, books(4, model.OfferStatusActive))
		require.NoError(t, err)

		var total int
		var page repository.PageResult[model.Offer]
		err = tx.WithinTx(ctx, func(ctx context.Context) error {
			var err error
			if total, err = offers.Count(ctx, repository.OfferQuery{}); err != nil {
				return err
			}
			page, err = offers.List(ctx, repository.OfferQuery{}, repository.Page{Limit: 2})
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Equal(t, total, page.Total)
		assert.Len(t, page.Items, 2)
	})

	t.Run("error_is_returned", func(t *testing.T) {
		tx, _, _, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		boom := fmt.Errorf("boom")
		err := tx.WithinTx(context.Background(), func(context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	p, cleanup := makePinger(t)
	t.Cleanup(cleanup)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, p.Ping(ctx))
}

func ptr[T any](v T) *T { return &v }

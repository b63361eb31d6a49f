package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/offer-catalog-service/internal/model"
	"github.com/maxviazov/offer-catalog-service/internal/pagination"
	"github.com/maxviazov/offer-catalog-service/internal/query"
	"github.com/maxviazov/offer-catalog-service/internal/repository"
	"github.com/maxviazov/offer-catalog-service/internal/venue"
)

// Paging sizes the offer list. Zero values fall back to the pagination defaults;
// a negative MaxPages disables the cap.
type Paging struct {
	PerPage  int
	MaxPages int
}

func (p Paging) normalize() Paging {
	if p.PerPage <= 0 {
		p.PerPage = pagination.DefaultPerPage
	}
	switch {
	case p.MaxPages == 0:
		p.MaxPages = pagination.DefaultMaxPages
	case p.MaxPages < 0:
		p.MaxPages = 0
	}
	return p
}

// offerService holds offer list use cases: filter validation, page math and link building.
type offerService struct {
	repo   repository.OfferRepository
	tx     repository.TxManager
	paging Paging
	log    zerolog.Logger
}

// NewOfferService wires the offer list. tx may be nil, in which case Count and
// List run without a shared snapshot.
func NewOfferService(repo repository.OfferRepository, tx repository.TxManager, paging Paging, logger zerolog.Logger) OfferService {
	l := logger.With().Str("module", "service").Str("component", "offer").Logger()
	return &offerService{repo: repo, tx: tx, paging: paging.normalize(), log: l}
}

func (s *offerService) ListOffers(ctx context.Context, filters query.OfferFilters) (OfferPage, error) {
	start := time.Now()
	if err := validateFilters(filters); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("offer filters rejected")
		return OfferPage{}, err
	}
	q := toOfferQuery(filters)

	var (
		totalItems int
		page       int
		totalPages int
		items      []model.Offer
	)
	// Count and List must agree, otherwise the strip can point past the last row.
	err := s.withinTx(ctx, func(ctx context.Context) error {
		n, err := s.repo.Count(ctx, q)
		if err != nil {
			return err
		}
		totalItems = n
		totalPages = pagination.TotalPages(n, s.paging.PerPage, s.paging.MaxPages)
		page = pagination.Clamp(filters.Page, totalPages)
		if n == 0 {
			return nil
		}
		limit, offset := pagination.Window(page, s.paging.PerPage)
		res, err := s.repo.List(ctx, q, repository.Page{Limit: limit, Offset: offset})
		if err != nil {
			return err
		}
		items = res.Items
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int("page", filters.Page).Msg("list offers failed")
		return OfferPage{}, err
	}

	filters.Page = page
	strip := pagination.NewStrip(page, totalPages)
	out := OfferPage{
		Offers:     make([]OfferRow, 0, len(items)),
		TotalItems: totalItems,
		PerPage:    s.paging.PerPage,
		Pagination: strip,
		Label:      strip.Label(),
		Links:      pageLinks(filters, strip),
		Filters:    filters,
	}
	for _, o := range items {
		out.Offers = append(out.Offers, newOfferRow(o))
	}
	if strip.HasPrevious {
		out.Previous = query.WithPage(filters, strip.Previous).Encode()
	}
	if strip.HasNext {
		out.Next = query.WithPage(filters, strip.Next).Encode()
	}

	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("total_items", totalItems).
		Str("page", out.Label).
		Msg("offers listed")
	return out, nil
}

func (s *offerService) GetOffer(ctx context.Context, id int64) (OfferRow, error) {
	if id <= 0 {
		return OfferRow{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return OfferRow{}, err
	}
	return newOfferRow(o), nil
}

func (s *offerService) withinTx(ctx context.Context, fn repository.TxFunc) error {
	if s.tx == nil {
		return fn(ctx)
	}
	return s.tx.WithinTx(ctx, fn)
}

func newOfferRow(o model.Offer) OfferRow {
	return OfferRow{
		Offer:        o,
		VenueName:    venue.DisplayName(o.Venue),
		VenueAddress: venue.Address(o.Venue),
	}
}

// pageLinks pairs every strip entry with the query string that opens it.
// The links keep the active filters so paging never resets a search.
func pageLinks(f query.OfferFilters, strip pagination.Strip) []PageLink {
	links := make([]PageLink, 0, len(strip.Entries))
	for _, e := range strip.Entries {
		if e.IsEllipsis() {
			links = append(links, PageLink{Entry: e})
			continue
		}
		links = append(links, PageLink{
			Entry:   e,
			Query:   query.WithPage(f, e.Number()).Encode(),
			Current: e.Number() == strip.Current,
		})
	}
	return links
}

// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/offer-catalog-service/internal/model"
	"github.com/maxviazov/offer-catalog-service/internal/pagination"
	"github.com/maxviazov/offer-catalog-service/internal/query"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// OfferRow is an offer decorated for display.
type OfferRow struct {
	model.Offer
	VenueName    string `json:"venue_name"`
	VenueAddress string `json:"venue_address,omitempty"`
}

// PageLink is one clickable slot of the page strip. Ellipses carry no query.
type PageLink struct {
	Entry   pagination.Entry `json:"page"`
	Query   string           `json:"query,omitempty"`
	Current bool             `json:"current,omitempty"`
}

// OfferPage is everything the offer list screen needs for one page.
type OfferPage struct {
	Offers     []OfferRow         `json:"offers"`
	TotalItems int                `json:"total_items"`
	PerPage    int                `json:"per_page"`
	Pagination pagination.Strip   `json:"pagination"`
	Label      string             `json:"page_label"`
	Links      []PageLink         `json:"links"`
	Previous   string             `json:"previous_query,omitempty"`
	Next       string             `json:"next_query,omitempty"`
	Filters    query.OfferFilters `json:"filters"`
}

// VenueOption feeds the venue select of the offer filters.
type VenueOption struct {
	ID      int64  `json:"id"`
	Label   string `json:"label"`
	Address string `json:"address,omitempty"`
}

// OfferService defines offer list use cases.
type OfferService interface {
	ListOffers(ctx context.Context, filters query.OfferFilters) (OfferPage, error)
	GetOffer(ctx context.Context, id int64) (OfferRow, error)
}

// VenueService defines venue lookups used by the filters.
type VenueService interface {
	ListVenueOptions(ctx context.Context, offererID int64) ([]VenueOption, error)
}

// PageStripService builds strips without touching storage.
type PageStripService interface {
	Build(current, total int) (pagination.Strip, error)
}

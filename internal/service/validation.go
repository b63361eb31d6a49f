package service

import (
	"errors"
	"strings"

	"github.com/maxviazov/offer-catalog-service/internal/model"
	"github.com/maxviazov/offer-catalog-service/internal/query"
	"github.com/maxviazov/offer-catalog-service/internal/repository"
)

// validateFilters turns query parameter errors into field errors keyed by URL key.
func validateFilters(f query.OfferFilters) error {
	return InvalidQuery(f.Validate())
}

// InvalidQuery converts query.ParamErrors (from query.Parse or Validate) into
// an aggregated invalid input error. Nil stays nil.
func InvalidQuery(err error) error {
	if err == nil {
		return nil
	}
	var perrs query.ParamErrors
	if !errors.As(err, &perrs) {
		return NewInvalidInputError([]FieldError{{Field: "query", Message: err.Error()}})
	}
	ferrs := make([]FieldError, 0, len(perrs))
	for _, pe := range perrs {
		ferrs = append(ferrs, FieldError{Field: pe.Param, Message: pe.Message})
	}
	return NewInvalidInputError(ferrs)
}

// toOfferQuery assumes validated filters; the All sentinel leaves a filter unset.
func toOfferQuery(f query.OfferFilters) repository.OfferQuery {
	q := repository.OfferQuery{NameOrISBN: strings.TrimSpace(f.Name)}
	if id, ok := query.ID(f.VenueID); ok {
		q.VenueID = &id
	}
	if id, ok := query.ID(f.OffererID); ok {
		q.OffererID = &id
	}
	if v, ok := query.Value(f.CategoryID); ok {
		q.CategoryID = &v
	}
	if v, ok := query.Value(f.Status); ok {
		st := model.OfferStatus(v)
		q.Status = &st
	}
	if v, ok := query.Value(f.CreationMode); ok {
		cm := model.CreationMode(v)
		q.CreationMode = &cm
	}
	if d, ok := query.Date(f.PeriodBeginningDate); ok {
		q.PeriodBeginning = &d
	}
	if d, ok := query.Date(f.PeriodEndingDate); ok {
		q.PeriodEnding = &d
	}
	return q
}

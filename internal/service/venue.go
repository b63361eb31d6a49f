package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maxviazov/offer-catalog-service/internal/repository"
	"github.com/maxviazov/offer-catalog-service/internal/venue"
)

type venueService struct {
	repo repository.VenueRepository
	log  zerolog.Logger
}

func NewVenueService(repo repository.VenueRepository, logger zerolog.Logger) VenueService {
	l := logger.With().Str("module", "service").Str("component", "venue").Logger()
	return &venueService{repo: repo, log: l}
}

// ListVenueOptions returns the venue select entries of one offerer, in repository order.
func (s *venueService) ListVenueOptions(ctx context.Context, offererID int64) ([]VenueOption, error) {
	if offererID <= 0 {
		return nil, NewInvalidInputError([]FieldError{{Field: "offerer_id", Message: "must be > 0"}})
	}
	venues, err := s.repo.ListByOfferer(ctx, offererID)
	if err != nil {
		s.log.Error().Err(err).Int64("offerer_id", offererID).Msg("list venues failed")
		return nil, err
	}
	out := make([]VenueOption, 0, len(venues))
	for _, v := range venues {
		out = append(out, VenueOption{ID: v.ID, Label: venue.DisplayName(v), Address: venue.Address(v)})
	}
	return out, nil
}

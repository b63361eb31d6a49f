package service

import (
	"github.com/maxviazov/offer-catalog-service/internal/pagination"
)

type pageStripService struct{}

func NewPageStripService() PageStripService {
	return pageStripService{}
}

// Build is strict where pagination.NewStrip is lenient: callers asking for a
// strip directly get told when their numbers are out of range.
func (pageStripService) Build(current, total int) (pagination.Strip, error) {
	var ferrs []FieldError
	if total < 1 {
		ferrs = append(ferrs, FieldError{Field: "total", Message: "must be >= 1"})
	}
	if current < 1 {
		ferrs = append(ferrs, FieldError{Field: "current", Message: "must be >= 1"})
	} else if total >= 1 && current > total {
		ferrs = append(ferrs, FieldError{Field: "current", Message: "must be <= total"})
	}
	if err := NewInvalidInputError(ferrs); err != nil {
		return pagination.Strip{}, err
	}
	return pagination.NewStrip(current, total), nil
}

package repository

import (
	"context"
	"time"

	"github.com/maxviazov/offer-catalog-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// OfferQuery narrows the offer list. Nil fields do not filter.
type OfferQuery struct {
	// NameOrISBN matches a name substring (case-insensitive) or an exact ISBN.
	NameOrISBN   string
	VenueID      *int64
	OffererID    *int64
	CategoryID   *string
	Status       *model.OfferStatus
	CreationMode *model.CreationMode
	// PeriodBeginning and PeriodEnding bound event dates, both inclusive days.
	PeriodBeginning *time.Time
	PeriodEnding    *time.Time
}

// OfferRepository declares read operations backing the offer list.
// Offers come back with their venue joined in.
type OfferRepository interface {
	Count(ctx context.Context, q OfferQuery) (int, error)
	List(ctx context.Context, q OfferQuery, p Page) (PageResult[model.Offer], error)
	GetByID(ctx context.Context, id int64) (model.Offer, error)
}

// VenueRepository declares read operations for venues.
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (model.Venue, error)
	ListByOfferer(ctx context.Context, offererID int64) ([]model.Venue, error)
}

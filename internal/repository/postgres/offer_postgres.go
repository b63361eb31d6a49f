package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/offer-catalog-service/internal/model"
	"github.com/maxviazov/offer-catalog-service/internal/repository"
)

const offerColumns = `o.id, o.venue_id, o.name, o.isbn, o.category_id, o.status, o.creation_mode,
	o.is_event, o.stocks, o.beginning_date, o.created_at, o.updated_at,
	v.id, v.offerer_id, v.name, v.public_name, v.is_virtual, v.street, v.postal_code, v.city, v.created_at`

const offerFrom = `FROM offers o JOIN venues v ON v.id = o.venue_id`

type offerRepository struct{ pool *pgxpool.Pool }

func NewOfferRepository(pool *pgxpool.Pool) repository.OfferRepository {
	return &offerRepository{pool: pool}
}

// scanOffer reads offerColumns, then any extra trailing columns into extra.
// pgx.Rows satisfies pgx.Row, so it serves both QueryRow and Query.
func scanOffer(row pgx.Row, extra ...any) (model.Offer, error) {
	var o model.Offer
	var status, mode string
	dest := []any{
		&o.ID, &o.VenueID, &o.Name, &o.ISBN, &o.CategoryID, &status, &mode,
		&o.IsEvent, &o.Stocks, &o.BeginningDate, &o.CreatedAt, &o.UpdatedAt,
		&o.Venue.ID, &o.Venue.OffererID, &o.Venue.Name, &o.Venue.PublicName, &o.Venue.IsVirtual,
		&o.Venue.Street, &o.Venue.PostalCode, &o.Venue.City, &o.Venue.CreatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	o.Status = model.OfferStatus(status)
	o.CreationMode = model.CreationMode(mode)
	return o, err
}

func (r *offerRepository) Count(ctx context.Context, q repository.OfferQuery) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	w := offerWhere(q)
	var total int
	err := getQ(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) `+offerFrom+` `+w.String(), w.args...).Scan(&total)
	if err != nil {
		return 0, repository.MapPgError(err)
	}
	return total, nil
}

// List returns one page of offers, newest first. Total is the full count
// for the query, independent of the window.
func (r *offerRepository) List(ctx context.Context, q repository.OfferQuery, p repository.Page) (repository.PageResult[model.Offer], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Offer]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	w := offerWhere(q)
	sql := `SELECT ` + offerColumns + `, COUNT(*) OVER() AS total ` + offerFrom + ` ` + w.String() +
		` ORDER BY o.id DESC LIMIT ` + w.next(limit) + ` OFFSET ` + w.next(offset)

	rows, err := getQ(ctx, r.pool).Query(ctx, sql, w.args...)
	if err != nil {
		return repository.PageResult[model.Offer]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Offer]{Items: make([]model.Offer, 0, limit)}
	for rows.Next() {
		var total int
		o, err := scanOffer(rows, &total)
		if err != nil {
			return repository.PageResult[model.Offer]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, o)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Offer]{}, repository.MapPgError(err)
	}
	// Past the last row the window function has nothing to report.
	if len(res.Items) == 0 && offset > 0 {
		if res.Total, err = r.Count(ctx, q); err != nil {
			return repository.PageResult[model.Offer]{}, err
		}
	}
	return res, nil
}

func (r *offerRepository) GetByID(ctx context.Context, id int64) (model.Offer, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Offer{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx, `SELECT `+offerColumns+` `+offerFrom+` WHERE o.id = $1`, id)
	out, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Offer{}, repository.ErrNotFound
		}
		return model.Offer{}, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.OfferRepository = (*offerRepository)(nil)

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/offer-catalog-service/internal/model"
	"github.com/maxviazov/offer-catalog-service/internal/repository"
)

const venueColumns = `id, offerer_id, name, public_name, is_virtual, street, postal_code, city, created_at`

type venueRepository struct{ pool *pgxpool.Pool }

func NewVenueRepository(pool *pgxpool.Pool) repository.VenueRepository {
	return &venueRepository{pool: pool}
}

func scanVenue(row pgx.Row) (model.Venue, error) {
	var v model.Venue
	err := row.Scan(&v.ID, &v.OffererID, &v.Name, &v.PublicName, &v.IsVirtual, &v.Street, &v.PostalCode, &v.City, &v.CreatedAt)
	return v, err
}

func (r *venueRepository) GetByID(ctx context.Context, id int64) (model.Venue, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Venue{}, err
	}
	out, err := scanVenue(getQ(ctx, r.pool).QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Venue{}, repository.ErrNotFound
		}
		return model.Venue{}, repository.MapPgError(err)
	}
	return out, nil
}

// ListByOfferer feeds the venue select of the offer filters, physical venues first.
func (r *venueRepository) ListByOfferer(ctx context.Context, offererID int64) ([]model.Venue, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+venueColumns+` FROM venues WHERE offerer_id = $1
		 ORDER BY is_virtual, COALESCE(NULLIF(public_name, ''), name), id`, offererID)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	out := make([]model.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.VenueRepository = (*venueRepository)(nil)

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"gomarket/internal/domain/address"
)

type AddressRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewAddressRepository(db *Storage, log *slog.Logger) *AddressRepository {
	return &AddressRepository{
		db:  db,
		log: log,
	}
}

func (r *AddressRepository) List(ctx context.Context, userID string) ([]address.Address, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, user_id, address_text, apartment, floor, label,
                is_favorite, courier_comment, lat, lon, created_at
         FROM addresses WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []address.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *AddressRepository) Create(ctx context.Context, a address.Address) (address.Address, error) {
	lat, lon := coordsColumns(a.Coords)
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO addresses (id, user_id, address_text, apartment, floor, label,
                                is_favorite, courier_comment, lat, lon, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		a.ID, a.UserID, a.AddressText, a.Apartment, a.Floor, a.Label,
		a.IsFavorite, a.CourierComment, lat, lon, a.CreatedAt)
	if err != nil {
		return address.Address{}, err
	}
	return a, nil
}

func (r *AddressRepository) Update(ctx context.Context, a address.Address) (address.Address, error) {
	lat, lon := coordsColumns(a.Coords)
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE addresses
         SET address_text = $3, apartment = $4, floor = $5, label = $6,
             is_favorite = $7, courier_comment = $8, lat = $9, lon = $10
         WHERE user_id = $1 AND id = $2`,
		a.UserID, a.ID, a.AddressText, a.Apartment, a.Floor, a.Label,
		a.IsFavorite, a.CourierComment, lat, lon)
	if err != nil {
		return address.Address{}, err
	}
	if tag.RowsAffected() == 0 {
		return address.Address{}, address.ErrNotFound
	}
	return a, nil
}

func (r *AddressRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Pool().Exec(ctx,
		`DELETE FROM addresses WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return address.ErrNotFound
	}
	return nil
}

func (r *AddressRepository) GetDefault(ctx context.Context, userID string) (string, error) {
	var addressID string
	err := r.db.Pool().QueryRow(ctx,
		`SELECT address_id FROM default_addresses WHERE user_id = $1`, userID).
		Scan(&addressID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", address.ErrNoDefault
	}
	if err != nil {
		return "", err
	}
	return addressID, nil
}

func (r *AddressRepository) SetDefault(ctx context.Context, userID, addressID string) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO default_addresses (user_id, address_id)
         VALUES ($1, $2)
         ON CONFLICT (user_id) DO UPDATE SET address_id = EXCLUDED.address_id`,
		userID, addressID)
	return err
}

func scanAddress(rows pgx.Rows) (address.Address, error) {
	var (
		a        address.Address
		lat, lon *float64
	)
	err := rows.Scan(&a.ID, &a.UserID, &a.AddressText, &a.Apartment, &a.Floor, &a.Label,
		&a.IsFavorite, &a.CourierComment, &lat, &lon, &a.CreatedAt)
	if err != nil {
		return address.Address{}, err
	}
	if lat != nil && lon != nil {
		a.Coords = &address.Coords{Lat: *lat, Lon: *lon}
	}
	return a, nil
}

func coordsColumns(c *address.Coords) (lat, lon *float64) {
	if c == nil {
		return nil, nil
	}
	return &c.Lat, &c.Lon
}

package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type addressRepository struct {
	db *sqlx.DB
}

func NewAddressRepository(db *sqlx.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, address *domain.Address) error {
	query := `
		INSERT INTO addresses (street, city, state, country)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		address.Street, address.City, address.State, address.Country,
	).Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
}

func (r *addressRepository) GetByID(ctx context.Context, id int) (*domain.Address, error) {
	var address domain.Address
	query := `SELECT * FROM addresses WHERE id = $1`
	err := r.db.GetContext(ctx, &address, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) GetAll(ctx context.Context) ([]*domain.Address, error) {
	var addresses []*domain.Address
	query := `SELECT * FROM addresses ORDER BY id`
	err := r.db.SelectContext(ctx, &addresses, query)
	return addresses, err
}

func (r *addressRepository) Update(ctx context.Context, address *domain.Address) error {
	query := `
		UPDATE addresses
		SET street = $1, city = $2, state = $3, country = $4,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		address.Street, address.City, address.State, address.Country, address.ID,
	).Scan(&address.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrAddressNotFound
	}
	return err
}

func (r *addressRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM addresses WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrAddressNotFound
	}
	return nil
}

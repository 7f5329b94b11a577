package postgres

import (
	"context"
	"database/sql"
	"time"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"
)

type addressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	query := `INSERT INTO addresses (street_address, suburb, state, postcode, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, a.StreetAddress, a.Suburb, a.State, a.Postcode, now, now).Scan(&a.ID)
	return translateError(err, "address not found", "address already exists")
}

func (r *addressRepository) GetByID(ctx context.Context, id int32) (*domain.Address, error) {
	a := &domain.Address{}
	query := `SELECT id, street_address, suburb, state, postcode, created_on, updated_on FROM addresses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.StreetAddress, &a.Suburb, &a.State, &a.Postcode, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		return nil, translateError(err, "address not found", "address already exists")
	}
	return a, nil
}

func (r *addressRepository) List(ctx context.Context) ([]domain.Address, error) {
	query := `SELECT id, street_address, suburb, state, postcode, created_on, updated_on FROM addresses ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addrs []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.StreetAddress, &a.Suburb, &a.State, &a.Postcode, &a.CreatedOn, &a.UpdatedOn); err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
	}
	return addrs, rows.Err()
}

func (r *addressRepository) Update(ctx context.Context, a *domain.Address) error {
	query := `UPDATE addresses SET street_address=$1, suburb=$2, state=$3, postcode=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, a.StreetAddress, a.Suburb, a.State, a.Postcode, time.Now(), a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("address not found")
	}
	return nil
}

func (r *addressRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("address not found")
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (user_id, watch_id, rental_days, total_rental_price, rental_start_date, rental_end_date, rental_status, collection_mode, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, rt.UserID, rt.WatchID, rt.RentalDays, rt.TotalRentalPrice, rt.StartDate, rt.EndDate, rt.Status, rt.CollectionMode, now, now).Scan(&rt.ID)
	return translateError(err, "rental not found", "rental already exists")
}

// The watch and brand joins are LEFT JOINs so a rental survives deletion of
// its watch: the row still comes back, just without watch details.
const rentalSelect = `SELECT r.id, r.user_id, r.watch_id, r.rental_days, r.total_rental_price, r.rental_start_date, r.rental_end_date, r.rental_status, r.collection_mode, r.created_on, r.updated_on,
	       u.first_name, u.last_name, u.email, w.model, w.year, b.brand_name
	FROM rentals r
	JOIN users u ON u.id = r.user_id
	LEFT JOIN watches w ON w.id = r.watch_id
	LEFT JOIN brands b ON b.id = w.brand_id`

func scanRental(scanner interface{ Scan(...any) error }) (*domain.Rental, error) {
	rt := &domain.Rental{User: &domain.RentalUser{}}
	var model, brand sql.NullString
	var year sql.NullInt32
	err := scanner.Scan(
		&rt.ID, &rt.UserID, &rt.WatchID, &rt.RentalDays, &rt.TotalRentalPrice,
		&rt.StartDate, &rt.EndDate, &rt.Status, &rt.CollectionMode, &rt.CreatedOn, &rt.UpdatedOn,
		&rt.User.FirstName, &rt.User.LastName, &rt.User.Email,
		&model, &year, &brand,
	)
	if err != nil {
		return nil, err
	}
	rt.User.ID = rt.UserID
	if model.Valid {
		rt.Watch = &domain.RentalWatch{ID: rt.WatchID, Model: model.String, Year: year.Int32, Brand: brand.String}
	}
	return rt, nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	row := r.db.QueryRowContext(ctx, rentalSelect+` WHERE r.id = $1`, id)
	rt, err := scanRental(row)
	if err != nil {
		return nil, translateError(err, "rental not found", "rental already exists")
	}
	return rt, nil
}

func (r *rentalRepository) ListAll(ctx context.Context) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, rentalSelect+` ORDER BY r.created_on DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, rentalSelect+` WHERE r.user_id = $1 ORDER BY r.created_on DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRentals(rows)
}

func collectRentals(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		rt, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE rentals SET rental_status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("rental not found")
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("rental not found")
	}
	return nil
}

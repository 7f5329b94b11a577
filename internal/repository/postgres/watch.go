package postgres

import (
	"context"
	"database/sql"
	"time"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/logger"
	"timeless-backend/internal/repository"
)

type watchRepository struct {
	db *sql.DB
}

func NewWatchRepository(db *sql.DB) repository.WatchRepository {
	return &watchRepository{db: db}
}

func (r *watchRepository) Create(ctx context.Context, w *domain.Watch) error {
	query := `INSERT INTO watches (brand_id, model, year, rental_day_price, condition, quantity, description, image_url, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, w.BrandID, w.Model, w.Year, w.RentalDayPrice, w.Condition, w.Quantity, w.Description, w.ImageURL, now, now).Scan(&w.ID)
	return translateError(err, "watch not found", "watch already exists")
}

func (r *watchRepository) GetByID(ctx context.Context, id int32) (*domain.Watch, error) {
	w := &domain.Watch{}
	query := `SELECT w.id, w.brand_id, COALESCE(b.brand_name, ''), w.model, w.year, w.rental_day_price, w.condition, w.quantity, w.description, w.image_url, w.created_on, w.updated_on
	          FROM watches w LEFT JOIN brands b ON b.id = w.brand_id WHERE w.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.BrandID, &w.BrandName, &w.Model, &w.Year, &w.RentalDayPrice, &w.Condition, &w.Quantity, &w.Description, &w.ImageURL, &w.CreatedOn, &w.UpdatedOn)
	if err != nil {
		return nil, translateError(err, "watch not found", "watch already exists")
	}
	return w, nil
}

func (r *watchRepository) List(ctx context.Context) ([]domain.Watch, error) {
	// LEFT JOIN keeps watches in the catalogue even if their brand row is
	// deleted out from under them; such watches show an empty brand name.
	query := `SELECT w.id, w.brand_id, COALESCE(b.brand_name, ''), w.model, w.year, w.rental_day_price, w.condition, w.quantity, w.description, w.image_url, w.created_on, w.updated_on
	          FROM watches w LEFT JOIN brands b ON b.id = w.brand_id ORDER BY w.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var watches []domain.Watch
	for rows.Next() {
		var w domain.Watch
		if err := rows.Scan(&w.ID, &w.BrandID, &w.BrandName, &w.Model, &w.Year, &w.RentalDayPrice, &w.Condition, &w.Quantity, &w.Description, &w.ImageURL, &w.CreatedOn, &w.UpdatedOn); err != nil {
			return nil, err
		}
		watches = append(watches, w)
	}
	return watches, rows.Err()
}

func (r *watchRepository) Update(ctx context.Context, w *domain.Watch) error {
	query := `UPDATE watches SET brand_id=$1, model=$2, year=$3, rental_day_price=$4, condition=$5, quantity=$6, description=$7, image_url=$8, updated_on=$9 WHERE id=$10`
	res, err := r.db.ExecContext(ctx, query, w.BrandID, w.Model, w.Year, w.RentalDayPrice, w.Condition, w.Quantity, w.Description, w.ImageURL, time.Now(), w.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("watch not found")
	}
	return nil
}

func (r *watchRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM watches WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("watch not found")
	}
	return nil
}

// ReserveUnit takes one unit of stock. The decrement is conditional on
// quantity > 0 and runs as a single statement, so two concurrent
// reservations can never drive quantity negative.
func (r *watchRepository) ReserveUnit(ctx context.Context, id int32) error {
	query := `UPDATE watches SET quantity = quantity - 1, updated_on = $2 WHERE id = $1 AND quantity > 0`
	logger.DatabaseCall("ReserveUnit", query, "watch_id", id)
	res, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		logger.DatabaseResult("ReserveUnit", 0, err, "watch_id", id)
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	logger.DatabaseResult("ReserveUnit", n, nil, "watch_id", id)
	if n > 0 {
		return nil
	}

	// Nothing updated: either the watch is gone or it is out of stock.
	var exists bool
	if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM watches WHERE id = $1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFound("watch not found")
	}
	return domain.NewValidation("watch is out of stock")
}

// ReleaseUnit returns one unit of stock. Releasing inventory for a watch
// that has since been deleted is a no-op, not an error.
func (r *watchRepository) ReleaseUnit(ctx context.Context, id int32) error {
	query := `UPDATE watches SET quantity = quantity + 1, updated_on = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, time.Now())
	return err
}

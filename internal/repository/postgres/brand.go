package postgres

import (
	"context"
	"database/sql"
	"time"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"
)

type brandRepository struct {
	db *sql.DB
}

func NewBrandRepository(db *sql.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, b *domain.Brand) error {
	query := `INSERT INTO brands (brand_name, created_on, updated_on) VALUES ($1, $2, $3) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, b.BrandName, now, now).Scan(&b.ID)
	return translateError(err, "brand not found", "brand already exists")
}

func (r *brandRepository) GetByID(ctx context.Context, id int32) (*domain.Brand, error) {
	b := &domain.Brand{}
	query := `SELECT id, brand_name, created_on, updated_on FROM brands WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.BrandName, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, translateError(err, "brand not found", "brand already exists")
	}
	return b, nil
}

func (r *brandRepository) List(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, brand_name, created_on, updated_on FROM brands ORDER BY brand_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		var b domain.Brand
		if err := rows.Scan(&b.ID, &b.BrandName, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (r *brandRepository) Update(ctx context.Context, b *domain.Brand) error {
	res, err := r.db.ExecContext(ctx, `UPDATE brands SET brand_name=$1, updated_on=$2 WHERE id=$3`, b.BrandName, time.Now(), b.ID)
	if err != nil {
		return translateError(err, "brand not found", "brand already exists")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("brand not found")
	}
	return nil
}

func (r *brandRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("brand not found")
	}
	return nil
}

package postgres

import (
	"context"
	"database/sql"
	"time"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (first_name, last_name, email, password_hash, phone_number, role, address_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.PhoneNumber, u.Role, u.AddressID, now, now).Scan(&u.ID)
	return translateError(err, "user not found", "user already exists")
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, first_name, last_name, email, password_hash, phone_number, role, address_id, created_on, updated_on
	          FROM users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.Role, &u.AddressID, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, translateError(err, "user not found", "user already exists")
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, first_name, last_name, email, password_hash, phone_number, role, address_id, created_on, updated_on
	          FROM users WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.Role, &u.AddressID, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, translateError(err, "user not found", "user already exists")
	}
	return u, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET first_name=$1, last_name=$2, email=$3, password_hash=$4, phone_number=$5, address_id=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.PhoneNumber, u.AddressID, time.Now(), u.ID)
	return translateError(err, "user not found", "user already exists")
}

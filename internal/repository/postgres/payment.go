package postgres

import (
	"context"
	"database/sql"
	"time"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (rental_id, amount, payment_status, payment_method, transaction_id, payment_date, comment, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query, p.RentalID, p.Amount, p.Status, p.Method, p.TransactionID, p.PaymentDate, p.Comment, now, now).Scan(&p.ID)
	return translateError(err, "payment not found", "payment already exists")
}

const paymentSelect = `SELECT id, rental_id, amount, payment_status, payment_method, transaction_id, payment_date, comment, created_on, updated_on FROM payments`

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	p := &domain.Payment{}
	err := r.db.QueryRowContext(ctx, paymentSelect+` WHERE id = $1`, id).
		Scan(&p.ID, &p.RentalID, &p.Amount, &p.Status, &p.Method, &p.TransactionID, &p.PaymentDate, &p.Comment, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, translateError(err, "payment not found", "payment already exists")
	}
	return p, nil
}

func (r *paymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, paymentSelect+` ORDER BY created_on DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

// ListByUser returns payments whose rental belongs to the given user,
// most recent first. Ownership is resolved transitively through the
// rental reference.
func (r *paymentRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Payment, error) {
	query := `SELECT p.id, p.rental_id, p.amount, p.payment_status, p.payment_method, p.transaction_id, p.payment_date, p.comment, p.created_on, p.updated_on
	          FROM payments p JOIN rentals r ON r.id = p.rental_id
	          WHERE r.user_id = $1 ORDER BY p.created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPayments(rows)
}

func collectPayments(rows *sql.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.RentalID, &p.Amount, &p.Status, &p.Method, &p.TransactionID, &p.PaymentDate, &p.Comment, &p.CreatedOn, &p.UpdatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET payment_status=$1, transaction_id=$2, payment_date=$3, comment=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, p.Status, p.TransactionID, p.PaymentDate, p.Comment, time.Now(), p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("payment not found")
	}
	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewNotFound("payment not found")
	}
	return nil
}

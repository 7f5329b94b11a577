package postgres

import (
	"database/sql"
	"errors"

	"timeless-backend/internal/domain"
	"timeless-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.AddressRepository
	repository.BrandRepository
	repository.WatchRepository
	repository.RentalRepository
	repository.PaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		AddressRepository: NewAddressRepository(db),
		BrandRepository:   NewBrandRepository(db),
		WatchRepository:   NewWatchRepository(db),
		RentalRepository:  NewRentalRepository(db),
		PaymentRepository: NewPaymentRepository(db),
	}
}

// translateError maps driver errors to the domain taxonomy. notFoundMsg is
// used for sql.ErrNoRows, conflictMsg for unique violations.
func translateError(err error, notFoundMsg, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFound(notFoundMsg)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return domain.NewConflict(conflictMsg)
	}
	return err
}

package repository

import (
	"context"

	"timeless-backend/internal/domain"
)

// Repositories translate driver-level failures into the domain error
// taxonomy: a missing row surfaces as a NotFound-kind error and a unique
// violation as a Conflict-kind error, so no sql/pq error crosses the
// service boundary.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
}

type AddressRepository interface {
	Create(ctx context.Context, addr *domain.Address) error
	GetByID(ctx context.Context, id int32) (*domain.Address, error)
	List(ctx context.Context) ([]domain.Address, error)
	Update(ctx context.Context, addr *domain.Address) error
	Delete(ctx context.Context, id int32) error
}

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id int32) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, brand *domain.Brand) error
	Delete(ctx context.Context, id int32) error
}

type WatchRepository interface {
	Create(ctx context.Context, watch *domain.Watch) error
	GetByID(ctx context.Context, id int32) (*domain.Watch, error)
	List(ctx context.Context) ([]domain.Watch, error)
	Update(ctx context.Context, watch *domain.Watch) error
	Delete(ctx context.Context, id int32) error

	// Inventory ledger operations. ReserveUnit decrements quantity by one
	// as a single conditional update; it fails NotFound if the watch is
	// absent and Validation ("out of stock") if quantity is zero.
	// ReleaseUnit increments quantity by one and is a silent no-op when
	// the watch has been deleted.
	ReserveUnit(ctx context.Context, id int32) error
	ReleaseUnit(ctx context.Context, id int32) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	ListAll(ctx context.Context) ([]domain.Rental, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Rental, error)
	UpdateStatus(ctx context.Context, id int32, status domain.RentalStatus) error
	Delete(ctx context.Context, id int32) error
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id int32) error
}

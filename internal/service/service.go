package service

import (
	"context"

	"timeless-backend/internal/domain"
)

// Input structs use pointers for required fields so that "absent" and
// "zero" are distinguishable; validation collects every missing field
// into a single error message.

type RegisterInput struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PhoneNumber   string `json:"phone_number"`
	StreetAddress string `json:"street_address"`
	Suburb        string `json:"suburb"`
	State         string `json:"state"`
	Postcode      string `json:"postcode"`
}

type UpdateProfileInput struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PhoneNumber   string `json:"phone_number"`
	StreetAddress string `json:"street_address"`
	Suburb        string `json:"suburb"`
	State         string `json:"state"`
	Postcode      string `json:"postcode"`
}

type AddressInput struct {
	StreetAddress string `json:"street_address"`
	Suburb        string `json:"suburb"`
	State         string `json:"state"`
	Postcode      string `json:"postcode"`
}

type BrandInput struct {
	BrandName string `json:"brand_name"`
}

type WatchInput struct {
	BrandID        *int32   `json:"brand_id"`
	Model          string   `json:"model"`
	Year           *int32   `json:"year"`
	RentalDayPrice *float64 `json:"rental_day_price"`
	Condition      string   `json:"condition"`
	Quantity       *int32   `json:"quantity"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"image_url"`
}

type CreateRentalInput struct {
	WatchID        *int32 `json:"watch_id"`
	RentalDays     *int32 `json:"rental_days"`
	CollectionMode string `json:"collection_mode"`
}

type CreatePaymentInput struct {
	RentalID *int32   `json:"rental_id"`
	Amount   *float64 `json:"amount"`
	Method   string   `json:"payment_method"`
	Comment  string   `json:"comment"`
}

type UpdatePaymentStatusInput struct {
	Status        string `json:"payment_status"`
	TransactionID string `json:"transaction_id"`
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, input UpdateProfileInput) (*domain.User, error)
}

type AddressService interface {
	Create(ctx context.Context, input AddressInput) (*domain.Address, error)
	Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Address, error)
	List(ctx context.Context) ([]domain.Address, error)
	Update(ctx context.Context, actor domain.Actor, id int32, input AddressInput) (*domain.Address, error)
	Delete(ctx context.Context, id int32) error
}

type BrandService interface {
	Create(ctx context.Context, input BrandInput) (*domain.Brand, error)
	Get(ctx context.Context, id int32) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
	Update(ctx context.Context, id int32, input BrandInput) (*domain.Brand, error)
	Delete(ctx context.Context, id int32) error
}

type WatchService interface {
	Create(ctx context.Context, input WatchInput) (*domain.Watch, error)
	Get(ctx context.Context, id int32) (*domain.Watch, error)
	List(ctx context.Context) ([]domain.Watch, error)
	Update(ctx context.Context, id int32, input WatchInput) (*domain.Watch, error)
	Delete(ctx context.Context, id int32) error
}

type RentalService interface {
	Create(ctx context.Context, actor domain.Actor, input CreateRentalInput) (*domain.Rental, error)
	Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Rental, error)
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.Rental, error)
	ListOwn(ctx context.Context, actor domain.Actor) ([]domain.Rental, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id int32, status string) (*domain.Rental, error)
	Delete(ctx context.Context, actor domain.Actor, id int32) error
}

type PaymentService interface {
	Create(ctx context.Context, actor domain.Actor, input CreatePaymentInput) (*domain.Payment, error)
	Get(ctx context.Context, actor domain.Actor, id int32) (*domain.Payment, error)
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.Payment, error)
	ListOwn(ctx context.Context, actor domain.Actor) ([]domain.Payment, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id int32, input UpdatePaymentStatusInput) (*domain.Payment, error)
	Delete(ctx context.Context, actor domain.Actor, id int32) error
}

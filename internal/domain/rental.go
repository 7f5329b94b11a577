package domain

import "time"

type RentalStatus string

const (
	RentalStatusPending   RentalStatus = "Pending"
	RentalStatusActive    RentalStatus = "Active"
	RentalStatusCompleted RentalStatus = "Completed"
)

func ValidRentalStatus(s RentalStatus) bool {
	switch s {
	case RentalStatusPending, RentalStatusActive, RentalStatusCompleted:
		return true
	}
	return false
}

type CollectionMode string

const (
	CollectionModePickup   CollectionMode = "Pickup"
	CollectionModeDelivery CollectionMode = "Delivery"
)

func ValidCollectionMode(m CollectionMode) bool {
	return m == CollectionModePickup || m == CollectionModeDelivery
}

// RentalUser and RentalWatch carry the display fields resolved alongside a
// rental on detail and admin-list reads.
type RentalUser struct {
	ID        int32  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type RentalWatch struct {
	ID    int32  `json:"id"`
	Model string `json:"model"`
	Year  int32  `json:"year"`
	Brand string `json:"brand"`
}

type Rental struct {
	ID         int32 `json:"id"`
	UserID     int32 `json:"user_id"`
	WatchID    int32 `json:"watch_id"`
	RentalDays int32 `json:"rental_days"`
	// TotalRentalPrice is a snapshot of rental_day_price x rental_days taken
	// at creation time; later watch price changes never touch it.
	TotalRentalPrice float64        `json:"total_rental_price"`
	StartDate        time.Time      `json:"rental_start_date"`
	EndDate          time.Time      `json:"rental_end_date"`
	Status           RentalStatus   `json:"rental_status"`
	CollectionMode   CollectionMode `json:"collection_mode"`
	User             *RentalUser    `json:"user,omitempty"`
	Watch            *RentalWatch   `json:"watch,omitempty"`
	CreatedOn        time.Time      `json:"created_on"`
	UpdatedOn        time.Time      `json:"updated_on"`
}

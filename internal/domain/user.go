package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int32     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Role         Role      `json:"role"`
	AddressID    *int32    `json:"address_id,omitempty"`
	Address      *Address  `json:"address,omitempty"` // Populated on profile reads
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// Actor is the authenticated identity making a request, decoded from the
// bearer token. Anonymous requests never reach the services; the auth
// middleware rejects them first.
type Actor struct {
	ID   int32
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

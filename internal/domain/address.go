package domain

import "time"

type Address struct {
	ID            int32     `json:"id"`
	StreetAddress string    `json:"street_address"`
	Suburb        string    `json:"suburb"`
	State         string    `json:"state"`
	Postcode      string    `json:"postcode"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}

// Australian states and territories.
var validStates = map[string]bool{
	"NSW": true, "VIC": true, "QLD": true, "WA": true,
	"SA": true, "TAS": true, "ACT": true, "NT": true,
}

func ValidState(s string) bool {
	return validStates[s]
}

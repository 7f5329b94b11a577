package domain

import "time"

type Brand struct {
	ID        int32     `json:"id"`
	BrandName string    `json:"brand_name"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

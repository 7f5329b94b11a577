package domain

import "time"

type WatchCondition string

const (
	WatchConditionNew       WatchCondition = "New"
	WatchConditionExcellent WatchCondition = "Excellent"
	WatchConditionGood      WatchCondition = "Good"
	WatchConditionFair      WatchCondition = "Fair"
	WatchConditionPoor      WatchCondition = "Poor"
)

// MinWatchYear is the oldest accepted manufacture year; anything between it
// and the current year is a valid 4-digit year.
const MinWatchYear = 1000

func ValidWatchCondition(c WatchCondition) bool {
	switch c {
	case WatchConditionNew, WatchConditionExcellent, WatchConditionGood,
		WatchConditionFair, WatchConditionPoor:
		return true
	}
	return false
}

type Watch struct {
	ID             int32          `json:"id"`
	BrandID        int32          `json:"brand_id"`
	BrandName      string         `json:"brand_name,omitempty"` // Populated on reads
	Model          string         `json:"model"`
	Year           int32          `json:"year"`
	RentalDayPrice float64        `json:"rental_day_price"`
	Condition      WatchCondition `json:"condition"`
	Quantity       int32          `json:"quantity"`
	Description    string         `json:"description,omitempty"`
	ImageURL       string         `json:"image_url,omitempty"`
	CreatedOn      time.Time      `json:"created_on"`
	UpdatedOn      time.Time      `json:"updated_on"`
}

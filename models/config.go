package models

import (
	"time"
)

// ThresholdConfig holds the minute thresholds used to classify call time into
// attendance statuses. Exactly one config is active at a time; updates insert
// a new row and deactivate the previous one, so history is preserved.
type ThresholdConfig struct {
	ID             int       `json:"id" db:"id"`
	FullDayMinutes int       `json:"full_day_minutes" db:"full_day_minutes"`
	HalfDayMinutes int       `json:"half_day_minutes" db:"half_day_minutes"`
	Active         bool      `json:"active" db:"active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ThresholdConfigForm represents form data for activating a new configuration
type ThresholdConfigForm struct {
	FullDayMinutes int `json:"full_day_minutes"`
	HalfDayMinutes int `json:"half_day_minutes"`
}

// Validate validates the threshold configuration form data
func (f *ThresholdConfigForm) Validate() []string {
	var errors []string

	if f.FullDayMinutes <= 0 {
		errors = append(errors, "Full day minutes must be greater than zero")
	}

	if f.HalfDayMinutes <= 0 {
		errors = append(errors, "Half day minutes must be greater than zero")
	}

	if f.FullDayMinutes > 0 && f.HalfDayMinutes > 0 && f.FullDayMinutes <= f.HalfDayMinutes {
		errors = append(errors, "Full day minutes must be greater than half day minutes")
	}

	return errors
}

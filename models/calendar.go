package models

import (
	"time"
)

// WorkingDay represents the weekly working pattern for one day of the week
type WorkingDay struct {
	ID        int  `json:"id" db:"id"`
	DayOfWeek int  `json:"day_of_week" db:"day_of_week"` // 0=Monday, 6=Sunday
	Active    bool `json:"active" db:"active"`
}

// DayNames maps day numbers to readable names
var DayNames = map[int]string{
	0: "Monday",
	1: "Tuesday",
	2: "Wednesday",
	3: "Thursday",
	4: "Friday",
	5: "Saturday",
	6: "Sunday",
}

// GetDayName returns the readable name for a day of week
func (w *WorkingDay) GetDayName() string {
	if name, ok := DayNames[w.DayOfWeek]; ok {
		return name
	}
	return "Unknown"
}

// WorkingDayForm represents form data for updating the weekly pattern
type WorkingDayForm struct {
	DayOfWeek int  `json:"day_of_week"`
	Active    bool `json:"active"`
}

// Validate validates the working day form data
func (f *WorkingDayForm) Validate() []string {
	var errors []string

	if f.DayOfWeek < 0 || f.DayOfWeek > 6 {
		errors = append(errors, "Day of week must be between 0 (Monday) and 6 (Sunday)")
	}

	return errors
}

// Holiday represents a single non-working calendar date
type Holiday struct {
	ID   int       `json:"id" db:"id"`
	Date time.Time `json:"date" db:"date"`
	Name string    `json:"name" db:"name"`
}

// HolidayForm represents form data for creating a holiday
type HolidayForm struct {
	Date string `json:"date"` // "2025-10-01" format
	Name string `json:"name"`
}

// Validate validates the holiday form data
func (f *HolidayForm) Validate() []string {
	var errors []string

	if f.Date == "" {
		errors = append(errors, "Date is required")
	} else if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		errors = append(errors, "Date must be in YYYY-MM-DD format")
	}

	if f.Name == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	return errors
}

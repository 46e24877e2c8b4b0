package models

import (
	"time"
)

// Recognized call data sources. Source is free-form for future integrations;
// these are the two the ingestion surfaces use by default.
const (
	CallSourceManual = "MANUAL"
	CallSourceAPI    = "API"
	CallSourceCSV    = "CSV"
)

// CallLogEntry holds raw per-employee, per-day call metrics. Unique per
// (employee_id, date, source); re-ingestion upserts in place.
type CallLogEntry struct {
	ID              int       `json:"id" db:"id"`
	EmployeeID      int       `json:"employee_id" db:"employee_id"`
	Date            time.Time `json:"date" db:"date"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	CallCount       int       `json:"call_count" db:"call_count"`
	Source          string    `json:"source" db:"source"`

	// Joined field (populated from joins with employees table)
	EmployeeName string `json:"employee_name,omitempty" db:"employee_name"`

	AuditFields // Embedded audit fields
}

// GetFormattedDate returns the date in YYYY-MM-DD format
func (c *CallLogEntry) GetFormattedDate() string {
	return c.Date.Format("2006-01-02")
}

// CallLogForm represents form data for ingesting a call log entry
type CallLogForm struct {
	EmployeeID      int    `json:"employee_id"`
	Date            string `json:"date"` // "2025-10-01" format
	DurationMinutes int    `json:"duration_minutes"`
	CallCount       int    `json:"call_count"`
	Source          string `json:"source"`
}

// Validate validates the call log form data
func (f *CallLogForm) Validate() []string {
	var errors []string

	if f.EmployeeID <= 0 {
		errors = append(errors, "Employee must be selected")
	}

	if f.Date == "" {
		errors = append(errors, "Date is required")
	} else if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		errors = append(errors, "Date must be in YYYY-MM-DD format")
	}

	if f.DurationMinutes < 0 {
		errors = append(errors, "Call duration must be zero or more minutes")
	}

	if f.CallCount < 0 {
		errors = append(errors, "Call count must be zero or more")
	}

	if len(f.Source) > 50 {
		errors = append(errors, "Source must be less than 50 characters")
	}

	return errors
}

// IngestItemError describes a single failed item in a bulk ingestion
type IngestItemError struct {
	Index      int    `json:"index"`
	EmployeeID int    `json:"employee_id,omitempty"`
	Date       string `json:"date,omitempty"`
	Message    string `json:"message"`
}

// IngestResult summarizes a bulk ingestion. Failed items never abort the
// batch; they are reported here instead.
type IngestResult struct {
	Created int               `json:"created"`
	Updated int               `json:"updated"`
	Failed  int               `json:"failed"`
	Errors  []IngestItemError `json:"errors,omitempty"`
}

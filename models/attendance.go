package models

import (
	"time"
)

// AttendanceStatus classifies an employee-day based on call minutes
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusHalfDay AttendanceStatus = "HALF_DAY"
	StatusAbsent  AttendanceStatus = "ABSENT"
)

// AttendanceSource records how an attendance record came to be
type AttendanceSource string

const (
	SourceAuto   AttendanceSource = "AUTO"
	SourceManual AttendanceSource = "MANUAL"
)

// AttendanceRecord holds the computed-or-overridden daily attendance status
// per employee. Unique per (employee_id, date). AUTO records may be freely
// recomputed by the batch calculation; MANUAL records are immune until reset.
type AttendanceRecord struct {
	ID              int              `json:"id" db:"id"`
	EmployeeID      int              `json:"employee_id" db:"employee_id"`
	Date            time.Time        `json:"date" db:"date"`
	DurationMinutes int              `json:"duration_minutes" db:"duration_minutes"`
	CallCount       int              `json:"call_count" db:"call_count"`
	Status          AttendanceStatus `json:"status" db:"status"`
	Source          AttendanceSource `json:"source" db:"source"`
	ManualReason    string           `json:"manual_reason,omitempty" db:"manual_reason"`
	UpdatedBy       *int             `json:"updated_by,omitempty" db:"updated_by"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`

	// Joined field (populated from joins with employees table)
	EmployeeName string `json:"employee_name,omitempty" db:"employee_name"`
}

// GetFormattedDate returns the date in YYYY-MM-DD format
func (a *AttendanceRecord) GetFormattedDate() string {
	return a.Date.Format("2006-01-02")
}

// IsManual reports whether the record was set by a human override
func (a *AttendanceRecord) IsManual() bool {
	return a.Source == SourceManual
}

// MinReasonLength is the minimum length of a manual override reason
const MinReasonLength = 10

// ManualUpdateForm represents form data for a manual attendance override.
// The new status is derived from the duration against the active thresholds,
// keeping the calculator the single source of truth for classification.
type ManualUpdateForm struct {
	EmployeeID      int    `json:"employee_id"`
	Date            string `json:"date"` // "2025-10-01" format
	DurationMinutes int    `json:"duration_minutes"`
	CallCount       int    `json:"call_count"`
	Reason          string `json:"reason"`
}

// Validate validates the manual update form data
func (f *ManualUpdateForm) Validate() []string {
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

	if len(f.Reason) < MinReasonLength {
		errors = append(errors, "Reason must be at least 10 characters")
	}

	return errors
}

// ResetOverrideForm represents form data for resetting a manual override
// back to automatic calculation
type ResetOverrideForm struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	Reason     string `json:"reason"`
}

// Validate validates the reset override form data
func (f *ResetOverrideForm) Validate() []string {
	var errors []string

	if f.EmployeeID <= 0 {
		errors = append(errors, "Employee must be selected")
	}

	if f.Date == "" {
		errors = append(errors, "Date is required")
	} else if _, err := time.Parse("2006-01-02", f.Date); err != nil {
		errors = append(errors, "Date must be in YYYY-MM-DD format")
	}

	if len(f.Reason) < MinReasonLength {
		errors = append(errors, "Reason must be at least 10 characters")
	}

	return errors
}

// RunError describes a single failed employee-day in a batch run
type RunError struct {
	EmployeeID int    `json:"employee_id"`
	Message    string `json:"message"`
}

// RunResult summarizes a batch calculation for one date. Failures for one
// employee never block the others.
type RunResult struct {
	RunID     string     `json:"run_id"`
	Date      time.Time  `json:"date"`
	Processed int        `json:"processed"`
	Skipped   int        `json:"skipped"`
	Failed    int        `json:"failed"`
	Reason    string     `json:"reason"`
	Errors    []RunError `json:"errors,omitempty"`
}

// Success reports whether the run completed without per-employee failures
func (r *RunResult) Success() bool {
	return r.Failed == 0
}

// AttendanceSummary aggregates an employee's records over a date range.
// This is the only payroll-facing query surface.
type AttendanceSummary struct {
	EmployeeID       int `json:"employee_id"`
	TotalDays        int `json:"total_days"`
	PresentDays      int `json:"present_days"`
	HalfDays         int `json:"half_days"`
	AbsentDays       int `json:"absent_days"`
	TotalCallMinutes int `json:"total_call_minutes"`
	TotalCalls       int `json:"total_calls"`
	ManualUpdates    int `json:"manual_updates"`
}

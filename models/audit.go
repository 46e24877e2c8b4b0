package models

import (
	"time"
)

// AuditEntry is the append-only record of a manual attendance mutation.
// Created exactly once per manual change, never edited or deleted outside
// the retention purge.
type AuditEntry struct {
	ID                 int              `json:"id" db:"id"`
	AttendanceRecordID int              `json:"attendance_record_id" db:"attendance_record_id"`
	EmployeeID         int              `json:"employee_id" db:"employee_id"`
	Date               time.Time        `json:"date" db:"date"`
	OldDuration        int              `json:"old_duration" db:"old_duration"`
	OldCallCount       int              `json:"old_call_count" db:"old_call_count"`
	OldStatus          AttendanceStatus `json:"old_status" db:"old_status"`
	NewDuration        int              `json:"new_duration" db:"new_duration"`
	NewCallCount       int              `json:"new_call_count" db:"new_call_count"`
	NewStatus          AttendanceStatus `json:"new_status" db:"new_status"`
	Reason             string           `json:"reason" db:"reason"`
	UpdatedBy          int              `json:"updated_by" db:"updated_by"`
	Timestamp          time.Time        `json:"timestamp" db:"timestamp"`

	// Joined fields (populated from joins with employees table)
	EmployeeName  string `json:"employee_name,omitempty" db:"employee_name"`
	UpdatedByName string `json:"updated_by_name,omitempty" db:"updated_by_name"`
}

// AuditFilter narrows audit trail queries. Zero values mean "no filter".
type AuditFilter struct {
	EmployeeID int
	From       time.Time
	To         time.Time
}

// DefaultAuditRetentionDays is the default horizon for the retention purge
const DefaultAuditRetentionDays = 90

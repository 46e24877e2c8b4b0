package models

import (
	"time"
)

// Well-known permission codenames consulted by the services. The catalog in
// the permissions table may carry more; these are the ones wired to checks.
const (
	PermManualAttendance  = "attendance.manual_update"
	PermManageThresholds  = "attendance.manage_thresholds"
	PermManageCalendar    = "attendance.manage_calendar"
	PermIngestCallLogs    = "attendance.ingest_call_logs"
	PermViewAudit         = "attendance.view_audit"
	PermApproveExpenses   = "expenses.approve"
	PermManageExpenses    = "expenses.manage"
	PermManagePermissions = "auth.manage_permissions"
)

// Permission is one entry in the permission catalog, grouped by module
type Permission struct {
	ID       int    `json:"id" db:"id"`
	Codename string `json:"codename" db:"codename"`
	Name     string `json:"name" db:"name"`
	Module   string `json:"module" db:"module"`
}

// EmployeePermission is a grant of one permission to one employee
type EmployeePermission struct {
	ID           int       `json:"id" db:"id"`
	EmployeeID   int       `json:"employee_id" db:"employee_id"`
	PermissionID int       `json:"permission_id" db:"permission_id"`
	GrantedBy    int       `json:"granted_by" db:"granted_by"`
	GrantedAt    time.Time `json:"granted_at" db:"granted_at"`

	// Joined fields
	Codename string `json:"codename,omitempty" db:"codename"`
	Module   string `json:"module,omitempty" db:"module"`
}

// PermissionAssignForm represents form data for granting or revoking a permission
type PermissionAssignForm struct {
	EmployeeID int    `json:"employee_id"`
	Codename   string `json:"codename"`
}

// Validate validates the permission assignment form data
func (f *PermissionAssignForm) Validate() []string {
	var errors []string

	if f.EmployeeID <= 0 {
		errors = append(errors, "Employee must be selected")
	}

	if f.Codename == "" {
		errors = append(errors, "Permission codename is required")
	}

	return errors
}

// BulkPermissionForm replaces an employee's direct grants with the given set
type BulkPermissionForm struct {
	EmployeeID int      `json:"employee_id"`
	Codenames  []string `json:"codenames"`
}

// Validate validates the bulk permission form data
func (f *BulkPermissionForm) Validate() []string {
	var errors []string

	if f.EmployeeID <= 0 {
		errors = append(errors, "Employee must be selected")
	}

	return errors
}

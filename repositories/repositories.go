package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	Employee     EmployeeRepository
	CallLog      CallLogRepository
	Config       ConfigRepository
	Attendance   AttendanceRepository
	Audit        AuditRepository
	Calendar     CalendarRepository
	Expense      ExpenseRepository
	Permission   PermissionRepository
	RequestAudit RequestAuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Employee:     NewEmployeeRepository(db),
		CallLog:      NewCallLogRepository(db),
		Config:       NewConfigRepository(db),
		Attendance:   NewAttendanceRepository(db),
		Audit:        NewAuditRepository(db),
		Calendar:     NewCalendarRepository(db),
		Expense:      NewExpenseRepository(db),
		Permission:   NewPermissionRepository(db),
		RequestAudit: NewRequestAuditRepository(db),
	}
}

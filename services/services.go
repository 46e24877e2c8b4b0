package services

import (
	"github.com/dverbeek/calltrack/repositories"
)

// Services holds all service instances
type Services struct {
	Authz      AuthzService
	Employee   EmployeeService
	CallLog    CallLogService
	Config     ConfigService
	Calendar   CalendarService
	Attendance AttendanceService
	Expense    ExpenseService
	Permission PermissionService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	authz := NewAuthzService(repos.Employee, repos.Permission)
	calendar := NewCalendarService(repos.Calendar, authz)
	config := NewConfigService(repos.Config, authz)

	return &Services{
		Authz:      authz,
		Employee:   NewEmployeeService(repos.Employee, authz),
		CallLog:    NewCallLogService(repos.CallLog, repos.Employee, authz),
		Config:     config,
		Calendar:   calendar,
		Attendance: NewAttendanceService(repos.Attendance, repos.Audit, repos.CallLog, repos.Config, repos.Employee, calendar, authz),
		Expense:    NewExpenseService(repos.Expense, repos.Employee, authz),
		Permission: NewPermissionService(repos.Permission, repos.Employee, authz),
	}
}

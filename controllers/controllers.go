package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/logging"
	"github.com/dverbeek/calltrack/services"
)

// Controllers holds all controller instances
type Controllers struct {
	Auth       *AuthController
	Employee   *EmployeeController
	CallLog    *CallLogController
	Attendance *AttendanceController
	Config     *ConfigController
	Calendar   *CalendarController
	Expense    *ExpenseController
	Permission *PermissionController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(services),
		Employee:   NewEmployeeController(services),
		CallLog:    NewCallLogController(services),
		Attendance: NewAttendanceController(services),
		Config:     NewConfigController(services),
		Calendar:   NewCalendarController(services),
		Expense:    NewExpenseController(services),
		Permission: NewPermissionController(services),
	}
}

// respondJSON writes the payload as JSON with the given status code
func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.GetLogger().WithError(err).Error("Failed to encode response")
	}
}

// respondError maps service errors onto HTTP status codes. Unclassified
// errors become a 500 with a generic message so internals never leak.
func respondError(w http.ResponseWriter, err error) {
	var statusCode int
	message := err.Error()

	switch {
	case apperrors.IsValidation(err):
		statusCode = http.StatusBadRequest
	case apperrors.IsAuthorization(err):
		statusCode = http.StatusForbidden
	case apperrors.IsNotFound(err):
		statusCode = http.StatusNotFound
	case apperrors.IsConflict(err):
		statusCode = http.StatusConflict
	default:
		statusCode = http.StatusInternalServerError
		message = "internal server error"
		logging.GetLogger().WithError(err).Error("Request failed")
	}

	respondJSON(w, statusCode, map[string]string{"error": message})
}

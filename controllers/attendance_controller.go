package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/services"
	"github.com/dverbeek/calltrack/userctx"
)

// AttendanceController handles attendance calculation and override requests
type AttendanceController struct {
	services *services.Services
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(services *services.Services) *AttendanceController {
	return &AttendanceController{services: services}
}

// runRequest is the body for POST /attendance/run
type runRequest struct {
	Date  string `json:"date"`
	From  string `json:"from"`
	To    string `json:"to"`
	Force bool   `json:"force"`
}

// Run handles POST /attendance/run. Accepts either a single date or a
// from/to range.
func (c *AttendanceController) Run(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	if req.Date != "" {
		date, err := models.ParseDate(req.Date)
		if err != nil {
			respondError(w, apperrors.Validation("date must be in YYYY-MM-DD format"))
			return
		}

		result, err := c.services.Attendance.RunForDate(date, req.Force)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, result)
		return
	}

	if req.From == "" || req.To == "" {
		respondError(w, apperrors.Validation("either date or from/to is required"))
		return
	}

	from, err := models.ParseDate(req.From)
	if err != nil {
		respondError(w, apperrors.Validation("from must be in YYYY-MM-DD format"))
		return
	}
	to, err := models.ParseDate(req.To)
	if err != nil {
		respondError(w, apperrors.Validation("to must be in YYYY-MM-DD format"))
		return
	}

	results, err := c.services.Attendance.RunForRange(from, to, req.Force)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// ManualUpdate handles POST /attendance/manual
func (c *AttendanceController) ManualUpdate(w http.ResponseWriter, r *http.Request) {
	var form models.ManualUpdateForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	record, err := c.services.Attendance.ManualUpdate(&form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// ResetOverride handles POST /attendance/reset
func (c *AttendanceController) ResetOverride(w http.ResponseWriter, r *http.Request) {
	var form models.ResetOverrideForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	record, err := c.services.Attendance.ResetOverride(&form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// Index handles GET /attendance?employee_id=&from=&to=
func (c *AttendanceController) Index(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		respondError(w, err)
		return
	}

	employeeID := 0
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		employeeID, err = strconv.Atoi(raw)
		if err != nil {
			respondError(w, apperrors.Validation("invalid employee_id"))
			return
		}
	}

	records, err := c.services.Attendance.GetRecords(employeeID, from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

// Summary handles GET /attendance/summary?employee_id=&from=&to=
func (c *AttendanceController) Summary(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		respondError(w, err)
		return
	}

	employeeID, err := strconv.Atoi(r.URL.Query().Get("employee_id"))
	if err != nil || employeeID <= 0 {
		respondError(w, apperrors.Validation("employee_id is required"))
		return
	}

	summary, err := c.services.Attendance.GetSummary(employeeID, from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// AuditTrail handles GET /attendance/audit?employee_id=&from=&to=
func (c *AttendanceController) AuditTrail(w http.ResponseWriter, r *http.Request) {
	filter := models.AuditFilter{}

	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		employeeID, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, apperrors.Validation("invalid employee_id"))
			return
		}
		filter.EmployeeID = employeeID
	}
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err := models.ParseDate(raw)
		if err != nil {
			respondError(w, apperrors.Validation("from must be in YYYY-MM-DD format"))
			return
		}
		filter.From = from
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err := models.ParseDate(raw)
		if err != nil {
			respondError(w, apperrors.Validation("to must be in YYYY-MM-DD format"))
			return
		}
		filter.To = to
	}

	entries, err := c.services.Attendance.GetAuditTrail(filter, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

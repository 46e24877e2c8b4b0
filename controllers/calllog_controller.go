package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/services"
	"github.com/dverbeek/calltrack/userctx"
)

// CallLogController handles call data ingestion requests
type CallLogController struct {
	services *services.Services
}

// NewCallLogController creates a new call log controller
func NewCallLogController(services *services.Services) *CallLogController {
	return &CallLogController{services: services}
}

// Ingest handles POST /call-logs
func (c *CallLogController) Ingest(w http.ResponseWriter, r *http.Request) {
	var form models.CallLogForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	entry, err := c.services.CallLog.Ingest(&form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// BulkIngest handles POST /call-logs/bulk
func (c *CallLogController) BulkIngest(w http.ResponseWriter, r *http.Request) {
	var forms []models.CallLogForm
	if err := json.NewDecoder(r.Body).Decode(&forms); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	result, err := c.services.CallLog.BulkIngest(forms, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	status := http.StatusOK
	if result.Failed > 0 {
		status = http.StatusMultiStatus
	}
	respondJSON(w, status, result)
}

// ImportCSV handles POST /call-logs/import
func (c *CallLogController) ImportCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		respondError(w, apperrors.Validation("a CSV file upload is required"))
		return
	}
	defer file.Close()

	result, err := c.services.CallLog.ImportCSV(file, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	status := http.StatusOK
	if result.Failed > 0 {
		status = http.StatusMultiStatus
	}
	respondJSON(w, status, result)
}

// Index handles GET /call-logs?employee_id=&from=&to=
func (c *CallLogController) Index(w http.ResponseWriter, r *http.Request) {
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

	entries, err := c.services.CallLog.GetByDateRange(employeeID, from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

// parseDateRange reads from/to query parameters, defaulting to the current
// month when absent
func parseDateRange(r *http.Request) (time.Time, time.Time, error) {
	month := models.GetCurrentMonth()
	from, to := month.Start, month.End

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return from, to, apperrors.Validation("from must be in YYYY-MM-DD format")
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return from, to, apperrors.Validation("to must be in YYYY-MM-DD format")
		}
		to = parsed
	}
	if to.Before(from) {
		return from, to, apperrors.Validation("to must not be before from")
	}

	return from, to, nil
}

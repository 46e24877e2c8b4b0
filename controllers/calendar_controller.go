package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/services"
	"github.com/dverbeek/calltrack/userctx"
)

// CalendarController handles working pattern and holiday requests
type CalendarController struct {
	services *services.Services
}

// NewCalendarController creates a new calendar controller
func NewCalendarController(services *services.Services) *CalendarController {
	return &CalendarController{services: services}
}

// Pattern handles GET /calendar/pattern
func (c *CalendarController) Pattern(w http.ResponseWriter, r *http.Request) {
	pattern, err := c.services.Calendar.GetWorkingPattern()
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, pattern)
}

// UpdatePattern handles PUT /calendar/pattern
func (c *CalendarController) UpdatePattern(w http.ResponseWriter, r *http.Request) {
	var form models.WorkingDayForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	if err := c.services.Calendar.UpdateWorkingDay(&form, userctx.GetActorID(r.Context())); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Holidays handles GET /calendar/holidays?from=&to=
func (c *CalendarController) Holidays(w http.ResponseWriter, r *http.Request) {
	from, to, err := parseDateRange(r)
	if err != nil {
		respondError(w, err)
		return
	}

	holidays, err := c.services.Calendar.GetHolidays(from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, holidays)
}

// AddHoliday handles POST /calendar/holidays
func (c *CalendarController) AddHoliday(w http.ResponseWriter, r *http.Request) {
	var form models.HolidayForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	holiday, err := c.services.Calendar.AddHoliday(&form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, holiday)
}

// RemoveHoliday handles DELETE /calendar/holidays/{id}
func (c *CalendarController) RemoveHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid holiday id"))
		return
	}

	if err := c.services.Calendar.RemoveHoliday(id, userctx.GetActorID(r.Context())); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

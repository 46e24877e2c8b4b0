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

// EmployeeController handles employee directory requests
type EmployeeController struct {
	services *services.Services
}

// NewEmployeeController creates a new employee controller
func NewEmployeeController(services *services.Services) *EmployeeController {
	return &EmployeeController{services: services}
}

// Index handles GET /employees
func (c *EmployeeController) Index(w http.ResponseWriter, r *http.Request) {
	var (
		employees []models.Employee
		err       error
	)
	if r.URL.Query().Get("active") == "true" {
		employees, err = c.services.Employee.GetActive()
	} else {
		employees, err = c.services.Employee.GetAll()
	}
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, employees)
}

// Show handles GET /employees/{id}
func (c *EmployeeController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid employee id"))
		return
	}

	employee, err := c.services.Employee.GetByID(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

// Create handles POST /employees
func (c *EmployeeController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.EmployeeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	employee, err := c.services.Employee.Create(&form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, employee)
}

// Update handles PUT /employees/{id}
func (c *EmployeeController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid employee id"))
		return
	}

	var form models.EmployeeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	employee, err := c.services.Employee.Update(id, &form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, employee)
}

// Deactivate handles DELETE /employees/{id}
func (c *EmployeeController) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid employee id"))
		return
	}

	if err := c.services.Employee.Deactivate(id, userctx.GetActorID(r.Context())); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deactivated"})
}

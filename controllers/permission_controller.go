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

// PermissionController handles permission catalog and grant requests
type PermissionController struct {
	services *services.Services
}

// NewPermissionController creates a new permission controller
func NewPermissionController(services *services.Services) *PermissionController {
	return &PermissionController{services: services}
}

// Catalog handles GET /permissions
func (c *PermissionController) Catalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := c.services.Permission.GetCatalog()
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, catalog)
}

// ForEmployee handles GET /permissions/employees/{id}
func (c *PermissionController) ForEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid employee id"))
		return
	}

	grants, err := c.services.Permission.GetForEmployee(id, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, grants)
}

// Grant handles POST /permissions/grant
func (c *PermissionController) Grant(w http.ResponseWriter, r *http.Request) {
	var form models.PermissionAssignForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	if err := c.services.Permission.Grant(&form, userctx.GetActorID(r.Context())); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "granted"})
}

// Revoke handles POST /permissions/revoke
func (c *PermissionController) Revoke(w http.ResponseWriter, r *http.Request) {
	var form models.PermissionAssignForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	if err := c.services.Permission.Revoke(&form, userctx.GetActorID(r.Context())); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "revoked"})
}

// ReplaceAll handles PUT /permissions/employees/{id}
func (c *PermissionController) ReplaceAll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid employee id"))
		return
	}

	var body struct {
		Codenames []string `json:"codenames"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	form := &models.BulkPermissionForm{
		EmployeeID: id,
		Codenames:  body.Codenames,
	}

	if err := c.services.Permission.ReplaceAll(form, userctx.GetActorID(r.Context())); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "replaced"})
}

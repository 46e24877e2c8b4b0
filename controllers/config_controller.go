package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/services"
	"github.com/dverbeek/calltrack/userctx"
)

// ConfigController handles threshold configuration requests
type ConfigController struct {
	services *services.Services
}

// NewConfigController creates a new config controller
func NewConfigController(services *services.Services) *ConfigController {
	return &ConfigController{services: services}
}

// Show handles GET /config/thresholds
func (c *ConfigController) Show(w http.ResponseWriter, r *http.Request) {
	config, err := c.services.Config.GetActive()
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, config)
}

// Activate handles POST /config/thresholds
func (c *ConfigController) Activate(w http.ResponseWriter, r *http.Request) {
	var form models.ThresholdConfigForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	config, err := c.services.Config.Activate(&form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, config)
}

// History handles GET /config/thresholds/history
func (c *ConfigController) History(w http.ResponseWriter, r *http.Request) {
	configs, err := c.services.Config.GetHistory()
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, configs)
}

package services

import (
	"fmt"
	"strings"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories"
)

// ConfigService interface defines threshold configuration business logic.
// Threshold changes take effect from the next batch run only; historical
// records stay untouched unless an explicit recompute is issued.
type ConfigService interface {
	GetActive() (*models.ThresholdConfig, error)
	Activate(form *models.ThresholdConfigForm, actorID int) (*models.ThresholdConfig, error)
	GetHistory() ([]models.ThresholdConfig, error)
}

// configService implements ConfigService interface
type configService struct {
	configRepo repositories.ConfigRepository
	authz      AuthzService
}

// NewConfigService creates a new threshold configuration service
func NewConfigService(configRepo repositories.ConfigRepository, authz AuthzService) ConfigService {
	return &configService{
		configRepo: configRepo,
		authz:      authz,
	}
}

// GetActive retrieves the active threshold configuration, failing when none
// has been activated
func (s *configService) GetActive() (*models.ThresholdConfig, error) {
	config, err := s.configRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active config: %w", err)
	}
	if config == nil {
		return nil, apperrors.Validation("no active threshold configuration found")
	}

	return config, nil
}

// Activate validates and activates a new threshold configuration, versioning
// out the previous one
func (s *configService) Activate(form *models.ThresholdConfigForm, actorID int) (*models.ThresholdConfig, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	if err := s.authz.Require(actorID, models.PermManageThresholds); err != nil {
		return nil, err
	}

	config := &models.ThresholdConfig{
		FullDayMinutes: form.FullDayMinutes,
		HalfDayMinutes: form.HalfDayMinutes,
	}

	if err := s.configRepo.Activate(config); err != nil {
		return nil, fmt.Errorf("failed to activate config: %w", err)
	}

	return config, nil
}

// GetHistory retrieves all threshold configurations, newest first
func (s *configService) GetHistory() ([]models.ThresholdConfig, error) {
	return s.configRepo.GetHistory()
}

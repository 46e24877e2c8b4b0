package repositories

import (
	"database/sql"
	"fmt"

	"github.com/dverbeek/calltrack/models"
)

// ConfigRepository interface defines threshold configuration database operations
type ConfigRepository interface {
	GetActive() (*models.ThresholdConfig, error)
	Activate(config *models.ThresholdConfig) error
	GetHistory() ([]models.ThresholdConfig, error)
}

// configRepository implements ConfigRepository interface
type configRepository struct {
	db *sql.DB
}

// NewConfigRepository creates a new threshold configuration repository
func NewConfigRepository(db *sql.DB) ConfigRepository {
	return &configRepository{db: db}
}

// GetActive retrieves the currently active threshold configuration. Returns
// nil without an error when no configuration is active.
func (r *configRepository) GetActive() (*models.ThresholdConfig, error) {
	query := `
		SELECT id, full_day_minutes, half_day_minutes, active, created_at
		FROM threshold_configs
		WHERE active = 1
		ORDER BY id DESC
		LIMIT 1
	`

	var config models.ThresholdConfig
	err := r.db.QueryRow(query).Scan(
		&config.ID,
		&config.FullDayMinutes,
		&config.HalfDayMinutes,
		&config.Active,
		&config.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active threshold config: %w", err)
	}

	return &config, nil
}

// Activate inserts a new configuration and deactivates all previous ones in
// a single transaction, so exactly one config is active at any time.
func (r *configRepository) Activate(config *models.ThresholdConfig) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE threshold_configs SET active = 0 WHERE active = 1`); err != nil {
		return fmt.Errorf("failed to deactivate previous configs: %w", err)
	}

	result, err := tx.Exec(
		`INSERT INTO threshold_configs (full_day_minutes, half_day_minutes, active) VALUES (?, ?, 1)`,
		config.FullDayMinutes,
		config.HalfDayMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to insert threshold config: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit threshold config: %w", err)
	}

	config.ID = int(id)
	config.Active = true
	return nil
}

// GetHistory retrieves all threshold configurations, newest first
func (r *configRepository) GetHistory() ([]models.ThresholdConfig, error) {
	query := `
		SELECT id, full_day_minutes, half_day_minutes, active, created_at
		FROM threshold_configs
		ORDER BY id DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query threshold configs: %w", err)
	}
	defer rows.Close()

	var configs []models.ThresholdConfig
	for rows.Next() {
		var config models.ThresholdConfig
		err := rows.Scan(
			&config.ID,
			&config.FullDayMinutes,
			&config.HalfDayMinutes,
			&config.Active,
			&config.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan threshold config: %w", err)
		}
		configs = append(configs, config)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating threshold configs: %w", err)
	}

	return configs, nil
}

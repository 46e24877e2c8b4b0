package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dverbeek/calltrack/models"
)

// CalendarRepository interface defines working pattern and holiday operations
type CalendarRepository interface {
	GetWorkingPattern() ([]models.WorkingDay, error)
	GetWorkingDay(dayOfWeek int) (*models.WorkingDay, error)
	UpdateWorkingDay(dayOfWeek int, active bool) error
	GetHolidays(from, to time.Time) ([]models.Holiday, error)
	IsHoliday(date time.Time) (bool, error)
	CreateHoliday(holiday *models.Holiday) error
	DeleteHoliday(id int) error
}

// calendarRepository implements CalendarRepository interface
type calendarRepository struct {
	db *sql.DB
}

// NewCalendarRepository creates a new calendar repository
func NewCalendarRepository(db *sql.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

// GetWorkingPattern retrieves all seven weekly pattern rows
func (r *calendarRepository) GetWorkingPattern() ([]models.WorkingDay, error) {
	query := `SELECT id, day_of_week, active FROM working_pattern ORDER BY day_of_week ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query working pattern: %w", err)
	}
	defer rows.Close()

	var days []models.WorkingDay
	for rows.Next() {
		var day models.WorkingDay
		if err := rows.Scan(&day.ID, &day.DayOfWeek, &day.Active); err != nil {
			return nil, fmt.Errorf("failed to scan working day: %w", err)
		}
		days = append(days, day)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating working pattern: %w", err)
	}

	return days, nil
}

// GetWorkingDay retrieves the pattern row for one day of the week
func (r *calendarRepository) GetWorkingDay(dayOfWeek int) (*models.WorkingDay, error) {
	query := `SELECT id, day_of_week, active FROM working_pattern WHERE day_of_week = ?`

	var day models.WorkingDay
	err := r.db.QueryRow(query, dayOfWeek).Scan(&day.ID, &day.DayOfWeek, &day.Active)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("working day %d not found", dayOfWeek)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get working day: %w", err)
	}

	return &day, nil
}

// UpdateWorkingDay updates the active flag for one day of the week
func (r *calendarRepository) UpdateWorkingDay(dayOfWeek int, active bool) error {
	result, err := r.db.Exec(
		`UPDATE working_pattern SET active = ? WHERE day_of_week = ?`,
		active, dayOfWeek,
	)
	if err != nil {
		return fmt.Errorf("failed to update working day: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("working day %d not found", dayOfWeek)
	}

	return nil
}

// GetHolidays retrieves holidays within a date range
func (r *calendarRepository) GetHolidays(from, to time.Time) ([]models.Holiday, error) {
	query := `SELECT id, date, name FROM holidays WHERE date >= ? AND date <= ? ORDER BY date ASC`

	rows, err := r.db.Query(query, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []models.Holiday
	for rows.Next() {
		var holiday models.Holiday
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, holiday)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holidays: %w", err)
	}

	return holidays, nil
}

// IsHoliday reports whether a date is registered as a holiday
func (r *calendarRepository) IsHoliday(date time.Time) (bool, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM holidays WHERE date = ?`,
		date.Format("2006-01-02"),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return count > 0, nil
}

// CreateHoliday creates a new holiday
func (r *calendarRepository) CreateHoliday(holiday *models.Holiday) error {
	result, err := r.db.Exec(
		`INSERT INTO holidays (date, name) VALUES (?, ?)`,
		holiday.Date.Format("2006-01-02"),
		holiday.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create holiday: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	holiday.ID = int(id)
	return nil
}

// DeleteHoliday deletes a holiday by ID
func (r *calendarRepository) DeleteHoliday(id int) error {
	result, err := r.db.Exec(`DELETE FROM holidays WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("holiday with ID %d not found", id)
	}

	return nil
}

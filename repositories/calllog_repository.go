package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dverbeek/calltrack/models"
)

// CallTotal aggregates call minutes and counts across sources for one
// employee-day. The batch calculation consumes these.
type CallTotal struct {
	EmployeeID      int
	DurationMinutes int
	CallCount       int
}

// CallLogRepository interface defines call log database operations
type CallLogRepository interface {
	Upsert(entry *models.CallLogEntry) (created bool, err error)
	GetByKey(employeeID int, date time.Time, source string) (*models.CallLogEntry, error)
	GetByDateRange(employeeID int, from, to time.Time) ([]models.CallLogEntry, error)
	TotalsByDate(date time.Time) ([]CallTotal, error)
	TotalForEmployeeDate(employeeID int, date time.Time) (*CallTotal, error)
}

// callLogRepository implements CallLogRepository interface
type callLogRepository struct {
	db *sql.DB
}

// NewCallLogRepository creates a new call log repository
func NewCallLogRepository(db *sql.DB) CallLogRepository {
	return &callLogRepository{db: db}
}

// Upsert inserts a call log entry or updates the existing row for the same
// (employee, date, source) key. Returns whether a new row was created.
func (r *callLogRepository) Upsert(entry *models.CallLogEntry) (bool, error) {
	existing, err := r.GetByKey(entry.EmployeeID, entry.Date, entry.Source)
	if err != nil {
		return false, err
	}

	if existing == nil {
		query := `
			INSERT INTO call_logs (employee_id, date, duration_minutes, call_count, source)
			VALUES (?, ?, ?, ?, ?)
		`
		result, err := r.db.Exec(query,
			entry.EmployeeID,
			entry.Date.Format("2006-01-02"),
			entry.DurationMinutes,
			entry.CallCount,
			entry.Source,
		)
		if err != nil {
			return false, fmt.Errorf("failed to create call log: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return false, fmt.Errorf("failed to get inserted ID: %w", err)
		}
		entry.ID = int(id)
		return true, nil
	}

	query := `
		UPDATE call_logs
		SET duration_minutes = ?, call_count = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	if _, err := r.db.Exec(query, entry.DurationMinutes, entry.CallCount, existing.ID); err != nil {
		return false, fmt.Errorf("failed to update call log: %w", err)
	}

	entry.ID = existing.ID
	return false, nil
}

// GetByKey retrieves a call log entry by its unique key. Returns nil without
// an error when no entry exists.
func (r *callLogRepository) GetByKey(employeeID int, date time.Time, source string) (*models.CallLogEntry, error) {
	query := `
		SELECT id, employee_id, date, duration_minutes, call_count, source
		FROM call_logs
		WHERE employee_id = ? AND date = ? AND source = ?
	`

	var entry models.CallLogEntry
	err := r.db.QueryRow(query, employeeID, date.Format("2006-01-02"), source).Scan(
		&entry.ID,
		&entry.EmployeeID,
		&entry.Date,
		&entry.DurationMinutes,
		&entry.CallCount,
		&entry.Source,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get call log: %w", err)
	}

	return &entry, nil
}

// GetByDateRange retrieves call log entries within a date range with employee
// info. Pass employeeID 0 for all employees.
func (r *callLogRepository) GetByDateRange(employeeID int, from, to time.Time) ([]models.CallLogEntry, error) {
	query := `
		SELECT
			c.id, c.employee_id, c.date, c.duration_minutes, c.call_count, c.source,
			e.first_name || ' ' || e.last_name as employee_name
		FROM call_logs c
		LEFT JOIN employees e ON c.employee_id = e.id
		WHERE c.date >= ? AND c.date <= ?
	`
	args := []interface{}{from.Format("2006-01-02"), to.Format("2006-01-02")}

	if employeeID > 0 {
		query += ` AND c.employee_id = ?`
		args = append(args, employeeID)
	}
	query += ` ORDER BY c.date ASC, c.employee_id ASC, c.source ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query call logs: %w", err)
	}
	defer rows.Close()

	var entries []models.CallLogEntry
	for rows.Next() {
		var entry models.CallLogEntry
		var employeeName sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.EmployeeID,
			&entry.Date,
			&entry.DurationMinutes,
			&entry.CallCount,
			&entry.Source,
			&employeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan call log: %w", err)
		}

		if employeeName.Valid {
			entry.EmployeeName = employeeName.String
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating call logs: %w", err)
	}

	return entries, nil
}

// TotalsByDate aggregates call minutes across sources per employee for one date
func (r *callLogRepository) TotalsByDate(date time.Time) ([]CallTotal, error) {
	query := `
		SELECT employee_id, SUM(duration_minutes), SUM(call_count)
		FROM call_logs
		WHERE date = ?
		GROUP BY employee_id
		ORDER BY employee_id ASC
	`

	rows, err := r.db.Query(query, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query call totals: %w", err)
	}
	defer rows.Close()

	var totals []CallTotal
	for rows.Next() {
		var t CallTotal
		if err := rows.Scan(&t.EmployeeID, &t.DurationMinutes, &t.CallCount); err != nil {
			return nil, fmt.Errorf("failed to scan call total: %w", err)
		}
		totals = append(totals, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating call totals: %w", err)
	}

	return totals, nil
}

// TotalForEmployeeDate aggregates one employee's call minutes across sources
// for one date. Returns nil without an error when no call logs exist.
func (r *callLogRepository) TotalForEmployeeDate(employeeID int, date time.Time) (*CallTotal, error) {
	query := `
		SELECT employee_id, SUM(duration_minutes), SUM(call_count)
		FROM call_logs
		WHERE employee_id = ? AND date = ?
		GROUP BY employee_id
	`

	var t CallTotal
	err := r.db.QueryRow(query, employeeID, date.Format("2006-01-02")).Scan(
		&t.EmployeeID,
		&t.DurationMinutes,
		&t.CallCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get call total: %w", err)
	}

	return &t, nil
}

package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dverbeek/calltrack/models"
)

// AttendanceRepository interface defines attendance record database operations
type AttendanceRepository interface {
	GetByID(id int) (*models.AttendanceRecord, error)
	GetByEmployeeDate(employeeID int, date time.Time) (*models.AttendanceRecord, error)
	GetByDateRange(employeeID int, from, to time.Time) ([]models.AttendanceRecord, error)
	UpsertAuto(record *models.AttendanceRecord) error
	SaveWithAudit(record *models.AttendanceRecord, audit *models.AuditEntry) error
	GetSummary(employeeID int, from, to time.Time) (*models.AttendanceSummary, error)
}

// attendanceRepository implements AttendanceRepository interface
type attendanceRepository struct {
	db *sql.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *sql.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceSelect = `
	SELECT
		a.id, a.employee_id, a.date, a.duration_minutes, a.call_count,
		a.status, a.source, a.manual_reason, a.updated_by, a.updated_at,
		e.first_name || ' ' || e.last_name as employee_name
	FROM attendance_records a
	LEFT JOIN employees e ON a.employee_id = e.id
`

func scanAttendance(row interface{ Scan(...interface{}) error }) (*models.AttendanceRecord, error) {
	var record models.AttendanceRecord
	var manualReason sql.NullString
	var updatedBy sql.NullInt64
	var employeeName sql.NullString

	err := row.Scan(
		&record.ID,
		&record.EmployeeID,
		&record.Date,
		&record.DurationMinutes,
		&record.CallCount,
		&record.Status,
		&record.Source,
		&manualReason,
		&updatedBy,
		&record.UpdatedAt,
		&employeeName,
	)
	if err != nil {
		return nil, err
	}

	if manualReason.Valid {
		record.ManualReason = manualReason.String
	}
	if updatedBy.Valid {
		id := int(updatedBy.Int64)
		record.UpdatedBy = &id
	}
	if employeeName.Valid {
		record.EmployeeName = employeeName.String
	}

	return &record, nil
}

// GetByID retrieves an attendance record by ID
func (r *attendanceRepository) GetByID(id int) (*models.AttendanceRecord, error) {
	record, err := scanAttendance(r.db.QueryRow(attendanceSelect+` WHERE a.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("attendance record with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return record, nil
}

// GetByEmployeeDate retrieves the attendance record for one employee-day.
// Returns nil without an error when no record exists.
func (r *attendanceRepository) GetByEmployeeDate(employeeID int, date time.Time) (*models.AttendanceRecord, error) {
	record, err := scanAttendance(r.db.QueryRow(
		attendanceSelect+` WHERE a.employee_id = ? AND a.date = ?`,
		employeeID, date.Format("2006-01-02"),
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return record, nil
}

// GetByDateRange retrieves attendance records within a date range, ordered by
// date then employee. Pass employeeID 0 for all employees.
func (r *attendanceRepository) GetByDateRange(employeeID int, from, to time.Time) ([]models.AttendanceRecord, error) {
	query := attendanceSelect + ` WHERE a.date >= ? AND a.date <= ?`
	args := []interface{}{from.Format("2006-01-02"), to.Format("2006-01-02")}

	if employeeID > 0 {
		query += ` AND a.employee_id = ?`
		args = append(args, employeeID)
	}
	query += ` ORDER BY a.date ASC, a.employee_id ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []models.AttendanceRecord
	for rows.Next() {
		record, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, *record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance records: %w", err)
	}

	return records, nil
}

// UpsertAuto writes an AUTO attendance record for an employee-day. The update
// arm is a no-op when the stored values already match, so re-running the batch
// with unchanged inputs leaves rows untouched.
func (r *attendanceRepository) UpsertAuto(record *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records
			(employee_id, date, duration_minutes, call_count, status, source, manual_reason, updated_by, updated_at)
		VALUES (?, ?, ?, ?, ?, 'AUTO', NULL, NULL, CURRENT_TIMESTAMP)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			duration_minutes = excluded.duration_minutes,
			call_count = excluded.call_count,
			status = excluded.status,
			source = 'AUTO',
			manual_reason = NULL,
			updated_by = NULL,
			updated_at = CURRENT_TIMESTAMP
		WHERE source != 'MANUAL'
			AND (duration_minutes != excluded.duration_minutes
				OR call_count != excluded.call_count
				OR status != excluded.status)
	`

	_, err := r.db.Exec(query,
		record.EmployeeID,
		record.Date.Format("2006-01-02"),
		record.DurationMinutes,
		record.CallCount,
		record.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	stored, err := r.GetByEmployeeDate(record.EmployeeID, record.Date)
	if err != nil {
		return err
	}
	if stored != nil {
		record.ID = stored.ID
	}

	return nil
}

// SaveWithAudit upserts an attendance record and appends its paired audit
// entry in one transaction: both commit or neither does.
func (r *attendanceRepository) SaveWithAudit(record *models.AttendanceRecord, audit *models.AuditEntry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var manualReason interface{}
	if record.ManualReason != "" {
		manualReason = record.ManualReason
	}
	var updatedBy interface{}
	if record.UpdatedBy != nil {
		updatedBy = *record.UpdatedBy
	}

	upsert := `
		INSERT INTO attendance_records
			(employee_id, date, duration_minutes, call_count, status, source, manual_reason, updated_by, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			duration_minutes = excluded.duration_minutes,
			call_count = excluded.call_count,
			status = excluded.status,
			source = excluded.source,
			manual_reason = excluded.manual_reason,
			updated_by = excluded.updated_by,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err = tx.Exec(upsert,
		record.EmployeeID,
		record.Date.Format("2006-01-02"),
		record.DurationMinutes,
		record.CallCount,
		record.Status,
		record.Source,
		manualReason,
		updatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	var recordID int
	err = tx.QueryRow(
		`SELECT id FROM attendance_records WHERE employee_id = ? AND date = ?`,
		record.EmployeeID, record.Date.Format("2006-01-02"),
	).Scan(&recordID)
	if err != nil {
		return fmt.Errorf("failed to read back attendance record: %w", err)
	}
	record.ID = recordID
	audit.AttendanceRecordID = recordID

	insertAudit := `
		INSERT INTO attendance_audit
			(attendance_record_id, employee_id, date,
			 old_duration, old_call_count, old_status,
			 new_duration, new_call_count, new_status,
			 reason, updated_by, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.Exec(insertAudit,
		audit.AttendanceRecordID,
		audit.EmployeeID,
		audit.Date.Format("2006-01-02"),
		audit.OldDuration,
		audit.OldCallCount,
		audit.OldStatus,
		audit.NewDuration,
		audit.NewCallCount,
		audit.NewStatus,
		audit.Reason,
		audit.UpdatedBy,
		audit.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to create audit entry: %w", err)
	}

	auditID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get audit ID: %w", err)
	}
	audit.ID = int(auditID)

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit attendance update: %w", err)
	}

	return nil
}

// GetSummary aggregates an employee's attendance over a date range
func (r *attendanceRepository) GetSummary(employeeID int, from, to time.Time) (*models.AttendanceSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = 'PRESENT' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'HALF_DAY' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'ABSENT' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(duration_minutes), 0),
			COALESCE(SUM(call_count), 0),
			COALESCE(SUM(CASE WHEN source = 'MANUAL' THEN 1 ELSE 0 END), 0)
		FROM attendance_records
		WHERE employee_id = ? AND date >= ? AND date <= ?
	`

	summary := models.AttendanceSummary{EmployeeID: employeeID}
	err := r.db.QueryRow(query, employeeID, from.Format("2006-01-02"), to.Format("2006-01-02")).Scan(
		&summary.TotalDays,
		&summary.PresentDays,
		&summary.HalfDays,
		&summary.AbsentDays,
		&summary.TotalCallMinutes,
		&summary.TotalCalls,
		&summary.ManualUpdates,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance summary: %w", err)
	}

	return &summary, nil
}

package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dverbeek/calltrack/models"
)

// AuditRepository interface defines attendance audit trail queries. The only
// write paths are the transactional save in the attendance repository and the
// retention purge here.
type AuditRepository interface {
	List(filter models.AuditFilter) ([]models.AuditEntry, error)
	CountByRecord(attendanceRecordID int) (int, error)
	PurgeOlderThan(cutoff time.Time) (int64, error)
}

// auditRepository implements AuditRepository interface
type auditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &auditRepository{db: db}
}

// List retrieves audit entries matching the filter, newest first
func (r *auditRepository) List(filter models.AuditFilter) ([]models.AuditEntry, error) {
	query := `
		SELECT
			a.id, a.attendance_record_id, a.employee_id, a.date,
			a.old_duration, a.old_call_count, a.old_status,
			a.new_duration, a.new_call_count, a.new_status,
			a.reason, a.updated_by, a.timestamp,
			e.first_name || ' ' || e.last_name as employee_name,
			u.first_name || ' ' || u.last_name as updated_by_name
		FROM attendance_audit a
		LEFT JOIN employees e ON a.employee_id = e.id
		LEFT JOIN employees u ON a.updated_by = u.id
		WHERE 1 = 1
	`
	var args []interface{}

	if filter.EmployeeID > 0 {
		query += ` AND a.employee_id = ?`
		args = append(args, filter.EmployeeID)
	}
	if !filter.From.IsZero() {
		query += ` AND a.date >= ?`
		args = append(args, filter.From.Format("2006-01-02"))
	}
	if !filter.To.IsZero() {
		query += ` AND a.date <= ?`
		args = append(args, filter.To.Format("2006-01-02"))
	}
	query += ` ORDER BY a.timestamp DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries: %w", err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var entry models.AuditEntry
		var employeeName, updatedByName sql.NullString

		err := rows.Scan(
			&entry.ID,
			&entry.AttendanceRecordID,
			&entry.EmployeeID,
			&entry.Date,
			&entry.OldDuration,
			&entry.OldCallCount,
			&entry.OldStatus,
			&entry.NewDuration,
			&entry.NewCallCount,
			&entry.NewStatus,
			&entry.Reason,
			&entry.UpdatedBy,
			&entry.Timestamp,
			&employeeName,
			&updatedByName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}

		if employeeName.Valid {
			entry.EmployeeName = employeeName.String
		}
		if updatedByName.Valid {
			entry.UpdatedByName = updatedByName.String
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", err)
	}

	return entries, nil
}

// CountByRecord counts audit entries referencing one attendance record
func (r *auditRepository) CountByRecord(attendanceRecordID int) (int, error) {
	var count int
	err := r.db.QueryRow(
		`SELECT COUNT(*) FROM attendance_audit WHERE attendance_record_id = ?`,
		attendanceRecordID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}

	return count, nil
}

// PurgeOlderThan deletes audit entries whose attendance date is before the
// cutoff. Returns the number of rows removed.
func (r *auditRepository) PurgeOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(
		`DELETE FROM attendance_audit WHERE date < ?`,
		cutoff.Format("2006-01-02"),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit entries: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return deleted, nil
}

package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/logging"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories"
)

// timeNow is injectable for testing
var timeNow = func() time.Time {
	return time.Now()
}

// AttendanceService interface defines attendance calculation and override
// business logic
type AttendanceService interface {
	RunForDate(date time.Time, force bool) (*models.RunResult, error)
	RunForRange(from, to time.Time, force bool) ([]models.RunResult, error)
	ManualUpdate(form *models.ManualUpdateForm, actorID int) (*models.AttendanceRecord, error)
	ResetOverride(form *models.ResetOverrideForm, actorID int) (*models.AttendanceRecord, error)
	GetRecords(employeeID int, from, to time.Time) ([]models.AttendanceRecord, error)
	GetSummary(employeeID int, from, to time.Time) (*models.AttendanceSummary, error)
	GetAuditTrail(filter models.AuditFilter, actorID int) ([]models.AuditEntry, error)
	PurgeAudit(retentionDays int) (int64, error)
}

// attendanceService implements AttendanceService interface
type attendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	auditRepo      repositories.AuditRepository
	callLogRepo    repositories.CallLogRepository
	configRepo     repositories.ConfigRepository
	employeeRepo   repositories.EmployeeRepository
	calendar       CalendarService
	authz          AuthzService
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(
	attendanceRepo repositories.AttendanceRepository,
	auditRepo repositories.AuditRepository,
	callLogRepo repositories.CallLogRepository,
	configRepo repositories.ConfigRepository,
	employeeRepo repositories.EmployeeRepository,
	calendar CalendarService,
	authz AuthzService,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		auditRepo:      auditRepo,
		callLogRepo:    callLogRepo,
		configRepo:     configRepo,
		employeeRepo:   employeeRepo,
		calendar:       calendar,
		authz:          authz,
	}
}

// RunForDate computes attendance for every active employee with call-log
// data on the given date.
// Re-running for the same date is a no-op for unchanged inputs: AUTO records
// are upserted in place and MANUAL records are never touched. Non-working
// days produce no records at all unless force is set.
func (s *attendanceService) RunForDate(date time.Time, force bool) (*models.RunResult, error) {
	log := logging.GetLogger()
	date = models.Truncate(date)

	result := &models.RunResult{
		RunID: uuid.New().String(),
		Date:  date,
	}

	working, err := s.calendar.IsWorkingDay(date)
	if err != nil {
		return nil, fmt.Errorf("failed to check working day: %w", err)
	}
	if !working && !force {
		result.Reason = fmt.Sprintf("%s is not a working day", date.Format("2006-01-02"))
		log.WithField("run_id", result.RunID).WithField("date", date.Format("2006-01-02")).
			Info("Skipping attendance run on non-working day")
		return result, nil
	}

	config, err := s.configRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active config: %w", err)
	}
	if config == nil {
		return nil, apperrors.Validation("no active threshold configuration found")
	}

	employees, err := s.employeeRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}

	totals, err := s.callLogRepo.TotalsByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get call totals: %w", err)
	}

	activeByID := make(map[int]bool, len(employees))
	for _, employee := range employees {
		activeByID[employee.ID] = true
	}

	// Only employees with call-log data get a record; employees without any
	// calls on the date are left without a row rather than marked absent.
	for _, total := range totals {
		if !activeByID[total.EmployeeID] {
			result.Skipped++
			continue
		}

		existing, err := s.attendanceRepo.GetByEmployeeDate(total.EmployeeID, date)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, models.RunError{
				EmployeeID: total.EmployeeID,
				Message:    err.Error(),
			})
			continue
		}

		// Manual overrides win over recomputation until explicitly reset
		if existing != nil && existing.IsManual() {
			result.Skipped++
			continue
		}

		record := &models.AttendanceRecord{
			EmployeeID:      total.EmployeeID,
			Date:            date,
			DurationMinutes: total.DurationMinutes,
			CallCount:       total.CallCount,
			Status:          CalculateStatus(total.DurationMinutes, config),
			Source:          models.SourceAuto,
		}

		if err := s.attendanceRepo.UpsertAuto(record); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, models.RunError{
				EmployeeID: total.EmployeeID,
				Message:    err.Error(),
			})
			continue
		}

		result.Processed++
	}

	log.WithField("run_id", result.RunID).
		WithField("date", date.Format("2006-01-02")).
		WithField("processed", result.Processed).
		WithField("skipped", result.Skipped).
		WithField("failed", result.Failed).
		Info("Attendance run completed")

	return result, nil
}

// RunForRange runs the batch calculation for every date in [from, to]
func (s *attendanceService) RunForRange(from, to time.Time, force bool) ([]models.RunResult, error) {
	from = models.Truncate(from)
	to = models.Truncate(to)
	if to.Before(from) {
		return nil, apperrors.Validation("end date must not be before start date")
	}

	var results []models.RunResult
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		result, err := s.RunForDate(date, force)
		if err != nil {
			return results, errors.Wrapf(err, "run failed for %s", date.Format("2006-01-02"))
		}
		results = append(results, *result)
	}

	return results, nil
}

// ManualUpdate overrides an employee's attendance for one date. The record
// and its audit entry are written in a single transaction; the new status is
// derived from the submitted duration against the active thresholds.
func (s *attendanceService) ManualUpdate(form *models.ManualUpdateForm, actorID int) (*models.AttendanceRecord, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	date, err := time.Parse("2006-01-02", form.Date)
	if err != nil {
		return nil, apperrors.Validation("date must be in YYYY-MM-DD format")
	}
	if date.After(models.Truncate(timeNow())) {
		return nil, apperrors.Validation("cannot set attendance for a future date")
	}

	if err := s.authz.Require(actorID, models.PermManualAttendance); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(form.EmployeeID); err != nil {
		return nil, apperrors.NotFoundf("employee %d not found", form.EmployeeID)
	}

	config, err := s.configRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active config: %w", err)
	}
	if config == nil {
		return nil, apperrors.Validation("no active threshold configuration found")
	}

	record := &models.AttendanceRecord{
		EmployeeID:      form.EmployeeID,
		Date:            date,
		DurationMinutes: form.DurationMinutes,
		CallCount:       form.CallCount,
		Status:          CalculateStatus(form.DurationMinutes, config),
		Source:          models.SourceManual,
		ManualReason:    form.Reason,
		UpdatedBy:       &actorID,
	}

	return s.saveAudited(record, form.Reason, actorID)
}

// ResetOverride returns a manually overridden record to automatic
// calculation, recomputing it from the stored call logs. The reset itself is
// audited like any other manual change.
func (s *attendanceService) ResetOverride(form *models.ResetOverrideForm, actorID int) (*models.AttendanceRecord, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	if err := s.authz.Require(actorID, models.PermManualAttendance); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", form.Date)
	if err != nil {
		return nil, apperrors.Validation("date must be in YYYY-MM-DD format")
	}

	existing, err := s.attendanceRepo.GetByEmployeeDate(form.EmployeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NotFoundf("no attendance record for employee %d on %s", form.EmployeeID, form.Date)
	}
	if !existing.IsManual() {
		return nil, apperrors.Validation("record is not a manual override")
	}

	config, err := s.configRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active config: %w", err)
	}
	if config == nil {
		return nil, apperrors.Validation("no active threshold configuration found")
	}

	total, err := s.callLogRepo.TotalForEmployeeDate(form.EmployeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get call totals: %w", err)
	}

	var duration, callCount int
	if total != nil {
		duration = total.DurationMinutes
		callCount = total.CallCount
	}

	record := &models.AttendanceRecord{
		EmployeeID:      form.EmployeeID,
		Date:            date,
		DurationMinutes: duration,
		CallCount:       callCount,
		Status:          CalculateStatus(duration, config),
		Source:          models.SourceAuto,
		UpdatedBy:       &actorID,
	}

	return s.saveAudited(record, form.Reason, actorID)
}

// saveAudited persists the record alongside its audit entry in one
// transaction. Old values default to zero duration and ABSENT when no record
// existed before.
func (s *attendanceService) saveAudited(record *models.AttendanceRecord, reason string, actorID int) (*models.AttendanceRecord, error) {
	existing, err := s.attendanceRepo.GetByEmployeeDate(record.EmployeeID, record.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	audit := &models.AuditEntry{
		EmployeeID:   record.EmployeeID,
		Date:         record.Date,
		OldStatus:    models.StatusAbsent,
		NewDuration:  record.DurationMinutes,
		NewCallCount: record.CallCount,
		NewStatus:    record.Status,
		Reason:       reason,
		UpdatedBy:    actorID,
		Timestamp:    timeNow(),
	}
	if existing != nil {
		audit.OldDuration = existing.DurationMinutes
		audit.OldCallCount = existing.CallCount
		audit.OldStatus = existing.Status
	}

	if err := s.attendanceRepo.SaveWithAudit(record, audit); err != nil {
		return nil, fmt.Errorf("failed to save attendance record: %w", err)
	}

	logging.GetLogger().
		WithField("employee_id", record.EmployeeID).
		WithField("date", record.GetFormattedDate()).
		WithField("status", record.Status).
		WithField("source", record.Source).
		WithField("updated_by", actorID).
		Info("Attendance record saved with audit entry")

	return record, nil
}

// GetRecords retrieves attendance records for a date range. Pass employeeID 0
// for all employees.
func (s *attendanceService) GetRecords(employeeID int, from, to time.Time) ([]models.AttendanceRecord, error) {
	return s.attendanceRepo.GetByDateRange(employeeID, from, to)
}

// GetSummary aggregates one employee's attendance over a date range
func (s *attendanceService) GetSummary(employeeID int, from, to time.Time) (*models.AttendanceSummary, error) {
	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		return nil, apperrors.NotFoundf("employee %d not found", employeeID)
	}

	return s.attendanceRepo.GetSummary(employeeID, from, to)
}

// GetAuditTrail retrieves manual change history, newest first
func (s *attendanceService) GetAuditTrail(filter models.AuditFilter, actorID int) ([]models.AuditEntry, error) {
	if err := s.authz.Require(actorID, models.PermViewAudit); err != nil {
		return nil, err
	}

	return s.auditRepo.List(filter)
}

// PurgeAudit removes audit entries older than the retention horizon and
// returns how many were deleted
func (s *attendanceService) PurgeAudit(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = models.DefaultAuditRetentionDays
	}

	cutoff := timeNow().AddDate(0, 0, -retentionDays)
	deleted, err := s.auditRepo.PurgeOlderThan(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge audit entries: %w", err)
	}

	logging.GetLogger().
		WithField("retention_days", retentionDays).
		WithField("deleted", deleted).
		Info("Purged audit entries past retention")

	return deleted, nil
}

package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories"
)

// csvHeader is the required column order for CSV imports. The source column
// is optional; absent or empty values default to CSV.
var csvHeader = []string{"employee_id", "date", "duration_minutes", "call_count", "source"}

// CallLogService interface defines call data ingestion business logic
type CallLogService interface {
	Ingest(form *models.CallLogForm, actorID int) (*models.CallLogEntry, error)
	BulkIngest(forms []models.CallLogForm, actorID int) (*models.IngestResult, error)
	ImportCSV(r io.Reader, actorID int) (*models.IngestResult, error)
	GetByDateRange(employeeID int, from, to time.Time) ([]models.CallLogEntry, error)
}

// callLogService implements CallLogService interface
type callLogService struct {
	callLogRepo  repositories.CallLogRepository
	employeeRepo repositories.EmployeeRepository
	authz        AuthzService
}

// NewCallLogService creates a new call log service
func NewCallLogService(callLogRepo repositories.CallLogRepository, employeeRepo repositories.EmployeeRepository, authz AuthzService) CallLogService {
	return &callLogService{
		callLogRepo:  callLogRepo,
		employeeRepo: employeeRepo,
		authz:        authz,
	}
}

// Ingest validates and stores a single call log entry, upserting on the
// (employee, date, source) key
func (s *callLogService) Ingest(form *models.CallLogForm, actorID int) (*models.CallLogEntry, error) {
	if err := s.authz.Require(actorID, models.PermIngestCallLogs); err != nil {
		return nil, err
	}

	entry, _, err := s.ingestOne(form)
	return entry, err
}

// ingestOne performs validation and the upsert for a single form without
// authorization checks; bulk paths authorize once for the whole batch.
func (s *callLogService) ingestOne(form *models.CallLogForm) (*models.CallLogEntry, bool, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, false, apperrors.Validation(strings.Join(errs, ", "))
	}

	employee, err := s.employeeRepo.GetByID(form.EmployeeID)
	if err != nil {
		return nil, false, apperrors.NotFoundf("employee %d not found", form.EmployeeID)
	}
	if !employee.Active {
		return nil, false, apperrors.Validationf("employee %d is not active", form.EmployeeID)
	}

	date, err := time.Parse("2006-01-02", form.Date)
	if err != nil {
		return nil, false, apperrors.Validation("date must be in YYYY-MM-DD format")
	}

	source := form.Source
	if source == "" {
		source = models.CallSourceAPI
	}

	entry := &models.CallLogEntry{
		EmployeeID:      form.EmployeeID,
		Date:            date,
		DurationMinutes: form.DurationMinutes,
		CallCount:       form.CallCount,
		Source:          source,
	}

	created, err := s.callLogRepo.Upsert(entry)
	if err != nil {
		return nil, false, fmt.Errorf("failed to store call log: %w", err)
	}

	return entry, created, nil
}

// BulkIngest stores a batch of call log entries, continuing past individual
// failures. Duplicate (employee, date, source) keys within one batch are
// rejected as conflicts rather than silently overwriting each other.
func (s *callLogService) BulkIngest(forms []models.CallLogForm, actorID int) (*models.IngestResult, error) {
	if err := s.authz.Require(actorID, models.PermIngestCallLogs); err != nil {
		return nil, err
	}

	result := &models.IngestResult{}
	seen := make(map[string]bool)

	for i, form := range forms {
		form := form
		key := fmt.Sprintf("%d|%s|%s", form.EmployeeID, form.Date, form.Source)
		if seen[key] {
			result.Failed++
			result.Errors = append(result.Errors, models.IngestItemError{
				Index:      i,
				EmployeeID: form.EmployeeID,
				Date:       form.Date,
				Message:    "duplicate entry for employee, date and source within batch",
			})
			continue
		}
		seen[key] = true

		_, created, err := s.ingestOne(&form)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, models.IngestItemError{
				Index:      i,
				EmployeeID: form.EmployeeID,
				Date:       form.Date,
				Message:    err.Error(),
			})
			continue
		}

		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

// ImportCSV parses and ingests a CSV stream. The first row must be the
// header; parse failures on individual rows are reported per item.
func (s *callLogService) ImportCSV(r io.Reader, actorID int) (*models.IngestResult, error) {
	if err := s.authz.Require(actorID, models.PermIngestCallLogs); err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, apperrors.Validation("CSV file is empty or unreadable")
	}
	if err := validateCSVHeader(header); err != nil {
		return nil, err
	}

	var forms []models.CallLogForm
	result := &models.IngestResult{}
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, models.IngestItemError{
				Index:   line,
				Message: fmt.Sprintf("unparseable row: %v", err),
			})
			continue
		}

		form, err := csvRecordToForm(record)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, models.IngestItemError{
				Index:   line,
				Message: err.Error(),
			})
			continue
		}

		forms = append(forms, *form)
	}

	batch, err := s.BulkIngest(forms, actorID)
	if err != nil {
		return nil, err
	}

	result.Created = batch.Created
	result.Updated = batch.Updated
	result.Failed += batch.Failed
	result.Errors = append(result.Errors, batch.Errors...)

	return result, nil
}

// GetByDateRange retrieves stored call log entries. Pass employeeID 0 for
// all employees.
func (s *callLogService) GetByDateRange(employeeID int, from, to time.Time) ([]models.CallLogEntry, error) {
	return s.callLogRepo.GetByDateRange(employeeID, from, to)
}

func validateCSVHeader(header []string) error {
	if len(header) < 4 {
		return apperrors.Validationf("CSV header must contain columns %s", strings.Join(csvHeader, ","))
	}
	for i, want := range csvHeader[:4] {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return apperrors.Validationf("CSV column %d must be %q", i+1, want)
		}
	}
	return nil
}

func csvRecordToForm(record []string) (*models.CallLogForm, error) {
	if len(record) < 4 {
		return nil, fmt.Errorf("row has %d columns, expected at least 4", len(record))
	}

	employeeID, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid employee_id %q", record[0])
	}

	duration, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid duration_minutes %q", record[2])
	}

	callCount, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid call_count %q", record[3])
	}

	source := models.CallSourceCSV
	if len(record) > 4 && strings.TrimSpace(record[4]) != "" {
		source = strings.TrimSpace(record[4])
	}

	return &models.CallLogForm{
		EmployeeID:      employeeID,
		Date:            strings.TrimSpace(record[1]),
		DurationMinutes: duration,
		CallCount:       callCount,
		Source:          source,
	}, nil
}

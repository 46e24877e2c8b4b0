package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories"
	"github.com/dverbeek/calltrack/repositories/mocks"
)

// fixedNow is a Friday, used as "today" throughout the attendance tests
var fixedNow = time.Date(2026, 8, 14, 10, 30, 0, 0, time.UTC)

// AttendanceServiceTestSuite is a test suite for the attendance service
type AttendanceServiceTestSuite struct {
	suite.Suite
	service            AttendanceService
	mockAttendanceRepo *mocks.MockAttendanceRepository
	mockAuditRepo      *mocks.MockAuditRepository
	mockCallLogRepo    *mocks.MockCallLogRepository
	mockConfigRepo     *mocks.MockConfigRepository
	mockEmployeeRepo   *mocks.MockEmployeeRepository
	mockCalendarRepo   *mocks.MockCalendarRepository
	mockPermissionRepo *mocks.MockPermissionRepository
	originalNow        func() time.Time
}

// SetupTest sets up the test suite before each test
func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.mockAttendanceRepo = mocks.NewMockAttendanceRepository(suite.T())
	suite.mockAuditRepo = mocks.NewMockAuditRepository(suite.T())
	suite.mockCallLogRepo = mocks.NewMockCallLogRepository(suite.T())
	suite.mockConfigRepo = mocks.NewMockConfigRepository(suite.T())
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepository(suite.T())
	suite.mockCalendarRepo = mocks.NewMockCalendarRepository(suite.T())
	suite.mockPermissionRepo = mocks.NewMockPermissionRepository(suite.T())

	authz := NewAuthzService(suite.mockEmployeeRepo, suite.mockPermissionRepo)
	calendar := NewCalendarService(suite.mockCalendarRepo, authz)

	suite.service = NewAttendanceService(
		suite.mockAttendanceRepo,
		suite.mockAuditRepo,
		suite.mockCallLogRepo,
		suite.mockConfigRepo,
		suite.mockEmployeeRepo,
		calendar,
		authz,
	)

	suite.originalNow = timeNow
	timeNow = func() time.Time { return fixedNow }
}

// TearDownTest restores the clock after each test
func (suite *AttendanceServiceTestSuite) TearDownTest() {
	timeNow = suite.originalNow
}

func (suite *AttendanceServiceTestSuite) activeConfig() *models.ThresholdConfig {
	return &models.ThresholdConfig{
		ID:             1,
		FullDayMinutes: 171,
		HalfDayMinutes: 121,
		Active:         true,
	}
}

func (suite *AttendanceServiceTestSuite) expectWorkingDay(working bool) {
	suite.mockCalendarRepo.EXPECT().GetWorkingDay(mock.AnythingOfType("int")).
		Return(&models.WorkingDay{DayOfWeek: 4, Active: working}, nil)
	if working {
		suite.mockCalendarRepo.EXPECT().IsHoliday(mock.AnythingOfType("time.Time")).Return(false, nil)
	}
}

// TestRunForDate_NonWorkingDay tests that no records are produced on a
// non-working day without force
func (suite *AttendanceServiceTestSuite) TestRunForDate_NonWorkingDay() {
	suite.expectWorkingDay(false)

	result, err := suite.service.RunForDate(fixedNow, false)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), result)
	assert.NotEmpty(suite.T(), result.RunID)
	assert.Equal(suite.T(), 0, result.Processed)
	assert.Contains(suite.T(), result.Reason, "not a working day")
}

// TestRunForDate_Holiday tests that a holiday counts as a non-working day
func (suite *AttendanceServiceTestSuite) TestRunForDate_Holiday() {
	suite.mockCalendarRepo.EXPECT().GetWorkingDay(mock.AnythingOfType("int")).
		Return(&models.WorkingDay{DayOfWeek: 4, Active: true}, nil)
	suite.mockCalendarRepo.EXPECT().IsHoliday(mock.AnythingOfType("time.Time")).Return(true, nil)

	result, err := suite.service.RunForDate(fixedNow, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, result.Processed)
	assert.Contains(suite.T(), result.Reason, "not a working day")
}

// TestRunForDate_Success tests a normal run: every active employee with call
// logs gets a record, classified against the active thresholds
func (suite *AttendanceServiceTestSuite) TestRunForDate_Success() {
	suite.expectWorkingDay(true)
	suite.mockConfigRepo.EXPECT().GetActive().Return(suite.activeConfig(), nil)

	employees := []models.Employee{
		{ID: 1, FirstName: "Asha", Active: true},
		{ID: 2, FirstName: "Ben", Active: true},
		{ID: 3, FirstName: "Carla", Active: true},
	}
	suite.mockEmployeeRepo.EXPECT().GetActive().Return(employees, nil)

	totals := []repositories.CallTotal{
		{EmployeeID: 1, DurationMinutes: 200, CallCount: 40},
		{EmployeeID: 2, DurationMinutes: 130, CallCount: 25},
		{EmployeeID: 3, DurationMinutes: 45, CallCount: 8},
	}
	suite.mockCallLogRepo.EXPECT().TotalsByDate(mock.AnythingOfType("time.Time")).Return(totals, nil)

	suite.mockAttendanceRepo.EXPECT().GetByEmployeeDate(mock.AnythingOfType("int"), mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	statusByEmployee := make(map[int]models.AttendanceStatus)
	suite.mockAttendanceRepo.EXPECT().UpsertAuto(mock.MatchedBy(func(record *models.AttendanceRecord) bool {
		statusByEmployee[record.EmployeeID] = record.Status
		return record.Source == models.SourceAuto
	})).Return(nil)

	result, err := suite.service.RunForDate(fixedNow, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, result.Processed)
	assert.Equal(suite.T(), 0, result.Skipped)
	assert.Equal(suite.T(), 0, result.Failed)
	assert.True(suite.T(), result.Success())

	assert.Equal(suite.T(), models.StatusPresent, statusByEmployee[1])
	assert.Equal(suite.T(), models.StatusHalfDay, statusByEmployee[2])
	assert.Equal(suite.T(), models.StatusAbsent, statusByEmployee[3])
}

// TestRunForDate_NoCallLogsNoRecord tests that an active employee without any
// call logs on the date gets no record at all, not an absent one
func (suite *AttendanceServiceTestSuite) TestRunForDate_NoCallLogsNoRecord() {
	suite.expectWorkingDay(true)
	suite.mockConfigRepo.EXPECT().GetActive().Return(suite.activeConfig(), nil)

	employees := []models.Employee{
		{ID: 1, FirstName: "Asha", Active: true},
	}
	suite.mockEmployeeRepo.EXPECT().GetActive().Return(employees, nil)
	suite.mockCallLogRepo.EXPECT().TotalsByDate(mock.AnythingOfType("time.Time")).
		Return([]repositories.CallTotal{}, nil)

	// No GetByEmployeeDate or UpsertAuto expectations: the run must not write
	result, err := suite.service.RunForDate(fixedNow, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, result.Processed)
	assert.Equal(suite.T(), 0, result.Skipped)
	assert.Equal(suite.T(), 0, result.Failed)
}

// TestRunForDate_InactiveEmployeeSkipped tests that call logs belonging to a
// deactivated employee do not produce a record
func (suite *AttendanceServiceTestSuite) TestRunForDate_InactiveEmployeeSkipped() {
	suite.expectWorkingDay(true)
	suite.mockConfigRepo.EXPECT().GetActive().Return(suite.activeConfig(), nil)

	employees := []models.Employee{
		{ID: 1, FirstName: "Asha", Active: true},
	}
	suite.mockEmployeeRepo.EXPECT().GetActive().Return(employees, nil)

	totals := []repositories.CallTotal{
		{EmployeeID: 1, DurationMinutes: 200, CallCount: 40},
		{EmployeeID: 9, DurationMinutes: 180, CallCount: 30},
	}
	suite.mockCallLogRepo.EXPECT().TotalsByDate(mock.AnythingOfType("time.Time")).Return(totals, nil)

	suite.mockAttendanceRepo.EXPECT().GetByEmployeeDate(1, mock.AnythingOfType("time.Time")).Return(nil, nil)
	suite.mockAttendanceRepo.EXPECT().UpsertAuto(mock.MatchedBy(func(record *models.AttendanceRecord) bool {
		return record.EmployeeID == 1
	})).Return(nil)

	result, err := suite.service.RunForDate(fixedNow, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Processed)
	assert.Equal(suite.T(), 1, result.Skipped)
}

// TestRunForDate_ManualRecordsSkipped tests that manual overrides survive
// recomputation untouched
func (suite *AttendanceServiceTestSuite) TestRunForDate_ManualRecordsSkipped() {
	suite.expectWorkingDay(true)
	suite.mockConfigRepo.EXPECT().GetActive().Return(suite.activeConfig(), nil)

	employees := []models.Employee{
		{ID: 1, FirstName: "Asha", Active: true},
		{ID: 2, FirstName: "Ben", Active: true},
	}
	suite.mockEmployeeRepo.EXPECT().GetActive().Return(employees, nil)

	totals := []repositories.CallTotal{
		{EmployeeID: 1, DurationMinutes: 300, CallCount: 55},
		{EmployeeID: 2, DurationMinutes: 140, CallCount: 20},
	}
	suite.mockCallLogRepo.EXPECT().TotalsByDate(mock.AnythingOfType("time.Time")).Return(totals, nil)

	manual := &models.AttendanceRecord{
		ID:         7,
		EmployeeID: 1,
		Status:     models.StatusPresent,
		Source:     models.SourceManual,
	}
	suite.mockAttendanceRepo.EXPECT().GetByEmployeeDate(1, mock.AnythingOfType("time.Time")).Return(manual, nil)
	suite.mockAttendanceRepo.EXPECT().GetByEmployeeDate(2, mock.AnythingOfType("time.Time")).Return(nil, nil)

	// Only employee 2 may be upserted; the manual record must not be touched
	suite.mockAttendanceRepo.EXPECT().UpsertAuto(mock.MatchedBy(func(record *models.AttendanceRecord) bool {
		return record.EmployeeID == 2
	})).Return(nil)

	result, err := suite.service.RunForDate(fixedNow, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Processed)
	assert.Equal(suite.T(), 1, result.Skipped)
}

// TestRunForDate_NoActiveConfig tests that a run refuses to start without an
// active threshold configuration
func (suite *AttendanceServiceTestSuite) TestRunForDate_NoActiveConfig() {
	suite.expectWorkingDay(true)
	suite.mockConfigRepo.EXPECT().GetActive().Return(nil, nil)

	result, err := suite.service.RunForDate(fixedNow, false)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), result)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRunForDate_PerEmployeeFailure tests that one employee's failure never
// blocks the rest of the batch
func (suite *AttendanceServiceTestSuite) TestRunForDate_PerEmployeeFailure() {
	suite.expectWorkingDay(true)
	suite.mockConfigRepo.EXPECT().GetActive().Return(suite.activeConfig(), nil)

	employees := []models.Employee{
		{ID: 1, FirstName: "Asha", Active: true},
		{ID: 2, FirstName: "Ben", Active: true},
	}
	suite.mockEmployeeRepo.EXPECT().GetActive().Return(employees, nil)

	totals := []repositories.CallTotal{
		{EmployeeID: 1, DurationMinutes: 180, CallCount: 30},
		{EmployeeID: 2, DurationMinutes: 220, CallCount: 35},
	}
	suite.mockCallLogRepo.EXPECT().TotalsByDate(mock.AnythingOfType("time.Time")).Return(totals, nil)
	suite.mockAttendanceRepo.EXPECT().GetByEmployeeDate(mock.AnythingOfType("int"), mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	suite.mockAttendanceRepo.EXPECT().UpsertAuto(mock.MatchedBy(func(record *models.AttendanceRecord) bool {
		return record.EmployeeID == 1
	})).Return(errors.New("disk full"))
	suite.mockAttendanceRepo.EXPECT().UpsertAuto(mock.MatchedBy(func(record *models.AttendanceRecord) bool {
		return record.EmployeeID == 2
	})).Return(nil)

	result, err := suite.service.RunForDate(fixedNow, false)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Processed)
	assert.Equal(suite.T(), 1, result.Failed)
	assert.False(suite.T(), result.Success())
	assert.Len(suite.T(), result.Errors, 1)
	assert.Equal(suite.T(), 1, result.Errors[0].EmployeeID)
}

// TestRunForRange_InvertedRange tests range validation
func (suite *AttendanceServiceTestSuite) TestRunForRange_InvertedRange() {
	results, err := suite.service.RunForRange(fixedNow, fixedNow.AddDate(0, 0, -3), false)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), results)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *AttendanceServiceTestSuite) superuser(id int) {
	suite.mockEmployeeRepo.EXPECT().GetByID(id).
		Return(&models.Employee{ID: id, FirstName: "Root", Active: true, Superuser: true}, nil)
}

// TestManualUpdate_Success tests a manual override with a sufficient reason,
// saved together with its audit entry
func (suite *AttendanceServiceTestSuite) TestManualUpdate_Success() {
	actorID := 99
	suite.superuser(actorID)
	suite.mockEmployeeRepo.EXPECT().GetByID(1).
		Return(&models.Employee{ID: 1, FirstName: "Asha", Active: true}, nil)
	suite.mockConfigRepo.EXPECT().GetActive().Return(suite.activeConfig(), nil)

	existing := &models.AttendanceRecord{
		ID:              5,
		EmployeeID:      1,
		DurationMinutes: 90,
		CallCount:       12,
		Status:          models.StatusAbsent,
		Source:          models.SourceAuto,
	}
	suite.mockAttendanceRepo.EXPECT().GetByEmployeeDate(1, mock.AnythingOfType("time.Time")).Return(existing, nil)

	suite.mockAttendanceRepo.EXPECT().SaveWithAudit(
		mock.MatchedBy(func(record *models.AttendanceRecord) bool {
			return record.EmployeeID == 1 &&
				record.Source == models.SourceManual &&
				record.Status == models.StatusPresent &&
				record.UpdatedBy != nil && *record.UpdatedBy == actorID
		}),
		mock.MatchedBy(func(audit *models.AuditEntry) bool {
			return audit.OldStatus == models.StatusAbsent &&
				audit.OldDuration == 90 &&
				audit.NewStatus == models.StatusPresent &&
				audit.NewDuration == 200 &&
				audit.UpdatedBy == actorID &&
				audit.Timestamp.Equal(fixedNow)
		}),
	).Return(nil)

	form := &models.ManualUpdateForm{
		EmployeeID:      1,
		Date:            "2026-08-13",
		DurationMinutes: 200,
		CallCount:       35,
		Reason:          "agent covered the desk phone all day",
	}
	record, err := suite.service.ManualUpdate(form, actorID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), record)
	assert.Equal(suite.T(), models.SourceManual, record.Source)
	assert.Equal(suite.T(), "agent covered the desk phone all day", record.ManualReason)
}

// TestManualUpdate_ShortReason tests the minimum reason length
func (suite *AttendanceServiceTestSuite) TestManualUpdate_ShortReason() {
	form := &models.ManualUpdateForm{
		EmployeeID:      1,
		Date:            "2026-08-13",
		DurationMinutes: 200,
		Reason:          "sick",
	}
	record, err := suite.service.ManualUpdate(form, 99)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), record)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "at least 10 characters")
}

// TestManualUpdate_FutureDate tests that overrides cannot be set in the future
func (suite *AttendanceServiceTestSuite) TestManualUpdate_FutureDate() {
	form := &models.ManualUpdateForm{
		EmployeeID:      1,
		Date:            "2026-08-15", // the day after fixedNow
		DurationMinutes: 200,
		Reason:          "planned overtime next week",
	}
	record, err := suite.service.ManualUpdate(form, 99)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), record)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "future date")
}

// TestManualUpdate_PermissionDenied tests that a plain employee without the
// grant cannot override attendance
func (suite *AttendanceServiceTestSuite) TestManualUpdate_PermissionDenied() {
	actorID := 50
	suite.mockEmployeeRepo.EXPECT().GetByID(actorID).
		Return(&models.Employee{ID: actorID, FirstName: "Ben", Active: true}, nil)
	suite.mockPermissionRepo.EXPECT().Has(actorID, models.PermManualAttendance).Return(false, nil)

	form := &models.ManualUpdateForm{
		EmployeeID:      1,
		Date:            "2026-08-13",
		DurationMinutes: 200,
		Reason:          "agent covered the desk phone all day",
	}
	record, err := suite.service.ManualUpdate(form, actorID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), record)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestManualUpdate_GrantedPermission tests that a direct grant is enough,
// without superuser status
func (suite *AttendanceServiceTestSuite) TestManualUpdate_GrantedPermission() {
	actorID := 50
	suite.mockEmployeeRepo.EXPECT().GetByID(actorID).
		Return(&models.Employee{ID: actorID, FirstName: "Ben", Active: true}, nil)
	suite.mockPermissionRepo.EXPECT().Has(actorID, models.PermManualAttendance).Return(true, nil)
	suite.mockEmployeeRepo.EXPECT().GetByID(1).
		Return(&models.Employee{ID: 1, FirstName: "Asha", Active: true}, nil)
	suite.mockConfigRepo.EXPECT().GetActive().Return(suite.activeConfig(), nil)
	suite.mockAttendanceRepo.EXPECT().GetByEmployeeDate(1, mock.AnythingOfType("time.Time")).Return(nil, nil)
	suite.mockAttendanceRepo.EXPECT().SaveWithAudit(
		mock.AnythingOfType("*models.AttendanceRecord"),
		mock.MatchedBy(func(audit *models.AuditEntry) bool {
			// No prior record: old values default to zero and ABSENT
			return audit.OldStatus == models.StatusAbsent && audit.OldDuration == 0
		}),
	).Return(nil)

	form := &models.ManualUpdateForm{
		EmployeeID:      1,
		Date:            "2026-08-13",
		DurationMinutes: 130,
		Reason:          "half day approved by the floor manager",
	}
	record, err := suite.service.ManualUpdate(form, actorID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusHalfDay, record.Status)
}

// TestManualUpdate_EmployeeNotFound tests the unknown target employee case
func (suite *AttendanceServiceTestSuite) TestManualUpdate_EmployeeNotFound() {
	actorID := 99
	suite.superuser(actorID)
	suite.mockEmployeeRepo.EXPECT().GetByID(12345).Return(nil, errors.New("employee not found"))

	form := &models.ManualUpdateForm{
		EmployeeID:      12345,
		Date:            "2026-08-13",
		DurationMinutes: 200,
		Reason:          "agent covered the desk phone all day",
	}
	record, err := suite.service.ManualUpdate(form, actorID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), record)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestResetOverride_Success tests resetting a manual override back to the
// automatically computed value
func (suite *AttendanceServiceTestSuite) TestResetOverride_Success() {
	actorID := 99
	suite.superuser(actorID)

	manual := &models.AttendanceRecord{
		ID:              5,
		EmployeeID:      1,
		DurationMinutes: 480,
		CallCount:       1,
		Status:          models.StatusPresent,
		Source:          models.SourceManual,
	}
	suite.mockAttendanceRepo.EXPECT().GetByEmployeeDate(1, mock.AnythingOfType("time.Time")).Return(manual, nil)
	suite.mockConfigRepo.EXPECT().GetActive().Return(suite.activeConfig(), nil)
	suite.mockCallLogRepo.EXPECT().TotalForEmployeeDate(1, mock.AnythingOfType("time.Time")).
		Return(&repositories.CallTotal{EmployeeID: 1, DurationMinutes: 130, CallCount: 22}, nil)

	suite.mockAttendanceRepo.EXPECT().SaveWithAudit(
		mock.MatchedBy(func(record *models.AttendanceRecord) bool {
			return record.Source == models.SourceAuto &&
				record.DurationMinutes == 130 &&
				record.Status == models.StatusHalfDay
		}),
		mock.MatchedBy(func(audit *models.AuditEntry) bool {
			return audit.OldStatus == models.StatusPresent && audit.NewStatus == models.StatusHalfDay
		}),
	).Return(nil)

	form := &models.ResetOverrideForm{
		EmployeeID: 1,
		Date:       "2026-08-13",
		Reason:     "override entered against the wrong employee",
	}
	record, err := suite.service.ResetOverride(form, actorID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.SourceAuto, record.Source)
}

// TestResetOverride_NotManual tests that only manual overrides can be reset
func (suite *AttendanceServiceTestSuite) TestResetOverride_NotManual() {
	actorID := 99
	suite.superuser(actorID)

	auto := &models.AttendanceRecord{ID: 5, EmployeeID: 1, Source: models.SourceAuto}
	suite.mockAttendanceRepo.EXPECT().GetByEmployeeDate(1, mock.AnythingOfType("time.Time")).Return(auto, nil)

	form := &models.ResetOverrideForm{
		EmployeeID: 1,
		Date:       "2026-08-13",
		Reason:     "override entered against the wrong employee",
	}
	record, err := suite.service.ResetOverride(form, actorID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), record)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "not a manual override")
}

// TestResetOverride_NoRecord tests resetting a day that was never recorded
func (suite *AttendanceServiceTestSuite) TestResetOverride_NoRecord() {
	actorID := 99
	suite.superuser(actorID)
	suite.mockAttendanceRepo.EXPECT().GetByEmployeeDate(1, mock.AnythingOfType("time.Time")).Return(nil, nil)

	form := &models.ResetOverrideForm{
		EmployeeID: 1,
		Date:       "2026-08-13",
		Reason:     "override entered against the wrong employee",
	}
	record, err := suite.service.ResetOverride(form, actorID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), record)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestGetAuditTrail_PermissionDenied tests that the audit trail is gated
func (suite *AttendanceServiceTestSuite) TestGetAuditTrail_PermissionDenied() {
	actorID := 50
	suite.mockEmployeeRepo.EXPECT().GetByID(actorID).
		Return(&models.Employee{ID: actorID, FirstName: "Ben", Active: true}, nil)
	suite.mockPermissionRepo.EXPECT().Has(actorID, models.PermViewAudit).Return(false, nil)

	entries, err := suite.service.GetAuditTrail(models.AuditFilter{}, actorID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), entries)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestPurgeAudit_DefaultRetention tests that a non-positive retention falls
// back to the default horizon
func (suite *AttendanceServiceTestSuite) TestPurgeAudit_DefaultRetention() {
	expectedCutoff := fixedNow.AddDate(0, 0, -models.DefaultAuditRetentionDays)
	suite.mockAuditRepo.EXPECT().PurgeOlderThan(mock.MatchedBy(func(cutoff time.Time) bool {
		return cutoff.Equal(expectedCutoff)
	})).Return(int64(12), nil)

	deleted, err := suite.service.PurgeAudit(0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(12), deleted)
}

// TestPurgeAudit_CustomRetention tests an explicit retention horizon
func (suite *AttendanceServiceTestSuite) TestPurgeAudit_CustomRetention() {
	expectedCutoff := fixedNow.AddDate(0, 0, -30)
	suite.mockAuditRepo.EXPECT().PurgeOlderThan(mock.MatchedBy(func(cutoff time.Time) bool {
		return cutoff.Equal(expectedCutoff)
	})).Return(int64(3), nil)

	deleted, err := suite.service.PurgeAudit(30)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), deleted)
}

// TestAttendanceServiceTestSuite runs the test suite
func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}

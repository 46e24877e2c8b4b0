package repositories

import (
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/dverbeek/calltrack/database"
	"github.com/dverbeek/calltrack/models"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := "test_" + time.Now().Format("20060102150405.000000000") + ".db"

	// Clean up function
	t.Cleanup(func() {
		database.CloseDB()
		os.Remove(dbPath)
	})

	// Initialize test database using the actual migration system
	if err := database.InitializeDatabase(dbPath); err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	return database.GetDB()
}

func createTestEmployee(t *testing.T, db *sql.DB, firstName, email string) *models.Employee {
	repo := NewEmployeeRepository(db)
	employee := &models.Employee{
		FirstName: firstName,
		LastName:  "Tester",
		Email:     email,
		Active:    true,
	}
	if err := repo.Create(employee); err != nil {
		t.Fatalf("Failed to create employee: %v", err)
	}
	return employee
}

func TestEmployeeRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEmployeeRepository(db)

	employee := createTestEmployee(t, db, "Asha", "asha@example.com")
	if employee.ID == 0 {
		t.Error("Expected employee ID to be set after creation")
	}

	// Test GetByID
	retrieved, err := repo.GetByID(employee.ID)
	if err != nil {
		t.Fatalf("Failed to get employee by ID: %v", err)
	}
	if retrieved.Email != "asha@example.com" {
		t.Errorf("Expected email asha@example.com, got %s", retrieved.Email)
	}

	// Test GetByEmail
	byEmail, err := repo.GetByEmail("asha@example.com")
	if err != nil {
		t.Fatalf("Failed to get employee by email: %v", err)
	}
	if byEmail == nil || byEmail.ID != employee.ID {
		t.Error("Expected GetByEmail to find the created employee")
	}

	// Unknown email returns nil, nil
	missing, err := repo.GetByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("Unexpected error for unknown email: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for unknown email")
	}

	// Duplicate email violates the unique constraint
	dup := &models.Employee{FirstName: "Other", Email: "asha@example.com", Active: true}
	if err := repo.Create(dup); err == nil {
		t.Error("Expected error when creating employee with duplicate email")
	}

	// Test Update
	employee.FirstName = "Aisha"
	if err := repo.Update(employee); err != nil {
		t.Fatalf("Failed to update employee: %v", err)
	}
	updated, _ := repo.GetByID(employee.ID)
	if updated.FirstName != "Aisha" {
		t.Errorf("Expected updated first name, got %s", updated.FirstName)
	}

	// Test Deactivate
	if err := repo.Deactivate(employee.ID); err != nil {
		t.Fatalf("Failed to deactivate employee: %v", err)
	}
	active, err := repo.GetActive()
	if err != nil {
		t.Fatalf("Failed to get active employees: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("Expected 0 active employees after deactivation, got %d", len(active))
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("Failed to count employees: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 employees, got %d", count)
	}
}

func TestCallLogRepositoryUpsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCallLogRepository(db)
	employee := createTestEmployee(t, db, "Asha", "asha@example.com")

	date := time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)
	entry := &models.CallLogEntry{
		EmployeeID:      employee.ID,
		Date:            date,
		DurationMinutes: 180,
		CallCount:       20,
		Source:          models.CallSourceAPI,
	}

	created, err := repo.Upsert(entry)
	if err != nil {
		t.Fatalf("Failed to upsert call log: %v", err)
	}
	if !created {
		t.Error("Expected first upsert to create a row")
	}
	if entry.ID == 0 {
		t.Error("Expected entry ID to be set after creation")
	}

	// Same key again updates in place
	entry2 := &models.CallLogEntry{
		EmployeeID:      employee.ID,
		Date:            date,
		DurationMinutes: 200,
		CallCount:       25,
		Source:          models.CallSourceAPI,
	}
	created, err = repo.Upsert(entry2)
	if err != nil {
		t.Fatalf("Failed to upsert existing call log: %v", err)
	}
	if created {
		t.Error("Expected second upsert to update, not create")
	}
	if entry2.ID != entry.ID {
		t.Errorf("Expected same row ID %d, got %d", entry.ID, entry2.ID)
	}

	stored, err := repo.GetByKey(employee.ID, date, models.CallSourceAPI)
	if err != nil {
		t.Fatalf("Failed to get call log by key: %v", err)
	}
	if stored.DurationMinutes != 200 {
		t.Errorf("Expected updated duration 200, got %d", stored.DurationMinutes)
	}

	// A different source is a separate row
	manual := &models.CallLogEntry{
		EmployeeID:      employee.ID,
		Date:            date,
		DurationMinutes: 30,
		CallCount:       3,
		Source:          models.CallSourceManual,
	}
	created, err = repo.Upsert(manual)
	if err != nil {
		t.Fatalf("Failed to upsert manual call log: %v", err)
	}
	if !created {
		t.Error("Expected a new row for a different source")
	}
}

func TestCallLogRepositoryTotals(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCallLogRepository(db)
	asha := createTestEmployee(t, db, "Asha", "asha@example.com")
	ben := createTestEmployee(t, db, "Ben", "ben@example.com")

	date := time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)
	entries := []models.CallLogEntry{
		{EmployeeID: asha.ID, Date: date, DurationMinutes: 120, CallCount: 15, Source: models.CallSourceAPI},
		{EmployeeID: asha.ID, Date: date, DurationMinutes: 60, CallCount: 5, Source: models.CallSourceCSV},
		{EmployeeID: ben.ID, Date: date, DurationMinutes: 90, CallCount: 12, Source: models.CallSourceAPI},
	}
	for i := range entries {
		if _, err := repo.Upsert(&entries[i]); err != nil {
			t.Fatalf("Failed to upsert call log: %v", err)
		}
	}

	// Totals sum across sources per employee
	totals, err := repo.TotalsByDate(date)
	if err != nil {
		t.Fatalf("Failed to get totals by date: %v", err)
	}
	if len(totals) != 2 {
		t.Fatalf("Expected totals for 2 employees, got %d", len(totals))
	}
	byEmployee := make(map[int]CallTotal)
	for _, total := range totals {
		byEmployee[total.EmployeeID] = total
	}
	if byEmployee[asha.ID].DurationMinutes != 180 || byEmployee[asha.ID].CallCount != 20 {
		t.Errorf("Expected 180 minutes / 20 calls for first employee, got %+v", byEmployee[asha.ID])
	}

	total, err := repo.TotalForEmployeeDate(ben.ID, date)
	if err != nil {
		t.Fatalf("Failed to get total for employee-date: %v", err)
	}
	if total == nil || total.DurationMinutes != 90 {
		t.Errorf("Expected 90 minutes for second employee, got %+v", total)
	}

	// No rows means nil total
	none, err := repo.TotalForEmployeeDate(asha.ID, date.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Unexpected error for empty total: %v", err)
	}
	if none != nil {
		t.Errorf("Expected nil total for a day without calls, got %+v", none)
	}
}

func TestConfigRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewConfigRepository(db)

	// Migrations seed a default active configuration
	active, err := repo.GetActive()
	if err != nil {
		t.Fatalf("Failed to get active config: %v", err)
	}
	if active == nil {
		t.Fatal("Expected a seeded active configuration")
	}
	if active.FullDayMinutes != 171 || active.HalfDayMinutes != 121 {
		t.Errorf("Expected seeded thresholds 171/121, got %d/%d", active.FullDayMinutes, active.HalfDayMinutes)
	}

	// Activating a new config deactivates the previous one
	next := &models.ThresholdConfig{FullDayMinutes: 180, HalfDayMinutes: 100}
	if err := repo.Activate(next); err != nil {
		t.Fatalf("Failed to activate config: %v", err)
	}

	current, err := repo.GetActive()
	if err != nil {
		t.Fatalf("Failed to get active config: %v", err)
	}
	if current.FullDayMinutes != 180 {
		t.Errorf("Expected new active config, got full day %d", current.FullDayMinutes)
	}

	history, err := repo.GetHistory()
	if err != nil {
		t.Fatalf("Failed to get config history: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("Expected 2 configs in history, got %d", len(history))
	}
	activeCount := 0
	for _, config := range history {
		if config.Active {
			activeCount++
		}
	}
	if activeCount != 1 {
		t.Errorf("Expected exactly 1 active config, got %d", activeCount)
	}
}

func TestAttendanceRepositoryUpsertAuto(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	employee := createTestEmployee(t, db, "Asha", "asha@example.com")

	date := time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)
	record := &models.AttendanceRecord{
		EmployeeID:      employee.ID,
		Date:            date,
		DurationMinutes: 180,
		CallCount:       20,
		Status:          models.StatusPresent,
		Source:          models.SourceAuto,
	}

	if err := repo.UpsertAuto(record); err != nil {
		t.Fatalf("Failed to upsert attendance record: %v", err)
	}
	if record.ID == 0 {
		t.Error("Expected record ID to be set after upsert")
	}

	// Upserting again with the same values keeps a single row
	again := &models.AttendanceRecord{
		EmployeeID:      employee.ID,
		Date:            date,
		DurationMinutes: 180,
		CallCount:       20,
		Status:          models.StatusPresent,
		Source:          models.SourceAuto,
	}
	if err := repo.UpsertAuto(again); err != nil {
		t.Fatalf("Failed to re-upsert attendance record: %v", err)
	}
	if again.ID != record.ID {
		t.Errorf("Expected same row ID %d, got %d", record.ID, again.ID)
	}

	records, err := repo.GetByDateRange(employee.ID, date, date)
	if err != nil {
		t.Fatalf("Failed to get attendance records: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected 1 attendance record, got %d", len(records))
	}

	// Changed values update the stored row
	again.DurationMinutes = 100
	again.Status = models.StatusAbsent
	if err := repo.UpsertAuto(again); err != nil {
		t.Fatalf("Failed to update attendance record: %v", err)
	}
	stored, err := repo.GetByEmployeeDate(employee.ID, date)
	if err != nil {
		t.Fatalf("Failed to get attendance record: %v", err)
	}
	if stored.DurationMinutes != 100 || stored.Status != models.StatusAbsent {
		t.Errorf("Expected updated values, got %d minutes / %s", stored.DurationMinutes, stored.Status)
	}

	// Missing employee-day returns nil, nil
	missing, err := repo.GetByEmployeeDate(employee.ID, date.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Unexpected error for missing record: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for missing employee-day")
	}
}

func TestAttendanceRepositoryUpsertAutoPreservesManual(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	employee := createTestEmployee(t, db, "Asha", "asha@example.com")
	manager := createTestEmployee(t, db, "Dana", "dana@example.com")

	date := time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)
	manual := &models.AttendanceRecord{
		EmployeeID:      employee.ID,
		Date:            date,
		DurationMinutes: 480,
		CallCount:       10,
		Status:          models.StatusPresent,
		Source:          models.SourceManual,
		ManualReason:    "covered the support desk all day",
		UpdatedBy:       &manager.ID,
	}
	audit := &models.AuditEntry{
		EmployeeID:   employee.ID,
		Date:         date,
		NewDuration:  480,
		NewCallCount: 10,
		NewStatus:    models.StatusPresent,
		Reason:       "covered the support desk all day",
		UpdatedBy:    manager.ID,
		Timestamp:    time.Date(2026, 8, 14, 10, 30, 0, 0, time.UTC),
	}
	if err := repo.SaveWithAudit(manual, audit); err != nil {
		t.Fatalf("Failed to save manual record: %v", err)
	}

	// A batch writer hitting the same employee-day must not flip the row back
	auto := &models.AttendanceRecord{
		EmployeeID:      employee.ID,
		Date:            date,
		DurationMinutes: 90,
		CallCount:       15,
		Status:          models.StatusAbsent,
		Source:          models.SourceAuto,
	}
	if err := repo.UpsertAuto(auto); err != nil {
		t.Fatalf("Failed to upsert auto record: %v", err)
	}

	stored, err := repo.GetByEmployeeDate(employee.ID, date)
	if err != nil {
		t.Fatalf("Failed to get attendance record: %v", err)
	}
	if stored.Source != models.SourceManual {
		t.Errorf("Expected MANUAL source to survive, got %s", stored.Source)
	}
	if stored.DurationMinutes != 480 || stored.Status != models.StatusPresent {
		t.Errorf("Expected manual values to survive, got %d minutes / %s", stored.DurationMinutes, stored.Status)
	}
}

func TestAttendanceRepositorySaveWithAudit(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	auditRepo := NewAuditRepository(db)
	employee := createTestEmployee(t, db, "Asha", "asha@example.com")
	manager := createTestEmployee(t, db, "Dana", "dana@example.com")

	date := time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)
	record := &models.AttendanceRecord{
		EmployeeID:      employee.ID,
		Date:            date,
		DurationMinutes: 240,
		CallCount:       30,
		Status:          models.StatusPresent,
		Source:          models.SourceManual,
		ManualReason:    "covered the support desk all day",
		UpdatedBy:       &manager.ID,
	}
	changedAt := time.Date(2026, 8, 14, 10, 30, 0, 0, time.UTC)
	audit := &models.AuditEntry{
		EmployeeID:   employee.ID,
		Date:         date,
		OldStatus:    models.StatusAbsent,
		NewDuration:  240,
		NewCallCount: 30,
		NewStatus:    models.StatusPresent,
		Reason:       "covered the support desk all day",
		UpdatedBy:    manager.ID,
		Timestamp:    changedAt,
	}

	if err := repo.SaveWithAudit(record, audit); err != nil {
		t.Fatalf("Failed to save record with audit: %v", err)
	}
	if record.ID == 0 || audit.ID == 0 {
		t.Error("Expected record and audit IDs to be set")
	}
	if audit.AttendanceRecordID != record.ID {
		t.Errorf("Expected audit linked to record %d, got %d", record.ID, audit.AttendanceRecordID)
	}

	stored, err := repo.GetByEmployeeDate(employee.ID, date)
	if err != nil {
		t.Fatalf("Failed to get attendance record: %v", err)
	}
	if stored.Source != models.SourceManual {
		t.Errorf("Expected MANUAL source, got %s", stored.Source)
	}
	if stored.ManualReason != "covered the support desk all day" {
		t.Errorf("Unexpected manual reason: %s", stored.ManualReason)
	}
	if stored.UpdatedBy == nil || *stored.UpdatedBy != manager.ID {
		t.Error("Expected updated_by to record the acting manager")
	}

	entries, err := auditRepo.List(models.AuditFilter{EmployeeID: employee.ID})
	if err != nil {
		t.Fatalf("Failed to list audit entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 audit entry, got %d", len(entries))
	}
	if entries[0].OldStatus != models.StatusAbsent || entries[0].NewStatus != models.StatusPresent {
		t.Errorf("Unexpected audit transition: %s -> %s", entries[0].OldStatus, entries[0].NewStatus)
	}
	if !entries[0].Timestamp.Equal(changedAt) {
		t.Errorf("Expected audit timestamp %v, got %v", changedAt, entries[0].Timestamp)
	}

	summary, err := repo.GetSummary(employee.ID, date, date)
	if err != nil {
		t.Fatalf("Failed to get summary: %v", err)
	}
	if summary.TotalDays != 1 || summary.PresentDays != 1 || summary.ManualUpdates != 1 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
}

func TestAuditRepositoryPurge(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	auditRepo := NewAuditRepository(db)
	employee := createTestEmployee(t, db, "Asha", "asha@example.com")
	manager := createTestEmployee(t, db, "Dana", "dana@example.com")

	date := time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC)
	record := &models.AttendanceRecord{
		EmployeeID:      employee.ID,
		Date:            date,
		DurationMinutes: 240,
		CallCount:       30,
		Status:          models.StatusPresent,
		Source:          models.SourceManual,
		ManualReason:    "covered the support desk all day",
		UpdatedBy:       &manager.ID,
	}
	audit := &models.AuditEntry{
		EmployeeID: employee.ID,
		Date:       date,
		OldStatus:  models.StatusAbsent,
		NewStatus:  models.StatusPresent,
		Reason:     "covered the support desk all day",
		UpdatedBy:  manager.ID,
	}
	if err := repo.SaveWithAudit(record, audit); err != nil {
		t.Fatalf("Failed to save record with audit: %v", err)
	}

	// A cutoff in the past removes nothing
	deleted, err := auditRepo.PurgeOlderThan(time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("Failed to purge audit entries: %v", err)
	}
	if deleted != 0 {
		t.Errorf("Expected 0 deleted entries, got %d", deleted)
	}

	// A cutoff in the future removes the entry
	deleted, err = auditRepo.PurgeOlderThan(time.Now().AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Failed to purge audit entries: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Expected 1 deleted entry, got %d", deleted)
	}

	entries, err := auditRepo.List(models.AuditFilter{})
	if err != nil {
		t.Fatalf("Failed to list audit entries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty audit trail after purge, got %d entries", len(entries))
	}
}

func TestCalendarRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCalendarRepository(db)

	// Migrations seed the full weekly pattern with Sunday off
	pattern, err := repo.GetWorkingPattern()
	if err != nil {
		t.Fatalf("Failed to get working pattern: %v", err)
	}
	if len(pattern) != 7 {
		t.Fatalf("Expected 7 pattern rows, got %d", len(pattern))
	}

	sunday, err := repo.GetWorkingDay(6)
	if err != nil {
		t.Fatalf("Failed to get Sunday: %v", err)
	}
	if sunday.Active {
		t.Error("Expected Sunday to be seeded inactive")
	}

	monday, err := repo.GetWorkingDay(0)
	if err != nil {
		t.Fatalf("Failed to get Monday: %v", err)
	}
	if !monday.Active {
		t.Error("Expected Monday to be seeded active")
	}

	// Toggle Saturday off
	if err := repo.UpdateWorkingDay(5, false); err != nil {
		t.Fatalf("Failed to update working day: %v", err)
	}
	saturday, _ := repo.GetWorkingDay(5)
	if saturday.Active {
		t.Error("Expected Saturday to be inactive after update")
	}

	// Holidays
	holidayDate := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	holiday := &models.Holiday{Date: holidayDate, Name: "Independence Day"}
	if err := repo.CreateHoliday(holiday); err != nil {
		t.Fatalf("Failed to create holiday: %v", err)
	}
	if holiday.ID == 0 {
		t.Error("Expected holiday ID to be set")
	}

	isHoliday, err := repo.IsHoliday(holidayDate)
	if err != nil {
		t.Fatalf("Failed to check holiday: %v", err)
	}
	if !isHoliday {
		t.Error("Expected the date to be a holiday")
	}

	isHoliday, _ = repo.IsHoliday(holidayDate.AddDate(0, 0, 1))
	if isHoliday {
		t.Error("Expected the next day not to be a holiday")
	}

	holidays, err := repo.GetHolidays(holidayDate.AddDate(0, 0, -7), holidayDate.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("Failed to get holidays: %v", err)
	}
	if len(holidays) != 1 {
		t.Errorf("Expected 1 holiday in range, got %d", len(holidays))
	}

	if err := repo.DeleteHoliday(holiday.ID); err != nil {
		t.Fatalf("Failed to delete holiday: %v", err)
	}
	isHoliday, _ = repo.IsHoliday(holidayDate)
	if isHoliday {
		t.Error("Expected holiday to be gone after deletion")
	}
}

func TestPermissionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPermissionRepository(db)
	employee := createTestEmployee(t, db, "Asha", "asha@example.com")
	manager := createTestEmployee(t, db, "Dana", "dana@example.com")

	// Migrations seed the permission catalog
	catalog, err := repo.GetCatalog()
	if err != nil {
		t.Fatalf("Failed to get catalog: %v", err)
	}
	if len(catalog) != 8 {
		t.Errorf("Expected 8 seeded permissions, got %d", len(catalog))
	}

	perm, err := repo.GetByCodename(models.PermManualAttendance)
	if err != nil {
		t.Fatalf("Failed to get permission by codename: %v", err)
	}
	if perm == nil {
		t.Fatal("Expected the manual attendance permission to exist")
	}

	unknown, err := repo.GetByCodename("attendance.nonexistent")
	if err != nil {
		t.Fatalf("Unexpected error for unknown codename: %v", err)
	}
	if unknown != nil {
		t.Error("Expected nil for unknown codename")
	}

	// Grant and check
	has, err := repo.Has(employee.ID, models.PermManualAttendance)
	if err != nil {
		t.Fatalf("Failed to check permission: %v", err)
	}
	if has {
		t.Error("Expected no permission before grant")
	}

	if err := repo.Grant(employee.ID, perm.ID, manager.ID); err != nil {
		t.Fatalf("Failed to grant permission: %v", err)
	}
	has, _ = repo.Has(employee.ID, models.PermManualAttendance)
	if !has {
		t.Error("Expected permission after grant")
	}

	// Granting twice is not an error
	if err := repo.Grant(employee.ID, perm.ID, manager.ID); err != nil {
		t.Fatalf("Expected repeated grant to be a no-op, got: %v", err)
	}

	granted, err := repo.GetForEmployee(employee.ID)
	if err != nil {
		t.Fatalf("Failed to get employee permissions: %v", err)
	}
	if len(granted) != 1 {
		t.Errorf("Expected 1 granted permission, got %d", len(granted))
	}

	// Revoke
	if err := repo.Revoke(employee.ID, perm.ID); err != nil {
		t.Fatalf("Failed to revoke permission: %v", err)
	}
	has, _ = repo.Has(employee.ID, models.PermManualAttendance)
	if has {
		t.Error("Expected no permission after revoke")
	}

	// ReplaceAll swaps the whole grant set atomically
	viewAudit, _ := repo.GetByCodename(models.PermViewAudit)
	ingest, _ := repo.GetByCodename(models.PermIngestCallLogs)
	if err := repo.ReplaceAll(employee.ID, []int{viewAudit.ID, ingest.ID}, manager.ID); err != nil {
		t.Fatalf("Failed to replace permissions: %v", err)
	}
	granted, _ = repo.GetForEmployee(employee.ID)
	if len(granted) != 2 {
		t.Errorf("Expected 2 permissions after replace, got %d", len(granted))
	}

	if err := repo.ReplaceAll(employee.ID, nil, manager.ID); err != nil {
		t.Fatalf("Failed to clear permissions: %v", err)
	}
	granted, _ = repo.GetForEmployee(employee.ID)
	if len(granted) != 0 {
		t.Errorf("Expected no permissions after clearing, got %d", len(granted))
	}
}

func TestExpenseRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewExpenseRepository(db)
	employee := createTestEmployee(t, db, "Asha", "asha@example.com")
	manager := createTestEmployee(t, db, "Dana", "dana@example.com")

	// Categories
	category := &models.ExpenseCategory{Name: "Travel", Description: "Trips to client sites", Active: true}
	if err := repo.CreateCategory(category); err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}
	if category.ID == 0 {
		t.Error("Expected category ID to be set")
	}

	categories, err := repo.GetCategories(true)
	if err != nil {
		t.Fatalf("Failed to get categories: %v", err)
	}
	if len(categories) != 1 {
		t.Errorf("Expected 1 active category, got %d", len(categories))
	}

	category.Active = false
	if err := repo.UpdateCategory(category); err != nil {
		t.Fatalf("Failed to update category: %v", err)
	}
	categories, _ = repo.GetCategories(true)
	if len(categories) != 0 {
		t.Errorf("Expected 0 active categories after retiring, got %d", len(categories))
	}

	// Expenses
	expense := &models.Expense{
		EmployeeID:  employee.ID,
		CategoryID:  category.ID,
		Title:       "Taxi to client site",
		AmountCents: 2500,
		ExpenseDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		Status:      models.ExpenseDraft,
	}
	if err := repo.CreateExpense(expense); err != nil {
		t.Fatalf("Failed to create expense: %v", err)
	}
	if expense.ID == 0 {
		t.Error("Expected expense ID to be set")
	}

	expense.Status = models.ExpenseSubmitted
	if err := repo.UpdateExpense(expense); err != nil {
		t.Fatalf("Failed to update expense: %v", err)
	}
	stored, err := repo.GetExpenseByID(expense.ID)
	if err != nil {
		t.Fatalf("Failed to get expense: %v", err)
	}
	if stored.Status != models.ExpenseSubmitted {
		t.Errorf("Expected submitted status, got %s", stored.Status)
	}

	submitted, err := repo.GetExpenses(employee.ID, models.ExpenseSubmitted)
	if err != nil {
		t.Fatalf("Failed to filter expenses by status: %v", err)
	}
	if len(submitted) != 1 {
		t.Errorf("Expected 1 submitted expense, got %d", len(submitted))
	}
	drafts, _ := repo.GetExpenses(employee.ID, models.ExpenseDraft)
	if len(drafts) != 0 {
		t.Errorf("Expected 0 draft expenses, got %d", len(drafts))
	}

	// Reimbursements
	req := &models.ReimbursementRequest{
		EmployeeID:  employee.ID,
		ExpenseIDs:  []int{expense.ID},
		TotalCents:  2500,
		Status:      models.ReimbursementPending,
		RequestDate: time.Now(),
	}
	if err := repo.CreateReimbursement(req); err != nil {
		t.Fatalf("Failed to create reimbursement: %v", err)
	}
	if req.ID == 0 {
		t.Error("Expected reimbursement ID to be set")
	}

	loaded, err := repo.GetReimbursementByID(req.ID)
	if err != nil {
		t.Fatalf("Failed to get reimbursement: %v", err)
	}
	if len(loaded.ExpenseIDs) != 1 || loaded.ExpenseIDs[0] != expense.ID {
		t.Errorf("Expected linked expense IDs, got %v", loaded.ExpenseIDs)
	}

	if err := repo.UpdateReimbursementStatus(req.ID, models.ReimbursementApproved, manager.ID); err != nil {
		t.Fatalf("Failed to update reimbursement status: %v", err)
	}
	loaded, _ = repo.GetReimbursementByID(req.ID)
	if loaded.Status != models.ReimbursementApproved {
		t.Errorf("Expected approved status, got %s", loaded.Status)
	}
	if loaded.ApprovedBy == nil || *loaded.ApprovedBy != manager.ID {
		t.Error("Expected approver to be recorded")
	}

	all, err := repo.GetReimbursements(employee.ID)
	if err != nil {
		t.Fatalf("Failed to list reimbursements: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 reimbursement, got %d", len(all))
	}
}

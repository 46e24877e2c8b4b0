package models

import (
	"testing"
	"time"
)

// Test EmployeeForm validation
func TestEmployeeFormValidation(t *testing.T) {
	// Test valid form
	validForm := EmployeeForm{
		FirstName: "Asha",
		LastName:  "Patel",
		Email:     "asha@example.com",
		Active:    true,
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Test invalid form
	invalidForm := EmployeeForm{
		FirstName: "", // Empty first name
		Email:     "not-an-email",
	}
	errors = invalidForm.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors)
	}
}

// Test CallLogForm validation
func TestCallLogFormValidation(t *testing.T) {
	validForm := CallLogForm{
		EmployeeID:      1,
		Date:            "2026-08-03",
		DurationMinutes: 180,
		CallCount:       42,
		Source:          CallSourceAPI,
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalidForm := CallLogForm{
		EmployeeID:      0,            // No employee
		Date:            "03-08-2026", // Wrong format
		DurationMinutes: -5,           // Negative duration
		CallCount:       -1,           // Negative count
	}
	errors = invalidForm.Validate()
	if len(errors) != 4 {
		t.Errorf("Expected 4 errors for invalid form, got: %v", errors)
	}
}

// Test ManualUpdateForm validation, in particular the minimum reason length
func TestManualUpdateFormValidation(t *testing.T) {
	validForm := ManualUpdateForm{
		EmployeeID:      1,
		Date:            "2026-08-03",
		DurationMinutes: 200,
		CallCount:       30,
		Reason:          "worked offsite at the client call center",
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Reason below the minimum length is rejected
	shortReason := validForm
	shortReason.Reason = "sick"
	errors = shortReason.Validate()
	if len(errors) != 1 {
		t.Errorf("Expected 1 error for short reason, got: %v", errors)
	}

	// A reason of exactly the minimum length passes
	exactReason := validForm
	exactReason.Reason = "0123456789"
	if len(exactReason.Reason) != MinReasonLength {
		t.Fatalf("Test reason should be exactly %d characters", MinReasonLength)
	}
	errors = exactReason.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for minimum-length reason, got: %v", errors)
	}

	invalidForm := ManualUpdateForm{
		EmployeeID:      0,
		Date:            "",
		DurationMinutes: -1,
		Reason:          "too short",
	}
	errors = invalidForm.Validate()
	if len(errors) != 4 {
		t.Errorf("Expected 4 errors for invalid form, got: %v", errors)
	}
}

// Test ThresholdConfigForm validation
func TestThresholdConfigFormValidation(t *testing.T) {
	validForm := ThresholdConfigForm{
		FullDayMinutes: 171,
		HalfDayMinutes: 121,
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	// Full day threshold must exceed the half day threshold
	inverted := ThresholdConfigForm{
		FullDayMinutes: 100,
		HalfDayMinutes: 150,
	}
	errors = inverted.Validate()
	if len(errors) != 1 {
		t.Errorf("Expected 1 error for inverted thresholds, got: %v", errors)
	}

	zeroForm := ThresholdConfigForm{}
	errors = zeroForm.Validate()
	if len(errors) != 2 {
		t.Errorf("Expected 2 errors for zero form, got: %v", errors)
	}
}

// Test ExpenseForm validation
func TestExpenseFormValidation(t *testing.T) {
	validForm := ExpenseForm{
		CategoryID:  1,
		Title:       "Taxi to client site",
		AmountCents: 2500,
		ExpenseDate: "2026-08-03",
	}
	errors := validForm.Validate()
	if len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalidForm := ExpenseForm{
		CategoryID:  0,
		Title:       "",
		AmountCents: 0,
		ExpenseDate: "yesterday",
	}
	errors = invalidForm.Validate()
	if len(errors) != 4 {
		t.Errorf("Expected 4 errors for invalid form, got: %v", errors)
	}
}

// Test date utilities
func TestDateUtilities(t *testing.T) {
	// 2026-08-03 is a Monday
	monday := time.Date(2026, 8, 3, 14, 30, 0, 0, time.UTC)
	if GetWeekdayNumber(monday) != 0 {
		t.Errorf("Expected Monday to be day 0, got %d", GetWeekdayNumber(monday))
	}

	sunday := time.Date(2026, 8, 9, 0, 0, 0, 0, time.UTC)
	if GetWeekdayNumber(sunday) != 6 {
		t.Errorf("Expected Sunday to be day 6, got %d", GetWeekdayNumber(sunday))
	}

	truncated := Truncate(monday)
	if truncated.Hour() != 0 || truncated.Minute() != 0 {
		t.Errorf("Expected Truncate to drop time of day, got %v", truncated)
	}
	if !SameDay(monday, truncated) {
		t.Error("Expected Truncate to keep the calendar day")
	}

	parsed, err := ParseDate("2026-08-03")
	if err != nil {
		t.Fatalf("Expected ParseDate to accept YYYY-MM-DD, got: %v", err)
	}
	if FormatDate(parsed) != "2026-08-03" {
		t.Errorf("Expected round trip through FormatDate, got %s", FormatDate(parsed))
	}

	if _, err := ParseDate("03/08/2026"); err == nil {
		t.Error("Expected ParseDate to reject non-ISO dates")
	}
}

// Test date range helpers
func TestDateRanges(t *testing.T) {
	month := GetCurrentMonth()
	if month.Start.Day() != 1 {
		t.Errorf("Expected current month range to start on the 1st, got day %d", month.Start.Day())
	}
	if month.End.Before(month.Start) {
		t.Error("Expected current month range end to be on or after its start")
	}

	week := GetLastNDays(7)
	if days := int(week.End.Sub(week.Start).Hours() / 24); days != 6 {
		t.Errorf("Expected last 7 days to span 6 day boundaries, got %d", days)
	}
}

// Test Employee display name
func TestEmployeeFullName(t *testing.T) {
	e := Employee{FirstName: "Asha", LastName: "Patel"}
	if e.FullName() != "Asha Patel" {
		t.Errorf("Expected full name, got %s", e.FullName())
	}

	mononym := Employee{FirstName: "Asha"}
	if mononym.FullName() != "Asha" {
		t.Errorf("Expected first name only, got %s", mononym.FullName())
	}
}

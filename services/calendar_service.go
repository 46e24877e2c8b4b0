package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories"
)

// CalendarService interface defines working day and holiday logic
type CalendarService interface {
	IsWorkingDay(date time.Time) (bool, error)
	GetWorkingPattern() ([]models.WorkingDay, error)
	UpdateWorkingDay(form *models.WorkingDayForm, actorID int) error
	GetHolidays(from, to time.Time) ([]models.Holiday, error)
	AddHoliday(form *models.HolidayForm, actorID int) (*models.Holiday, error)
	RemoveHoliday(id int, actorID int) error
}

// calendarService implements CalendarService interface
type calendarService struct {
	calendarRepo repositories.CalendarRepository
	authz        AuthzService
}

// NewCalendarService creates a new calendar service
func NewCalendarService(calendarRepo repositories.CalendarRepository, authz AuthzService) CalendarService {
	return &calendarService{
		calendarRepo: calendarRepo,
		authz:        authz,
	}
}

// IsWorkingDay reports whether the weekly pattern marks the date's weekday as
// active and the date is not a registered holiday
func (s *calendarService) IsWorkingDay(date time.Time) (bool, error) {
	day, err := s.calendarRepo.GetWorkingDay(models.GetWeekdayNumber(date))
	if err != nil {
		return false, fmt.Errorf("failed to get working pattern: %w", err)
	}

	if !day.Active {
		return false, nil
	}

	holiday, err := s.calendarRepo.IsHoliday(date)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday: %w", err)
	}

	return !holiday, nil
}

// GetWorkingPattern retrieves the weekly working pattern
func (s *calendarService) GetWorkingPattern() ([]models.WorkingDay, error) {
	return s.calendarRepo.GetWorkingPattern()
}

// UpdateWorkingDay updates one day of the weekly pattern
func (s *calendarService) UpdateWorkingDay(form *models.WorkingDayForm, actorID int) error {
	if errs := form.Validate(); len(errs) > 0 {
		return apperrors.Validation(strings.Join(errs, ", "))
	}

	if err := s.authz.Require(actorID, models.PermManageCalendar); err != nil {
		return err
	}

	return s.calendarRepo.UpdateWorkingDay(form.DayOfWeek, form.Active)
}

// GetHolidays retrieves holidays within a date range
func (s *calendarService) GetHolidays(from, to time.Time) ([]models.Holiday, error) {
	return s.calendarRepo.GetHolidays(from, to)
}

// AddHoliday registers a new holiday
func (s *calendarService) AddHoliday(form *models.HolidayForm, actorID int) (*models.Holiday, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	if err := s.authz.Require(actorID, models.PermManageCalendar); err != nil {
		return nil, err
	}

	date, err := models.ParseDate(form.Date)
	if err != nil {
		return nil, apperrors.Validation("invalid date format")
	}

	holiday := &models.Holiday{
		Date: date,
		Name: strings.TrimSpace(form.Name),
	}

	if err := s.calendarRepo.CreateHoliday(holiday); err != nil {
		return nil, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday, nil
}

// RemoveHoliday deletes a holiday
func (s *calendarService) RemoveHoliday(id int, actorID int) error {
	if id <= 0 {
		return apperrors.Validationf("invalid holiday ID: %d", id)
	}

	if err := s.authz.Require(actorID, models.PermManageCalendar); err != nil {
		return err
	}

	return s.calendarRepo.DeleteHoliday(id)
}

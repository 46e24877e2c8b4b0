package services

import (
	"fmt"
	"strings"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories"
)

// EmployeeService interface defines employee directory business logic
type EmployeeService interface {
	GetAll() ([]models.Employee, error)
	GetActive() ([]models.Employee, error)
	GetByID(id int) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	Create(form *models.EmployeeForm, actorID int) (*models.Employee, error)
	Update(id int, form *models.EmployeeForm, actorID int) (*models.Employee, error)
	Deactivate(id int, actorID int) error
}

// employeeService implements EmployeeService interface
type employeeService struct {
	employeeRepo repositories.EmployeeRepository
	authz        AuthzService
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repositories.EmployeeRepository, authz AuthzService) EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		authz:        authz,
	}
}

// GetAll retrieves all employees
func (s *employeeService) GetAll() ([]models.Employee, error) {
	return s.employeeRepo.GetAll()
}

// GetActive retrieves all active employees
func (s *employeeService) GetActive() ([]models.Employee, error) {
	return s.employeeRepo.GetActive()
}

// GetByID retrieves a single employee
func (s *employeeService) GetByID(id int) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.NotFoundf("employee %d not found", id)
	}

	return employee, nil
}

// GetByEmail retrieves an employee by email address. Returns nil when no
// employee matches.
func (s *employeeService) GetByEmail(email string) (*models.Employee, error) {
	return s.employeeRepo.GetByEmail(email)
}

// Create validates and creates a new employee. Directory mutations are
// restricted to superusers.
func (s *employeeService) Create(form *models.EmployeeForm, actorID int) (*models.Employee, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	if err := s.authz.RequireSuperuser(actorID); err != nil {
		return nil, err
	}

	existing, err := s.employeeRepo.GetByEmail(form.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict(fmt.Sprintf("employee with email %s already exists", form.Email))
	}

	employee := &models.Employee{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Active:    true,
		Superuser: form.Superuser,
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

// Update validates and updates an existing employee
func (s *employeeService) Update(id int, form *models.EmployeeForm, actorID int) (*models.Employee, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	if err := s.authz.RequireSuperuser(actorID); err != nil {
		return nil, err
	}

	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		return nil, apperrors.NotFoundf("employee %d not found", id)
	}

	employee.FirstName = form.FirstName
	employee.LastName = form.LastName
	employee.Email = form.Email
	employee.Superuser = form.Superuser

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee, nil
}

// Deactivate marks an employee inactive. Inactive employees are skipped by
// batch runs and can no longer act, but their history is preserved.
func (s *employeeService) Deactivate(id int, actorID int) error {
	if err := s.authz.RequireSuperuser(actorID); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(id); err != nil {
		return apperrors.NotFoundf("employee %d not found", id)
	}

	if err := s.employeeRepo.Deactivate(id); err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	return nil
}

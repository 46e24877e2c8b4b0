package services

import (
	"fmt"
	"strings"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories"
)

// PermissionService interface defines permission catalog and grant logic
type PermissionService interface {
	GetCatalog() (map[string][]models.Permission, error)
	GetForEmployee(employeeID int, actorID int) ([]models.EmployeePermission, error)
	Grant(form *models.PermissionAssignForm, actorID int) error
	Revoke(form *models.PermissionAssignForm, actorID int) error
	ReplaceAll(form *models.BulkPermissionForm, actorID int) error
}

// permissionService implements PermissionService interface
type permissionService struct {
	permissionRepo repositories.PermissionRepository
	employeeRepo   repositories.EmployeeRepository
	authz          AuthzService
}

// NewPermissionService creates a new permission service
func NewPermissionService(permissionRepo repositories.PermissionRepository, employeeRepo repositories.EmployeeRepository, authz AuthzService) PermissionService {
	return &permissionService{
		permissionRepo: permissionRepo,
		employeeRepo:   employeeRepo,
		authz:          authz,
	}
}

// GetCatalog retrieves the permission catalog grouped by module
func (s *permissionService) GetCatalog() (map[string][]models.Permission, error) {
	permissions, err := s.permissionRepo.GetCatalog()
	if err != nil {
		return nil, fmt.Errorf("failed to get permission catalog: %w", err)
	}

	grouped := make(map[string][]models.Permission)
	for _, p := range permissions {
		grouped[p.Module] = append(grouped[p.Module], p)
	}

	return grouped, nil
}

// GetForEmployee lists an employee's direct grants. Employees may inspect
// their own; anyone else's requires the permission management grant.
func (s *permissionService) GetForEmployee(employeeID int, actorID int) ([]models.EmployeePermission, error) {
	if employeeID != actorID {
		if err := s.authz.Require(actorID, models.PermManagePermissions); err != nil {
			return nil, err
		}
	}

	if _, err := s.employeeRepo.GetByID(employeeID); err != nil {
		return nil, apperrors.NotFoundf("employee %d not found", employeeID)
	}

	return s.permissionRepo.GetForEmployee(employeeID)
}

// Grant gives an employee a single permission. Granting an already held
// permission is a no-op.
func (s *permissionService) Grant(form *models.PermissionAssignForm, actorID int) error {
	permission, err := s.resolveAssignment(form, actorID)
	if err != nil {
		return err
	}

	if err := s.permissionRepo.Grant(form.EmployeeID, permission.ID, actorID); err != nil {
		return fmt.Errorf("failed to grant permission: %w", err)
	}

	return nil
}

// Revoke removes a single permission from an employee
func (s *permissionService) Revoke(form *models.PermissionAssignForm, actorID int) error {
	permission, err := s.resolveAssignment(form, actorID)
	if err != nil {
		return err
	}

	if err := s.permissionRepo.Revoke(form.EmployeeID, permission.ID); err != nil {
		return fmt.Errorf("failed to revoke permission: %w", err)
	}

	return nil
}

// resolveAssignment runs the shared validation for grant and revoke and
// resolves the codename against the catalog
func (s *permissionService) resolveAssignment(form *models.PermissionAssignForm, actorID int) (*models.Permission, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	if err := s.authz.Require(actorID, models.PermManagePermissions); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(form.EmployeeID); err != nil {
		return nil, apperrors.NotFoundf("employee %d not found", form.EmployeeID)
	}

	permission, err := s.permissionRepo.GetByCodename(form.Codename)
	if err != nil {
		return nil, fmt.Errorf("failed to look up permission: %w", err)
	}
	if permission == nil {
		return nil, apperrors.NotFoundf("permission %q not found", form.Codename)
	}

	return permission, nil
}

// ReplaceAll replaces an employee's direct grants with the given codename
// set in one transaction
func (s *permissionService) ReplaceAll(form *models.BulkPermissionForm, actorID int) error {
	if errs := form.Validate(); len(errs) > 0 {
		return apperrors.Validation(strings.Join(errs, ", "))
	}

	if err := s.authz.Require(actorID, models.PermManagePermissions); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(form.EmployeeID); err != nil {
		return apperrors.NotFoundf("employee %d not found", form.EmployeeID)
	}

	permissionIDs := make([]int, 0, len(form.Codenames))
	for _, codename := range form.Codenames {
		permission, err := s.permissionRepo.GetByCodename(codename)
		if err != nil {
			return fmt.Errorf("failed to look up permission: %w", err)
		}
		if permission == nil {
			return apperrors.NotFoundf("permission %q not found", codename)
		}
		permissionIDs = append(permissionIDs, permission.ID)
	}

	if err := s.permissionRepo.ReplaceAll(form.EmployeeID, permissionIDs, actorID); err != nil {
		return fmt.Errorf("failed to replace permissions: %w", err)
	}

	return nil
}

package services

import (
	"fmt"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/repositories"
)

// AuthzService answers "may this actor do that" for every mutating
// operation. Superusers bypass all checks; everyone else needs a direct
// grant of the named permission.
type AuthzService interface {
	Can(actorID int, codename string) (bool, error)
	Require(actorID int, codename string) error
	RequireSuperuser(actorID int) error
}

// authzService implements AuthzService interface
type authzService struct {
	employeeRepo   repositories.EmployeeRepository
	permissionRepo repositories.PermissionRepository
}

// NewAuthzService creates a new authorization service
func NewAuthzService(employeeRepo repositories.EmployeeRepository, permissionRepo repositories.PermissionRepository) AuthzService {
	return &authzService{
		employeeRepo:   employeeRepo,
		permissionRepo: permissionRepo,
	}
}

// Can reports whether the actor holds the permission
func (s *authzService) Can(actorID int, codename string) (bool, error) {
	if actorID <= 0 {
		return false, nil
	}

	actor, err := s.employeeRepo.GetByID(actorID)
	if err != nil {
		return false, fmt.Errorf("failed to look up actor: %w", err)
	}

	if !actor.Active {
		return false, nil
	}
	if actor.Superuser {
		return true, nil
	}

	return s.permissionRepo.Has(actorID, codename)
}

// Require returns an authorization error unless the actor holds the permission
func (s *authzService) Require(actorID int, codename string) error {
	allowed, err := s.Can(actorID, codename)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.Authorization(fmt.Sprintf("actor %d lacks permission %s", actorID, codename))
	}
	return nil
}

// RequireSuperuser returns an authorization error unless the actor is an
// active superuser
func (s *authzService) RequireSuperuser(actorID int) error {
	if actorID <= 0 {
		return apperrors.Authorization("no acting identity")
	}

	actor, err := s.employeeRepo.GetByID(actorID)
	if err != nil {
		return fmt.Errorf("failed to look up actor: %w", err)
	}

	if !actor.Active || !actor.Superuser {
		return apperrors.Authorization(fmt.Sprintf("actor %d is not a superuser", actorID))
	}

	return nil
}

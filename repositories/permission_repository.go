package repositories

import (
	"database/sql"
	"fmt"

	"github.com/dverbeek/calltrack/models"
)

// PermissionRepository interface defines permission catalog and grant operations
type PermissionRepository interface {
	GetCatalog() ([]models.Permission, error)
	GetByCodename(codename string) (*models.Permission, error)
	GetForEmployee(employeeID int) ([]models.EmployeePermission, error)
	Has(employeeID int, codename string) (bool, error)
	Grant(employeeID, permissionID, grantedBy int) error
	Revoke(employeeID, permissionID int) error
	ReplaceAll(employeeID int, permissionIDs []int, grantedBy int) error
}

// permissionRepository implements PermissionRepository interface
type permissionRepository struct {
	db *sql.DB
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *sql.DB) PermissionRepository {
	return &permissionRepository{db: db}
}

// GetCatalog retrieves the full permission catalog grouped by module
func (r *permissionRepository) GetCatalog() ([]models.Permission, error) {
	query := `SELECT id, codename, name, module FROM permissions ORDER BY module ASC, codename ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer rows.Close()

	var permissions []models.Permission
	for rows.Next() {
		var p models.Permission
		if err := rows.Scan(&p.ID, &p.Codename, &p.Name, &p.Module); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permissions: %w", err)
	}

	return permissions, nil
}

// GetByCodename retrieves a permission by its codename
func (r *permissionRepository) GetByCodename(codename string) (*models.Permission, error) {
	var p models.Permission
	err := r.db.QueryRow(
		`SELECT id, codename, name, module FROM permissions WHERE codename = ?`, codename,
	).Scan(&p.ID, &p.Codename, &p.Name, &p.Module)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}

	return &p, nil
}

// GetForEmployee retrieves all direct grants for one employee
func (r *permissionRepository) GetForEmployee(employeeID int) ([]models.EmployeePermission, error) {
	query := `
		SELECT ep.id, ep.employee_id, ep.permission_id, ep.granted_by, ep.granted_at,
			p.codename, p.module
		FROM employee_permissions ep
		JOIN permissions p ON ep.permission_id = p.id
		WHERE ep.employee_id = ?
		ORDER BY p.module ASC, p.codename ASC
	`

	rows, err := r.db.Query(query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee permissions: %w", err)
	}
	defer rows.Close()

	var grants []models.EmployeePermission
	for rows.Next() {
		var g models.EmployeePermission
		err := rows.Scan(
			&g.ID,
			&g.EmployeeID,
			&g.PermissionID,
			&g.GrantedBy,
			&g.GrantedAt,
			&g.Codename,
			&g.Module,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee permission: %w", err)
		}
		grants = append(grants, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employee permissions: %w", err)
	}

	return grants, nil
}

// Has reports whether the employee holds a direct grant of the permission
func (r *permissionRepository) Has(employeeID int, codename string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM employee_permissions ep
		JOIN permissions p ON ep.permission_id = p.id
		WHERE ep.employee_id = ? AND p.codename = ?
	`

	var count int
	if err := r.db.QueryRow(query, employeeID, codename).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check permission: %w", err)
	}

	return count > 0, nil
}

// Grant assigns a permission to an employee. Granting an already-held
// permission is a no-op.
func (r *permissionRepository) Grant(employeeID, permissionID, grantedBy int) error {
	query := `
		INSERT INTO employee_permissions (employee_id, permission_id, granted_by)
		VALUES (?, ?, ?)
		ON CONFLICT (employee_id, permission_id) DO NOTHING
	`

	if _, err := r.db.Exec(query, employeeID, permissionID, grantedBy); err != nil {
		return fmt.Errorf("failed to grant permission: %w", err)
	}

	return nil
}

// Revoke removes a permission grant from an employee
func (r *permissionRepository) Revoke(employeeID, permissionID int) error {
	result, err := r.db.Exec(
		`DELETE FROM employee_permissions WHERE employee_id = ? AND permission_id = ?`,
		employeeID, permissionID,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke permission: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("employee %d does not hold permission %d", employeeID, permissionID)
	}

	return nil
}

// ReplaceAll replaces an employee's direct grants with the given set in one
// transaction
func (r *permissionRepository) ReplaceAll(employeeID int, permissionIDs []int, grantedBy int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM employee_permissions WHERE employee_id = ?`, employeeID); err != nil {
		return fmt.Errorf("failed to clear employee permissions: %w", err)
	}

	for _, permissionID := range permissionIDs {
		if _, err := tx.Exec(
			`INSERT INTO employee_permissions (employee_id, permission_id, granted_by) VALUES (?, ?, ?)`,
			employeeID, permissionID, grantedBy,
		); err != nil {
			return fmt.Errorf("failed to grant permission %d: %w", permissionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit permission changes: %w", err)
	}

	return nil
}

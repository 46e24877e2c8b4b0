package repositories

import (
	"database/sql"
	"fmt"

	"github.com/dverbeek/calltrack/models"
)

// EmployeeRepository interface defines employee directory database operations
type EmployeeRepository interface {
	GetAll() ([]models.Employee, error)
	GetActive() ([]models.Employee, error)
	GetByID(id int) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	Deactivate(id int) error
	Count() (int, error)
}

// employeeRepository implements EmployeeRepository interface
type employeeRepository struct {
	db *sql.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *sql.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, first_name, last_name, email, active, superuser, date_added`

func scanEmployee(row interface{ Scan(...interface{}) error }) (*models.Employee, error) {
	var e models.Employee
	err := row.Scan(
		&e.ID,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Active,
		&e.Superuser,
		&e.DateAdded,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetAll retrieves all employees ordered by name
func (r *employeeRepository) GetAll() ([]models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY first_name, last_name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// GetActive retrieves only active employees
func (r *employeeRepository) GetActive() ([]models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE active = 1 ORDER BY first_name, last_name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active employees: %w", err)
	}
	defer rows.Close()

	var employees []models.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, *e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating employees: %w", err)
	}

	return employees, nil
}

// GetByID retrieves an employee by ID
func (r *employeeRepository) GetByID(id int) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`

	e, err := scanEmployee(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("employee with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// GetByEmail retrieves an employee by email address. Returns nil without an
// error when no employee matches.
func (r *employeeRepository) GetByEmail(email string) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = ?`

	e, err := scanEmployee(r.db.QueryRow(query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return e, nil
}

// Create creates a new employee
func (r *employeeRepository) Create(employee *models.Employee) error {
	query := `
		INSERT INTO employees (first_name, last_name, email, active, superuser)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Active,
		employee.Superuser,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	employee.ID = int(id)
	return nil
}

// Update updates an existing employee
func (r *employeeRepository) Update(employee *models.Employee) error {
	query := `
		UPDATE employees
		SET first_name = ?, last_name = ?, email = ?, active = ?, superuser = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Active,
		employee.Superuser,
		employee.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("employee with ID %d not found", employee.ID)
	}

	return nil
}

// Deactivate marks an employee as inactive
func (r *employeeRepository) Deactivate(id int) error {
	result, err := r.db.Exec(`UPDATE employees SET active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("employee with ID %d not found", id)
	}

	return nil
}

// Count counts all employees
func (r *employeeRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

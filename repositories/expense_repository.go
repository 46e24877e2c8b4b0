package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dverbeek/calltrack/models"
)

// ExpenseRepository interface defines expense and reimbursement database operations
type ExpenseRepository interface {
	GetCategories(activeOnly bool) ([]models.ExpenseCategory, error)
	GetCategoryByID(id int) (*models.ExpenseCategory, error)
	CreateCategory(category *models.ExpenseCategory) error
	UpdateCategory(category *models.ExpenseCategory) error

	GetExpenseByID(id int) (*models.Expense, error)
	GetExpenses(employeeID int, status models.ExpenseStatus) ([]models.Expense, error)
	CreateExpense(expense *models.Expense) error
	UpdateExpense(expense *models.Expense) error

	GetReimbursementByID(id int) (*models.ReimbursementRequest, error)
	GetReimbursements(employeeID int) ([]models.ReimbursementRequest, error)
	CreateReimbursement(req *models.ReimbursementRequest) error
	UpdateReimbursementStatus(id int, status models.ReimbursementStatus, approvedBy int) error
}

// expenseRepository implements ExpenseRepository interface
type expenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *sql.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

// GetCategories retrieves expense categories
func (r *expenseRepository) GetCategories(activeOnly bool) ([]models.ExpenseCategory, error) {
	query := `SELECT id, name, description, active FROM expense_categories`
	if activeOnly {
		query += ` WHERE active = 1`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense categories: %w", err)
	}
	defer rows.Close()

	var categories []models.ExpenseCategory
	for rows.Next() {
		var c models.ExpenseCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Active); err != nil {
			return nil, fmt.Errorf("failed to scan expense category: %w", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense categories: %w", err)
	}

	return categories, nil
}

// GetCategoryByID retrieves an expense category by ID
func (r *expenseRepository) GetCategoryByID(id int) (*models.ExpenseCategory, error) {
	var c models.ExpenseCategory
	err := r.db.QueryRow(
		`SELECT id, name, description, active FROM expense_categories WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Description, &c.Active)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense category with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense category: %w", err)
	}

	return &c, nil
}

// CreateCategory creates a new expense category
func (r *expenseRepository) CreateCategory(category *models.ExpenseCategory) error {
	result, err := r.db.Exec(
		`INSERT INTO expense_categories (name, description, active) VALUES (?, ?, ?)`,
		category.Name, category.Description, category.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense category: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	category.ID = int(id)
	return nil
}

// UpdateCategory updates an existing expense category
func (r *expenseRepository) UpdateCategory(category *models.ExpenseCategory) error {
	result, err := r.db.Exec(
		`UPDATE expense_categories SET name = ?, description = ?, active = ? WHERE id = ?`,
		category.Name, category.Description, category.Active, category.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("expense category with ID %d not found", category.ID)
	}

	return nil
}

const expenseSelect = `
	SELECT
		x.id, x.employee_id, x.category_id, x.title, x.description,
		x.amount_cents, x.expense_date, x.receipt, x.status, x.rejection_reason,
		x.approved_by, x.approved_at, x.created_at, x.updated_at,
		e.first_name || ' ' || e.last_name as employee_name,
		c.name as category_name
	FROM expenses x
	LEFT JOIN employees e ON x.employee_id = e.id
	LEFT JOIN expense_categories c ON x.category_id = c.id
`

func scanExpense(row interface{ Scan(...interface{}) error }) (*models.Expense, error) {
	var x models.Expense
	var approvedBy sql.NullInt64
	var approvedAt sql.NullTime
	var employeeName, categoryName sql.NullString

	err := row.Scan(
		&x.ID,
		&x.EmployeeID,
		&x.CategoryID,
		&x.Title,
		&x.Description,
		&x.AmountCents,
		&x.ExpenseDate,
		&x.Receipt,
		&x.Status,
		&x.RejectionReason,
		&approvedBy,
		&approvedAt,
		&x.CreatedAt,
		&x.UpdatedAt,
		&employeeName,
		&categoryName,
	)
	if err != nil {
		return nil, err
	}

	if approvedBy.Valid {
		id := int(approvedBy.Int64)
		x.ApprovedBy = &id
	}
	if approvedAt.Valid {
		t := approvedAt.Time
		x.ApprovedAt = &t
	}
	if employeeName.Valid {
		x.EmployeeName = employeeName.String
	}
	if categoryName.Valid {
		x.CategoryName = categoryName.String
	}

	return &x, nil
}

// GetExpenseByID retrieves an expense by ID
func (r *expenseRepository) GetExpenseByID(id int) (*models.Expense, error) {
	expense, err := scanExpense(r.db.QueryRow(expenseSelect+` WHERE x.id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// GetExpenses retrieves expenses, optionally filtered by employee and status.
// Pass employeeID 0 or an empty status to skip that filter.
func (r *expenseRepository) GetExpenses(employeeID int, status models.ExpenseStatus) ([]models.Expense, error) {
	query := expenseSelect + ` WHERE 1 = 1`
	var args []interface{}

	if employeeID > 0 {
		query += ` AND x.employee_id = ?`
		args = append(args, employeeID)
	}
	if status != "" {
		query += ` AND x.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY x.created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// CreateExpense creates a new expense
func (r *expenseRepository) CreateExpense(expense *models.Expense) error {
	query := `
		INSERT INTO expenses
			(employee_id, category_id, title, description, amount_cents, expense_date, receipt, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		expense.EmployeeID,
		expense.CategoryID,
		expense.Title,
		expense.Description,
		expense.AmountCents,
		expense.ExpenseDate.Format("2006-01-02"),
		expense.Receipt,
		expense.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	expense.ID = int(id)
	return nil
}

// UpdateExpense updates an existing expense
func (r *expenseRepository) UpdateExpense(expense *models.Expense) error {
	var approvedBy interface{}
	if expense.ApprovedBy != nil {
		approvedBy = *expense.ApprovedBy
	}
	var approvedAt interface{}
	if expense.ApprovedAt != nil {
		approvedAt = expense.ApprovedAt.Format("2006-01-02 15:04:05")
	}

	query := `
		UPDATE expenses
		SET category_id = ?, title = ?, description = ?, amount_cents = ?,
			expense_date = ?, receipt = ?, status = ?, rejection_reason = ?,
			approved_by = ?, approved_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		expense.CategoryID,
		expense.Title,
		expense.Description,
		expense.AmountCents,
		expense.ExpenseDate.Format("2006-01-02"),
		expense.Receipt,
		expense.Status,
		expense.RejectionReason,
		approvedBy,
		approvedAt,
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("expense with ID %d not found", expense.ID)
	}

	return nil
}

// GetReimbursementByID retrieves a reimbursement request with its expense IDs
func (r *expenseRepository) GetReimbursementByID(id int) (*models.ReimbursementRequest, error) {
	query := `
		SELECT id, employee_id, total_cents, status, notes, request_date, approved_by, approved_at
		FROM reimbursement_requests
		WHERE id = ?
	`

	var req models.ReimbursementRequest
	var approvedBy sql.NullInt64
	var approvedAt sql.NullTime

	err := r.db.QueryRow(query, id).Scan(
		&req.ID,
		&req.EmployeeID,
		&req.TotalCents,
		&req.Status,
		&req.Notes,
		&req.RequestDate,
		&approvedBy,
		&approvedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("reimbursement request with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reimbursement request: %w", err)
	}

	if approvedBy.Valid {
		by := int(approvedBy.Int64)
		req.ApprovedBy = &by
	}
	if approvedAt.Valid {
		t := approvedAt.Time
		req.ApprovedAt = &t
	}

	rows, err := r.db.Query(
		`SELECT expense_id FROM reimbursement_expenses WHERE reimbursement_id = ? ORDER BY expense_id ASC`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reimbursement expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var expenseID int
		if err := rows.Scan(&expenseID); err != nil {
			return nil, fmt.Errorf("failed to scan reimbursement expense: %w", err)
		}
		req.ExpenseIDs = append(req.ExpenseIDs, expenseID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reimbursement expenses: %w", err)
	}

	return &req, nil
}

// GetReimbursements retrieves reimbursement requests, optionally filtered by
// employee. Pass employeeID 0 for all.
func (r *expenseRepository) GetReimbursements(employeeID int) ([]models.ReimbursementRequest, error) {
	query := `
		SELECT id, employee_id, total_cents, status, notes, request_date, approved_by, approved_at
		FROM reimbursement_requests
	`
	var args []interface{}

	if employeeID > 0 {
		query += ` WHERE employee_id = ?`
		args = append(args, employeeID)
	}
	query += ` ORDER BY request_date DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reimbursement requests: %w", err)
	}
	defer rows.Close()

	var requests []models.ReimbursementRequest
	for rows.Next() {
		var req models.ReimbursementRequest
		var approvedBy sql.NullInt64
		var approvedAt sql.NullTime

		err := rows.Scan(
			&req.ID,
			&req.EmployeeID,
			&req.TotalCents,
			&req.Status,
			&req.Notes,
			&req.RequestDate,
			&approvedBy,
			&approvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reimbursement request: %w", err)
		}

		if approvedBy.Valid {
			by := int(approvedBy.Int64)
			req.ApprovedBy = &by
		}
		if approvedAt.Valid {
			t := approvedAt.Time
			req.ApprovedAt = &t
		}

		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reimbursement requests: %w", err)
	}

	return requests, nil
}

// CreateReimbursement creates a reimbursement request and links its expenses
// in one transaction
func (r *expenseRepository) CreateReimbursement(req *models.ReimbursementRequest) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO reimbursement_requests (employee_id, total_cents, status, notes) VALUES (?, ?, ?, ?)`,
		req.EmployeeID, req.TotalCents, req.Status, req.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create reimbursement request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}
	req.ID = int(id)

	for _, expenseID := range req.ExpenseIDs {
		if _, err := tx.Exec(
			`INSERT INTO reimbursement_expenses (reimbursement_id, expense_id) VALUES (?, ?)`,
			req.ID, expenseID,
		); err != nil {
			return fmt.Errorf("failed to link expense %d: %w", expenseID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reimbursement request: %w", err)
	}

	return nil
}

// UpdateReimbursementStatus transitions a reimbursement request
func (r *expenseRepository) UpdateReimbursementStatus(id int, status models.ReimbursementStatus, approvedBy int) error {
	result, err := r.db.Exec(
		`UPDATE reimbursement_requests SET status = ?, approved_by = ?, approved_at = ? WHERE id = ?`,
		status, approvedBy, time.Now().Format("2006-01-02 15:04:05"), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update reimbursement status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("reimbursement request with ID %d not found", id)
	}

	return nil
}

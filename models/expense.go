package models

import (
	"time"
)

// ExpenseStatus tracks an expense through its approval workflow
type ExpenseStatus string

const (
	ExpenseDraft      ExpenseStatus = "draft"
	ExpenseSubmitted  ExpenseStatus = "submitted"
	ExpenseApproved   ExpenseStatus = "approved"
	ExpenseRejected   ExpenseStatus = "rejected"
	ExpenseReimbursed ExpenseStatus = "reimbursed"
)

// ReimbursementStatus tracks a reimbursement request
type ReimbursementStatus string

const (
	ReimbursementPending  ReimbursementStatus = "pending"
	ReimbursementApproved ReimbursementStatus = "approved"
	ReimbursementRejected ReimbursementStatus = "rejected"
	ReimbursementPaid     ReimbursementStatus = "paid"
)

// ExpenseCategory groups expenses for reporting
type ExpenseCategory struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Active      bool   `json:"active" db:"active"`
}

// ExpenseCategoryForm represents form data for expense categories
type ExpenseCategoryForm struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

// Validate validates the expense category form data
func (f *ExpenseCategoryForm) Validate() []string {
	var errors []string

	if f.Name == "" {
		errors = append(errors, "Name is required")
	}

	if len(f.Name) > 100 {
		errors = append(errors, "Name must be less than 100 characters")
	}

	return errors
}

// Expense is a single reimbursable cost incurred by an employee. Amounts are
// stored in cents to avoid floating point drift.
type Expense struct {
	ID              int           `json:"id" db:"id"`
	EmployeeID      int           `json:"employee_id" db:"employee_id"`
	CategoryID      int           `json:"category_id" db:"category_id"`
	Title           string        `json:"title" db:"title"`
	Description     string        `json:"description" db:"description"`
	AmountCents     int64         `json:"amount_cents" db:"amount_cents"`
	ExpenseDate     time.Time     `json:"expense_date" db:"expense_date"`
	Receipt         string        `json:"receipt,omitempty" db:"receipt"` // path/reference only
	Status          ExpenseStatus `json:"status" db:"status"`
	RejectionReason string        `json:"rejection_reason,omitempty" db:"rejection_reason"`
	ApprovedBy      *int          `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt      *time.Time    `json:"approved_at,omitempty" db:"approved_at"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`

	// Joined fields
	EmployeeName string `json:"employee_name,omitempty" db:"employee_name"`
	CategoryName string `json:"category_name,omitempty" db:"category_name"`
}

// IsEditable reports whether the expense can still be changed by its owner
func (e *Expense) IsEditable() bool {
	return e.Status == ExpenseDraft || e.Status == ExpenseRejected
}

// ExpenseForm represents form data for creating/updating an expense
type ExpenseForm struct {
	CategoryID  int    `json:"category_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
	ExpenseDate string `json:"expense_date"` // "2025-10-01" format
	Receipt     string `json:"receipt"`
}

// Validate validates the expense form data
func (f *ExpenseForm) Validate() []string {
	var errors []string

	if f.CategoryID <= 0 {
		errors = append(errors, "Category must be selected")
	}

	if f.Title == "" {
		errors = append(errors, "Title is required")
	}

	if len(f.Title) > 200 {
		errors = append(errors, "Title must be less than 200 characters")
	}

	if f.AmountCents <= 0 {
		errors = append(errors, "Amount must be greater than zero")
	}

	if f.ExpenseDate == "" {
		errors = append(errors, "Expense date is required")
	} else if _, err := time.Parse("2006-01-02", f.ExpenseDate); err != nil {
		errors = append(errors, "Expense date must be in YYYY-MM-DD format")
	}

	return errors
}

// ReimbursementRequest groups approved expenses into a single payout request
type ReimbursementRequest struct {
	ID          int                 `json:"id" db:"id"`
	EmployeeID  int                 `json:"employee_id" db:"employee_id"`
	ExpenseIDs  []int               `json:"expense_ids"`
	TotalCents  int64               `json:"total_cents" db:"total_cents"`
	Status      ReimbursementStatus `json:"status" db:"status"`
	Notes       string              `json:"notes,omitempty" db:"notes"`
	RequestDate time.Time           `json:"request_date" db:"request_date"`
	ApprovedBy  *int                `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt  *time.Time          `json:"approved_at,omitempty" db:"approved_at"`
}

// ReimbursementForm represents form data for creating a reimbursement request
type ReimbursementForm struct {
	ExpenseIDs []int  `json:"expense_ids"`
	Notes      string `json:"notes"`
}

// Validate validates the reimbursement form data
func (f *ReimbursementForm) Validate() []string {
	var errors []string

	if len(f.ExpenseIDs) == 0 {
		errors = append(errors, "At least one expense must be selected")
	}

	return errors
}

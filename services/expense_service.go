package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories"
)

// ExpenseService interface defines expense tracking business logic. Owners
// manage their own drafts; approval and payout need the expense permissions.
type ExpenseService interface {
	GetCategories(activeOnly bool) ([]models.ExpenseCategory, error)
	CreateCategory(form *models.ExpenseCategoryForm, actorID int) (*models.ExpenseCategory, error)
	UpdateCategory(id int, form *models.ExpenseCategoryForm, actorID int) (*models.ExpenseCategory, error)

	GetExpenses(employeeID int, status models.ExpenseStatus, actorID int) ([]models.Expense, error)
	GetExpense(id int, actorID int) (*models.Expense, error)
	CreateExpense(form *models.ExpenseForm, actorID int) (*models.Expense, error)
	UpdateExpense(id int, form *models.ExpenseForm, actorID int) (*models.Expense, error)
	Submit(id int, actorID int) (*models.Expense, error)
	Approve(id int, actorID int) (*models.Expense, error)
	Reject(id int, reason string, actorID int) (*models.Expense, error)

	CreateReimbursement(form *models.ReimbursementForm, actorID int) (*models.ReimbursementRequest, error)
	GetReimbursements(employeeID int, actorID int) ([]models.ReimbursementRequest, error)
	SettleReimbursement(id int, status models.ReimbursementStatus, actorID int) error
}

// expenseService implements ExpenseService interface
type expenseService struct {
	expenseRepo  repositories.ExpenseRepository
	employeeRepo repositories.EmployeeRepository
	authz        AuthzService
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repositories.ExpenseRepository, employeeRepo repositories.EmployeeRepository, authz AuthzService) ExpenseService {
	return &expenseService{
		expenseRepo:  expenseRepo,
		employeeRepo: employeeRepo,
		authz:        authz,
	}
}

// GetCategories retrieves expense categories
func (s *expenseService) GetCategories(activeOnly bool) ([]models.ExpenseCategory, error) {
	return s.expenseRepo.GetCategories(activeOnly)
}

// CreateCategory validates and creates a new expense category
func (s *expenseService) CreateCategory(form *models.ExpenseCategoryForm, actorID int) (*models.ExpenseCategory, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	if err := s.authz.Require(actorID, models.PermManageExpenses); err != nil {
		return nil, err
	}

	category := &models.ExpenseCategory{
		Name:        form.Name,
		Description: form.Description,
		Active:      true,
	}

	if err := s.expenseRepo.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// UpdateCategory validates and updates an expense category
func (s *expenseService) UpdateCategory(id int, form *models.ExpenseCategoryForm, actorID int) (*models.ExpenseCategory, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	if err := s.authz.Require(actorID, models.PermManageExpenses); err != nil {
		return nil, err
	}

	category, err := s.expenseRepo.GetCategoryByID(id)
	if err != nil {
		return nil, apperrors.NotFoundf("category %d not found", id)
	}

	category.Name = form.Name
	category.Description = form.Description
	category.Active = form.Active

	if err := s.expenseRepo.UpdateCategory(category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// GetExpenses lists expenses. Employees see their own; listing someone
// else's requires the expense management permission.
func (s *expenseService) GetExpenses(employeeID int, status models.ExpenseStatus, actorID int) ([]models.Expense, error) {
	if employeeID != actorID {
		if err := s.authz.Require(actorID, models.PermManageExpenses); err != nil {
			return nil, err
		}
	}

	return s.expenseRepo.GetExpenses(employeeID, status)
}

// GetExpense retrieves a single expense, enforcing ownership
func (s *expenseService) GetExpense(id int, actorID int) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(id)
	if err != nil {
		return nil, apperrors.NotFoundf("expense %d not found", id)
	}

	if expense.EmployeeID != actorID {
		if err := s.authz.Require(actorID, models.PermManageExpenses); err != nil {
			return nil, err
		}
	}

	return expense, nil
}

// CreateExpense validates and creates a draft expense owned by the actor
func (s *expenseService) CreateExpense(form *models.ExpenseForm, actorID int) (*models.Expense, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	category, err := s.expenseRepo.GetCategoryByID(form.CategoryID)
	if err != nil {
		return nil, apperrors.NotFoundf("category %d not found", form.CategoryID)
	}
	if !category.Active {
		return nil, apperrors.Validationf("category %q is not active", category.Name)
	}

	expenseDate, err := time.Parse("2006-01-02", form.ExpenseDate)
	if err != nil {
		return nil, apperrors.Validation("expense date must be in YYYY-MM-DD format")
	}

	expense := &models.Expense{
		EmployeeID:  actorID,
		CategoryID:  form.CategoryID,
		Title:       form.Title,
		Description: form.Description,
		AmountCents: form.AmountCents,
		ExpenseDate: expenseDate,
		Receipt:     form.Receipt,
		Status:      models.ExpenseDraft,
	}

	if err := s.expenseRepo.CreateExpense(expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return expense, nil
}

// UpdateExpense changes a draft or rejected expense owned by the actor.
// Editing a rejected expense puts it back into draft.
func (s *expenseService) UpdateExpense(id int, form *models.ExpenseForm, actorID int) (*models.Expense, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	expense, err := s.expenseRepo.GetExpenseByID(id)
	if err != nil {
		return nil, apperrors.NotFoundf("expense %d not found", id)
	}
	if expense.EmployeeID != actorID {
		return nil, apperrors.Authorization("only the owner can edit an expense")
	}
	if !expense.IsEditable() {
		return nil, apperrors.Conflict(fmt.Sprintf("expense in status %s cannot be edited", expense.Status))
	}

	expenseDate, err := time.Parse("2006-01-02", form.ExpenseDate)
	if err != nil {
		return nil, apperrors.Validation("expense date must be in YYYY-MM-DD format")
	}

	expense.CategoryID = form.CategoryID
	expense.Title = form.Title
	expense.Description = form.Description
	expense.AmountCents = form.AmountCents
	expense.ExpenseDate = expenseDate
	expense.Receipt = form.Receipt
	expense.Status = models.ExpenseDraft
	expense.RejectionReason = ""

	if err := s.expenseRepo.UpdateExpense(expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

// Submit moves a draft expense into the approval queue
func (s *expenseService) Submit(id int, actorID int) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetExpenseByID(id)
	if err != nil {
		return nil, apperrors.NotFoundf("expense %d not found", id)
	}
	if expense.EmployeeID != actorID {
		return nil, apperrors.Authorization("only the owner can submit an expense")
	}
	if !expense.IsEditable() {
		return nil, apperrors.Conflict(fmt.Sprintf("expense in status %s cannot be submitted", expense.Status))
	}

	expense.Status = models.ExpenseSubmitted
	expense.RejectionReason = ""

	if err := s.expenseRepo.UpdateExpense(expense); err != nil {
		return nil, fmt.Errorf("failed to submit expense: %w", err)
	}

	return expense, nil
}

// Approve marks a submitted expense approved. Approving your own expense is
// not allowed, even with the permission.
func (s *expenseService) Approve(id int, actorID int) (*models.Expense, error) {
	if err := s.authz.Require(actorID, models.PermApproveExpenses); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.GetExpenseByID(id)
	if err != nil {
		return nil, apperrors.NotFoundf("expense %d not found", id)
	}
	if expense.EmployeeID == actorID {
		return nil, apperrors.Authorization("cannot approve your own expense")
	}
	if expense.Status != models.ExpenseSubmitted {
		return nil, apperrors.Conflict(fmt.Sprintf("expense in status %s cannot be approved", expense.Status))
	}

	now := timeNow()
	expense.Status = models.ExpenseApproved
	expense.ApprovedBy = &actorID
	expense.ApprovedAt = &now

	if err := s.expenseRepo.UpdateExpense(expense); err != nil {
		return nil, fmt.Errorf("failed to approve expense: %w", err)
	}

	return expense, nil
}

// Reject marks a submitted expense rejected with a reason the owner can act on
func (s *expenseService) Reject(id int, reason string, actorID int) (*models.Expense, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, apperrors.Validation("a rejection reason is required")
	}

	if err := s.authz.Require(actorID, models.PermApproveExpenses); err != nil {
		return nil, err
	}

	expense, err := s.expenseRepo.GetExpenseByID(id)
	if err != nil {
		return nil, apperrors.NotFoundf("expense %d not found", id)
	}
	if expense.Status != models.ExpenseSubmitted {
		return nil, apperrors.Conflict(fmt.Sprintf("expense in status %s cannot be rejected", expense.Status))
	}

	expense.Status = models.ExpenseRejected
	expense.RejectionReason = reason

	if err := s.expenseRepo.UpdateExpense(expense); err != nil {
		return nil, fmt.Errorf("failed to reject expense: %w", err)
	}

	return expense, nil
}

// CreateReimbursement bundles the actor's approved expenses into a payout
// request. Only the actor's own approved expenses qualify.
func (s *expenseService) CreateReimbursement(form *models.ReimbursementForm, actorID int) (*models.ReimbursementRequest, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, apperrors.Validation(strings.Join(errs, ", "))
	}

	var total int64
	for _, expenseID := range form.ExpenseIDs {
		expense, err := s.expenseRepo.GetExpenseByID(expenseID)
		if err != nil {
			return nil, apperrors.NotFoundf("expense %d not found", expenseID)
		}
		if expense.EmployeeID != actorID {
			return nil, apperrors.Authorization("can only request reimbursement for your own expenses")
		}
		if expense.Status != models.ExpenseApproved {
			return nil, apperrors.Conflict(fmt.Sprintf("expense %d is not approved", expenseID))
		}
		total += expense.AmountCents
	}

	req := &models.ReimbursementRequest{
		EmployeeID:  actorID,
		ExpenseIDs:  form.ExpenseIDs,
		TotalCents:  total,
		Status:      models.ReimbursementPending,
		Notes:       form.Notes,
		RequestDate: timeNow(),
	}

	if err := s.expenseRepo.CreateReimbursement(req); err != nil {
		return nil, fmt.Errorf("failed to create reimbursement request: %w", err)
	}

	return req, nil
}

// GetReimbursements lists reimbursement requests, enforcing ownership
func (s *expenseService) GetReimbursements(employeeID int, actorID int) ([]models.ReimbursementRequest, error) {
	if employeeID != actorID {
		if err := s.authz.Require(actorID, models.PermManageExpenses); err != nil {
			return nil, err
		}
	}

	return s.expenseRepo.GetReimbursements(employeeID)
}

// SettleReimbursement moves a reimbursement request to approved, rejected or
// paid. Marking it paid also marks the linked expenses reimbursed.
func (s *expenseService) SettleReimbursement(id int, status models.ReimbursementStatus, actorID int) error {
	if err := s.authz.Require(actorID, models.PermApproveExpenses); err != nil {
		return err
	}

	req, err := s.expenseRepo.GetReimbursementByID(id)
	if err != nil {
		return apperrors.NotFoundf("reimbursement request %d not found", id)
	}

	switch status {
	case models.ReimbursementApproved, models.ReimbursementRejected:
		if req.Status != models.ReimbursementPending {
			return apperrors.Conflict(fmt.Sprintf("reimbursement in status %s cannot be settled", req.Status))
		}
	case models.ReimbursementPaid:
		if req.Status != models.ReimbursementApproved {
			return apperrors.Conflict(fmt.Sprintf("reimbursement in status %s cannot be paid", req.Status))
		}
	default:
		return apperrors.Validationf("invalid reimbursement status %q", status)
	}

	if err := s.expenseRepo.UpdateReimbursementStatus(id, status, actorID); err != nil {
		return fmt.Errorf("failed to update reimbursement status: %w", err)
	}

	if status == models.ReimbursementPaid {
		for _, expenseID := range req.ExpenseIDs {
			expense, err := s.expenseRepo.GetExpenseByID(expenseID)
			if err != nil {
				return fmt.Errorf("failed to load expense %d: %w", expenseID, err)
			}
			expense.Status = models.ExpenseReimbursed
			if err := s.expenseRepo.UpdateExpense(expense); err != nil {
				return fmt.Errorf("failed to mark expense %d reimbursed: %w", expenseID, err)
			}
		}
	}

	return nil
}

package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/repositories/mocks"
)

// ExpenseServiceTestSuite is a test suite for the expense service
type ExpenseServiceTestSuite struct {
	suite.Suite
	service            ExpenseService
	mockExpenseRepo    *mocks.MockExpenseRepository
	mockEmployeeRepo   *mocks.MockEmployeeRepository
	mockPermissionRepo *mocks.MockPermissionRepository
	originalNow        func() time.Time
}

// SetupTest sets up the test suite before each test
func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = mocks.NewMockExpenseRepository(suite.T())
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepository(suite.T())
	suite.mockPermissionRepo = mocks.NewMockPermissionRepository(suite.T())

	authz := NewAuthzService(suite.mockEmployeeRepo, suite.mockPermissionRepo)
	suite.service = NewExpenseService(suite.mockExpenseRepo, suite.mockEmployeeRepo, authz)

	suite.originalNow = timeNow
	timeNow = func() time.Time { return fixedNow }
}

// TearDownTest restores the clock after each test
func (suite *ExpenseServiceTestSuite) TearDownTest() {
	timeNow = suite.originalNow
}

func (suite *ExpenseServiceTestSuite) expectApprover(id int) {
	suite.mockEmployeeRepo.EXPECT().GetByID(id).
		Return(&models.Employee{ID: id, FirstName: "Dana", Active: true}, nil)
	suite.mockPermissionRepo.EXPECT().Has(id, models.PermApproveExpenses).Return(true, nil)
}

func draftExpense(id, ownerID int) *models.Expense {
	return &models.Expense{
		ID:          id,
		EmployeeID:  ownerID,
		CategoryID:  1,
		Title:       "Taxi to client site",
		AmountCents: 2500,
		ExpenseDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		Status:      models.ExpenseDraft,
	}
}

// TestCreateExpense_Success tests creating a draft owned by the actor
func (suite *ExpenseServiceTestSuite) TestCreateExpense_Success() {
	suite.mockExpenseRepo.EXPECT().GetCategoryByID(1).
		Return(&models.ExpenseCategory{ID: 1, Name: "Travel", Active: true}, nil)
	suite.mockExpenseRepo.EXPECT().CreateExpense(mock.MatchedBy(func(e *models.Expense) bool {
		return e.EmployeeID == 7 && e.Status == models.ExpenseDraft
	})).Return(nil)

	form := &models.ExpenseForm{
		CategoryID:  1,
		Title:       "Taxi to client site",
		AmountCents: 2500,
		ExpenseDate: "2026-08-10",
	}
	expense, err := suite.service.CreateExpense(form, 7)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7, expense.EmployeeID)
	assert.Equal(suite.T(), models.ExpenseDraft, expense.Status)
}

// TestCreateExpense_InactiveCategory tests that retired categories reject
// new expenses
func (suite *ExpenseServiceTestSuite) TestCreateExpense_InactiveCategory() {
	suite.mockExpenseRepo.EXPECT().GetCategoryByID(2).
		Return(&models.ExpenseCategory{ID: 2, Name: "Fax charges", Active: false}, nil)

	form := &models.ExpenseForm{
		CategoryID:  2,
		Title:       "Fax to head office",
		AmountCents: 300,
		ExpenseDate: "2026-08-10",
	}
	expense, err := suite.service.CreateExpense(form, 7)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), expense)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateExpense_NotOwner tests that only the owner can edit an expense
func (suite *ExpenseServiceTestSuite) TestUpdateExpense_NotOwner() {
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(draftExpense(1, 7), nil)

	form := &models.ExpenseForm{
		CategoryID:  1,
		Title:       "Taxi to client site",
		AmountCents: 9999,
		ExpenseDate: "2026-08-10",
	}
	expense, err := suite.service.UpdateExpense(1, form, 8)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), expense)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestUpdateExpense_SubmittedLocked tests that submitted expenses cannot be
// edited
func (suite *ExpenseServiceTestSuite) TestUpdateExpense_SubmittedLocked() {
	submitted := draftExpense(1, 7)
	submitted.Status = models.ExpenseSubmitted
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(submitted, nil)

	form := &models.ExpenseForm{
		CategoryID:  1,
		Title:       "Taxi to client site",
		AmountCents: 9999,
		ExpenseDate: "2026-08-10",
	}
	expense, err := suite.service.UpdateExpense(1, form, 7)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), expense)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

// TestUpdateExpense_RejectedBackToDraft tests that editing a rejected expense
// returns it to draft and clears the rejection reason
func (suite *ExpenseServiceTestSuite) TestUpdateExpense_RejectedBackToDraft() {
	rejected := draftExpense(1, 7)
	rejected.Status = models.ExpenseRejected
	rejected.RejectionReason = "missing receipt"
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(rejected, nil)
	suite.mockExpenseRepo.EXPECT().UpdateExpense(mock.MatchedBy(func(e *models.Expense) bool {
		return e.Status == models.ExpenseDraft && e.RejectionReason == ""
	})).Return(nil)

	form := &models.ExpenseForm{
		CategoryID:  1,
		Title:       "Taxi to client site",
		AmountCents: 2500,
		ExpenseDate: "2026-08-10",
		Receipt:     "receipt-scan.pdf",
	}
	expense, err := suite.service.UpdateExpense(1, form, 7)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ExpenseDraft, expense.Status)
	assert.Empty(suite.T(), expense.RejectionReason)
}

// TestSubmit_Success tests moving a draft into the approval queue
func (suite *ExpenseServiceTestSuite) TestSubmit_Success() {
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(draftExpense(1, 7), nil)
	suite.mockExpenseRepo.EXPECT().UpdateExpense(mock.MatchedBy(func(e *models.Expense) bool {
		return e.Status == models.ExpenseSubmitted
	})).Return(nil)

	expense, err := suite.service.Submit(1, 7)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ExpenseSubmitted, expense.Status)
}

// TestApprove_Success tests approving someone else's submitted expense
func (suite *ExpenseServiceTestSuite) TestApprove_Success() {
	suite.expectApprover(9)

	submitted := draftExpense(1, 7)
	submitted.Status = models.ExpenseSubmitted
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(submitted, nil)
	suite.mockExpenseRepo.EXPECT().UpdateExpense(mock.MatchedBy(func(e *models.Expense) bool {
		return e.Status == models.ExpenseApproved &&
			e.ApprovedBy != nil && *e.ApprovedBy == 9 &&
			e.ApprovedAt != nil && e.ApprovedAt.Equal(fixedNow)
	})).Return(nil)

	expense, err := suite.service.Approve(1, 9)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ExpenseApproved, expense.Status)
}

// TestApprove_OwnExpense tests that approvers cannot approve their own
// expenses
func (suite *ExpenseServiceTestSuite) TestApprove_OwnExpense() {
	suite.expectApprover(7)

	submitted := draftExpense(1, 7)
	submitted.Status = models.ExpenseSubmitted
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(submitted, nil)

	expense, err := suite.service.Approve(1, 7)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), expense)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.Contains(suite.T(), err.Error(), "own expense")
}

// TestApprove_DraftRejected tests that only submitted expenses can be approved
func (suite *ExpenseServiceTestSuite) TestApprove_DraftRejected() {
	suite.expectApprover(9)
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(draftExpense(1, 7), nil)

	expense, err := suite.service.Approve(1, 9)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), expense)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

// TestReject_RequiresReason tests that the reason is checked before anything
// else
func (suite *ExpenseServiceTestSuite) TestReject_RequiresReason() {
	expense, err := suite.service.Reject(1, "   ", 9)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), expense)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestReject_Success tests rejecting a submitted expense with a reason
func (suite *ExpenseServiceTestSuite) TestReject_Success() {
	suite.expectApprover(9)

	submitted := draftExpense(1, 7)
	submitted.Status = models.ExpenseSubmitted
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(submitted, nil)
	suite.mockExpenseRepo.EXPECT().UpdateExpense(mock.MatchedBy(func(e *models.Expense) bool {
		return e.Status == models.ExpenseRejected && e.RejectionReason == "missing receipt"
	})).Return(nil)

	expense, err := suite.service.Reject(1, "missing receipt", 9)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ExpenseRejected, expense.Status)
}

// TestCreateReimbursement_Success tests bundling approved expenses into a
// payout request
func (suite *ExpenseServiceTestSuite) TestCreateReimbursement_Success() {
	first := draftExpense(1, 7)
	first.Status = models.ExpenseApproved
	first.AmountCents = 2500
	second := draftExpense(2, 7)
	second.Status = models.ExpenseApproved
	second.AmountCents = 1800

	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(first, nil)
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(2).Return(second, nil)
	suite.mockExpenseRepo.EXPECT().CreateReimbursement(mock.MatchedBy(func(r *models.ReimbursementRequest) bool {
		return r.EmployeeID == 7 &&
			r.TotalCents == 4300 &&
			r.Status == models.ReimbursementPending &&
			r.RequestDate.Equal(fixedNow)
	})).Return(nil)

	form := &models.ReimbursementForm{ExpenseIDs: []int{1, 2}}
	req, err := suite.service.CreateReimbursement(form, 7)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(4300), req.TotalCents)
}

// TestCreateReimbursement_UnapprovedExpense tests that only approved expenses
// can be bundled
func (suite *ExpenseServiceTestSuite) TestCreateReimbursement_UnapprovedExpense() {
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(draftExpense(1, 7), nil)

	form := &models.ReimbursementForm{ExpenseIDs: []int{1}}
	req, err := suite.service.CreateReimbursement(form, 7)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), req)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

// TestCreateReimbursement_NotOwner tests that foreign expenses cannot be
// bundled
func (suite *ExpenseServiceTestSuite) TestCreateReimbursement_NotOwner() {
	foreign := draftExpense(1, 8)
	foreign.Status = models.ExpenseApproved
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(foreign, nil)

	form := &models.ReimbursementForm{ExpenseIDs: []int{1}}
	req, err := suite.service.CreateReimbursement(form, 7)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), req)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestSettleReimbursement_Paid tests that paying a reimbursement marks the
// linked expenses reimbursed
func (suite *ExpenseServiceTestSuite) TestSettleReimbursement_Paid() {
	suite.expectApprover(9)

	req := &models.ReimbursementRequest{
		ID:         3,
		EmployeeID: 7,
		ExpenseIDs: []int{1, 2},
		Status:     models.ReimbursementApproved,
	}
	suite.mockExpenseRepo.EXPECT().GetReimbursementByID(3).Return(req, nil)
	suite.mockExpenseRepo.EXPECT().UpdateReimbursementStatus(3, models.ReimbursementPaid, 9).Return(nil)

	first := draftExpense(1, 7)
	first.Status = models.ExpenseApproved
	second := draftExpense(2, 7)
	second.Status = models.ExpenseApproved
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(1).Return(first, nil)
	suite.mockExpenseRepo.EXPECT().GetExpenseByID(2).Return(second, nil)

	var reimbursed []int
	suite.mockExpenseRepo.EXPECT().UpdateExpense(mock.MatchedBy(func(e *models.Expense) bool {
		if e.Status == models.ExpenseReimbursed {
			reimbursed = append(reimbursed, e.ID)
			return true
		}
		return false
	})).Return(nil)

	err := suite.service.SettleReimbursement(3, models.ReimbursementPaid, 9)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []int{1, 2}, reimbursed)
}

// TestSettleReimbursement_PayPendingRejected tests that a pending request
// cannot jump straight to paid
func (suite *ExpenseServiceTestSuite) TestSettleReimbursement_PayPendingRejected() {
	suite.expectApprover(9)

	req := &models.ReimbursementRequest{ID: 3, EmployeeID: 7, Status: models.ReimbursementPending}
	suite.mockExpenseRepo.EXPECT().GetReimbursementByID(3).Return(req, nil)

	err := suite.service.SettleReimbursement(3, models.ReimbursementPaid, 9)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

// TestSettleReimbursement_InvalidStatus tests the unknown status case
func (suite *ExpenseServiceTestSuite) TestSettleReimbursement_InvalidStatus() {
	suite.expectApprover(9)

	req := &models.ReimbursementRequest{ID: 3, EmployeeID: 7, Status: models.ReimbursementPending}
	suite.mockExpenseRepo.EXPECT().GetReimbursementByID(3).Return(req, nil)

	err := suite.service.SettleReimbursement(3, models.ReimbursementStatus("settled"), 9)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestGetExpenses_ForeignRequiresPermission tests that listing another
// employee's expenses is gated
func (suite *ExpenseServiceTestSuite) TestGetExpenses_ForeignRequiresPermission() {
	suite.mockEmployeeRepo.EXPECT().GetByID(7).
		Return(&models.Employee{ID: 7, FirstName: "Eli", Active: true}, nil)
	suite.mockPermissionRepo.EXPECT().Has(7, models.PermManageExpenses).Return(false, nil)

	expenses, err := suite.service.GetExpenses(8, "", 7)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), expenses)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestGetExpenses_OwnWithoutPermission tests that employees always see their
// own expenses
func (suite *ExpenseServiceTestSuite) TestGetExpenses_OwnWithoutPermission() {
	expenses := []models.Expense{*draftExpense(1, 7)}
	suite.mockExpenseRepo.EXPECT().GetExpenses(7, models.ExpenseStatus("")).Return(expenses, nil)

	got, err := suite.service.GetExpenses(7, "", 7)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 1)
}

// TestExpenseServiceTestSuite runs the test suite
func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dverbeek/calltrack/apperrors"
	"github.com/dverbeek/calltrack/models"
	"github.com/dverbeek/calltrack/services"
	"github.com/dverbeek/calltrack/userctx"
)

// ExpenseController handles expense tracking requests
type ExpenseController struct {
	services *services.Services
}

// NewExpenseController creates a new expense controller
func NewExpenseController(services *services.Services) *ExpenseController {
	return &ExpenseController{services: services}
}

// Categories handles GET /expenses/categories
func (c *ExpenseController) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.services.Expense.GetCategories(r.URL.Query().Get("active") == "true")
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /expenses/categories
func (c *ExpenseController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var form models.ExpenseCategoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	category, err := c.services.Expense.CreateCategory(&form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, category)
}

// UpdateCategory handles PUT /expenses/categories/{id}
func (c *ExpenseController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid category id"))
		return
	}

	var form models.ExpenseCategoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	category, err := c.services.Expense.UpdateCategory(id, &form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, category)
}

// Index handles GET /expenses?employee_id=&status=
func (c *ExpenseController) Index(w http.ResponseWriter, r *http.Request) {
	actorID := userctx.GetActorID(r.Context())

	employeeID := actorID
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		var err error
		employeeID, err = strconv.Atoi(raw)
		if err != nil {
			respondError(w, apperrors.Validation("invalid employee_id"))
			return
		}
	}

	status := models.ExpenseStatus(r.URL.Query().Get("status"))

	expenses, err := c.services.Expense.GetExpenses(employeeID, status, actorID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expenses)
}

// Show handles GET /expenses/{id}
func (c *ExpenseController) Show(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid expense id"))
		return
	}

	expense, err := c.services.Expense.GetExpense(id, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

// Create handles POST /expenses
func (c *ExpenseController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ExpenseForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	expense, err := c.services.Expense.CreateExpense(&form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, expense)
}

// Update handles PUT /expenses/{id}
func (c *ExpenseController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid expense id"))
		return
	}

	var form models.ExpenseForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	expense, err := c.services.Expense.UpdateExpense(id, &form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

// Submit handles POST /expenses/{id}/submit
func (c *ExpenseController) Submit(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.services.Expense.Submit)
}

// Approve handles POST /expenses/{id}/approve
func (c *ExpenseController) Approve(w http.ResponseWriter, r *http.Request) {
	c.transition(w, r, c.services.Expense.Approve)
}

// Reject handles POST /expenses/{id}/reject
func (c *ExpenseController) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid expense id"))
		return
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	expense, err := c.services.Expense.Reject(id, body.Reason, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

// transition runs one of the id-plus-actor expense workflow calls
func (c *ExpenseController) transition(w http.ResponseWriter, r *http.Request, fn func(int, int) (*models.Expense, error)) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid expense id"))
		return
	}

	expense, err := fn(id, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

// Reimbursements handles GET /expenses/reimbursements?employee_id=
func (c *ExpenseController) Reimbursements(w http.ResponseWriter, r *http.Request) {
	actorID := userctx.GetActorID(r.Context())

	employeeID := actorID
	if raw := r.URL.Query().Get("employee_id"); raw != "" {
		var err error
		employeeID, err = strconv.Atoi(raw)
		if err != nil {
			respondError(w, apperrors.Validation("invalid employee_id"))
			return
		}
	}

	requests, err := c.services.Expense.GetReimbursements(employeeID, actorID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, requests)
}

// CreateReimbursement handles POST /expenses/reimbursements
func (c *ExpenseController) CreateReimbursement(w http.ResponseWriter, r *http.Request) {
	var form models.ReimbursementForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	req, err := c.services.Expense.CreateReimbursement(&form, userctx.GetActorID(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, req)
}

// SettleReimbursement handles POST /expenses/reimbursements/{id}/settle
func (c *ExpenseController) SettleReimbursement(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, apperrors.Validation("invalid reimbursement id"))
		return
	}

	var body struct {
		Status models.ReimbursementStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, apperrors.Validation("invalid request body"))
		return
	}

	if err := c.services.Expense.SettleReimbursement(id, body.Status, userctx.GetActorID(r.Context())); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": string(body.Status)})
}

package devserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// listParams pulls the shared page/limit/month query parameters, applying
// the same defaults the production API uses.
func listParams(r *http.Request) (page, limit int, month string) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}
	month = r.URL.Query().Get("month")
	if month == "" {
		month = currentMonth()
	}
	return page, limit, month
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	page, limit, month := listParams(r)
	owner := userIDFromContext(r.Context())
	writeSuccess(w, http.StatusOK, "Budgets retrieved", s.store.listBudgets(owner, month, page, limit))
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		writeValidation(w, []fieldError{{Field: "amount", Message: "amount must be positive"}})
		return
	}
	owner := userIDFromContext(r.Context())
	writeSuccess(w, http.StatusCreated, "Budget created", s.store.createBudget(owner, req))
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}
	owner := userIDFromContext(r.Context())
	budget, ok := s.store.updateBudget(owner, chi.URLParam(r, "id"), req)
	if !ok {
		writeFailed(w, http.StatusNotFound, "budget not found")
		return
	}
	writeSuccess(w, http.StatusOK, "Budget updated", budget)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	owner := userIDFromContext(r.Context())
	if !s.store.deleteBudget(owner, chi.URLParam(r, "id")) {
		writeFailed(w, http.StatusNotFound, "budget not found")
		return
	}
	writeSuccess(w, http.StatusOK, "Budget deleted", nil)
}

func (s *Server) handleListIncomes(w http.ResponseWriter, r *http.Request) {
	page, limit, month := listParams(r)
	owner := userIDFromContext(r.Context())
	writeSuccess(w, http.StatusOK, "Income retrieved", s.store.listIncomes(owner, month, page, limit))
}

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var errs []fieldError
	if req.Amount <= 0 {
		errs = append(errs, fieldError{Field: "amount", Message: "amount must be positive"})
	}
	if req.Source == "" {
		errs = append(errs, fieldError{Field: "source", Message: "source is required"})
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	owner := userIDFromContext(r.Context())
	writeSuccess(w, http.StatusCreated, "Income recorded", s.store.createIncome(owner, req))
}

func (s *Server) handleUpdateIncome(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}
	owner := userIDFromContext(r.Context())
	income, ok := s.store.updateIncome(owner, chi.URLParam(r, "id"), req)
	if !ok {
		writeFailed(w, http.StatusNotFound, "income not found")
		return
	}
	writeSuccess(w, http.StatusOK, "Income updated", income)
}

func (s *Server) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	owner := userIDFromContext(r.Context())
	if !s.store.deleteIncome(owner, chi.URLParam(r, "id")) {
		writeFailed(w, http.StatusNotFound, "income not found")
		return
	}
	writeSuccess(w, http.StatusOK, "Income deleted", nil)
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	page, limit, month := listParams(r)
	category := models.ExpenseCategory(r.URL.Query().Get("category"))
	owner := userIDFromContext(r.Context())
	writeSuccess(w, http.StatusOK, "Expenses retrieved", s.store.listExpenses(owner, month, category, page, limit))
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var errs []fieldError
	if req.Amount <= 0 {
		errs = append(errs, fieldError{Field: "amount", Message: "amount must be positive"})
	}
	if req.Category == "" || req.Category == models.CategoryAll {
		errs = append(errs, fieldError{Field: "category", Message: "a specific category is required"})
	}
	if len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	owner := userIDFromContext(r.Context())
	writeSuccess(w, http.StatusCreated, "Expense recorded", s.store.createExpense(owner, req))
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailed(w, http.StatusBadRequest, "invalid request body")
		return
	}
	owner := userIDFromContext(r.Context())
	expense, ok := s.store.updateExpense(owner, chi.URLParam(r, "id"), req)
	if !ok {
		writeFailed(w, http.StatusNotFound, "expense not found")
		return
	}
	writeSuccess(w, http.StatusOK, "Expense updated", expense)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	owner := userIDFromContext(r.Context())
	if !s.store.deleteExpense(owner, chi.URLParam(r, "id")) {
		writeFailed(w, http.StatusNotFound, "expense not found")
		return
	}
	writeSuccess(w, http.StatusOK, "Expense deleted", nil)
}

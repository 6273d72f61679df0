package models

// Budget is a spending ceiling for a category in a given month.
type Budget struct {
	ID string `json:"id"`
	// Amount is the budgeted ceiling in the user's currency.
	Amount float64 `json:"amount"`
	// Category the budget applies to; CategoryAll covers the whole month.
	Category ExpenseCategory `json:"category"`
	// Month is the period in "YYYY-MM" form.
	Month string `json:"month"`
	// IsExceeded is set by the server once spending passes Amount;
	// nil when the server has not evaluated it yet.
	IsExceeded *bool `json:"isExceeded"`
	// IsRecurring marks the budget for automatic carry-over each month.
	IsRecurring bool   `json:"isRecurring"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// CreateBudgetRequest is the payload for creating a budget.
type CreateBudgetRequest struct {
	Amount      float64         `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	IsRecurring bool            `json:"isRecurring"`
}

// UpdateBudgetRequest is the partial-update payload for a budget.
// Nil fields are left unchanged by the server.
type UpdateBudgetRequest struct {
	Amount      *float64         `json:"amount,omitempty"`
	Category    *ExpenseCategory `json:"category,omitempty"`
	IsRecurring *bool            `json:"isRecurring,omitempty"`
}

// PagedBudgets is one page of budgets plus the month's aggregate total.
type PagedBudgets struct {
	Budgets []Budget `json:"budgets"`
	Page    int      `json:"page"`
	Limit   int      `json:"limit"`
	Total   int      `json:"total"`
	// TotalBudget is the summed budget amount for the whole month,
	// independent of pagination.
	TotalBudget float64 `json:"totalBudget"`
}

// Pages returns the authoritative page count for the result set.
func (p PagedBudgets) Pages() int { return PageCount(p.Total, p.Limit) }

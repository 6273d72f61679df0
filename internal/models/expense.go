package models

// Expense is a single spending entry for a month.
type Expense struct {
	ID       string          `json:"id"`
	Amount   float64         `json:"amount"`
	Category ExpenseCategory `json:"category"`
	// Note is an optional free-form annotation.
	Note        string `json:"note,omitempty"`
	IsRecurring bool   `json:"isRecurring"`
	// Month is the period in "YYYY-MM" form.
	Month     string `json:"month"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateExpenseRequest is the payload for recording an expense.
type CreateExpenseRequest struct {
	Amount      float64         `json:"amount"`
	Category    ExpenseCategory `json:"category"`
	IsRecurring bool            `json:"isRecurring"`
	Note        string          `json:"note,omitempty"`
}

// UpdateExpenseRequest is the partial-update payload for an expense.
// Nil fields are left unchanged by the server.
type UpdateExpenseRequest struct {
	Amount      *float64         `json:"amount,omitempty"`
	Category    *ExpenseCategory `json:"category,omitempty"`
	IsRecurring *bool            `json:"isRecurring,omitempty"`
	Note        *string          `json:"note,omitempty"`
}

// PagedExpenses is one page of expenses plus the aggregate total for the
// queried month and category filter.
type PagedExpenses struct {
	Expenses []Expense `json:"expenses"`
	// TotalExpenses is the summed spending matching the query,
	// independent of pagination.
	TotalExpenses float64 `json:"totalExpenses"`
	Page          int     `json:"page"`
	Limit         int     `json:"limit"`
	Total         int     `json:"total"`
}

// Pages returns the authoritative page count for the result set.
func (p PagedExpenses) Pages() int { return PageCount(p.Total, p.Limit) }

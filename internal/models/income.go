package models

// Income is a single income entry for a month.
type Income struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	// Source describes where the money came from ("salary", "freelance").
	Source string `json:"source"`
	// Note is an optional free-form annotation.
	Note        string `json:"note,omitempty"`
	IsRecurring bool   `json:"isRecurring"`
	// Month is the period in "YYYY-MM" form.
	Month     string `json:"month"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateIncomeRequest is the payload for recording income.
type CreateIncomeRequest struct {
	Amount      float64 `json:"amount"`
	Source      string  `json:"source"`
	IsRecurring bool    `json:"isRecurring"`
	Note        string  `json:"note,omitempty"`
}

// UpdateIncomeRequest is the partial-update payload for an income entry.
// Nil fields are left unchanged by the server.
type UpdateIncomeRequest struct {
	Amount      *float64 `json:"amount,omitempty"`
	Source      *string  `json:"source,omitempty"`
	IsRecurring *bool    `json:"isRecurring,omitempty"`
	Note        *string  `json:"note,omitempty"`
}

// PagedIncomes is one page of income entries plus the month's total.
type PagedIncomes struct {
	Income []Income `json:"income"`
	// TotalIncome is the summed income for the whole month, independent
	// of pagination.
	TotalIncome float64 `json:"totalIncome"`
	Page        int     `json:"page"`
	Limit       int     `json:"limit"`
	Total       int     `json:"total"`
}

// Pages returns the authoritative page count for the result set.
func (p PagedIncomes) Pages() int { return PageCount(p.Total, p.Limit) }

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PreciousIfeaka/fintrack-fe/internal/client/gateway"
	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// GetExpensesByMonth lists the expenses for month ("YYYY-MM"), one page
// at a time. category narrows the listing; CategoryAll (or "") lists
// everything.
func (c *Client) GetExpensesByMonth(ctx context.Context, page, limit int, month string, category models.ExpenseCategory) (*models.PagedExpenses, error) {
	path := fmt.Sprintf("/api/v1/expenses?page=%d&limit=%d&month=%s", page, limit, url.QueryEscape(month))
	if category != "" && category != models.CategoryAll {
		path += "&category=" + url.QueryEscape(string(category))
	}
	data, err := c.gw.Do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}
	return decode[*models.PagedExpenses](data)
}

// CreateExpense records an expense for the current month.
func (c *Client) CreateExpense(ctx context.Context, req models.CreateExpenseRequest) (*models.Expense, error) {
	data, err := c.gw.Do(ctx, http.MethodPost, "/api/v1/expenses", gateway.JSON(req), true)
	if err != nil {
		return nil, err
	}
	return decode[*models.Expense](data)
}

// UpdateExpense applies a partial update to the expense with the given id.
func (c *Client) UpdateExpense(ctx context.Context, id string, req models.UpdateExpenseRequest) (*models.Expense, error) {
	data, err := c.gw.Do(ctx, http.MethodPatch, "/api/v1/expenses/"+id, gateway.JSON(req), true)
	if err != nil {
		return nil, err
	}
	return decode[*models.Expense](data)
}

// DeleteExpense removes the expense with the given id.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	_, err := c.gw.Do(ctx, http.MethodDelete, "/api/v1/expenses/"+id, nil, true)
	return err
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PreciousIfeaka/fintrack-fe/internal/client/gateway"
	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// GetBudgetsByMonth lists the budgets for month ("YYYY-MM"), one page at
// a time.
func (c *Client) GetBudgetsByMonth(ctx context.Context, page, limit int, month string) (*models.PagedBudgets, error) {
	path := fmt.Sprintf("/api/v1/budgets?page=%d&limit=%d&month=%s", page, limit, url.QueryEscape(month))
	data, err := c.gw.Do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}
	return decode[*models.PagedBudgets](data)
}

// CreateBudget creates a budget for the current month.
func (c *Client) CreateBudget(ctx context.Context, req models.CreateBudgetRequest) (*models.Budget, error) {
	data, err := c.gw.Do(ctx, http.MethodPost, "/api/v1/budgets", gateway.JSON(req), true)
	if err != nil {
		return nil, err
	}
	return decode[*models.Budget](data)
}

// UpdateBudget applies a partial update to the budget with the given id.
func (c *Client) UpdateBudget(ctx context.Context, id string, req models.UpdateBudgetRequest) (*models.Budget, error) {
	data, err := c.gw.Do(ctx, http.MethodPatch, "/api/v1/budgets/"+id, gateway.JSON(req), true)
	if err != nil {
		return nil, err
	}
	return decode[*models.Budget](data)
}

// DeleteBudget removes the budget with the given id.
func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	_, err := c.gw.Do(ctx, http.MethodDelete, "/api/v1/budgets/"+id, nil, true)
	return err
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PreciousIfeaka/fintrack-fe/internal/client/gateway"
	"github.com/PreciousIfeaka/fintrack-fe/internal/models"
)

// GetIncomesByMonth lists the income entries for month ("YYYY-MM"), one
// page at a time.
func (c *Client) GetIncomesByMonth(ctx context.Context, page, limit int, month string) (*models.PagedIncomes, error) {
	path := fmt.Sprintf("/api/v1/incomes?page=%d&limit=%d&month=%s", page, limit, url.QueryEscape(month))
	data, err := c.gw.Do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}
	return decode[*models.PagedIncomes](data)
}

// CreateIncome records an income entry for the current month.
func (c *Client) CreateIncome(ctx context.Context, req models.CreateIncomeRequest) (*models.Income, error) {
	data, err := c.gw.Do(ctx, http.MethodPost, "/api/v1/incomes", gateway.JSON(req), true)
	if err != nil {
		return nil, err
	}
	return decode[*models.Income](data)
}

// UpdateIncome applies a partial update to the income entry with the
// given id.
func (c *Client) UpdateIncome(ctx context.Context, id string, req models.UpdateIncomeRequest) (*models.Income, error) {
	data, err := c.gw.Do(ctx, http.MethodPatch, "/api/v1/incomes/"+id, gateway.JSON(req), true)
	if err != nil {
		return nil, err
	}
	return decode[*models.Income](data)
}

// DeleteIncome removes the income entry with the given id.
func (c *Client) DeleteIncome(ctx context.Context, id string) error {
	_, err := c.gw.Do(ctx, http.MethodDelete, "/api/v1/incomes/"+id, nil, true)
	return err
}

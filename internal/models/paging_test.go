package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		name         string
		total, limit int
		want         int
	}{
		{"exact multiple", 20, 10, 2},
		{"partial last page", 25, 10, 3},
		{"single item", 1, 10, 1},
		{"empty result", 0, 10, 0},
		{"zero limit", 25, 0, 0},
		{"negative total", -1, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.total, tt.limit))
		})
	}
}

func TestPagedEnvelopes_Pages(t *testing.T) {
	assert.Equal(t, 3, PagedBudgets{Total: 25, Limit: 10}.Pages())
	assert.Equal(t, 1, PagedIncomes{Total: 7, Limit: 10}.Pages())
	assert.Equal(t, 4, PagedExpenses{Total: 31, Limit: 10}.Pages())
}

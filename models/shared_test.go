package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagedResultComputesTotalPages(t *testing.T) {
	params := ListParams{Page: 2, PageSize: 12}
	result := NewPagedResult([]Facility{{ID: "a"}}, params, 25)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 12, result.PageSize)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestNewPagedResultExactMultiple(t *testing.T) {
	result := NewPagedResult([]Facility{}, ListParams{Page: 1, PageSize: 10}, 30)
	assert.Equal(t, 3, result.TotalPages)
}

func TestNewPagedResultEmptyItemsNeverNil(t *testing.T) {
	var items []Facility
	result := NewPagedResult(items, ListParams{Page: 1, PageSize: 10}, 0)

	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.Equal(t, 0, result.TotalPages)
}

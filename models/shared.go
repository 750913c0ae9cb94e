package models

// ListParams carries pagination state bound from URL query parameters.
// A request that names any filter without an explicit page starts at page 1.
type ListParams struct {
	Page     int `json:"page" form:"page"`
	PageSize int `json:"pageSize" form:"pageSize"`
}

// PagedResult wraps a page of items together with pagination metadata.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagedResult computes total pages from the total count and page size.
func NewPagedResult[T any](items []T, params ListParams, total int64) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if params.PageSize > 0 {
		totalPages = int((total + int64(params.PageSize) - 1) / int64(params.PageSize))
	}
	return PagedResult[T]{
		Items:      items,
		Page:       params.Page,
		PageSize:   params.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

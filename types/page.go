package types

// PageQuery is the raw paging input of every listing. Values stay strings so
// malformed numbers are reported as invalid input instead of a bind error.
type PageQuery struct {
	Page     string `form:"page"`
	Limit    string `form:"limit"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
}

type PageResult[T any] struct {
	Items      []T   `json:"items"`
	TotalItems int64 `json:"totalItems"`
	Page       int   `json:"page"`
	TotalPages int64 `json:"totalPages"`
}

// NewPageResult derives TotalPages as ceil(total/limit). Items is never nil.
func NewPageResult[T any](items []T, total int64, page, limit int) *PageResult[T] {
	if items == nil {
		items = []T{}
	}
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return &PageResult[T]{
		Items:      items,
		TotalItems: total,
		Page:       page,
		TotalPages: pages,
	}
}

// Package pagination defines the fixed-window pagination contract shared by
// all listing endpoints.
package pagination

import (
	"net/http"
	"strconv"
)

// PageSize is the fixed number of records per page.
const PageSize = 20

// Page is the response envelope for paginated listings. TotalCount reflects
// the filter predicate of the query that produced Data, computed in the same
// query pass, so count and page are consistent with each other.
type Page[T any] struct {
	Data       []T `json:"data"`
	TotalPages int `json:"totalPages"`
	TotalCount int `json:"totalCount"`
}

// NewPage wraps data with its total count. Data is never null in JSON.
func NewPage[T any](data []T, totalCount int) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Data:       data,
		TotalPages: TotalPages(totalCount),
		TotalCount: totalCount,
	}
}

// TotalPages returns ceil(totalCount / PageSize); 0 when totalCount is 0.
func TotalPages(totalCount int) int {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + PageSize - 1) / PageSize
}

// Offset converts a 1-based page number into a row offset. Pages below 1 are
// clamped to the first page.
func Offset(page int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * PageSize
}

// PageParam parses the "page" query parameter, defaulting to 1.
// Non-numeric or non-positive values fall back to the first page.
func PageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

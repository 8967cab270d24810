package models

// PageRequest holds the pagination parameters parsed from the query string.
// Zero or negative values are replaced with the defaults.
type PageRequest struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// Defaults used when the client omits pagination parameters.
const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Normalize replaces out-of-range values with the defaults and returns the
// result. The receiver is not modified.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	return p
}

// Offset returns the SQL OFFSET corresponding to the request.
func (p PageRequest) Offset() uint64 {
	return uint64((p.Page - 1) * p.PerPage)
}

// Pagination describes the position of a page inside the full result set,
// including navigation links to the adjacent pages.
type Pagination struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"per_page"`
	TotalItems int64  `json:"total_items"`
	TotalPages int    `json:"total_pages"`
	NextPage   string `json:"next_page"`
	PrevPage   string `json:"prev_page"`
}

// Page is a paginated response envelope.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination computes page counts for the given request and total item
// count. Navigation links are filled in by the HTTP layer, which knows the
// request URL.
func NewPagination(req PageRequest, totalItems int64) Pagination {
	totalPages := int(totalItems / int64(req.PerPage))
	if totalItems%int64(req.PerPage) != 0 {
		totalPages++
	}

	return Pagination{
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// HasNext reports whether a page exists after the current one.
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

// HasPrev reports whether a page exists before the current one.
func (p Pagination) HasPrev() bool {
	return p.Page > 1 && p.Page <= p.TotalPages+1
}

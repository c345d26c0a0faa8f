package types

// Pagination is embedded in every list response.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

// PageParams holds normalized offset pagination parameters.
type PageParams struct {
	Page  int
	Limit int
}

// NormalizePage clamps raw page/limit values to sane bounds. Zero or
// negative values fall back to defaults; limit is capped at 100.
func NormalizePage(page, limit, defaultLimit int) PageParams {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}
	return PageParams{Page: page, Limit: limit}
}

// Offset returns the row offset for the current page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Paginate computes the response pagination block. Pages is the ceiling
// of total/limit; a page beyond Pages simply yields an empty item list.
func (p PageParams) Paginate(total int64) Pagination {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Pagination{Current: p.Page, Pages: pages, Total: total}
}

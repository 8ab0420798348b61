// Package pagination implements 1-indexed page/limit slicing.
package pagination

// Params is a normalized page request. Page starts at 1.
type Params struct {
	Page  int
	Limit int
}

// New builds Params, substituting the defaults for values below 1.
func New(page, limit, defaultPage, defaultLimit int) Params {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset is the index of the first item on the page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Slice returns the page of items described by p. A page past the end
// yields an empty, non-nil slice.
func Slice[T any](items []T, p Params) []T {
	start := p.Offset()
	if start < 0 || start >= len(items) || p.Limit < 1 {
		return []T{}
	}

	end := start + p.Limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// TotalPages is ceil(total / limit); zero items means zero pages.
func TotalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}

	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}

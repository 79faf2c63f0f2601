package domain

// Pagination defaults.
const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// PageRequest selects one page of a listing. Pages are 1-based.
type PageRequest struct {
	Page    int
	PerPage int
}

// Normalize applies defaults and clamps values.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Offset is the number of rows to skip.
func (p PageRequest) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.PerPage
}

// Limit is the number of rows per page.
func (p PageRequest) Limit() int {
	return p.Normalize().PerPage
}

// Page is one page of a listing.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	Total       int
}

// NewPage builds a page from its items and the total row count.
func NewPage[T any](items []T, req PageRequest, total int) Page[T] {
	n := req.Normalize()
	pages := 0
	if total > 0 {
		pages = (total + n.PerPage - 1) / n.PerPage
	}
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:       items,
		CurrentPage: n.Page,
		TotalPages:  pages,
		Total:       total,
	}
}

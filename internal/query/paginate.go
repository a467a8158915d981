package query

// Page is the pagination envelope returned by list endpoints.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PageSize    int  `json:"page_size"`
	TotalPages  int  `json:"total_pages"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate slices an ordered collection into a 1-based page. A page beyond
// the last one is not an error: it yields empty items with the totals still
// reported correctly. Callers are expected to reject pageSize < 1 before
// getting here; a non-positive pageSize is answered with a single empty page
// rather than a panic.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)
	totalPages := 1
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	pageItems := []T{}
	if pageSize > 0 && start >= 0 && start < total {
		if end > total {
			end = total
		}
		pageItems = append(pageItems, items[start:end]...)
	}

	return Page[T]{
		Items:       pageItems,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

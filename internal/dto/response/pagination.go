package response

// PaginatedResponse carries a page of results plus the total count.
type PaginatedResponse[T any] struct {
	Count   int64 `json:"count"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Results []T   `json:"results"`
}

func NewPaginatedResponse[T any](results []T, page, perPage int, count int64) *PaginatedResponse[T] {
	if results == nil {
		results = []T{}
	}

	return &PaginatedResponse[T]{
		Count:   count,
		Page:    page,
		PerPage: perPage,
		Results: results,
	}
}

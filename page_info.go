package listctrl

// PageInfo contains metadata about a paginated result set in a page-number
// model. It uses function fields to enable lazy evaluation, which is useful
// when some information (like total count) may be expensive to compute.
//
// All functions return both a value and an error to support async
// computation or database queries that may fail.
type PageInfo struct {
	TotalCount      func() (*int, error)
	TotalPages      func() (int, error)
	CurrentPage     func() (int, error)
	HasPreviousPage func() (bool, error)
	HasNextPage     func() (bool, error)
}

// NewPageBasedPageInfo returns a PageInfo with data filled in for a
// page-number listing. perPage is clamped to at least 1 and currentPage
// to at least page 1.
func NewPageBasedPageInfo(perPage int, totalCount int64, currentPage int) PageInfo {
	if perPage < 1 {
		perPage = 1
	}
	if currentPage < 1 {
		currentPage = 1
	}

	count := int(totalCount)
	totalPages := count / perPage
	if count%perPage != 0 {
		totalPages++
	}

	return PageInfo{
		TotalCount:      func() (*int, error) { return &count, nil },
		TotalPages:      func() (int, error) { return totalPages, nil },
		CurrentPage:     func() (int, error) { return currentPage, nil },
		HasPreviousPage: func() (bool, error) { return currentPage > 1, nil },
		HasNextPage:     func() (bool, error) { return currentPage < totalPages, nil },
	}
}

// NewEmptyPageInfo returns an empty instance of PageInfo. Useful when
// working on a new page to be able to fulfill PageInfo requirements.
func NewEmptyPageInfo() *PageInfo {
	return &PageInfo{
		TotalCount:      func() (*int, error) { return nil, nil },
		TotalPages:      func() (int, error) { return 0, nil },
		CurrentPage:     func() (int, error) { return 1, nil },
		HasPreviousPage: func() (bool, error) { return false, nil },
		HasNextPage:     func() (bool, error) { return false, nil },
	}
}

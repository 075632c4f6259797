package listctrl

// CanonicalPageSizes builds the canonical page-size option set from an
// allow-list and a default: positive values only, deduplicated, sorted
// ascending, with the default inserted when absent. The allow-list is not
// required to contain the default; the canonical set always does.
func CanonicalPageSizes(allowed []int, defaultSize int) []int {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	return dedupSortedPositive(append(append([]int(nil), allowed...), defaultSize))
}

// ResolvePageSize normalizes a requested page size against the canonical
// option set built from allowed and defaultSize. A nil request, or any
// request outside the canonical set, resolves to the default. Normalization
// is silent and total: the result is always a member of the canonical set.
func ResolvePageSize(requested *int, allowed []int, defaultSize int) int {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if requested == nil {
		return defaultSize
	}
	for _, size := range CanonicalPageSizes(allowed, defaultSize) {
		if *requested == size {
			return *requested
		}
	}
	return defaultSize
}

// CanonicalPageSizes returns the context's canonical page-size option set.
func (c *ListConfig) CanonicalPageSizes() []int {
	return CanonicalPageSizes(c.PageSizes, c.defaultSize())
}

// ResolvePageSize normalizes a requested page size against the context's
// canonical option set.
func (c *ListConfig) ResolvePageSize(requested *int) int {
	return ResolvePageSize(requested, c.PageSizes, c.defaultSize())
}

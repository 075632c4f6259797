package listctrl

// StateVersion is the current ListState schema version. Snapshots carry it
// so consumers persisting state outside the URL (session blobs, test
// fixtures) can detect stale shapes.
const StateVersion = 1

// ListState is an explicit snapshot of one list-view session's control
// state. It is the unit the query-string codec serializes; the UI boundary
// reads and writes the serialized form, the deterministic logic only ever
// sees the struct.
type ListState struct {
	Version       int       `json:"version"`
	Search        string    `json:"search,omitempty"`
	SortColumn    string    `json:"sort_field"`
	SortDirection Direction `json:"sort_direction"`
	PerPage       int       `json:"per_page"`
	Page          int       `json:"page"`
	Selected      []int     `json:"selected,omitempty"`
}

// QuerySpec is the query shape a controller derives from its state:
// what to skip, how much to fetch, and in what order. Adapters (see the
// sqlboiler subpackage) translate it into ORM-specific terms.
type QuerySpec struct {
	Offset  int
	Limit   int
	OrderBy []OrderBy
}

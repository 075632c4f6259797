// Package listctrl provides deterministic list-control state for paginated,
// filtered, sorted list views: page-size normalization against per-context
// allow-lists, sort and search coordination with pagination resets,
// page-scoped multi-row selection tracking, and write-time page location
// for deep-linking a record to the page it appears on.
//
// Every component normalizes invalid input silently instead of returning
// errors. A stale bookmark or a hostile query string is a normal input for
// a list view; list-control state must always resolve to something
// renderable.
package listctrl

import "sort"

const (
	// DefaultPageSize is the page size used when a context does not
	// configure one.
	DefaultPageSize = 10

	// DefaultSortColumn is the sort column used when a context does not
	// configure one.
	DefaultSortColumn = "created_at"

	// DefaultIDColumn is the tie-break column appended to every ordering.
	DefaultIDColumn = "id"
)

// DefaultPageSizes is the page-size allow-list used when a context does not
// configure one.
var DefaultPageSizes = []int{10, 25, 50, 100}

// Params names the query-string parameters a context recognizes.
// Zero-value fields fall back to the defaults from DefaultParams.
type Params struct {
	PerPage       string
	SortField     string
	SortDirection string
	Search        string
	Selected      string
	Page          string
}

// DefaultParams returns the conventional parameter names.
func DefaultParams() Params {
	return Params{
		PerPage:       "per_page",
		SortField:     "sort_field",
		SortDirection: "sort_direction",
		Search:        "search",
		Selected:      "selected",
		Page:          "page",
	}
}

// ListConfig is the static configuration for one named list context
// (e.g. "posts", "comments", "admin"). It is resolved once when a list
// view mounts and never mutated afterwards; a single value may be shared
// across sessions.
//
// Use NewListConfig to create a config with sensible defaults, then
// customize using the With* methods:
//
//	cfg := listctrl.NewListConfig("comments").
//	    WithPageSizes(10, 25, 50).
//	    WithSortColumns("created_at", "author").
//	    WithDefaultSort("created_at", listctrl.DirectionDesc)
type ListConfig struct {
	// Name identifies the context. Informational only.
	Name string

	// PageSizes is the allowed page-size set. It is canonicalized
	// (positive, deduplicated, sorted, default inserted) before any
	// membership check; see CanonicalPageSizes.
	PageSizes []int

	// DefaultSize is the page size used when the request omits one or
	// requests a size outside the allow-list.
	DefaultSize int

	// SortColumns is the sortable-column allow-list. A requested column
	// outside this list collapses to DefaultSortBy (or the first allowed
	// column when DefaultSortBy is empty).
	SortColumns []string

	// DefaultSortBy is the sort column used when the request omits one or
	// requests a column outside the allow-list.
	DefaultSortBy string

	// DefaultDirection is the direction used when the request omits one or
	// requests something other than asc/desc, and no per-column override
	// applies.
	DefaultDirection Direction

	// ColumnDirections overrides the starting direction per column.
	// A "most recent" column reasonably starts descending while a name
	// column starts ascending.
	ColumnDirections map[string]Direction

	// IDColumn is the tie-break column for ordering rules derived from
	// this context.
	IDColumn string

	// Params names the recognized query-string parameters.
	Params Params
}

// NewListConfig creates a ListConfig for the named context with defaults:
// page sizes 10/25/50/100 (default 10), sorting by created_at descending,
// id tie-break, conventional parameter names.
func NewListConfig(name string) *ListConfig {
	return &ListConfig{
		Name:             name,
		PageSizes:        append([]int(nil), DefaultPageSizes...),
		DefaultSize:      DefaultPageSize,
		SortColumns:      []string{DefaultSortColumn},
		DefaultSortBy:    DefaultSortColumn,
		DefaultDirection: DirectionDesc,
		IDColumn:         DefaultIDColumn,
		Params:           DefaultParams(),
	}
}

// WithPageSizes sets the page-size allow-list and returns the config for chaining.
func (c *ListConfig) WithPageSizes(sizes ...int) *ListConfig {
	if len(sizes) > 0 {
		c.PageSizes = sizes
	}
	return c
}

// WithDefaultSize sets the default page size and returns the config for chaining.
func (c *ListConfig) WithDefaultSize(size int) *ListConfig {
	if size > 0 {
		c.DefaultSize = size
	}
	return c
}

// WithSortColumns sets the sortable-column allow-list and returns the config
// for chaining. The default sort column is moved to the first allowed column
// if it is no longer a member.
func (c *ListConfig) WithSortColumns(columns ...string) *ListConfig {
	if len(columns) == 0 {
		return c
	}
	c.SortColumns = columns
	if !c.sortable(c.DefaultSortBy) {
		c.DefaultSortBy = columns[0]
	}
	return c
}

// WithDefaultSort sets the default sort column and direction and returns the
// config for chaining.
func (c *ListConfig) WithDefaultSort(column string, direction Direction) *ListConfig {
	if column != "" {
		c.DefaultSortBy = column
		if !c.sortable(column) {
			c.SortColumns = append(c.SortColumns, column)
		}
	}
	if direction.valid() {
		c.DefaultDirection = direction
	}
	return c
}

// WithColumnDirection sets the starting direction for one column and returns
// the config for chaining.
func (c *ListConfig) WithColumnDirection(column string, direction Direction) *ListConfig {
	if column == "" || !direction.valid() {
		return c
	}
	if c.ColumnDirections == nil {
		c.ColumnDirections = map[string]Direction{}
	}
	c.ColumnDirections[column] = direction
	return c
}

// WithIDColumn sets the tie-break column and returns the config for chaining.
func (c *ListConfig) WithIDColumn(column string) *ListConfig {
	if column != "" {
		c.IDColumn = column
	}
	return c
}

// WithParams sets the query-string parameter names and returns the config
// for chaining. Empty fields keep their defaults.
func (c *ListConfig) WithParams(p Params) *ListConfig {
	d := DefaultParams()
	if p.PerPage == "" {
		p.PerPage = d.PerPage
	}
	if p.SortField == "" {
		p.SortField = d.SortField
	}
	if p.SortDirection == "" {
		p.SortDirection = d.SortDirection
	}
	if p.Search == "" {
		p.Search = d.Search
	}
	if p.Selected == "" {
		p.Selected = d.Selected
	}
	if p.Page == "" {
		p.Page = d.Page
	}
	c.Params = p
	return c
}

func (c *ListConfig) sortable(column string) bool {
	for _, col := range c.SortColumns {
		if col == column {
			return true
		}
	}
	return false
}

func (c *ListConfig) defaultSize() int {
	if c.DefaultSize > 0 {
		return c.DefaultSize
	}
	return DefaultPageSize
}

func (c *ListConfig) defaultSortColumn() string {
	if c.DefaultSortBy != "" {
		return c.DefaultSortBy
	}
	if len(c.SortColumns) > 0 {
		return c.SortColumns[0]
	}
	return DefaultSortColumn
}

func (c *ListConfig) idColumn() string {
	if c.IDColumn != "" {
		return c.IDColumn
	}
	return DefaultIDColumn
}

// directionFor returns the starting direction for a column: the per-column
// override when present, the context default otherwise.
func (c *ListConfig) directionFor(column string) Direction {
	if d, ok := c.ColumnDirections[column]; ok && d.valid() {
		return d
	}
	if c.DefaultDirection.valid() {
		return c.DefaultDirection
	}
	return DirectionAsc
}

// OrderingRule derives the ordering rule for this context's current sort
// column and direction. Both the live listing's ORDER BY and the page
// locator's preceding-count predicate must be derived from the same rule
// value; this function is the single place the rule is constructed.
func (c *ListConfig) OrderingRule(s SortState) OrderingRule {
	return OrderingRule{
		Column:   s.Column,
		IDColumn: c.idColumn(),
		Desc:     s.Direction.IsDesc(),
	}
}

func dedupSortedPositive(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if v <= 0 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

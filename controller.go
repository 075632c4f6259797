package listctrl

// Controller composes the list-control state of one view session: page
// size, sort, search, selection, and the current page number. It owns the
// dependent-reset wiring (a sort, search, or page-size change snaps the
// view back to page 1) and derives the query shape each interaction.
//
// A Controller is owned by exactly one session and is not safe for
// concurrent use; interactions arrive as discrete request-response cycles.
type Controller struct {
	config    *ListConfig
	sort      *SortCoordinator
	search    *SearchCoordinator
	selection *SelectionTracker
	perPage   int
	page      int
}

// NewController creates a controller at the context's defaults: default
// page size, default sort, empty search, empty selection, page 1.
func NewController(cfg *ListConfig) *Controller {
	c := &Controller{
		config:    cfg,
		selection: NewSelectionTracker(),
		perPage:   cfg.ResolvePageSize(nil),
		page:      1,
	}
	c.sort = NewSortCoordinator(cfg, c.resetPage)
	c.search = NewSearchCoordinator(c.resetPage)
	return c
}

// Config returns the context configuration the controller was built with.
func (c *Controller) Config() *ListConfig {
	return c.config
}

// Selection returns the session's selection tracker.
func (c *Controller) Selection() *SelectionTracker {
	return c.selection
}

// SetSearch normalizes and applies a search term. A changed term resets
// the view to page 1.
func (c *Controller) SetSearch(raw string) string {
	return c.search.Set(raw)
}

// ClearSearch empties the search term, resetting to page 1 if one was set.
func (c *Controller) ClearSearch() {
	c.search.Clear()
}

// Search returns the current normalized search term.
func (c *Controller) Search() string {
	return c.search.Term()
}

// SortBy applies a sort request, toggling direction on the active column.
// Resets the view to page 1.
func (c *Controller) SortBy(column string) SortState {
	return c.sort.SortBy(column)
}

// Sort returns the current sort state.
func (c *Controller) Sort() SortState {
	return c.sort.State()
}

// SetPerPage applies a requested page size, normalized against the
// context's canonical option set. A changed size resets the view to
// page 1; a request that normalizes to the current size does not.
func (c *Controller) SetPerPage(requested int) int {
	size := c.config.ResolvePageSize(&requested)
	if size != c.perPage {
		c.perPage = size
		c.resetPage()
	}
	return c.perPage
}

// PerPage returns the current page size.
func (c *Controller) PerPage() int {
	return c.perPage
}

// SetPage moves to a page number, clamped to at least 1. Page existence is
// the pagination component's concern, not the controller's.
func (c *Controller) SetPage(page int) int {
	if page < 1 {
		page = 1
	}
	c.page = page
	return c.page
}

// Page returns the current 1-based page number.
func (c *Controller) Page() int {
	return c.page
}

// Offset returns the number of records the current page skips.
func (c *Controller) Offset() int {
	return (c.page - 1) * c.perPage
}

// OrderingRule returns the ordering rule for the current sort state. Pass
// this same value to LocatePage; deriving both the listing order and the
// locate predicate from one rule is what keeps them in lockstep.
func (c *Controller) OrderingRule() OrderingRule {
	return c.config.OrderingRule(c.sort.State())
}

// Query derives the current query shape: offset, limit, and the ordering
// rule expanded to sort directives (primary column plus id tie-break).
func (c *Controller) Query() QuerySpec {
	return QuerySpec{
		Offset:  c.Offset(),
		Limit:   c.perPage,
		OrderBy: c.OrderingRule().OrderBy(),
	}
}

// PageInfo builds pagination metadata for the current page against a
// total count.
func (c *Controller) PageInfo(totalCount int64) PageInfo {
	return NewPageBasedPageInfo(c.perPage, totalCount, c.page)
}

// State snapshots the current control state.
func (c *Controller) State() ListState {
	return ListState{
		Version:       StateVersion,
		Search:        c.search.Term(),
		SortColumn:    c.sort.State().Column,
		SortDirection: c.sort.State().Direction,
		PerPage:       c.perPage,
		Page:          c.page,
		Selected:      c.selection.SelectedIDs(),
	}
}

// Apply restores a snapshot, normalizing every field on the way in. The
// snapshot's page number is kept (clamped), not reset: restoring a
// bookmarked page 5 must land on page 5, so the dependent-reset wiring is
// bypassed and the whole snapshot is applied as one unit.
func (c *Controller) Apply(s ListState) {
	sorted := c.config.SanitizeSort(s.SortColumn, string(s.SortDirection))
	c.sort.state = sorted

	var requested *int
	if s.PerPage > 0 {
		requested = &s.PerPage
	}
	c.perPage = c.config.ResolvePageSize(requested)

	c.search.term = trimTerm(s.Search)

	raws := make([]any, len(s.Selected))
	for i, id := range s.Selected {
		raws[i] = id
	}
	c.selection.Replace(raws...)

	c.SetPage(s.Page)
}

func (c *Controller) resetPage() {
	c.page = 1
}

package listctrl

import "strings"

// Direction is a sort direction.
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// ParseDirection normalizes a raw direction string. Matching is
// case-insensitive; anything other than asc/desc collapses to fallback.
func ParseDirection(raw string, fallback Direction) Direction {
	switch Direction(strings.ToLower(strings.TrimSpace(raw))) {
	case DirectionAsc:
		return DirectionAsc
	case DirectionDesc:
		return DirectionDesc
	default:
		if fallback.valid() {
			return fallback
		}
		return DirectionAsc
	}
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == DirectionDesc {
		return DirectionAsc
	}
	return DirectionDesc
}

// IsDesc reports whether the direction is descending.
func (d Direction) IsDesc() bool {
	return d == DirectionDesc
}

func (d Direction) valid() bool {
	return d == DirectionAsc || d == DirectionDesc
}

// SortState is an active (column, direction) pair. An invalid column or
// direction is never retained in a SortState produced by this package.
type SortState struct {
	Column    string
	Direction Direction
}

// SanitizeSort validates a requested column and direction against the
// context's allow-list. An unknown column collapses to the context's
// default sort column; an unknown direction collapses to the column's
// starting direction.
func (c *ListConfig) SanitizeSort(column, direction string) SortState {
	col := strings.TrimSpace(column)
	if !c.sortable(col) {
		col = c.defaultSortColumn()
	}
	return SortState{
		Column:    col,
		Direction: ParseDirection(direction, c.directionFor(col)),
	}
}

// SortCoordinator owns the sort state of one list-view session. Any change
// to column or direction fires the reset callback so the owning view never
// shows a stale page number against a re-sorted result set.
type SortCoordinator struct {
	config  *ListConfig
	state   SortState
	onReset func()
}

// NewSortCoordinator creates a coordinator starting at the context's
// default sort. onReset may be nil.
func NewSortCoordinator(cfg *ListConfig, onReset func()) *SortCoordinator {
	return &SortCoordinator{
		config:  cfg,
		state:   cfg.SanitizeSort("", ""),
		onReset: onReset,
	}
}

// State returns the current sort state.
func (s *SortCoordinator) State() SortState {
	return s.state
}

// SortBy applies a sort request for column. Requesting the active column
// toggles the direction; requesting a different column activates it at its
// starting direction. The request is sanitized first, so an unknown column
// behaves as a request for the default column. The page-reset callback
// fires on every call: a toggle always changes direction.
func (s *SortCoordinator) SortBy(column string) SortState {
	next := s.config.SanitizeSort(column, "")
	if next.Column == s.state.Column {
		next.Direction = s.state.Direction.Toggle()
	}
	s.state = next
	s.reset()
	return s.state
}

// Set applies a raw (column, direction) pair, sanitized. Used when state
// arrives from outside the session (query string, snapshot). The reset
// callback fires only when the sanitized state differs from the current one.
func (s *SortCoordinator) Set(column, direction string) SortState {
	next := s.config.SanitizeSort(column, direction)
	if next != s.state {
		s.state = next
		s.reset()
	}
	return s.state
}

func (s *SortCoordinator) reset() {
	if s.onReset != nil {
		s.onReset()
	}
}

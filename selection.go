package listctrl

import (
	"sort"
	"strconv"
	"strings"
)

// CoerceID normalizes a raw identifier to a positive integer. Accepted
// inputs are the integer kinds, integral floats (JSON numbers decode as
// float64), and numeric strings. Anything else, and any non-positive
// value, is rejected.
func CoerceID(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return positive(v)
	case int8:
		return positive(int(v))
	case int16:
		return positive(int(v))
	case int32:
		return positive(int(v))
	case int64:
		return positive(int(v))
	case uint:
		return positive(int(v))
	case uint8:
		return positive(int(v))
	case uint16:
		return positive(int(v))
	case uint32:
		return positive(int(v))
	case uint64:
		return positive(int(v))
	case float64:
		if v != float64(int(v)) {
			return 0, false
		}
		return positive(int(v))
	case float32:
		if v != float32(int(v)) {
			return 0, false
		}
		return positive(int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return positive(n)
	default:
		return 0, false
	}
}

func positive(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return n, true
}

// SelectionTracker maintains multi-row selection for one list-view session.
// Selection survives page navigation: ids selected on page 1 stay selected
// while the view shows page 2. Select-all is page-scoped and only ever
// applies to the identifiers currently visible.
//
// Every mutation coerces ids through CoerceID, so duplicates, string ids
// and non-numeric values never accumulate in the set.
type SelectionTracker struct {
	selected    map[int]struct{}
	currentPage []int
	selectPage  bool
}

// NewSelectionTracker creates an empty tracker.
func NewSelectionTracker() *SelectionTracker {
	return &SelectionTracker{selected: map[int]struct{}{}}
}

// Toggle flips the selection of one id. Invalid ids are dropped silently.
func (t *SelectionTracker) Toggle(raw any) {
	id, ok := CoerceID(raw)
	if !ok {
		return
	}
	if _, on := t.selected[id]; on {
		delete(t.selected, id)
	} else {
		t.selected[id] = struct{}{}
	}
	t.recompute()
}

// SetCurrentPageItems replaces the set of identifiers currently visible.
// Called once per page render. The page-selected flag is recomputed as
// "is the visible page a subset of the selection", vacuously false when
// the page is empty.
func (t *SelectionTracker) SetCurrentPageItems(raws ...any) {
	t.currentPage = t.currentPage[:0]
	for _, raw := range raws {
		if id, ok := CoerceID(raw); ok {
			t.currentPage = append(t.currentPage, id)
		}
	}
	t.recompute()
}

// SelectCurrentPage adds every visible id to the selection. Idempotent.
func (t *SelectionTracker) SelectCurrentPage() {
	for _, id := range t.currentPage {
		t.selected[id] = struct{}{}
	}
	t.recompute()
}

// DeselectCurrentPage removes every visible id from the selection,
// leaving selections made on other pages intact. Idempotent.
func (t *SelectionTracker) DeselectCurrentPage() {
	for _, id := range t.currentPage {
		delete(t.selected, id)
	}
	t.recompute()
}

// Replace swaps the whole selection for the given ids, coerced and
// deduplicated. Used when selection state arrives from outside the session.
func (t *SelectionTracker) Replace(raws ...any) {
	t.selected = make(map[int]struct{}, len(raws))
	for _, raw := range raws {
		if id, ok := CoerceID(raw); ok {
			t.selected[id] = struct{}{}
		}
	}
	t.recompute()
}

// Clear empties the selection. The visible page is unaffected.
func (t *SelectionTracker) Clear() {
	t.selected = map[int]struct{}{}
	t.recompute()
}

// SelectedIDs returns the selected ids, ascending.
func (t *SelectionTracker) SelectedIDs() []int {
	ids := make([]int, 0, len(t.selected))
	for id := range t.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Selected reports whether id is selected.
func (t *SelectionTracker) Selected(id int) bool {
	_, on := t.selected[id]
	return on
}

// PageSelected reports whether every visible id is selected. False when
// nothing is visible.
func (t *SelectionTracker) PageSelected() bool {
	return t.selectPage
}

// Count returns the number of selected ids.
func (t *SelectionTracker) Count() int {
	return len(t.selected)
}

func (t *SelectionTracker) recompute() {
	if len(t.currentPage) == 0 {
		t.selectPage = false
		return
	}
	for _, id := range t.currentPage {
		if _, on := t.selected[id]; !on {
			t.selectPage = false
			return
		}
	}
	t.selectPage = true
}

package listctrl

import (
	"net/url"
	"strconv"
)

// EncodeQuery serializes a state snapshot to query-string values using the
// context's parameter names. Defaults are omitted so shared URLs stay
// short: no search parameter for an empty term, no page parameter for
// page 1, no selection parameter for an empty selection.
func EncodeQuery(s ListState, cfg *ListConfig) url.Values {
	p := cfg.Params
	values := url.Values{}

	if s.Search != "" {
		values.Set(p.Search, s.Search)
	}
	values.Set(p.SortField, s.SortColumn)
	values.Set(p.SortDirection, string(s.SortDirection))
	values.Set(p.PerPage, strconv.Itoa(s.PerPage))
	if s.Page > 1 {
		values.Set(p.Page, strconv.Itoa(s.Page))
	}
	for _, id := range s.Selected {
		values.Add(p.Selected, strconv.Itoa(id))
	}

	return values
}

// DecodeQuery parses query-string values into a normalized state snapshot.
// Decoding never fails: every raw value passes through the same
// normalization its coordinator applies, so a hostile or stale URL decodes
// to a valid state. sort_field=dropTable renders the default-sorted list,
// nothing more.
func DecodeQuery(values url.Values, cfg *ListConfig) ListState {
	p := cfg.Params

	sorted := cfg.SanitizeSort(values.Get(p.SortField), values.Get(p.SortDirection))

	var requested *int
	if raw := values.Get(p.PerPage); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			requested = &n
		}
	}

	page := 1
	if n, err := strconv.Atoi(values.Get(p.Page)); err == nil && n > 1 {
		page = n
	}

	var selected []int
	seen := map[int]struct{}{}
	for _, raw := range values[p.Selected] {
		id, ok := CoerceID(raw)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		selected = append(selected, id)
	}

	return ListState{
		Version:       StateVersion,
		Search:        trimTerm(values.Get(p.Search)),
		SortColumn:    sorted.Column,
		SortDirection: sorted.Direction,
		PerPage:       cfg.ResolvePageSize(requested),
		Page:          page,
		Selected:      selected,
	}
}

package listctrl

import "github.com/aarondl/null/v8"

// OrderBy represents a sort directive for query results.
type OrderBy struct {
	// Column is the name of the column to sort by.
	Column string

	// Desc indicates descending order. False means ascending.
	Desc bool
}

// OrderingRule is the total order over records used identically at query
// time and at page-locate time: a primary column (typically a timestamp)
// and an id tie-break, both in the same direction.
//
// The live listing's ORDER BY and the locator's preceding-count predicate
// must be derived from the same OrderingRule value. Constructing the rule
// in one place (see ListConfig.OrderingRule) is what keeps a deep link
// pointing at the page the user actually sees.
type OrderingRule struct {
	// Column is the primary sort column.
	Column string

	// IDColumn is the tie-break column. Defaults to "id" when empty.
	IDColumn string

	// Desc applies to both columns.
	Desc bool
}

// NewOrderingRule creates a rule over column with an "id" tie-break.
func NewOrderingRule(column string, desc bool) OrderingRule {
	return OrderingRule{Column: column, IDColumn: DefaultIDColumn, Desc: desc}
}

// OrderBy expands the rule into sort directives for query building.
func (r OrderingRule) OrderBy() []OrderBy {
	id := r.IDColumn
	if id == "" {
		id = DefaultIDColumn
	}
	return []OrderBy{
		{Column: r.Column, Desc: r.Desc},
		{Column: id, Desc: r.Desc},
	}
}

// RecordKey identifies a record's position under an OrderingRule: its id
// and its value for the rule's primary column. Timestamp is null for a
// record that has not been stamped yet.
type RecordKey struct {
	ID        int
	Timestamp null.Time
}

// Key builds a RecordKey for a stamped record.
func Key(id int, ts null.Time) RecordKey {
	return RecordKey{ID: id, Timestamp: ts}
}

// Precedes reports whether a appears strictly before target under the
// rule. A null target timestamp falls back to id-only comparison: only
// records with a greater id count as preceding, regardless of direction.
// An unstamped a never precedes a stamped target: unstamped rows sort
// after every stamped row in either direction, matching the NULLS LAST
// ordering the sqlboiler adapter emits and the NULL-excluding comparisons
// its preceding-count predicate relies on.
func (r OrderingRule) Precedes(a, target RecordKey) bool {
	if !target.Timestamp.Valid {
		return a.ID > target.ID
	}
	if !a.Timestamp.Valid {
		return false
	}
	at, tt := a.Timestamp.Time, target.Timestamp.Time
	if r.Desc {
		if at.After(tt) {
			return true
		}
		return at.Equal(tt) && a.ID > target.ID
	}
	if at.Before(tt) {
		return true
	}
	return at.Equal(tt) && a.ID < target.ID
}

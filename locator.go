package listctrl

import "context"

// Scope is a filtered collection of records a page locator counts against.
// Implementations must apply the exact filter the live listing applies
// (approved-only, same parent, search term); a scope that filters
// differently from the listing produces deep links to the wrong page.
//
// The sqlboiler subpackage provides a database-backed implementation;
// KeyScope is the in-memory one.
type Scope interface {
	// Contains reports whether the record identified by key is a member
	// of the scope.
	Contains(ctx context.Context, key RecordKey) (bool, error)

	// CountPreceding counts the members that strictly precede key under
	// rule, as defined by OrderingRule.Precedes.
	CountPreceding(ctx context.Context, key RecordKey, rule OrderingRule) (int64, error)
}

// LocatePage computes the 1-based page on which target appears within
// scope, ordered by rule and paginated at perPage. It is invoked after a
// write so the caller can redirect straight to the record's page.
//
// A target outside the scope (wrong parent, filtered out) locates to page
// 1 without counting; cross-scope placement is not attempted. An empty
// scope locates to page 1. perPage is clamped to at least 1.
//
// Only scope I/O can fail; on error the returned page is still 1 so a
// caller that chooses to ignore the error redirects somewhere valid.
func LocatePage(ctx context.Context, target RecordKey, scope Scope, rule OrderingRule, perPage int) (int, error) {
	if perPage < 1 {
		perPage = 1
	}

	member, err := scope.Contains(ctx, target)
	if err != nil {
		return 1, err
	}
	if !member {
		return 1, nil
	}

	preceding, err := scope.CountPreceding(ctx, target, rule)
	if err != nil {
		return 1, err
	}

	return int(preceding)/perPage + 1, nil
}

// KeyFilter restricts a KeyScope to the records the listing shows.
// A nil filter admits every key.
type KeyFilter func(RecordKey) bool

// KeyScope is an in-memory Scope over a slice of record keys. Order of the
// input slice is irrelevant; membership and preceding counts are computed
// from the keys themselves.
type KeyScope struct {
	keys   []RecordKey
	filter KeyFilter
}

// NewKeyScope creates a scope over keys, optionally restricted by filter.
func NewKeyScope(keys []RecordKey, filter KeyFilter) *KeyScope {
	return &KeyScope{keys: keys, filter: filter}
}

// Contains implements Scope.
func (s *KeyScope) Contains(_ context.Context, key RecordKey) (bool, error) {
	for _, k := range s.keys {
		if k.ID == key.ID && s.admits(k) {
			return true, nil
		}
	}
	return false, nil
}

// CountPreceding implements Scope.
func (s *KeyScope) CountPreceding(_ context.Context, key RecordKey, rule OrderingRule) (int64, error) {
	var n int64
	for _, k := range s.keys {
		if s.admits(k) && rule.Precedes(k, key) {
			n++
		}
	}
	return n, nil
}

func (s *KeyScope) admits(k RecordKey) bool {
	return s.filter == nil || s.filter(k)
}

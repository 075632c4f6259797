package listctrl

import "strings"

// SearchCoordinator owns the free-text search term of one list-view
// session. Normalization trims surrounding whitespace and nothing else;
// matching semantics belong to the query layer. Any change to the term
// fires the reset callback, identically to SortCoordinator.
type SearchCoordinator struct {
	term    string
	onReset func()
}

// NewSearchCoordinator creates a coordinator with an empty term.
// onReset may be nil.
func NewSearchCoordinator(onReset func()) *SearchCoordinator {
	return &SearchCoordinator{onReset: onReset}
}

// Set normalizes and applies a raw search term, returning the normalized
// value. The reset callback fires only when the term actually changes, so
// retyping the same query does not bounce the view back to page 1.
func (s *SearchCoordinator) Set(raw string) string {
	term := strings.TrimSpace(raw)
	if term != s.term {
		s.term = term
		if s.onReset != nil {
			s.onReset()
		}
	}
	return s.term
}

// Clear empties the term, resetting pagination if a term was set.
func (s *SearchCoordinator) Clear() {
	s.Set("")
}

// Term returns the current normalized term. Empty means "no filter".
func (s *SearchCoordinator) Term() string {
	return s.term
}

func trimTerm(raw string) string {
	return strings.TrimSpace(raw)
}

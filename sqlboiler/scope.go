// Package sqlboiler provides adapters for integrating SQLBoiler with
// go-listctrl.
//
// This package turns a controller's derived query shape into SQLBoiler
// query mods and provides a database-backed locator Scope built from a
// count function over a model's query API. The preceding-count WHERE
// clause is generated from the same OrderingRule the listing's ORDER BY
// is built from, so the page a record locates to is the page the live
// query shows it on.
//
// Example usage:
//
//	countApproved := func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
//	    return models.Comments(append(mods, models.CommentWhere.Approved.EQ(true))...).
//	        Count(ctx, db)
//	}
//
//	scope := sqlboiler.NewScope(countApproved)
//	page, err := listctrl.LocatePage(ctx, key, scope, ctrl.OrderingRule(), ctrl.PerPage())
package sqlboiler

import (
	"context"
	"fmt"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"

	listctrl "github.com/nrfta/go-listctrl"
)

// CountFunc executes a SQLBoiler count query. This is ORM-specific but
// context-agnostic: the caller closes over its generated model and
// connection, and bakes the listing's filter mods into the closure or
// passes them as base mods to NewScope.
type CountFunc func(ctx context.Context, mods ...qm.QueryMod) (int64, error)

// Scope implements listctrl.Scope against a database through a CountFunc.
// Base mods carry the listing's filter predicate (approved-only, parent
// scoping) and are applied to every count, which is what keeps locate
// results consistent with what the listing displays.
type Scope struct {
	count    CountFunc
	baseMods []qm.QueryMod
	idColumn string
}

// NewScope creates a database-backed scope. baseMods must reproduce the
// live listing's filter exactly.
func NewScope(count CountFunc, baseMods ...qm.QueryMod) *Scope {
	return &Scope{
		count:    count,
		baseMods: baseMods,
		idColumn: listctrl.DefaultIDColumn,
	}
}

// WithIDColumn overrides the identifier column used for membership checks
// and returns the scope for chaining.
func (s *Scope) WithIDColumn(column string) *Scope {
	if column != "" {
		s.idColumn = column
	}
	return s
}

// Contains implements listctrl.Scope. Membership is a filtered count on
// the record's id.
func (s *Scope) Contains(ctx context.Context, key listctrl.RecordKey) (bool, error) {
	mods := append(s.mods(), qm.Where(fmt.Sprintf("%s = ?", quoteIdent(s.idColumn)), key.ID))
	n, err := s.count(ctx, mods...)
	if err != nil {
		return false, errors.Wrap(err, "check scope membership")
	}
	return n > 0, nil
}

// CountPreceding implements listctrl.Scope.
func (s *Scope) CountPreceding(ctx context.Context, key listctrl.RecordKey, rule listctrl.OrderingRule) (int64, error) {
	clause, args := PrecedingWhereClause(rule, key)
	mods := append(s.mods(), rawWhereClause(clause, args))
	n, err := s.count(ctx, mods...)
	if err != nil {
		return 0, errors.Wrap(err, "count preceding records")
	}
	return n, nil
}

func (s *Scope) mods() []qm.QueryMod {
	return append([]qm.QueryMod(nil), s.baseMods...)
}

// PrecedingWhereClause builds the WHERE clause counting records that
// strictly precede key under rule. It is the SQL rendering of
// OrderingRule.Precedes and must stay behaviorally identical to it:
//
//	descending: (col > ? OR (col = ? AND id > ?))
//	ascending:  (col < ? OR (col = ? AND id < ?))
//
// A null key timestamp falls back to id-only counting (id > ?), matching
// the in-memory comparison.
//
// Scope rows with a NULL timestamp are excluded by both comparisons
// (NULL never satisfies > or <), which is correct under the NULLS LAST
// ordering BuildOrderByClause emits: an unstamped row never precedes a
// stamped target, in SQL, in memory, and in the rendered listing alike.
func PrecedingWhereClause(rule listctrl.OrderingRule, key listctrl.RecordKey) (string, []interface{}) {
	orderBy := rule.OrderBy()
	col := quoteIdent(orderBy[0].Column)
	id := quoteIdent(orderBy[1].Column)

	if !key.Timestamp.Valid {
		return fmt.Sprintf("%s > ?", id), []interface{}{key.ID}
	}

	op := "<"
	if rule.Desc {
		op = ">"
	}

	clause := fmt.Sprintf("(%s %s ? OR (%s = ? AND %s %s ?))", col, op, col, id, op)
	return clause, []interface{}{key.Timestamp.Time, key.Timestamp.Time, key.ID}
}

// rawWhereClause creates a query mod that injects a WHERE clause directly.
// Appending to the query's WHERE buffer keeps the grouped OR expression
// intact alongside any base-mod filters.
func rawWhereClause(clause string, args []interface{}) qm.QueryMod {
	return qm.QueryModFunc(func(q *queries.Query) {
		queries.AppendWhere(q, clause, args...)
	})
}

// quoteIdent quotes a column name. Column names reach this package from
// user-facing sort parameters; the listctrl allow-lists reject unknown
// columns, quoting covers reserved words and mixed case.
func quoteIdent(column string) string {
	return strmangle.IdentQuote('"', '"', column)
}

package sqlboiler

import (
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries/qm"

	listctrl "github.com/nrfta/go-listctrl"
)

// QueryMods converts a controller's derived query shape into SQLBoiler
// query mods.
//
// The conversion follows these rules:
//   - Offset → qm.Offset(n)
//   - Limit → qm.Limit(n)
//   - OrderBy → qm.OrderBy("col1" DESC, "col2" DESC)
//
// Example usage:
//
//	mods := sqlboiler.QueryMods(ctrl.Query())
//	comments, err := models.Comments(append(filterMods, mods...)...).All(ctx, db)
func QueryMods(spec listctrl.QuerySpec) []qm.QueryMod {
	mods := []qm.QueryMod{}

	if spec.Offset > 0 {
		mods = append(mods, qm.Offset(spec.Offset))
	}

	if spec.Limit > 0 {
		mods = append(mods, qm.Limit(spec.Limit))
	}

	if len(spec.OrderBy) > 0 {
		mods = append(mods, qm.OrderBy(BuildOrderByClause(spec.OrderBy)))
	}

	return mods
}

// BuildOrderByClause constructs an ORDER BY clause from sort directives.
// Assumes len(orderBy) > 0 (caller must verify).
//
// Descending columns carry an explicit NULLS LAST: Postgres defaults to
// NULLS FIRST under DESC, but the preceding-count predicate excludes NULL
// rows through its comparisons, so unstamped rows must sort last in both
// directions or the listing and the locate count drift apart.
//
// Example:
//
//	[]OrderBy{
//	    {Column: "created_at", Desc: true},
//	    {Column: "id", Desc: true},
//	}
//	→ `"created_at" DESC NULLS LAST, "id" DESC NULLS LAST`
func BuildOrderByClause(orderBy []listctrl.OrderBy) string {
	parts := make([]string, len(orderBy))
	for i, o := range orderBy {
		parts[i] = quoteIdent(o.Column)
		if o.Desc {
			parts[i] += " DESC NULLS LAST"
		}
	}
	return strings.Join(parts, ", ")
}

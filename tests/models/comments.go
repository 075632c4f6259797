// Package models provides a minimal hand-written model for the comments
// table used by the integration suite. It builds queries through SQLBoiler's
// query builder directly instead of generated code, which is all the suite
// needs: All and Count with arbitrary query mods.
package models

import (
	"context"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
)

// Comment is an object representing the database table.
type Comment struct {
	ID        int       `boil:"id" json:"id"`
	PostSlug  string    `boil:"post_slug" json:"post_slug"`
	Author    string    `boil:"author" json:"author"`
	Body      string    `boil:"body" json:"body"`
	Approved  bool      `boil:"approved" json:"approved"`
	CreatedAt null.Time `boil:"created_at" json:"created_at"`
}

// postgres dialect: double-quoted identifiers, $N placeholders
var dialect = drivers.Dialect{
	LQ:                   '"',
	RQ:                   '"',
	UseIndexPlaceholders: true,
}

var commentColumns = []string{"id", "post_slug", "author", "body", "approved", "created_at"}

type commentQuery struct {
	query *queries.Query
}

// Comments returns a new query against the comments table.
func Comments(mods ...qm.QueryMod) commentQuery {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, append([]qm.QueryMod{
		qm.Select(commentColumns...),
		qm.From("comments"),
	}, mods...)...)
	return commentQuery{query: q}
}

// All returns all Comment records from the query.
func (q commentQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Comment, error) {
	rows, err := q.query.QueryContext(ctx, exec)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*Comment
	for rows.Next() {
		c := &Comment{}
		if err := rows.Scan(&c.ID, &c.PostSlug, &c.Author, &c.Body, &c.Approved, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Count returns the count of all Comment records in the query.
func (q commentQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	queries.SetSelect(q.query, nil)
	queries.SetCount(q.query)

	var count int64
	if err := q.query.QueryRowContext(ctx, exec).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// InsertComment inserts one comment and returns its generated id.
// createdAt may be null to exercise the unstamped-record path.
func InsertComment(ctx context.Context, exec boil.ContextExecutor, slug, author, body string, approved bool, createdAt null.Time) (int, error) {
	var ts interface{}
	if createdAt.Valid {
		ts = createdAt.Time
	}

	var id int
	err := exec.QueryRowContext(ctx,
		`INSERT INTO comments (post_slug, author, body, approved, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		slug, author, body, approved, ts,
	).Scan(&id)
	return id, err
}

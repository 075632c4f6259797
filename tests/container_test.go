package listctrl_test

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Container represents a running PostgreSQL testcontainer.
// It provides a fully configured PostgreSQL instance with the comments
// table the suite lists against.
type Container struct {
	Container *postgres.PostgresContainer
	DB        *sql.DB
	ConnStr   string
}

// SetupPostgres starts a PostgreSQL container with an initialized schema.
func SetupPostgres(ctx context.Context) (*Container, error) {
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createSchema(ctx, db); err != nil {
		db.Close()
		pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Container{
		Container: pgContainer,
		DB:        db,
		ConnStr:   connStr,
	}, nil
}

// Terminate stops the container and closes the connection.
func (c *Container) Terminate(ctx context.Context) error {
	if c.DB != nil {
		c.DB.Close()
	}
	if c.Container != nil {
		return c.Container.Terminate(ctx)
	}
	return nil
}

// Truncate empties the comments table between specs.
func (c *Container) Truncate(ctx context.Context) error {
	_, err := c.DB.ExecContext(ctx, "TRUNCATE comments RESTART IDENTITY")
	return err
}

func createSchema(ctx context.Context, db *sql.DB) error {
	// created_at is nullable: a comment may be inserted before it is
	// stamped, which is the id-only locate fallback.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE comments (
			id SERIAL PRIMARY KEY,
			post_slug TEXT NOT NULL,
			author TEXT NOT NULL,
			body TEXT NOT NULL,
			approved BOOLEAN NOT NULL DEFAULT false,
			created_at TIMESTAMPTZ
		);
		CREATE INDEX idx_comments_created_at_id ON comments (created_at DESC, id DESC);
	`)
	return err
}

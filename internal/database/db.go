package database

import (
	"context"
	"fmt"
	"strings"

	"tickets-api/internal/repository"
	"tickets-api/internal/repository/postgres"
	"tickets-api/internal/repository/sqlite"
)

// Open connects the ticket store named by dsn:
//
//	postgres://... or postgresql://...   PostgreSQL via pgx
//	sqlite:///relative/or/./path.db      SQLite file
//	sqlite:////absolute/path.db
//	sqlite:// or sqlite:///:memory:      SQLite in memory
//
// A "+driver" suffix on the scheme (postgresql+psycopg://) is ignored.
func Open(ctx context.Context, dsn string) (repository.TicketStore, error) {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok {
		return nil, fmt.Errorf("database url %q has no scheme", dsn)
	}
	scheme, _, _ = strings.Cut(strings.ToLower(scheme), "+")

	switch scheme {
	case "postgres", "postgresql":
		return postgres.Open(ctx, scheme+"://"+rest)
	case "sqlite", "sqlite3":
		return sqlite.Open(SQLitePath(rest))
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", scheme)
	}
}

// SQLitePath turns the part after "sqlite://" into a file path.
func SQLitePath(rest string) string {
	path := strings.TrimPrefix(rest, "/")
	if path == "" {
		return sqlite.MemoryPath
	}
	return path
}

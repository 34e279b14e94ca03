package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickets-api/internal/repository/postgres"
	"tickets-api/internal/repository/sqlite"
)

func TestSQLitePath(t *testing.T) {
	cases := map[string]string{
		"/./tickets.db":    "./tickets.db",
		"//var/lib/t.db":   "/var/lib/t.db",
		"":                 ":memory:",
		"/:memory:":        ":memory:",
		"/data/tickets.db": "data/tickets.db",
	}
	for in, want := range cases {
		assert.Equal(t, want, SQLitePath(in), in)
	}
}

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "t.db")

	store, err := Open(ctx, "sqlite:///"+path)
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &sqlite.Store{}, store)
	require.NoError(t, store.Migrate(ctx))

	mem, err := Open(ctx, "sqlite://")
	require.NoError(t, err)
	defer mem.Close()
	require.NoError(t, mem.Migrate(ctx))
}

func TestOpenPostgresDoesNotDial(t *testing.T) {
	store, err := Open(context.Background(), "postgresql+psycopg://u:p@127.0.0.1:1/tickets")
	require.NoError(t, err)
	defer store.Close()
	assert.IsType(t, &postgres.Store{}, store)
}

func TestOpenRejects(t *testing.T) {
	for _, dsn := range []string{"tickets.db", "mysql://u:p@h/db"} {
		_, err := Open(context.Background(), dsn)
		assert.Error(t, err, dsn)
	}
}

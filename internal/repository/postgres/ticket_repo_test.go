package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"tickets-api/internal/repository/postgres"
	"tickets-api/internal/repository/storetest"
)

// TEST_DATABASE_URL must point at a scratch database; its tickets table is dropped.
func TestStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `DROP TABLE IF EXISTS tickets`)
	require.NoError(t, err)

	store := postgres.NewStore(pool)
	t.Cleanup(store.Close)
	require.NoError(t, store.Migrate(ctx))

	storetest.Run(t, store)
}

func TestOpenRejectsBadDSN(t *testing.T) {
	_, err := postgres.Open(context.Background(), "postgres://%zz")
	require.Error(t, err)
}

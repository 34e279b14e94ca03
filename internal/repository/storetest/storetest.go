// Package storetest holds the behaviour every repository.TicketStore must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickets-api/internal/models"
	"tickets-api/internal/repository"
)

// Run exercises store against an empty, migrated tickets table.
func Run(t *testing.T, store repository.TicketStore) {
	t.Helper()
	ctx := context.Background()

	open := func(t *testing.T) repository.TicketSession {
		t.Helper()
		s, err := store.Session(ctx)
		require.NoError(t, err)
		t.Cleanup(s.Close)
		return s
	}

	t.Run("migrate is idempotent", func(t *testing.T) {
		require.NoError(t, store.Migrate(ctx))
	})

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, store.Ping(ctx))
	})

	t.Run("create assigns id", func(t *testing.T) {
		s := open(t)
		a := &models.Ticket{Title: "A", Description: "a", Status: models.StatusOpen}
		b := &models.Ticket{Title: "B", Description: "b", Status: models.StatusOpen}
		require.NoError(t, s.Create(ctx, a))
		require.NoError(t, s.Create(ctx, b))
		assert.NotZero(t, a.ID)
		assert.Greater(t, b.ID, a.ID)

		got, err := s.Get(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, *a, *got)
	})

	t.Run("get missing returns nil", func(t *testing.T) {
		got, err := open(t).Get(ctx, 9999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("save overwrites row", func(t *testing.T) {
		s := open(t)
		tk := &models.Ticket{Title: "S", Description: "s", Status: models.StatusOpen}
		require.NoError(t, s.Create(ctx, tk))

		tk.Title = ""
		tk.Status = "closed"
		require.NoError(t, s.Save(ctx, tk))

		got, err := s.Get(ctx, tk.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "", got.Title)
		assert.Equal(t, "s", got.Description)
		assert.Equal(t, "closed", got.Status)

		missing := &models.Ticket{ID: 9999999, Title: "x", Description: "x", Status: "x"}
		assert.ErrorIs(t, s.Save(ctx, missing), repository.ErrNoRows)
	})

	t.Run("list filters by exact status", func(t *testing.T) {
		s := open(t)
		before, err := s.List(ctx, "")
		require.NoError(t, err)

		o := &models.Ticket{Title: "O", Description: "o", Status: "open"}
		c := &models.Ticket{Title: "C", Description: "c", Status: "closed"}
		u := &models.Ticket{Title: "U", Description: "u", Status: "Open"}
		for _, tk := range []*models.Ticket{o, c, u} {
			require.NoError(t, s.Create(ctx, tk))
		}

		all, err := s.List(ctx, "")
		require.NoError(t, err)
		assert.Len(t, all, len(before)+3)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].ID, all[i].ID)
		}

		opened, err := s.List(ctx, "open")
		require.NoError(t, err)
		ids := map[int64]bool{}
		for _, tk := range opened {
			assert.Equal(t, "open", tk.Status)
			ids[tk.ID] = true
		}
		assert.True(t, ids[o.ID])
		assert.False(t, ids[c.ID])
		assert.False(t, ids[u.ID])

		none, err := s.List(ctx, "no-such-status")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("delete removes row and id is not reused", func(t *testing.T) {
		s := open(t)
		tk := &models.Ticket{Title: "D", Description: "d", Status: models.StatusOpen}
		require.NoError(t, s.Create(ctx, tk))
		require.NoError(t, s.Delete(ctx, tk.ID))

		got, err := s.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, s.Delete(ctx, tk.ID), repository.ErrNoRows)

		next := &models.Ticket{Title: "N", Description: "n", Status: models.StatusOpen}
		require.NoError(t, s.Create(ctx, next))
		assert.Greater(t, next.ID, tk.ID)
	})
}

// NewTicket returns an unsaved open ticket titled title.
func NewTicket(title string) *models.Ticket {
	return &models.Ticket{Title: title, Description: title + " description", Status: models.StatusOpen}
}

package repository

import (
	"context"

	"tickets-api/internal/models"
)

// TicketStore is the process-wide handle on the backing database.
type TicketStore interface {
	// Session acquires a connection scoped to one request. Callers must Close it.
	Session(ctx context.Context) (TicketSession, error)
	// Migrate creates the tickets table and its indexes if absent.
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close()
}

// TicketSession holds a single pooled connection.
// Get returns (nil, nil) when no ticket has the id.
type TicketSession interface {
	List(ctx context.Context, status string) ([]models.Ticket, error)
	Get(ctx context.Context, id int64) (*models.Ticket, error)
	Create(ctx context.Context, t *models.Ticket) error
	Save(ctx context.Context, t *models.Ticket) error
	Delete(ctx context.Context, id int64) error
	Close()
}

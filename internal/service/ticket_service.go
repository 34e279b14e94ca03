package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"tickets-api/internal/models"
	"tickets-api/internal/repository"
)

var ErrTicketNotFound = errors.New("ticket not found")

// TicketService applies ticket rules on top of a request-scoped store session.
type TicketService struct {
	log zerolog.Logger
}

func NewTicketService(log zerolog.Logger) *TicketService {
	return &TicketService{log: log.With().Str("component", "tickets").Logger()}
}

func (s *TicketService) Create(ctx context.Context, db repository.TicketSession, in models.TicketCreate) (*models.Ticket, error) {
	t := in.NewTicket()
	if err := db.Create(ctx, &t); err != nil {
		return nil, err
	}
	s.log.Debug().Int64("id", t.ID).Msg("ticket created")
	return &t, nil
}

// List returns all tickets, or only those whose status equals status exactly when it is non-empty.
func (s *TicketService) List(ctx context.Context, db repository.TicketSession, status string) ([]models.Ticket, error) {
	return db.List(ctx, status)
}

func (s *TicketService) Get(ctx context.Context, db repository.TicketSession, id int64) (*models.Ticket, error) {
	t, err := db.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTicketNotFound
	}
	return t, nil
}

// Update copies the fields set in in onto the ticket and saves it.
func (s *TicketService) Update(ctx context.Context, db repository.TicketSession, id int64, in models.TicketUpdate) (*models.Ticket, error) {
	cur, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if in.Empty() {
		return cur, nil
	}

	next := models.ApplyPatch(*cur, in)
	if err := db.Save(ctx, &next); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			// deleted between the read and the write
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	s.log.Debug().Int64("id", id).Str("status", next.Status).Msg("ticket updated")
	return &next, nil
}

// Delete removes the ticket and returns it as it was just before removal.
func (s *TicketService) Delete(ctx context.Context, db repository.TicketSession, id int64) (*models.Ticket, error) {
	cur, err := s.Get(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	s.log.Debug().Int64("id", id).Msg("ticket deleted")
	return cur, nil
}

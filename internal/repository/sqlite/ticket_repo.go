// Package sqlite contains the SQLite implementation of the ticket store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"tickets-api/internal/models"
	"tickets-api/internal/repository"
)

// Store is a SQLite ticket store.
type Store struct {
	db *sql.DB
}

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Open opens the database file at path, creating it if needed.
func Open(path string) (*Store, error) {
	if path == MemoryPath {
		db, err := sql.Open("sqlite3", MemoryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		// every connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
		return &Store{db: db}, nil
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStore wraps an already opened *sql.DB.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Session pins one connection from the pool until Close.
func (s *Store) Session(ctx context.Context) (repository.TicketSession, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &TicketRepository{conn: conn}, nil
}

// Migrate creates the tickets table and indexes.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() {
	_ = s.db.Close()
}

// TicketRepository implements repository.TicketSession on a single *sql.Conn.
type TicketRepository struct {
	conn *sql.Conn
}

func (r *TicketRepository) Close() {
	_ = r.conn.Close()
}

// List retrieves tickets ordered by id, optionally restricted to one status.
func (r *TicketRepository) List(ctx context.Context, status string) ([]models.Ticket, error) {
	query := "SELECT id, title, description, status FROM tickets"
	args := []any{}
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY id"

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	defer rows.Close()

	tickets := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

// Get retrieves a ticket by its ID.
func (r *TicketRepository) Get(ctx context.Context, id int64) (*models.Ticket, error) {
	var t models.Ticket
	err := r.conn.QueryRowContext(ctx,
		"SELECT id, title, description, status FROM tickets WHERE id = ?",
		id,
	).Scan(&t.ID, &t.Title, &t.Description, &t.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return &t, nil
}

// Create persists a new ticket and sets its ID.
func (r *TicketRepository) Create(ctx context.Context, t *models.Ticket) error {
	res, err := r.conn.ExecContext(ctx,
		"INSERT INTO tickets (title, description, status) VALUES (?, ?, ?)",
		t.Title, t.Description, t.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read ticket id: %w", err)
	}
	t.ID = id
	return nil
}

// Save updates every column of an existing ticket.
func (r *TicketRepository) Save(ctx context.Context, t *models.Ticket) error {
	res, err := r.conn.ExecContext(ctx,
		"UPDATE tickets SET title = ?, description = ?, status = ? WHERE id = ?",
		t.Title, t.Description, t.Status, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	return requireAffected(res)
}

// Delete removes a ticket.
func (r *TicketRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.conn.ExecContext(ctx, "DELETE FROM tickets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete ticket: %w", err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrNoRows
	}
	return nil
}

var (
	_ repository.TicketStore   = (*Store)(nil)
	_ repository.TicketSession = (*TicketRepository)(nil)
)

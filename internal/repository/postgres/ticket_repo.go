package postgres

import (
	"context"
	"errors"
	"fmt"

	"tickets-api/internal/models"
	"tickets-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is a PostgreSQL ticket store backed by a pgx connection pool.
type Store struct{ db *pgxpool.Pool }

// Open parses dsn and connects a pool. The pool is not pinged.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pcfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	return &Store{db: pool}, nil
}

func NewStore(db *pgxpool.Pool) *Store { return &Store{db: db} }

func (s *Store) Session(ctx context.Context) (repository.TicketSession, error) {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return &TicketRepo{conn: conn}, nil
}

func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error { return s.db.Ping(ctx) }

func (s *Store) Close() { s.db.Close() }

// TicketRepo runs ticket queries on one acquired connection.
type TicketRepo struct{ conn *pgxpool.Conn }

func (r *TicketRepo) Close() { r.conn.Release() }

// List returns tickets ordered by id, restricted to an exact status match when status is set.
func (r *TicketRepo) List(ctx context.Context, status string) ([]models.Ticket, error) {
	sql := `SELECT id, title, description, status FROM tickets`
	args := []any{}
	if status != "" {
		args = append(args, status)
		sql += ` WHERE status = $1`
	}
	sql += ` ORDER BY id`

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	out := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *TicketRepo) Get(ctx context.Context, id int64) (*models.Ticket, error) {
	var t models.Ticket
	err := r.conn.QueryRow(ctx, `
		SELECT id, title, description, status
		FROM tickets
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Title, &t.Description, &t.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket %d: %w", id, err)
	}
	return &t, nil
}

// Create inserts t and fills in the id assigned by the database.
func (r *TicketRepo) Create(ctx context.Context, t *models.Ticket) error {
	err := r.conn.QueryRow(ctx, `
		INSERT INTO tickets (title, description, status)
		VALUES ($1,$2,$3)
		RETURNING id
	`, t.Title, t.Description, t.Status).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}
	return nil
}

// Save writes every column of t back to its row.
func (r *TicketRepo) Save(ctx context.Context, t *models.Ticket) error {
	ct, err := r.conn.Exec(ctx, `
		UPDATE tickets SET title=$1, description=$2, status=$3
		WHERE id=$4
	`, t.Title, t.Description, t.Status, t.ID)
	if err != nil {
		return fmt.Errorf("save ticket %d: %w", t.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNoRows
	}
	return nil
}

func (r *TicketRepo) Delete(ctx context.Context, id int64) error {
	ct, err := r.conn.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete ticket %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return repository.ErrNoRows
	}
	return nil
}

var (
	_ repository.TicketStore   = (*Store)(nil)
	_ repository.TicketSession = (*TicketRepo)(nil)
)

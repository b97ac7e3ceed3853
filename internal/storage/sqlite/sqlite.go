// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/soltracker/internal/models"
	"github.com/mmynk/soltracker/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps the foreign_keys pragma in effect and avoids
	// SQLITE_BUSY between pooled writers.
	db.SetMaxOpenConns(1)

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveSol upserts a Sol and appends any payments and events not yet stored.
// Payment and event history is append-only: a record that carries fewer
// entries than the database is rejected.
func (s *SQLiteStore) SaveSol(ctx context.Context, sol *models.Sol) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sols (id, name, frequency, amount, member_count, winners_per_round, current_round, start_date, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     name = excluded.name,
		     frequency = excluded.frequency,
		     amount = excluded.amount,
		     member_count = excluded.member_count,
		     winners_per_round = excluded.winners_per_round,
		     current_round = excluded.current_round,
		     start_date = excluded.start_date,
		     status = excluded.status`,
		sol.ID, sol.Name, string(sol.Frequency), sol.Amount.String(), sol.MemberCount, sol.WinnersPerRound,
		sol.CurrentRound, formatTime(sol.StartDate), string(sol.Status), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert sol: %w", err)
	}

	// Replace members
	if _, err := tx.ExecContext(ctx, "DELETE FROM members WHERE sol_id = ?", sol.ID); err != nil {
		return fmt.Errorf("failed to clear members: %w", err)
	}
	for _, m := range sol.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO members (sol_id, id, name, position) VALUES (?, ?, ?, ?)",
			sol.ID, m.ID, m.Name, m.Position,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member: %w", err)
		}
	}

	// Append payments
	stored, err := countRows(ctx, tx, "payments", sol.ID)
	if err != nil {
		return err
	}
	if stored > len(sol.Payments) {
		return fmt.Errorf("sol %s has %d stored payments, refusing to save %d: payments are append-only",
			sol.ID, stored, len(sol.Payments))
	}
	for i, p := range sol.Payments[stored:] {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO payments (id, sol_id, seq, member_id, round, amount_paid, amount_due, date)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, sol.ID, stored+i, p.MemberID, p.Round, p.AmountPaid.String(), p.AmountDue.String(), formatTime(p.Date),
		)
		if err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}
	}

	// Append events
	stored, err = countRows(ctx, tx, "events", sol.ID)
	if err != nil {
		return err
	}
	if stored > len(sol.Events) {
		return fmt.Errorf("sol %s has %d stored events, refusing to save %d: events are append-only",
			sol.ID, stored, len(sol.Events))
	}
	for i, e := range sol.Events[stored:] {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO events (id, sol_id, seq, type, member_id, amount, date, round, description)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, sol.ID, stored+i, string(e.Type), e.MemberID, e.Amount.String(), formatTime(e.Date), e.Round, e.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSol retrieves a Sol by ID, including members, payments and events.
func (s *SQLiteStore) GetSol(ctx context.Context, id string) (*models.Sol, error) {
	sol := &models.Sol{}
	var startDate string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, frequency, amount, member_count, winners_per_round, current_round, start_date, status
		 FROM sols WHERE id = ?`,
		id,
	).Scan(&sol.ID, &sol.Name, &sol.Frequency, &sol.Amount, &sol.MemberCount, &sol.WinnersPerRound,
		&sol.CurrentRound, &startDate, &sol.Status)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get sol: %w", err)
	}
	if sol.StartDate, err = parseTime(startDate); err != nil {
		return nil, err
	}

	if sol.Members, err = s.getMembers(ctx, id); err != nil {
		return nil, err
	}
	if sol.Payments, err = s.getPayments(ctx, id); err != nil {
		return nil, err
	}
	if sol.Events, err = s.getEvents(ctx, id); err != nil {
		return nil, err
	}

	return sol, nil
}

// ListSols retrieves every Sol, oldest first.
func (s *SQLiteStore) ListSols(ctx context.Context) ([]*models.Sol, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM sols ORDER BY created_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("failed to list sols: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan sol id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sols: %w", err)
	}

	sols := make([]*models.Sol, 0, len(ids))
	for _, id := range ids {
		sol, err := s.GetSol(ctx, id)
		if err != nil {
			return nil, err
		}
		sols = append(sols, sol)
	}
	return sols, nil
}

// DeleteSol removes a Sol and its history.
func (s *SQLiteStore) DeleteSol(ctx context.Context, id string) error {
	// Check if sol exists
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM sols WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to check sol existence: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"events", "payments", "members"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE sol_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete %s: %w", table, err)
		}
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM sols WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete sol: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLiteStore) getMembers(ctx context.Context, solID string) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, position FROM members WHERE sol_id = ? ORDER BY position",
		solID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Position); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

func (s *SQLiteStore) getPayments(ctx context.Context, solID string) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, member_id, round, amount_paid, amount_due, date
		 FROM payments WHERE sol_id = ? ORDER BY seq`,
		solID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		var date string
		if err := rows.Scan(&p.ID, &p.MemberID, &p.Round, &p.AmountPaid, &p.AmountDue, &date); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		if p.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}
	return payments, nil
}

func (s *SQLiteStore) getEvents(ctx context.Context, solID string) ([]models.SolEvent, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, member_id, amount, date, round, description
		 FROM events WHERE sol_id = ? ORDER BY seq`,
		solID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := []models.SolEvent{}
	for rows.Next() {
		var e models.SolEvent
		var date string
		if err := rows.Scan(&e.ID, &e.Type, &e.MemberID, &e.Amount, &date, &e.Round, &e.Description); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if e.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return events, nil
}

func countRows(ctx context.Context, tx *sql.Tx, table, solID string) (int, error) {
	var n int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table+" WHERE sol_id = ?", solID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored date %q: %w", s, err)
	}
	return t, nil
}

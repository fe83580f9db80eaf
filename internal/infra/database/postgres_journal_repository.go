// internal/infra/database/postgres_journal_repository.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"homework_status_bot/internal/domain/homework"

	"github.com/lib/pq"
)

const createJournalTable = `CREATE TABLE IF NOT EXISTS homework_status_events (
    id            BIGSERIAL PRIMARY KEY,
    cycle_id      TEXT        NOT NULL,
    homework_name TEXT        NOT NULL DEFAULT '',
    status        TEXT        NOT NULL DEFAULT '',
    message       TEXT        NOT NULL,
    cursor_value  BIGINT      NOT NULL,
    delivered     BOOLEAN     NOT NULL,
    observed_at   TIMESTAMPTZ NOT NULL
)`

// PostgresJournalRepository appends status events to homework_status_events.
type PostgresJournalRepository struct {
	db *sql.DB
}

func NewPostgresJournalRepository(db *sql.DB) *PostgresJournalRepository {
	return &PostgresJournalRepository{db: db}
}

// EnsureSchema creates the journal table if it does not exist.
func (r *PostgresJournalRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createJournalTable); err != nil {
		return fmt.Errorf("error creating homework_status_events table: %w", err)
	}
	return nil
}

func (r *PostgresJournalRepository) Append(ctx context.Context, event *homework.Event) error {
	query := `INSERT INTO homework_status_events (cycle_id, homework_name, status, message, cursor_value, delivered, observed_at)
               VALUES ($1, $2, $3, $4, $5, $6, $7)
               RETURNING id`
	err := r.db.QueryRowContext(ctx, query,
		event.CycleID, event.HomeworkName, string(event.Status), event.Message,
		event.Cursor, event.Delivered, event.ObservedAt,
	).Scan(&event.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("error appending status event (pq code %s): %w", pqErr.Code, err)
		}
		return fmt.Errorf("error appending status event: %w", err)
	}
	return nil
}

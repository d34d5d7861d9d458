package persist

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chayilhub/chayil/internal/db"
	"github.com/chayilhub/chayil/internal/domain"
)

// SQLiteAdapter implements Adapter on a SQLite database: one JSON blob per
// storage key, with a bookkeeping row updated in the same transaction.
type SQLiteAdapter struct {
	conn db.DBTX
	uow  db.UnitOfWork
}

// NewSQLiteAdapter creates a SQLiteAdapter. uow may be nil, in which case
// saves run without a transaction (tests exercising a bare DBTX).
func NewSQLiteAdapter(conn db.DBTX, uow db.UnitOfWork) *SQLiteAdapter {
	return &SQLiteAdapter{conn: conn, uow: uow}
}

func (a *SQLiteAdapter) Load(ctx context.Context, userID string) (*domain.PlannerState, error) {
	query := `SELECT payload FROM planner_states WHERE storage_key = ?`
	row := a.conn.QueryRowContext(ctx, query, StorageKey(userID))

	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("planner state for %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning planner state: %w", err)
	}

	var state domain.PlannerState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		// Corrupt blobs behave as absent: availability over durability.
		return nil, fmt.Errorf("planner state for %s: %w", userID, ErrNotFound)
	}
	return &state, nil
}

func (a *SQLiteAdapter) Save(ctx context.Context, userID string, state domain.PlannerState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshaling planner state: %w", err)
	}

	if a.uow == nil {
		return a.write(ctx, a.conn, userID, payload)
	}
	return a.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return a.write(ctx, tx, userID, payload)
	})
}

func (a *SQLiteAdapter) write(ctx context.Context, conn db.DBTX, userID string, payload []byte) error {
	key := StorageKey(userID)
	now := time.Now().UTC().Format(time.RFC3339)

	query := `INSERT OR REPLACE INTO planner_states (storage_key, payload, updated_at)
		VALUES (?, ?, ?)`
	if _, err := conn.ExecContext(ctx, query, key, string(payload), now); err != nil {
		return fmt.Errorf("saving planner state: %w", err)
	}

	meta := `INSERT INTO store_meta (storage_key, save_count, last_saved)
		VALUES (?, 1, ?)
		ON CONFLICT(storage_key) DO UPDATE SET
			save_count = save_count + 1,
			last_saved = excluded.last_saved`
	if _, err := conn.ExecContext(ctx, meta, key, now); err != nil {
		return fmt.Errorf("updating save bookkeeping: %w", err)
	}
	return nil
}

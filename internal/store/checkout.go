package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AssignItem checks an item out to a user at the given time. If no item has
// that id, a new row is inserted holding only id/user/assigned_date (name
// and description stay unset). The user row is created if absent, in the
// same transaction, so assignment never fails because of an unknown user.
func AssignItem(ctx context.Context, db *sql.DB, itemID, user string, assignedAt time.Time) error {
	if itemID == "" || user == "" {
		return fmt.Errorf("item id and user are required: %w", ErrValidation)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE items SET user = ?, assigned_date = ? WHERE id = ?`,
		user, assignedAt, itemID,
	)
	if err != nil {
		return fmt.Errorf("assigning item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO items (id, user, assigned_date) VALUES (?, ?, ?)`,
			itemID, user, assignedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting assigned item: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `INSERT OR IGNORE INTO users (name) VALUES (?)`, user)
	if err != nil {
		return fmt.Errorf("ensuring user exists: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing assignment: %w", err)
	}
	return nil
}

// ReturnItem clears an item's assignment. Idempotent: returning an already
// available or nonexistent item succeeds as a no-op.
func ReturnItem(ctx context.Context, db *sql.DB, itemID string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET user = NULL, assigned_date = NULL WHERE id = ?`,
		itemID,
	)
	if err != nil {
		return fmt.Errorf("returning item: %w", err)
	}
	return nil
}

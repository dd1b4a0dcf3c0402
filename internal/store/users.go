package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
)

// CreateUser registers a new holder name.
func CreateUser(ctx context.Context, db *sql.DB, name string) error {
	if name == "" {
		return fmt.Errorf("user name is required: %w", ErrValidation)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE name = ?`, name,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("checking user name: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("user %q: %w", name, ErrConflict)
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO users (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing user creation: %w", err)
	}
	return nil
}

// ListUsers returns all users, unordered.
func ListUsers(ctx context.Context, db *sql.DB) ([]model.User, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM users`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Name); err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// DeleteUser removes a user and releases every item currently checked out
// to them. The row deletion and the item resets commit atomically: a reader
// never sees the user gone while items still point at the name.
func DeleteUser(ctx context.Context, db *sql.DB, name string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("user %q: %w", name, ErrNotFound)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE items SET user = NULL, assigned_date = NULL WHERE user = ?`,
		name,
	)
	if err != nil {
		return fmt.Errorf("releasing user's items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing user deletion: %w", err)
	}
	return nil
}

package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Item IDs are client-supplied strings
// (asset tags), so items has a TEXT primary key. The user column is a soft
// reference to users.name: no foreign key on purpose, since assignment may
// create the user row in the same transaction.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id            TEXT PRIMARY KEY,
    name          TEXT,
    description   TEXT,
    user          TEXT,
    assigned_date DATETIME,
    image         BLOB,
    image_mime    TEXT
);

CREATE INDEX IF NOT EXISTS idx_items_user
    ON items(user) WHERE user IS NOT NULL;

CREATE TABLE IF NOT EXISTS users (
    name TEXT PRIMARY KEY
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/erazemk/izposoja/internal/model"
)

// CreateItem inserts a new unassigned item. The id is client-supplied and
// must be unique; an existing row is left untouched on conflict.
func CreateItem(ctx context.Context, db *sql.DB, id, name, description string) (*model.Item, error) {
	if id == "" || name == "" {
		return nil, fmt.Errorf("item id and name are required: %w", ErrValidation)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE id = ?`, id,
	).Scan(&count)
	if err != nil {
		return nil, fmt.Errorf("checking item id: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("item %q: %w", id, ErrConflict)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO items (id, name, description) VALUES (?, ?, ?)`,
		id, name, description,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item creation: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if no such row exists.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	item := &model.Item{}
	var name, description, user, imageMime sql.NullString
	var assignedDate sql.NullTime
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, user, assigned_date, image_mime
		 FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &name, &description, &user, &assignedDate, &imageMime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	item.Name = name.String
	item.Description = description.String
	item.User = user.String
	item.ImageMime = imageMime.String
	if assignedDate.Valid {
		item.AssignedDate = &assignedDate.Time
	}
	return item, nil
}

// ListItems returns all items. Iteration order is not part of the contract;
// clients sort and filter on their side.
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, user, assigned_date, image_mime FROM items`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var name, description, user, imageMime sql.NullString
		var assignedDate sql.NullTime
		if err := rows.Scan(&item.ID, &name, &description, &user, &assignedDate, &imageMime); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		item.Name = name.String
		item.Description = description.String
		item.User = user.String
		item.ImageMime = imageMime.String
		if assignedDate.Valid {
			item.AssignedDate = &assignedDate.Time
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteItem removes an item. Deleting an item has no effect on any user
// row, even if the item was checked out.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	result, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	return nil
}

// SetItemImage stores an item's photo.
func SetItemImage(ctx context.Context, db *sql.DB, id string, image []byte, mime string) error {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET image = ?, image_mime = ? WHERE id = ?`,
		image, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item image: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %q: %w", id, ErrNotFound)
	}
	return nil
}

// GetItemImage returns an item's photo and MIME type, or nil data if the
// item has no photo or does not exist.
func GetItemImage(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

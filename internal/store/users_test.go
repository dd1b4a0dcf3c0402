package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/izposoja/internal/db"
)

func TestCreateAndListUsers(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if err := CreateUser(ctx, database, "Alice"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if err := CreateUser(ctx, database, "Bob"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	users, err := ListUsers(ctx, database)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestCreateUserValidation(t *testing.T) {
	database := db.NewTestDB(t)

	if err := CreateUser(context.Background(), database, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty name, got %v", err)
	}
}

func TestCreateUserConflict(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "Alice")
	if err := CreateUser(ctx, database, "Alice"); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict for duplicate name, got %v", err)
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	database := db.NewTestDB(t)

	if err := DeleteUser(context.Background(), database, "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteUserReleasesHeldItems(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateItem(ctx, database, "A1", "Drill", "")
	CreateItem(ctx, database, "A2", "Saw", "")
	CreateItem(ctx, database, "A3", "Ladder", "")
	CreateItem(ctx, database, "A4", "Wrench", "")

	at := testTime()
	AssignItem(ctx, database, "A1", "Bob", at)
	AssignItem(ctx, database, "A2", "Bob", at)
	AssignItem(ctx, database, "A3", "Alice", at)

	if err := DeleteUser(ctx, database, "Bob"); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	users, _ := ListUsers(ctx, database)
	for _, u := range users {
		if u.Name == "Bob" {
			t.Error("Bob should be gone")
		}
	}

	items, _ := ListItems(ctx, database)
	for _, item := range items {
		switch item.ID {
		case "A1", "A2":
			if item.Assigned() || item.AssignedDate != nil {
				t.Errorf("item %s should be available after owner deletion: %+v", item.ID, item)
			}
		case "A3":
			if item.User != "Alice" || item.AssignedDate == nil {
				t.Errorf("item %s should still be held by Alice: %+v", item.ID, item)
			}
		case "A4":
			if item.Assigned() {
				t.Errorf("item %s was never assigned: %+v", item.ID, item)
			}
		}
	}
}

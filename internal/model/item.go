package model

import "time"

// Item is a catalog entry that can be held by at most one user at a time.
// The ID is client-supplied and unique. User and AssignedDate are either
// both set (checked out) or both unset (available), never one without the
// other.
type Item struct {
	ID           string     `json:"id"`
	Name         string     `json:"name,omitempty"`
	Description  string     `json:"description,omitempty"`
	User         string     `json:"user,omitempty"`
	AssignedDate *time.Time `json:"assignedDate,omitempty"`
	ImageMime    string     `json:"image_mime,omitempty"`
}

// Assigned reports whether the item is currently checked out.
func (i *Item) Assigned() bool {
	return i.User != ""
}

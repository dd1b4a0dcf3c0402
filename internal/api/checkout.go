package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/erazemk/izposoja/internal/store"
)

// CheckoutHandler handles assignment and return endpoints.
type CheckoutHandler struct {
	DB *sql.DB
}

type assignRequest struct {
	ItemID       string     `json:"itemId"`
	User         string     `json:"user"`
	AssignedDate *time.Time `json:"assignedDate"`
}

// Assign handles POST /api/assign. Assigning to an unknown item id inserts
// a partial row; assigning to an unregistered user name registers it.
func (h *CheckoutHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ItemID == "" || req.User == "" {
		jsonError(w, http.StatusBadRequest, "itemId and user required")
		return
	}

	assignedAt := time.Now().UTC()
	if req.AssignedDate != nil {
		assignedAt = req.AssignedDate.UTC()
	}

	if err := store.AssignItem(r.Context(), h.DB, req.ItemID, req.User, assignedAt); err != nil {
		storeError(w, err, "failed to assign item")
		return
	}

	jsonMessage(w, "item assigned")
}

// Return handles POST /api/return/{id}. Idempotent: returning an available
// or unknown item still reports success.
func (h *CheckoutHandler) Return(w http.ResponseWriter, r *http.Request) {
	if err := store.ReturnItem(r.Context(), h.DB, r.PathValue("id")); err != nil {
		storeError(w, err, "failed to return item")
		return
	}
	jsonMessage(w, "item returned")
}

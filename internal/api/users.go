package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

// UsersHandler handles holder registry endpoints.
type UsersHandler struct {
	DB *sql.DB
}

type createUserRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := store.ListUsers(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list users")
		return
	}
	if users == nil {
		users = []model.User{}
	}
	jsonResponse(w, http.StatusOK, users)
}

// Create handles POST /api/users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	if err := store.CreateUser(r.Context(), h.DB, req.Name); err != nil {
		storeError(w, err, "failed to create user")
		return
	}

	jsonMessage(w, "user added")
}

// Delete handles DELETE /api/users/{name}. Items held by the user are
// released in the same transaction.
func (h *UsersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := store.DeleteUser(r.Context(), h.DB, r.PathValue("name")); err != nil {
		storeError(w, err, "failed to delete user")
		return
	}
	jsonMessage(w, "user deleted")
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/izposoja/internal/auth"
)

// AuthHandler handles the admin login endpoint. Login is a static
// shared-secret check: a matching password yields the one configured admin
// token, with no expiry or per-session identity.
type AuthHandler struct {
	PasswordHash string
	Token        string
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !auth.CheckPassword(h.PasswordHash, req.Password) {
		slog.Warn("admin login failed", "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid password")
		return
	}

	slog.Info("admin logged in", "remote", r.RemoteAddr)
	jsonResponse(w, http.StatusOK, loginResponse{Token: h.Token})
}

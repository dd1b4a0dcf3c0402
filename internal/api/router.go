package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
//
// Apart from login, the API routes carry no credential check: only the
// admin console page is gated (see internal/web). This mirrors the original
// deployment and is a documented security gap, not an oversight — see the
// README before exposing this beyond a trusted network.
func NewRouter(db *sql.DB, adminPasswordHash, adminToken string) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{DB: db}
	usersHandler := &UsersHandler{DB: db}
	checkoutHandler := &CheckoutHandler{DB: db}
	authHandler := &AuthHandler{PasswordHash: adminPasswordHash, Token: adminToken}
	healthHandler := &HealthHandler{DB: db}

	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("DELETE /api/items/{id}", itemsHandler.Delete)
	mux.HandleFunc("POST /api/items/{id}/image", itemsHandler.UploadImage)
	mux.HandleFunc("GET /api/items/{id}/image", itemsHandler.GetImage)

	mux.HandleFunc("GET /api/users", usersHandler.List)
	mux.HandleFunc("POST /api/users", usersHandler.Create)
	mux.HandleFunc("DELETE /api/users/{name}", usersHandler.Delete)

	mux.HandleFunc("POST /api/assign", checkoutHandler.Assign)
	mux.HandleFunc("POST /api/return/{id}", checkoutHandler.Return)

	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("GET /api/health", healthHandler.Check)

	return mux
}

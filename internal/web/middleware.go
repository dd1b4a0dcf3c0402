package web

import (
	"encoding/json"
	"net/http"

	"github.com/erazemk/izposoja/internal/auth"
)

// AdminTokenMiddleware gates a route behind the shared admin token, taken
// from the Authorization header or the token query parameter (the login
// page redirects with the token in the URL).
func AdminTokenMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			if got == "" {
				got = r.URL.Query().Get("token")
			}
			if got == "" || !auth.TokenEqual(token, got) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

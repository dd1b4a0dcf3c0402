package web

import (
	"net/http"

	webembed "github.com/erazemk/izposoja/web"
)

// NewRouter serves the embedded static pages. Everything is public except
// the admin console, which requires the shared admin token. The exact
// "GET /admin.html" pattern takes precedence over the catch-all file
// server, so the console never leaks through the public route.
func NewRouter(adminToken string) http.Handler {
	fileServer := http.FileServer(http.FS(webembed.StaticFS()))

	mux := http.NewServeMux()
	mux.Handle("GET /admin.html", AdminTokenMiddleware(adminToken)(fileServer))
	mux.Handle("/", fileServer)
	return mux
}

package server

import (
	"mime"
	"net/http"
	"path/filepath"
)

func (s *Server) register() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/mailboxes/", s.handleMailboxRoutes)

	// Static files live under /static/, the API under /api/.
	fs := http.FileServer(http.Dir(s.staticDir))
	mux.Handle("/static/", http.StripPrefix("/static/", fs))

	// Some platforms lack these by default.
	mime.AddExtensionType(".css", "text/css")
	mime.AddExtensionType(".js", "application/javascript")

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(s.staticDir, "index.html"))
	})
	return mux
}

package server

import (
	"net/http"
	"strings"
)

func (s *Server) handleMailboxRoutes(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("request", "method", r.Method, "path", r.URL.Path)

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/api/mailboxes/"), "/")
	segmentCount := len(parts)

	if segmentCount == 1 && parts[0] == "" {
		s.mailboxesHandler(w, r)
		return
	}

	if segmentCount >= 2 && parts[1] == "emails" {
		mboxName := parts[0]
		switch segmentCount {
		case 2:
			s.listEmailsHandler(w, r, mboxName)
			return
		case 3:
			s.emailContentHandler(w, r, mboxName, parts[2])
			return
		case 4:
			switch parts[3] {
			case "headers":
				s.emailHeadersHandler(w, r, mboxName, parts[2])
				return
			case "validate":
				s.validateEmailHandler(w, r, mboxName, parts[2])
				return
			case "item":
				s.emailItemHandler(w, r, mboxName, parts[2])
				return
			}
		}
	}

	http.NotFound(w, r)
}

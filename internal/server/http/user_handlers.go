package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// listUsers handles GET /api/users.
func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.writeDomainError(w, r, "list_users", err)
		return
	}

	writeJSON(w, http.StatusOK, usersEnvelope{Users: usersToResponse(users)})
}

// getUser handles GET /api/users/{username}.
func (s *Server) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.writeDomainError(w, r, "get_user", err)
		return
	}

	writeJSON(w, http.StatusOK, userEnvelope{User: userToResponse(user)})
}

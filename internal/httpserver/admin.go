// internal/httpserver/admin.go
//
// Operator endpoints under /admin, gated by a bearer key whose bcrypt hash is
// configured as ADMIN_KEY_HASH. With no hash configured the routes are not
// mounted at all.
//
//   - POST /admin/reload → rebuild the word library from its source

package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// mountAdmin registers /admin routes when an admin key hash is configured.
func (s *Server) mountAdmin(r chi.Router) {
	if s.cfg.AdminKeyHash == "" {
		return
	}
	r.Route("/admin", func(r chi.Router) {
		r.Use(s.requireAdmin)
		r.Post("/reload", s.handleReload)
	})
}

// requireAdmin checks the bearer key against the configured bcrypt hash.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := bearer(r)
		if key == "" {
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminKeyHash), []byte(key)); err != nil {
			log.Warn().Str("ip", r.RemoteAddr).Msg("admin key rejected")
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleReload rebuilds the dictionary graph and puzzle lists. Games already
// in flight keep the graph they started with.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.lib.Reload(r.Context(), s.src); err != nil {
		log.Error().Err(err).Msg("reload library")
		http.Error(w, `{"error":"reload_failed"}`, http.StatusInternalServerError)
		return
	}
	n, puzzles := s.lib.Stats()
	_ = json.NewEncoder(w).Encode(map[string]any{"words": n, "puzzles": puzzles})
}

// bearer extracts the token from "Authorization: Bearer <token>".
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

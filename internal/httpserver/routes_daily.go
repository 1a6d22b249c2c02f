// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle.
//   - POST /daily/new → start today's puzzle for a level
//
// Every player gets the same puzzle per level for a UTC date; selection is
// deterministic from date + level + salt, so no daily state is stored.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/dwordly/internal/daily"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
	})
}

// dailyReq is the request payload for /daily/new.
type dailyReq struct {
	Level string `json:"level"`
}

// handleDailyNew starts a game on today's puzzle for the requested level.
func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	var req dailyReq
	if !decodeOptional(w, r, &req) {
		return
	}
	if req.Level == "" {
		req.Level = "easy"
	}

	sess, ok := s.session(w, req.Level)
	if !ok {
		return
	}
	now := time.Now().UTC()
	idx := daily.PuzzleIndex(now, string(sess.Level), s.cfg.DailySalt, len(sess.Puzzles))
	if _, err := sess.SelectIndex(idx); err != nil {
		log.Warn().Err(err).Str("level", req.Level).Msg("select daily puzzle")
		http.Error(w, `{"error":"no_puzzle"}`, http.StatusNotFound)
		return
	}
	s.startGame(w, r, sess, daily.DateKey(now))
}

// internal/httpserver/server.go
//
// HTTP server wiring for the word-ladder backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/move, GET /game/{id},
//     GET /game/{id}/options, POST /game/finish.
//   - Challenge links (signed puzzle tokens): POST /game/challenge.
//   - Daily puzzle endpoints: mounted under /daily.
//   - Operator endpoints (bcrypt-checked bearer key): mounted under /admin.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled.
//   - Finished games are scored in the response that finishes them and then
//     dropped from the store; nothing about past games is kept.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/dwordly/internal/config"
	"github.com/robalobadob/dwordly/internal/game"
	"github.com/robalobadob/dwordly/internal/store"
	"github.com/robalobadob/dwordly/internal/words"
)

// Server bundles router, in-flight game store, and the shared word library.
type Server struct {
	r     *chi.Mux
	store store.Store
	lib   *game.Library
	src   words.Source
	cfg   config.Config

	playMu sync.Mutex // serializes mutations of stored games
}

// New constructs a Server, installs middleware, and registers routes.
// lib must already be loaded from src; src is reused by /admin/reload.
func New(st store.Store, lib *game.Library, src words.Source, cfg config.Config) *Server {
	s := &Server{r: chi.NewRouter(), store: st, lib: lib, src: src, cfg: cfg}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"dwordly-go","endpoints":["/health","POST /game/new","POST /game/move","POST /game/finish","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		n, puzzles := s.lib.Stats()
		_ = json.NewEncoder(w).Encode(map[string]any{"words": n, "puzzles": puzzles, "isolated": s.lib.Isolated(), "games": s.store.Len()})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/move", s.handleMove)
	s.r.Post("/game/finish", s.handleFinish)
	s.r.Post("/game/challenge", s.handleChallenge)
	s.r.Get("/game/{id}", s.handleGetGame)
	s.r.Get("/game/{id}/options", s.handleOptions)

	s.mountDaily(s.r)
	s.mountAdmin(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.cfg.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Level     string `json:"level"`               // "easy" | "medium" | "hard"
	Challenge string `json:"challenge,omitempty"` // optional signed challenge token
}
type newGameRes struct {
	GameID        string   `json:"gameId"`
	Level         string   `json:"level"`
	Start         string   `json:"start"`
	Rating        float64  `json:"rating"`
	OptimalLength int      `json:"optimalLength"`
	MaxWordLength int      `json:"maxWordLength"`
	State         string   `json:"state"`
	Options       []string `json:"options"`
	Date          string   `json:"date,omitempty"` // daily games only
}

// handleNewGame picks a puzzle for the requested level (or the challenged
// puzzle), computes its optimal path and stores a fresh game.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if !decodeOptional(w, r, &req) {
		return
	}

	word := ""
	if req.Challenge != "" {
		c, err := s.parseChallenge(req.Challenge)
		if err != nil {
			http.Error(w, `{"error":"invalid_challenge"}`, http.StatusBadRequest)
			return
		}
		req.Level, word = c.Level, c.Word
	}
	if req.Level == "" {
		req.Level = string(words.Easy)
	}

	sess, ok := s.session(w, req.Level)
	if !ok {
		return
	}
	var err error
	if word != "" {
		_, err = sess.SelectWord(word)
	} else {
		_, err = sess.SelectGame(nil)
	}
	if err != nil {
		log.Warn().Err(err).Str("level", req.Level).Msg("select puzzle")
		http.Error(w, `{"error":"no_puzzle"}`, http.StatusNotFound)
		return
	}
	s.startGame(w, r, sess, "")
}

// session resolves a level name to a fresh Session, writing the error response
// itself when it cannot.
func (s *Server) session(w http.ResponseWriter, level string) (*game.Session, bool) {
	l, err := words.ParseLevel(level)
	if err != nil {
		http.Error(w, `{"error":"unknown_level"}`, http.StatusBadRequest)
		return nil, false
	}
	sess, err := s.lib.Session(l)
	if err != nil {
		log.Error().Err(err).Msg("library session")
		http.Error(w, `{"error":"library_unavailable"}`, http.StatusServiceUnavailable)
		return nil, false
	}
	return sess, true
}

// startGame creates, stores and reports a game for the session's selected puzzle.
func (s *Server) startGame(w http.ResponseWriter, r *http.Request, sess *game.Session, date string) {
	g, err := game.New(sess)
	if err != nil {
		log.Error().Err(err).Msg("new game")
		http.Error(w, `{"error":"new_game_failed"}`, http.StatusInternalServerError)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Debug().Str("gameId", g.ID).Str("start", g.Puzzle.Word).Int("optimal", len(g.OptimalPath)).Msg("game started")

	_ = json.NewEncoder(w).Encode(newGameRes{
		GameID:        g.ID,
		Level:         string(g.Level),
		Start:         g.Puzzle.Word,
		Rating:        g.Puzzle.Rating,
		OptimalLength: len(g.OptimalPath),
		MaxWordLength: sess.MaxWordLength,
		State:         string(g.State()),
		Options:       nonNil(g.Options()),
		Date:          date,
	})
}

// moveReq/Res payloads for POST /game/move.
type moveReq struct {
	GameID string `json:"gameId"`
	Word   string `json:"word"`
}
type moveRes struct {
	Played         []string `json:"played"`
	State          string   `json:"state"` // "playing" | "finished"
	MovesRemaining bool     `json:"movesRemaining"`
	Options        []string `json:"options"`
	Scores         []int    `json:"scores,omitempty"`      // once finished
	OptimalPath    []string `json:"optimalPath,omitempty"` // once finished
}

// handleMove applies one word to a game. A move that leaves no further moves
// finishes the game and the response carries the final scores.
func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	s.playMu.Lock()
	defer s.playMu.Unlock()

	g, ok := s.lookup(w, r, req.GameID)
	if !ok {
		return
	}
	state, err := g.Move(req.Word)
	switch {
	case errors.Is(err, game.ErrFinished):
		http.Error(w, `{"error":"game_finished"}`, http.StatusConflict)
		return
	case errors.Is(err, game.ErrIllegalMove):
		http.Error(w, `{"error":"illegal_move"}`, http.StatusBadRequest)
		return
	case errors.Is(err, words.ErrInvalidWord):
		http.Error(w, `{"error":"invalid_word"}`, http.StatusBadRequest)
		return
	case err != nil:
		http.Error(w, `{"error":"move_failed"}`, http.StatusInternalServerError)
		return
	}

	res := moveRes{
		Played:         g.Played,
		State:          string(state),
		MovesRemaining: !g.Finished,
		Options:        nonNil(g.Options()),
	}
	if g.Finished {
		if !s.complete(w, r, g, &res) {
			return
		}
	} else if err := s.store.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// finishReq is the payload for POST /game/finish.
type finishReq struct {
	GameID string `json:"gameId"`
}

// handleFinish ends a game at the player's request and returns its scores.
func (s *Server) handleFinish(w http.ResponseWriter, r *http.Request) {
	var req finishReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	s.playMu.Lock()
	defer s.playMu.Unlock()

	g, ok := s.lookup(w, r, req.GameID)
	if !ok {
		return
	}
	g.Finish()
	res := moveRes{Played: g.Played, State: string(g.State()), Options: []string{}}
	if !s.complete(w, r, g, &res) {
		return
	}
	_ = json.NewEncoder(w).Encode(res)
}

// complete scores a finished game into res and drops it from the store.
func (s *Server) complete(w http.ResponseWriter, r *http.Request, g *game.Game, res *moveRes) bool {
	scores, err := g.Scores()
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("score game")
		http.Error(w, `{"error":"score_failed"}`, http.StatusInternalServerError)
		return false
	}
	res.Scores = scores
	res.OptimalPath = g.OptimalPath
	if err := s.store.Delete(r.Context(), g.ID); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("drop finished game")
	}
	log.Info().
		Str("gameId", g.ID).
		Str("level", string(g.Level)).
		Int("words", len(g.Played)).
		Int("score", scores[len(scores)-1]).
		Msg("game finished")
	return true
}

// gameRes is returned by GET /game/{id}.
type gameRes struct {
	GameID         string   `json:"gameId"`
	Level          string   `json:"level"`
	Start          string   `json:"start"`
	Played         []string `json:"played"`
	State          string   `json:"state"`
	MovesRemaining bool     `json:"movesRemaining"`
	OptimalLength  int      `json:"optimalLength"`
}

// handleGetGame reports the current state of an in-flight game.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	s.playMu.Lock()
	defer s.playMu.Unlock()

	g, ok := s.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(gameRes{
		GameID:         g.ID,
		Level:          string(g.Level),
		Start:          g.Puzzle.Word,
		Played:         g.Played,
		State:          string(g.State()),
		MovesRemaining: !g.Finished,
		OptimalLength:  len(g.OptimalPath),
	})
}

// handleOptions lists the legal next words for an in-flight game.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	s.playMu.Lock()
	defer s.playMu.Unlock()

	g, ok := s.lookup(w, r, chi.URLParam(r, "id"))
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string][]string{"options": nonNil(g.Options())})
}

// lookup fetches a stored game, writing a 404 when it is missing.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request, id string) (*game.Game, bool) {
	g, err := s.store.Get(r.Context(), id)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return nil, false
	}
	return g, true
}

// decodeOptional decodes a JSON body into v, treating an empty body as {}.
// Malformed JSON gets a 400 and false.
func decodeOptional(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return false
	}
	return true
}

// nonNil keeps empty word lists encoded as [] rather than null.
func nonNil(ws []string) []string {
	if ws == nil {
		return []string{}
	}
	return ws
}

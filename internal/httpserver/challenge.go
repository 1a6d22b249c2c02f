// internal/httpserver/challenge.go
//
// Challenge links: a player can hand a friend the exact puzzle they are on.
// The token is an HS256 JWT carrying the level and start word, so the server
// keeps no record of issued challenges. POST /game/new accepts it back.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// challenge is the puzzle a token points at.
type challenge struct {
	Level string
	Word  string
}

// challengeReq/Res payloads for POST /game/challenge.
type challengeReq struct {
	GameID string `json:"gameId"`
}
type challengeRes struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// handleChallenge issues a token for the puzzle of an in-flight game.
func (s *Server) handleChallenge(w http.ResponseWriter, r *http.Request) {
	var req challengeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	s.playMu.Lock()
	g, ok := s.lookup(w, r, req.GameID)
	s.playMu.Unlock()
	if !ok {
		return
	}

	tok, exp, err := s.signChallenge(challenge{Level: string(g.Level), Word: g.Puzzle.Word})
	if err != nil {
		log.Error().Err(err).Msg("sign challenge")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(challengeRes{Token: tok, ExpiresAt: exp})
}

// signChallenge creates an HS256 JWT for c with the configured lifetime.
func (s *Server) signChallenge(c challenge) (string, time.Time, error) {
	ttl := s.cfg.ChallengeTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	now := time.Now()
	exp := now.Add(ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"level": c.Level,
		"word":  c.Word,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	})
	ss, err := t.SignedString(s.secret())
	return ss, exp, err
}

// parseChallenge verifies tok and extracts its puzzle.
func (s *Server) parseChallenge(tok string) (challenge, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return challenge{}, errors.New("invalid challenge token")
	}
	level, _ := claims["level"].(string)
	word, _ := claims["word"].(string)
	if level == "" || word == "" {
		return challenge{}, errors.New("challenge token missing puzzle")
	}
	return challenge{Level: level, Word: word}, nil
}

func (s *Server) secret() []byte {
	if s.cfg.JWTSecret == "" {
		return []byte("dev_secret_change_me")
	}
	return []byte(s.cfg.JWTSecret)
}

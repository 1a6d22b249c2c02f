// internal/game/engine.go
//
// Game engine for a single ladder attempt.
// Responsibilities:
//   - Start a game from a Session whose puzzle is selected.
//   - Validate and apply moves (normalized, adjacent, not repeated).
//   - Track state transitions: playing → finished (out of moves, or player stops).
//   - Score the played ladder against the optimal path.

package game

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/robalobadob/dwordly/internal/ladder"
	"github.com/robalobadob/dwordly/internal/words"
)

// New starts a game on the session's selected puzzle.
// The played sequence begins with the puzzle's start word.
func New(s *Session) (*Game, error) {
	if s.Graph == nil {
		return nil, ErrNoGraph
	}
	if len(s.OptimalPath) == 0 {
		return nil, ErrNoPuzzle
	}
	g := &Game{
		ID:          uuid.NewString(),
		Level:       s.Level,
		Puzzle:      s.Puzzle,
		OptimalPath: slices.Clone(s.OptimalPath),
		Difficulty:  s.Difficulty,
		Played:      []string{s.Puzzle.Word},
		graph:       s.Graph,
	}
	if !g.MovesRemaining() {
		g.Finished = true
	}
	return g, nil
}

// Move validates word against the last played word and appends it.
// The game finishes on its own once no further move is possible.
func (g *Game) Move(word string) (State, error) {
	if g.Finished {
		return g.State(), ErrFinished
	}
	w, err := words.Normalize(word)
	if err != nil {
		return g.State(), err
	}
	if !ladder.IsLegalNext(g.Played, w, g.graph) {
		return g.State(), fmt.Errorf("%w: %q after %q", ErrIllegalMove, w, g.Played[len(g.Played)-1])
	}
	g.Played = append(g.Played, w)
	if !g.MovesRemaining() {
		g.Finished = true
	}
	return g.State(), nil
}

// MovesRemaining reports whether another move can be made.
func (g *Game) MovesRemaining() bool {
	return ladder.MovesRemaining(g.Played, g.OptimalPath, g.graph)
}

// Options lists the words that may be played next.
func (g *Game) Options() []string {
	if g.Finished {
		return nil
	}
	return ladder.LegalMoves(g.Played, g.graph)
}

// Finish ends the game early; further moves are rejected.
func (g *Game) Finish() { g.Finished = true }

// Scores returns the running score after each played word.
func (g *Game) Scores() ([]int, error) {
	return ladder.Score(g.Played, g.OptimalPath, g.Difficulty)
}

// State reports the coarse lifecycle state.
func (g *Game) State() State {
	if g.Finished {
		return StateFinished
	}
	return StatePlaying
}

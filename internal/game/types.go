// internal/game/types.go
//
// Core type definitions for the ladder game.
// Defines:
//   - State: coarse lifecycle of a single attempt.
//   - Game: state for a single in-progress or finished attempt.
//   - Sentinel errors shared by Session, Library and Game.

package game

import (
	"errors"

	"github.com/robalobadob/dwordly/internal/ladder"
	"github.com/robalobadob/dwordly/internal/words"
)

// State is the lifecycle state of a Game.
type State string

const (
	StatePlaying  State = "playing"
	StateFinished State = "finished"
)

var (
	ErrNoGraph       = errors.New("game: dictionary not loaded")
	ErrNoPuzzles     = errors.New("game: no puzzles loaded")
	ErrNoPuzzle      = errors.New("game: no puzzle selected")
	ErrUnknownPuzzle = errors.New("game: puzzle not in level")
	ErrFinished      = errors.New("game: game finished")
	ErrIllegalMove   = errors.New("game: illegal move")
)

// Game holds one player's attempt at one puzzle.
type Game struct {
	ID          string            // Unique game identifier (uuid).
	Level       words.Level       // Level the puzzle was drawn from.
	Puzzle      words.Puzzle      // Start word and rating.
	OptimalPath []string          // BFS path the attempt is scored against.
	Difficulty  ladder.Difficulty // Rating normalized against the level bounds.
	Played      []string          // Words played so far, starting with Puzzle.Word.
	Finished    bool              // True once no moves remain or the player stopped.

	graph *ladder.Graph
}

// internal/game/session.go
//
// Session is the explicit state record the ladder operations read and write:
// the loaded dictionary and its graph, the active level's puzzles and rating
// bounds, and the currently selected puzzle with its optimal path.
//
// A Session belongs to one caller at a time. The Graph it points at is
// read-only and may be shared between sessions (see Library).

package game

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/dwordly/internal/ladder"
	"github.com/robalobadob/dwordly/internal/words"
)

// Session holds dictionary, level and puzzle state between calls.
type Session struct {
	Dictionary    []string
	Graph         *ladder.Graph
	MaxWordLength int

	Level   words.Level
	Puzzles []words.Puzzle
	Bounds  ladder.Bounds

	Puzzle      words.Puzzle
	Difficulty  ladder.Difficulty
	OptimalPath []string
}

// LoadDictionary fetches the dictionary from src and builds its graph.
// It does nothing when a graph is already loaded.
func (s *Session) LoadDictionary(ctx context.Context, src words.Source) error {
	if s.Graph != nil {
		return nil
	}
	dict, err := src.Dictionary(ctx)
	if err != nil {
		return fmt.Errorf("game: load dictionary: %w", err)
	}
	s.setDictionary(dict)
	return nil
}

func (s *Session) setDictionary(dict []string) {
	s.Dictionary = dict
	s.Graph = ladder.BuildGraph(dict)
	s.MaxWordLength = words.MaxLength(dict)
	log.Debug().
		Int("words", s.Graph.Len()).
		Int("edges", s.Graph.Edges()).
		Int("maxLen", s.MaxWordLength).
		Msg("ladder graph built")
}

// LoadDifficulty replaces the puzzle list and rating bounds with level's.
func (s *Session) LoadDifficulty(ctx context.Context, src words.Source, level words.Level) error {
	ps, err := src.Puzzles(ctx, level)
	if err != nil {
		return fmt.Errorf("game: load %s: %w", level, err)
	}
	s.setPuzzles(level, ps)
	return nil
}

func (s *Session) setPuzzles(level words.Level, ps []words.Puzzle) {
	ratings := make([]float64, len(ps))
	for i, p := range ps {
		ratings[i] = p.Rating
	}
	s.Level = level
	s.Puzzles = ps
	s.Bounds = ladder.BoundsOf(ratings)
}

// SelectGame picks a puzzle uniformly at random and computes its optimal path.
// A nil rng uses the package-level generator.
func (s *Session) SelectGame(rng *rand.Rand) (words.Puzzle, error) {
	if len(s.Puzzles) == 0 {
		return words.Puzzle{}, ErrNoPuzzles
	}
	var i int
	if rng != nil {
		i = rng.IntN(len(s.Puzzles))
	} else {
		i = rand.IntN(len(s.Puzzles))
	}
	return s.SelectIndex(i)
}

// SelectIndex selects the i-th puzzle of the level (modulo the list length).
func (s *Session) SelectIndex(i int) (words.Puzzle, error) {
	if len(s.Puzzles) == 0 {
		return words.Puzzle{}, ErrNoPuzzles
	}
	n := len(s.Puzzles)
	if i %= n; i < 0 {
		i += n
	}
	return s.selectPuzzle(s.Puzzles[i])
}

// SelectWord selects the level's puzzle starting at word.
func (s *Session) SelectWord(word string) (words.Puzzle, error) {
	for _, p := range s.Puzzles {
		if p.Word == word {
			return s.selectPuzzle(p)
		}
	}
	return words.Puzzle{}, fmt.Errorf("%w: %q", ErrUnknownPuzzle, word)
}

func (s *Session) selectPuzzle(p words.Puzzle) (words.Puzzle, error) {
	if s.Graph == nil {
		return words.Puzzle{}, ErrNoGraph
	}
	s.Puzzle = p
	s.Difficulty = ladder.Difficulty{Rating: p.Rating, Bounds: s.Bounds}
	s.OptimalPath = ladder.ShortestPath(s.Graph, p.Word)
	return p, nil
}

// MovesPossible reports whether played can still be extended.
func (s *Session) MovesPossible(played []string) bool {
	if s.Graph == nil {
		return false
	}
	return ladder.MovesRemaining(played, s.OptimalPath, s.Graph)
}

// CheckNextWord reports whether next is a legal continuation of played.
func (s *Session) CheckNextWord(played []string, next string) bool {
	if s.Graph == nil {
		return false
	}
	return ladder.IsLegalNext(played, next, s.Graph)
}

// ScoreGame scores a finished sequence against the selected puzzle.
func (s *Session) ScoreGame(fullGame []string) ([]int, error) {
	if len(s.OptimalPath) == 0 {
		return nil, ErrNoPuzzle
	}
	return ladder.Score(fullGame, s.OptimalPath, s.Difficulty)
}

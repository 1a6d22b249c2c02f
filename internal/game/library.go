// internal/game/library.go
//
// Library is the process-wide cache behind the HTTP server: one dictionary
// graph plus every level's puzzle list and bounds. Sessions handed out by the
// Library share its graph read-only.
//
// Loading fetches the dictionary and all level lists concurrently, builds the
// graph, and only then swaps the new data in under the write lock, so readers
// never observe a half-built graph.

package game

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/dwordly/internal/ladder"
	"github.com/robalobadob/dwordly/internal/words"
)

// Library caches the dictionary graph and the puzzle lists of every level.
type Library struct {
	mu     sync.RWMutex
	loaded *Session                      // dictionary fields only
	levels map[words.Level]levelSnapshot // puzzles + bounds per level

	isolated int // words with no neighbors
}

type levelSnapshot struct {
	puzzles []words.Puzzle
	bounds  ladder.Bounds
}

// NewLibrary returns an empty Library; call Load before handing out sessions.
func NewLibrary() *Library {
	return &Library{}
}

// Load populates the library from src unless it is already loaded.
func (l *Library) Load(ctx context.Context, src words.Source) error {
	l.mu.RLock()
	done := l.loaded != nil
	l.mu.RUnlock()
	if done {
		return nil
	}
	return l.Reload(ctx, src)
}

// Reload rebuilds the library from src and replaces the cached data.
func (l *Library) Reload(ctx context.Context, src words.Source) error {
	var (
		dict  []string
		lists = make([][]words.Puzzle, len(words.Levels))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dict, err = src.Dictionary(gctx)
		if err != nil {
			return fmt.Errorf("game: load dictionary: %w", err)
		}
		return nil
	})
	for i, level := range words.Levels {
		g.Go(func() error {
			ps, err := src.Puzzles(gctx, level)
			if err != nil {
				return fmt.Errorf("game: load %s: %w", level, err)
			}
			lists[i] = ps
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	base := &Session{}
	base.setDictionary(dict)
	levels := make(map[words.Level]levelSnapshot, len(words.Levels))
	for i, level := range words.Levels {
		var s Session
		s.setPuzzles(level, lists[i])
		levels[level] = levelSnapshot{puzzles: s.Puzzles, bounds: s.Bounds}
	}

	isolated := 0
	for _, w := range base.Graph.Words() {
		if base.Graph.Degree(w) == 0 {
			isolated++
		}
	}

	l.mu.Lock()
	l.loaded = base
	l.levels = levels
	l.isolated = isolated
	l.mu.Unlock()

	log.Info().
		Int("words", base.Graph.Len()).
		Int("edges", base.Graph.Edges()).
		Int("isolated", isolated).
		Msg("word library loaded")
	return nil
}

// Session returns a new Session for level, sharing the cached graph.
func (l *Library) Session(level words.Level) (*Session, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.loaded == nil {
		return nil, ErrNoGraph
	}
	snap, ok := l.levels[level]
	if !ok {
		return nil, fmt.Errorf("%w: %q", words.ErrUnknownLevel, level)
	}
	return &Session{
		Dictionary:    l.loaded.Dictionary,
		Graph:         l.loaded.Graph,
		MaxWordLength: l.loaded.MaxWordLength,
		Level:         level,
		Puzzles:       snap.puzzles,
		Bounds:        snap.bounds,
	}, nil
}

// Stats returns the cached word count and puzzle count per level.
func (l *Library) Stats() (wordCount int, puzzles map[words.Level]int) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	puzzles = make(map[words.Level]int, len(l.levels))
	for level, snap := range l.levels {
		puzzles[level] = len(snap.puzzles)
	}
	if l.loaded != nil {
		wordCount = l.loaded.Graph.Len()
	}
	return wordCount, puzzles
}

// Isolated returns how many dictionary words have no one-edit neighbor.
// A puzzle starting on one of them is over before the first move.
func (l *Library) Isolated() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.isolated
}

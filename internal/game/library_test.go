package game_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/dwordly/internal/game"
	"github.com/robalobadob/dwordly/internal/ladder"
	"github.com/robalobadob/dwordly/internal/words"
)

func TestLibrary_LoadOnce(t *testing.T) {
	ctx := context.Background()
	src := newMemSource()
	lib := game.NewLibrary()

	_, err := lib.Session(words.Easy)
	assert.True(t, errors.Is(err, game.ErrNoGraph))

	require.NoError(t, lib.Load(ctx, src))
	require.NoError(t, lib.Load(ctx, src))
	assert.Equal(t, int32(1), src.dictCalls.Load())

	require.NoError(t, lib.Reload(ctx, src))
	assert.Equal(t, int32(2), src.dictCalls.Load())

	n, puzzles := lib.Stats()
	assert.Equal(t, 10, n)
	assert.Equal(t, map[words.Level]int{words.Easy: 2, words.Medium: 1, words.Hard: 3}, puzzles)
	assert.Equal(t, 1, lib.Isolated(), "only zzz has no neighbors")
}

func TestLibrary_SessionsShareGraph(t *testing.T) {
	ctx := context.Background()
	lib := game.NewLibrary()
	require.NoError(t, lib.Load(ctx, newMemSource()))

	easy, err := lib.Session(words.Easy)
	require.NoError(t, err)
	hard, err := lib.Session(words.Hard)
	require.NoError(t, err)

	assert.Same(t, easy.Graph, hard.Graph)
	assert.Equal(t, ladder.Bounds{Min: 1, Max: 3}, easy.Bounds)
	assert.Equal(t, ladder.Bounds{Min: 7, Max: 9}, hard.Bounds)

	_, err = lib.Session(words.Level("expert"))
	assert.True(t, errors.Is(err, words.ErrUnknownLevel))
}

func TestLibrary_LoadErrorKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	src := newMemSource()
	lib := game.NewLibrary()
	require.NoError(t, lib.Load(ctx, src))

	src.err = errors.New("source down")
	assert.Error(t, lib.Reload(ctx, src))

	s, err := lib.Session(words.Medium)
	require.NoError(t, err)
	assert.True(t, s.Graph.Contains("cat"))
}

func TestLibrary_ConcurrentSessions(t *testing.T) {
	ctx := context.Background()
	src := newMemSource()
	lib := game.NewLibrary()
	require.NoError(t, lib.Load(ctx, src))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%4 == 0 {
				assert.NoError(t, lib.Reload(ctx, src))
				return
			}
			s, err := lib.Session(words.Easy)
			if assert.NoError(t, err) {
				_, err = s.SelectGame(nil)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

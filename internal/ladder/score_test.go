package ladder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/dwordly/internal/ladder"
)

var optimalPath = []string{"cat", "cot", "cog", "dog", "do"}

func TestScore_DifficultyScaling(t *testing.T) {
	bounds := ladder.Bounds{Min: 10, Max: 30}

	tests := []struct {
		name   string
		rating float64
		want   []int
	}{
		{"hardest puzzle keeps raw score", 30, []int{79, 83, 87, 91, 100}},
		{"easiest puzzle is pulled down", 10, []int{62, 68, 75, 82, 100}},
		{"middle puzzle", 20, []int{70, 75, 81, 86, 100}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ladder.Score(optimalPath, optimalPath, ladder.Difficulty{Rating: tc.rating, Bounds: bounds})
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestScore_LongerGameScoresLower(t *testing.T) {
	game := []string{"cat", "cats", "cat"}
	d := ladder.Difficulty{Rating: 5, Bounds: ladder.Bounds{Min: 0, Max: 5}}

	got, err := ladder.Score(game, []string{"cat", "at"}, d)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// prefix 1: 65*5/3 capped, 20*1/2, 15*2/3 = 65+10+10
	assert.Equal(t, 85, got[0])
	// prefix 2: 65*5/7, 20, 15*2/4
	assert.Equal(t, 73, got[1])
	for _, s := range got {
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestScore_Errors(t *testing.T) {
	d := ladder.Difficulty{Rating: 1, Bounds: ladder.Bounds{Min: 0, Max: 2}}

	_, err := ladder.Score([]string{"cat"}, nil, d)
	assert.True(t, errors.Is(err, ladder.ErrEmptyPath))

	_, err = ladder.Score(nil, optimalPath, d)
	assert.True(t, errors.Is(err, ladder.ErrEmptyGame))
}

func TestRawScore_NeverExceedsHundred(t *testing.T) {
	for optChars := 1; optChars <= 20; optChars++ {
		for gameChars := 1; gameChars <= 20; gameChars++ {
			for final := 1; final <= 5; final++ {
				raw := ladder.RawScore(optChars, gameChars, 4, 3, 2, final)
				assert.LessOrEqual(t, raw, 100.0)
				assert.GreaterOrEqual(t, raw, 0.0)
			}
		}
	}
}

func TestDifficultyFactor(t *testing.T) {
	b := ladder.Bounds{Min: 2, Max: 6}

	assert.Equal(t, 0.0, ladder.Difficulty{Rating: 2, Bounds: b}.Factor())
	assert.Equal(t, 1.0, ladder.Difficulty{Rating: 6, Bounds: b}.Factor())
	assert.Equal(t, 0.5, ladder.Difficulty{Rating: 4, Bounds: b}.Factor())
	assert.Equal(t, 1.0, ladder.Difficulty{Rating: 9, Bounds: b}.Factor())

	single := ladder.Bounds{Min: 3, Max: 3}
	assert.Equal(t, 0.5, ladder.Difficulty{Rating: 3, Bounds: single}.Factor())
}

func TestBoundsOf(t *testing.T) {
	assert.Equal(t, ladder.Bounds{Min: 1.5, Max: 9}, ladder.BoundsOf([]float64{4, 1.5, 9, 3}))
	assert.Equal(t, ladder.Bounds{}, ladder.BoundsOf(nil))
}

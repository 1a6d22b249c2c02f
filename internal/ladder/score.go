// internal/ladder/score.go
//
// Scoring engine. A finished game is scored once per prefix so the client can
// show a running score as the ladder was played.
//
// Raw score (0–100):
//   - 65: total characters used, relative to the optimal path
//   - 20: number of words played, relative to the optimal path (symmetric ratio)
//   - 15: length of the final word, relative to the optimal final word
//
// The raw score is then scaled by the puzzle's difficulty within its level:
// easy puzzles are pulled down harder unless the raw score is already near 100.

package ladder

import (
	"errors"
	"math"
)

const (
	charWeight  = 65.0
	pathWeight  = 20.0
	finalWeight = 15.0
)

var (
	// ErrEmptyPath is returned when scoring against an empty optimal path.
	ErrEmptyPath = errors.New("ladder: optimal path is empty")

	// ErrEmptyGame is returned when scoring a game with no words.
	ErrEmptyGame = errors.New("ladder: game has no words")
)

// Bounds is the range of difficulty ratings within one level.
type Bounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// BoundsOf returns the min/max of ratings. Zero Bounds for no ratings.
func BoundsOf(ratings []float64) Bounds {
	if len(ratings) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: ratings[0], Max: ratings[0]}
	for _, r := range ratings[1:] {
		b.Min = math.Min(b.Min, r)
		b.Max = math.Max(b.Max, r)
	}
	return b
}

// Difficulty is a puzzle rating together with the bounds of its level.
type Difficulty struct {
	Rating float64 `json:"rating"`
	Bounds Bounds  `json:"bounds"`
}

// Factor normalizes Rating into [0,1]: 0 for the easiest puzzle of the level,
// 1 for the hardest. A level whose bounds collapse to a single rating has no
// spread to normalize against and yields 0.5.
func (d Difficulty) Factor() float64 {
	span := d.Bounds.Max - d.Bounds.Min
	if span <= 0 {
		return 0.5
	}
	f := (d.Rating - d.Bounds.Min) / span
	return math.Max(0, math.Min(1, f))
}

// Score returns the cumulative score after each word of fullGame.
// The i-th entry scores fullGame[:i+1] against optimal.
func Score(fullGame, optimal []string, d Difficulty) ([]int, error) {
	if len(optimal) == 0 {
		return nil, ErrEmptyPath
	}
	if len(fullGame) == 0 {
		return nil, ErrEmptyGame
	}

	optChars := totalChars(optimal)
	optFinal := len(optimal[len(optimal)-1])
	factor := d.Factor()

	scores := make([]int, 0, len(fullGame))
	gameChars := 0
	for i, word := range fullGame {
		gameChars += len(word)
		played := i + 1

		raw := RawScore(optChars, gameChars, len(optimal), played, optFinal, len(word))
		scaled := raw * (1 - (100-raw)*(1-factor)/100)
		scores = append(scores, int(math.Floor(scaled)))
	}
	return scores, nil
}

// RawScore is the unscaled 0–100 score for a prefix given the optimal path's
// character count, word count and final word length, and the prefix's own.
func RawScore(optChars, gameChars, optLen, gameLen, optFinal, gameFinal int) float64 {
	score := 0.0
	if gameChars > 0 {
		score += math.Min(charWeight, charWeight*float64(optChars)/float64(gameChars))
	}
	if lo, hi := min(gameLen, optLen), max(gameLen, optLen); hi > 0 {
		score += pathWeight * float64(lo) / float64(hi)
	}
	if gameFinal > 0 {
		score += math.Min(finalWeight, finalWeight*float64(optFinal)/float64(gameFinal))
	}
	return score
}

func totalChars(words []string) int {
	n := 0
	for _, w := range words {
		n += len(w)
	}
	return n
}

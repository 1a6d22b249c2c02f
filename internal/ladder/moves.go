// internal/ladder/moves.go
//
// Move validation for a game in progress. All functions are pure queries over
// the played sequence and the graph; they never modify either.

package ladder

import "slices"

// moveAllowance is how many words past the optimal path length a player may
// play before the game is out of moves.
const moveAllowance = 4

// MovesRemaining reports whether the player can still make a move.
//
// There are no moves when nothing has been played, when the last word is a
// single letter, when more than len(optimal)+4 words have been played, or when
// every neighbor of the last word has already been played.
func MovesRemaining(played, optimal []string, g *Graph) bool {
	if len(played) == 0 {
		return false
	}
	last := played[len(played)-1]
	if len(last) == 1 || len(played) > len(optimal)+moveAllowance {
		return false
	}
	for _, next := range g.Neighbors(last) {
		if !slices.Contains(played, next) {
			return true
		}
	}
	return false
}

// IsLegalNext reports whether candidate may follow the last played word:
// it must be adjacent to it and must not have been played before.
func IsLegalNext(played []string, candidate string, g *Graph) bool {
	if len(played) == 0 {
		return false
	}
	if slices.Contains(played, candidate) {
		return false
	}
	return g.Adjacent(played[len(played)-1], candidate)
}

// LegalMoves lists, in sorted order, every word IsLegalNext would accept.
func LegalMoves(played []string, g *Graph) []string {
	if len(played) == 0 {
		return nil
	}
	var out []string
	for _, next := range g.Neighbors(played[len(played)-1]) {
		if !slices.Contains(played, next) {
			out = append(out, next)
		}
	}
	return out
}

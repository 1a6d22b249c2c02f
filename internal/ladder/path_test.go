package ladder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/dwordly/internal/ladder"
)

func TestShortestPath_ReachesShortestWord(t *testing.T) {
	g := ladder.BuildGraph(sampleDict)

	path := ladder.ShortestPath(g, "cat")
	assert.Equal(t, []string{"cat", "cot", "cog", "dog", "do"}, path)
}

func TestShortestPath_EdgesAreValid(t *testing.T) {
	dict := []string{
		"plane", "plan", "pan", "an", "a", "pane", "lane", "line", "lie", "li",
		"crane", "cane", "can", "ran", "rain", "brain", "bran", "train",
	}
	g := ladder.BuildGraph(dict)

	for _, start := range dict {
		path := ladder.ShortestPath(g, start)
		require.NotEmpty(t, path)
		assert.Equal(t, start, path[0])
		for i := 1; i < len(path); i++ {
			assert.True(t, g.Adjacent(path[i-1], path[i]), "%v: %q→%q", path, path[i-1], path[i])
		}
	}
	assert.Equal(t, "a", last(ladder.ShortestPath(g, "brain")))
	assert.Len(t, ladder.ShortestPath(g, "plane"), 5)
}

func TestShortestPath_TieGoesToFirstDequeued(t *testing.T) {
	g := ladder.BuildGraph([]string{"cat", "bat", "ca", "at"})

	// "at" and "ca" are both one hop away; "at" sorts first and is dequeued first.
	assert.Equal(t, []string{"cat", "at"}, ladder.ShortestPath(g, "cat"))
}

func TestShortestPath_NothingShorterFallsBackToFirstNeighbor(t *testing.T) {
	g := ladder.BuildGraph([]string{"cot", "cat", "cut"})

	assert.Equal(t, []string{"cot", "cat"}, ladder.ShortestPath(g, "cot"))
}

func TestShortestPath_Isolated(t *testing.T) {
	g := ladder.BuildGraph([]string{"cat", "dog"})

	assert.Equal(t, []string{"cat"}, ladder.ShortestPath(g, "cat"))
	assert.Equal(t, []string{"zebra"}, ladder.ShortestPath(g, "zebra"))
}

// TestShortestPath_Minimal checks that no strictly shorter word is reachable in
// fewer hops than the returned path uses.
func TestShortestPath_Minimal(t *testing.T) {
	dict := []string{"stone", "stoe", "toe", "to", "tone", "one", "on", "o", "store", "tore", "ore", "or"}
	g := ladder.BuildGraph(dict)

	path := ladder.ShortestPath(g, "stone")
	hops := len(path) - 1
	final := last(path)

	depth := bfsDepths(g, "stone")
	for w, d := range depth {
		if len(w) < len(final) {
			assert.GreaterOrEqual(t, d, hops, "%q (len %d) reachable in %d hops", w, len(w), d)
		}
	}
	assert.Equal(t, "o", final)
}

func last(path []string) string { return path[len(path)-1] }

func bfsDepths(g *ladder.Graph, start string) map[string]int {
	depth := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur) {
			if _, seen := depth[n]; !seen {
				depth[n] = depth[cur] + 1
				queue = append(queue, n)
			}
		}
	}
	return depth
}

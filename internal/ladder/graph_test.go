package ladder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/dwordly/internal/ladder"
)

var sampleDict = []string{"cat", "cot", "cog", "dog", "do", "cats"}

func TestBuildGraph_SampleNeighbors(t *testing.T) {
	g := ladder.BuildGraph(sampleDict)

	assert.Equal(t, []string{"cats", "cot"}, g.Neighbors("cat"))
	assert.Equal(t, []string{"cat", "cog"}, g.Neighbors("cot"))
	assert.Equal(t, []string{"cot", "dog"}, g.Neighbors("cog"))
	assert.Equal(t, []string{"cog", "do"}, g.Neighbors("dog"))
	assert.Equal(t, []string{"dog"}, g.Neighbors("do"))
	assert.Equal(t, []string{"cat"}, g.Neighbors("cats"))
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 5, g.Edges())
}

func TestBuildGraph_SymmetricWithoutSelfLoops(t *testing.T) {
	dict := []string{
		"stone", "stoke", "stove", "store", "tone", "tore", "one", "ore", "or", "on",
		"a", "an", "at", "ant", "cant", "can", "cane", "crane", "plane", "plan", "pan",
		"bat", "cat", "at", "ca", "abc", "bac", "bc",
	}
	g := ladder.BuildGraph(dict)

	for _, a := range g.Words() {
		assert.False(t, g.Adjacent(a, a), "self-loop on %q", a)
		for _, b := range g.Neighbors(a) {
			assert.True(t, g.Adjacent(b, a), "%q→%q has no reverse edge", a, b)
		}
	}
}

func TestBuildGraph_TranspositionIsNotAnEdge(t *testing.T) {
	g := ladder.BuildGraph([]string{"abc", "bac", "bc"})

	assert.False(t, g.Adjacent("abc", "bac"))
	assert.Equal(t, []string{"bc"}, g.Neighbors("abc"))
	assert.Equal(t, []string{"bc"}, g.Neighbors("bac"))
	assert.Equal(t, []string{"abc", "bac"}, g.Neighbors("bc"))
}

func TestBuildGraph_OrderIndependent(t *testing.T) {
	forward := ladder.BuildGraph(sampleDict)

	reversed := make([]string, len(sampleDict))
	for i, w := range sampleDict {
		reversed[len(sampleDict)-1-i] = w
	}
	backward := ladder.BuildGraph(reversed)

	require.Equal(t, forward.Words(), backward.Words())
	for _, w := range forward.Words() {
		assert.Equal(t, forward.Neighbors(w), backward.Neighbors(w), "neighbors of %q", w)
	}
}

func TestBuildGraph_IsolatedAndDuplicateWords(t *testing.T) {
	g := ladder.BuildGraph([]string{"cat", "zzz", "cat", "cot"})

	assert.True(t, g.Contains("zzz"))
	assert.Empty(t, g.Neighbors("zzz"))
	assert.Equal(t, 0, g.Degree("zzz"))
	assert.Equal(t, []string{"cot"}, g.Neighbors("cat"))
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 1, g.Edges())
}

func TestBuildGraph_Empty(t *testing.T) {
	g := ladder.BuildGraph(nil)

	assert.Equal(t, 0, g.Len())
	assert.False(t, g.Contains("cat"))
	assert.Nil(t, g.Neighbors("cat"))
}

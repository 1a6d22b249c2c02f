// internal/ladder/graph.go
//
// Adjacency builder for the word-ladder game.
// Responsibilities:
//   - Link every dictionary word to the words one edit away from it:
//     a single-letter substitution (same length) or a single-letter
//     deletion/insertion (length differs by one).
//   - Do it in one pass using pattern keys instead of comparing every pair.
//
// Pattern keys:
//   - substitution key: the word with one position replaced by "_"  (cat → c_t)
//   - deletion key:     the word with one position removed          (cat → ct)
//
// Two same-length words sharing a substitution key differ by exactly one letter.
// A deletion key that equals another dictionary word means the two words differ
// by one removed letter. Shared deletion keys alone never create an edge
// (abc/bac both delete to "bc" but are a transposition, not one edit).
//
// The resulting Graph is symmetric, has no self-loops, and is read-only once built.

package ladder

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// wildcard marks the blanked position in a substitution key.
const wildcard = "_"

// Graph maps each dictionary word to the set of words one edit away.
type Graph struct {
	neighbors map[string]mapset.Set[string]
	edges     int
}

// BuildGraph constructs the adjacency graph for dict.
// Every word in dict is present in the result, isolated words included.
func BuildGraph(dict []string) *Graph {
	g := &Graph{neighbors: make(map[string]mapset.Set[string], len(dict))}

	// owners maps a pattern key to the words that generated it so far.
	owners := make(map[string]mapset.Set[string], len(dict)*4)

	for _, word := range dict {
		if _, ok := g.neighbors[word]; !ok {
			g.neighbors[word] = mapset.NewThreadUnsafeSet[string]()
		}

		// An earlier, longer word deletes down to exactly this word.
		if longer, ok := owners[word]; ok {
			longer.Each(func(other string) bool {
				g.link(word, other)
				return false
			})
		}

		for i := 0; i < len(word); i++ {
			sub := word[:i] + wildcard + word[i+1:]
			if peers, ok := owners[sub]; ok {
				peers.Each(func(other string) bool {
					if other != word {
						g.link(word, other)
					}
					return false
				})
			}
			own(owners, sub, word)

			del := word[:i] + word[i+1:]
			// This word deletes down to an earlier word.
			if _, ok := g.neighbors[del]; ok {
				g.link(word, del)
			}
			own(owners, del, word)
		}
	}
	return g
}

// own registers word as an owner of key.
func own(owners map[string]mapset.Set[string], key, word string) {
	set, ok := owners[key]
	if !ok {
		set = mapset.NewThreadUnsafeSet[string]()
		owners[key] = set
	}
	set.Add(word)
}

// link adds the undirected edge a–b.
func (g *Graph) link(a, b string) {
	if a == b {
		return
	}
	if g.neighbors[a].Add(b) {
		g.edges++
	}
	g.neighbors[b].Add(a)
}

// Contains reports whether word is a dictionary word in the graph.
func (g *Graph) Contains(word string) bool {
	_, ok := g.neighbors[word]
	return ok
}

// Neighbors returns the neighbors of word in sorted order.
// Unknown words have no neighbors.
func (g *Graph) Neighbors(word string) []string {
	set, ok := g.neighbors[word]
	if !ok {
		return nil
	}
	out := set.ToSlice()
	slices.Sort(out)
	return out
}

// Adjacent reports whether a and b are one edit apart.
func (g *Graph) Adjacent(a, b string) bool {
	set, ok := g.neighbors[a]
	return ok && set.Contains(b)
}

// Degree returns the number of neighbors of word.
func (g *Graph) Degree(word string) int {
	set, ok := g.neighbors[word]
	if !ok {
		return 0
	}
	return set.Cardinality()
}

// Len returns the number of distinct words in the graph.
func (g *Graph) Len() int { return len(g.neighbors) }

// Edges returns the number of undirected edges.
func (g *Graph) Edges() int { return g.edges }

// Words returns every word in the graph, sorted.
func (g *Graph) Words() []string {
	out := make([]string, 0, len(g.neighbors))
	for w := range g.neighbors {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

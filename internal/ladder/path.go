// internal/ladder/path.go
//
// Shortest-path finder: the "optimal path" of a puzzle is the breadth-first
// route from the start word down to the shortest word reachable from it.

package ladder

// walker carries BFS state for ShortestPath.
type walker struct {
	graph    *Graph
	queue    []string
	visited  map[string]bool
	parent   map[string]string
	order    []string // discovery order of every non-start word
	shortest string
}

// ShortestPath returns the path from start to the shortest word reachable
// from it. Ties between equally short words go to the one dequeued first.
//
// Degenerate cases:
//   - start has reachable words but none shorter than itself: the path is
//     start followed by the first word discovered (always a neighbor of start).
//   - nothing is reachable (isolated or unknown start): the path is [start].
//
// The result is never empty and always begins with start.
func ShortestPath(g *Graph, start string) []string {
	w := &walker{
		graph:    g,
		queue:    []string{start},
		visited:  map[string]bool{start: true},
		parent:   make(map[string]string),
		shortest: start,
	}
	w.loop()
	return w.path(start)
}

// loop drains the queue, expanding only words that are in the dictionary.
func (w *walker) loop() {
	for len(w.queue) > 0 {
		word := w.queue[0]
		w.queue = w.queue[1:]

		if !w.graph.Contains(word) {
			continue
		}
		if len(word) < len(w.shortest) {
			w.shortest = word
		}
		for _, nbr := range w.graph.Neighbors(word) {
			if w.visited[nbr] {
				continue
			}
			w.visited[nbr] = true
			w.parent[nbr] = word
			w.order = append(w.order, nbr)
			w.queue = append(w.queue, nbr)
		}
	}
}

// path rebuilds start → shortest from the parent links.
func (w *walker) path(start string) []string {
	if _, ok := w.parent[w.shortest]; !ok {
		if len(w.order) > 0 {
			return []string{start, w.order[0]}
		}
		return []string{start}
	}

	path := []string{}
	for cur := w.shortest; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → shortest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

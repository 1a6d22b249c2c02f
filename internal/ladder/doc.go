// Package ladder implements the word-ladder core: the one-edit adjacency graph
// over a dictionary, the breadth-first optimal path, move validation, and
// scoring of finished games.
//
// Everything here is synchronous and allocation-only; a Graph is immutable
// once BuildGraph returns and may be shared freely between readers.
package ladder

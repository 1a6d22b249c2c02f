// internal/words/words.go
//
// Dictionary and puzzle-list sources for the ladder game.
//
// Responsibilities:
//   - Define difficulty levels and the Puzzle type ([word, rating] on the wire).
//   - Define Source, the boundary to wherever dictionaries and puzzle lists live.
//   - Provide FileSource: JSON files from a directory, or the embedded defaults.
//   - Normalize and validate words (lowercase ASCII letters only).
//
// File layout (directory or embedded):
//   dictionary.json   ["cat","cot",...]
//   easy.json         [["cats",1.5],["bait",2.0],...]
//   medium.json, hard.json
//
// Environment (see internal/config):
//   WORDS_DICTIONARY_FILE=/path/to/dictionary.json
//   WORDS_PUZZLES_DIR=/path/to/dir-with-level-files

package words

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/robalobadob/dwordly/assets"
)

// Level is a difficulty level.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
)

// Levels lists every level in ascending difficulty.
var Levels = []Level{Easy, Medium, Hard}

var (
	ErrUnknownLevel = errors.New("words: unknown level")
	ErrInvalidWord  = errors.New("words: invalid word")
	ErrEmpty        = errors.New("words: list is empty")
)

// ParseLevel maps a string to a Level, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case Easy, Medium, Hard:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Puzzle is a start word and its difficulty rating.
// It is encoded as a two-element JSON array: ["plane", 4.1].
type Puzzle struct {
	Word   string
	Rating float64
}

// MarshalJSON encodes p as [word, rating].
func (p Puzzle) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Word, p.Rating})
}

// UnmarshalJSON decodes a [word, rating] pair.
func (p *Puzzle) UnmarshalJSON(b []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("puzzle: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("puzzle: want [word, rating], got %d elements", len(pair))
	}
	var word string
	if err := json.Unmarshal(pair[0], &word); err != nil {
		return fmt.Errorf("puzzle word: %w", err)
	}
	var rating float64
	if err := json.Unmarshal(pair[1], &rating); err != nil {
		return fmt.Errorf("puzzle rating: %w", err)
	}
	w, err := Normalize(word)
	if err != nil {
		return err
	}
	p.Word, p.Rating = w, rating
	return nil
}

// Source supplies the dictionary and the per-level puzzle lists.
type Source interface {
	// Dictionary returns every playable word.
	Dictionary(ctx context.Context) ([]string, error)

	// Puzzles returns the puzzle list for one level.
	Puzzles(ctx context.Context, level Level) ([]Puzzle, error)
}

// FileSource reads JSON word data from the filesystem, falling back to the
// embedded defaults for anything not configured.
type FileSource struct {
	DictionaryFile string // optional path to dictionary.json
	PuzzlesDir     string // optional directory holding <level>.json
}

// Dictionary loads, normalizes and validates the dictionary.
func (s FileSource) Dictionary(ctx context.Context) ([]string, error) {
	var raw []string
	if err := s.decode(s.DictionaryFile, "dictionary.json", &raw); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		n, err := Normalize(w)
		if err != nil {
			return nil, fmt.Errorf("dictionary: %w", err)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("dictionary: %w", ErrEmpty)
	}
	return out, nil
}

// Puzzles loads the puzzle list for level.
func (s FileSource) Puzzles(ctx context.Context, level Level) ([]Puzzle, error) {
	if _, err := ParseLevel(string(level)); err != nil {
		return nil, err
	}
	name := string(level) + ".json"
	path := ""
	if s.PuzzlesDir != "" {
		path = filepath.Join(s.PuzzlesDir, name)
	}
	var out []Puzzle
	if err := s.decode(path, name, &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmpty)
	}
	return out, nil
}

// decode reads path when set, otherwise the embedded file name.
func (s FileSource) decode(path, name string, v any) error {
	var (
		b   []byte
		err error
	)
	if path != "" {
		b, err = os.ReadFile(path)
	} else {
		b, err = fs.ReadFile(assets.Data, name)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// Normalize trims and lowercases w and checks it is a non-empty run of a–z.
func Normalize(w string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(w))
	if n == "" || !isAlpha(n) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, w)
	}
	return n, nil
}

// MaxLength returns the length of the longest word in dict.
func MaxLength(dict []string) int {
	n := 0
	for _, w := range dict {
		n = max(n, len(w))
	}
	return n
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

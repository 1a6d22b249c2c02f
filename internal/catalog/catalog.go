// internal/catalog/catalog.go
//
// SQLite-backed words.Source. The catalog holds the dictionary and the
// easy/medium/hard puzzle lists so operators can curate them without
// rebuilding the binary. Seed copies any other Source (normally the
// embedded JSON) into an empty catalog.

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/dwordly/assets"
	"github.com/robalobadob/dwordly/internal/words"
)

// ErrEmpty is returned when the catalog has no rows for a request.
var ErrEmpty = errors.New("catalog: no rows")

// Store reads dictionary and puzzle data from SQLite.
type Store struct{ db *sql.DB }

// Open opens dsn, applies migrations and returns a ready Store.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", dsn, err)
	}
	if err := migrate(db, assets.Migrations()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("catalog: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Empty reports whether no dictionary words are stored yet.
func (s *Store) Empty(ctx context.Context) (bool, error) {
	var cnt int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt == 0, nil
}

// Seed replaces the catalog contents with everything src provides, in one
// transaction.
func (s *Store) Seed(ctx context.Context, src words.Source) error {
	dict, err := src.Dictionary(ctx)
	if err != nil {
		return fmt.Errorf("catalog: seed dictionary: %w", err)
	}
	lists := make(map[words.Level][]words.Puzzle, len(words.Levels))
	for _, level := range words.Levels {
		ps, err := src.Puzzles(ctx, level)
		if err != nil {
			return fmt.Errorf("catalog: seed %s: %w", level, err)
		}
		lists[level] = ps
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return fmt.Errorf("catalog: clear words: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM puzzles`); err != nil {
		return fmt.Errorf("catalog: clear puzzles: %w", err)
	}
	for i, w := range dict {
		if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO words (word, pos) VALUES (?, ?)`, w, i); err != nil {
			return fmt.Errorf("catalog: insert word %q: %w", w, err)
		}
	}
	for _, level := range words.Levels {
		for i, p := range lists[level] {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO puzzles (level, pos, word, rating) VALUES (?, ?, ?, ?)`,
				string(level), i, p.Word, p.Rating,
			); err != nil {
				return fmt.Errorf("catalog: insert %s puzzle %q: %w", level, p.Word, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info().Int("words", len(dict)).Msg("catalog seeded")
	return nil
}

// Dictionary returns every stored word in insertion order.
func (s *Store) Dictionary(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word FROM words ORDER BY pos ASC`)
	if err != nil {
		return nil, fmt.Errorf("catalog: query words: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: dictionary", ErrEmpty)
	}
	return out, nil
}

// Puzzles returns the stored puzzle list for level.
func (s *Store) Puzzles(ctx context.Context, level words.Level) ([]words.Puzzle, error) {
	if _, err := words.ParseLevel(string(level)); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, rating FROM puzzles WHERE level=? ORDER BY pos ASC`, string(level))
	if err != nil {
		return nil, fmt.Errorf("catalog: query puzzles: %w", err)
	}
	defer rows.Close()

	var out []words.Puzzle
	for rows.Next() {
		var p words.Puzzle
		if err := rows.Scan(&p.Word, &p.Rating); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s puzzles", ErrEmpty, level)
	}
	return out, nil
}

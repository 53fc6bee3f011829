package lexicon

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// LoadDB reads a word list from a SQLite database. The database must have a
// `words` table with a `word` column; rows are read in rowid order so the
// resulting Lexicon is reproducible.
func LoadDB(path string) (*Lexicon, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening word database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT word FROM words ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying word database: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scanning word row: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading word rows: %w", err)
	}

	lex := New(words)
	log.Debug().Str("path", path).Int("words", lex.Len()).Msg("loaded word database")
	return lex, nil
}

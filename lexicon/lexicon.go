package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A Lexicon is the candidate word list for a fill. Words are upper-cased
// and deduplicated at construction; first-seen order is preserved so that
// solver runs are reproducible for a given list.
type Lexicon struct {
	words []string
	byLen map[int][]string
}

// New builds a Lexicon from raw words.
func New(words []string) *Lexicon {
	upper := cases.Upper(language.Und)
	lex := &Lexicon{byLen: make(map[int][]string)}
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		w = upper.String(strings.TrimSpace(w))
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		lex.words = append(lex.words, w)
		lex.byLen[len(w)] = append(lex.byLen[len(w)], w)
	}
	return lex
}

// Load reads a word list, one word per line. Blank lines are skipped.
func Load(r io.Reader) (*Lexicon, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	lex := New(words)
	log.Debug().Int("words", lex.Len()).Msg("loaded word list")
	return lex, nil
}

// LoadFile reads the word list at path.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Words returns all words in first-seen order. Callers must not modify the
// returned slice.
func (l *Lexicon) Words() []string { return l.words }

// OfLength returns the words of exactly n letters, in first-seen order.
// Callers must not modify the returned slice.
func (l *Lexicon) OfLength(n int) []string { return l.byLen[n] }

// Len returns the number of distinct words.
func (l *Lexicon) Len() int { return len(l.words) }

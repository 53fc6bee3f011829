// Package bundle reads one-file puzzle bundles: a YAML document carrying
// the structure rows and the word list together, handy for fixtures and for
// sharing a puzzle as a single artifact.
package bundle

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crossfill/crossfill/grid"
	"github.com/crossfill/crossfill/lexicon"
)

// A Bundle is the on-disk form of a puzzle bundle.
type Bundle struct {
	Structure []string `yaml:"structure"`
	Words     []string `yaml:"words"`
}

// Parse reads a YAML bundle and builds its grid and lexicon.
func Parse(r io.Reader) (*grid.Grid, *lexicon.Lexicon, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading bundle: %w", err)
	}
	var b Bundle
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return nil, nil, fmt.Errorf("parsing bundle: %w", err)
	}
	if len(b.Words) == 0 {
		return nil, nil, fmt.Errorf("bundle has no words")
	}
	g, err := grid.ParseLines(b.Structure)
	if err != nil {
		return nil, nil, fmt.Errorf("bundle structure: %w", err)
	}
	return g, lexicon.New(b.Words), nil
}

// ParseFile reads the bundle at path.
func ParseFile(path string) (*grid.Grid, *lexicon.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Parse(f)
}

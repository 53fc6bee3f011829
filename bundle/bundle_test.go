package bundle

import (
	"strings"
	"testing"

	"github.com/matryer/is"
)

const crossBundle = `
structure:
  - "#_#"
  - "___"
  - "#_#"
words:
  - cat
  - car
  - dog
`

func TestParse(t *testing.T) {
	is := is.New(t)
	g, lex, err := Parse(strings.NewReader(crossBundle))
	is.NoErr(err)
	is.Equal(len(g.Slots()), 2)
	is.Equal(lex.Words(), []string{"CAT", "CAR", "DOG"})
}

func TestParseRejectsBadBundles(t *testing.T) {
	is := is.New(t)

	_, _, err := Parse(strings.NewReader("structure: [\"___\"]\nwords: []\n"))
	is.True(err != nil) // no words

	_, _, err = Parse(strings.NewReader("words: [cat]\n"))
	is.True(err != nil) // no structure

	_, _, err = Parse(strings.NewReader("{not yaml"))
	is.True(err != nil)
}

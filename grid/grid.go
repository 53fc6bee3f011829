package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// FillableRune marks a fillable cell in a structure file. Every other rune
// is a blocked cell.
const FillableRune = '_'

var (
	ErrEmptyStructure = errors.New("structure has no rows")
	ErrNoSlots        = errors.New("structure defines no slots")
)

// A Grid is the static description of a puzzle: its dimensions, which cells
// take letters, the slots derived from the fillable runs, and the
// precomputed overlap map between every pair of crossing slots. A Grid is
// immutable once built.
type Grid struct {
	height, width int
	cells         [][]bool

	slots     []Slot
	overlaps  map[[2]Slot]Overlap
	neighbors map[Slot][]Slot
}

// An Overlap is the shared cell of two crossing slots, expressed as local
// letter indices: position I in the first slot and position J in the second
// must hold the same letter.
type Overlap struct {
	I, J int
}

// Parse reads a structure file. Each line is a row; FillableRune cells take
// letters, anything else is blocked. Rows shorter than the widest row are
// padded with blocked cells, as a structure file is usually ragged on the
// right.
func Parse(r io.Reader) (*Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading structure: %w", err)
	}
	// Drop trailing blank lines; editors add them.
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return ParseLines(rows)
}

// ParseFile parses the structure file at path.
func ParseFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// ParseLines builds a Grid from structure rows already split into lines.
func ParseLines(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyStructure
	}
	width := 0
	for _, row := range rows {
		if n := len([]rune(row)); n > width {
			width = n
		}
	}
	if width == 0 {
		return nil, ErrEmptyStructure
	}

	g := &Grid{
		height:    len(rows),
		width:     width,
		cells:     make([][]bool, len(rows)),
		overlaps:  make(map[[2]Slot]Overlap),
		neighbors: make(map[Slot][]Slot),
	}
	for i, row := range rows {
		g.cells[i] = make([]bool, width)
		for j, r := range []rune(row) {
			g.cells[i][j] = r == FillableRune
		}
	}

	g.deriveSlots()
	if len(g.slots) == 0 {
		return nil, ErrNoSlots
	}
	g.computeOverlaps()

	log.Debug().
		Int("height", g.height).
		Int("width", g.width).
		Int("slots", len(g.slots)).
		Int("arcs", len(g.overlaps)).
		Msg("parsed structure")
	return g, nil
}

// deriveSlots finds every maximal run of at least two fillable cells, in
// each direction. A lone fillable cell belongs to no slot and stays blank.
func (g *Grid) deriveSlots() {
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			if !g.cells[i][j] || (j > 0 && g.cells[i][j-1]) {
				continue
			}
			length := 0
			for k := j; k < g.width && g.cells[i][k]; k++ {
				length++
			}
			if length > 1 {
				g.slots = append(g.slots, Slot{Row: i, Col: j, Dir: Across, Length: length})
			}
		}
	}
	for j := 0; j < g.width; j++ {
		for i := 0; i < g.height; i++ {
			if !g.cells[i][j] || (i > 0 && g.cells[i-1][j]) {
				continue
			}
			length := 0
			for k := i; k < g.height && g.cells[k][j]; k++ {
				length++
			}
			if length > 1 {
				g.slots = append(g.slots, Slot{Row: i, Col: j, Dir: Down, Length: length})
			}
		}
	}
	sort.Slice(g.slots, func(a, b int) bool {
		return g.slots[a].Compare(g.slots[b]) < 0
	})
}

// computeOverlaps records the crossing cell for every across/down pair that
// shares one. Both orientations of each pair are stored, with the indices
// swapped, so lookups never need to canonicalize the pair.
func (g *Grid) computeOverlaps() {
	for _, a := range g.slots {
		if a.Dir != Across {
			continue
		}
		for _, d := range g.slots {
			if d.Dir != Down {
				continue
			}
			if d.Col < a.Col || d.Col >= a.Col+a.Length {
				continue
			}
			if a.Row < d.Row || a.Row >= d.Row+d.Length {
				continue
			}
			ov := Overlap{I: d.Col - a.Col, J: a.Row - d.Row}
			g.overlaps[[2]Slot{a, d}] = ov
			g.overlaps[[2]Slot{d, a}] = Overlap{I: ov.J, J: ov.I}
			g.neighbors[a] = append(g.neighbors[a], d)
			g.neighbors[d] = append(g.neighbors[d], a)
		}
	}
	for _, ns := range g.neighbors {
		sort.Slice(ns, func(a, b int) bool { return ns[a].Compare(ns[b]) < 0 })
	}
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Fillable reports whether the cell at (row, col) takes a letter.
func (g *Grid) Fillable(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width && g.cells[row][col]
}

// Slots returns every slot in canonical order. Callers must not modify the
// returned slice.
func (g *Grid) Slots() []Slot { return g.slots }

// Overlap returns the crossing-cell indices for the ordered pair (a, b), and
// whether the two slots cross at all.
func (g *Grid) Overlap(a, b Slot) (Overlap, bool) {
	ov, ok := g.overlaps[[2]Slot{a, b}]
	return ov, ok
}

// Neighbors returns the slots crossing s, in canonical order. Callers must
// not modify the returned slice.
func (g *Grid) Neighbors(s Slot) []Slot { return g.neighbors[s] }

// Degree returns the number of slots crossing s.
func (g *Grid) Degree(s Slot) int { return len(g.neighbors[s]) }

package grid

import "fmt"

// Direction is the orientation of a slot.
type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// A Slot is one crossword variable: a maximal run of fillable cells,
// identified by its starting cell, direction, and length. Slots are
// comparable; two slots are the same variable iff all four fields match.
type Slot struct {
	Row, Col int
	Dir      Direction
	Length   int
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d) %s %d", s.Row, s.Col, s.Dir, s.Length)
}

// Compare defines the canonical total order on slots: row, then column,
// then across before down, then length. Every iteration in the solver
// follows this order so that runs are reproducible.
func (s Slot) Compare(o Slot) int {
	switch {
	case s.Row != o.Row:
		return s.Row - o.Row
	case s.Col != o.Col:
		return s.Col - o.Col
	case s.Dir != o.Dir:
		return int(s.Dir) - int(o.Dir)
	default:
		return s.Length - o.Length
	}
}

// Cell returns the grid coordinates of the k-th letter of the slot.
func (s Slot) Cell(k int) (row, col int) {
	if s.Dir == Down {
		return s.Row + k, s.Col
	}
	return s.Row, s.Col + k
}

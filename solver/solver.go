// Package solver fills a crossword grid with words from a lexicon. It is a
// constraint-satisfaction solver: slots are variables, words are values,
// and the constraints are word length, crossing-letter agreement, and
// pairwise-distinct words. Search is depth-first backtracking with
// minimum-remaining-values and degree variable ordering,
// least-constraining-value value ordering, and AC-3 inference after every
// tentative assignment.
package solver

import (
	"errors"
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/crossfill/crossfill/grid"
	"github.com/crossfill/crossfill/lexicon"
)

// ErrNoSolution is returned by Solve when the search space is exhausted
// without a complete assignment. It is an expected outcome, not a fault.
var ErrNoSolution = errors.New("no solution found")

// An Assignment maps each slot to its chosen word. Solve returns a complete
// Assignment or ErrNoSolution, never a partial one.
type Assignment map[grid.Slot]string

// Stats holds search-effort counters for a Solve call.
type Stats struct {
	Nodes      int // search nodes expanded
	Backtracks int // candidate words undone
	Revisions  int // domain prunings during propagation
}

// A Solver owns the mutable per-slot domains for one fill. It is
// single-use: construct with New, call Solve once.
type Solver struct {
	g       *grid.Grid
	domains domains

	nodes, backtracks, revisions int
}

// New seeds every slot's domain with the full word list, as node
// consistency has not run yet.
func New(g *grid.Grid, lex *lexicon.Lexicon) *Solver {
	s := &Solver{g: g, domains: make(domains, len(g.Slots()))}
	for _, sl := range g.Slots() {
		s.domains[sl] = append([]string(nil), lex.Words()...)
	}
	return s
}

// Solve enforces node and arc consistency, then backtracks to a complete
// assignment. Returns ErrNoSolution if the puzzle cannot be filled.
func (s *Solver) Solve() (Assignment, error) {
	s.enforceNodeConsistency()
	if !s.ac3(s.allArcs(), nil) {
		log.Debug().Msg("infeasible after setup propagation")
		return nil, ErrNoSolution
	}
	asg := s.backtrack(Assignment{})
	log.Debug().
		Int("nodes", s.nodes).
		Int("backtracks", s.backtracks).
		Int("revisions", s.revisions).
		Bool("solved", asg != nil).
		Msg("search finished")
	if asg == nil {
		return nil, ErrNoSolution
	}
	return asg, nil
}

// Stats reports the effort counters accumulated so far.
func (s *Solver) Stats() Stats {
	return Stats{Nodes: s.nodes, Backtracks: s.backtracks, Revisions: s.revisions}
}

// backtrack extends asg one slot at a time, depth first. At every entry the
// domains are arc-consistent with the assigned slots' single-word domains
// and asg is internally consistent, so a complete assignment needs no final
// re-validation. Returns nil when this branch is exhausted.
func (s *Solver) backtrack(asg Assignment) Assignment {
	if len(asg) == len(s.g.Slots()) {
		return asg
	}
	s.nodes++
	sl := s.selectSlot(asg)
	for _, w := range s.orderValues(sl, asg) {
		asg[sl] = w
		if !s.consistent(asg) {
			delete(asg, sl)
			continue
		}
		tr := trail{}
		tr.save(sl, s.domains)
		s.domains[sl] = []string{w}
		if s.ac3(s.inferenceArcs(sl, asg), tr) {
			if result := s.backtrack(asg); result != nil {
				return result
			}
		}
		tr.restore(s.domains)
		delete(asg, sl)
		s.backtracks++
	}
	return nil
}

// selectSlot picks the unassigned slot with the fewest remaining words,
// breaking ties by highest degree, then by canonical slot order. The order
// is total, so selection is deterministic.
func (s *Solver) selectSlot(asg Assignment) grid.Slot {
	var best grid.Slot
	found := false
	for _, sl := range s.g.Slots() {
		if _, assigned := asg[sl]; assigned {
			continue
		}
		if !found {
			best, found = sl, true
			continue
		}
		switch dl, db := len(s.domains[sl]), len(s.domains[best]); {
		case dl < db:
			best = sl
		case dl == db && s.g.Degree(sl) > s.g.Degree(best):
			best = sl
		}
	}
	return best
}

// orderValues sorts sl's candidates by how many words each would eliminate
// from the domains of unassigned neighboring slots, fewest first. The sort
// is stable, so equally constraining words keep domain order.
func (s *Solver) orderValues(sl grid.Slot, asg Assignment) []string {
	neighbors := lo.Filter(s.g.Neighbors(sl), func(n grid.Slot, _ int) bool {
		_, assigned := asg[n]
		return !assigned
	})
	words := append([]string(nil), s.domains[sl]...)
	eliminated := make(map[string]int, len(words))
	for _, w := range words {
		for _, n := range neighbors {
			ov, _ := s.g.Overlap(sl, n)
			for _, v := range s.domains[n] {
				if w[ov.I] != v[ov.J] {
					eliminated[w]++
				}
			}
		}
	}
	sort.SliceStable(words, func(a, b int) bool {
		return eliminated[words[a]] < eliminated[words[b]]
	})
	return words
}

// consistent reports whether asg uses pairwise-distinct words of the right
// lengths that agree on every crossing letter. All assigned pairs are
// checked, not just the newest slot's neighbors, to catch transitive
// conflicts.
func (s *Solver) consistent(asg Assignment) bool {
	used := make(map[string]bool, len(asg))
	for sl, w := range asg {
		if len(w) != sl.Length || used[w] {
			return false
		}
		used[w] = true
	}
	for a, wa := range asg {
		for b, wb := range asg {
			if a == b {
				continue
			}
			if ov, ok := s.g.Overlap(a, b); ok && wa[ov.I] != wb[ov.J] {
				return false
			}
		}
	}
	return true
}

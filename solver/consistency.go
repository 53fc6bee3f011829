package solver

import (
	"github.com/samber/lo"

	"github.com/crossfill/crossfill/grid"
)

// An arc is an ordered pair of crossing slots: revising the arc (x, y)
// prunes x's domain against y's.
type arc struct {
	x, y grid.Slot
}

// enforceNodeConsistency drops every word whose length differs from its
// slot's length. Runs once before search; idempotent.
func (s *Solver) enforceNodeConsistency() {
	for _, sl := range s.g.Slots() {
		length := sl.Length
		s.domains[sl] = lo.Filter(s.domains[sl], func(w string, _ int) bool {
			return len(w) == length
		})
	}
}

// revise makes x arc-consistent with y: any word of x with no compatible
// partner left in y's domain is removed. Reports whether anything was
// removed. A pair with no overlap is a no-op.
func (s *Solver) revise(x, y grid.Slot, tr trail) bool {
	ov, ok := s.g.Overlap(x, y)
	if !ok {
		return false
	}
	dy := s.domains[y]
	kept := lo.Filter(s.domains[x], func(w string, _ int) bool {
		for _, v := range dy {
			if w[ov.I] == v[ov.J] {
				return true
			}
		}
		return false
	})
	if len(kept) == len(s.domains[x]) {
		return false
	}
	tr.save(x, s.domains)
	s.domains[x] = kept
	s.revisions++
	return true
}

// ac3 propagates arc consistency to a fixpoint from the given worklist.
// The worklist is FIFO and may hold duplicate arcs; whenever a revision
// shrinks x, every arc (z, x) for the other neighbors z of x is re-queued.
// Returns false as soon as any domain empties, true at the fixpoint.
func (s *Solver) ac3(arcs []arc, tr trail) bool {
	queue := append([]arc(nil), arcs...)
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !s.revise(a.x, a.y, tr) {
			continue
		}
		if len(s.domains[a.x]) == 0 {
			return false
		}
		for _, z := range s.g.Neighbors(a.x) {
			if z != a.y {
				queue = append(queue, arc{x: z, y: a.x})
			}
		}
	}
	return true
}

// allArcs returns both directions of every overlapping pair, the default
// worklist for the setup propagation.
func (s *Solver) allArcs() []arc {
	var arcs []arc
	for _, x := range s.g.Slots() {
		for _, y := range s.g.Neighbors(x) {
			arcs = append(arcs, arc{x: x, y: y})
		}
	}
	return arcs
}

// inferenceArcs returns the restricted worklist used after assigning sl:
// one arc from each unassigned neighbor toward sl.
func (s *Solver) inferenceArcs(sl grid.Slot, asg Assignment) []arc {
	neighbors := lo.Filter(s.g.Neighbors(sl), func(n grid.Slot, _ int) bool {
		_, assigned := asg[n]
		return !assigned
	})
	return lo.Map(neighbors, func(n grid.Slot, _ int) arc {
		return arc{x: n, y: sl}
	})
}

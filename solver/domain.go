package solver

import "github.com/crossfill/crossfill/grid"

// domains maps each slot to the words still admissible for it. Revisions
// never mutate a domain slice in place; they swap in a freshly filtered
// slice, so an old slice header is a valid snapshot of the old domain.
type domains map[grid.Slot][]string

// A trail records the pre-mutation domain of every slot touched during one
// search step, so the step can be undone exactly. Only the first touch per
// slot is recorded; later revisions of the same slot are already covered.
// A nil trail records nothing (used for the setup propagation, which is
// never undone).
type trail map[grid.Slot][]string

func (t trail) save(s grid.Slot, d domains) {
	if t == nil {
		return
	}
	if _, ok := t[s]; !ok {
		t[s] = d[s]
	}
}

func (t trail) restore(d domains) {
	for s, words := range t {
		d[s] = words
	}
}

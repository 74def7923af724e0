package automaton

import (
	"github.com/bits-and-blooms/bitset"
)

// Minimize completes d with a sink and reduces it to the unique minimal
// complete DFA for the same language using Hopcroft's partition refinement.
// Two states end in the same block iff no input string distinguishes their
// eventual acceptance, so the quotient is Myhill-Nerode minimal. The result
// is renumbered by breadth-first order from the start block; unreachable
// blocks, including a sink nothing was redirected to, are dropped.
func Minimize(d *DFA) *DFA {
	total := Complete(d)
	n := total.NumStates()

	// Preimages per symbol, for splitter lookups.
	preimage := make([][][]int, total.Alphabet.Size())
	for sym := range preimage {
		preimage[sym] = make([][]int, n)
	}
	for s := 0; s < n; s++ {
		for sym, to := range total.Next[s] {
			preimage[sym][to] = append(preimage[sym][to], s)
		}
	}

	// Initial partition: accepting and non-accepting states, both seeded
	// onto the worklist.
	var blocks []*bitset.BitSet
	stateBlock := make([]int, n)
	addBlock := func(set *bitset.BitSet) int {
		id := len(blocks)
		blocks = append(blocks, set)
		for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
			stateBlock[s] = id
		}
		return id
	}

	acc := bitset.New(uint(n))
	nonacc := bitset.New(uint(n))
	for s := 0; s < n; s++ {
		if total.IsAccept(s) {
			acc.Set(uint(s))
		} else {
			nonacc.Set(uint(s))
		}
	}
	var worklist []int
	pending := make(map[int]bool)
	push := func(id int) {
		worklist = append(worklist, id)
		pending[id] = true
	}
	if acc.Any() {
		push(addBlock(acc))
	}
	if nonacc.Any() {
		push(addBlock(nonacc))
	}

	for len(worklist) > 0 {
		a := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		pending[a] = false
		splitter := blocks[a].Clone()

		for sym := 0; sym < total.Alphabet.Size(); sym++ {
			// X: states whose sym-transition lands in the splitter.
			x := bitset.New(uint(n))
			for s, ok := splitter.NextSet(0); ok; s, ok = splitter.NextSet(s + 1) {
				for _, p := range preimage[sym][s] {
					x.Set(uint(p))
				}
			}
			if x.None() {
				continue
			}

			// Group the members of X by their current block.
			touched := map[int]*bitset.BitSet{}
			for s, ok := x.NextSet(0); ok; s, ok = x.NextSet(s + 1) {
				y := stateBlock[s]
				if touched[y] == nil {
					touched[y] = bitset.New(uint(n))
				}
				touched[y].Set(s)
			}

			for y, inter := range touched {
				if inter.Count() == blocks[y].Count() {
					// The whole block maps into the splitter.
					continue
				}
				diff := blocks[y].Difference(inter)

				// Give the new id to the smaller part so pushing it is
				// both the replace-if-pending rule and the
				// push-the-smaller rule at once.
				small, large := inter, diff
				if small.Count() > large.Count() {
					small, large = large, small
				}
				blocks[y] = large
				newID := addBlock(small)
				push(newID)
			}
		}
	}

	// Quotient: every member of a block agrees on acceptance and on the
	// block of its successors, so any representative will do.
	min := newDFA(d.Alphabet)
	blockState := make([]int, len(blocks))
	for i := range blockState {
		blockState[i] = NoTarget
	}
	queue := []int{stateBlock[total.Start]}
	blockState[stateBlock[total.Start]] = min.newState()
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		rep, _ := blocks[b].NextSet(0)
		if total.IsAccept(int(rep)) {
			min.Accepting.Set(uint(blockState[b]))
		}
		for sym := 0; sym < total.Alphabet.Size(); sym++ {
			tb := stateBlock[total.Next[rep][sym]]
			if blockState[tb] == NoTarget {
				blockState[tb] = min.newState()
				queue = append(queue, tb)
			}
			min.Next[blockState[b]][sym] = blockState[tb]
		}
	}
	min.Start = 0
	return min
}

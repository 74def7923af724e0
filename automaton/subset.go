package automaton

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// subsetKey renders a set of NFA state ids as a canonical sorted-id string,
// used to deduplicate the subsets discovered during determinization.
func subsetKey(set *bitset.BitSet) string {
	var b strings.Builder
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(s), 10))
	}
	return b.String()
}

// Determinize converts n into a DFA via subset construction. Each DFA state
// stands for the exact set of NFA states simultaneously reachable so far;
// state 0 is the epsilon-closure of the NFA start. Where no NFA path
// consumes a symbol the transition is left unrecorded, so the result is
// deterministic but possibly partial.
func Determinize(n *NFA) *DFA {
	d := newDFA(n.alpha)
	accepts := n.acceptSet()

	startSet := bitset.New(uint(n.NumStates()))
	startSet.Set(uint(n.start))
	n.closure(startSet)

	ids := map[string]int{
		subsetKey(startSet): d.newState(),
	}
	if startSet.IntersectionCardinality(accepts) > 0 {
		d.Accepting.Set(0)
	}

	queue := []*bitset.BitSet{startSet}
	queued := []int{0}
	for len(queue) > 0 {
		set := queue[0]
		from := queued[0]
		queue = queue[1:]
		queued = queued[1:]

		for sym := 0; sym < n.alpha.Size(); sym++ {
			move := bitset.New(uint(n.NumStates()))
			for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
				for _, t := range n.states[s].out[sym] {
					move.Set(uint(t))
				}
			}
			if move.None() {
				// No NFA path consumes this symbol here; the DFA
				// stays partial until completion.
				continue
			}
			n.closure(move)

			key := subsetKey(move)
			to, ok := ids[key]
			if !ok {
				to = d.newState()
				ids[key] = to
				if move.IntersectionCardinality(accepts) > 0 {
					d.Accepting.Set(uint(to))
				}
				queue = append(queue, move)
				queued = append(queued, to)
			}
			d.Next[from][sym] = to
		}
	}

	return d
}

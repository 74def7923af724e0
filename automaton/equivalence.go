package automaton

// A Disagreement is a witness that two automata are not equivalent: a pair
// of product states reached together where exactly one side accepts.
type Disagreement struct {
	Left  int
	Right int
}

// Equivalent tests language equality of a and b by symmetric-difference
// emptiness over the product automaton: both sides are completed with a
// sink, then a synchronized breadth-first search visits each reachable
// state pair once. The walk is bounded by |Q1|x|Q2| pairs, which is the
// intended scalability ceiling at the automaton sizes this module targets.
// Automata over different alphabets are never equivalent; no witness pair
// exists for that case.
func Equivalent(a, b *DFA) (bool, *Disagreement) {
	if a.Alphabet != b.Alphabet {
		return false, nil
	}

	ca := Complete(a)
	cb := Complete(b)

	type pair struct {
		left  int
		right int
	}
	seen := map[pair]struct{}{}
	queue := []pair{{ca.Start, cb.Start}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}

		if ca.IsAccept(p.left) != cb.IsAccept(p.right) {
			return false, &Disagreement{
				Left:  p.left,
				Right: p.right,
			}
		}
		for sym := 0; sym < ca.Alphabet.Size(); sym++ {
			queue = append(queue, pair{
				left:  ca.Next[p.left][sym],
				right: cb.Next[p.right][sym],
			})
		}
	}
	return true, nil
}

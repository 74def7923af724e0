package automaton

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/regexforge/minfa/regex"
)

// NoTarget marks a missing transition in a partial DFA. A missing
// transition is an explicit reject, not an error; completion later redirects
// it to a sink.
const NoTarget = -1

// A DFA is a deterministic automaton over a two-symbol alphabet. States are
// dense integer ids; Next[s][sym] is the successor of s on the sym-th
// alphabet symbol, or NoTarget. The transition function may be partial
// before completion and is total afterwards.
type DFA struct {
	Alphabet  regex.Alphabet
	Start     int
	Next      [][]int
	Accepting *bitset.BitSet
}

func newDFA(alpha regex.Alphabet) *DFA {
	return &DFA{
		Alphabet:  alpha,
		Accepting: bitset.New(2),
	}
}

func (d *DFA) newState() int {
	row := make([]int, d.Alphabet.Size())
	for i := range row {
		row[i] = NoTarget
	}
	d.Next = append(d.Next, row)
	return len(d.Next) - 1
}

func (d *DFA) NumStates() int {
	return len(d.Next)
}

func (d *DFA) IsAccept(state int) bool {
	return d.Accepting.Test(uint(state))
}

func (d *DFA) NumAccepting() int {
	count := 0
	for s := 0; s < d.NumStates(); s++ {
		if d.IsAccept(s) {
			count++
		}
	}
	return count
}

// Run walks the transition function from the start state and reports
// whether the whole input is accepted. A character outside the alphabet or
// a missing transition rejects immediately.
func (d *DFA) Run(input string) bool {
	state := d.Start
	for _, c := range input {
		sym, ok := d.Alphabet.Index(c)
		if !ok {
			return false
		}
		state = d.Next[state][sym]
		if state == NoTarget {
			return false
		}
	}
	return d.IsAccept(state)
}

// Complete returns a copy of d whose transition function is total: one
// non-accepting sink state is appended, every missing transition is
// redirected to it, and the sink loops to itself on every symbol. The input
// is not mutated.
func Complete(d *DFA) *DFA {
	total := newDFA(d.Alphabet)
	total.Start = d.Start
	for s := 0; s < d.NumStates(); s++ {
		total.newState()
		if d.IsAccept(s) {
			total.Accepting.Set(uint(s))
		}
	}
	sink := total.newState()

	for s := 0; s < d.NumStates(); s++ {
		for sym, to := range d.Next[s] {
			if to == NoTarget {
				to = sink
			}
			total.Next[s][sym] = to
		}
	}
	for sym := range total.Next[sink] {
		total.Next[sink][sym] = sink
	}
	return total
}

// reachable returns the set of states reachable from the start by
// breadth-first search over recorded transitions.
func (d *DFA) reachable() *bitset.BitSet {
	seen := bitset.New(uint(d.NumStates()))
	seen.Set(uint(d.Start))
	queue := []int{d.Start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, to := range d.Next[s] {
			if to == NoTarget || seen.Test(uint(to)) {
				continue
			}
			seen.Set(uint(to))
			queue = append(queue, to)
		}
	}
	return seen
}

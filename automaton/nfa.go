package automaton

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/regexforge/minfa/regex"
)

var errInvalidPostfix = errors.New("invalid postfix sequence")

// An NFA is an arena of states indexed by integer id. States may carry
// epsilon edges and any number of successors per symbol. An NFA exists only
// between Thompson construction and subset construction; nothing downstream
// keeps a reference to it.
type NFA struct {
	alpha   regex.Alphabet
	states  []nfaState
	start   int
	accepts []int
}

type nfaState struct {
	eps []int
	out [][]int
}

func (n *NFA) newState() int {
	id := len(n.states)
	n.states = append(n.states, nfaState{
		out: make([][]int, n.alpha.Size()),
	})
	return id
}

func (n *NFA) addEpsilon(from, to int) {
	n.states[from].eps = append(n.states[from].eps, to)
}

func (n *NFA) addTransition(from, sym, to int) {
	n.states[from].out[sym] = append(n.states[from].out[sym], to)
}

func (n *NFA) NumStates() int {
	return len(n.states)
}

// A fragment is a partially built automaton on the construction stack: an
// entry state and the accept states the next operator will stitch together.
type fragment struct {
	start   int
	accepts []int
}

// FromPostfix builds an NFA from a postfix token sequence using Thompson's
// construction, one fragment per token.
func FromPostfix(tokens []regex.Token, alpha regex.Alphabet) (*NFA, error) {
	n := &NFA{
		alpha: alpha,
	}

	var stack []fragment
	pop := func(op regex.TokenKind) (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, fmt.Errorf("%w: operator %v lacks an operand", errInvalidPostfix, op)
		}
		frag := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return frag, nil
	}

	for _, tok := range tokens {
		switch tok.Kind {
		case regex.TokenKindSymbol:
			entry := n.newState()
			exit := n.newState()
			n.addTransition(entry, tok.Sym, exit)
			stack = append(stack, fragment{
				start:   entry,
				accepts: []int{exit},
			})
		case regex.TokenKindConcat:
			second, err := pop(tok.Kind)
			if err != nil {
				return nil, err
			}
			first, err := pop(tok.Kind)
			if err != nil {
				return nil, err
			}
			for _, acc := range first.accepts {
				n.addEpsilon(acc, second.start)
			}
			stack = append(stack, fragment{
				start:   first.start,
				accepts: second.accepts,
			})
		case regex.TokenKindUnion:
			right, err := pop(tok.Kind)
			if err != nil {
				return nil, err
			}
			left, err := pop(tok.Kind)
			if err != nil {
				return nil, err
			}
			entry := n.newState()
			exit := n.newState()
			n.addEpsilon(entry, left.start)
			n.addEpsilon(entry, right.start)
			for _, acc := range left.accepts {
				n.addEpsilon(acc, exit)
			}
			for _, acc := range right.accepts {
				n.addEpsilon(acc, exit)
			}
			stack = append(stack, fragment{
				start:   entry,
				accepts: []int{exit},
			})
		case regex.TokenKindStar, regex.TokenKindPlus, regex.TokenKindOption:
			inner, err := pop(tok.Kind)
			if err != nil {
				return nil, err
			}
			entry := n.newState()
			exit := n.newState()
			n.addEpsilon(entry, inner.start)
			if tok.Kind != regex.TokenKindPlus {
				// The body is skippable.
				n.addEpsilon(entry, exit)
			}
			for _, acc := range inner.accepts {
				if tok.Kind != regex.TokenKindOption {
					// The body may repeat.
					n.addEpsilon(acc, inner.start)
				}
				n.addEpsilon(acc, exit)
			}
			stack = append(stack, fragment{
				start:   entry,
				accepts: []int{exit},
			})
		default:
			return nil, fmt.Errorf("%w: unexpected token %v", errInvalidPostfix, tok.Kind)
		}
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("%w: %v fragments remain after construction", errInvalidPostfix, len(stack))
	}
	frag := stack[0]
	n.start = frag.start
	n.accepts = frag.accepts
	return n, nil
}

// closure expands set in place to its epsilon-closure with a worklist.
func (n *NFA) closure(set *bitset.BitSet) {
	var work []uint
	for s, ok := set.NextSet(0); ok; s, ok = set.NextSet(s + 1) {
		work = append(work, s)
	}
	for len(work) > 0 {
		s := work[len(work)-1]
		work = work[:len(work)-1]
		for _, t := range n.states[s].eps {
			if set.Test(uint(t)) {
				continue
			}
			set.Set(uint(t))
			work = append(work, uint(t))
		}
	}
}

func (n *NFA) acceptSet() *bitset.BitSet {
	set := bitset.New(uint(len(n.states)))
	for _, acc := range n.accepts {
		set.Set(uint(acc))
	}
	return set
}

// Run simulates the NFA on input and reports whether some path over the
// whole string ends in an accept state.
func (n *NFA) Run(input string) bool {
	current := bitset.New(uint(len(n.states)))
	current.Set(uint(n.start))
	n.closure(current)

	for _, c := range input {
		sym, ok := n.alpha.Index(c)
		if !ok {
			return false
		}
		next := bitset.New(uint(len(n.states)))
		for s, ok := current.NextSet(0); ok; s, ok = current.NextSet(s + 1) {
			for _, t := range n.states[s].out[sym] {
				next.Set(uint(t))
			}
		}
		if next.None() {
			return false
		}
		n.closure(next)
		current = next
	}

	return current.IntersectionCardinality(n.acceptSet()) > 0
}

package automaton

import (
	"github.com/regexforge/minfa/regex"
)

// A Compilation holds the automata produced from one regex. The
// intermediate NFA is discarded once the subset construction has consumed
// it; DFA is the raw, possibly partial subset-construction result and Min
// the minimal complete DFA.
type Compilation struct {
	Pattern string
	DFA     *DFA
	Min     *DFA
}

// Compile runs the whole pipeline for one regex: parse to postfix, Thompson
// construction, subset construction, Hopcroft minimization. A parse or
// construction error aborts the compilation entirely; no partial automaton
// is ever returned.
func Compile(pattern string, alpha regex.Alphabet) (*Compilation, error) {
	postfix, err := regex.Parse(pattern, alpha)
	if err != nil {
		return nil, err
	}
	nfa, err := FromPostfix(postfix, alpha)
	if err != nil {
		return nil, err
	}
	dfa := Determinize(nfa)
	return &Compilation{
		Pattern: pattern,
		DFA:     dfa,
		Min:     Minimize(dfa),
	}, nil
}

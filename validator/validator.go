// Package validator checks automata without ever mutating them: structural
// well-formedness of loaded transition tables, fit against labeled samples,
// and language equivalence between automata or against a regex.
package validator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/regexforge/minfa/automaton"
	"github.com/regexforge/minfa/table"
)

var errUnknownStateReference = errors.New("unknown state reference")

// A MissingTransition records a (state, symbol) pair with no recorded
// target. Pre-minimization tables are legitimately partial, so this is a
// diagnostic, not a failure.
type MissingTransition struct {
	State  int
	Symbol rune
}

// A StructureReport collects the non-fatal findings of a structural check.
type StructureReport struct {
	Missing     []MissingTransition
	Unreachable []int
}

// Clean reports whether the check produced no diagnostics at all: the
// table is total and every declared state is reachable.
func (r *StructureReport) Clean() bool {
	return len(r.Missing) == 0 && len(r.Unreachable) == 0
}

// CheckStructure verifies a loaded table. A transition whose target is not
// a declared state is a hard failure; missing transitions and
// declared-but-unreachable states are reported as diagnostics.
func CheckStructure(t *table.Table) (*StructureReport, error) {
	var unknown []int
	for _, id := range t.States {
		for _, to := range t.Next[id] {
			if to == automaton.NoTarget || t.IsDeclared(to) {
				continue
			}
			unknown = append(unknown, to)
		}
	}
	if len(unknown) > 0 {
		sort.Ints(unknown)
		return nil, fmt.Errorf("%w: transitions target undeclared states %v", errUnknownStateReference, unknown)
	}

	report := &StructureReport{}
	for _, id := range t.States {
		for sym, to := range t.Next[id] {
			if to == automaton.NoTarget {
				report.Missing = append(report.Missing, MissingTransition{
					State:  id,
					Symbol: t.Alphabet[sym],
				})
			}
		}
	}

	reachable := map[int]struct{}{
		t.Start(): {},
	}
	queue := []int{t.Start()}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, to := range t.Next[s] {
			if to == automaton.NoTarget {
				continue
			}
			if _, ok := reachable[to]; ok {
				continue
			}
			reachable[to] = struct{}{}
			queue = append(queue, to)
		}
	}
	for _, id := range t.States {
		if _, ok := reachable[id]; !ok {
			report.Unreachable = append(report.Unreachable, id)
		}
	}
	sort.Ints(report.Unreachable)

	return report, nil
}

// EquivalentTables tests language equality of two loaded tables. Both must
// pass the undeclared-target check and share one alphabet.
func EquivalentTables(a, b *table.Table) (bool, error) {
	if a.Alphabet != b.Alphabet {
		return false, fmt.Errorf("the alphabets %v and %v do not match", a.Alphabet, b.Alphabet)
	}
	da, err := a.ToDFA()
	if err != nil {
		return false, err
	}
	db, err := b.ToDFA()
	if err != nil {
		return false, err
	}
	eq, _ := automaton.Equivalent(da, db)
	return eq, nil
}

// EquivalentToRegex compiles pattern over the table's alphabet and tests
// language equality against the table.
func EquivalentToRegex(t *table.Table, pattern string) (bool, error) {
	d, err := t.ToDFA()
	if err != nil {
		return false, err
	}
	c, err := automaton.Compile(pattern, t.Alphabet)
	if err != nil {
		return false, err
	}
	eq, _ := automaton.Equivalent(d, c.Min)
	return eq, nil
}

// Package table reads and writes the CSV exchange format for transition
// tables. A table has a header naming the state column, one column per
// alphabet symbol in alphabet order, and an accepting column. Each data row
// declares one state: its id, one target id per symbol, and a 0/1 accepting
// flag. An empty target cell means "no transition" and is read strictly as
// an explicit reject; the first data row's id is the start state.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"github.com/regexforge/minfa/automaton"
	"github.com/regexforge/minfa/regex"
)

var errMalformedTable = errors.New("malformed transition table")

// A Table is a loaded transition table. Unlike automaton.DFA it keeps the
// declared state ids, which need not be dense, and it may reference targets
// that were never declared; the validator reports those.
type Table struct {
	Alphabet  regex.Alphabet
	States    []int
	Next      map[int][]int
	Accepting map[int]bool
}

// Start returns the start state id: the first declared row, by convention.
func (t *Table) Start() int {
	return t.States[0]
}

func (t *Table) IsDeclared(state int) bool {
	_, ok := t.Next[state]
	return ok
}

// Run walks the table from the start state. A character outside the
// alphabet, a missing transition, or a reference to an undeclared state
// rejects immediately.
func (t *Table) Run(input string) bool {
	state := t.Start()
	for _, c := range input {
		sym, ok := t.Alphabet.Index(c)
		if !ok {
			return false
		}
		row, ok := t.Next[state]
		if !ok {
			return false
		}
		state = row[sym]
		if state == automaton.NoTarget {
			return false
		}
	}
	return t.Accepting[state]
}

// Load parses a CSV transition table for the given alphabet.
func Load(r io.Reader, alpha regex.Alphabet) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedTable, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: the table is empty", errMalformedTable)
	}

	header := records[0]
	if len(header) != alpha.Size()+2 || header[0] != "state" || header[len(header)-1] != "accepting" {
		return nil, fmt.Errorf("%w: the header must be state,%v,%v,accepting", errMalformedTable, string(alpha[0]), string(alpha[1]))
	}
	for i := 0; i < alpha.Size(); i++ {
		if header[i+1] != string(alpha[i]) {
			return nil, fmt.Errorf("%w: the symbol columns %v do not match the alphabet %v", errMalformedTable, header[1:len(header)-1], alpha)
		}
	}

	t := &Table{
		Alphabet:  alpha,
		Next:      map[int][]int{},
		Accepting: map[int]bool{},
	}
	for _, rec := range records[1:] {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: a state id must be an integer: %q", errMalformedTable, rec[0])
		}
		if t.IsDeclared(id) {
			return nil, fmt.Errorf("%w: state %v is declared twice", errMalformedTable, id)
		}

		row := make([]int, alpha.Size())
		for sym := 0; sym < alpha.Size(); sym++ {
			cell := rec[sym+1]
			if cell == "" {
				row[sym] = automaton.NoTarget
				continue
			}
			to, err := strconv.Atoi(cell)
			if err != nil {
				return nil, fmt.Errorf("%w: a transition target must be an integer: %q", errMalformedTable, cell)
			}
			row[sym] = to
		}

		switch rec[len(rec)-1] {
		case "0":
		case "1":
			t.Accepting[id] = true
		default:
			return nil, fmt.Errorf("%w: the accepting flag must be 0 or 1: %q", errMalformedTable, rec[len(rec)-1])
		}

		t.States = append(t.States, id)
		t.Next[id] = row
	}

	if len(t.States) == 0 {
		return nil, fmt.Errorf("%w: the table declares no states", errMalformedTable)
	}
	return t, nil
}

// Write emits d in the CSV exchange format, states in id order with the
// start state first. Missing transitions become empty cells.
func Write(w io.Writer, d *automaton.DFA) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, d.Alphabet.Size()+2)
	header = append(header, "state")
	for i := 0; i < d.Alphabet.Size(); i++ {
		header = append(header, string(d.Alphabet[i]))
	}
	header = append(header, "accepting")
	if err := cw.Write(header); err != nil {
		return err
	}

	for s := 0; s < d.NumStates(); s++ {
		rec := make([]string, 0, len(header))
		rec = append(rec, strconv.Itoa(s))
		for _, to := range d.Next[s] {
			if to == automaton.NoTarget {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, strconv.Itoa(to))
		}
		flag := "0"
		if d.IsAccept(s) {
			flag = "1"
		}
		rec = append(rec, flag)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ToDFA converts the table into a dense automaton. Declared ids are
// remapped to 0..n-1 in declaration order, so the start is state 0. The
// conversion fails if any transition references an undeclared state; run
// the validator first for a diagnosis rather than an error.
func (t *Table) ToDFA() (*automaton.DFA, error) {
	dense := make(map[int]int, len(t.States))
	for i, id := range t.States {
		dense[id] = i
	}

	d := &automaton.DFA{
		Alphabet: t.Alphabet,
		Start:    0,
	}
	d.Next = make([][]int, len(t.States))
	d.Accepting = bitset.New(uint(len(t.States)))
	for i, id := range t.States {
		row := make([]int, t.Alphabet.Size())
		for sym, to := range t.Next[id] {
			if to == automaton.NoTarget {
				row[sym] = automaton.NoTarget
				continue
			}
			di, ok := dense[to]
			if !ok {
				return nil, fmt.Errorf("transition (%v, %v) references undeclared state %v", id, string(t.Alphabet[sym]), to)
			}
			row[sym] = di
		}
		d.Next[i] = row
		if t.Accepting[id] {
			d.Accepting.Set(uint(i))
		}
	}
	return d, nil
}

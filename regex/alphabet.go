package regex

import "fmt"

// An Alphabet is the ordered pair of input symbols all regexes and automata
// in this module range over. The order is significant: it fixes the column
// order of exported transition tables and the edge order of constructions.
type Alphabet [2]rune

// NewAlphabet interprets s as an ordered pair of symbols. The pair must
// consist of exactly two distinct characters.
func NewAlphabet(s string) (Alphabet, error) {
	rs := []rune(s)
	if len(rs) != 2 {
		return Alphabet{}, fmt.Errorf("an alphabet must consist of exactly two symbols: %q", s)
	}
	if rs[0] == rs[1] {
		return Alphabet{}, fmt.Errorf("alphabet symbols must be distinct: %q", s)
	}
	return Alphabet{rs[0], rs[1]}, nil
}

// Index returns the position of r in the alphabet.
func (a Alphabet) Index(r rune) (int, bool) {
	switch r {
	case a[0]:
		return 0, true
	case a[1]:
		return 1, true
	}
	return 0, false
}

func (a Alphabet) Contains(r rune) bool {
	_, ok := a.Index(r)
	return ok
}

// Size returns the number of symbols. It always reports 2 but the
// constructions index symbols through it rather than assuming the width.
func (a Alphabet) Size() int {
	return len(a)
}

func (a Alphabet) String() string {
	return string(a[0]) + string(a[1])
}

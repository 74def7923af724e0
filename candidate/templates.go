package candidate

import (
	"sort"

	"github.com/regexforge/minfa/regex"
)

// Wildcard builds the match-anything expression over the alphabet.
func Wildcard(alpha regex.Alphabet) Expr {
	alts := make([]Expr, alpha.Size())
	for i := 0; i < alpha.Size(); i++ {
		alts[i] = NewAtom(string(alpha[i]))
	}
	return NewRepeat("*", NewUnion(alts...))
}

// DeriveTemplates proposes expressions biased to be close to the observed
// positives: the strings themselves, detected repetitions, bounded
// prefix/suffix/contains forms around a wildcard, the longest common
// suffix, and positional unions over same-length positives.
func DeriveTemplates(positives []string, alpha regex.Alphabet, maxTemplates, ngramMax int) []Expr {
	if len(positives) == 0 {
		return nil
	}

	wildcard := Wildcard(alpha)
	seen := map[string]struct{}{}
	var out []Expr
	add := func(e Expr) {
		if _, ok := seen[e.key()]; ok {
			return
		}
		seen[e.key()] = struct{}{}
		out = append(out, e)
	}

	for _, s := range positives {
		if !overAlphabet(s, alpha) {
			continue
		}
		add(NewAtom(s))

		if p := shortestPeriod(s); p > 0 {
			add(NewRepeat("+", NewAtom(s[:p])))
		}

		runes := []rune(s)
		for k := 1; k <= ngramMax && k <= len(runes); k++ {
			add(NewConcat(append(atoms(runes[:k]), wildcard)...))
			add(NewConcat(append([]Expr{wildcard}, atoms(runes[len(runes)-k:])...)...))
			for i := 0; i+k <= len(runes); i++ {
				parts := append([]Expr{wildcard}, atoms(runes[i:i+k])...)
				add(NewConcat(append(parts, wildcard)...))
			}
		}
	}

	if suf := longestCommonSuffix(positives); suf != "" {
		add(NewConcat(append([]Expr{wildcard}, atoms([]rune(suf))...)...))
	}

	for _, e := range positionalUnions(positives, alpha) {
		add(e)
	}

	if maxTemplates > 0 && len(out) > maxTemplates {
		out = out[:maxTemplates]
	}
	return out
}

func atoms(runes []rune) []Expr {
	out := make([]Expr, len(runes))
	for i, r := range runes {
		out[i] = NewAtom(string(r))
	}
	return out
}

// shortestPeriod returns the smallest p where s is s[:p] repeated at least
// twice, or 0 when s does not repeat.
func shortestPeriod(s string) int {
	n := len(s)
	for p := 1; p <= n/2; p++ {
		if n%p != 0 {
			continue
		}
		periodic := true
		for i := p; i < n; i++ {
			if s[i] != s[i-p] {
				periodic = false
				break
			}
		}
		if periodic {
			return p
		}
	}
	return 0
}

func longestCommonSuffix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}
	shortest := strs[0]
	for _, s := range strs[1:] {
		if len(s) < len(shortest) {
			shortest = s
		}
	}
	for i := 0; i < len(shortest); i++ {
		suf := shortest[i:]
		ok := true
		for _, s := range strs {
			if !hasSuffix(s, suf) {
				ok = false
				break
			}
		}
		if ok {
			return suf
		}
	}
	return ""
}

func hasSuffix(s, suf string) bool {
	return len(s) >= len(suf) && s[len(s)-len(suf):] == suf
}

// positionalUnions generalizes groups of same-length positives that differ
// in at most three positions into one concatenation with per-position
// alternatives.
func positionalUnions(positives []string, alpha regex.Alphabet) []Expr {
	byLen := map[int][]string{}
	for _, s := range positives {
		if !overAlphabet(s, alpha) {
			continue
		}
		byLen[len([]rune(s))] = append(byLen[len([]rune(s))], s)
	}
	lengths := make([]int, 0, len(byLen))
	for l := range byLen {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	seen := map[string]struct{}{}
	var out []Expr
	for _, l := range lengths {
		group := byLen[l]
		if l == 0 || len(group) < 2 {
			continue
		}

		// Per-position alternatives across the whole group.
		choices := make([][]rune, l)
		for pos := 0; pos < l; pos++ {
			set := map[rune]struct{}{}
			for _, s := range group {
				set[[]rune(s)[pos]] = struct{}{}
			}
			for i := 0; i < alpha.Size(); i++ {
				if _, ok := set[alpha[i]]; ok {
					choices[pos] = append(choices[pos], alpha[i])
				}
			}
		}

		pairs := 0
		for ai := range group {
			for bi := range group {
				if ai == bi {
					continue
				}
				if pairs >= 60 {
					break
				}
				pairs++

				a, b := []rune(group[ai]), []rune(group[bi])
				var diffs []int
				for i := 0; i < l; i++ {
					if a[i] != b[i] {
						diffs = append(diffs, i)
					}
				}
				if len(diffs) == 0 || len(diffs) > 3 {
					continue
				}

				parts := make([]Expr, l)
				for i := 0; i < l; i++ {
					if !contains(diffs, i) || len(choices[i]) == 1 {
						parts[i] = NewAtom(string(a[i]))
						continue
					}
					alts := make([]Expr, len(choices[i]))
					for j, c := range choices[i] {
						alts[j] = NewAtom(string(c))
					}
					parts[i] = NewUnion(alts...)
				}
				e := NewConcat(parts...)
				if _, ok := seen[e.key()]; ok {
					continue
				}
				seen[e.key()] = struct{}{}
				out = append(out, e)
			}
		}
	}
	return out
}

func contains(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// A SuffixSignal scores a suffix by how strongly it separates positives
// from negatives: the fraction of positives carrying it minus the fraction
// of negatives.
type SuffixSignal struct {
	Suffix string
	Score  float64
	Pos    int
	Neg    int
}

// BestSuffixes ranks suffixes up to maxLen characters by descending signal,
// keeping only those carried by at least minSupport positives.
func BestSuffixes(positives, negatives []string, maxLen, minSupport int) []SuffixSignal {
	if len(positives) == 0 {
		return nil
	}
	posCounts := map[string]int{}
	negCounts := map[string]int{}
	count := func(counts map[string]int, strs []string) {
		for _, s := range strs {
			runes := []rune(s)
			for k := 1; k <= maxLen && k <= len(runes); k++ {
				counts[string(runes[len(runes)-k:])]++
			}
		}
	}
	count(posCounts, positives)
	count(negCounts, negatives)

	negTotal := len(negatives)
	if negTotal == 0 {
		negTotal = 1
	}

	var out []SuffixSignal
	for suf, pc := range posCounts {
		if pc < minSupport {
			continue
		}
		nc := negCounts[suf]
		out = append(out, SuffixSignal{
			Suffix: suf,
			Score:  float64(pc)/float64(len(positives)) - float64(nc)/float64(negTotal),
			Pos:    pc,
			Neg:    nc,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Pos != out[j].Pos {
			return out[i].Pos > out[j].Pos
		}
		if len(out[i].Suffix) != len(out[j].Suffix) {
			return len(out[i].Suffix) < len(out[j].Suffix)
		}
		return out[i].Suffix < out[j].Suffix
	})
	return out
}

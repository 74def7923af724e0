package candidate

import (
	"sort"

	"github.com/regexforge/minfa/regex"
)

// A GenConfig bounds the grammar closure. Depth counts grammar production
// steps, the beam keeps only the shortest expressions per depth, and the
// length and candidate caps bound the final output.
type GenConfig struct {
	Alphabet      regex.Alphabet
	MaxDepth      int
	BeamSize      int
	MaxLength     int
	MaxCandidates int
	NGrams        []string
	DisableOption bool
}

// Generate enumerates candidate expressions by closing the atoms under the
// unary operators, concatenation, and union up to the configured depth.
// The result is deterministic: sorted by (length, operator count, text).
func Generate(cfg GenConfig) []Expr {
	atoms := make([]Expr, 0, cfg.Alphabet.Size()+len(cfg.NGrams))
	for i := 0; i < cfg.Alphabet.Size(); i++ {
		atoms = append(atoms, NewAtom(string(cfg.Alphabet[i])))
	}
	for _, g := range cfg.NGrams {
		atoms = append(atoms, NewAtom(g))
	}
	atoms = dedup(atoms)

	unaryOps := []string{"*", "+", "?"}
	if cfg.DisableOption {
		unaryOps = []string{"*", "+"}
	}

	byDepth := map[int][]Expr{
		1: atoms,
	}
	all := map[string]Expr{}
	for _, a := range atoms {
		all[a.key()] = a
	}

	for depth := 2; depth <= cfg.MaxDepth; depth++ {
		level := map[string]Expr{}
		add := func(e Expr) {
			if len(e.Regex()) > cfg.MaxLength {
				return
			}
			level[e.key()] = e
		}

		for d := 1; d < depth; d++ {
			for _, e := range byDepth[d] {
				for _, op := range unaryOps {
					add(NewRepeat(op, e))
				}
			}
		}
		for i := 1; i < depth; i++ {
			j := depth - i
			for _, x := range byDepth[i] {
				for _, y := range byDepth[j] {
					add(NewConcat(x, y))
					add(NewUnion(x, y))
				}
			}
		}

		exprs := make([]Expr, 0, len(level))
		for _, e := range level {
			exprs = append(exprs, e)
		}
		sortCandidates(exprs)
		if cfg.BeamSize > 0 && len(exprs) > cfg.BeamSize {
			exprs = exprs[:cfg.BeamSize]
		}

		byDepth[depth] = exprs
		for _, e := range exprs {
			all[e.key()] = e
		}
		if cfg.MaxCandidates > 0 && len(all) >= cfg.MaxCandidates {
			break
		}
	}

	final := make([]Expr, 0, len(all))
	for _, e := range all {
		if len(e.Regex()) <= cfg.MaxLength {
			final = append(final, e)
		}
	}
	sortCandidates(final)
	if cfg.MaxCandidates > 0 && len(final) > cfg.MaxCandidates {
		final = final[:cfg.MaxCandidates]
	}
	return final
}

func sortCandidates(exprs []Expr) {
	sort.Slice(exprs, func(i, j int) bool {
		ri, rj := exprs[i].Regex(), exprs[j].Regex()
		if len(ri) != len(rj) {
			return len(ri) < len(rj)
		}
		oi, oj := TotalOps(exprs[i]), TotalOps(exprs[j])
		if oi != oj {
			return oi < oj
		}
		return ri < rj
	})
}

func dedup(exprs []Expr) []Expr {
	seen := map[string]struct{}{}
	var out []Expr
	for _, e := range exprs {
		if _, ok := seen[e.key()]; ok {
			continue
		}
		seen[e.key()] = struct{}{}
		out = append(out, e)
	}
	return out
}

// MineNGrams collects the substrings of length 2..maxN occurring in the
// positives, restricted to the alphabet, longest first.
func MineNGrams(positives []string, maxN int, alpha regex.Alphabet) []string {
	grams := map[string]struct{}{}
	for _, s := range positives {
		if !overAlphabet(s, alpha) {
			continue
		}
		runes := []rune(s)
		for n := 2; n <= maxN; n++ {
			for i := 0; i+n <= len(runes); i++ {
				grams[string(runes[i:i+n])] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(grams))
	for g := range grams {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

func overAlphabet(s string, alpha regex.Alphabet) bool {
	for _, c := range s {
		if !alpha.Contains(c) {
			return false
		}
	}
	return true
}

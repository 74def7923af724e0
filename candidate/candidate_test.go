package candidate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regexforge/minfa/automaton"
	"github.com/regexforge/minfa/regex"
)

func testAlphabet(t *testing.T) regex.Alphabet {
	t.Helper()
	alpha, err := regex.NewAlphabet("ab")
	require.NoError(t, err)
	return alpha
}

func TestExprRendering(t *testing.T) {
	tests := []struct {
		caption string
		expr    Expr
		regex   string
	}{
		{
			caption: "single symbol atom stays bare",
			expr:    NewAtom("a"),
			regex:   "a",
		},
		{
			caption: "multi symbol atom groups itself",
			expr:    NewAtom("ab"),
			regex:   "(?:ab)",
		},
		{
			caption: "union orders alternatives canonically",
			expr:    NewUnion(NewAtom("b"), NewAtom("a"), NewAtom("b")),
			regex:   "a|b",
		},
		{
			caption: "single alternative collapses",
			expr:    NewUnion(NewAtom("a"), NewAtom("a")),
			regex:   "a",
		},
		{
			caption: "concatenation wraps union parts",
			expr:    NewConcat(NewAtom("a"), NewUnion(NewAtom("a"), NewAtom("b"))),
			regex:   "a(?:a|b)",
		},
		{
			caption: "repetition of a single symbol stays bare",
			expr:    NewRepeat("*", NewAtom("a")),
			regex:   "a*",
		},
		{
			caption: "repetition of a grouped atom reuses its group",
			expr:    NewRepeat("+", NewAtom("ab")),
			regex:   "(?:ab)+",
		},
		{
			caption: "repetition of a union groups it",
			expr:    NewRepeat("*", NewUnion(NewAtom("a"), NewAtom("b"))),
			regex:   "(?:a|b)*",
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			require.Equal(t, tt.regex, tt.expr.Regex())
		})
	}
}

func TestUnionIsOrderInsensitive(t *testing.T) {
	x := NewUnion(NewAtom("a"), NewRepeat("*", NewAtom("b")))
	y := NewUnion(NewRepeat("*", NewAtom("b")), NewAtom("a"))
	require.Equal(t, x.key(), y.key())
}

func TestTotalOps(t *testing.T) {
	e := NewRepeat("*", NewUnion(NewAtom("a"), NewConcat(NewAtom("a"), NewAtom("b"))))
	require.Equal(t, 3, TotalOps(e))
	require.Equal(t, 0, TotalOps(NewAtom("ab")))
}

func TestAnchor(t *testing.T) {
	require.Equal(t, "^a(?:a|b)*$", Anchor("a(?:a|b)*"))
}

func TestGenerate_DepthTwoClosure(t *testing.T) {
	got := Generate(GenConfig{
		Alphabet:  testAlphabet(t),
		MaxDepth:  2,
		MaxLength: 10,
	})
	regexes := make([]string, len(got))
	for i, e := range got {
		regexes[i] = e.Regex()
	}
	want := []string{
		"a", "b",
		"a*", "a+", "a?", "aa", "ab", "b*", "b+", "b?", "ba", "bb",
		"a|b",
	}
	require.Equal(t, want, regexes)
}

func TestGenerate_DisableOption(t *testing.T) {
	got := Generate(GenConfig{
		Alphabet:      testAlphabet(t),
		MaxDepth:      2,
		MaxLength:     10,
		DisableOption: true,
	})
	for _, e := range got {
		require.NotContains(t, e.Regex(), "?", "option operator should be disabled: %s", e.Regex())
	}
}

func TestGenerate_RespectsCaps(t *testing.T) {
	got := Generate(GenConfig{
		Alphabet:      testAlphabet(t),
		MaxDepth:      4,
		BeamSize:      20,
		MaxLength:     6,
		MaxCandidates: 25,
	})
	require.LessOrEqual(t, len(got), 25)
	for _, e := range got {
		require.LessOrEqual(t, len(e.Regex()), 6)
	}
}

func TestGenerate_IsDeterministic(t *testing.T) {
	cfg := GenConfig{
		Alphabet:      testAlphabet(t),
		MaxDepth:      3,
		BeamSize:      30,
		MaxLength:     8,
		MaxCandidates: 50,
		NGrams:        []string{"ab", "ba"},
	}
	first := Generate(cfg)
	second := Generate(cfg)
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, first[i].Regex(), second[i].Regex())
	}
}

func TestGeneratedCandidatesCompile(t *testing.T) {
	alpha := testAlphabet(t)
	exprs := Generate(GenConfig{
		Alphabet:      alpha,
		MaxDepth:      3,
		BeamSize:      30,
		MaxLength:     10,
		MaxCandidates: 80,
		NGrams:        []string{"ab"},
	})
	require.NotEmpty(t, exprs)
	for _, e := range exprs {
		_, err := automaton.Compile(Anchor(e.Regex()), alpha)
		require.NoError(t, err, "candidate %s must compile", e.Regex())
	}
}

func TestMineNGrams(t *testing.T) {
	alpha := testAlphabet(t)
	got := MineNGrams([]string{"abb", "ba", "xy"}, 3, alpha)
	require.Equal(t, []string{"abb", "ab", "ba", "bb"}, got)
}

func TestDeriveTemplates(t *testing.T) {
	alpha := testAlphabet(t)
	got := DeriveTemplates([]string{"abab"}, alpha, 0, 1)
	set := map[string]bool{}
	for _, e := range got {
		set[e.Regex()] = true
	}
	for _, want := range []string{
		"(?:abab)",
		"(?:ab)+",
		"a(?:a|b)*",
		"(?:a|b)*b",
		"(?:a|b)*a(?:a|b)*",
		"(?:a|b)*abab",
	} {
		require.True(t, set[want], "missing template %s in %v", want, set)
	}
}

func TestDeriveTemplates_PositionalUnion(t *testing.T) {
	alpha := testAlphabet(t)
	got := DeriveTemplates([]string{"aa", "ab"}, alpha, 0, 1)
	found := false
	for _, e := range got {
		if e.Regex() == "a(?:a|b)" {
			found = true
		}
	}
	require.True(t, found, "expected positional union a(?:a|b)")
}

func TestDeriveTemplates_AllCompile(t *testing.T) {
	alpha := testAlphabet(t)
	got := DeriveTemplates([]string{"ab", "abb", "babb"}, alpha, 0, 2)
	require.NotEmpty(t, got)
	for _, e := range got {
		_, err := automaton.Compile(Anchor(e.Regex()), alpha)
		require.NoError(t, err, "template %s must compile", e.Regex())
	}
}

func TestBestSuffixes(t *testing.T) {
	got := BestSuffixes(
		[]string{"ab", "bb", "aab"},
		[]string{"aa", "ba"},
		2, 2,
	)
	require.Len(t, got, 2)
	require.Equal(t, "b", got[0].Suffix)
	require.Equal(t, 3, got[0].Pos)
	require.Equal(t, 0, got[0].Neg)
	require.InDelta(t, 1.0, got[0].Score, 1e-9)
	require.Equal(t, "ab", got[1].Suffix)
}

func TestShortestPeriod(t *testing.T) {
	require.Equal(t, 2, shortestPeriod("abab"))
	require.Equal(t, 1, shortestPeriod("aaa"))
	require.Equal(t, 0, shortestPeriod("aab"))
	require.Equal(t, 0, shortestPeriod("a"))
}

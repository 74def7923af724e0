package score

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regexforge/minfa/candidate"
	"github.com/regexforge/minfa/regex"
)

func testAlphabet(t *testing.T) regex.Alphabet {
	t.Helper()
	alpha, err := regex.NewAlphabet("ab")
	require.NoError(t, err)
	return alpha
}

func endsInB() Dataset {
	return Dataset{
		Positives: []string{"b", "ab", "bb", "aab", "abab"},
		Negatives: []string{"", "a", "ba", "aa", "bba"},
	}
}

func TestSplit_DeterministicPartition(t *testing.T) {
	ds := Dataset{
		Positives: []string{"a", "aa", "aaa", "ab", "ba", "bb", "b", "abb"},
		Negatives: []string{"x1", "x2", "x3", "x4"},
	}
	tr1, va1 := Split(ds, 0.25, 42)
	tr2, va2 := Split(ds, 0.25, 42)
	require.Equal(t, tr1, tr2)
	require.Equal(t, va1, va2)

	require.Len(t, va1.Positives, 2)
	require.Len(t, va1.Negatives, 1)
	require.Len(t, tr1.Positives, 6)
	require.Len(t, tr1.Negatives, 3)

	all := map[string]int{}
	for _, s := range append(append([]string{}, tr1.Positives...), va1.Positives...) {
		all[s]++
	}
	for _, s := range ds.Positives {
		require.Equal(t, 1, all[s], "positive %q must appear exactly once", s)
	}
}

func TestSplit_SmallClassKeepsValidation(t *testing.T) {
	_, va := Split(Dataset{Positives: []string{"a", "b"}}, 0.1, 7)
	require.Len(t, va.Positives, 1)
}

func TestScore_PerfectCandidate(t *testing.T) {
	s := Scorer{Alphabet: testAlphabet(t), Weights: DefaultWeights()}
	ds := endsInB()
	train, val := Split(ds, 0.4, 1)

	body := "(?:a|b)*b"
	got, err := s.Score(body, 3, train, val)
	require.NoError(t, err)
	require.Equal(t, body, got.Body)
	require.Equal(t, 1.0, got.F1Train)
	require.Equal(t, 1.0, got.F1Val)
	require.Equal(t, 1.0, got.AccVal)
	require.Equal(t, 2, got.States)

	want := 0.70 + 0.20 - 0.10*(float64(len(body))/50.0) - 0.02*3
	require.InDelta(t, want, got.Score, 1e-9)
}

func TestScore_InvalidBody(t *testing.T) {
	s := Scorer{Alphabet: testAlphabet(t), Weights: DefaultWeights()}
	_, err := s.Score("((a", 0, Dataset{}, Dataset{})
	require.Error(t, err)
}

func TestScoreAll_RanksAndSkips(t *testing.T) {
	s := Scorer{Alphabet: testAlphabet(t), Weights: DefaultWeights()}
	train, val := Split(endsInB(), 0.4, 1)

	exprs := []candidate.Expr{
		candidate.NewAtom("a"),
		candidate.NewConcat(
			candidate.NewRepeat("*", candidate.NewUnion(candidate.NewAtom("a"), candidate.NewAtom("b"))),
			candidate.NewAtom("b"),
		),
		candidate.NewAtom("c"),
	}
	got := s.ScoreAll(exprs, train, val)
	require.Len(t, got, 2, "out-of-alphabet candidate must be skipped")
	require.Equal(t, "(?:a|b)*b", got[0].Body)
	require.Greater(t, got[0].Score, got[1].Score)
}

func TestRank_TieBreaks(t *testing.T) {
	results := []Result{
		{Body: "bb", Score: 0.5, F1Val: 0.8, Length: 2},
		{Body: "aaa", Score: 0.5, F1Val: 0.9, Length: 3},
		{Body: "ba", Score: 0.5, F1Val: 0.8, Length: 2},
		{Body: "b", Score: 0.7, F1Val: 0.1, Length: 1},
	}
	Rank(results)
	require.Equal(t, "b", results[0].Body)
	require.Equal(t, "aaa", results[1].Body)
	require.Equal(t, "ba", results[2].Body)
	require.Equal(t, "bb", results[3].Body)
}

func TestCountOps(t *testing.T) {
	alpha := testAlphabet(t)
	tests := []struct {
		body string
		want int
	}{
		{body: "a", want: 0},
		{body: "ab", want: 1},
		{body: "a|b", want: 1},
		{body: "a*", want: 1},
		{body: "(?:ab)+", want: 2},
		{body: "a(?:a|b)*", want: 3},
		{body: "(?:a|b)*abb", want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			require.Equal(t, tt.want, CountOps(tt.body, alpha))
		})
	}
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	results := []Result{
		{Body: "a*", Score: 0.5, F1Val: 1, AccVal: 1, Length: 2, Ops: 1, States: 1},
		{Body: "b", Score: 0.25, Length: 1},
	}
	require.NoError(t, WriteJSONL(&buf, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var first Result
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Equal(t, results[0], first)
}

func TestWriteTopCSV(t *testing.T) {
	var buf bytes.Buffer
	results := []Result{
		{Body: "a*", Score: 0.5},
		{Body: "b", Score: 0.25},
		{Body: "bb", Score: 0.1},
	}
	require.NoError(t, WriteTopCSV(&buf, results, 2))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "regex,score,f1_val,acc_val,f1_train,len,ops,states", lines[0])
	require.True(t, strings.HasPrefix(lines[1], "a*,0.5000,"))
}

func TestBest(t *testing.T) {
	_, err := Best(nil)
	require.Error(t, err)

	got, err := Best([]Result{{Body: "a"}})
	require.NoError(t, err)
	require.Equal(t, "a", got.Body)
}

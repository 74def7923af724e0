// Package score ranks candidate regexes against labeled examples. Each
// candidate is compiled to its minimal DFA and judged on a train/validation
// split: validation fit dominates, with penalties for length, operator
// count, and the train-validation gap.
package score

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/regexforge/minfa/automaton"
	"github.com/regexforge/minfa/candidate"
	"github.com/regexforge/minfa/regex"
	"github.com/regexforge/minfa/validator"
)

// Weights control the scoring model. F1 and Acc reward validation fit;
// Len, Ops and Overfit are penalty coefficients.
type Weights struct {
	F1      float64
	Acc     float64
	Len     float64
	Ops     float64
	Overfit float64
}

// DefaultWeights returns the standard scoring weights.
func DefaultWeights() Weights {
	return Weights{
		F1:      0.70,
		Acc:     0.20,
		Len:     0.10,
		Ops:     0.02,
		Overfit: 0.10,
	}
}

// A Dataset is a labeled sample of the target language.
type Dataset struct {
	Positives []string
	Negatives []string
}

// Split shuffles the dataset with the given seed and carves off valFrac of
// each label class as the validation set. A class with more than one
// member always contributes at least one validation example.
func Split(ds Dataset, valFrac float64, seed int64) (train, val Dataset) {
	rng := rand.New(rand.NewSource(seed))
	splitClass := func(strs []string) (tr, va []string) {
		shuffled := make([]string, len(strs))
		copy(shuffled, strs)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		n := int(float64(len(shuffled)) * valFrac)
		if n == 0 && len(shuffled) > 1 {
			n = 1
		}
		return shuffled[n:], shuffled[:n]
	}
	train.Positives, val.Positives = splitClass(ds.Positives)
	train.Negatives, val.Negatives = splitClass(ds.Negatives)
	return train, val
}

// A Result is one scored candidate.
type Result struct {
	Body    string  `json:"regex"`
	Score   float64 `json:"score"`
	F1Train float64 `json:"f1_train"`
	F1Val   float64 `json:"f1_val"`
	AccVal  float64 `json:"acc_val"`
	Length  int     `json:"len"`
	Ops     int     `json:"ops"`
	States  int     `json:"states"`
}

// A Scorer evaluates candidates over one alphabet.
type Scorer struct {
	Alphabet regex.Alphabet
	Weights  Weights
}

// Score compiles one candidate body and scores it on the split. The body
// is anchored before compilation so candidates always describe whole
// strings. Ops is the candidate's operator count; callers scoring plain
// strings can use CountOps.
func (s Scorer) Score(body string, ops int, train, val Dataset) (Result, error) {
	comp, err := automaton.Compile(candidate.Anchor(body), s.Alphabet)
	if err != nil {
		return Result{}, err
	}
	trainFit := validator.EvaluateFit(comp.Min, train.Positives, train.Negatives)
	valFit := validator.EvaluateFit(comp.Min, val.Positives, val.Negatives)

	f1Train := trainFit.F1()
	f1Val := valFit.F1()
	accVal := valFit.Accuracy()
	overfit := f1Train - f1Val
	if overfit < 0 {
		overfit = 0
	}
	return Result{
		Body:    body,
		Score:   s.Weights.F1*f1Val + s.Weights.Acc*accVal - s.Weights.Len*(float64(len(body))/50.0) - s.Weights.Ops*float64(ops) - s.Weights.Overfit*overfit,
		F1Train: f1Train,
		F1Val:   f1Val,
		AccVal:  accVal,
		Length:  len(body),
		Ops:     ops,
		States:  comp.Min.NumStates(),
	}, nil
}

// ScoreAll scores every candidate expression, silently skipping any that
// fail to compile, and returns the results ranked best first.
func (s Scorer) ScoreAll(exprs []candidate.Expr, train, val Dataset) []Result {
	results := make([]Result, 0, len(exprs))
	for _, e := range exprs {
		r, err := s.Score(e.Regex(), candidate.TotalOps(e), train, val)
		if err != nil {
			continue
		}
		results = append(results, r)
	}
	Rank(results)
	return results
}

// Rank sorts results best first: score, then validation F1 and accuracy,
// then shorter and simpler bodies.
func Rank(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.F1Val != b.F1Val {
			return a.F1Val > b.F1Val
		}
		if a.AccVal != b.AccVal {
			return a.AccVal > b.AccVal
		}
		if a.Length != b.Length {
			return a.Length < b.Length
		}
		if a.Ops != b.Ops {
			return a.Ops < b.Ops
		}
		return a.Body < b.Body
	})
}

// CountOps estimates the operator count of a raw regex body: explicit
// operators plus the implied concatenations between adjacent atoms and
// groups. Grouping itself carries no cost.
func CountOps(body string, alpha regex.Alphabet) int {
	body = strings.ReplaceAll(body, "(?:", "(")
	ops := 0
	prevAtom := false
	for _, r := range body {
		switch r {
		case '|':
			ops++
			prevAtom = false
		case '*', '+', '?':
			ops++
		case '(':
			if prevAtom {
				ops++
			}
			prevAtom = false
		case ')':
			prevAtom = true
		default:
			if prevAtom {
				ops++
			}
			prevAtom = alpha.Contains(r)
		}
	}
	return ops
}

package validator

import (
	"github.com/regexforge/minfa/automaton"
	"github.com/regexforge/minfa/table"
)

// A Matcher decides whole-string acceptance. Both loaded tables and
// compiled automata satisfy it.
type Matcher interface {
	Run(input string) bool
}

var (
	_ Matcher = &table.Table{}
	_ Matcher = &automaton.DFA{}
)

// A Fit is the confusion matrix of a matcher against labeled samples.
type Fit struct {
	TP int
	FP int
	FN int
	TN int
}

// EvaluateFit simulates every labeled string against m and accumulates the
// confusion matrix. It is a pure read over the matcher.
func EvaluateFit(m Matcher, positives, negatives []string) Fit {
	var f Fit
	for _, s := range positives {
		if m.Run(s) {
			f.TP++
		} else {
			f.FN++
		}
	}
	for _, s := range negatives {
		if m.Run(s) {
			f.FP++
		} else {
			f.TN++
		}
	}
	return f
}

func (f Fit) Precision() float64 {
	if f.TP+f.FP == 0 {
		return 0
	}
	return float64(f.TP) / float64(f.TP+f.FP)
}

func (f Fit) Recall() float64 {
	if f.TP+f.FN == 0 {
		return 0
	}
	return float64(f.TP) / float64(f.TP+f.FN)
}

func (f Fit) F1() float64 {
	p := f.Precision()
	r := f.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

func (f Fit) Accuracy() float64 {
	total := f.TP + f.FP + f.FN + f.TN
	if total == 0 {
		return 0
	}
	return float64(f.TP+f.TN) / float64(total)
}

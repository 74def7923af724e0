// Package sample draws labeled datasets from a target automaton: random
// strings over the alphabet for positives and easy negatives, plus hard
// negatives made by lightly mutating positives so they sit near the
// language boundary.
package sample

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/regexforge/minfa/regex"
	"github.com/regexforge/minfa/validator"
)

const defaultMaxAttempts = 200000

// Config bounds dataset generation. MaxAttempts caps the rejection
// sampling loops; zero means the default.
type Config struct {
	Alphabet     regex.Alphabet
	NumPositives int
	NumNegatives int
	MinLen       int
	MaxLen       int
	HardFraction float64
	MaxAttempts  int
	Seed         int64
}

// A Set is one generated dataset, each class sorted by length then text.
type Set struct {
	Positives []string
	Negatives []string
}

// Generate samples the target's language. Sparse languages can exhaust the
// attempt budget; the returned classes may then be smaller than requested.
func Generate(m validator.Matcher, cfg Config) (Set, error) {
	if cfg.MinLen < 0 || cfg.MaxLen < cfg.MinLen {
		return Set{}, fmt.Errorf("invalid sample length range [%v, %v]", cfg.MinLen, cfg.MaxLen)
	}
	if cfg.NumPositives < 0 || cfg.NumNegatives < 0 {
		return Set{}, fmt.Errorf("sample counts must be non-negative: %v positives, %v negatives", cfg.NumPositives, cfg.NumNegatives)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = defaultMaxAttempts
	}

	randomString := func() string {
		n := cfg.MinLen + rng.Intn(cfg.MaxLen-cfg.MinLen+1)
		runes := make([]rune, n)
		for i := range runes {
			runes[i] = cfg.Alphabet[rng.Intn(cfg.Alphabet.Size())]
		}
		return string(runes)
	}

	positives := map[string]struct{}{}
	for attempts := 0; len(positives) < cfg.NumPositives && attempts < maxAttempts; attempts++ {
		s := randomString()
		if m.Run(s) {
			positives[s] = struct{}{}
		}
	}

	negatives := map[string]struct{}{}
	targetHard := int(float64(cfg.NumNegatives) * cfg.HardFraction)

	posList := sortedStrings(positives)
	if len(posList) == 0 {
		posList = []string{string(cfg.Alphabet[0])}
	}
	for i, guard := 0, 0; len(negatives) < targetHard && guard < cfg.NumNegatives*50; i, guard = i+1, guard+1 {
		cand := mutate(rng, cfg.Alphabet, posList[i%len(posList)])
		if len(cand) >= cfg.MinLen && len(cand) <= cfg.MaxLen && !m.Run(cand) {
			negatives[cand] = struct{}{}
		}
	}
	for attempts := 0; len(negatives) < cfg.NumNegatives && attempts < maxAttempts; attempts++ {
		s := randomString()
		if !m.Run(s) {
			negatives[s] = struct{}{}
		}
	}

	return Set{
		Positives: sortedStrings(positives),
		Negatives: sortedStrings(negatives),
	}, nil
}

// mutate applies one or two random single-character edits.
func mutate(rng *rand.Rand, alpha regex.Alphabet, s string) string {
	edits := []func(*rand.Rand, regex.Alphabet, string) string{
		substitute, insert, remove, swap,
	}
	for n := 1 + rng.Intn(2); n > 0; n-- {
		s = edits[rng.Intn(len(edits))](rng, alpha, s)
	}
	return s
}

func substitute(rng *rand.Rand, alpha regex.Alphabet, s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return string(alpha[rng.Intn(alpha.Size())])
	}
	i := rng.Intn(len(runes))
	if runes[i] == alpha[0] {
		runes[i] = alpha[1]
	} else {
		runes[i] = alpha[0]
	}
	return string(runes)
}

func insert(rng *rand.Rand, alpha regex.Alphabet, s string) string {
	runes := []rune(s)
	i := rng.Intn(len(runes) + 1)
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:i]...)
	out = append(out, alpha[rng.Intn(alpha.Size())])
	out = append(out, runes[i:]...)
	return string(out)
}

func remove(rng *rand.Rand, _ regex.Alphabet, s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	i := rng.Intn(len(runes))
	return string(append(runes[:i:i], runes[i+1:]...))
}

func swap(rng *rand.Rand, _ regex.Alphabet, s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	i := rng.Intn(len(runes) - 1)
	runes[i], runes[i+1] = runes[i+1], runes[i]
	return string(runes)
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) < len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

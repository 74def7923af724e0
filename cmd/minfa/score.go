package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/regexforge/minfa/candidate"
	"github.com/regexforge/minfa/sample"
	"github.com/regexforge/minfa/score"
)

var scoreFlags = struct {
	output     *string
	good       *string
	bad        *string
	candidates *string
	valFrac    *float64
	seed       *int64
	topK       *int
	wF1        *float64
	wAcc       *float64
	lamLen     *float64
	lamOps     *float64
	lamOverfit *float64
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "score",
		Short:   "Score candidate regexes against labeled samples and select the best",
		Example: `  minfa score --good good.txt --bad bad.txt --candidates candidates.txt -o out`,
		Args:    cobra.NoArgs,
		RunE:    runScore,
	}
	scoreFlags.output = cmd.Flags().StringP("output", "o", ".", "output directory")
	scoreFlags.good = cmd.Flags().String("good", "good.txt", "file of positive samples, one per line")
	scoreFlags.bad = cmd.Flags().String("bad", "bad.txt", "file of negative samples, one per line")
	scoreFlags.candidates = cmd.Flags().String("candidates", "candidates.txt", "file of candidate regexes, one per line")
	scoreFlags.valFrac = cmd.Flags().Float64("val-frac", 0.30, "validation fraction")
	scoreFlags.seed = cmd.Flags().Int64("seed", 42, "random seed for the train/validation split")
	scoreFlags.topK = cmd.Flags().Int("top-k", 10, "number of results in the CSV report")
	scoreFlags.wF1 = cmd.Flags().Float64("w-f1", 0.70, "weight for validation F1")
	scoreFlags.wAcc = cmd.Flags().Float64("w-acc", 0.20, "weight for validation accuracy")
	scoreFlags.lamLen = cmd.Flags().Float64("lam-len", 0.10, "penalty weight for regex length")
	scoreFlags.lamOps = cmd.Flags().Float64("lam-ops", 0.02, "penalty per operator")
	scoreFlags.lamOverfit = cmd.Flags().Float64("lam-overfit", 0.10, "penalty for the train-validation F1 gap")
	rootCmd.AddCommand(cmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	alpha, err := alphabet()
	if err != nil {
		return err
	}
	positives, err := loadSamples(*scoreFlags.good)
	if err != nil {
		return err
	}
	negatives, err := loadSamples(*scoreFlags.bad)
	if err != nil {
		return err
	}
	bodies, err := loadCandidates(*scoreFlags.candidates)
	if err != nil {
		return err
	}

	train, val := score.Split(score.Dataset{
		Positives: positives,
		Negatives: negatives,
	}, *scoreFlags.valFrac, *scoreFlags.seed)

	scorer := score.Scorer{
		Alphabet: alpha,
		Weights: score.Weights{
			F1:      *scoreFlags.wF1,
			Acc:     *scoreFlags.wAcc,
			Len:     *scoreFlags.lamLen,
			Ops:     *scoreFlags.lamOps,
			Overfit: *scoreFlags.lamOverfit,
		},
	}
	var results []score.Result
	for _, line := range bodies {
		body := strings.TrimSuffix(strings.TrimPrefix(line, "^"), "$")
		if body == "" {
			continue
		}
		r, err := scorer.Score(body, score.CountOps(body, alpha), train, val)
		if err != nil {
			continue
		}
		results = append(results, r)
	}
	score.Rank(results)

	best, err := score.Best(results)
	if err != nil {
		return err
	}

	dir := *scoreFlags.output
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("Cannot create the output directory %s: %w", dir, err)
	}
	err = writeFile(filepath.Join(dir, "scored_candidates.jsonl"), func(w io.Writer) error {
		return score.WriteJSONL(w, results)
	})
	if err != nil {
		return err
	}
	err = writeFile(filepath.Join(dir, "top_candidates.csv"), func(w io.Writer) error {
		return score.WriteTopCSV(w, results, *scoreFlags.topK)
	})
	if err != nil {
		return err
	}
	err = writeFile(filepath.Join(dir, "best_regex.txt"), func(w io.Writer) error {
		return sample.WriteLines(w, []string{candidate.Anchor(best.Body)})
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "scored %v candidates\n", len(results))
	fmt.Fprintf(os.Stdout, "best: %v (score=%.4f f1_val=%.4f)\n", candidate.Anchor(best.Body), best.Score, best.F1Val)
	return nil
}

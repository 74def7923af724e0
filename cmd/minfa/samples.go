package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/regexforge/minfa/automaton"
	"github.com/regexforge/minfa/sample"
)

var samplesFlags = struct {
	output    *string
	positives *int
	negatives *int
	minLen    *int
	maxLen    *int
	hardFrac  *float64
	seed      *int64
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "samples <regex>",
		Short:   "Generate a labeled dataset for a target regex",
		Example: `  minfa samples '^a(?:a|b)*a$' -o out --positives 300 --negatives 300`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSamples,
	}
	samplesFlags.output = cmd.Flags().StringP("output", "o", ".", "output directory")
	samplesFlags.positives = cmd.Flags().Int("positives", 300, "number of positive samples")
	samplesFlags.negatives = cmd.Flags().Int("negatives", 300, "number of negative samples")
	samplesFlags.minLen = cmd.Flags().Int("min-len", 0, "minimum sample length")
	samplesFlags.maxLen = cmd.Flags().Int("max-len", 20, "maximum sample length")
	samplesFlags.hardFrac = cmd.Flags().Float64("hard-frac", 0.4, "fraction of negatives generated as near misses")
	samplesFlags.seed = cmd.Flags().Int64("seed", 42, "random seed")
	rootCmd.AddCommand(cmd)
}

func runSamples(cmd *cobra.Command, args []string) error {
	alpha, err := alphabet()
	if err != nil {
		return err
	}
	comp, err := automaton.Compile(args[0], alpha)
	if err != nil {
		return err
	}

	set, err := sample.Generate(comp.Min, sample.Config{
		Alphabet:     alpha,
		NumPositives: *samplesFlags.positives,
		NumNegatives: *samplesFlags.negatives,
		MinLen:       *samplesFlags.minLen,
		MaxLen:       *samplesFlags.maxLen,
		HardFraction: *samplesFlags.hardFrac,
		Seed:         *samplesFlags.seed,
	})
	if err != nil {
		return err
	}
	if len(set.Positives) < *samplesFlags.positives {
		fmt.Fprintf(os.Stderr, "WARNING: only found %v positives\n", len(set.Positives))
	}
	if len(set.Negatives) < *samplesFlags.negatives {
		fmt.Fprintf(os.Stderr, "WARNING: only found %v negatives\n", len(set.Negatives))
	}

	dir := *samplesFlags.output
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("Cannot create the output directory %s: %w", dir, err)
	}
	err = writeFile(filepath.Join(dir, "good.txt"), func(w io.Writer) error {
		return sample.WriteLines(w, set.Positives)
	})
	if err != nil {
		return err
	}
	err = writeFile(filepath.Join(dir, "bad.txt"), func(w io.Writer) error {
		return sample.WriteLines(w, set.Negatives)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "wrote %v positives and %v negatives\n", len(set.Positives), len(set.Negatives))
	return nil
}

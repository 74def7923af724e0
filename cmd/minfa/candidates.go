package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/regexforge/minfa/candidate"
	"github.com/regexforge/minfa/sample"
)

var candidatesFlags = struct {
	output        *string
	jsonl         *string
	good          *string
	useNGrams     *bool
	ngramMax      *int
	useExamples   *bool
	exampleMax    *int
	maxDepth      *int
	beamSize      *int
	maxLength     *int
	maxCandidates *int
	disableOption *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "candidates",
		Short:   "Enumerate candidate regexes, optionally seeded from positives",
		Example: `  minfa candidates --good good.txt --use-ngrams --use-examples -o candidates.txt`,
		Args:    cobra.NoArgs,
		RunE:    runCandidates,
	}
	candidatesFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	candidatesFlags.jsonl = cmd.Flags().String("jsonl", "", "optional JSONL file with per-candidate metadata")
	candidatesFlags.good = cmd.Flags().String("good", "", "file of positive samples, one per line")
	candidatesFlags.useNGrams = cmd.Flags().Bool("use-ngrams", false, "seed atoms with n-grams mined from --good")
	candidatesFlags.ngramMax = cmd.Flags().Int("ngram-max", 3, "maximum n-gram length to mine")
	candidatesFlags.useExamples = cmd.Flags().Bool("use-examples", false, "derive templates from --good")
	candidatesFlags.exampleMax = cmd.Flags().Int("example-max", 20, "maximum number of example-derived templates")
	candidatesFlags.maxDepth = cmd.Flags().Int("max-depth", 3, "maximum construction depth")
	candidatesFlags.beamSize = cmd.Flags().Int("beam-size", 800, "beam size per depth")
	candidatesFlags.maxLength = cmd.Flags().Int("max-length", 32, "maximum regex body length")
	candidatesFlags.maxCandidates = cmd.Flags().Int("max-candidates", 5000, "hard cap on total candidates")
	candidatesFlags.disableOption = cmd.Flags().Bool("disable-option", false, "skip the '?' operator")
	rootCmd.AddCommand(cmd)
}

func runCandidates(cmd *cobra.Command, args []string) error {
	alpha, err := alphabet()
	if err != nil {
		return err
	}

	var positives []string
	if *candidatesFlags.good != "" {
		positives, err = loadSamples(*candidatesFlags.good)
		if err != nil {
			return err
		}
	}

	cfg := candidate.GenConfig{
		Alphabet:      alpha,
		MaxDepth:      *candidatesFlags.maxDepth,
		BeamSize:      *candidatesFlags.beamSize,
		MaxLength:     *candidatesFlags.maxLength,
		MaxCandidates: *candidatesFlags.maxCandidates,
		DisableOption: *candidatesFlags.disableOption,
	}
	if *candidatesFlags.useNGrams {
		if len(positives) == 0 {
			return fmt.Errorf("--use-ngrams requires --good")
		}
		cfg.NGrams = candidate.MineNGrams(positives, *candidatesFlags.ngramMax, alpha)
	}

	exprs := candidate.Generate(cfg)
	if *candidatesFlags.useExamples {
		if len(positives) == 0 {
			return fmt.Errorf("--use-examples requires --good")
		}
		exprs = append(exprs, candidate.DeriveTemplates(positives, alpha, *candidatesFlags.exampleMax, *candidatesFlags.ngramMax)...)
	}

	seen := map[string]struct{}{}
	uniq := exprs[:0]
	for _, e := range exprs {
		if _, ok := seen[e.Regex()]; ok {
			continue
		}
		seen[e.Regex()] = struct{}{}
		uniq = append(uniq, e)
	}

	write := func(w io.Writer) error {
		for _, e := range uniq {
			_, err := fmt.Fprintln(w, candidate.Anchor(e.Regex()))
			if err != nil {
				return err
			}
		}
		return nil
	}
	if *candidatesFlags.jsonl != "" {
		err = writeFile(*candidatesFlags.jsonl, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			for _, e := range uniq {
				meta := struct {
					Regex string `json:"regex"`
					Len   int    `json:"len"`
					Ops   int    `json:"ops"`
				}{
					Regex: e.Regex(),
					Len:   len(e.Regex()),
					Ops:   candidate.TotalOps(e),
				}
				if err := enc.Encode(meta); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	if *candidatesFlags.output == "" {
		return write(os.Stdout)
	}
	err = writeFile(*candidatesFlags.output, write)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %v candidates\n", len(uniq))
	return nil
}

func loadCandidates(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the candidate file %s: %w", path, err)
	}
	defer f.Close()
	return sample.ReadLines(f)
}

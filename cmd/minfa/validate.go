package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/regexforge/minfa/regex"
	"github.com/regexforge/minfa/sample"
	"github.com/regexforge/minfa/table"
	"github.com/regexforge/minfa/validator"
)

var validateFlags = struct {
	regex   *string
	against *string
	good    *string
	bad     *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "validate <table>",
		Short: "Check a transition table structurally and against a reference",
		Example: `  minfa validate dfa.csv --regex '^a(?:a|b)*a$'
  minfa validate dfa.csv --against min_dfa.csv
  minfa validate dfa.csv --good good.txt --bad bad.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
	validateFlags.regex = cmd.Flags().String("regex", "", "regex the table must be equivalent to")
	validateFlags.against = cmd.Flags().String("against", "", "another table the table must be equivalent to")
	validateFlags.good = cmd.Flags().String("good", "", "file of strings the table must accept, one per line")
	validateFlags.bad = cmd.Flags().String("bad", "", "file of strings the table must reject, one per line")
	rootCmd.AddCommand(cmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	alpha, err := alphabet()
	if err != nil {
		return err
	}
	tab, err := loadTable(args[0], alpha)
	if err != nil {
		return err
	}

	structure, err := validator.CheckStructure(tab)
	if err != nil {
		return err
	}
	for _, m := range structure.Missing {
		fmt.Fprintf(os.Stdout, "missing transition: state %v on %q\n", m.State, m.Symbol)
	}
	for _, s := range structure.Unreachable {
		fmt.Fprintf(os.Stdout, "unreachable state: %v\n", s)
	}
	if structure.Clean() {
		fmt.Fprintln(os.Stdout, "structure: ok")
	}

	ok := true
	if *validateFlags.regex != "" {
		equiv, err := validator.EquivalentToRegex(tab, *validateFlags.regex)
		if err != nil {
			return err
		}
		if equiv {
			fmt.Fprintf(os.Stdout, "equivalent to %v\n", *validateFlags.regex)
		} else {
			fmt.Fprintf(os.Stdout, "NOT equivalent to %v\n", *validateFlags.regex)
			ok = false
		}
	}
	if *validateFlags.against != "" {
		other, err := loadTable(*validateFlags.against, alpha)
		if err != nil {
			return err
		}
		equiv, err := validator.EquivalentTables(tab, other)
		if err != nil {
			return err
		}
		if equiv {
			fmt.Fprintf(os.Stdout, "equivalent to %v\n", *validateFlags.against)
		} else {
			fmt.Fprintf(os.Stdout, "NOT equivalent to %v\n", *validateFlags.against)
			ok = false
		}
	}
	if *validateFlags.good != "" || *validateFlags.bad != "" {
		var positives, negatives []string
		if *validateFlags.good != "" {
			positives, err = loadSamples(*validateFlags.good)
			if err != nil {
				return err
			}
		}
		if *validateFlags.bad != "" {
			negatives, err = loadSamples(*validateFlags.bad)
			if err != nil {
				return err
			}
		}
		fit := validator.EvaluateFit(tab, positives, negatives)
		fmt.Fprintf(os.Stdout, "tp=%v fp=%v fn=%v tn=%v\n", fit.TP, fit.FP, fit.FN, fit.TN)
		fmt.Fprintf(os.Stdout, "precision=%.4f recall=%.4f f1=%.4f accuracy=%.4f\n",
			fit.Precision(), fit.Recall(), fit.F1(), fit.Accuracy())
		if fit.FP > 0 || fit.FN > 0 {
			ok = false
		}
	}

	if !ok {
		return fmt.Errorf("validation failed for %s", args[0])
	}
	return nil
}

func loadTable(path string, alpha regex.Alphabet) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the table file %s: %w", path, err)
	}
	defer f.Close()
	return table.Load(f, alpha)
}

func loadSamples(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot open the sample file %s: %w", path, err)
	}
	defer f.Close()
	return sample.ReadLines(f)
}

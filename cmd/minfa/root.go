package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/regexforge/minfa/regex"
)

var rootFlags = struct {
	alphabet *string
}{}

var rootCmd = &cobra.Command{
	Use:   "minfa",
	Short: "Compile regexes over a two-symbol alphabet into minimal DFAs",
	Long: `minfa works with regular languages over a fixed two-symbol alphabet:
- Compiles a regex into a DFA and its minimal form, exported as CSV tables
  and DOT diagrams.
- Validates transition tables structurally and against regexes, other
  tables, or labeled examples.
- Generates labeled datasets, enumerates candidate regexes for a dataset,
  and scores them.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootFlags.alphabet = rootCmd.PersistentFlags().String("alphabet", "ab", "the two input symbols, in column order")
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func alphabet() (regex.Alphabet, error) {
	return regex.NewAlphabet(*rootFlags.alphabet)
}

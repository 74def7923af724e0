package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/regexforge/minfa/automaton"
	"github.com/regexforge/minfa/report"
	"github.com/regexforge/minfa/table"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile <regex>",
		Short:   "Compile a regex into a DFA and its minimal form",
		Example: `  minfa compile '^a(?:a|b)*a$' -o out`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", ".", "output directory")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	alpha, err := alphabet()
	if err != nil {
		return err
	}
	comp, err := automaton.Compile(args[0], alpha)
	if err != nil {
		return err
	}

	dir := *compileFlags.output
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return fmt.Errorf("Cannot create the output directory %s: %w", dir, err)
	}

	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{
			name: "dfa.csv",
			write: func(w io.Writer) error {
				return table.Write(w, comp.DFA)
			},
		},
		{
			name: "min_dfa.csv",
			write: func(w io.Writer) error {
				return table.Write(w, comp.Min)
			},
		},
		{
			name: "dfa.dot",
			write: func(w io.Writer) error {
				return report.WriteDOT(w, comp.DFA, "DFA")
			},
		},
		{
			name: "min_dfa.dot",
			write: func(w io.Writer) error {
				return report.WriteDOT(w, comp.Min, "Minimized DFA")
			},
		},
		{
			name: "summary.txt",
			write: func(w io.Writer) error {
				return report.WriteSummary(w, comp)
			},
		},
	}
	for _, o := range outputs {
		err := writeFile(filepath.Join(dir, o.name), o.write)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "%v DFA states, %v minimized\n", comp.DFA.NumStates(), comp.Min.NumStates())
	return nil
}

func writeFile(path string, write func(io.Writer) error) (retErr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Cannot create an output file %s: %w", path, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && retErr == nil {
			retErr = err
		}
	}()
	return write(f)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/regexforge/minfa/automaton"
	"github.com/regexforge/minfa/codegen"
)

var generateGoFlags = struct {
	output *string
	table  *string
	pkg    *string
	name   *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "generate-go [regex]",
		Short: "Generate a standalone Go matcher for a regex or a table",
		Example: `  minfa generate-go '^a(?:a|b)*a$' -o matcher.go --package matcher --name Match
  minfa generate-go --table min_dfa.csv -o matcher.go`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerateGo,
	}
	generateGoFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	generateGoFlags.table = cmd.Flags().String("table", "", "transition table to embed instead of a regex")
	generateGoFlags.pkg = cmd.Flags().String("package", "matcher", "package name of the generated file")
	generateGoFlags.name = cmd.Flags().String("name", "Match", "name of the generated matcher function")
	rootCmd.AddCommand(cmd)
}

func runGenerateGo(cmd *cobra.Command, args []string) error {
	alpha, err := alphabet()
	if err != nil {
		return err
	}

	var min *automaton.DFA
	var pattern string
	switch {
	case *generateGoFlags.table != "":
		tab, err := loadTable(*generateGoFlags.table, alpha)
		if err != nil {
			return err
		}
		d, err := tab.ToDFA()
		if err != nil {
			return err
		}
		min = automaton.Minimize(d)
		pattern = fmt.Sprintf("the table %s", *generateGoFlags.table)
	case len(args) == 1:
		comp, err := automaton.Compile(args[0], alpha)
		if err != nil {
			return err
		}
		min = comp.Min
		pattern = comp.Pattern
	default:
		return fmt.Errorf("either a regex argument or --table is required")
	}

	cfg := codegen.Config{
		Package: *generateGoFlags.pkg,
		Name:    *generateGoFlags.name,
		Pattern: pattern,
	}
	if *generateGoFlags.output == "" {
		return codegen.Render(os.Stdout, min, cfg)
	}
	return codegen.Save(*generateGoFlags.output, min, cfg)
}

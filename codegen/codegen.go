// Package codegen emits a standalone Go source file that recognizes the
// language of a DFA: a transition table plus a dependency-free matcher
// function. The generated file is meant to be dropped into another
// project and compiled as-is.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/regexforge/minfa/automaton"
)

// Config names the generated artifact. Zero values fall back to package
// "matcher" and function "Match". Pattern is recorded in the generated
// documentation only.
type Config struct {
	Package string
	Name    string
	Pattern string
}

func (c Config) withDefaults() Config {
	if c.Package == "" {
		c.Package = "matcher"
	}
	if c.Name == "" {
		c.Name = "Match"
	}
	return c
}

// File builds the generated source for the automaton. The DFA is embedded
// as-is, so passing the minimal automaton keeps the tables small.
func File(d *automaton.DFA, cfg Config) *jen.File {
	cfg = cfg.withDefaults()
	prefix := strings.ToLower(cfg.Name[:1]) + cfg.Name[1:]
	nextName := prefix + "Next"
	acceptName := prefix + "Accept"

	f := jen.NewFile(cfg.Package)
	f.HeaderComment("Code generated by minfa. DO NOT EDIT.")
	if cfg.Pattern != "" {
		f.PackageComment(fmt.Sprintf("Recognizes %s over the alphabet %q.", cfg.Pattern, d.Alphabet.String()))
	}

	n := d.NumStates()
	f.Commentf("State %d is the start state; -1 marks a rejecting dead end.", d.Start)
	f.Var().Id(nextName).Op("=").Index(jen.Lit(n)).Index(jen.Lit(d.Alphabet.Size())).Int().ValuesFunc(func(g *jen.Group) {
		for s := 0; s < n; s++ {
			g.ValuesFunc(func(row *jen.Group) {
				for x := 0; x < d.Alphabet.Size(); x++ {
					row.Lit(d.Next[s][x])
				}
			})
		}
	})
	f.Var().Id(acceptName).Op("=").Index(jen.Lit(n)).Bool().ValuesFunc(func(g *jen.Group) {
		for s := 0; s < n; s++ {
			g.Lit(d.IsAccept(s))
		}
	})

	f.Commentf("%s reports whether input belongs to the language.", cfg.Name)
	f.Func().Id(cfg.Name).Params(jen.Id("input").String()).Bool().Block(
		jen.Id("state").Op(":=").Lit(d.Start),
		jen.For(jen.List(jen.Id("_"), jen.Id("r")).Op(":=").Range().Id("input")).Block(
			jen.Var().Id("sym").Int(),
			jen.Switch(jen.Id("r")).Block(
				jen.Case(jen.LitRune(d.Alphabet[0])).Block(jen.Id("sym").Op("=").Lit(0)),
				jen.Case(jen.LitRune(d.Alphabet[1])).Block(jen.Id("sym").Op("=").Lit(1)),
				jen.Default().Block(jen.Return(jen.False())),
			),
			jen.Id("state").Op("=").Id(nextName).Index(jen.Id("state")).Index(jen.Id("sym")),
			jen.If(jen.Id("state").Op("<").Lit(0)).Block(jen.Return(jen.False())),
		),
		jen.Return(jen.Id(acceptName).Index(jen.Id("state"))),
	)
	return f
}

// Render writes the formatted source for the automaton to w.
func Render(w io.Writer, d *automaton.DFA, cfg Config) error {
	return File(d, cfg).Render(w)
}

// Save writes the formatted source for the automaton to path.
func Save(path string, d *automaton.DFA, cfg Config) error {
	return File(d, cfg).Save(path)
}

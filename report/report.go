// Package report renders automata for humans: Graphviz DOT diagrams and a
// plain-text compilation summary.
package report

import (
	"io"
	"text/template"

	"github.com/regexforge/minfa/automaton"
)

const dotTemplate = `digraph DFA {
  rankdir=LR;
  node [shape=circle];
  __start [shape=point];
  __start -> {{ .Start }};
{{- range .Accepting }}
  {{ . }} [shape=doublecircle];
{{- end }}
{{- range .Edges }}
  {{ .From }} -> {{ .To }} [label="{{ .Label }}"];
{{- end }}
  label="{{ .Title }}"; labelloc="t";
}
`

const summaryTemplate = `Regex to DFA Report
===================

Regex (body): {{ .Pattern }}
Alphabet    : {{ .Alphabet }}

DFA states         : {{ .DFA.NumStates }}
DFA accepting      : {{ .DFA.NumAccepting }}
Min DFA states     : {{ .Min.NumStates }}
Min DFA accepting  : {{ .Min.NumAccepting }}
`

type dotEdge struct {
	From  int
	To    int
	Label string
}

type dotGraph struct {
	Title     string
	Start     int
	Accepting []int
	Edges     []dotEdge
}

// WriteDOT renders the automaton as a Graphviz digraph. Absent transitions
// produce no edge, so partial automata stay readable.
func WriteDOT(w io.Writer, d *automaton.DFA, title string) error {
	g := dotGraph{
		Title: title,
		Start: d.Start,
	}
	for s := 0; s < d.NumStates(); s++ {
		if d.IsAccept(s) {
			g.Accepting = append(g.Accepting, s)
		}
		for x := 0; x < d.Alphabet.Size(); x++ {
			if to := d.Next[s][x]; to != automaton.NoTarget {
				g.Edges = append(g.Edges, dotEdge{
					From:  s,
					To:    to,
					Label: string(d.Alphabet[x]),
				})
			}
		}
	}

	tmpl, err := template.New("dot").Parse(dotTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, g)
}

// WriteSummary renders the compilation report: the regex body, its
// alphabet, and the raw versus minimized automaton sizes.
func WriteSummary(w io.Writer, c *automaton.Compilation) error {
	tmpl, err := template.New("summary").Parse(summaryTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, struct {
		Pattern  string
		Alphabet string
		DFA      *automaton.DFA
		Min      *automaton.DFA
	}{
		Pattern:  c.Pattern,
		Alphabet: c.DFA.Alphabet.String(),
		DFA:      c.DFA,
		Min:      c.Min,
	})
}

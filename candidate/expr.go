// Package candidate enumerates candidate regexes over a two-symbol
// alphabet: closure of a bounded grammar plus templates derived from
// labeled examples. It produces surface syntax for the compiler and never
// builds automata itself.
package candidate

import (
	"sort"
	"strings"
)

// An Expr is a candidate regex expression. Regex renders the surface form;
// key is a canonical form used for structural deduplication.
type Expr interface {
	Regex() string
	key() string
	opCount() int
	children() []Expr
}

var (
	_ Expr = &atomExpr{}
	_ Expr = &concatExpr{}
	_ Expr = &unionExpr{}
	_ Expr = &repeatExpr{}
)

type atomExpr struct {
	lit string
}

// NewAtom wraps a literal string, usually a single symbol or a mined
// n-gram.
func NewAtom(lit string) Expr {
	return &atomExpr{
		lit: lit,
	}
}

func (e *atomExpr) Regex() string {
	if len([]rune(e.lit)) == 1 {
		return e.lit
	}
	return "(?:" + e.lit + ")"
}

func (e *atomExpr) key() string {
	return "atom:" + e.lit
}

func (e *atomExpr) opCount() int {
	return 0
}

func (e *atomExpr) children() []Expr {
	return nil
}

type concatExpr struct {
	parts []Expr
}

// NewConcat concatenates parts left to right. Nested concatenations are
// flattened.
func NewConcat(parts ...Expr) Expr {
	var flat []Expr
	for _, p := range parts {
		if c, ok := p.(*concatExpr); ok {
			flat = append(flat, c.parts...)
			continue
		}
		flat = append(flat, p)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return &concatExpr{
		parts: flat,
	}
}

func (e *concatExpr) Regex() string {
	var b strings.Builder
	for _, p := range e.parts {
		if _, ok := p.(*unionExpr); ok {
			b.WriteString("(?:" + p.Regex() + ")")
			continue
		}
		b.WriteString(p.Regex())
	}
	return b.String()
}

func (e *concatExpr) key() string {
	keys := make([]string, len(e.parts))
	for i, p := range e.parts {
		keys[i] = p.key()
	}
	return "concat:(" + strings.Join(keys, ",") + ")"
}

func (e *concatExpr) opCount() int {
	if len(e.parts) <= 1 {
		return 0
	}
	return len(e.parts) - 1
}

func (e *concatExpr) children() []Expr {
	return e.parts
}

type unionExpr struct {
	alts []Expr
}

// NewUnion joins alternatives. Nested unions are flattened, duplicates
// dropped, and the result ordered canonically so a|b and b|a share a key.
func NewUnion(alts ...Expr) Expr {
	var flat []Expr
	for _, a := range alts {
		if u, ok := a.(*unionExpr); ok {
			flat = append(flat, u.alts...)
			continue
		}
		flat = append(flat, a)
	}
	uniq := map[string]Expr{}
	for _, a := range flat {
		uniq[a.key()] = a
	}
	keys := make([]string, 0, len(uniq))
	for k := range uniq {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ordered := make([]Expr, len(keys))
	for i, k := range keys {
		ordered[i] = uniq[k]
	}
	if len(ordered) == 1 {
		return ordered[0]
	}
	return &unionExpr{
		alts: ordered,
	}
}

func (e *unionExpr) Regex() string {
	alts := make([]string, len(e.alts))
	for i, a := range e.alts {
		alts[i] = a.Regex()
	}
	return strings.Join(alts, "|")
}

func (e *unionExpr) key() string {
	keys := make([]string, len(e.alts))
	for i, a := range e.alts {
		keys[i] = a.key()
	}
	return "union:(" + strings.Join(keys, ",") + ")"
}

func (e *unionExpr) opCount() int {
	if len(e.alts) <= 1 {
		return 0
	}
	return len(e.alts) - 1
}

func (e *unionExpr) children() []Expr {
	return e.alts
}

type repeatExpr struct {
	op    string
	inner Expr
}

// NewRepeat applies a unary postfix operator, one of "*", "+" or "?".
func NewRepeat(op string, inner Expr) Expr {
	return &repeatExpr{
		op:    op,
		inner: inner,
	}
}

func (e *repeatExpr) Regex() string {
	// Atoms already group themselves when longer than one symbol.
	if a, ok := e.inner.(*atomExpr); ok {
		return a.Regex() + e.op
	}
	return "(?:" + e.inner.Regex() + ")" + e.op
}

func (e *repeatExpr) key() string {
	return "repeat:" + e.op + ":" + e.inner.key()
}

func (e *repeatExpr) opCount() int {
	return 1
}

func (e *repeatExpr) children() []Expr {
	return []Expr{e.inner}
}

// TotalOps counts every operator in the expression tree.
func TotalOps(e Expr) int {
	count := e.opCount()
	for _, c := range e.children() {
		count += TotalOps(c)
	}
	return count
}

// Anchor wraps a regex body for whole-string matching.
func Anchor(body string) string {
	return "^" + body + "$"
}
